package main

import "embed"

// Engine configuration and the demo content shipped with the binary.
//
//go:embed configs
var configFS embed.FS

//go:embed content
var contentFS embed.FS
