package graphics

import "errors"

var (
	// ErrNotFound is returned when a region or animation name is not registered.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey is returned when registering a name that is already taken.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrMalformedAsset is returned when an atlas description cannot be turned
	// into an atlas (missing texture, dangling frame reference, parse failure).
	ErrMalformedAsset = errors.New("malformed asset")

	// ErrInvalidConfiguration is returned when a value is rejected at
	// construction, such as an animation with no frames or a non-positive delay.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
