package config

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/mglib/internal/domain/graphics"
)

// AtlasConfig is the logical schema of a texture atlas description
type AtlasConfig struct {
	Texture    string            `json:"texture" yaml:"texture"`
	Regions    []RegionConfig    `json:"regions" yaml:"regions"`
	Animations []AnimationConfig `json:"animations" yaml:"animations"`
}

type RegionConfig struct {
	Name   string `json:"name" yaml:"name"`
	X      int    `json:"x" yaml:"x"`
	Y      int    `json:"y" yaml:"y"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
}

type AnimationConfig struct {
	Name    string        `json:"name" yaml:"name"`
	DelayMs int           `json:"delay" yaml:"delay"` // Milliseconds per frame
	Frames  []FrameConfig `json:"frames" yaml:"frames"`
}

type FrameConfig struct {
	Region string `json:"region" yaml:"region"`
}

// Atlas description formats, keyed by file extension
const (
	FormatXML  = ".xml"
	FormatJSON = ".json"
	FormatYAML = ".yaml"
	FormatYML  = ".yml"
)

// xmlAtlas mirrors the TextureAtlas XML layout:
//
//	<TextureAtlas>
//	  <Texture>images/atlas</Texture>
//	  <Regions><Region name="a" x="0" y="0" width="16" height="16"/></Regions>
//	  <Animations><Animation name="walk" delay="100"><Frame region="a"/></Animation></Animations>
//	</TextureAtlas>
type xmlAtlas struct {
	XMLName    xml.Name       `xml:"TextureAtlas"`
	Texture    string         `xml:"Texture"`
	Regions    []xmlRegion    `xml:"Regions>Region"`
	Animations []xmlAnimation `xml:"Animations>Animation"`
}

type xmlRegion struct {
	Name   string `xml:"name,attr"`
	X      int    `xml:"x,attr"`
	Y      int    `xml:"y,attr"`
	Width  int    `xml:"width,attr"`
	Height int    `xml:"height,attr"`
}

type xmlAnimation struct {
	Name   string     `xml:"name,attr"`
	Delay  int        `xml:"delay,attr"`
	Frames []xmlFrame `xml:"Frame"`
}

type xmlFrame struct {
	Region string `xml:"region,attr"`
}

// ParseAtlas decodes an atlas description in the given format.
// Decode failures wrap graphics.ErrMalformedAsset.
func ParseAtlas(data []byte, format string) (*AtlasConfig, error) {
	var cfg AtlasConfig

	switch strings.ToLower(format) {
	case FormatXML:
		var doc xmlAtlas
		if err := xml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse atlas xml: %w: %w", err, graphics.ErrMalformedAsset)
		}
		cfg = doc.toConfig()
	case FormatJSON:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse atlas json: %w: %w", err, graphics.ErrMalformedAsset)
		}
	case FormatYAML, FormatYML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse atlas yaml: %w: %w", err, graphics.ErrMalformedAsset)
		}
	default:
		return nil, fmt.Errorf("unknown atlas format %q: %w", format, graphics.ErrMalformedAsset)
	}

	return &cfg, nil
}

func (doc xmlAtlas) toConfig() AtlasConfig {
	cfg := AtlasConfig{
		Texture: strings.TrimSpace(doc.Texture),
		Regions: make([]RegionConfig, 0, len(doc.Regions)),
	}
	for _, r := range doc.Regions {
		cfg.Regions = append(cfg.Regions, RegionConfig(r))
	}
	for _, a := range doc.Animations {
		anim := AnimationConfig{Name: a.Name, DelayMs: a.Delay}
		for _, f := range a.Frames {
			anim.Frames = append(anim.Frames, FrameConfig(f))
		}
		cfg.Animations = append(cfg.Animations, anim)
	}
	return cfg
}
