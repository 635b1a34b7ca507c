package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/mglib/internal/domain/graphics"
)

func TestParseAtlas_XMLDefaults(t *testing.T) {
	data := []byte(`<TextureAtlas>
		<Texture>
			images/atlas
		</Texture>
		<Regions>
			<Region name="a" width="16" height="16"/>
			<Region x="4"/>
		</Regions>
	</TextureAtlas>`)

	cfg, err := ParseAtlas(data, ".xml")
	require.NoError(t, err)

	assert.Equal(t, "images/atlas", cfg.Texture)
	require.Len(t, cfg.Regions, 2)
	assert.Equal(t, RegionConfig{Name: "a", Width: 16, Height: 16}, cfg.Regions[0])
	assert.Equal(t, RegionConfig{X: 4}, cfg.Regions[1])
	assert.Empty(t, cfg.Animations, "absent animations section means no animations")
}

func TestParseAtlas_XMLMissingTexture(t *testing.T) {
	cfg, err := ParseAtlas([]byte(`<TextureAtlas><Regions/></TextureAtlas>`), ".XML")
	require.NoError(t, err)

	assert.Empty(t, cfg.Texture)
}

func TestParseAtlas_JSON(t *testing.T) {
	data := []byte(`{
		"texture": "images/atlas.png",
		"regions": [{"name": "a", "x": 0, "y": 0, "width": 16, "height": 16}],
		"animations": [{"name": "walk", "delay": 100, "frames": [{"region": "a"}]}]
	}`)

	cfg, err := ParseAtlas(data, ".json")
	require.NoError(t, err)

	assert.Equal(t, "images/atlas.png", cfg.Texture)
	require.Len(t, cfg.Animations, 1)
	assert.Equal(t, 100, cfg.Animations[0].DelayMs)
	assert.Equal(t, "a", cfg.Animations[0].Frames[0].Region)
}

func TestParseAtlas_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format string
	}{
		{"xml syntax", `<TextureAtlas><Regions>`, ".xml"},
		{"xml bad number", `<TextureAtlas><Regions><Region name="a" x="left"/></Regions></TextureAtlas>`, ".xml"},
		{"json syntax", `{"texture": }`, ".json"},
		{"yaml syntax", "texture: [unterminated", ".yaml"},
		{"unknown format", `texture = "a"`, ".toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseAtlas([]byte(tt.data), tt.format)

			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, graphics.ErrMalformedAsset)
		})
	}
}
