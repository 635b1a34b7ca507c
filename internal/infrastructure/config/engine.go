package config

// EngineConfig is the root config for engine.json
type EngineConfig struct {
	Window  WindowConfig  `json:"window"`
	Input   InputConfig   `json:"input"`
	Content ContentConfig `json:"content"`
}

type WindowConfig struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Fullscreen   bool   `json:"fullscreen"`
	MouseVisible bool   `json:"mouseVisible"`
}

type InputConfig struct {
	ExitOnEscape bool `json:"exitOnEscape"`
}

// ContentConfig locates game content relative to the content root
type ContentConfig struct {
	Root  string `json:"root"`  // Directory textures and atlases are resolved against
	Atlas string `json:"atlas"` // Atlas description loaded by the demo scenes
}

// DefaultEngineConfig returns the values used for fields missing from engine.json
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Window: WindowConfig{
			Title:        "Game",
			ScreenWidth:  1280,
			ScreenHeight: 720,
			Scale:        1,
			Framerate:    60,
			MouseVisible: true,
		},
		Input: InputConfig{
			ExitOnEscape: true,
		},
		Content: ContentConfig{
			Root: "content",
		},
	}
}
