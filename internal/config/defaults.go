package config

import (
	_ "embed"
)

//go:embed defaults/tui2048.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded defaults, used when the embedded
// YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			SpawnFourProbability: 0.1,
			UndoDepth:            1,
		},
		Input: InputConfig{
			DragThreshold: 3,
		},
		Storage: StorageConfig{
			Path: "~/.tui2048/tui2048.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.tui2048/tui2048.log",
		},
		UI: UIConfig{
			ToastSeconds: 3,
			Animate:      true,
		},
		Theme: ThemeConfig{
			Tiles: map[int]TileColor{
				2:    {Fg: "#171717", Bg: "#f5f5f5"},
				4:    {Fg: "#171717", Bg: "#fef9c3"},
				8:    {Fg: "#171717", Bg: "#fdba74"},
				16:   {Fg: "#171717", Bg: "#fb923c"},
				32:   {Fg: "#171717", Bg: "#fca5a5"},
				64:   {Fg: "#171717", Bg: "#f87171"},
				128:  {Fg: "#171717", Bg: "#4ade80"},
				256:  {Fg: "#171717", Bg: "#22c55e"},
				512:  {Fg: "#171717", Bg: "#60a5fa"},
				1024: {Fg: "#171717", Bg: "#3b82f6"},
				2048: {Fg: "#fafafa", Bg: "#a855f7"},
			},
			Fallback: TileColor{Fg: "#fafafa", Bg: "#713f12"},
			Empty:    TileColor{Fg: "#737373", Bg: "#e5e7eb"},
		},
	}
}
