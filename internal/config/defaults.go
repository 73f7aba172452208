package config

import (
	_ "embed"
)

//go:embed defaults/sketch.yaml
var defaultSketchYAML []byte

// DefaultSketchConfig returns the default sketch configuration.
func DefaultSketchConfig() SketchConfig {
	return SketchConfig{
		Grid: GridConfig{
			Dimension: 16,
		},
		Colors: ColorsConfig{
			Neutral:       ChannelTriple{R: 240, G: 240, B: 240},
			DarkenPercent: 10,
		},
		Render: RenderConfig{
			CellWidth: 2,
		},
		Seed: 0,
	}
}
