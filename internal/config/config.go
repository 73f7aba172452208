// Package config provides YAML-based configuration loading for the sketch
// platform.
package config

// SketchConfig contains all configuration for the sketch widget.
type SketchConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Colors ColorsConfig `yaml:"colors"`
	Render RenderConfig `yaml:"render"`
	Seed   int64        `yaml:"seed"` // 0 means derive from time
}

// GridConfig defines the initial canvas shape.
type GridConfig struct {
	Dimension int `yaml:"dimension"`
}

// ColorsConfig defines the color engine parameters.
type ColorsConfig struct {
	Neutral       ChannelTriple `yaml:"neutral"`
	DarkenPercent int           `yaml:"darken_percent"`
}

// ChannelTriple is an RGB color in configuration form.
type ChannelTriple struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// RenderConfig defines how cells are drawn in the terminal.
type RenderConfig struct {
	// CellWidth is how many terminal columns one canvas cell occupies.
	// Two columns per cell makes cells roughly square.
	CellWidth int `yaml:"cell_width"`
}
