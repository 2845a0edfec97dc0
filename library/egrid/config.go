package egrid

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// GridConfig describes a Grid, as loaded from a toml file like:
//
//	max_cols = 3
//	format = "png"
//
//	[[subplot]]
//	title = "Loss"
//	labels = ["train", "val"]
//	y_scale = "log"
//	window = 10
//	zoom = true
type GridConfig struct {
	MaxCols  int             `toml:"max_cols" desc:"maximum number of columns -- -1 for a single row"`
	Format   string          `toml:"format" desc:"image format: png, jpeg or bmp"`
	Subplots []SubplotConfig `toml:"subplot" desc:"one entry per subplot, in layout order"`
}

// DefaultGridConfig returns a config with one row and png output
func DefaultGridConfig() GridConfig {
	return GridConfig{MaxCols: -1, Format: "png"}
}

// LoadConfig reads a GridConfig from a toml file, on top of the defaults
func LoadConfig(fnm string) (GridConfig, error) {
	cfg := DefaultGridConfig()
	md, err := toml.DecodeFile(fnm, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("loading %s: %w", fnm, err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		return cfg, fmt.Errorf("loading %s: unknown keys %v", fnm, und)
	}
	return cfg, nil
}

// Build creates the subplots and Grid described by cfg
func (cfg GridConfig) Build() (*Grid, error) {
	if _, _, err := Encoder(cfg.Format); err != nil {
		return nil, err
	}
	sps := make([]*Subplot, 0, len(cfg.Subplots))
	for _, sc := range cfg.Subplots {
		sp, err := NewSubplot(sc)
		if err != nil {
			return nil, err
		}
		sps = append(sps, sp)
	}
	g, err := NewGrid(sps, cfg.MaxCols)
	if err != nil {
		return nil, err
	}
	g.Format = cfg.Format
	return g, nil
}
