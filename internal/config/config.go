package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds all configurable paths and job settings. Pointer fields
// are nullable limits: JSON null or absent means unlimited.
type Config struct {
	// Paths
	AtlasDir     string `json:"atlas_dir"`
	BlocksJSON   string `json:"blocks_json"`
	IndexFile    string `json:"index_file"`
	IncludedFile string `json:"included_blocks_file"`
	OutputDir    string `json:"output_dir"`

	// Index settings
	TileSize int `json:"tile_size"`

	// Job settings
	OutWidth          int      `json:"out_width"`
	OutHeight         int      `json:"out_height"`
	Face              string   `json:"face"`
	MaxVariance       *float64 `json:"max_variance"`
	MaxColorCount     *int     `json:"max_color_count"`
	SearchDepth       *int     `json:"search_depth"`
	AllowTransparency bool     `json:"allow_transparency"`
	SwitchThreshold   float64  `json:"switch_threshold"`
	FPS               int      `json:"fps"`
	Format            string   `json:"format"`
	RenderTileSize    int      `json:"render_tile_size"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Sentinels mark flags the user did not pass: empty string, zero, or a
// negative MaxVariance.
type Flags struct {
	AtlasDir     string
	BlocksJSON   string
	IndexFile    string
	IncludedFile string
	OutputDir    string

	TileSize int

	Width, Height     int
	Face              string
	MaxVariance       float64 // negative = not passed
	MaxColorCount     int
	SearchDepth       int
	AllowTransparency *bool
	SwitchThreshold   float64
	FPS               int
	Format            string
}

// Resolve applies CLI overrides, then fills remaining empty fields with
// defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.AtlasDir != "" {
		c.AtlasDir = flags.AtlasDir
	}
	if flags.BlocksJSON != "" {
		c.BlocksJSON = flags.BlocksJSON
	}
	if flags.IndexFile != "" {
		c.IndexFile = flags.IndexFile
	}
	if flags.IncludedFile != "" {
		c.IncludedFile = flags.IncludedFile
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.TileSize > 0 {
		c.TileSize = flags.TileSize
	}
	if flags.Width > 0 {
		c.OutWidth = flags.Width
	}
	if flags.Height > 0 {
		c.OutHeight = flags.Height
	}
	if flags.Face != "" {
		c.Face = flags.Face
	}
	if flags.MaxVariance >= 0 {
		v := flags.MaxVariance
		c.MaxVariance = &v
	}
	if flags.MaxColorCount > 0 {
		v := flags.MaxColorCount
		c.MaxColorCount = &v
	}
	if flags.SearchDepth > 0 {
		v := flags.SearchDepth
		c.SearchDepth = &v
	}
	if flags.AllowTransparency != nil {
		c.AllowTransparency = *flags.AllowTransparency
	}
	if flags.SwitchThreshold > 0 {
		c.SwitchThreshold = flags.SwitchThreshold
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}

	// Defaults
	if c.AtlasDir == "" {
		c.AtlasDir = "atlases"
	}
	if c.BlocksJSON == "" {
		c.BlocksJSON = "blocks.json"
	}
	if c.IndexFile == "" {
		c.IndexFile = "block_index.json.zst"
	}
	if c.IncludedFile == "" {
		c.IncludedFile = "included_blocks.json"
	}
	if c.OutputDir == "" {
		c.OutputDir = "out"
	}
	if c.TileSize <= 0 {
		c.TileSize = 16
	}
	if c.RenderTileSize <= 0 {
		c.RenderTileSize = c.TileSize
	}
	if c.Face == "" {
		c.Face = "front"
	}
	if c.SwitchThreshold <= 0 {
		c.SwitchThreshold = 15.0
	}
	if c.FPS <= 0 {
		c.FPS = 10
	}
	if c.Format == "" {
		c.Format = "png"
	}
}
