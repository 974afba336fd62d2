package config

import "testing"

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{MaxVariance: -1})

	if cfg.TileSize != 16 || cfg.RenderTileSize != 16 {
		t.Errorf("tile sizes = %d/%d, want 16/16", cfg.TileSize, cfg.RenderTileSize)
	}
	if cfg.Face != "front" || cfg.Format != "png" {
		t.Errorf("face/format = %s/%s, want front/png", cfg.Face, cfg.Format)
	}
	if cfg.SwitchThreshold != 15.0 || cfg.FPS != 10 {
		t.Errorf("threshold/fps = %v/%d, want 15/10", cfg.SwitchThreshold, cfg.FPS)
	}
	if cfg.MaxVariance != nil || cfg.MaxColorCount != nil || cfg.SearchDepth != nil {
		t.Error("limits must stay unlimited when no flag is passed")
	}
}

func TestResolveOverrides(t *testing.T) {
	cfg := Config{Face: "top", FPS: 24, TileSize: 8}
	allow := true
	cfg.Resolve(Flags{
		Face:              "left",
		MaxVariance:       12.5,
		MaxColorCount:     6,
		SearchDepth:       3,
		AllowTransparency: &allow,
	})

	if cfg.Face != "left" {
		t.Errorf("face = %s, flag must override config", cfg.Face)
	}
	if cfg.FPS != 24 || cfg.TileSize != 8 {
		t.Error("config values clobbered without a flag")
	}
	if cfg.MaxVariance == nil || *cfg.MaxVariance != 12.5 {
		t.Errorf("max variance = %v, want 12.5", cfg.MaxVariance)
	}
	if cfg.MaxColorCount == nil || *cfg.MaxColorCount != 6 {
		t.Errorf("max colors = %v, want 6", cfg.MaxColorCount)
	}
	if cfg.SearchDepth == nil || *cfg.SearchDepth != 3 {
		t.Errorf("depth = %v, want 3", cfg.SearchDepth)
	}
	if !cfg.AllowTransparency {
		t.Error("transparency flag not applied")
	}
	if cfg.RenderTileSize != 8 {
		t.Errorf("render tile size = %d, want tile size 8", cfg.RenderTileSize)
	}
}
