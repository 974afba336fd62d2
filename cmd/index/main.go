package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/NlGBOB/bloxd-movie/internal/atlas"
	"github.com/NlGBOB/bloxd-movie/internal/blocks"
	"github.com/NlGBOB/bloxd-movie/internal/config"
	"github.com/NlGBOB/bloxd-movie/internal/palette"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	atlasDir := flag.String("atlases", "", "Directory with atlas images (default: atlases)")
	blocksJSON := flag.String("blocks", "", "Path to blocks.json (default: blocks.json)")
	indexFile := flag.String("out", "", "Output index file (default: block_index.json.zst)")
	includedFile := flag.String("included", "", "Included block ids file (default: included_blocks.json)")
	tileSize := flag.Int("tile", 0, "Square tile side length (default: 16)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		AtlasDir:     *atlasDir,
		BlocksJSON:   *blocksJSON,
		IndexFile:    *indexFile,
		IncludedFile: *includedFile,
		TileSize:     *tileSize,
		MaxVariance:  -1,
	})

	// Load block definitions
	defs, err := blocks.Parse(cfg.BlocksJSON)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading blocks: %v\n", err)
		os.Exit(1)
	}

	// Enumerate atlases
	paths, err := atlas.List(cfg.AtlasDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing atlases: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Bloxd Palette Indexer\n")
	fmt.Printf("Blocks: %d, Atlases: %d, Tile: %dpx\n", len(defs), len(paths), cfg.TileSize)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	tiles := atlas.NewCache(paths, cfg.TileSize)
	ix, included, err := palette.Build(defs, tiles, cfg.TileSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building index: %v\n", err)
		os.Exit(1)
	}

	if err := ix.Save(cfg.IndexFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving index: %v\n", err)
		os.Exit(1)
	}
	if err := palette.SaveIncluded(cfg.IncludedFile, included); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving included blocks: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Indexed %d textures for %d blocks in %.1fs\n",
		len(ix.Palette), len(included), time.Since(start).Seconds())
	fmt.Printf("Index: %s\n", cfg.IndexFile)
	fmt.Printf("Included blocks: %s\n", cfg.IncludedFile)
}
