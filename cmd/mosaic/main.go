package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/NlGBOB/bloxd-movie/internal/atlas"
	"github.com/NlGBOB/bloxd-movie/internal/blocks"
	"github.com/NlGBOB/bloxd-movie/internal/config"
	"github.com/NlGBOB/bloxd-movie/internal/mosaic"
	"github.com/NlGBOB/bloxd-movie/internal/palette"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	input := flag.String("in", "", "Source image or animated GIF (required)")
	atlasDir := flag.String("atlases", "", "Directory with atlas images (default: atlases)")
	indexFile := flag.String("index", "", "Palette index file (default: block_index.json.zst)")
	outputDir := flag.String("out", "", "Output directory (default: out)")
	width := flag.Int("width", 0, "Output width in blocks (height derived if unset)")
	height := flag.Int("height", 0, "Output height in blocks (width derived if unset)")
	face := flag.String("face", "", "Block face to match against (default: front)")
	maxVariance := flag.Float64("max-variance", -1, "Reject textures above this color variance (default: unlimited)")
	maxColors := flag.Int("max-colors", 0, "Reject textures with more distinct colors (default: unlimited)")
	depth := flag.Int("depth", 0, "Histogram entries averaged for the perceived color (default: all)")
	transparency := flag.Bool("transparency", false, "Allow textures with transparent pixels")
	threshold := flag.Float64("threshold", 0, "Hysteresis switch threshold for animations (default: 15)")
	fps := flag.Int("fps", 0, "Output frame rate for animations (default: 10)")
	format := flag.String("format", "", "Still output format: png or webp (default: png)")
	maxFrames := flag.Int("frames", 0, "Process only first N frames for testing")

	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Error: -in is required")
		flag.Usage()
		os.Exit(1)
	}

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

	// CLI flags override config file. The transparency flag is tri-state:
	// only an explicitly passed flag overrides the config value.
	flags := config.Flags{
		AtlasDir:        *atlasDir,
		IndexFile:       *indexFile,
		OutputDir:       *outputDir,
		Width:           *width,
		Height:          *height,
		Face:            *face,
		MaxVariance:     *maxVariance,
		MaxColorCount:   *maxColors,
		SearchDepth:     *depth,
		SwitchThreshold: *threshold,
		FPS:             *fps,
		Format:          *format,
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "transparency" {
			flags.AllowTransparency = transparency
		}
	})
	cfg.Resolve(flags)

	faceDir, ok := blocks.ParseFace(cfg.Face)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown face %q (top/bottom/front/back/left/right)\n", cfg.Face)
		os.Exit(1)
	}

	// Load the persisted index
	ix, err := palette.LoadIndex(cfg.IndexFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading index: %v\n", err)
		os.Exit(1)
	}

	paths, err := atlas.List(cfg.AtlasDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing atlases: %v\n", err)
		os.Exit(1)
	}
	tiles := atlas.NewCache(paths, ix.TileSize)

	// Filter once per job
	candidates, err := ix.Candidates(palette.Options{
		Face:              faceDir,
		MaxVariance:       cfg.MaxVariance,
		MaxColorCount:     cfg.MaxColorCount,
		AllowTransparency: cfg.AllowTransparency,
		SearchDepth:       cfg.SearchDepth,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Bloxd Mosaic Converter\n")
	fmt.Printf("Palette: %d textures, %d candidates (face %s)\n", len(ix.Palette), len(candidates), faceDir)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	res, err := mosaic.Run(mosaic.Job{
		Index:      ix,
		Tiles:      tiles,
		Candidates: candidates,
		Threshold:  cfg.SwitchThreshold,
		OutWidth:   cfg.OutWidth,
		OutHeight:  cfg.OutHeight,
		TileSize:   cfg.RenderTileSize,
		FPS:        cfg.FPS,
		Format:     cfg.Format,
		OutputDir:  cfg.OutputDir,
		MaxFrames:  *maxFrames,
	}, *input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done: %dx%d blocks, %d frame(s) in %.1fs\n",
		res.GridW, res.GridH, res.Frames, time.Since(start).Seconds())
	fmt.Printf("Mosaic: %s\n", res.Image)
	fmt.Printf("Blueprint: %s (%s)\n", res.Blueprint, res.Sidecar)
}
