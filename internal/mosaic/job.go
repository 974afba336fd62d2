// Package mosaic runs one conversion job: source image or animation in,
// rendered mosaic plus blueprint out. The pipeline is single-threaded;
// animation frames are processed strictly in input order because each
// frame's matching depends on the previous frame's choices.
package mosaic

import (
	"fmt"
	"image"
	"image/gif"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/NlGBOB/bloxd-movie/internal/atlas"
	"github.com/NlGBOB/bloxd-movie/internal/blueprint"
	"github.com/NlGBOB/bloxd-movie/internal/match"
	"github.com/NlGBOB/bloxd-movie/internal/palette"
	"github.com/NlGBOB/bloxd-movie/internal/render"
)

// Job bundles the shared resources and settings for one conversion.
type Job struct {
	Index      *palette.Index
	Tiles      atlas.Tiler
	Candidates []palette.Candidate

	Threshold float64
	OutWidth  int // 0 = derive from the other dimension
	OutHeight int
	TileSize  int // rendered tile side
	FPS       int
	Format    string // "png" or "webp" for stills
	OutputDir string
	MaxFrames int // 0 = all frames
}

// Result reports the artifacts written for one job.
type Result struct {
	Image     string
	Blueprint string
	Sidecar   string
	GridW     int
	GridH     int
	Frames    int
}

// Run converts one source file. Animated GIF input produces an animated
// mosaic; everything else produces a still.
func Run(job Job, sourcePath string) (Result, error) {
	data, err := render.ReadSource(sourcePath)
	if err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(job.OutputDir, 0755); err != nil {
		return Result{}, fmt.Errorf("mosaic: create output dir: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))

	if render.IsGIF(data) {
		g, err := render.DecodeAnimation(data)
		if err != nil {
			return Result{}, err
		}
		if len(g.Image) > 1 {
			return job.runAnimation(g, stem)
		}
	}
	return job.runStill(data, stem)
}

func (job Job) runStill(data []byte, stem string) (Result, error) {
	src, err := render.DecodeStill(data)
	if err != nil {
		return Result{}, err
	}

	w, h := render.FitSize(src.Bounds().Dx(), src.Bounds().Dy(), job.OutWidth, job.OutHeight)
	scaled := render.ScaleNearest(src, w, h)

	m := match.New(job.Candidates, job.Threshold)
	grid := matchFrame(m, scaled, nil, false)

	symbols, err := blueprint.Encode(grid, job.Index)
	if err != nil {
		return Result{}, err
	}

	img, err := render.Compose(grid, job.Index, job.Tiles, job.TileSize)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Blueprint: filepath.Join(job.OutputDir, stem+".blueprint.txt"),
		Sidecar:   filepath.Join(job.OutputDir, stem+".blueprint.json"),
		GridW:     w,
		GridH:     h,
		Frames:    1,
	}

	switch job.Format {
	case "webp":
		res.Image = filepath.Join(job.OutputDir, stem+"_mosaic.webp")
		err = render.WriteWebP(res.Image, img)
	default:
		res.Image = filepath.Join(job.OutputDir, stem+"_mosaic.png")
		err = render.WritePNG(res.Image, img)
	}
	if err != nil {
		return Result{}, err
	}

	if err := os.WriteFile(res.Blueprint, []byte(symbols), 0644); err != nil {
		return Result{}, fmt.Errorf("mosaic: write blueprint: %w", err)
	}
	if err := blueprint.WriteSidecar(res.Sidecar, blueprint.Sidecar{Width: w, Height: h}); err != nil {
		return Result{}, fmt.Errorf("mosaic: write sidecar: %w", err)
	}
	return res, nil
}

func (job Job) runAnimation(g *gif.GIF, stem string) (Result, error) {
	frames := render.Frames(g)
	if job.MaxFrames > 0 && job.MaxFrames < len(frames) {
		frames = frames[:job.MaxFrames]
	}

	srcB := frames[0].Bounds()
	w, h := render.FitSize(srcB.Dx(), srcB.Dy(), job.OutWidth, job.OutHeight)

	m := match.New(job.Candidates, job.Threshold)

	var prev *match.Grid
	outFrames := make([]*image.NRGBA, 0, len(frames))
	lines := make([]string, 0, len(frames))

	for i, fr := range frames {
		scaled := render.ScaleNearest(fr, w, h)
		grid := matchFrame(m, scaled, prev, true)

		symbols, err := blueprint.Encode(grid, job.Index)
		if err != nil {
			return Result{}, err
		}
		lines = append(lines, symbols)

		img, err := render.Compose(grid, job.Index, job.Tiles, job.TileSize)
		if err != nil {
			return Result{}, err
		}
		outFrames = append(outFrames, img)
		prev = grid

		if (i+1)%10 == 0 || i+1 == len(frames) {
			log.Printf("[mosaic] frame %d/%d", i+1, len(frames))
		}
	}

	res := Result{
		Image:     filepath.Join(job.OutputDir, stem+"_mosaic.gif"),
		Blueprint: filepath.Join(job.OutputDir, stem+".blueprint.txt"),
		Sidecar:   filepath.Join(job.OutputDir, stem+".blueprint.json"),
		GridW:     w,
		GridH:     h,
		Frames:    len(frames),
	}

	if err := render.WriteGIF(res.Image, render.EncodeAnimation(outFrames, job.FPS)); err != nil {
		return Result{}, err
	}
	// One symbol string per frame, frame order preserved.
	if err := os.WriteFile(res.Blueprint, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return Result{}, fmt.Errorf("mosaic: write blueprint: %w", err)
	}
	sc := blueprint.Sidecar{Width: w, Height: h, Frames: len(frames)}
	if err := blueprint.WriteSidecar(res.Sidecar, sc); err != nil {
		return Result{}, fmt.Errorf("mosaic: write sidecar: %w", err)
	}
	return res, nil
}

// matchFrame matches every pixel of one scaled frame. prev is the
// previous frame's grid for sequence mode, nil for the first frame.
func matchFrame(m *match.Matcher, img *image.NRGBA, prev *match.Grid, sequence bool) *match.Grid {
	b := img.Bounds()
	grid := match.NewGrid(b.Dx(), b.Dy())

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			r, g, bl := img.Pix[i], img.Pix[i+1], img.Pix[i+2]

			var c *palette.Candidate
			if sequence {
				prevID := match.NoTexture
				if prev != nil {
					prevID = prev.At(x, y)
				}
				c = m.MatchSequence(r, g, bl, prevID)
			} else {
				c = m.Match(r, g, bl)
			}
			grid.Set(x, y, c.Texture.ID)
		}
	}
	return grid
}
