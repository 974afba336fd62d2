package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/HugoSmits86/nativewebp"
	xdraw "golang.org/x/image/draw"

	"github.com/NlGBOB/bloxd-movie/internal/atlas"
	"github.com/NlGBOB/bloxd-movie/internal/match"
	"github.com/NlGBOB/bloxd-movie/internal/palette"
)

// Compose renders the mosaic: every matched cell becomes one tileSize
// square texture blitted at its cell position. Unmatched cells stay
// transparent. Tiles cropped at a different size than tileSize are
// rescaled with nearest-neighbor sampling.
func Compose(grid *match.Grid, ix *palette.Index, tiles atlas.Tiler, tileSize int) (*image.NRGBA, error) {
	out := image.NewNRGBA(image.Rect(0, 0, grid.W*tileSize, grid.H*tileSize))

	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			id := grid.At(x, y)
			if id == match.NoTexture {
				continue
			}
			tex := &ix.Palette[id]
			tile, err := tiles.Tile(tex.File, tex.Tile)
			if err != nil {
				return nil, fmt.Errorf("render: tile for texture %d: %w", id, err)
			}
			dst := image.Rect(x*tileSize, y*tileSize, (x+1)*tileSize, (y+1)*tileSize)
			if tile.Bounds().Dx() == tileSize && tile.Bounds().Dy() == tileSize {
				xdraw.Copy(out, dst.Min, tile, tile.Bounds(), xdraw.Src, nil)
			} else {
				xdraw.NearestNeighbor.Scale(out, dst, tile, tile.Bounds(), xdraw.Src, nil)
			}
		}
	}
	return out, nil
}

// WritePNG writes a still mosaic as PNG.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("render: PNG encode: %w", err)
	}
	return f.Close()
}

// WriteWebP writes a still mosaic as lossless WebP.
func WriteWebP(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer f.Close()
	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("render: WebP encode: %w", err)
	}
	return f.Close()
}
