package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"os"

	"github.com/ericpauley/go-quantize/quantize"
)

// Frames flattens an animated GIF into fully composited frames in input
// order. Partial frames are drawn over the running canvas; background
// disposal clears the frame rectangle afterwards.
func Frames(g *gif.GIF) []*image.NRGBA {
	w, h := g.Config.Width, g.Config.Height
	if w == 0 || h == 0 {
		b := g.Image[0].Bounds()
		w, h = b.Max.X, b.Max.Y
	}
	bounds := image.Rect(0, 0, w, h)
	canvas := image.NewNRGBA(bounds)

	out := make([]*image.NRGBA, 0, len(g.Image))
	for i, frame := range g.Image {
		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)

		snap := image.NewNRGBA(bounds)
		copy(snap.Pix, canvas.Pix)
		out = append(out, snap)

		if i < len(g.Disposal) && g.Disposal[i] == gif.DisposalBackground {
			draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		}
	}
	return out
}

// EncodeAnimation re-encodes composited mosaic frames as a GIF with a
// fixed per-frame delay derived from fps. Each frame gets its own
// median-cut palette.
func EncodeAnimation(frames []*image.NRGBA, fps int) *gif.GIF {
	if fps <= 0 {
		fps = 10
	}
	delay := (100 + fps/2) / fps
	if delay < 1 {
		delay = 1
	}

	q := quantize.MedianCutQuantizer{AddTransparent: true}
	out := &gif.GIF{}
	for _, fr := range frames {
		pal := q.Quantize(make(color.Palette, 0, 256), fr)
		pimg := image.NewPaletted(fr.Bounds(), pal)
		draw.Draw(pimg, fr.Bounds(), fr, fr.Bounds().Min, draw.Src)
		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
	}
	return out
}

// WriteGIF writes an animated mosaic.
func WriteGIF(path string, g *gif.GIF) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer f.Close()
	if err := gif.EncodeAll(f, g); err != nil {
		return fmt.Errorf("render: GIF encode: %w", err)
	}
	return f.Close()
}
