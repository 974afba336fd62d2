package render

import (
	"image"

	"github.com/disintegration/gift"
)

// FitSize derives the output grid size from the configured width and
// height. When only one is set the other follows the source aspect
// ratio; when neither is set the source size is used as-is.
func FitSize(srcW, srcH, outW, outH int) (int, int) {
	switch {
	case outW > 0 && outH > 0:
		return outW, outH
	case outW > 0:
		h := (srcH*outW + srcW/2) / srcW
		if h < 1 {
			h = 1
		}
		return outW, h
	case outH > 0:
		w := (srcW*outH + srcH/2) / srcH
		if w < 1 {
			w = 1
		}
		return w, outH
	default:
		return srcW, srcH
	}
}

// ScaleNearest resizes with nearest-neighbor sampling, one source pixel
// per output mosaic cell.
func ScaleNearest(img image.Image, w, h int) *image.NRGBA {
	if b := img.Bounds(); b.Dx() == w && b.Dy() == h {
		if n, ok := img.(*image.NRGBA); ok {
			return n
		}
	}
	g := gift.New(gift.Resize(w, h, gift.NearestNeighborResampling))
	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}
