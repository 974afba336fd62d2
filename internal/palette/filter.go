package palette

import (
	"fmt"
	"math"

	"github.com/NlGBOB/bloxd-movie/internal/blocks"
)

// Options control candidate filtering. Nil limits mean unlimited.
type Options struct {
	Face              blocks.Face
	MaxVariance       *float64
	MaxColorCount     *int
	AllowTransparency bool
	SearchDepth       *int
}

// Candidate pairs a palette texture with the perceived color used for
// matching. Candidates keep palette order.
type Candidate struct {
	Texture   *Texture
	Perceived [3]float64
}

// Candidates filters the palette down to the textures usable for one job.
// An unknown face or an empty result is fatal: there is no fallback.
func (ix *Index) Candidates(opts Options) ([]Candidate, error) {
	colors, ok := ix.FaceIndex[opts.Face]
	if !ok {
		return nil, fmt.Errorf("palette: face %q not present in index", opts.Face)
	}

	valid := make(map[int]struct{})
	for _, ids := range colors {
		for _, id := range ids {
			valid[id] = struct{}{}
		}
	}

	depth := 0
	if opts.SearchDepth != nil {
		depth = *opts.SearchDepth
	}

	var out []Candidate
	for i := range ix.Palette {
		tex := &ix.Palette[i]
		if _, ok := valid[tex.ID]; !ok {
			continue
		}
		if opts.MaxColorCount != nil && tex.ColorCount > *opts.MaxColorCount {
			continue
		}
		if tex.HasTransparency && !opts.AllowTransparency {
			continue
		}
		if opts.MaxVariance != nil && Variance(tex.Histogram) > *opts.MaxVariance {
			continue
		}
		perceived, ok := PerceivedColor(tex.Histogram, depth)
		if !ok {
			// Every considered entry is transparent, nothing to match on.
			continue
		}
		out = append(out, Candidate{Texture: tex, Perceived: perceived})
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("palette: no usable candidates for face %q", opts.Face)
	}
	return out, nil
}

// PerceivedColor is the pixel-count-weighted mean color over the top
// depth histogram entries, transparent entries excluded. depth <= 0 means
// the whole histogram. ok is false when the considered entries carry no
// opaque pixels at all.
func PerceivedColor(hist []ColorCount, depth int) ([3]float64, bool) {
	if depth <= 0 || depth > len(hist) {
		depth = len(hist)
	}

	var r, g, b float64
	total := 0
	for _, e := range hist[:depth] {
		if e.Transparent {
			continue
		}
		w := float64(e.Count)
		r += float64(e.R) * w
		g += float64(e.G) * w
		b += float64(e.B) * w
		total += e.Count
	}
	if total == 0 {
		return [3]float64{}, false
	}
	w := float64(total)
	return [3]float64{r / w, g / w, b / w}, true
}

// Variance is the pixel-count-weighted mean Euclidean distance of each
// opaque histogram color from the full-depth perceived color. A texture
// with at most one distinct color has variance 0.
func Variance(hist []ColorCount) float64 {
	if len(hist) <= 1 {
		return 0
	}
	mean, ok := PerceivedColor(hist, 0)
	if !ok {
		return 0
	}

	var sum float64
	total := 0
	for _, e := range hist {
		if e.Transparent {
			continue
		}
		dr := float64(e.R) - mean[0]
		dg := float64(e.G) - mean[1]
		db := float64(e.B) - mean[2]
		sum += math.Sqrt(dr*dr+dg*dg+db*db) * float64(e.Count)
		total += e.Count
	}
	if total == 0 {
		return 0
	}
	return sum / float64(total)
}
