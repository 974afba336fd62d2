package palette

import (
	"math"
	"testing"

	"github.com/NlGBOB/bloxd-movie/internal/blocks"
)

func opaque(r, g, b uint8, count int) ColorCount {
	return ColorCount{R: r, G: g, B: b, Count: count}
}

func transparent(count int) ColorCount {
	return ColorCount{Transparent: true, Count: count}
}

// testIndex builds an index whose front face admits every texture.
func testIndex(textures ...Texture) *Index {
	ix := &Index{
		Version:   Version,
		TileSize:  16,
		FaceIndex: map[blocks.Face]map[string][]int{blocks.FaceFront: {}},
	}
	for i := range textures {
		textures[i].ID = i
		textures[i].ColorCount = len(textures[i].Histogram)
		for _, e := range textures[i].Histogram {
			if e.Transparent {
				textures[i].HasTransparency = true
			}
			k := colorKey(e)
			ix.FaceIndex[blocks.FaceFront][k] = append(ix.FaceIndex[blocks.FaceFront][k], i)
		}
	}
	ix.Palette = textures
	return ix
}

func TestPerceivedColorUniform(t *testing.T) {
	hist := []ColorCount{opaque(200, 100, 50, 256)}
	for _, depth := range []int{0, 1, 5} {
		got, ok := PerceivedColor(hist, depth)
		if !ok {
			t.Fatalf("depth %d: no perceived color", depth)
		}
		if got != [3]float64{200, 100, 50} {
			t.Errorf("depth %d: perceived = %v, want [200 100 50]", depth, got)
		}
	}
}

func TestPerceivedColorDepthAndTransparency(t *testing.T) {
	hist := []ColorCount{
		opaque(100, 0, 0, 60),
		transparent(30),
		opaque(200, 0, 0, 10),
	}

	// Depth 2 covers the dominant color and the transparent entry; only
	// the opaque pixels weigh in.
	got, ok := PerceivedColor(hist, 2)
	if !ok || got[0] != 100 {
		t.Errorf("depth 2: perceived = %v ok=%v, want r=100", got, ok)
	}

	// Full depth mixes both opaque colors by weight.
	got, ok = PerceivedColor(hist, 0)
	want := (100.0*60 + 200.0*10) / 70
	if !ok || math.Abs(got[0]-want) > 1e-9 {
		t.Errorf("full depth: perceived r = %v, want %v", got[0], want)
	}
}

func TestPerceivedColorAllTransparent(t *testing.T) {
	if _, ok := PerceivedColor([]ColorCount{transparent(256)}, 0); ok {
		t.Error("all-transparent histogram yielded a perceived color")
	}
}

func TestVarianceSingleColor(t *testing.T) {
	if v := Variance([]ColorCount{opaque(10, 20, 30, 256)}); v != 0 {
		t.Errorf("variance = %v, want 0", v)
	}
	// Single opaque color plus transparency is still spread-free.
	if v := Variance([]ColorCount{opaque(10, 20, 30, 200), transparent(56)}); v != 0 {
		t.Errorf("variance with transparency = %v, want 0", v)
	}
}

func TestVarianceTwoColors(t *testing.T) {
	// Equal weights of (0,0,0) and (100,0,0): mean r=50, each 50 away.
	v := Variance([]ColorCount{opaque(0, 0, 0, 128), opaque(100, 0, 0, 128)})
	if math.Abs(v-50) > 1e-9 {
		t.Errorf("variance = %v, want 50", v)
	}
}

func TestCandidatesUnknownFace(t *testing.T) {
	ix := testIndex(Texture{Histogram: []ColorCount{opaque(1, 2, 3, 256)}})
	if _, err := ix.Candidates(Options{Face: blocks.FaceTop}); err == nil {
		t.Error("expected error for face absent from index")
	}
}

func TestCandidatesFiltersMonotonic(t *testing.T) {
	ix := testIndex(
		Texture{Histogram: []ColorCount{opaque(0, 0, 0, 256)}},
		Texture{Histogram: []ColorCount{opaque(0, 0, 0, 128), opaque(100, 0, 0, 128)}},
		Texture{Histogram: []ColorCount{opaque(10, 10, 10, 100), opaque(20, 20, 20, 100), opaque(30, 30, 30, 56)}},
	)

	prev := len(ix.Palette) + 1
	for _, maxVar := range []float64{100, 50, 10, 0} {
		v := maxVar
		cands, err := ix.Candidates(Options{Face: blocks.FaceFront, MaxVariance: &v})
		n := len(cands)
		if err != nil {
			n = 0
		}
		if n > prev {
			t.Errorf("maxVariance %v: %d candidates, more than %d at looser limit", maxVar, n, prev)
		}
		prev = n
	}

	prevN := len(ix.Palette) + 1
	for _, maxColors := range []int{3, 2, 1} {
		c := maxColors
		cands, err := ix.Candidates(Options{Face: blocks.FaceFront, MaxColorCount: &c})
		n := len(cands)
		if err != nil {
			n = 0
		}
		if n > prevN {
			t.Errorf("maxColorCount %d: %d candidates, more than %d at looser limit", maxColors, n, prevN)
		}
		prevN = n
	}
}

func TestCandidatesTransparencyRejection(t *testing.T) {
	ix := testIndex(
		Texture{Histogram: []ColorCount{opaque(1, 1, 1, 256)}},
		Texture{Histogram: []ColorCount{opaque(2, 2, 2, 200), transparent(56)}},
	)

	cands, err := ix.Candidates(Options{Face: blocks.FaceFront, AllowTransparency: false})
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}
	if len(cands) != 1 || cands[0].Texture.ID != 0 {
		t.Errorf("got %d candidates, want only the opaque texture", len(cands))
	}

	cands, err = ix.Candidates(Options{Face: blocks.FaceFront, AllowTransparency: true})
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}
	if len(cands) != 2 {
		t.Errorf("got %d candidates with transparency allowed, want 2", len(cands))
	}
}

func TestCandidatesAllTransparentExcluded(t *testing.T) {
	ix := testIndex(
		Texture{Histogram: []ColorCount{transparent(256)}},
		Texture{Histogram: []ColorCount{opaque(5, 5, 5, 256)}},
	)

	cands, err := ix.Candidates(Options{Face: blocks.FaceFront, AllowTransparency: true})
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}
	for _, c := range cands {
		if c.Texture.ID == 0 {
			t.Error("texture with no opaque pixels survived filtering")
		}
	}
}

func TestCandidatesEmptyIsError(t *testing.T) {
	ix := testIndex(Texture{Histogram: []ColorCount{transparent(256)}})
	if _, err := ix.Candidates(Options{Face: blocks.FaceFront, AllowTransparency: true}); err == nil {
		t.Error("expected error when no candidate survives")
	}
}
