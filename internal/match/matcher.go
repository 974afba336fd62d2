package match

import (
	"math"

	"github.com/NlGBOB/bloxd-movie/internal/palette"
)

// DefaultSwitchThreshold is the minimum distance improvement required
// before a pixel may switch away from its previous frame's texture.
const DefaultSwitchThreshold = 15.0

// Matcher picks the candidate nearest to a target color in Euclidean RGB
// space. A Matcher is scoped to one job and is not safe for concurrent use.
type Matcher struct {
	candidates []palette.Candidate
	byTexture  map[int]int // texture id → candidate index
	threshold  float64
	memo       map[uint32]int // packed RGB → candidate index, static mode only
}

// New creates a matcher over a filtered candidate set. threshold is the
// hysteresis switch threshold used in sequence mode.
func New(candidates []palette.Candidate, threshold float64) *Matcher {
	byTexture := make(map[int]int, len(candidates))
	for i, c := range candidates {
		byTexture[c.Texture.ID] = i
	}
	return &Matcher{
		candidates: candidates,
		byTexture:  byTexture,
		threshold:  threshold,
		memo:       make(map[uint32]int),
	}
}

// Match returns the nearest candidate for a static image. Results are
// memoized by exact input color since source pixels repeat heavily.
func (m *Matcher) Match(r, g, b uint8) *palette.Candidate {
	key := uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	if i, ok := m.memo[key]; ok {
		return &m.candidates[i]
	}
	i, _ := m.nearest(r, g, b)
	m.memo[key] = i
	return &m.candidates[i]
}

// MatchSequence returns the candidate for one pixel of an animation
// frame. prevTexture is the texture chosen at this coordinate in the
// previous frame, or NoTexture. The previous texture is kept unless the
// nearest candidate improves the distance by more than the switch
// threshold; this damps per-frame flicker between near-equidistant
// textures. No memoization: the result depends on positional history.
func (m *Matcher) MatchSequence(r, g, b uint8, prevTexture int) *palette.Candidate {
	bestIdx, bestDist := m.nearest(r, g, b)
	best := &m.candidates[bestIdx]

	if prevTexture == NoTexture || best.Texture.ID == prevTexture {
		return best
	}
	prevIdx, ok := m.byTexture[prevTexture]
	if !ok {
		// Previous choice was filtered out this run.
		return best
	}
	prev := &m.candidates[prevIdx]

	if distance(r, g, b, prev.Perceived)-bestDist > m.threshold {
		return best
	}
	return prev
}

// nearest scans candidates in palette order; ties keep the first hit.
func (m *Matcher) nearest(r, g, b uint8) (int, float64) {
	bestIdx := 0
	bestDist := math.Inf(1)
	for i := range m.candidates {
		if d := distance(r, g, b, m.candidates[i].Perceived); d < bestDist {
			bestIdx = i
			bestDist = d
		}
	}
	return bestIdx, bestDist
}

func distance(r, g, b uint8, c [3]float64) float64 {
	dr := float64(r) - c[0]
	dg := float64(g) - c[1]
	db := float64(b) - c[2]
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
