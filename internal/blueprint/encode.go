// Package blueprint turns a grid of texture choices into the compact
// symbolic form consumed by the in-game builder: one rune per cell,
// offset from a private-use code point, concatenated row-major.
package blueprint

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/NlGBOB/bloxd-movie/internal/match"
	"github.com/NlGBOB/bloxd-movie/internal/palette"
)

// SymbolBase is the first code point of the reserved symbol range
// (Unicode Private Use Area). Block id 0 encodes the empty cell.
const SymbolBase = 0xE000

// MaxBlockID is the largest encodable block id: the PUA ends at U+F8FF.
const MaxBlockID = 0xF8FF - SymbolBase

// Encode maps every grid cell to a block symbol. An unmatched cell emits
// block id 0; otherwise the cell's texture is resolved to the smallest of
// its owning block ids, the deterministic pick when one texture backs
// several blocks.
func Encode(grid *match.Grid, ix *palette.Index) (string, error) {
	var sb strings.Builder
	sb.Grow(grid.W * grid.H)

	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			blockID := 0
			if id := grid.At(x, y); id != match.NoTexture {
				tex := &ix.Palette[id]
				if len(tex.BlockIDs) == 0 {
					return "", fmt.Errorf("blueprint: texture %d has no owning block", id)
				}
				blockID = tex.BlockIDs[0]
			}
			if blockID < 0 || blockID > MaxBlockID {
				return "", fmt.Errorf("blueprint: block id %d outside symbol range 0..%d", blockID, MaxBlockID)
			}
			sb.WriteRune(rune(SymbolBase + blockID))
		}
	}
	return sb.String(), nil
}

// Decode maps a symbol string back to block ids. It is the inverse of
// Encode and exists for verification.
func Decode(s string) []int {
	ids := make([]int, 0, len(s))
	for _, r := range s {
		ids = append(ids, int(r)-SymbolBase)
	}
	return ids
}

// Sidecar is the JSON metadata written next to a blueprint file.
type Sidecar struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Frames int `json:"frames,omitempty"`
}

// WriteSidecar writes the blueprint metadata JSON.
func WriteSidecar(path string, sc Sidecar) error {
	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
