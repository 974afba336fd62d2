package palette

import (
	"image"
	"sort"
)

// ColorCount is one histogram entry: a 24-bit RGB color, or the synthetic
// transparent color, and how many pixels of the texture carry it.
type ColorCount struct {
	R           uint8 `json:"r"`
	G           uint8 `json:"g"`
	B           uint8 `json:"b"`
	Transparent bool  `json:"transparent,omitempty"`
	Count       int   `json:"count"`
}

// Analysis is the analyzer output for one tile. The histogram is the only
// representation of the tile's appearance kept past index build.
type Analysis struct {
	HasTransparency bool
	ColorCount      int
	Histogram       []ColorCount
}

// Analyze scans every pixel of a tile. Pixels below full opacity fold into
// a single synthetic transparent entry; opaque pixels are keyed by their
// 24-bit RGB value. Entries are sorted by descending pixel count, ties
// keeping discovery order.
func Analyze(tile *image.NRGBA) Analysis {
	const transparentKey = -1

	counts := make(map[int32]int)
	var order []int32

	b := tile.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := tile.PixOffset(x, y)
			var key int32
			if tile.Pix[i+3] < 255 {
				key = transparentKey
			} else {
				key = int32(tile.Pix[i])<<16 | int32(tile.Pix[i+1])<<8 | int32(tile.Pix[i+2])
			}
			if _, seen := counts[key]; !seen {
				order = append(order, key)
			}
			counts[key]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	res := Analysis{ColorCount: len(order), Histogram: make([]ColorCount, len(order))}
	for i, key := range order {
		entry := ColorCount{Count: counts[key]}
		if key == transparentKey {
			entry.Transparent = true
			res.HasTransparency = true
		} else {
			entry.R = uint8(key >> 16)
			entry.G = uint8(key >> 8)
			entry.B = uint8(key)
		}
		res.Histogram[i] = entry
	}
	return res
}
