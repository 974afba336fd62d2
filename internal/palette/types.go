package palette

import (
	"fmt"

	"github.com/NlGBOB/bloxd-movie/internal/blocks"
)

// Texture is one deduplicated square tile cut from an atlas, with the
// appearance data persisted in the index. ID doubles as the texture's
// position in Index.Palette.
type Texture struct {
	ID              int          `json:"id"`
	File            int          `json:"file"`
	Tile            int          `json:"tile"`
	Histogram       []ColorCount `json:"histogram"`
	ColorCount      int          `json:"color_count"`
	HasTransparency bool         `json:"has_transparency"`
	BlockIDs        []int        `json:"block_ids"`
}

// Index is the persisted palette index artifact: the deduplicated texture
// palette in discovery order, the id-to-name block map, and the per-face
// color index.
type Index struct {
	Version   string                           `json:"version"`
	TileSize  int                              `json:"tile_size"`
	Palette   []Texture                        `json:"texture_palette"`
	BlockMap  map[int]string                   `json:"block_map"`
	FaceIndex map[blocks.Face]map[string][]int `json:"face_index"`
}

// colorKey is the FaceIndex key for one histogram entry.
func colorKey(e ColorCount) string {
	if e.Transparent {
		return "transparent"
	}
	return fmt.Sprintf("%d,%d,%d", e.R, e.G, e.B)
}
