package palette

import (
	"fmt"
	"log"
	"sort"

	"github.com/NlGBOB/bloxd-movie/internal/atlas"
	"github.com/NlGBOB/bloxd-movie/internal/blocks"
)

// Build constructs the palette index from block definitions. Textures are
// deduplicated by (file, tile); the first encounter analyzes the tile and
// assigns the next dense texture id. A face whose tile cannot be cropped
// is logged and left unassigned; a face name outside the canonical six is
// logged and skipped for face-index purposes only. The second return
// value is the ascending list of block ids that survived exclusion.
func Build(defs []blocks.BlockDef, tiles atlas.Tiler, tileSize int) (*Index, []int, error) {
	ix := &Index{
		Version:   Version,
		TileSize:  tileSize,
		BlockMap:  make(map[int]string),
		FaceIndex: make(map[blocks.Face]map[string][]int),
	}
	for _, f := range blocks.Faces {
		ix.FaceIndex[f] = make(map[string][]int)
	}

	byTile := make(map[[2]int]int)           // (file, tile) → texture id
	owners := make(map[int]map[int]struct{}) // texture id → block id set
	indexed := make(map[blocks.Face]map[int]struct{})
	var included []int

	for _, def := range defs {
		if blocks.Excluded(def.ID, def.Name) {
			continue
		}
		included = append(included, def.ID)
		ix.BlockMap[def.ID] = def.Name

		// Face map iteration must be deterministic so texture ids are
		// stable across runs of the same input.
		names := make([]string, 0, len(def.Faces))
		for raw := range def.Faces {
			names = append(names, raw)
		}
		sort.Strings(names)

		for _, raw := range names {
			ref := def.Faces[raw]
			key := [2]int{ref.File, ref.Index}

			id, known := byTile[key]
			if !known {
				tile, err := tiles.Tile(ref.File, ref.Index)
				if err != nil {
					log.Printf("[index] block %d (%s) face %q: %v, skipped", def.ID, def.Name, raw, err)
					continue
				}
				a := Analyze(tile)
				id = len(ix.Palette)
				byTile[key] = id
				owners[id] = make(map[int]struct{})
				ix.Palette = append(ix.Palette, Texture{
					ID:              id,
					File:            ref.File,
					Tile:            ref.Index,
					Histogram:       a.Histogram,
					ColorCount:      a.ColorCount,
					HasTransparency: a.HasTransparency,
				})
			}
			owners[id][def.ID] = struct{}{}

			face, ok := blocks.CanonicalFace(raw)
			if !ok {
				log.Printf("[index] block %d (%s): unknown face name %q, not face-indexed", def.ID, def.Name, raw)
				continue
			}
			if indexed[face] == nil {
				indexed[face] = make(map[int]struct{})
			}
			if _, done := indexed[face][id]; done {
				continue
			}
			indexed[face][id] = struct{}{}
			for _, e := range ix.Palette[id].Histogram {
				k := colorKey(e)
				if !containsID(ix.FaceIndex[face][k], id) {
					ix.FaceIndex[face][k] = append(ix.FaceIndex[face][k], id)
				}
			}
		}
	}

	if len(ix.Palette) == 0 {
		return nil, nil, fmt.Errorf("palette: no textures indexed from %d block definitions", len(defs))
	}

	for id, set := range owners {
		ids := make([]int, 0, len(set))
		for b := range set {
			ids = append(ids, b)
		}
		sort.Ints(ids)
		ix.Palette[id].BlockIDs = ids
	}
	sort.Ints(included)

	return ix, included, nil
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
