package blocks

import "strings"

// slabMarker excludes all slab variants: a slab shares its textures with
// the full block, so indexing it would only duplicate blueprint symbols.
const slabMarker = "Slab"

// excludedIDs are block ids that never enter the palette. Id 0 is the
// empty cell and doubles as the "no match" blueprint symbol.
var excludedIDs = map[int]struct{}{
	0: {},
}

// Excluded reports whether a block is dropped entirely during indexing.
func Excluded(id int, name string) bool {
	if _, ok := excludedIDs[id]; ok {
		return true
	}
	return strings.Contains(name, slabMarker)
}
