package blocks

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
)

type rawBlock struct {
	Name  string                `json:"name"`
	Faces map[string]TextureRef `json:"faces"`
}

// Parse reads blocks.json, a mapping of block id to name and per-face
// texture references. Blocks are returned sorted by ascending id.
func Parse(path string) ([]BlockDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("blocks: read %s: %w", path, err)
	}

	var raw map[string]rawBlock
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("blocks: parse %s: %w", path, err)
	}

	defs := make([]BlockDef, 0, len(raw))
	for key, rb := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("blocks: bad block id %q in %s", key, path)
		}
		defs = append(defs, BlockDef{ID: id, Name: rb.Name, Faces: rb.Faces})
	}

	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs, nil
}
