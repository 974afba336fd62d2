package palette

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"
)

// Version is written into every saved index so a format change can be
// detected on load.
const Version = "1"

// Save writes the index as zstd-compressed JSON.
func (ix *Index) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("palette: create %s: %w", path, err)
	}
	defer f.Close()

	zw, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("palette: zstd writer: %w", err)
	}
	if err := json.NewEncoder(zw).Encode(ix); err != nil {
		zw.Close()
		return fmt.Errorf("palette: encode index: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("palette: flush index: %w", err)
	}
	return f.Close()
}

// LoadIndex reads a zstd-compressed JSON index from disk.
func LoadIndex(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("palette: open %s: %w", path, err)
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("palette: zstd reader: %w", err)
	}
	defer zr.Close()

	var ix Index
	if err := json.NewDecoder(zr).Decode(&ix); err != nil {
		return nil, fmt.Errorf("palette: decode index %s: %w", path, err)
	}
	return &ix, nil
}

// SaveIncluded writes the companion artifact listing included block ids.
func SaveIncluded(path string, ids []int) error {
	data, err := json.MarshalIndent(ids, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
