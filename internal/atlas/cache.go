package atlas

import (
	"fmt"
	"image"
	"image/draw"
	"sync"
)

// Tiler crops the square tile at (file, index) out of an atlas.
type Tiler interface {
	Tile(file, index int) (*image.NRGBA, error)
}

// Cache is a concurrency-safe atlas and tile cache. Atlases are decoded
// on first use; cropped tiles are kept so repeated block faces pointing
// at the same tile never re-crop.
type Cache struct {
	mu       sync.RWMutex
	paths    []string
	atlases  map[int]*image.NRGBA
	tiles    map[[2]int]*image.NRGBA
	tileSize int
}

// NewCache creates a cache over the ordered atlas file list.
func NewCache(paths []string, tileSize int) *Cache {
	return &Cache{
		paths:    paths,
		atlases:  make(map[int]*image.NRGBA),
		tiles:    make(map[[2]int]*image.NRGBA),
		tileSize: tileSize,
	}
}

// TileSize returns the square tile side length.
func (c *Cache) TileSize() int {
	return c.tileSize
}

// Tile returns the tile at position index on atlas file, cropped to its
// own buffer. Tiles are counted row-major left to right, top to bottom.
func (c *Cache) Tile(file, index int) (*image.NRGBA, error) {
	key := [2]int{file, index}

	c.mu.RLock()
	if tile, ok := c.tiles[key]; ok {
		c.mu.RUnlock()
		return tile, nil
	}
	c.mu.RUnlock()

	img, err := c.atlas(file)
	if err != nil {
		return nil, err
	}

	perRow := img.Bounds().Dx() / c.tileSize
	perCol := img.Bounds().Dy() / c.tileSize
	if perRow <= 0 || index < 0 || index >= perRow*perCol {
		return nil, fmt.Errorf("atlas: tile %d out of range on %s (%dx%d tiles)",
			index, c.paths[file], perRow, perCol)
	}

	x := img.Bounds().Min.X + (index%perRow)*c.tileSize
	y := img.Bounds().Min.Y + (index/perRow)*c.tileSize

	tile := image.NewNRGBA(image.Rect(0, 0, c.tileSize, c.tileSize))
	draw.Draw(tile, tile.Bounds(), img, image.Pt(x, y), draw.Src)

	c.mu.Lock()
	if existing, ok := c.tiles[key]; ok {
		c.mu.Unlock()
		return existing, nil
	}
	c.tiles[key] = tile
	c.mu.Unlock()

	return tile, nil
}

// atlas loads and caches the atlas image at file index.
func (c *Cache) atlas(file int) (*image.NRGBA, error) {
	if file < 0 || file >= len(c.paths) {
		return nil, fmt.Errorf("atlas: file index %d out of range (%d atlases)", file, len(c.paths))
	}

	c.mu.RLock()
	if img, ok := c.atlases[file]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := Load(c.paths[file])
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if existing, ok := c.atlases[file]; ok {
		c.mu.Unlock()
		return existing, nil
	}
	c.atlases[file] = img
	c.mu.Unlock()

	return img, nil
}
