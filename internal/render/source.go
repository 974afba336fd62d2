package render

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"os"

	"github.com/NlGBOB/bloxd-movie/internal/atlas"
)

// ReadSource reads the source image file into memory.
func ReadSource(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: read source %s: %w", path, err)
	}
	return data, nil
}

// IsGIF reports whether the data carries a GIF signature.
func IsGIF(data []byte) bool {
	return len(data) >= 6 &&
		(string(data[:6]) == "GIF87a" || string(data[:6]) == "GIF89a")
}

// DecodeStill decodes a single still image of any registered format.
func DecodeStill(data []byte) (*image.NRGBA, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("render: decode source: %w", err)
	}
	return atlas.ToNRGBA(img), nil
}

// DecodeAnimation decodes all frames of an animated GIF.
func DecodeAnimation(data []byte) (*gif.GIF, error) {
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("render: decode animation: %w", err)
	}
	return g, nil
}
