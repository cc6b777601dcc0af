package imageio

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Load opens and decodes every path in order. Any failure aborts the whole
// load: a joined output must contain every requested image.
func Load(paths []string) ([]image.Image, error) {
	images := make([]image.Image, 0, len(paths))
	for _, path := range paths {
		img, err := imaging.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		images = append(images, img)
	}
	return images, nil
}
