package imageio

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Save encodes img to path, with the format chosen by the file extension
// (png, jpg, gif, tif, bmp). An existing file is only overwritten when
// override is set.
func Save(img image.Image, path string, override bool) error {
	if _, err := os.Stat(path); err == nil && !override {
		return fmt.Errorf("output file %s already exists", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
