package join

import (
	"errors"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// ErrNoImages is returned by Join when called with an empty input sequence.
var ErrNoImages = errors.New("no images provided")

// Join composites the given images into a single image along the direction
// in opts. Every image is scaled (preserving aspect ratio) so that all share
// the common perpendicular dimension chosen by opts.Sizing, then pasted in
// input order at an accumulating offset along the join axis.
//
// A single input image is returned unchanged. An empty input fails with
// ErrNoImages.
func Join(photos []image.Image, opts Options) (image.Image, error) {
	if len(photos) == 0 {
		return nil, ErrNoImages
	}
	if len(photos) == 1 {
		return photos[0], nil
	}

	perp := perpendicularSize(photos, opts)

	// The per-image extent along the join axis must use the same
	// truncating formula here and in the overlay loop below, so the sum
	// of pasted extents matches the canvas exactly.
	joinSize := 0
	for _, img := range photos {
		w, h := scaledSize(perp, opts.Direction, img)
		if opts.Direction == Horizontal {
			joinSize += w
		} else {
			joinSize += h
		}
	}

	canvasW, canvasH := perp, joinSize
	if opts.Direction == Horizontal {
		canvasW, canvasH = joinSize, perp
	}

	// The first image stretched to the full canvas is the base layer;
	// later pastes cover it, and any seams left by per-image truncation
	// show image content rather than a background color.
	canvas := imaging.Resize(photos[0], canvasW, canvasH, imaging.NearestNeighbor)

	pos := 0
	for _, img := range photos {
		w, h := scaledSize(perp, opts.Direction, img)
		if w > 0 && h > 0 {
			pt := image.Pt(0, pos)
			if opts.Direction == Horizontal {
				pt = image.Pt(pos, 0)
			}
			canvas = imaging.Paste(canvas, imaging.Resize(img, w, h, opts.Filter), pt)
		}
		if opts.Direction == Horizontal {
			pos += w
		} else {
			pos += h
		}
	}

	return canvas, nil
}

// perpendicularSize folds the perpendicular dimension of every image
// (height for horizontal joins, width for vertical) down to a single
// shared size per the sizing policy.
func perpendicularSize(photos []image.Image, opts Options) int {
	size := 0
	if opts.Sizing == ToSmallest {
		size = math.MaxInt
	}
	for _, img := range photos {
		d := img.Bounds().Dy()
		if opts.Direction == Vertical {
			d = img.Bounds().Dx()
		}
		if opts.Sizing == ToSmallest {
			if d < size {
				size = d
			}
		} else if d > size {
			size = d
		}
	}
	return size
}

// scaleFactor is the ratio that brings img's perpendicular dimension to
// perp. A zero-area source scales to zero rather than dividing by zero.
func scaleFactor(perp int, dir Direction, img image.Image) float64 {
	d := img.Bounds().Dy()
	if dir == Vertical {
		d = img.Bounds().Dx()
	}
	if d == 0 {
		return 0
	}
	return float64(perp) / float64(d)
}

// scaledSize is img's size after scaling to the shared perpendicular
// dimension. The join-axis extent truncates, matching the canvas sum.
func scaledSize(perp int, dir Direction, img image.Image) (w, h int) {
	scale := scaleFactor(perp, dir, img)
	if dir == Horizontal {
		return int(scale * float64(img.Bounds().Dx())), perp
	}
	return perp, int(scale * float64(img.Bounds().Dy()))
}
