package join

import (
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

// Direction is the axis along which images are concatenated.
type Direction int

const (
	// Horizontal places images left to right, sharing a common height.
	Horizontal Direction = iota
	// Vertical stacks images top to bottom, sharing a common width.
	Vertical
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return "unknown"
}

// ParseDirection maps a user-supplied direction name to a Direction.
// There is no default direction, so unknown values are an error.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return 0, fmt.Errorf("unknown direction %q (want horizontal or vertical)", s)
}

// Sizing selects how the common perpendicular dimension is chosen.
type Sizing int

const (
	// ToSmallest sizes every image down to the smallest perpendicular dimension.
	ToSmallest Sizing = iota
	// ToLargest sizes every image up to the largest perpendicular dimension.
	ToLargest
)

func (s Sizing) String() string {
	switch s {
	case ToSmallest:
		return "to_smallest"
	case ToLargest:
		return "to_largest"
	}
	return "unknown"
}

// ParseSizing maps a user-supplied sizing name to a Sizing.
func ParseSizing(s string) (Sizing, error) {
	switch strings.ToLower(s) {
	case "", "to_smallest", "smallest":
		return ToSmallest, nil
	case "to_largest", "largest":
		return ToLargest, nil
	}
	return 0, fmt.Errorf("unknown sizing %q (want to_smallest or to_largest)", s)
}

// ParseFilter maps a filter name to the resampling filter used when scaling.
// Unrecognized names fall back to Gaussian.
func ParseFilter(s string) imaging.ResampleFilter {
	switch strings.ToLower(s) {
	case "nearest":
		return imaging.NearestNeighbor
	case "triangle":
		return imaging.Linear
	case "catmull_rom":
		return imaging.CatmullRom
	case "lanczos3":
		return imaging.Lanczos
	default:
		return imaging.Gaussian
	}
}

// Options configures a single Join call. The filter only affects the visual
// quality of the per-image resize, never the computed sizes.
type Options struct {
	Direction Direction
	Sizing    Sizing
	Filter    imaging.ResampleFilter
}
