// Package pose defines the data contract with an external pose-estimation
// collaborator and the coordinate arithmetic that turns a tracked joint
// into the one-dimensional position signal the motion core consumes.
package pose

import "math"

// zeroDimensionEpsilon guards the normalization divide: bounding dimensions
// this close to zero are treated as exactly 1.0.
const zeroDimensionEpsilon = 1e-9

// Axis selects which coordinate of a landmark is tracked.
type Axis int

const (
	// Horizontal tracks the X coordinate.
	Horizontal Axis = iota
	// Vertical tracks the Y coordinate.
	Vertical
)

// String returns a human-readable name for the axis.
func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Landmark is one tracked body joint with its 2D location in frame
// coordinates.
type Landmark struct {
	Joint string
	X     float64
	Y     float64
}

// Frame is the per-tick snapshot contract any pose producer must satisfy:
// a list of landmarks, an overall bounding size, and an origin offset.
type Frame interface {
	// Landmarks returns the joints detected in this frame.
	Landmarks() []Landmark

	// Size returns the bounding width and height of the frame.
	Size() (width, height float64)

	// Origin returns the offset to subtract from landmark coordinates.
	Origin() (x, y float64)
}

// Project extracts the tracked-axis coordinate of the first landmark whose
// joint identifier appears in relevant, translated by the frame origin and
// rescaled by the reciprocal of the larger bounding dimension. When no
// relevant joint is present in the frame it returns ok=false, which callers
// treat as "no sample this tick" rather than an error.
func Project(f Frame, relevant map[string]bool, axis Axis) (value float64, ok bool) {
	for _, lm := range f.Landmarks() {
		if !relevant[lm.Joint] {
			continue
		}

		width, height := f.Size()
		scale := math.Max(width, height)
		if math.Abs(scale) < zeroDimensionEpsilon {
			scale = 1.0
		}

		ox, oy := f.Origin()
		if axis == Horizontal {
			return (lm.X - ox) / scale, true
		}
		return (lm.Y - oy) / scale, true
	}
	return 0, false
}

// StaticFrame is a plain-value Frame implementation, convenient for tests
// and for producers that already hold their snapshot as data.
type StaticFrame struct {
	Points  []Landmark
	Width   float64
	Height  float64
	OriginX float64
	OriginY float64
}

// Landmarks implements Frame.
func (f StaticFrame) Landmarks() []Landmark { return f.Points }

// Size implements Frame.
func (f StaticFrame) Size() (float64, float64) { return f.Width, f.Height }

// Origin implements Frame.
func (f StaticFrame) Origin() (float64, float64) { return f.OriginX, f.OriginY }
