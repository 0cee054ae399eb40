package exercise

import (
	"github.com/banshee-data/repcount/internal/motion"
	"github.com/banshee-data/repcount/internal/pose"
)

// Built-in descriptors. Frame coordinates grow downward, so the bottom of
// a squat or push-up is a maximum of the normalized vertical signal.
var builtins = []Descriptor{
	{
		Name:    "squat",
		Joints:  []string{"hip_left", "hip_right"},
		Pattern: []motion.ExtremumKind{motion.Maximum, motion.Minimum},
		Axis:    pose.Vertical,
	},
	{
		Name:    "pushup",
		Joints:  []string{"shoulder_left", "shoulder_right"},
		Pattern: []motion.ExtremumKind{motion.Maximum, motion.Minimum},
		Axis:    pose.Vertical,
	},
	{
		Name:    "situp",
		Joints:  []string{"shoulder_left", "shoulder_right"},
		Pattern: []motion.ExtremumKind{motion.Minimum, motion.Maximum},
		Axis:    pose.Vertical,
	},
	{
		Name:    "jumping_jack",
		Joints:  []string{"wrist_left", "wrist_right"},
		Pattern: []motion.ExtremumKind{motion.Minimum, motion.Maximum},
		Axis:    pose.Vertical,
	},
	{
		Name:    "side_lunge",
		Joints:  []string{"hip_left", "hip_right"},
		Pattern: []motion.ExtremumKind{motion.Maximum, motion.Minimum},
		Axis:    pose.Horizontal,
	},
}

// DefaultRegistry returns a registry pre-populated with the built-in
// exercise descriptors.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.RegisterAll(builtins...)
	return r
}
