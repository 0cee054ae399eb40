// Package exercise defines exercise descriptors and the registry that maps
// action-type names to them. A descriptor captures everything the tracker
// needs to turn pose frames into repetitions: which joints carry the
// motion, which coordinate axis to follow, and the extremum sequence one
// repetition traces in that signal.
package exercise

import (
	"github.com/banshee-data/repcount/internal/motion"
	"github.com/banshee-data/repcount/internal/pose"
)

// Descriptor describes one exercise/action type. Descriptors are immutable
// after registration; re-registering the same name overwrites.
type Descriptor struct {
	// Name is the action-type identifier, e.g. "squat".
	Name string
	// Joints are the relevant joint identifiers; the first one present in a
	// frame supplies the position sample.
	Joints []string
	// Pattern is the extremum-kind sequence one repetition traces.
	Pattern []motion.ExtremumKind
	// Axis selects the tracked coordinate.
	Axis pose.Axis
}

// JointSet returns the joint identifiers as a lookup set.
func (d Descriptor) JointSet() map[string]bool {
	set := make(map[string]bool, len(d.Joints))
	for _, j := range d.Joints {
		set[j] = true
	}
	return set
}
