package motion

// MatchPattern returns the end index of every contiguous occurrence of
// pattern inside seq, in ascending order. Overlapping occurrences are all
// returned. Matching is exact equality per token; when pattern is longer
// than seq the result is empty.
//
// The matcher is pure and stateless, and is safe to re-run from scratch on
// a growing candidate sequence, which is how the repetition counter uses it.
func MatchPattern(pattern, seq []ExtremumKind) []int {
	if len(pattern) == 0 || len(pattern) > len(seq) {
		return nil
	}

	var ends []int
	for start := 0; start+len(pattern) <= len(seq); start++ {
		matched := true
		for i, want := range pattern {
			if seq[start+i] != want {
				matched = false
				break
			}
		}
		if matched {
			ends = append(ends, start+len(pattern)-1)
		}
	}
	return ends
}
