// Package combiner groups adjacent escape markers into runs that are cooked
// together, so that a surrogate pair written as two escapes decodes as one
// character.
package combiner

import (
	"iter"

	"github.com/tukoda/nerdfont-go/internal/types"
)

// MaxGap is the largest distance, in UTF-16 code units, between two markers
// that still belong to the same run. A one-unit gap is written into the
// run's raw text as a single space.
const MaxGap = 1

// Combine folds markers into runs, covering every marker exactly once and
// preserving order. Markers must arrive in non-decreasing Start order.
func Combine(markers iter.Seq[types.EscapeMarker]) []types.CombinedRun {
	var runs []types.CombinedRun
	for m := range markers {
		if n := len(runs); n > 0 {
			tail := &runs[n-1]
			if gap := m.Start - tail.Last.End; gap >= 0 && gap <= MaxGap {
				extend(tail, m, gap)
				continue
			}
		}
		runs = append(runs, types.CombinedRun{
			First:   m,
			Last:    m,
			Markers: []types.EscapeMarker{m},
			Raw:     m.Raw,
		})
	}
	return runs
}

// extend appends m to the in-progress run.
func extend(run *types.CombinedRun, m types.EscapeMarker, gap int) {
	if gap == 1 {
		run.Raw += " "
	}
	run.Raw += m.Raw
	run.Last = m
	run.Markers = append(run.Markers, m)
}
