// Package chord identifies chord qualities from interval collections
// and anchors them to concrete roots. Qualities come from a fixed
// built-in catalog registered once at startup; recognition maps an
// interval set to a canonical sorted-semitone key and detects
// inversions from the caller's ordering.
package chord

import (
	"fmt"

	"github.com/pcollins/harmonia/interval"
	"github.com/pcollins/harmonia/pitch"
)

// Quality is an immutable, named set of intervals from an implicit
// root: Major = {P1, M3, P5}. Registry lookups return shared canonical
// instances; Invert returns independent copies.
type Quality struct {
	name      string
	fullName  string
	abbrs     []string
	intervals []*interval.Interval
	inversion int // 0 = root position, 1 = third in bass, 2 = fifth in bass
}

// Name returns the short canonical label, e.g. "Maj7".
func (q *Quality) Name() string { return q.name }

// FullName returns the long label ("Major 7th"), or the empty string
// when the quality has none.
func (q *Quality) FullName() string { return q.fullName }

// Abbr returns the default abbreviation, which may be empty ("C" is
// already a C Major chord).
func (q *Quality) Abbr() string {
	if len(q.abbrs) == 0 {
		return ""
	}
	return q.abbrs[0]
}

// Abbrs returns all registered abbreviations.
func (q *Quality) Abbrs() []string {
	out := make([]string, len(q.abbrs))
	copy(out, q.abbrs)
	return out
}

// Intervals returns the interval set relative to the root, root first.
func (q *Quality) Intervals() []*interval.Interval {
	out := make([]*interval.Interval, len(q.intervals))
	copy(out, q.intervals)
	return out
}

// Semitones returns the interval set as semitone offsets, in interval
// order.
func (q *Quality) Semitones() []int {
	out := make([]int, len(q.intervals))
	for i, iv := range q.intervals {
		out[i] = iv.Semitones()
	}
	return out
}

// Inversion returns 0 for root position, 1 for first inversion (third
// in the bass), 2 for second (fifth in the bass).
func (q *Quality) Inversion() int { return q.inversion }

// Invert returns a copy of the quality tagged with inversion n. The
// interval set is unchanged. Re-inverting an inverted quality fails
// rather than compounding.
func (q *Quality) Invert(n int) (*Quality, error) {
	if q.inversion != 0 {
		return nil, fmt.Errorf("%w: cannot invert the already-inverted %s", ErrUnimplemented, q.name)
	}
	inv := *q
	inv.inversion = n
	return &inv, nil
}

// At anchors the quality to a concrete root, producing a chord.
func (q *Quality) At(root pitch.PitchLike) Chord {
	return newChord(q, root)
}

// AtName anchors the quality to a root given as a pitch or pitch-class
// name.
func (q *Quality) AtName(name string) (Chord, error) {
	root, err := pitch.Parse(name)
	if err != nil {
		return Chord{}, err
	}
	return q.At(root), nil
}
