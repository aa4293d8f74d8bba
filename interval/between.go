package interval

import (
	"errors"
	"fmt"
)

// ErrIncompatibleOperands reports a distance measured between pitches
// of different kinds, or one that no single-octave interval can span.
var ErrIncompatibleOperands = errors.New("incompatible operands")

// Pitched is the capability Between needs from a pitch: a semitone
// position and whether that position is octave-qualified. The pitch
// package supplies the implementations.
type Pitched interface {
	PitchSemitones() int
	HasOctave() bool
}

// Between measures the interval from a up to b. Both operands must be
// the same kind: two pitch classes or two octave-qualified pitches.
// Pitch-class distances are normalized into [0,12); pitch distances
// must already lie within one ascending octave.
func Between(a, b Pitched) (*Interval, error) {
	if a.HasOctave() != b.HasOctave() {
		return nil, fmt.Errorf("%w: %v and %v", ErrIncompatibleOperands, a, b)
	}
	d := b.PitchSemitones() - a.PitchSemitones()
	if !a.HasOctave() {
		d = ((d % 12) + 12) % 12
	} else if d < 0 || d > 12 {
		return nil, fmt.Errorf("%w: %v to %v spans more than an octave", ErrIncompatibleOperands, a, b)
	}
	return FromSemitones(d, 0), nil
}
