// Package interval models signed semitone distances within one octave.
// An interval is a "natural" diatonic size plus a signed accidental
// offset; equal (natural, accidentals) pairs are interned to the same
// pointer, so == is value equality.
package interval

import (
	"fmt"
	"sync"

	"github.com/pcollins/harmonia/accidental"
)

// Interval is an immutable semitone distance. Obtain instances through
// FromSemitones, Parse, or the package-level named intervals; never
// construct one directly.
type Interval struct {
	natural     int // semitones of the unaltered interval, 0..12
	accidentals int // negative diminishes, positive augments
}

var shortNames = [13]string{
	"P1", "m2", "M2", "m3", "M3", "P4", "TT", "P5", "m6", "M6", "m7", "M7", "P8",
}

var longNames = [13]string{
	"Unison", "Minor 2nd", "Major 2nd", "Minor 3rd", "Major 3rd",
	"Perfect 4th", "Tritone", "Perfect 5th", "Minor 6th", "Major 6th",
	"Minor 7th", "Major 7th", "Octave",
}

// Diatonic number by natural semitone count; 0 marks the tritone,
// which has no number of its own.
var numbers = [13]int{1, 2, 2, 3, 3, 4, 0, 5, 6, 6, 7, 7, 8}

// Natural semitone count of the perfect/major interval for each
// diatonic number 1..8.
var naturalByNumber = [9]int{0, 0, 2, 4, 5, 7, 9, 11, 12}

var (
	internMu sync.Mutex
	interned [13]map[int]*Interval
)

// FromSemitones returns the canonical Interval for the given natural
// semitone count (0..12) and accidental offset, creating and caching it
// on first use. Natural counts outside 0..12 are a programming error.
func FromSemitones(natural, accidentals int) *Interval {
	if natural < 0 || natural > 12 {
		panic(fmt.Sprintf("interval: natural semitones %d out of range", natural))
	}
	internMu.Lock()
	defer internMu.Unlock()
	bucket := interned[natural]
	if bucket == nil {
		bucket = make(map[int]*Interval)
		interned[natural] = bucket
	}
	iv, ok := bucket[accidentals]
	if !ok {
		iv = &Interval{natural: natural, accidentals: accidentals}
		bucket[accidentals] = iv
	}
	return iv
}

// The thirteen natural intervals of the octave. Minor intervals are
// spelled out (Min3) because their conventional short names ("m3")
// would not be exported.
var (
	P1   = FromSemitones(0, 0)
	Min2 = FromSemitones(1, 0)
	Maj2 = FromSemitones(2, 0)
	Min3 = FromSemitones(3, 0)
	Maj3 = FromSemitones(4, 0)
	P4   = FromSemitones(5, 0)
	TT   = FromSemitones(6, 0)
	P5   = FromSemitones(7, 0)
	Min6 = FromSemitones(8, 0)
	Maj6 = FromSemitones(9, 0)
	Min7 = FromSemitones(10, 0)
	Maj7 = FromSemitones(11, 0)
	P8   = FromSemitones(12, 0)
)

// Semitones returns the sounding size: natural part plus accidentals.
func (iv *Interval) Semitones() int {
	return iv.natural + iv.accidentals
}

// NaturalSemitones returns the size of the unaltered interval.
func (iv *Interval) NaturalSemitones() int {
	return iv.natural
}

// Accidentals returns the signed accidental offset.
func (iv *Interval) Accidentals() int {
	return iv.accidentals
}

// Number returns the diatonic size (1..8). The tritone has none.
func (iv *Interval) Number() (int, bool) {
	n := numbers[iv.natural]
	return n, n != 0
}

// Quality returns the interval quality. There is none when the base is
// the tritone with no accidentals, or when accidentals exceed ±2.
func (iv *Interval) Quality() (Quality, bool) {
	switch iv.accidentals {
	case 0:
		switch shortNames[iv.natural][0] {
		case 'P':
			return Perfect, true
		case 'M':
			return Major, true
		case 'm':
			return Minor, true
		}
		return 0, false // tritone
	case 1:
		return Augmented, true
	case 2:
		return DoublyAugmented, true
	case -1:
		return Diminished, true
	case -2:
		return DoublyDiminished, true
	}
	return 0, false
}

// Inverse returns the interval that sums with this one to a perfect
// octave: M3 -> m6, P4 -> P5, TT -> TT.
func (iv *Interval) Inverse() *Interval {
	return FromSemitones(12-iv.natural, -iv.accidentals)
}

// Augment widens the interval by a semitone without changing its
// natural size.
func (iv *Interval) Augment() *Interval {
	return FromSemitones(iv.natural, iv.accidentals+1)
}

// Diminish narrows the interval by a semitone without changing its
// natural size.
func (iv *Interval) Diminish() *Interval {
	return FromSemitones(iv.natural, iv.accidentals-1)
}

// Add combines the natural sizes of two intervals, wrapping sums past
// the octave back into it. Accidentals of both operands are dropped:
// this is natural-size arithmetic only, not general interval addition.
// Callers that need the accidentals must reapply them themselves.
func (iv *Interval) Add(other *Interval) *Interval {
	s := iv.natural + other.natural
	if s > 12 {
		s -= 12
	}
	return FromSemitones(s, 0)
}

// Name returns the short name of the natural part: "M3", "TT".
func (iv *Interval) Name() string {
	return shortNames[iv.natural]
}

// LongName returns the spelled-out name of the natural part.
func (iv *Interval) LongName() string {
	return longNames[iv.natural]
}

// String renders the short name, prefixed with accidental glyphs when
// the interval is altered: "♭P5" for a diminished fifth.
func (iv *Interval) String() string {
	return accidental.String(iv.accidentals) + shortNames[iv.natural]
}
