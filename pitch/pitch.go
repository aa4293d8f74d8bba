// Package pitch models the note side of the system: octave-free pitch
// classes and octave-qualified pitches, with parsing for scientific and
// Helmholtz notation. Both kinds can be displaced by an interval, which
// is how chords turn interval sets into notes.
package pitch

import (
	"strconv"

	"github.com/pcollins/harmonia/interval"
)

// Display names are sharp-preferring; flat spellings normalize on parse.
var classNames = [12]string{
	"C", "C♯", "D", "D♯", "E", "F", "F♯", "G", "G♯", "A", "A♯", "B",
}

var letterSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// PitchLike is anything an interval can displace: a pitch class or an
// octave-qualified pitch. The interface is closed; only the two kinds
// in this package satisfy it, so chords over mixed kinds cannot be
// constructed by accident.
type PitchLike interface {
	interval.Pitched

	// Transpose returns the pitch displaced by iv, of the same
	// concrete kind as the receiver.
	Transpose(iv *interval.Interval) PitchLike

	String() string

	pitchLike()
}

// Class is an octave-free pitch class: "E" stands for every E.
type Class struct {
	semitones int // 0..11
}

// NewClass returns the pitch class for a semitone index, normalized
// modulo 12.
func NewClass(semitones int) Class {
	return Class{semitones: ((semitones % 12) + 12) % 12}
}

func (c Class) PitchSemitones() int { return c.semitones }

func (c Class) HasOctave() bool { return false }

func (c Class) Transpose(iv *interval.Interval) PitchLike {
	return NewClass(c.semitones + iv.Semitones())
}

func (c Class) String() string { return classNames[c.semitones] }

func (c Class) pitchLike() {}

// Pitch is an octave-qualified pitch, indexed like a MIDI key: C4 = 60.
type Pitch struct {
	semitones int
}

// NewPitch returns the pitch at a semitone index (C4 = 60).
func NewPitch(semitones int) Pitch {
	return Pitch{semitones: semitones}
}

// FromMIDI returns the pitch for a MIDI key number.
func FromMIDI(key uint8) Pitch {
	return Pitch{semitones: int(key)}
}

func (p Pitch) PitchSemitones() int { return p.semitones }

func (p Pitch) HasOctave() bool { return true }

func (p Pitch) Transpose(iv *interval.Interval) PitchLike {
	return Pitch{semitones: p.semitones + iv.Semitones()}
}

// Class strips the octave.
func (p Pitch) Class() Class {
	return NewClass(p.semitones)
}

// Octave returns the scientific octave number: 4 for middle C.
func (p Pitch) Octave() int {
	return p.semitones/12 - 1
}

// MIDI returns the pitch as a MIDI key number; ok is false when the
// pitch lies outside the 0-127 key range.
func (p Pitch) MIDI() (key uint8, ok bool) {
	if p.semitones < 0 || p.semitones > 127 {
		return 0, false
	}
	return uint8(p.semitones), true
}

// String renders scientific notation: "E4", "C♯5".
func (p Pitch) String() string {
	return p.Class().String() + strconv.Itoa(p.Octave())
}

func (p Pitch) pitchLike() {}
