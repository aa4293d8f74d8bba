package pitch

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pcollins/harmonia/accidental"
)

// ErrMalformed reports text that is not a pitch or pitch-class name.
var ErrMalformed = errors.New("malformed pitch name")

var (
	scientificPattern = regexp.MustCompile(`^([A-Ga-g])([♯♭#b𝄪𝄫]*)(-?[0-9]+)$`)
	helmholtzPattern  = regexp.MustCompile(`^([A-Ga-g])([♯♭#b𝄪𝄫]*)(,*)('*)$`)
	classPattern      = regexp.MustCompile(`^([A-G])([♯♭#b𝄪𝄫]*)$`)
)

// Parse reads a pitch name. Scientific notation ("E4", "C♯5", "Bb-1")
// and Helmholtz notation ("E,", "c'", "f♯'") yield a Pitch; a bare
// name ("E", "F♯") yields a Class.
func Parse(s string) (PitchLike, error) {
	if m := scientificPattern.FindStringSubmatch(s); m != nil {
		off, err := classOffset(m[1], m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformed, s)
		}
		octave, err := strconv.Atoi(m[3])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformed, s)
		}
		return NewPitch((octave+1)*12 + off), nil
	}
	if m := classPattern.FindStringSubmatch(s); m != nil {
		off, err := classOffset(m[1], m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformed, s)
		}
		return NewClass(off), nil
	}
	if m := helmholtzPattern.FindStringSubmatch(s); m != nil {
		off, err := classOffset(m[1], m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformed, s)
		}
		// Helmholtz: C, = C1, C = C2, c = C3, c' = C4 (middle C).
		var octave int
		if m[1][0] >= 'a' {
			octave = 3 + len(m[4])
		} else {
			if len(m[4]) > 0 {
				return nil, fmt.Errorf("%w: %q", ErrMalformed, s)
			}
			octave = 2 - len(m[3])
		}
		return NewPitch((octave+1)*12 + off), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrMalformed, s)
}

// ParsePitch is Parse restricted to octave-qualified results.
func ParsePitch(s string) (Pitch, error) {
	p, err := Parse(s)
	if err != nil {
		return Pitch{}, err
	}
	pp, ok := p.(Pitch)
	if !ok {
		return Pitch{}, fmt.Errorf("%w: %q has no octave", ErrMalformed, s)
	}
	return pp, nil
}

// ParseClass is Parse restricted to octave-free results.
func ParseClass(s string) (Class, error) {
	p, err := Parse(s)
	if err != nil {
		return Class{}, err
	}
	c, ok := p.(Class)
	if !ok {
		return Class{}, fmt.Errorf("%w: %q names a specific octave", ErrMalformed, s)
	}
	return c, nil
}

func classOffset(letter, accidentals string) (int, error) {
	off := letterSemitones[strings.ToUpper(letter)[0]]
	delta, err := accidental.Sum(accidentals)
	if err != nil {
		return 0, err
	}
	return off + delta, nil
}
