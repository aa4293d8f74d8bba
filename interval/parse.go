package interval

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrNotFound reports a name that matches no interval.
var ErrNotFound = errors.New("interval not found")

// Accidental-prefixed diatonic number: "A4", "d5", "augmented 4",
// "diminished 5".
var alteredPattern = regexp.MustCompile(`^(A|d|augmented |diminished )([0-9]+)$`)

// Parse resolves an interval name. It accepts short names ("M3"), long
// names ("Major 3rd"), and an augmented or diminished diatonic number
// ("A4", "d5", "augmented 4", "diminished 5").
func Parse(name string) (*Interval, error) {
	for i, n := range shortNames {
		if n == name {
			return FromSemitones(i, 0), nil
		}
	}
	for i, n := range longNames {
		if n == name {
			return FromSemitones(i, 0), nil
		}
	}
	if m := alteredPattern.FindStringSubmatch(name); m != nil {
		number, err := strconv.Atoi(m[2])
		if err != nil || number < 1 || number > 8 {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		offset := 1
		if m[1] == "d" || m[1] == "diminished " {
			offset = -1
		}
		return FromSemitones(naturalByNumber[number], offset), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}
