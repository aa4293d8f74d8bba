package chord

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pcollins/harmonia/interval"
	"github.com/pcollins/harmonia/pitch"
	"github.com/pcollins/harmonia/util"
)

// Chord is a quality anchored to a concrete root. The pitch sequence
// follows the quality's interval order; it is only rotated by Invert,
// never by the quality's inversion tag alone.
type Chord struct {
	quality *Quality
	root    pitch.PitchLike
	pitches []pitch.PitchLike
}

func newChord(q *Quality, root pitch.PitchLike) Chord {
	ps := make([]pitch.PitchLike, len(q.intervals))
	for i, iv := range q.intervals {
		ps[i] = root.Transpose(iv)
	}
	return Chord{quality: q, root: root, pitches: ps}
}

// Quality returns the chord's quality.
func (c Chord) Quality() *Quality { return c.quality }

// Root returns the anchoring pitch or pitch class.
func (c Chord) Root() pitch.PitchLike { return c.root }

// Pitches returns the chord's notes in sequence order.
func (c Chord) Pitches() []pitch.PitchLike {
	out := make([]pitch.PitchLike, len(c.pitches))
	copy(out, c.pitches)
	return out
}

// Name is the root's display name plus the quality name: "E Major".
func (c Chord) Name() string {
	return c.root.String() + " " + c.quality.Name()
}

// FullName uses the quality's long label when it has one.
func (c Chord) FullName() string {
	full := c.quality.FullName()
	if full == "" {
		full = c.quality.Name()
	}
	return c.root.String() + " " + full
}

// Abbr is the root's display name plus the default abbreviation, which
// for Major is just the root name.
func (c Chord) Abbr() string {
	return c.root.String() + c.quality.Abbr()
}

// Invert returns the chord in inversion n: the quality carries the
// inversion tag and the pitch sequence is rotated left so the note at
// position n becomes the bass.
func (c Chord) Invert(n int) (Chord, error) {
	q, err := c.quality.Invert(n)
	if err != nil {
		return Chord{}, err
	}
	inv := c
	inv.quality = q
	inv.pitches = util.RotateLeft(c.Pitches(), n)
	return inv, nil
}

// InvertOrdinal is Invert with the letter convention: 'a' is the first
// inversion, 'b' the second.
func (c Chord) InvertOrdinal(r rune) (Chord, error) {
	if r < 'a' || r > 'z' {
		return Chord{}, fmt.Errorf("%w: inversion ordinal %q", ErrMalformed, r)
	}
	return c.Invert(int(r-'a') + 1)
}

// Leading pitch token of a chord name: letter, accidentals, then either
// a scientific octave number or Helmholtz octave marks.
var rootPattern = regexp.MustCompile(`^([A-Ga-g][♯♭#b𝄪𝄫]*(?:-?[0-9]+|[,']*))`)

// Parse reads a chord name: a pitch or pitch-class root, optionally
// followed by whitespace and a quality name or abbreviation. A bare
// root is a Major chord.
func Parse(text string) (Chord, error) {
	m := rootPattern.FindString(text)
	if m == "" {
		return Chord{}, fmt.Errorf("%w: %q has no pitch prefix", ErrMalformed, text)
	}
	root, err := pitch.Parse(m)
	if err != nil {
		return Chord{}, fmt.Errorf("%w: %q: %v", ErrMalformed, text, err)
	}
	name := strings.TrimSpace(text[len(m):])
	if name == "" {
		name = "Major"
	}
	q, err := QualityFromString(name)
	if err != nil {
		return Chord{}, err
	}
	return q.At(root), nil
}

// FromPitches recognizes a chord from an ordered pitch sequence. The
// first element is the presumed root; the order of the rest decides
// inversion detection. All pitches must be the same kind.
func FromPitches(ps []pitch.PitchLike) (Chord, error) {
	if len(ps) == 0 {
		return Chord{}, fmt.Errorf("%w: no pitches given", ErrNotFound)
	}
	ivs := make([]*interval.Interval, len(ps))
	for i, p := range ps {
		iv, err := interval.Between(ps[0], p)
		if err != nil {
			return Chord{}, err
		}
		ivs[i] = iv
	}
	q, err := QualityFromIntervals(ivs)
	if err != nil {
		return Chord{}, err
	}
	return q.At(ps[0]), nil
}
