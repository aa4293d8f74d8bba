package chord

import (
	"fmt"
	"testing"

	"github.com/pcollins/harmonia/interval"
	"github.com/stretchr/testify/assert"
)

func TestRecognizesRootPosition(t *testing.T) {
	assert := assert.New(t)

	q, err := QualityFromIntervals([]*interval.Interval{interval.P1, interval.Maj3, interval.P5})
	assert.NoError(err)
	assert.Equal("Major", q.Name())
	assert.Equal(0, q.Inversion())

	// registry hands out its canonical instance
	canonical, err := QualityFromString("Major")
	assert.NoError(err)
	assert.Same(canonical, q)
}

func TestRecognizesInversions(t *testing.T) {
	assert := assert.New(t)

	q, err := QualityFromIntervals([]*interval.Interval{interval.Maj3, interval.P1, interval.P5})
	assert.NoError(err)
	assert.Equal("Major", q.Name())
	assert.Equal(1, q.Inversion())

	q, err = QualityFromIntervals([]*interval.Interval{interval.P5, interval.P1, interval.Maj3})
	assert.NoError(err)
	assert.Equal("Major", q.Name())
	assert.Equal(2, q.Inversion())

	// the canonical instance stays in root position
	canonical, _ := QualityFromString("Major")
	assert.Equal(0, canonical.Inversion())
}

func TestRecognizesSemitoneSets(t *testing.T) {
	cases := []struct {
		semitones []int
		name      string
	}{
		{[]int{0, 4, 7}, "Major"},
		{[]int{0, 3, 7}, "Minor"},
		{[]int{0, 3, 6}, "Diminished"},
		{[]int{0, 4, 8}, "Augmented"},
		{[]int{0, 4, 7, 10}, "Dom7"},
		{[]int{0, 3, 6, 9}, "Dim7"},
		{[]int{0, 2, 4, 7, 10}, "Dom9"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q, err := QualityFromSemitones(c.semitones)
			assert.NoError(t, err)
			assert.Equal(t, c.name, q.Name())
		})
	}
}

func TestUnknownIntervalSetFails(t *testing.T) {
	_, err := QualityFromSemitones([]int{0, 1, 2})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = QualityFromSemitones([]int{0, 4, 13})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = QualityFromIntervals(nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnknownNameFails(t *testing.T) {
	_, err := QualityFromString("Quuxish")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEveryBuiltinRoundTrips(t *testing.T) {
	for _, q := range Qualities() {
		t.Run(q.Name(), func(t *testing.T) {
			assert := assert.New(t)

			byName, err := QualityFromString(q.Name())
			assert.NoError(err)
			assert.Same(q, byName)

			if q.FullName() != "" {
				byFull, err := QualityFromString(q.FullName())
				assert.NoError(err)
				assert.Same(q, byFull)
			}

			for _, a := range q.Abbrs() {
				byAbbr, err := QualityFromString(a)
				assert.NoError(err)
				assert.Same(q, byAbbr, fmt.Sprintf("abbr %q", a))
			}

			recognized, err := QualityFromIntervals(q.Intervals())
			assert.NoError(err)
			assert.Equal(q.Name(), recognized.Name())
			assert.Equal(0, recognized.Inversion())
		})
	}
}

func TestInvertDoesNotMutate(t *testing.T) {
	assert := assert.New(t)

	minor, err := QualityFromString("Minor")
	assert.NoError(err)

	inv, err := minor.Invert(1)
	assert.NoError(err)
	assert.Equal(1, inv.Inversion())
	assert.Equal(0, minor.Inversion())
	assert.Equal(minor.Name(), inv.Name())
	assert.Equal(minor.Semitones(), inv.Semitones())

	_, err = inv.Invert(2)
	assert.ErrorIs(err, ErrUnimplemented)
}

func TestSeventhInBassIsNotDetected(t *testing.T) {
	// third inversions are a documented gap: a leading seventh yields
	// the root-position quality
	q, err := QualityFromIntervals([]*interval.Interval{
		interval.Min7, interval.P1, interval.Maj3, interval.P5,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Dom7", q.Name())
	assert.Equal(t, 0, q.Inversion())
}

func TestRegistryRejectsAmbiguousCatalog(t *testing.T) {
	_, err := NewRegistry([]catalogEntry{
		{name: "One", abbrs: []string{"1"}, offsets: "047"},
		{name: "Two", abbrs: []string{"2"}, offsets: "047"},
	})
	assert.Error(t, err)
}
