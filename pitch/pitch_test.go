package pitch

import (
	"testing"

	"github.com/pcollins/harmonia/interval"
	"github.com/stretchr/testify/assert"
)

func TestParseScientific(t *testing.T) {
	cases := []struct {
		in   string
		midi int
		str  string
	}{
		{"C4", 60, "C4"},
		{"E4", 64, "E4"},
		{"C♯5", 73, "C♯5"},
		{"F#3", 54, "F♯3"},
		{"Bb2", 46, "A♯2"},
		{"C-1", 0, "C-1"},
		{"g2", 43, "G2"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			p, err := Parse(c.in)
			assert.NoError(t, err)
			pp, ok := p.(Pitch)
			assert.True(t, ok, "expected an octave-qualified pitch")
			assert.Equal(t, c.midi, pp.PitchSemitones())
			assert.Equal(t, c.str, pp.String())
		})
	}
}

func TestParseHelmholtz(t *testing.T) {
	cases := []struct {
		in   string
		midi int
	}{
		{"c'", 60}, // middle C
		{"c", 48},
		// bare uppercase letters parse as pitch classes, so the
		// Helmholtz great octave is only reachable with commas
		{"C,", 24},
		{"f♯'", 66},
		{"e''", 76},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			p, err := Parse(c.in)
			assert.NoError(t, err)
			pp, ok := p.(Pitch)
			assert.True(t, ok, "expected an octave-qualified pitch")
			assert.Equal(t, c.midi, pp.PitchSemitones())
		})
	}
}

func TestParseClass(t *testing.T) {
	cases := []struct {
		in        string
		semitones int
		str       string
	}{
		{"C", 0, "C"},
		{"E", 4, "E"},
		{"F♯", 6, "F♯"},
		{"G#", 8, "G♯"},
		{"Eb", 3, "D♯"},
		{"Cb", 11, "B"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseClass(c.in)
			assert.NoError(t, err)
			assert.Equal(t, c.semitones, got.PitchSemitones())
			assert.Equal(t, c.str, got.String())
		})
	}
}

func TestParseMalformed(t *testing.T) {
	for _, in := range []string{"", "H", "E#b?", "4", "E4'", "C,,'"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestParseKindRestrictions(t *testing.T) {
	_, err := ParsePitch("E")
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = ParseClass("E4")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestTransposeKeepsKind(t *testing.T) {
	assert := assert.New(t)

	e := NewClass(4)
	g := e.Transpose(interval.Min3)
	_, ok := g.(Class)
	assert.True(ok)
	assert.Equal("G", g.String())

	e4 := NewPitch(64)
	b4 := e4.Transpose(interval.P5)
	_, ok = b4.(Pitch)
	assert.True(ok)
	assert.Equal("B4", b4.String())
}

func TestClassWraps(t *testing.T) {
	assert := assert.New(t)
	b := NewClass(11)
	assert.Equal("C♯", b.Transpose(interval.Maj2).String())
	assert.Equal(0, NewClass(12).PitchSemitones())
}

func TestMIDIRoundTrip(t *testing.T) {
	assert := assert.New(t)
	p := FromMIDI(69)
	assert.Equal("A4", p.String())
	key, ok := p.MIDI()
	assert.True(ok)
	assert.Equal(uint8(69), key)
	assert.Equal(4, p.Octave())
	assert.Equal("A", p.Class().String())
}

func TestMIDIOutOfRange(t *testing.T) {
	assert := assert.New(t)

	// below key 0 and above key 127; neither may wrap
	for _, in := range []string{"C-2", "A9"} {
		p, err := ParsePitch(in)
		assert.NoError(err)
		key, ok := p.MIDI()
		assert.False(ok, in)
		assert.Equal(uint8(0), key)
	}
}
