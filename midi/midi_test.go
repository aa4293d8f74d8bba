package midi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func event(delta uint32, msg midi.Message) smf.Event {
	return smf.Event{Delta: delta, Message: smf.Message(msg)}
}

func chordFile(t *testing.T) *smf.SMF {
	t.Helper()
	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(960)

	// C major, then G major, a beat apart
	var tr smf.Track
	tr = append(tr, event(0, midi.NoteOn(0, 60, 100)))
	tr = append(tr, event(0, midi.NoteOn(0, 64, 100)))
	tr = append(tr, event(0, midi.NoteOn(0, 67, 100)))
	tr = append(tr, event(960, midi.NoteOff(0, 60)))
	tr = append(tr, event(0, midi.NoteOff(0, 64)))
	tr = append(tr, event(0, midi.NoteOff(0, 67)))
	tr = append(tr, event(0, midi.NoteOn(0, 67, 100)))
	tr = append(tr, event(0, midi.NoteOn(0, 71, 100)))
	tr = append(tr, event(0, midi.NoteOn(0, 74, 100)))
	tr = append(tr, event(960, midi.NoteOff(0, 67)))
	tr = append(tr, event(0, midi.NoteOff(0, 71)))
	tr = append(tr, event(0, midi.NoteOff(0, 74)))
	tr.Close(0)
	s.Tracks = append(s.Tracks, tr)
	return &s
}

func TestNoteSets(t *testing.T) {
	assert := assert.New(t)

	sets := NoteSets(chordFile(t), 3)
	assert.Len(sets, 2)
	assert.Equal([]uint8{60, 64, 67}, sets[0].Keys)
	assert.Equal([]uint8{67, 71, 74}, sets[1].Keys)
	assert.Less(sets[0].OffsetMS, sets[1].OffsetMS)
}

func TestNoteSetsMinKeys(t *testing.T) {
	// with a lower threshold the partial chords show up too
	sets := NoteSets(chordFile(t), 2)
	assert.Len(t, sets, 4)
	assert.Equal(t, []uint8{60, 64}, sets[0].Keys)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile("does-not-exist.mid")
	assert.Error(t, err)
}

// panicReader panics mid-read the way the smf reader does on some
// malformed files, with a non-string value.
type panicReader struct{}

func (panicReader) Read([]byte) (int, error) {
	panic(errors.New("runtime error: index out of range"))
}

type stringPanicReader struct{}

func (stringPanicReader) Read([]byte) (int, error) {
	panic("malformed chunk")
}

func TestReadSMFRecoversPanics(t *testing.T) {
	assert := assert.New(t)

	s, err := readSMF(panicReader{})
	assert.Nil(s)
	assert.ErrorContains(err, "index out of range")

	s, err = readSMF(stringPanicReader{})
	assert.Nil(s)
	assert.ErrorContains(err, "malformed chunk")
}
