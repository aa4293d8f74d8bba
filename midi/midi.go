// Package midi extracts held-note sets from standard MIDI files so
// they can be run through chord recognition.
package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"
)

// NoteSet is the set of keys sounding together at a point in a file.
type NoteSet struct {
	// OffsetMS is the position in milliseconds.
	OffsetMS int64
	Keys     []uint8
}

type reducedEvent struct {
	offset    int64 // microseconds
	isNoteOff bool
	key       uint8
}

// ReadFile parses an SMF file.
func ReadFile(path string) (*smf.SMF, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading midi file: %w", err)
	}
	return readSMF(bytes.NewReader(dat))
}

// readSMF wraps smf.ReadFrom, converting panics into errors. The smf
// reader panics on some malformed files, and not always with a string
// value: https://github.com/gomidi/midi/issues/20
func readSMF(rd io.Reader) (s *smf.SMF, e error) {
	defer func() {
		if r := recover(); r != nil {
			s, e = nil, fmt.Errorf("parsing midi file: %v", r)
		}
	}()

	res, err := smf.ReadFrom(rd)
	if err != nil {
		return nil, fmt.Errorf("parsing midi file: %w", err)
	}
	return res, nil
}

// NoteSets sweeps the file's note on/off events in time order and
// records every moment at least minKeys keys sound together. Keys are
// reported in ascending order.
func NoteSets(s *smf.SMF, minKeys int) []NoteSet {
	var events []reducedEvent

	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			absTime := s.TimeAt(absTicks)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				events = append(events, reducedEvent{offset: absTime, key: key})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, reducedEvent{offset: absTime, isNoteOff: true, key: key})
			}
		}
	}

	// smaller offsets first, note offs before note ons at the same tick
	sort.Slice(events, func(i, j int) bool {
		if events[i].offset != events[j].offset {
			return events[i].offset < events[j].offset
		}
		return events[i].isNoteOff
	})

	var sets []NoteSet
	pressed := make(map[uint8]bool)
	for _, evt := range events {
		if evt.isNoteOff {
			delete(pressed, evt.key)
			continue
		}
		pressed[evt.key] = true
		if len(pressed) < minKeys {
			continue
		}
		keys := make([]uint8, 0, len(pressed))
		for k := range pressed {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		sets = append(sets, NoteSet{OffsetMS: evt.offset / 1000, Keys: keys})
	}
	return sets
}
