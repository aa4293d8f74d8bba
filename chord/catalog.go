package chord

import (
	"fmt"

	"github.com/pcollins/harmonia/interval"
)

// catalogEntry describes one built-in quality. offsets is a compact
// string of ascending semitone offsets from the root: digits 0-9 plus
// 't' for 10 and 'e' for 11.
type catalogEntry struct {
	name     string
	fullName string
	abbrs    []string
	offsets  string
}

// The built-in chord qualities. Ninths are folded into pitch-class
// space (the ninth itself appears as a major or minor second), keeping
// every interval within the octave.
var builtinCatalog = []catalogEntry{
	{name: "Major", abbrs: []string{"", "M"}, offsets: "047"},
	{name: "Minor", abbrs: []string{"m", "min"}, offsets: "037"},
	{name: "Augmented", abbrs: []string{"+", "aug"}, offsets: "048"},
	{name: "Diminished", abbrs: []string{"°", "dim"}, offsets: "036"},
	{name: "Sus2", fullName: "Suspended 2nd", abbrs: []string{"sus2"}, offsets: "027"},
	{name: "Sus4", fullName: "Suspended 4th", abbrs: []string{"sus4"}, offsets: "057"},
	{name: "Maj6", fullName: "Major 6th", abbrs: []string{"6", "M6"}, offsets: "0479"},
	{name: "Min6", fullName: "Minor 6th", abbrs: []string{"m6", "min6"}, offsets: "0379"},
	{name: "Dom7", fullName: "Dominant 7th", abbrs: []string{"7", "dom7"}, offsets: "047t"},
	{name: "Maj7", fullName: "Major 7th", abbrs: []string{"maj7", "M7"}, offsets: "047e"},
	{name: "Min7", fullName: "Minor 7th", abbrs: []string{"m7", "min7"}, offsets: "037t"},
	{name: "Dim7", fullName: "Diminished 7th", abbrs: []string{"°7", "dim7"}, offsets: "0369"},
	{name: "Aug7", fullName: "Augmented 7th", abbrs: []string{"+7", "aug7"}, offsets: "048t"},
	{name: "Dom7♭5", fullName: "Dominant 7th Flat 5", abbrs: []string{"7♭5", "7b5"}, offsets: "046t"},
	{name: "Min7♭5", fullName: "Half-Diminished 7th", abbrs: []string{"ø", "m7♭5", "m7b5"}, offsets: "036t"},
	{name: "DimMaj7", fullName: "Diminished Major 7th", abbrs: []string{"°M7", "dimM7"}, offsets: "036e"},
	{name: "MinMaj7", fullName: "Minor-Major 7th", abbrs: []string{"m/M7", "minmaj7"}, offsets: "037e"},
	{name: "Dom9", fullName: "Dominant 9th", abbrs: []string{"9", "dom9"}, offsets: "0247t"},
	{name: "Maj9", fullName: "Major 9th", abbrs: []string{"maj9", "M9"}, offsets: "0247e"},
	{name: "Min9", fullName: "Minor 9th", abbrs: []string{"m9", "min9"}, offsets: "0237t"},
}

func expandOffsets(offsets string) ([]*interval.Interval, error) {
	ivs := make([]*interval.Interval, 0, len(offsets))
	for _, c := range offsets {
		var s int
		switch {
		case c >= '0' && c <= '9':
			s = int(c - '0')
		case c == 't':
			s = 10
		case c == 'e':
			s = 11
		default:
			return nil, fmt.Errorf("bad semitone offset %q", c)
		}
		ivs = append(ivs, interval.FromSemitones(s, 0))
	}
	return ivs, nil
}
