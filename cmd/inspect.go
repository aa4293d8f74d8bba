package cmd

import (
	"fmt"

	"github.com/pcollins/harmonia/chord"
	"github.com/pcollins/harmonia/constants"
	"github.com/pcollins/harmonia/midi"
	"github.com/pcollins/harmonia/pitch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Recognize chords in a MIDI file",
	Long:  `Recognize chords in a MIDI file, printing each recognized chord with its offset.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	s, err := midi.ReadFile(path)
	if err != nil {
		return err
	}

	var last string
	for _, set := range midi.NoteSets(s, constants.MinChordKeys) {
		ps := make([]pitch.PitchLike, len(set.Keys))
		for i, k := range set.Keys {
			ps[i] = pitch.FromMIDI(k)
		}
		c, err := chord.FromPitches(ps)
		if err != nil {
			continue // unrecognized voicing
		}
		if c.Name() == last {
			continue
		}
		last = c.Name()
		fmt.Printf("%8dms  %v\n", set.OffsetMS, c.Name())
	}
	return nil
}
