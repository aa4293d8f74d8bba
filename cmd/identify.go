package cmd

import (
	"fmt"

	"github.com/pcollins/harmonia/chord"
	"github.com/pcollins/harmonia/pitch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(identifyCmd)
}

var identifyCmd = &cobra.Command{
	Use:   "identify <note> [notes...]",
	Short: "Identify a chord from note names",
	Long: `Identify a chord from note names. The first note is taken as the
presumed root; pitch classes ("E G♯ B") and octave-qualified pitches
("E4 G♯4 B4") both work, but not mixed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ps := make([]pitch.PitchLike, len(args))
		for i, a := range args {
			p, err := pitch.Parse(a)
			if err != nil {
				return err
			}
			ps[i] = p
		}
		c, err := chord.FromPitches(ps)
		if err != nil {
			return err
		}
		printChord(c)
		return nil
	},
}

func printChord(c chord.Chord) {
	fmt.Printf("name: %v\n", c.Name())
	fmt.Printf("full name: %v\n", c.FullName())
	fmt.Printf("abbr: %v\n", c.Abbr())
	if inv := c.Quality().Inversion(); inv != 0 {
		fmt.Printf("inversion: %v\n", inv)
	}
	fmt.Printf("pitches: %v\n", c.Pitches())
}
