package cmd

import (
	"fmt"
	"strings"

	"github.com/pcollins/harmonia/chord"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(lookupCmd)
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <chord>",
	Short: "Look up a chord by name",
	Long: `Look up a chord by name, e.g. "E Major", "E4 maj7", "Bb m".
A bare root is a Major chord.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := chord.Parse(strings.Join(args, " "))
		if err != nil {
			return err
		}
		printChord(c)
		return nil
	},
}
