package cmd

import (
	"fmt"

	"github.com/pcollins/harmonia/chord"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(qualitiesCmd)
}

var qualitiesCmd = &cobra.Command{
	Use:   "qualities",
	Short: "List the built-in chord qualities",
	Run: func(cmd *cobra.Command, args []string) {
		for _, q := range chord.Qualities() {
			name := q.Name()
			if q.FullName() != "" {
				name = fmt.Sprintf("%v (%v)", name, q.FullName())
			}
			fmt.Printf("%-40v abbrs: %-24v semitones: %v\n", name, q.Abbrs(), q.Semitones())
		}
	},
}
