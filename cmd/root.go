package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "harmonia",
	Short: "Interval arithmetic and chord recognition",
	Long:  `Harmonia identifies chord qualities from notes, names, MIDI files, and live MIDI input.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
