package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "smart",
	Short: "Symbolic music analysis toolkit",
	Long:  `Imports MIDI files into hierarchical scores and computes melodic and tonal statistics.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
