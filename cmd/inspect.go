package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsphweid/smart/analysis"
	"github.com/jsphweid/smart/midi"
	"github.com/jsphweid/smart/score"
)

var inspectTree bool

func init() {
	inspectCmd.Flags().BoolVarP(&inspectTree, "tree", "t", false, "print the full event tree")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects a MIDI file",
	Long:  `Inspects a MIDI file: structure verdicts, note counts, and the tempo map.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadFile(args[0])
		if err != nil {
			return err
		}
		inspect(s)
		return nil
	},
}

func inspect(s *score.Score) {
	fmt.Printf("parts: %v\n", s.PartCount())
	fmt.Printf("notes: %v\n", analysis.NoteCount(s))
	fmt.Printf("duration: %v %v\n", s.Duration(), s.Units)
	fmt.Printf("flat: %v\n", score.IsFlat(s))
	fmt.Printf("measured: %v\n", score.IsMeasured(s))
	fmt.Printf("monophonic: %v\n", analysis.IsMonophonic(s))
	fmt.Printf("ties: %v chords: %v rests: %v\n",
		score.HasTies(s), score.HasChords(s), score.HasRests(s))
	for _, bp := range s.TimeMap.Breakpoints() {
		fmt.Printf("tempo breakpoint: beat %v at %vs\n", bp.Beat, bp.Time)
	}
	if inspectTree {
		score.Dump(os.Stdout, s)
	}
}
