package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsphweid/smart/constants"
	"github.com/jsphweid/smart/midi"
	"github.com/jsphweid/smart/model"
	"github.com/jsphweid/smart/score"
	"github.com/jsphweid/smart/util"
)

var reportMax int

func init() {
	reportCmd.Flags().IntVar(&reportMax, "max", 0, "stop after this many files (0 = no limit)")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report [dir]",
	Short: "Batch-analyzes a directory of MIDI files",
	Long: `Batch-analyzes every MIDI file under a directory (SMART_MEDIA when no
argument is given) and writes one JSON report per file to the out dir.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := ""
		if len(args) == 1 {
			root = args[0]
		}
		report(root)
	},
}

func report(root string) {
	if root == "" {
		root = constants.GetMediaDir()
	}
	outDir := constants.GetOutDir()
	util.RecreateOutputDir(outDir)

	paths := util.GatherAllMidiPaths(root, reportMax)
	var written, failed, notes int
	for _, path := range paths {
		fr, err := reportFile(path)
		if err != nil {
			fmt.Printf("skipping %v: %v\n", path, err)
			failed++
			continue
		}
		outPath := filepath.Join(outDir, uuid.NewString()+".json")
		if err := util.WriteJSON(outPath, fr); err != nil {
			fmt.Printf("writing %v: %v\n", outPath, err)
			failed++
			continue
		}
		written++
		notes += fr.NoteCount
	}

	fmt.Printf("files found: %v\n", len(paths))
	fmt.Printf("reports written: %v\n", written)
	fmt.Printf("failures: %v\n", failed)
	fmt.Printf("total notes: %v\n", notes)
}

func reportFile(path string) (*model.FileReport, error) {
	s, err := midi.ReadFile(path)
	if err != nil {
		return nil, err
	}
	res, err := analyzeScore(s, nil, true)
	if err != nil {
		return nil, err
	}
	return &model.FileReport{
		File:            path,
		Parts:           s.PartCount(),
		FlatScore:       score.IsFlat(s),
		AnalyzeResponse: *res,
	}, nil
}
