package cmd

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/smart/analysis"
	"github.com/jsphweid/smart/constants"
	"github.com/jsphweid/smart/midi"
	"github.com/jsphweid/smart/model"
	"github.com/jsphweid/smart/normalize"
	"github.com/jsphweid/smart/score"
)

var (
	analyzeDistributions []string
	analyzeUnweighted    bool
	analyzeSeconds       bool
	analyzeSkyline       bool
)

func init() {
	analyzeCmd.Flags().StringSliceVarP(&analyzeDistributions, "distribution", "d", nil,
		"distribution types to compute (default all)")
	analyzeCmd.Flags().BoolVar(&analyzeUnweighted, "unweighted", false,
		"count notes instead of weighting by duration")
	analyzeCmd.Flags().BoolVar(&analyzeSeconds, "seconds", false,
		"convert the score to seconds before analyzing")
	analyzeCmd.Flags().BoolVar(&analyzeSkyline, "skyline", false,
		"reduce polyphony to the top melodic line first")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.mid>",
	Short: "Analyzes one MIDI file",
	Long:  `Analyzes one MIDI file and prints the requested distributions as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadFile(args[0])
		if err != nil {
			return err
		}
		if analyzeSkyline {
			s, err = analysis.Skyline(s, constants.SkylineThreshold)
			if err != nil {
				return err
			}
		}
		if analyzeSeconds {
			s = normalize.ToSeconds(s)
		}
		res, err := analyzeScore(s, analyzeDistributions, !analyzeUnweighted)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	},
}

// allDistributionTypes is the default set computed when a request does
// not name any.
var allDistributionTypes = []analysis.DistributionType{
	analysis.PitchClass,
	analysis.PitchClassTransition,
	analysis.Interval,
	analysis.IntervalTransition,
	analysis.PitchClassInterval,
	analysis.IntervalSize,
	analysis.IntervalDirection,
	analysis.Duration,
	analysis.DurationTransition,
	analysis.KeyCorrelation,
}

func computeDistribution(s *score.Score, t analysis.DistributionType, weighted bool) (*analysis.Distribution, error) {
	switch t {
	case analysis.PitchClass:
		return analysis.PitchClassDistribution(s, weighted), nil
	case analysis.PitchClassTransition:
		return analysis.PitchClassTransitionDistribution(s, weighted), nil
	case analysis.Interval:
		return analysis.IntervalDistribution(s, weighted)
	case analysis.IntervalTransition:
		return analysis.IntervalTransitionDistribution(s, weighted)
	case analysis.PitchClassInterval:
		return analysis.PitchClassIntervalDistribution(s, weighted)
	case analysis.IntervalSize:
		return analysis.IntervalSizeDistribution(s, weighted)
	case analysis.IntervalDirection:
		return analysis.IntervalDirectionDistribution(s, weighted)
	case analysis.Duration:
		return analysis.DurationDistribution(s), nil
	case analysis.DurationTransition:
		return analysis.DurationTransitionDistribution(s)
	case analysis.KeyCorrelation:
		return analysis.KeyCorrelations(s), nil
	}
	return nil, errors.Errorf("unknown distribution type %q", t)
}

// analyzeScore computes the named distributions plus the summary
// fields every response carries. When names is empty, every type is
// computed and the interval-based ones are silently skipped on
// polyphonic input; an explicitly requested type always reports its
// error.
func analyzeScore(s *score.Score, names []string, weighted bool) (*model.AnalyzeResponse, error) {
	types := allDistributionTypes
	explicit := len(names) > 0
	if explicit {
		types = make([]analysis.DistributionType, 0, len(names))
		for _, name := range names {
			t, err := analysis.ParseDistributionType(name)
			if err != nil {
				return nil, err
			}
			types = append(types, t)
		}
	}

	bestKey, keyScore := analysis.BestKey(s)
	res := &model.AnalyzeResponse{
		NoteCount:  analysis.NoteCount(s),
		Monophonic: analysis.IsMonophonic(s),
		BestKey:    bestKey,
		KeyScore:   keyScore,
		Entropies:  make(map[string]float64),
	}

	for _, t := range types {
		d, err := computeDistribution(s, t, weighted)
		if err != nil {
			if !explicit && errors.Is(err, analysis.ErrNotMonophonic) {
				continue
			}
			return nil, err
		}
		res.Distributions = append(res.Distributions, d)
		// correlations and per-size upward proportions are not
		// probability distributions, so entropy is undefined for them
		if t != analysis.KeyCorrelation && t != analysis.IntervalDirection {
			res.Entropies[string(t)] = analysis.Entropy(d.Data)
		}
	}
	return res, nil
}
