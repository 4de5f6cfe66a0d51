package model

import "github.com/jsphweid/smart/analysis"

// AnalyzeRequest is the body of POST /analyze: a melody given as
// parallel slices. Onsets may be omitted for back-to-back notes.
// Durations of length 1 applies to every note. Distributions names
// the distribution types wanted; empty means all of them.
type AnalyzeRequest struct {
	Keynums       []int     `json:"keynums"`
	Onsets        []float64 `json:"onsets,omitempty"`
	Durations     []float64 `json:"durations"`
	Distributions []string  `json:"distributions,omitempty"`
	Unweighted    bool      `json:"unweighted,omitempty"`
}

type AnalyzeResponse struct {
	NoteCount     int                      `json:"note_count"`
	Monophonic    bool                     `json:"monophonic"`
	BestKey       string                   `json:"best_key"`
	KeyScore      float64                  `json:"key_score"`
	Distributions []*analysis.Distribution `json:"distributions"`
	Entropies     map[string]float64       `json:"entropies"`
}

// FileReport is one report command output file.
type FileReport struct {
	File       string `json:"file"`
	Parts      int    `json:"parts"`
	FlatScore  bool   `json:"flat_score"`
	AnalyzeResponse
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
