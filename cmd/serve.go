package cmd

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/smart/constants"
	"github.com/jsphweid/smart/model"
	"github.com/jsphweid/smart/score"
)

var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the analysis API",
	Long:  `Serves the analysis API over HTTP: POST /analyze with a melody body.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

// HandleAnalyze answers POST /analyze. Exported so the e2e tests can
// drive the handler without a listener.
func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var input model.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode request body: "+err.Error())
		return
	}
	if len(input.Keynums) == 0 {
		writeError(w, http.StatusBadRequest, "keynums must not be empty")
		return
	}

	var s *score.Score
	var err error
	if len(input.Onsets) > 0 {
		s, err = score.FromMelodyOnsets(input.Keynums, input.Onsets, input.Durations)
	} else {
		s, err = score.FromMelody(input.Keynums, input.Durations)
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := analyzeScore(s, input.Distributions, !input.Unweighted)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).String())
	})
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/analyze", HandleAnalyze).Methods("POST")
	router.Use(logRequests)

	handler := cors.Default().Handler(router)
	addr := constants.GetServeAddr()
	logger.Info("listening", "addr", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
