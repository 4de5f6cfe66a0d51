package constants

import "os"

// GetOutDir is where the report command writes per-file JSON reports.
func GetOutDir() string {
	path := os.Getenv("SMART_OUT")
	if path != "" {
		return path
	}
	return "./out"
}

// GetMediaDir is the directory tree the report command scans for MIDI
// files.
func GetMediaDir() string {
	path := os.Getenv("SMART_MEDIA")
	if path != "" {
		return path
	}

	panic("SMART_MEDIA environment variable is not set!")
}

// GetServeAddr is the listen address of the serve command.
func GetServeAddr() string {
	addr := os.Getenv("SMART_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

// SkylineThreshold is the gap, in beats, under which a low note
// quickly covered by a higher one is dropped during skyline
// extraction.
const SkylineThreshold = 0.1
