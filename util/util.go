package util

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/constraints"
)

// RecreateOutputDir wipes and recreates dir.
func RecreateOutputDir(dir string) {
	os.RemoveAll(dir)
	os.MkdirAll(dir, 0777)
}

// GatherAllMidiPaths walks root collecting .mid and .midi files.
// maxNum of 0 means no limit.
func GatherAllMidiPaths(root string, maxNum int) []string {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			panic("Error walking: " + err.Error())
		}
		if !d.IsDir() {
			if strings.HasSuffix(s, ".mid") || strings.HasSuffix(s, ".midi") {
				if maxNum == 0 || len(res) < maxNum {
					res = append(res, s)
				}
			}
		}
		return nil
	}
	filepath.WalkDir(root, walk)
	return res
}

// WriteJSON marshals data with indentation and writes it to filename.
func WriteJSON(filename string, data any) error {
	buf, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, buf, 0644)
}

// Sum adds up a slice of numbers.
func Sum[A constraints.Integer | constraints.Float](nums []A) A {
	var total A
	for _, v := range nums {
		total += v
	}
	return total
}

// ArgMax returns the index of the largest element, -1 for an empty
// slice.
func ArgMax[A constraints.Ordered](nums []A) int {
	if len(nums) == 0 {
		return -1
	}
	best := 0
	for i, v := range nums {
		if v > nums[best] {
			best = i
		}
	}
	return best
}
