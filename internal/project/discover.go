package project

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AndreyAkinshin/casegen/internal/source"
)

// DialectMarker maps a build file to the dialect of the track using it.
type DialectMarker struct {
	Pattern string
	Dialect string
}

// dialectMarkers defines the auto-detection order. First match wins.
var dialectMarkers = []DialectMarker{
	{"Cargo.toml", "rust"},
	{"go.mod", "go"},
}

// DetectDialect guesses the dialect of a track from the build files in dir.
func DetectDialect(dir string) (string, bool) {
	for _, marker := range dialectMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker.Pattern)); err == nil {
			return marker.Dialect, true
		}
	}
	return "", false
}

// DiscoverExercises lists the exercises under specRoot/exercises that have
// canonical data, sorted by name.
func DiscoverExercises(specRoot string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(specRoot, "exercises"))
	if err != nil {
		return nil, err
	}

	var exercises []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if _, err := os.Stat(filepath.Join(specRoot, "exercises", name, source.CanonicalDataFile)); err == nil {
			exercises = append(exercises, name)
		}
	}
	sort.Strings(exercises)
	return exercises, nil
}
