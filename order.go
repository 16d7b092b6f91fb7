package findx

import (
	"os"
	"sort"
	"strings"
	"time"
)

// OrderBy returns a new slice of files sorted by criterion; the input is
// never mutated. The sort is stable: entries with equal keys keep their
// relative input order. Name orderings compare the lower-cased full path;
// modified orderings compare the last-modification time read at call time.
// An unrecognized criterion sorts by name ascending — a lenient default
// rather than an error.
//
// Empty input returns an empty slice without touching the filesystem.
// Non-empty input is existence-validated up front, like the filters.
func OrderBy(files []string, criterion OrderCriterion) ([]string, error) {
	if len(files) == 0 {
		return []string{}, nil
	}

	if err := verifyExistence(files); err != nil {
		return nil, err
	}

	ordered := make([]string, len(files))
	copy(ordered, files)

	switch criterion {
	case OrderModifiedAsc, OrderModifiedDesc:
		modTimes := make(map[string]time.Time, len(ordered))
		for _, path := range ordered {
			info, err := os.Stat(path)
			if err != nil {
				return nil, newPathNotFoundError(path)
			}
			modTimes[path] = info.ModTime()
		}

		sort.SliceStable(ordered, func(i, j int) bool {
			if criterion == OrderModifiedDesc {
				return modTimes[ordered[j]].Before(modTimes[ordered[i]])
			}
			return modTimes[ordered[i]].Before(modTimes[ordered[j]])
		})
	case OrderNameDesc:
		sort.SliceStable(ordered, func(i, j int) bool {
			return strings.ToLower(ordered[j]) < strings.ToLower(ordered[i])
		})
	default:
		// OrderNameAsc and anything unrecognized
		sort.SliceStable(ordered, func(i, j int) bool {
			return strings.ToLower(ordered[i]) < strings.ToLower(ordered[j])
		})
	}

	return ordered, nil
}
