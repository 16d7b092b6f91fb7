package findx

import (
	"os"
	"time"
)

// FilterByDate returns the entries of files whose modification time satisfies
// criterion against reference, preserving input order. When reference is a
// bare calendar date (a midnight clock, the shape produced by parsing
// time.DateOnly), each file's modification time is truncated to its calendar
// date before comparing, so whole-day comparisons behave intuitively; any
// other reference compares at full precision.
//
// Every input path is checked for existence before any comparison is made;
// a single missing entry fails the whole call with ErrPathNotFound.
func FilterByDate(files []string, reference time.Time, criterion FilterCriterion) ([]string, error) {
	if err := verifyExistence(files); err != nil {
		return nil, err
	}

	dateOnly := isDateOnly(reference)

	filtered := make([]string, 0, len(files))
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			return nil, newPathNotFoundError(path)
		}

		modTime := info.ModTime()
		if dateOnly {
			modTime = truncateToDate(modTime, reference.Location())
		}

		holds, err := compareTime(modTime, reference, criterion)
		if err != nil {
			return nil, err
		}

		if holds {
			filtered = append(filtered, path)
		}
	}

	return filtered, nil
}

// FilterBySize returns the entries of files whose byte size lies in the
// inclusive range [minSize, maxSize], preserving input order. A negative
// bound is unset; with both bounds unset the input passes through unchanged.
// Existence of every input path is validated up front, like FilterByDate.
func FilterBySize(files []string, minSize, maxSize int64) ([]string, error) {
	if err := verifyExistence(files); err != nil {
		return nil, err
	}

	filtered := make([]string, 0, len(files))
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			return nil, newPathNotFoundError(path)
		}

		size := info.Size()
		if (minSize < 0 || size >= minSize) && (maxSize < 0 || size <= maxSize) {
			filtered = append(filtered, path)
		}
	}

	return filtered, nil
}

func compareTime(modTime, reference time.Time, criterion FilterCriterion) (bool, error) {
	switch criterion {
	case FilterGreaterThan:
		return modTime.After(reference), nil
	case FilterGreaterOrEqual:
		return !modTime.Before(reference), nil
	case FilterEqual:
		return modTime.Equal(reference), nil
	case FilterLessOrEqual:
		return !modTime.After(reference), nil
	case FilterLessThan:
		return modTime.Before(reference), nil
	default:
		return false, newInvalidArgumentError("criterion", string(criterion))
	}
}

// isDateOnly reports whether t carries no time of day.
func isDateOnly(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

func truncateToDate(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
