package findx

import "os"

// FileExist reports whether path exists and is not a directory.
func FileExist(path string) bool {
	stat, _ := os.Stat(path)
	if stat == nil {
		return false
	}

	return !stat.IsDir()
}

// DirectoryExist reports whether path exists and is a directory.
func DirectoryExist(path string) bool {
	stat, _ := os.Stat(path)
	if stat == nil {
		return false
	}

	return stat.IsDir()
}

// verifyExistence checks every entry up front so a filter or sort never
// produces partial output when the list contains a missing path.
func verifyExistence(files []string) error {
	for _, path := range files {
		if path == "" {
			return newInvalidArgumentError("files", path)
		}

		if _, err := os.Stat(path); err != nil {
			return newPathNotFoundError(path)
		}
	}

	return nil
}
