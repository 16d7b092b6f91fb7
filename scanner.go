package findx

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Scanner owns a search root and a name pattern. It is immutable after
// construction; every operation re-reads the filesystem, so results reflect
// the state of the tree at the moment of each call.
type Scanner struct {
	root    string
	pattern string
}

// NewScanner validates that root exists and is a directory. The pattern is
// not validated: a malformed pattern simply matches nothing.
func NewScanner(root string, pattern string) (*Scanner, error) {
	if root == "" {
		return nil, newInvalidArgumentError("root", root)
	}

	stat, err := os.Stat(root)
	if err != nil {
		return nil, newPathNotFoundError(root)
	}

	if !stat.IsDir() {
		return nil, newNotDirectoryError(root)
	}

	return &Scanner{
		root:    root,
		pattern: pattern,
	}, nil
}

// Find walks the tree below the root and returns every file whose base name
// matches the scanner's pattern, in traversal order. Traversal order is
// whatever the directory listing yields; callers needing a deterministic
// order should pass the result through OrderBy. An empty result is not an
// error.
func (s *Scanner) Find(options ...FindOption) ([]string, error) {
	opts := defaultFindOptions()
	for _, opt := range options {
		opt(opts)
	}

	results := make([]string, 0)

	err := s.scanDirectory(s.root, 0, opts, &results)
	if err != nil && err != io.EOF {
		return nil, newScanDirectoryError(s.root, err)
	}

	return results, nil
}

// scanDirectory scans one directory for matching files and recurses while
// the depth bound allows. depth is the number of path segments between the
// root and dir. Unreadable subdirectories are skipped; only a failure on the
// root itself aborts the walk.
func (s *Scanner) scanDirectory(dir string, depth int, opts *findOptions, results *[]string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if depth == 0 {
			return err
		}
		return nil
	}

	for _, entry := range entries {
		// Check result limit
		if opts.limitResults > 0 && len(*results) >= opts.limitResults {
			return io.EOF // Stop walking
		}

		name := entry.Name()
		if opts.ignoreHidden && isHidden(name) {
			continue
		}

		path := filepath.Join(dir, name)

		isDir := entry.IsDir()
		if entry.Type()&os.ModeSymlink != 0 && opts.followSymlinks {
			resolved, err := os.Stat(path)
			if err != nil {
				continue // Dangling link
			}
			isDir = resolved.IsDir()
		}

		if isDir {
			// A directory at the depth bound is scanned for files but not
			// descended into further.
			if opts.maxDepth >= 0 && depth >= opts.maxDepth {
				continue
			}

			if err := s.scanDirectory(path, depth+1, opts, results); err != nil {
				return err
			}

			continue
		}

		if matchName(name, s.pattern, opts.caseSensitive) {
			*results = append(*results, path)
		}
	}

	return nil
}

// matchName matches a glob pattern (*, ?, [seq]) against a base name.
// A malformed pattern matches nothing.
func matchName(name, pattern string, caseSensitive bool) bool {
	if !caseSensitive {
		name = strings.ToLower(name)
		pattern = strings.ToLower(pattern)
	}

	matched, err := doublestar.Match(pattern, name)
	if err != nil {
		return false
	}

	return matched
}

// isHidden checks if a file/directory is hidden
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
