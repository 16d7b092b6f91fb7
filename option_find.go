package findx

// FindOption represents options for Find
type FindOption func(*findOptions)

type findOptions struct {
	maxDepth       int
	followSymlinks bool
	caseSensitive  bool
	ignoreHidden   bool
	limitResults   int
}

// defaultFindOptions returns default options for Find
func defaultFindOptions() *findOptions {
	return &findOptions{
		maxDepth:       -1, // No limit
		followSymlinks: false,
		caseSensitive:  true,
		ignoreHidden:   false,
		limitResults:   -1, // No limit
	}
}

// WithMaxDepth bounds how many directory levels below the root are descended
// into. 0 scans only the root itself; a negative value removes the bound.
func WithMaxDepth(depth int) FindOption {
	return func(opts *findOptions) {
		opts.maxDepth = depth
	}
}

// WithFollowSymlinks descends into directories reached through symbolic
// links. There is no cycle protection; a self-referencing link tree will
// recurse until the walk fails.
func WithFollowSymlinks() FindOption {
	return func(opts *findOptions) {
		opts.followSymlinks = true
	}
}

// WithCaseSensitive sets case sensitivity for name matching
func WithCaseSensitive(sensitive bool) FindOption {
	return func(opts *findOptions) {
		opts.caseSensitive = sensitive
	}
}

// WithIgnoreHidden skips hidden files and directories
func WithIgnoreHidden() FindOption {
	return func(opts *findOptions) {
		opts.ignoreHidden = true
	}
}

// WithLimitResults limits the number of results returned
func WithLimitResults(limit int) FindOption {
	return func(opts *findOptions) {
		opts.limitResults = limit
	}
}
