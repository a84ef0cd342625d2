package jsondelta

import "strings"

// DiffBehavior is a bit-set of recognized behavior flags for Diff.
type DiffBehavior uint8

const (
	// IgnoreMissingProperties suppresses delete encodings for keys present
	// only on the left side of an object diff.
	IgnoreMissingProperties DiffBehavior = 1 << iota
	// IgnoreNewProperties suppresses add encodings for keys present only
	// on the right side of an object diff.
	IgnoreNewProperties
)

func (b DiffBehavior) has(flag DiffBehavior) bool {
	return b&flag != 0
}

// ArrayDiffMode selects the strategy diffArray uses for unequal arrays.
type ArrayDiffMode int

const (
	// Efficient runs the LCS-based array differ (the default).
	Efficient ArrayDiffMode = iota
	// Simple treats any two unequal arrays as a whole-value replace,
	// skipping the LCS engine entirely.
	Simple
)

// Options carries the configuration parameters recognized by Diff.
type Options struct {
	// ExcludePaths lists JSON-node paths, compared case-insensitively, to
	// skip while diffing objects. A path is the dot-joined chain of object
	// keys leading to the node at the point it's inspected.
	ExcludePaths []string
	// DiffBehaviors is a bit-set of DiffBehavior flags.
	DiffBehaviors DiffBehavior
	// ArrayDiffMode selects how unequal arrays are diffed.
	ArrayDiffMode ArrayDiffMode
	// Stats, if non-nil, is populated with counts of the adds, removes,
	// moves, and edits the diff produces.
	Stats *Stats
}

// DiffOption is a function that adjusts an Options value. Zero or more
// DiffOptions may be passed to Diff.
type DiffOption func(*Options)

// WithExcludePaths sets the set of paths to skip during diffing.
func WithExcludePaths(paths ...string) DiffOption {
	return func(o *Options) {
		o.ExcludePaths = paths
	}
}

// WithDiffBehaviors sets the diff-behavior bit-set.
func WithDiffBehaviors(b DiffBehavior) DiffOption {
	return func(o *Options) {
		o.DiffBehaviors = b
	}
}

// WithArrayDiffMode sets the array-diff strategy.
func WithArrayDiffMode(m ArrayDiffMode) DiffOption {
	return func(o *Options) {
		o.ArrayDiffMode = m
	}
}

// WithStats installs a Stats pointer that Diff will populate.
func WithStats(s *Stats) DiffOption {
	return func(o *Options) {
		o.Stats = s
	}
}

// excludeSet is a rebuilt-per-call, case-insensitive lookup of excluded
// paths. The option carrier itself (Options.ExcludePaths) stays a plain
// slice; the set is an implementation detail of a single Diff call.
type excludeSet map[string]struct{}

func newExcludeSet(paths []string) excludeSet {
	set := make(excludeSet, len(paths))
	for _, p := range paths {
		set[strings.ToLower(p)] = struct{}{}
	}
	return set
}

func (s excludeSet) contains(path string) bool {
	_, ok := s[strings.ToLower(path)]
	return ok
}

// joinPath appends a property name to a dot-joined path.
func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

// diffCtx threads per-call configuration through the differs without
// re-deriving the exclude set at every recursive step.
type diffCtx struct {
	behaviors DiffBehavior
	arrayMode ArrayDiffMode
	excl      excludeSet
	stats     *Stats
}
