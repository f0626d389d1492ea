// Package filter decides which feed items are downloaded based on their
// display titles.
package filter

import (
	"fmt"
	"regexp"
)

// TitleFilter is a pure predicate over item titles. Both patterns are
// optional; matching is regular-expression search, not full-string equality.
// A TitleFilter is immutable after construction and safe for concurrent use.
type TitleFilter struct {
	include *regexp.Regexp
	exclude *regexp.Regexp
}

// New compiles the optional include and exclude patterns. An empty pattern
// string means the corresponding stage is not configured.
func New(includePattern, excludePattern string) (*TitleFilter, error) {
	f := &TitleFilter{}

	if includePattern != "" {
		re, err := regexp.Compile(includePattern)
		if err != nil {
			return nil, fmt.Errorf("compile include pattern: %w", err)
		}
		f.include = re
	}

	if excludePattern != "" {
		re, err := regexp.Compile(excludePattern)
		if err != nil {
			return nil, fmt.Errorf("compile exclude pattern: %w", err)
		}
		f.exclude = re
	}

	return f, nil
}

// Allowed reports whether an item with the given title should be downloaded.
// The title must match the include pattern when one is configured, and must
// not match the exclude pattern when one is configured; exclusion wins.
func (f *TitleFilter) Allowed(title string) bool {
	if f.include != nil && !f.include.MatchString(title) {
		return false
	}
	if f.exclude != nil && f.exclude.MatchString(title) {
		return false
	}
	return true
}
