package resolver

import (
	"fmt"
	"regexp"
)

// compileAnchored compiles pattern so it must match starting at the first
// character of the candidate name. The pattern does not have to cover the
// whole name unless it ends with $ itself.
func compileAnchored(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: pattern is empty", ErrInvalidPattern)
	}
	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return re, nil
}
