package path

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Sep separates path segments.
	Sep = "/"
	// RootName is the name of every tree's root node and the name the
	// leading separator of a path resolves to.
	RootName = "root"
)

var ErrMalformed = errors.New("malformed path")

// Parse splits a path into its segment list. The leading separator stands
// for the root and is replaced with RootName; a single trailing separator
// is dropped. Paths not starting with Sep are rejected. No normalization
// of "." or ".." is performed, and interior empty segments are kept as-is
// (they never match a node).
//
// Examples:
//   - "/"     → ["root"]
//   - "/a/b"  → ["root", "a", "b"]
//   - "/a/b/" → ["root", "a", "b"]
func Parse(p string) ([]string, error) {
	if !strings.HasPrefix(p, Sep) {
		return nil, fmt.Errorf("%w: %q does not start with %q", ErrMalformed, p, Sep)
	}
	segs := strings.Split(p, Sep)
	segs[0] = RootName
	if last := len(segs) - 1; last > 0 && segs[last] == "" {
		segs = segs[:last]
	}
	return segs, nil
}

// Join joins a parent path and a child component with exactly one
// separator between them, whatever combination of trailing/leading
// separators the inputs carry. It is order-preserving and does not
// normalize the result.
func Join(a, b string) string {
	aEnds := strings.HasSuffix(a, Sep)
	bStarts := strings.HasPrefix(b, Sep)
	switch {
	case aEnds && bStarts:
		return a + b[len(Sep):]
	case aEnds || bStarts:
		return a + b
	default:
		return a + Sep + b
	}
}
