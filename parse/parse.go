package parse

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/pathtree/go-pathtree/tree"
)

// Parse decodes a serialized tree document into a live Tree. The input
// format defaults to JSON; use ParseFormat to select YAML. The text
// outline format is encode-only.
func Parse[T any](d []byte, opts ...ParseOption) (*tree.Tree[T], error) {
	ps := &ParseState{}
	for _, opt := range opts {
		opt(ps)
	}
	doc := &tree.Doc[T]{}
	switch {
	case ps.format.IsYAML():
		if err := yaml.Unmarshal(d, doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
	case ps.format.IsJSON():
		if err := json.Unmarshal(d, doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
	default:
		return nil, fmt.Errorf("%w: cannot parse %s input", ErrBadFormat, ps.format)
	}
	t, err := tree.FromDoc(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return t, nil
}
