package pathtree

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/pathtree/go-pathtree/debug"
	"github.com/pathtree/go-pathtree/parse"
	"github.com/pathtree/go-pathtree/tree"
)

// Patch applies an RFC 6902 JSON Patch document to the JSON form of t
// and reconstructs a tree from the result. The input tree is left
// untouched; a patch producing duplicate sibling names or a malformed
// document fails at reconstruction.
func Patch[T any](t *tree.Tree[T], patchDoc []byte) (*tree.Tree[T], error) {
	ops, err := jsonpatch.DecodePatch(patchDoc)
	if err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	d, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patching %d byte document with %d ops\n", len(d), len(ops))
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}
	return parse.Parse[T](out)
}
