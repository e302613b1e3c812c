// Package pathtree provides high-level operations over path-addressable
// trees: structural equality, line diffs, and RFC 6902 patching of the
// document form.
//
// The container itself lives in github.com/pathtree/go-pathtree/tree;
// this package composes it with the parse and encode packages.
package pathtree

import (
	"reflect"

	"github.com/pathtree/go-pathtree/tree"
)

// Equal reports whether two trees have identical name, data, and
// child-order structure at every level. It compares document forms, not
// node identities.
func Equal[T any](a, b *tree.Tree[T]) bool {
	return reflect.DeepEqual(a.Doc(), b.Doc())
}
