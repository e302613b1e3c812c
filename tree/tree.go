package tree

import (
	"fmt"

	"github.com/pathtree/go-pathtree/tree/path"
)

// Tree owns a node graph rooted at a single node named "root". The root
// is created at construction and is never replaced or removed.
//
// Trees are not safe for concurrent mutation; callers needing parallel
// access must guard all operations with a single exclusive lock.
type Tree[T any] struct {
	root *Node[T]
}

// New builds a Tree whose root holds rootData.
func New[T any](rootData T) *Tree[T] {
	t := &Tree[T]{}
	t.root = &Node[T]{
		name: path.RootName,
		tree: t,
		Data: rootData,
	}
	return t
}

// Root returns the tree's root node.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Get resolves a path strictly, returning the node at its final segment
// or ErrNotFound naming the first missing segment.
func (t *Tree[T]) Get(p string) (*Node[T], error) {
	segs, err := path.Parse(p)
	if err != nil {
		return nil, err
	}
	var cur *Node[T]
	level := []*Node[T]{t.root}
	for _, seg := range segs {
		cur = nil
		for _, n := range level {
			if n.name == seg {
				cur = n
				break
			}
		}
		if cur == nil {
			return nil, fmt.Errorf("%w: %q in %q", ErrNotFound, seg, p)
		}
		level = cur.children
	}
	return cur, nil
}

// Lookup resolves a path non-strictly: it returns nil when the path is
// malformed or any segment is missing.
func (t *Tree[T]) Lookup(p string) *Node[T] {
	n, err := t.Get(p)
	if err != nil {
		return nil
	}
	return n
}

// Has reports whether a node exists at the given path. It never fails.
func (t *Tree[T]) Has(p string) bool {
	return t.Lookup(p) != nil
}

// Add inserts a new node named name under the node at parentPath and
// returns it. The parent must exist and the computed child path must not
// already resolve; on failure the tree is left unchanged.
func (t *Tree[T]) Add(name string, data T, parentPath string) (*Node[T], error) {
	parent, err := t.Get(parentPath)
	if err != nil {
		return nil, err
	}
	return parent.AddChild(name, data)
}

// Remove resolves a path strictly and removes the node there, returning
// the now-detached node.
func (t *Tree[T]) Remove(p string) (*Node[T], error) {
	n, err := t.Get(p)
	if err != nil {
		return nil, err
	}
	if err := n.Remove(); err != nil {
		return nil, err
	}
	return n, nil
}

// Traverse walks the whole tree pre-order, parent before descendants,
// children in insertion order.
func (t *Tree[T]) Traverse(f func(*Node[T])) {
	t.root.Traverse(f)
}
