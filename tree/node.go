package tree

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pathtree/go-pathtree/tree/path"
)

// Node is a single tree element. Nodes are created through Tree.Add,
// Node.AddChild, or document reconstruction, never directly.
//
// A node is either live (attached to its owning Tree) or detached. The
// transition is one-way, triggered only by Remove. Once detached, the
// node's subtree is discarded and every operation except Name and Data
// access fails with ErrDetached.
type Node[T any] struct {
	name     string
	parent   *Node[T]
	tree     *Tree[T]
	children []*Node[T]

	// Data is the caller-supplied payload. The tree never inspects it
	// and it stays readable after the node is detached.
	Data T
}

// Name returns the node's name, unique among its live siblings.
func (n *Node[T]) Name() string {
	return n.name
}

// Children returns the node's child list in insertion order. The slice
// is the live list; callers must not modify it.
func (n *Node[T]) Children() []*Node[T] {
	return n.children
}

// Parent returns the node's parent, or nil for the root. It fails with
// ErrDetached once the node has been removed.
func (n *Node[T]) Parent() (*Node[T], error) {
	if n.tree == nil {
		return nil, ErrDetached
	}
	return n.parent, nil
}

// Path returns the path addressing this node, such that
// n.tree.Get(p) == n for the returned p. The root's path is "/".
func (n *Node[T]) Path() (string, error) {
	if n.tree == nil {
		return "", ErrDetached
	}
	if n.parent == nil {
		return path.Sep, nil
	}
	var segs []string
	for cur := n; cur.parent != nil; cur = cur.parent {
		segs = append(segs, cur.name)
	}
	slices.Reverse(segs)
	return path.Sep + strings.Join(segs, path.Sep), nil
}

// AddChild appends a new child node and returns it. The child's computed
// path must not already resolve in the owning tree; the check runs
// before any mutation.
func (n *Node[T]) AddChild(name string, data T) (*Node[T], error) {
	if n.tree == nil {
		return nil, ErrDetached
	}
	if name == "" || strings.Contains(name, path.Sep) {
		return nil, fmt.Errorf("%w: invalid node name %q", ErrMalformedPath, name)
	}
	own, err := n.Path()
	if err != nil {
		return nil, err
	}
	childPath := path.Join(own, name)
	if n.tree.Has(childPath) {
		return nil, fmt.Errorf("%w: %q", ErrExists, childPath)
	}
	c := &Node[T]{
		name:   name,
		parent: n,
		tree:   n.tree,
		Data:   data,
	}
	n.children = append(n.children, c)
	return c, nil
}

// Remove detaches the node from its tree. The node is spliced out of its
// parent's child list by identity, the tree backref is severed on every
// node of the subtree, and the node's own parent and children references
// are cleared: the subtree is discarded, not recoverable. Removing the
// root fails with ErrRemoveRoot.
func (n *Node[T]) Remove() error {
	if n.tree == nil {
		return ErrDetached
	}
	if n.parent == nil {
		return ErrRemoveRoot
	}
	sibs := n.parent.children
	for i, s := range sibs {
		if s == n {
			n.parent.children = append(sibs[:i], sibs[i+1:]...)
			break
		}
	}
	n.Traverse(func(c *Node[T]) { c.tree = nil })
	n.parent = nil
	n.children = nil
	return nil
}

// Traverse walks the subtree rooted at n in pre-order, visiting each
// node before its descendants and children in insertion order. The walk
// is iterative over an explicit stack.
func (n *Node[T]) Traverse(f func(*Node[T])) {
	stack := []*Node[T]{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		f(cur)
		for i := len(cur.children) - 1; i >= 0; i-- {
			stack = append(stack, cur.children[i])
		}
	}
}

// Visit walks the subtree rooted at n, calling f twice per node: once
// pre-order (isPost false) and once post-order (isPost true). Returning
// false from the pre-order call skips the node's children.
func (n *Node[T]) Visit(f func(n *Node[T], isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
