package tree

import (
	"errors"

	"github.com/pathtree/go-pathtree/tree/path"
)

var (
	// ErrMalformedPath reports a path that does not start with the
	// separator, or an invalid node name.
	ErrMalformedPath = path.ErrMalformed

	// ErrNotFound reports a failed strict resolution; the wrapped
	// message names the missing segment.
	ErrNotFound = errors.New("node not found")

	// ErrExists reports an insertion whose computed path already
	// resolves to a node.
	ErrExists = errors.New("node already exists")

	// ErrDetached reports an operation on a removed node.
	ErrDetached = errors.New("node does not belong to any tree")

	// ErrRemoveRoot reports an attempt to remove the root node.
	ErrRemoveRoot = errors.New("cannot remove the root node")
)
