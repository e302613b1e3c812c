// Package tree provides a hierarchical, path-addressable container: a
// single root node holding arbitrary application data, with named child
// nodes reachable via slash-delimited paths.
//
// # Overview
//
// A Tree owns the whole node graph transitively; the root node is fixed,
// named "root", and created at construction. Every other node is created
// through Tree.Add, Node.AddChild, or document reconstruction, and
// destroyed only through Remove. Sibling names are unique, enforced at
// insertion time through the computed child path.
//
// # Addressing
//
// Paths are slash-delimited strings ("/a/b/c"); the leading separator
// denotes the root. Resolution matches segment names exactly and
// case-sensitively, scanning each child list linearly. Strict resolution
// (Get) fails with ErrNotFound naming the missing segment; non-strict
// resolution (Lookup, Has) yields an empty result instead. Paths are the
// only addressing surface: there is no query language.
//
// # Lifecycle
//
// Nodes are live-attached until removed, then permanently detached: the
// subtree is discarded and all operations except Name and Data access
// fail with ErrDetached.
//
// # Serialization
//
// The document form is a plain recursive record:
//
//	Doc := { name: string, data: T, children: [Doc, ...] }
//
// Tree.Doc and FromDoc convert between trees and documents; the JSON
// encoding of a tree is the encoding of its root document.
//
// # Thread Safety
//
// Trees are single-threaded. Resolution and the insertion-time existence
// check read child lists without synchronization, so concurrent
// structural mutation is undefined; guard a shared Tree with one
// exclusive lock.
//
// # Related Packages
//
//   - github.com/pathtree/go-pathtree/tree/path - path syntax
//   - github.com/pathtree/go-pathtree/parse - decode documents to trees
//   - github.com/pathtree/go-pathtree/encode - encode trees to documents
package tree
