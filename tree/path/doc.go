// Package path provides the slash-delimited path syntax used to address
// tree nodes.
//
// A path is a string beginning with "/", with segments separated by "/".
// The leading separator denotes the root node; segment matching is by
// exact, case-sensitive name equality.
//
// # Usage
//
//	// Parse a path into its segment list
//	segs, err := path.Parse("/a/b/c") // ["root", "a", "b", "c"]
//
//	// Join a parent path and a child name
//	p := path.Join("/a/", "b") // "/a/b"
//
// # Related Packages
//
//   - github.com/pathtree/go-pathtree/tree - the tree container addressed
//     by these paths
package path
