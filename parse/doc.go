// Package parse decodes serialized tree documents into live trees.
//
// The document shape is the recursive record produced by package encode:
//
//	{ name: string, data: any, children: [...] }
//
// # Usage
//
//	t, err := parse.Parse[any](data)                                   // JSON
//	t, err := parse.Parse[any](data, parse.ParseFormat(format.YAMLFormat))
//
// Reconstruction inserts children in document order, so a parsed tree
// preserves the serialized child order. Duplicate sibling names in the
// input are rejected.
//
// # Related Packages
//
//   - github.com/pathtree/go-pathtree/encode - the inverse operation
//   - github.com/pathtree/go-pathtree/tree - the container built here
package parse
