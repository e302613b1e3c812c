// Package format enumerates the interchange formats for serialized trees.
//
// JSON and YAML are symmetric: both parse and encode. Text is the
// human-readable outline rendering and is encode-only.
//
// # Related Packages
//
//   - github.com/pathtree/go-pathtree/parse - decode documents to trees
//   - github.com/pathtree/go-pathtree/encode - encode trees to documents
package format
