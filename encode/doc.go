// Package encode writes trees out as JSON or YAML documents, or as a
// colored text outline for terminals.
//
// # Usage
//
//	err := encode.EncodeTree(t, os.Stdout)                                // JSON
//	err := encode.EncodeTree(t, w, encode.EncodeFormat(format.YAMLFormat))
//	err := encode.Encode(node, w,                                         // subtree
//	    encode.EncodeFormat(format.TextFormat),
//	    encode.EncodeColors(encode.NewColors()))
//
// # Related Packages
//
//   - github.com/pathtree/go-pathtree/parse - the inverse operation
package encode
