package encode

import (
	"bytes"
	"strings"

	"github.com/pathtree/go-pathtree/tree"
)

func MustString[T any](n *tree.Node[T], opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
