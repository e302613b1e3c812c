package pathtree

import (
	"bytes"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/pathtree/go-pathtree/debug"
	"github.com/pathtree/go-pathtree/encode"
	"github.com/pathtree/go-pathtree/format"
	"github.com/pathtree/go-pathtree/tree"
)

// Diff returns a line diff between the YAML encodings of two trees,
// "-" lines from a, "+" lines from b. The result is empty exactly when
// the trees are structurally equal.
func Diff[T any](a, b *tree.Tree[T]) (string, error) {
	sa, err := encodeYAML(a)
	if err != nil {
		return "", err
	}
	sb, err := encodeYAML(b)
	if err != nil {
		return "", err
	}
	if sa == sb {
		return "", nil
	}
	if debug.Diff() {
		debug.Logf("diffing %d and %d byte documents\n", len(sa), len(sb))
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(sa, sb)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	buf := &strings.Builder{}
	for _, df := range diffs {
		prefix := "  "
		switch df.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.Split(strings.TrimSuffix(df.Text, "\n"), "\n") {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}
	return buf.String(), nil
}

func encodeYAML[T any](t *tree.Tree[T]) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.EncodeTree(t, buf, encode.EncodeFormat(format.YAMLFormat)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
