package encode

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/pathtree/go-pathtree/format"
	"github.com/pathtree/go-pathtree/tree"
)

type EncState struct {
	depth, indent int

	format format.Format

	Color func(ColorAttr, string) string
}

// Encode writes the subtree rooted at n to w. JSON (the default) and
// YAML produce the recursive document form; the text format produces a
// depth-indented outline, one node per line, with data rendered inline
// as JSON.
func Encode[T any](n *tree.Node[T], w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch {
	case es.format.IsYAML():
		d, err := yaml.Marshal(n.Doc())
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case es.format.IsText():
		return encodeText(n, w, es)
	default:
		d, err := json.MarshalIndent(n.Doc(), "", strings.Repeat(" ", es.indent))
		if err != nil {
			return err
		}
		if _, err := w.Write(d); err != nil {
			return err
		}
		return writeString(w, "\n")
	}
}

// EncodeTree encodes the whole tree, starting at its root.
func EncodeTree[T any](t *tree.Tree[T], w io.Writer, opts ...EncodeOption) error {
	return Encode(t.Root(), w, opts...)
}

func encodeText[T any](n *tree.Node[T], w io.Writer, es *EncState) error {
	return n.Visit(func(cur *tree.Node[T], isPost bool) (bool, error) {
		if isPost {
			es.depth--
			return false, nil
		}
		d, err := json.Marshal(cur.Data)
		if err != nil {
			return false, err
		}
		line := strings.Repeat(" ", es.depth*es.indent) +
			es.color(NameColor, cur.Name()) +
			es.color(SepColor, ": ") +
			es.color(DataColor, string(d)) + "\n"
		if err := writeString(w, line); err != nil {
			return false, err
		}
		es.depth++
		return true, nil
	})
}

func (es *EncState) color(attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(attr, v)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
