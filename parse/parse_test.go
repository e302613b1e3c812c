package parse

import (
	"errors"
	"testing"

	"github.com/pathtree/go-pathtree/format"
)

func TestParseJSON(t *testing.T) {
	doc := `{"name":"root","data":1,"children":[
		{"name":"a","data":2,"children":[]},
		{"name":"b","data":3,"children":[
			{"name":"c","data":4,"children":[]}
		]}
	]}`
	tr, err := Parse[float64]([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	n, err := tr.Get("/b/c")
	if err != nil {
		t.Fatalf("get /b/c: %v", err)
	}
	if n.Data != 4 {
		t.Errorf("data at /b/c = %v, want 4", n.Data)
	}
}

func TestParseYAML(t *testing.T) {
	doc := `name: root
data: 1
children:
- name: a
  data: 2
  children: []
- name: b
  data: 3
  children:
  - name: c
    data: 4
    children: []
`
	tr, err := Parse[int]([]byte(doc), ParseFormat(format.YAMLFormat))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	n, err := tr.Get("/b/c")
	if err != nil {
		t.Fatalf("get /b/c: %v", err)
	}
	if n.Data != 4 {
		t.Errorf("data at /b/c = %v, want 4", n.Data)
	}
}

func TestParseBadInput(t *testing.T) {
	if _, err := Parse[any]([]byte("{not json")); !errors.Is(err, ErrParse) {
		t.Errorf("bad json = %v, want ErrParse", err)
	}
}

func TestParseTextRejected(t *testing.T) {
	_, err := Parse[any](nil, ParseFormat(format.TextFormat))
	if !errors.Is(err, ErrBadFormat) {
		t.Errorf("text parse = %v, want ErrBadFormat", err)
	}
	if !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("text parse = %v, want format.ErrBadFormat", err)
	}
}

func TestParseDuplicateSiblings(t *testing.T) {
	doc := `{"name":"root","data":null,"children":[
		{"name":"a","data":null,"children":[]},
		{"name":"a","data":null,"children":[]}
	]}`
	if _, err := Parse[any]([]byte(doc)); err == nil {
		t.Errorf("duplicate siblings parsed without error")
	}
}
