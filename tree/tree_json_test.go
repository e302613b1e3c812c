package tree

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleTree(t *testing.T) *Tree[payload] {
	t.Helper()
	tr := New(payload{V: 1})
	mustAdd := func(name string, v int, parent string) {
		t.Helper()
		if _, err := tr.Add(name, payload{V: v}, parent); err != nil {
			t.Fatalf("add %s under %s: %v", name, parent, err)
		}
	}
	mustAdd("a", 2, "/")
	mustAdd("b", 3, "/")
	mustAdd("a1", 4, "/a")
	mustAdd("a2", 5, "/a")
	mustAdd("deep", 6, "/a/a2")
	return tr
}

func TestDocRoundTrip(t *testing.T) {
	tr := sampleTree(t)
	got, err := FromDoc(tr.Doc())
	if err != nil {
		t.Fatalf("from doc: %v", err)
	}
	if diff := cmp.Diff(tr.Doc(), got.Doc()); diff != "" {
		t.Errorf("doc round trip (-want +got):\n%s", diff)
	}
	// reconstruction produces live, addressable nodes
	n, err := got.Get("/a/a2/deep")
	if err != nil {
		t.Fatalf("get after round trip: %v", err)
	}
	if n.Data != (payload{V: 6}) {
		t.Errorf("round-trip data = %+v", n.Data)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	tr := sampleTree(t)
	d, err := json.Marshal(tr)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := &Tree[payload]{}
	if err := json.Unmarshal(d, got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(tr.Doc(), got.Doc()); diff != "" {
		t.Errorf("json round trip (-want +got):\n%s", diff)
	}
}

func TestUnmarshalDocument(t *testing.T) {
	doc := `{
  "name": "root",
  "data": {"v": 1},
  "children": [
    {"name": "x", "data": {"v": 2}, "children": [
      {"name": "y", "data": {"v": 3}, "children": []}
    ]}
  ]
}`
	tr := &Tree[payload]{}
	if err := json.Unmarshal([]byte(doc), tr); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	n, err := tr.Get("/x/y")
	if err != nil {
		t.Fatalf("get /x/y: %v", err)
	}
	if n.Data != (payload{V: 3}) {
		t.Errorf("data at /x/y = %+v", n.Data)
	}
	p, err := n.Path()
	if err != nil || p != "/x/y" {
		t.Errorf("path = (%q, %v)", p, err)
	}
}

func TestFromDocDuplicate(t *testing.T) {
	doc := &Doc[payload]{
		Name: "root",
		Children: []*Doc[payload]{
			{Name: "a"},
			{Name: "a"},
		},
	}
	if _, err := FromDoc(doc); !errors.Is(err, ErrExists) {
		t.Errorf("from doc with duplicate siblings = %v, want ErrExists", err)
	}
}

func TestLeafChildrenSerializeEmpty(t *testing.T) {
	tr := New(payload{})
	d, err := json.Marshal(tr)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"name":"root","data":{"v":0},"children":[]}`
	if string(d) != want {
		t.Errorf("marshal = %s, want %s", d, want)
	}
}
