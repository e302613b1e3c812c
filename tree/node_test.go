package tree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNodeParent(t *testing.T) {
	tr := New(payload{})
	a, _ := tr.Add("a", payload{}, "/")
	b, _ := a.AddChild("b", payload{})

	if p, err := tr.Root().Parent(); err != nil || p != nil {
		t.Errorf("root parent = (%v, %v), want (nil, nil)", p, err)
	}
	if p, err := a.Parent(); err != nil || p != tr.Root() {
		t.Errorf("a parent = (%v, %v), want root", p, err)
	}
	if p, err := b.Parent(); err != nil || p != a {
		t.Errorf("b parent = (%v, %v), want a", p, err)
	}
}

func TestNodeDetached(t *testing.T) {
	tr := New(payload{})
	a, _ := tr.Add("a", payload{V: 4}, "/")
	a.AddChild("b", payload{})
	if err := a.Remove(); err != nil {
		t.Fatalf("remove a: %v", err)
	}

	// name and data stay accessible
	if a.Name() != "a" || a.Data != (payload{V: 4}) {
		t.Errorf("detached node lost name/data: %q %+v", a.Name(), a.Data)
	}
	if a.Children() != nil {
		t.Errorf("detached node kept children")
	}

	if _, err := a.Path(); !errors.Is(err, ErrDetached) {
		t.Errorf("detached path = %v, want ErrDetached", err)
	}
	if _, err := a.Parent(); !errors.Is(err, ErrDetached) {
		t.Errorf("detached parent = %v, want ErrDetached", err)
	}
	if _, err := a.AddChild("c", payload{}); !errors.Is(err, ErrDetached) {
		t.Errorf("detached addChild = %v, want ErrDetached", err)
	}
	if err := a.Remove(); !errors.Is(err, ErrDetached) {
		t.Errorf("second remove = %v, want ErrDetached", err)
	}
}

func TestNodeRemoveDiscardsSubtree(t *testing.T) {
	tr := New(payload{})
	x, _ := tr.Add("x", payload{}, "/")
	y, _ := x.AddChild("y", payload{V: 5})
	y.AddChild("z", payload{})

	if _, err := tr.Remove("/x"); err != nil {
		t.Fatalf("remove /x: %v", err)
	}

	// descendants of the discarded subtree are detached too
	if _, err := y.Path(); !errors.Is(err, ErrDetached) {
		t.Errorf("discarded descendant path = %v, want ErrDetached", err)
	}
	if _, err := y.Parent(); !errors.Is(err, ErrDetached) {
		t.Errorf("discarded descendant parent = %v, want ErrDetached", err)
	}
	if _, err := y.AddChild("w", payload{}); !errors.Is(err, ErrDetached) {
		t.Errorf("discarded descendant addChild = %v, want ErrDetached", err)
	}
	if y.Name() != "y" || y.Data != (payload{V: 5}) {
		t.Errorf("discarded descendant lost name/data: %q %+v", y.Name(), y.Data)
	}

	// a fresh live node may reuse the name without colliding with the
	// discarded handle
	fresh, err := tr.Add("y", payload{V: 9}, "/")
	if err != nil {
		t.Fatalf("re-add y: %v", err)
	}
	got, err := tr.Get("/y")
	if err != nil {
		t.Fatalf("get /y: %v", err)
	}
	if got != fresh || got == y {
		t.Errorf("get /y did not resolve to the fresh node")
	}
}

func TestNodeAddChildName(t *testing.T) {
	tr := New(payload{})
	for _, name := range []string{"", "a/b", "/"} {
		if _, err := tr.Root().AddChild(name, payload{}); !errors.Is(err, ErrMalformedPath) {
			t.Errorf("addChild(%q) = %v, want ErrMalformedPath", name, err)
		}
	}
}

func TestNodeRemoveMiddle(t *testing.T) {
	tr := New(payload{})
	tr.Add("a", payload{}, "/")
	b, _ := tr.Add("b", payload{}, "/")
	tr.Add("c", payload{}, "/")

	if err := b.Remove(); err != nil {
		t.Fatalf("remove b: %v", err)
	}
	var names []string
	for _, c := range tr.Root().Children() {
		names = append(names, c.Name())
	}
	if diff := cmp.Diff([]string{"a", "c"}, names); diff != "" {
		t.Errorf("sibling order after removal (-want +got):\n%s", diff)
	}
	// the name is free again
	if _, err := tr.Add("b", payload{}, "/"); err != nil {
		t.Errorf("re-add b: %v", err)
	}
}

func TestNodeTraverseSubtree(t *testing.T) {
	tr := New(payload{})
	a, _ := tr.Add("a", payload{}, "/")
	a.AddChild("a1", payload{})
	a.AddChild("a2", payload{})
	tr.Add("b", payload{}, "/")

	var names []string
	a.Traverse(func(n *Node[payload]) {
		names = append(names, n.Name())
	})
	if diff := cmp.Diff([]string{"a", "a1", "a2"}, names); diff != "" {
		t.Errorf("subtree traverse (-want +got):\n%s", diff)
	}
}

func TestNodeVisit(t *testing.T) {
	tr := New(payload{})
	a, _ := tr.Add("a", payload{}, "/")
	a.AddChild("a1", payload{})
	tr.Add("b", payload{}, "/")

	var pre, post []string
	err := tr.Root().Visit(func(n *Node[payload], isPost bool) (bool, error) {
		if isPost {
			post = append(post, n.Name())
			return false, nil
		}
		pre = append(pre, n.Name())
		// skip a's children
		return n.Name() != "a", nil
	})
	if err != nil {
		t.Fatalf("visit: %v", err)
	}
	if diff := cmp.Diff([]string{"root", "a", "b"}, pre); diff != "" {
		t.Errorf("pre-order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b", "root"}, post); diff != "" {
		t.Errorf("post-order (-want +got):\n%s", diff)
	}
}
