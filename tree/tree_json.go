package tree

import (
	"encoding/json"
	"fmt"
)

// Doc is the JSON-shaped document form of a node: a plain recursive
// record. The top-level document of a serialized tree is its root node.
type Doc[T any] struct {
	Name     string    `json:"name" yaml:"name"`
	Data     T         `json:"data" yaml:"data"`
	Children []*Doc[T] `json:"children" yaml:"children"`
}

// Doc returns the document form of the subtree rooted at n. Children is
// always non-nil so leaves serialize with an empty array.
func (n *Node[T]) Doc() *Doc[T] {
	d := &Doc[T]{
		Name:     n.name,
		Data:     n.Data,
		Children: make([]*Doc[T], len(n.children)),
	}
	for i, c := range n.children {
		d.Children[i] = c.Doc()
	}
	return d
}

// Doc returns the document form of the whole tree.
func (t *Tree[T]) Doc() *Doc[T] {
	return t.root.Doc()
}

// FromDoc reconstructs a Tree from its document form. The tree is built
// from d.Data and children are inserted in document order, so the
// reconstructed child order matches the serialized order. The document
// root's name is ignored: the root is always named "root".
func FromDoc[T any](d *Doc[T]) (*Tree[T], error) {
	if d == nil {
		return nil, fmt.Errorf("from doc: nil document")
	}
	t := New[T](d.Data)
	if err := addDocChildren(t.root, d.Children); err != nil {
		return nil, err
	}
	return t, nil
}

func addDocChildren[T any](parent *Node[T], docs []*Doc[T]) error {
	for _, cd := range docs {
		if cd == nil {
			return fmt.Errorf("from doc: nil child document")
		}
		c, err := parent.AddChild(cd.Name, cd.Data)
		if err != nil {
			return err
		}
		if err := addDocChildren(c, cd.Children); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Doc())
}

func (t *Tree[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Doc())
}

func (t *Tree[T]) UnmarshalJSON(d []byte) error {
	doc := &Doc[T]{}
	if err := json.Unmarshal(d, doc); err != nil {
		return err
	}
	t2, err := FromDoc(doc)
	if err != nil {
		return err
	}
	t.root = t2.root
	t.root.Traverse(func(n *Node[T]) { n.tree = t })
	return nil
}
