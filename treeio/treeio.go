// Package treeio loads the JSON tree-spec format the treediff CLI and
// differtest fixtures use to describe labeled, ordered trees. It stands in
// for the language-specific parser the core RWS pipeline assumes as an
// external collaborator (spec.md §1): a real integration would produce a
// tree.Node[string] from a source file's AST, while treeio produces one
// directly from a small JSON description, the way the teacher's
// spec/grammar.Description is a JSON stand-in for a compiled grammar.
package treeio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	derr "github.com/nihei9/rwsdiff/error"
	"github.com/nihei9/rwsdiff/tree"
)

// Node is the on-disk shape of a tree: a label and an ordered list of
// children. It round-trips through tree.Node[string] losslessly.
type Node struct {
	Label    string `json:"label"`
	Children []Node `json:"children,omitempty"`
}

// ToTree converts a decoded Node into the generic tree the rest of the
// pipeline consumes.
func (n Node) ToTree() *tree.Node[string] {
	children := make([]*tree.Node[string], len(n.Children))
	for i, c := range n.Children {
		children[i] = c.ToTree()
	}
	return &tree.Node[string]{Ann: n.Label, Children: children}
}

// FromTree converts a tree.Node[string] back into the on-disk shape; Write
// uses it to encode a tree.
func FromTree(n *tree.Node[string]) Node {
	children := make([]Node, len(n.Children))
	for i, c := range n.Children {
		children[i] = FromTree(c)
	}
	return Node{Label: n.Ann, Children: children}
}

// Read decodes a tree-spec JSON document from r.
func Read(r io.Reader) (*tree.Node[string], error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var n Node
	if err := json.Unmarshal(d, &n); err != nil {
		return nil, &derr.TreeError{Cause: err}
	}
	if n.Label == "" {
		return nil, &derr.TreeError{Cause: fmt.Errorf("root node must have a non-empty label")}
	}
	return n.ToTree(), nil
}

// ReadFile opens path and decodes it as a tree-spec document.
func ReadFile(path string) (*tree.Node[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open tree-spec file %s: %w", path, err)
	}
	defer f.Close()

	n, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// Write encodes n as indented JSON to w.
func Write(w io.Writer, n *tree.Node[string]) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(FromTree(n))
}

// WriteFile writes n as a tree-spec document to path.
func WriteFile(path string, n *tree.Node[string]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create tree-spec file %s: %w", path, err)
	}
	defer f.Close()

	return Write(f, n)
}
