// Package model defines the item records that the demo host and the tests
// feed into the patterns.
package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vanderheijden86/ariapatterns/pkg/tree"
)

// Node is one item of a list or tree. A *Node is its own element handle, so
// hosts can use it directly as a pointer target.
type Node struct {
	NodeID     string  `json:"id" yaml:"id"`
	Label      string  `json:"label,omitempty" yaml:"label,omitempty"`
	IsDisabled bool    `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Lazy       bool    `json:"lazy,omitempty" yaml:"lazy,omitempty"` // Expandable before children are loaded
	Kids       []*Node `json:"children,omitempty" yaml:"children,omitempty"`
	// Parent is only read from flat JSONL records.
	Parent string `json:"parent,omitempty" yaml:"-"`
}

func (n *Node) ID() string { return n.NodeID }

// Value is the node id.
func (n *Node) Value() string { return n.NodeID }

func (n *Node) Disabled() bool { return n.IsDisabled }

// SearchTerm is the label, or the id when there is none.
func (n *Node) SearchTerm() string {
	if n.Label != "" {
		return n.Label
	}
	return n.NodeID
}

func (n *Node) Element() any { return n }

// Children lists the child nodes as tree sources.
func (n *Node) Children() []tree.Source[string] {
	out := make([]tree.Source[string], len(n.Kids))
	for i, k := range n.Kids {
		out[i] = k
	}
	return out
}

// Expandable reports whether the node has or will have children.
func (n *Node) Expandable() bool { return n.Lazy || len(n.Kids) > 0 }

// Validate checks a single node.
func (n *Node) Validate() error {
	if strings.TrimSpace(n.NodeID) == "" {
		return errors.New("node id cannot be empty")
	}
	return nil
}

// ValidateAll checks every node and that ids are unique across the forest.
func ValidateAll(roots []*Node) error {
	seen := make(map[string]bool)
	var walk func([]*Node) error
	walk = func(nodes []*Node) error {
		for _, n := range nodes {
			if err := n.Validate(); err != nil {
				return err
			}
			if seen[n.NodeID] {
				return fmt.Errorf("duplicate node id %q", n.NodeID)
			}
			seen[n.NodeID] = true
			if err := walk(n.Kids); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(roots)
}

// Sources converts roots for tree.New.
func Sources(roots []*Node) []tree.Source[string] {
	out := make([]tree.Source[string], len(roots))
	for i, n := range roots {
		out[i] = n
	}
	return out
}

// Flatten returns the nodes in document order.
func Flatten(roots []*Node) []*Node {
	var out []*Node
	var walk func([]*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			out = append(out, n)
			walk(n.Kids)
		}
	}
	walk(roots)
	return out
}

// Find returns the node with the given id.
func Find(roots []*Node, id string) *Node {
	for _, n := range Flatten(roots) {
		if n.NodeID == id {
			return n
		}
	}
	return nil
}
