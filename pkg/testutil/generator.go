// Package testutil provides item fixtures for the pattern tests. Generated
// fixtures are deterministic for a given seed.
package testutil

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vanderheijden86/ariapatterns/pkg/model"
)

// GeneratorConfig controls fixture generation.
type GeneratorConfig struct {
	Seed             int64   // Random seed (0 = 42)
	IDPrefix         string  // Prefix for node ids (default: "item")
	DisabledRatio    float64 // Share of nodes that are disabled
	LazyRatio        float64 // Share of leaves reported as lazily expandable
	MaxChildren      int     // Upper bound on children per parent (default: 4)
	MaxDepth         int     // Depth limit for RandomTree, 1 = flat (default: 3)
	UpperCaseInitial bool    // Capitalize labels
}

// DefaultConfig returns a config suitable for most tests.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Seed:          42,
		IDPrefix:      "item",
		DisabledRatio: 0.2,
		MaxChildren:   4,
		MaxDepth:      3,
	}
}

// Generator creates random lists and trees.
type Generator struct {
	cfg  GeneratorConfig
	rng  *rand.Rand
	next int
}

// New creates a Generator with the given config.
func New(cfg GeneratorConfig) *Generator {
	if cfg.Seed == 0 {
		cfg.Seed = 42
	}
	if cfg.IDPrefix == "" {
		cfg.IDPrefix = "item"
	}
	if cfg.MaxChildren <= 0 {
		cfg.MaxChildren = 4
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = 3
	}
	return &Generator{cfg: cfg, rng: rand.New(rand.NewSource(cfg.Seed))}
}

// NewDefault creates a Generator with DefaultConfig.
func NewDefault() *Generator { return New(DefaultConfig()) }

var syllables = []string{"ap", "ba", "ce", "do", "el", "fi", "go", "ha", "ki", "lu", "ma", "no", "pe", "ra", "si", "tu"}

// RandomList returns size flat nodes with random labels.
func (g *Generator) RandomList(size int) []*model.Node {
	out := make([]*model.Node, size)
	for i := range out {
		out[i] = g.node()
	}
	return out
}

// RandomTree returns size top-level nodes, each with a random subtree.
func (g *Generator) RandomTree(size int) []*model.Node {
	out := make([]*model.Node, size)
	for i := range out {
		out[i] = g.subtree(1)
	}
	return out
}

func (g *Generator) subtree(depth int) *model.Node {
	n := g.node()
	if depth < g.cfg.MaxDepth {
		for k := g.rng.Intn(g.cfg.MaxChildren + 1); k > 0; k-- {
			n.Kids = append(n.Kids, g.subtree(depth+1))
		}
	}
	if len(n.Kids) == 0 && g.rng.Float64() < g.cfg.LazyRatio {
		n.Lazy = true
	}
	return n
}

func (g *Generator) node() *model.Node {
	g.next++
	var b strings.Builder
	for k := 1 + g.rng.Intn(3); k > 0; k-- {
		b.WriteString(syllables[g.rng.Intn(len(syllables))])
	}
	label := b.String()
	if g.cfg.UpperCaseInitial {
		label = strings.ToUpper(label[:1]) + label[1:]
	}
	return &model.Node{
		NodeID:     fmt.Sprintf("%s-%d", g.cfg.IDPrefix, g.next),
		Label:      label,
		IsDisabled: g.rng.Float64() < g.cfg.DisabledRatio,
	}
}

// Flat returns one node per label, with the lowercased label as id.
func Flat(labels ...string) []*model.Node {
	out := make([]*model.Node, len(labels))
	for i, l := range labels {
		out[i] = &model.Node{NodeID: strings.ToLower(l), Label: l}
	}
	return out
}

// Fruits returns the food tree used across the tree tests:
//
//	fruits
//	  apple
//	  banana
//	  berries
//	    strawberry
//	    blueberry
//	vegetables
//	grains
//	dairy
func Fruits() []*model.Node {
	leaf := func(id string) *model.Node {
		return &model.Node{NodeID: id, Label: strings.ToUpper(id[:1]) + id[1:]}
	}
	berries := leaf("berries")
	berries.Kids = []*model.Node{leaf("strawberry"), leaf("blueberry")}
	fruits := leaf("fruits")
	fruits.Kids = []*model.Node{leaf("apple"), leaf("banana"), berries}
	return []*model.Node{fruits, leaf("vegetables"), leaf("grains"), leaf("dairy")}
}

// Empty returns no nodes.
func Empty() []*model.Node { return nil }
