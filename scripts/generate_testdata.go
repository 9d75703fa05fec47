//go:build ignore

// generate_testdata.go writes item files for trying the patterns at scale.
// Usage: go run scripts/generate_testdata.go
//
// Creates:
//
//	testdata/items/list.json    (200 flat options)
//	testdata/items/small.json   (100 top-level items with random subtrees)
//	testdata/items/large.json   (5000 top-level items)
//	testdata/items/huge.jsonl   (20000 top-level items, parent-linked records)
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"github.com/vanderheijden86/ariapatterns/pkg/model"
	"github.com/vanderheijden86/ariapatterns/pkg/testutil"
)

type datasetSpec struct {
	file string
	size int
	flat bool
}

var datasets = []datasetSpec{
	{"list.json", 200, true},
	{"small.json", 100, false},
	{"large.json", 5000, false},
	{"huge.jsonl", 20000, false},
}

func main() {
	outputDir := filepath.Join("testdata", "items")
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	for _, ds := range datasets {
		cfg := testutil.DefaultConfig()
		cfg.Seed = int64(ds.size) // Reproducible per-size
		gen := testutil.New(cfg)

		var roots []*model.Node
		if ds.flat {
			roots = gen.RandomList(ds.size)
		} else {
			roots = gen.RandomTree(ds.size)
		}

		path := filepath.Join(outputDir, ds.file)
		var err error
		if filepath.Ext(path) == ".jsonl" {
			err = writeJSONL(path, roots)
		} else {
			err = writeJSON(path, roots)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("  Wrote %s (%d items)\n", path, len(model.Flatten(roots)))
	}
}

func writeJSON(path string, roots []*model.Node) error {
	data, err := json.MarshalIndent(roots, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// writeJSONL writes one record per item, linked by the parent field.
func writeJSONL(path string, roots []*model.Node) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	var walk func(parent string, nodes []*model.Node) error
	walk = func(parent string, nodes []*model.Node) error {
		for _, n := range nodes {
			rec := *n
			rec.Parent = parent
			rec.Kids = nil
			if err := enc.Encode(&rec); err != nil {
				return err
			}
			if err := walk(n.NodeID, n.Kids); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk("", roots); err != nil {
		return err
	}
	return w.Flush()
}
