package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/vanderheijden86/ariapatterns/pkg/model"
)

// AssertValues verifies a selection value set, order included.
func AssertValues[V comparable](t *testing.T, got []V, want ...V) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("expected values %v, got %v", want, got)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected values %v, got %v", want, got)
			return
		}
	}
}

// IDer is anything with an item id.
type IDer interface{ ID() string }

// AssertActive verifies the active item id. An empty want expects no active
// item.
func AssertActive[T IDer](t *testing.T, active T, ok bool, want string) {
	t.Helper()
	switch {
	case want == "" && ok:
		t.Errorf("expected no active item, got %s", active.ID())
	case want != "" && !ok:
		t.Errorf("expected active item %s, got none", want)
	case want != "" && active.ID() != want:
		t.Errorf("expected active item %s, got %s", want, active.ID())
	}
}

// AssertNoDuplicateIDs verifies all node ids in the forest are unique.
func AssertNoDuplicateIDs(t *testing.T, roots []*model.Node) {
	t.Helper()
	seen := make(map[string]bool)
	for _, n := range model.Flatten(roots) {
		if seen[n.NodeID] {
			t.Errorf("duplicate node ID: %s", n.NodeID)
		}
		seen[n.NodeID] = true
	}
}

// IDs returns the ids of the nodes in document order.
func IDs(roots []*model.Node) []string {
	var out []string
	for _, n := range model.Flatten(roots) {
		out = append(out, n.NodeID)
	}
	return out
}

// WriteNodesFile writes roots as a JSON items file and returns its path.
func WriteNodesFile(t *testing.T, dir string, roots []*model.Node) string {
	t.Helper()
	data, err := json.Marshal(roots)
	if err != nil {
		t.Fatalf("failed to marshal nodes: %v", err)
	}
	path := filepath.Join(dir, "items.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write nodes file: %v", err)
	}
	return path
}

// GoldenFile handles golden file comparisons.
type GoldenFile struct {
	t      *testing.T
	dir    string
	name   string
	update bool
}

// NewGoldenFile creates a golden file helper.
// If GENERATE_GOLDEN env var is set, golden files will be updated.
func NewGoldenFile(t *testing.T, dir, name string) *GoldenFile {
	t.Helper()
	return &GoldenFile{
		t:      t,
		dir:    dir,
		name:   name,
		update: os.Getenv("GENERATE_GOLDEN") != "",
	}
}

// Path returns the full path to the golden file.
func (g *GoldenFile) Path() string {
	return filepath.Join(g.dir, g.name)
}

// Assert compares actual content against the golden file, or rewrites the
// file when GENERATE_GOLDEN is set.
func (g *GoldenFile) Assert(actual string) {
	g.t.Helper()
	path := g.Path()

	if g.update {
		if err := os.MkdirAll(g.dir, 0755); err != nil {
			g.t.Fatalf("failed to create golden dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(actual), 0644); err != nil {
			g.t.Fatalf("failed to write golden file: %v", err)
		}
		g.t.Logf("updated golden file: %s", path)
		return
	}

	expected, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			g.t.Fatalf("golden file does not exist: %s\nRun with GENERATE_GOLDEN=1 to create it", path)
		}
		g.t.Fatalf("failed to read golden file: %v", err)
	}

	if string(expected) == actual {
		return
	}
	expectedLines := strings.Split(string(expected), "\n")
	actualLines := strings.Split(actual, "\n")
	for i := 0; i < len(expectedLines) || i < len(actualLines); i++ {
		var expLine, actLine string
		if i < len(expectedLines) {
			expLine = expectedLines[i]
		}
		if i < len(actualLines) {
			actLine = actualLines[i]
		}
		if expLine != actLine {
			g.t.Errorf("golden file mismatch at line %d:\nexpected: %s\nactual:   %s", i+1, expLine, actLine)
			return
		}
	}
}

// AssertJSON compares actual, marshaled as indented JSON, against the golden
// file.
func (g *GoldenFile) AssertJSON(actual any) {
	g.t.Helper()
	data, err := json.MarshalIndent(actual, "", "  ")
	if err != nil {
		g.t.Fatalf("failed to marshal actual value: %v", err)
	}
	g.Assert(string(data))
}
