// Package loader reads item data files for the demo host. Three formats are
// accepted, chosen by extension:
//
//   - .json:  an array of nested nodes
//   - .yaml:  the same structure in YAML (also .yml)
//   - .jsonl: one flat node per line; "parent" names the parent's id
package loader

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/vanderheijden86/ariapatterns/pkg/model"
)

// DataFileEnvVar overrides the data file when no path is given.
const DataFileEnvVar = "PATTERNS_DATA"

// DefaultMaxBufferSize is the default buffer size for JSONL lines (1MB).
const DefaultMaxBufferSize = 1024 * 1024

// ParseOptions configures the JSONL parser.
type ParseOptions struct {
	// WarningHandler is called with warning messages (e.g., malformed JSON).
	// If nil, warnings are printed to os.Stderr.
	WarningHandler func(string)

	// BufferSize sets the maximum line size (in bytes) to read at once.
	// Lines longer than this are skipped with a warning.
	BufferSize int
}

// ResolvePath returns path, or the PATTERNS_DATA file when path is empty.
func ResolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	if env := os.Getenv(DataFileEnvVar); env != "" {
		return env, nil
	}
	return "", fmt.Errorf("no data file given and %s is not set", DataFileEnvVar)
}

// LoadFile reads the nodes in path.
func LoadFile(path string) ([]*model.Node, error) {
	return LoadFileWithOptions(path, ParseOptions{})
}

// LoadFileWithOptions reads the nodes in path with custom JSONL options.
func LoadFileWithOptions(path string, opts ParseOptions) ([]*model.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no data file at %s", path)
		}
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(f)
	case ".yaml", ".yml":
		return ParseYAML(f)
	case ".jsonl":
		return ParseJSONLWithOptions(f, opts)
	}
	return nil, fmt.Errorf("unsupported data file extension %q", filepath.Ext(path))
}

// ParseJSON reads a nested JSON array.
func ParseJSON(r io.Reader) ([]*model.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading data: %w", err)
	}
	var roots []*model.Node
	if err := json.Unmarshal(stripBOM(data), &roots); err != nil {
		return nil, fmt.Errorf("parsing JSON data: %w", err)
	}
	if err := model.ValidateAll(roots); err != nil {
		return nil, fmt.Errorf("invalid data: %w", err)
	}
	return roots, nil
}

// ParseYAML reads a nested YAML sequence.
func ParseYAML(r io.Reader) ([]*model.Node, error) {
	var roots []*model.Node
	if err := yaml.NewDecoder(r).Decode(&roots); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parsing YAML data: %w", err)
	}
	if err := model.ValidateAll(roots); err != nil {
		return nil, fmt.Errorf("invalid data: %w", err)
	}
	return roots, nil
}

// ParseJSONL reads flat records and links them by their parent ids.
func ParseJSONL(r io.Reader) ([]*model.Node, error) {
	return ParseJSONLWithOptions(r, ParseOptions{})
}

// ParseJSONLWithOptions is ParseJSONL with custom options. Malformed lines,
// invalid records, duplicates and records whose parent never appears are
// skipped with a warning.
func ParseJSONLWithOptions(r io.Reader, opts ParseOptions) ([]*model.Node, error) {
	maxCapacity := opts.BufferSize
	if maxCapacity <= 0 {
		maxCapacity = DefaultMaxBufferSize
	}
	warn := opts.WarningHandler
	if warn == nil {
		warn = func(msg string) { fmt.Fprintf(os.Stderr, "Warning: %s\n", msg) }
	}

	reader := bufio.NewReaderSize(r, maxCapacity)
	var records []*model.Node
	byID := make(map[string]*model.Node)

	lineNum := 0
	for {
		lineNum++
		line, isPrefix, err := reader.ReadLine()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("error reading data stream at line %d: %w", lineNum, err)
		}
		if isPrefix {
			warn(fmt.Sprintf("skipping line %d: line too long (exceeds %d bytes)", lineNum, maxCapacity))
			for isPrefix {
				_, isPrefix, err = reader.ReadLine()
				if err == io.EOF {
					break
				}
				if err != nil {
					return nil, fmt.Errorf("error skipping long line at line %d: %w", lineNum, err)
				}
			}
			continue
		}

		if lineNum == 1 {
			line = stripBOM(line)
		}
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var n model.Node
		if err := json.Unmarshal(line, &n); err != nil {
			warn(fmt.Sprintf("skipping malformed JSON on line %d: %v", lineNum, err))
			continue
		}
		if err := n.Validate(); err != nil {
			warn(fmt.Sprintf("skipping invalid node on line %d: %v", lineNum, err))
			continue
		}
		if _, dup := byID[n.NodeID]; dup {
			warn(fmt.Sprintf("skipping duplicate node %q on line %d", n.NodeID, lineNum))
			continue
		}
		n.Kids = nil
		byID[n.NodeID] = &n
		records = append(records, &n)
	}

	var roots []*model.Node
	for _, n := range records {
		if n.Parent == "" {
			roots = append(roots, n)
			continue
		}
		p, ok := byID[n.Parent]
		if !ok {
			warn(fmt.Sprintf("skipping node %q: unknown parent %q", n.NodeID, n.Parent))
			continue
		}
		p.Kids = append(p.Kids, n)
	}
	return roots, nil
}

// stripBOM removes the UTF-8 Byte Order Mark if present
func stripBOM(b []byte) []byte {
	if bytes.HasPrefix(b, []byte{0xEF, 0xBB, 0xBF}) {
		return b[3:]
	}
	return b
}
