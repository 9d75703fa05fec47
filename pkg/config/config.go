// Package config handles loading and saving pattern configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config:  ~/.config/ariapatterns/config.yaml
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vanderheijden86/ariapatterns/pkg/behavior"
	"github.com/vanderheijden86/ariapatterns/pkg/combobox"
	"github.com/vanderheijden86/ariapatterns/pkg/listbox"
	"github.com/vanderheijden86/ariapatterns/pkg/tree"
)

const appName = "ariapatterns"

// ListConfig holds the settings shared by listboxes and trees.
type ListConfig struct {
	Orientation    string        `yaml:"orientation,omitempty"`    // vertical, horizontal
	Direction      string        `yaml:"direction,omitempty"`      // ltr, rtl
	Multi          bool          `yaml:"multi,omitempty"`          // Multiple selection
	Wrap           *bool         `yaml:"wrap,omitempty"`           // Wrap at the ends (default true)
	SkipDisabled   *bool         `yaml:"skip_disabled,omitempty"`  // Disabled items are not focusable (default true)
	FocusMode      string        `yaml:"focus_mode,omitempty"`     // roving, activedescendant
	SelectionMode  string        `yaml:"selection_mode,omitempty"` // follow, explicit
	TypeaheadDelay time.Duration `yaml:"typeahead_delay,omitempty"`
	Disabled       bool          `yaml:"disabled,omitempty"`
	Readonly       bool          `yaml:"readonly,omitempty"`
}

// TreeConfig adds the tree-only settings.
type TreeConfig struct {
	ListConfig      `yaml:",inline"`
	Nav             bool   `yaml:"nav,omitempty"`          // Report selection via aria-current
	CurrentType     string `yaml:"current_type,omitempty"` // aria-current token in nav mode
	MultiExpandable *bool  `yaml:"multi_expandable,omitempty"`
}

// ComboboxConfig holds combobox settings.
type ComboboxConfig struct {
	FilterMode string `yaml:"filter_mode,omitempty"` // manual, auto-select, highlight
	Fuzzy      bool   `yaml:"fuzzy,omitempty"`       // Rank matches fuzzily instead of by prefix
	Direction  string `yaml:"direction,omitempty"`
	Disabled   bool   `yaml:"disabled,omitempty"`
	Readonly   bool   `yaml:"readonly,omitempty"`
}

// UIConfig holds settings of the demo host.
type UIConfig struct {
	DefaultView string `yaml:"default_view,omitempty"` // listbox, tree, combobox
	DataFile    string `yaml:"data_file,omitempty"`    // Items to show; ~ is expanded
}

// Config is the top-level configuration.
type Config struct {
	Listbox  ListConfig     `yaml:"listbox,omitempty"`
	Tree     TreeConfig     `yaml:"tree,omitempty"`
	Combobox ComboboxConfig `yaml:"combobox,omitempty"`
	UI       UIConfig       `yaml:"ui,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Listbox: ListConfig{
			Orientation:    "vertical",
			Direction:      "ltr",
			FocusMode:      "roving",
			SelectionMode:  "follow",
			TypeaheadDelay: behavior.DefaultTypeaheadDelay,
		},
		Tree: TreeConfig{
			ListConfig: ListConfig{
				Orientation:    "vertical",
				Direction:      "ltr",
				FocusMode:      "roving",
				SelectionMode:  "follow",
				TypeaheadDelay: behavior.DefaultTypeaheadDelay,
			},
			CurrentType: "page",
		},
		Combobox: ComboboxConfig{
			FilterMode: "manual",
			Direction:  "ltr",
		},
		UI: UIConfig{
			DefaultView: "tree",
		},
	}
}

// ConfigDir returns the XDG config directory.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	cfg.UI.DataFile = expandHome(cfg.UI.DataFile)
	return cfg, nil
}

// Save writes the config to the XDG config directory.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate reports every setting that does not name a known value.
func (c Config) Validate() error {
	var errs []error
	check := func(section string, l ListConfig) {
		if _, err := parseOrientation(l.Orientation); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", section, err))
		}
		if _, err := parseDirection(l.Direction); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", section, err))
		}
		if _, err := parseFocusMode(l.FocusMode); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", section, err))
		}
		if _, err := parseSelectionMode(l.SelectionMode); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", section, err))
		}
		if l.TypeaheadDelay < 0 {
			errs = append(errs, fmt.Errorf("%s: negative typeahead_delay %s", section, l.TypeaheadDelay))
		}
	}
	check("listbox", c.Listbox)
	check("tree", c.Tree.ListConfig)
	if _, err := parseFilterMode(c.Combobox.FilterMode); err != nil {
		errs = append(errs, fmt.Errorf("combobox: %w", err))
	}
	if _, err := parseDirection(c.Combobox.Direction); err != nil {
		errs = append(errs, fmt.Errorf("combobox: %w", err))
	}
	switch c.UI.DefaultView {
	case "", "listbox", "tree", "combobox":
	default:
		errs = append(errs, fmt.Errorf("ui: unknown default_view %q", c.UI.DefaultView))
	}
	return errors.Join(errs...)
}

// ListboxOptions converts the listbox section. Unknown values fall back to
// the defaults; LoadFrom rejects them before this is reached.
func (c Config) ListboxOptions() listbox.Options {
	return c.Listbox.options()
}

// TreeOptions converts the tree section.
func (c Config) TreeOptions() tree.Options {
	o := tree.DefaultOptions()
	o.Options = c.Tree.ListConfig.options()
	o.Nav = c.Tree.Nav
	if c.Tree.CurrentType != "" {
		o.CurrentType = c.Tree.CurrentType
	}
	if c.Tree.MultiExpandable != nil {
		o.MultiExpandable = *c.Tree.MultiExpandable
	}
	return o
}

// ComboboxOptions converts the combobox section.
func (c Config) ComboboxOptions() combobox.Options {
	mode, _ := parseFilterMode(c.Combobox.FilterMode)
	dir, _ := parseDirection(c.Combobox.Direction)
	return combobox.Options{
		FilterMode: mode,
		Direction:  dir,
		Disabled:   c.Combobox.Disabled,
		Readonly:   c.Combobox.Readonly,
	}
}

// ComboboxFilter returns the filter selected by the combobox section.
func (c Config) ComboboxFilter() combobox.Filter {
	if c.Combobox.Fuzzy {
		return combobox.FuzzyFilter
	}
	return combobox.PrefixFilter
}

func (l ListConfig) options() listbox.Options {
	o := listbox.DefaultOptions()
	o.Orientation, _ = parseOrientation(l.Orientation)
	o.Direction, _ = parseDirection(l.Direction)
	o.FocusMode, _ = parseFocusMode(l.FocusMode)
	o.SelectionMode, _ = parseSelectionMode(l.SelectionMode)
	o.Multi = l.Multi
	o.Disabled = l.Disabled
	o.Readonly = l.Readonly
	if l.Wrap != nil {
		o.Wrap = *l.Wrap
	}
	if l.SkipDisabled != nil {
		o.SkipDisabled = *l.SkipDisabled
	}
	if l.TypeaheadDelay > 0 {
		o.TypeaheadDelay = l.TypeaheadDelay
	}
	return o
}

func parseOrientation(s string) (behavior.Orientation, error) {
	switch strings.ToLower(s) {
	case "", "vertical":
		return behavior.Vertical, nil
	case "horizontal":
		return behavior.Horizontal, nil
	}
	return behavior.Vertical, fmt.Errorf("unknown orientation %q", s)
}

func parseDirection(s string) (behavior.Direction, error) {
	switch strings.ToLower(s) {
	case "", "ltr":
		return behavior.LTR, nil
	case "rtl":
		return behavior.RTL, nil
	}
	return behavior.LTR, fmt.Errorf("unknown direction %q", s)
}

func parseFocusMode(s string) (behavior.FocusMode, error) {
	switch strings.ToLower(s) {
	case "", "roving":
		return behavior.Roving, nil
	case "activedescendant":
		return behavior.ActiveDescendant, nil
	}
	return behavior.Roving, fmt.Errorf("unknown focus_mode %q", s)
}

func parseSelectionMode(s string) (behavior.SelectionMode, error) {
	switch strings.ToLower(s) {
	case "", "follow":
		return behavior.Follow, nil
	case "explicit":
		return behavior.Explicit, nil
	}
	return behavior.Follow, fmt.Errorf("unknown selection_mode %q", s)
}

func parseFilterMode(s string) (combobox.FilterMode, error) {
	switch strings.ToLower(s) {
	case "", "manual":
		return combobox.Manual, nil
	case "auto-select":
		return combobox.AutoSelect, nil
	case "highlight":
		return combobox.Highlight, nil
	}
	return combobox.Manual, fmt.Errorf("unknown filter_mode %q", s)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
