// Package ui hosts the listbox, tree and combobox patterns in a bubbletea
// program. Each view renders the derived state of one pattern and forwards
// key and mouse events to it.
package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/ariapatterns/pkg/combobox"
	"github.com/vanderheijden86/ariapatterns/pkg/config"
	"github.com/vanderheijden86/ariapatterns/pkg/keys"
	"github.com/vanderheijden86/ariapatterns/pkg/listbox"
	"github.com/vanderheijden86/ariapatterns/pkg/loader"
	"github.com/vanderheijden86/ariapatterns/pkg/metrics"
	"github.com/vanderheijden86/ariapatterns/pkg/model"
	"github.com/vanderheijden86/ariapatterns/pkg/tree"
	"github.com/vanderheijden86/ariapatterns/pkg/watcher"
)

// View identifies which pattern is on screen.
type View int

const (
	ViewListbox View = iota
	ViewTree
	ViewCombobox
	viewCount
)

func (v View) String() string {
	switch v {
	case ViewListbox:
		return "listbox"
	case ViewTree:
		return "tree"
	case ViewCombobox:
		return "combobox"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// ParseView parses a view name. The empty string selects the tree.
func ParseView(s string) (View, error) {
	switch s {
	case "listbox":
		return ViewListbox, nil
	case "", "tree":
		return ViewTree, nil
	case "combobox":
		return ViewCombobox, nil
	}
	return ViewTree, fmt.Errorf("unknown view %q", s)
}

// inputElement is the element handle of the combobox text field.
const inputElement = "combobox-input"

// Layout: tabs and divider above the body, status and help below.
const (
	headerLines = 2
	footerLines = 2
)

// FileChangedMsg is sent when the data file changes on disk.
type FileChangedMsg struct{}

// ConfigChangedMsg carries a reloaded configuration.
type ConfigChangedMsg struct {
	Config config.Config
	Err    error
}

// WatchFileCmd returns a command that waits for the watcher to report a
// change. Re-issue it after every FileChangedMsg.
func WatchFileCmd(w *watcher.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		<-w.Changed()
		return FileChangedMsg{}
	}
}

// itemStore holds the loaded nodes. Pattern item closures read through it,
// so reloading swaps the data under every copy of the Model.
type itemStore struct {
	roots []*model.Node
	flat  []*model.Node
}

func (s *itemStore) set(roots []*model.Node) {
	s.roots = roots
	s.flat = model.Flatten(roots)
}

// globalKeys are handled by the host before any pattern sees the event.
type globalKeys struct {
	Quit      key.Binding
	NextView  key.Binding
	PrevView  key.Binding
	Help      key.Binding
	Copy      key.Binding
	ExpandAll key.Binding
	Collapse  key.Binding
}

func defaultGlobalKeys() globalKeys {
	return globalKeys{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		NextView:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		PrevView:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous view")),
		Help:      key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "toggle help")),
		Copy:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy active id")),
		ExpandAll: key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "expand all")),
		Collapse:  key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "collapse all")),
	}
}

// Model is the bubbletea model of the demo host.
type Model struct {
	cfg  config.Config
	data *itemStore

	listbox *listbox.Listbox[*model.Node, string]
	tree    *tree.Tree[string]
	combo   *combobox.Combobox[string]
	popup   *combobox.ListboxPopup[*model.Node, string]

	input    textinput.Model
	help     help.Model
	keys     globalKeys
	showHelp bool
	theme    Theme

	view          View
	width, height int
	status        string
	statusIsError bool

	dataPath string
	watcher  *watcher.Watcher
	copyText func(string) error
}

// NewModel builds the three patterns over roots.
func NewModel(roots []*model.Node, cfg config.Config) (Model, error) {
	data := &itemStore{}
	data.set(roots)
	flat := func() []*model.Node { return data.flat }

	tr, err := tree.New(model.Sources(roots), cfg.TreeOptions())
	if err != nil {
		return Model{}, fmt.Errorf("building tree: %w", err)
	}
	lb := listbox.New[*model.Node, string](flat, cfg.ListboxOptions())
	popup := combobox.NewListboxPopup[*model.Node, string](flat, combobox.PopupOptions(), cfg.ComboboxFilter())
	cb := combobox.New[string](cfg.ComboboxOptions(), inputElement)
	cb.AttachListbox(popup)

	theme := DefaultTheme(lipgloss.DefaultRenderer())
	ti := textinput.New()
	ti.Prompt = markerActive + " "
	ti.CompletionStyle = theme.Ghost
	ti.Placeholder = "Type to filter"
	ti.ShowSuggestions = true

	view, err := ParseView(cfg.UI.DefaultView)
	if err != nil {
		return Model{}, err
	}
	if view == ViewCombobox {
		cb.OnFocusIn()
		ti.Focus()
	}

	lb.SetDefaultState()
	tr.SetDefaultState()

	return Model{
		cfg:      cfg,
		data:     data,
		listbox:  lb,
		tree:     tr,
		combo:    cb,
		popup:    popup,
		input:    ti,
		help:     help.New(),
		keys:     defaultGlobalKeys(),
		theme:    theme,
		view:     view,
		copyText: clipboard.WriteAll,
	}, nil
}

// WithTheme sets the theme used for rendering.
func (m Model) WithTheme(t Theme) Model {
	m.theme = t
	m.input.CompletionStyle = t.Ghost
	return m
}

// WithDataFile makes the model reload path whenever w reports a change.
func (m Model) WithDataFile(path string, w *watcher.Watcher) Model {
	m.dataPath = path
	m.watcher = w
	return m
}

// CurrentView reports the view on screen.
func (m Model) CurrentView() View { return m.view }

// Listbox returns the listbox pattern.
func (m Model) Listbox() *listbox.Listbox[*model.Node, string] { return m.listbox }

// Tree returns the tree pattern.
func (m Model) Tree() *tree.Tree[string] { return m.tree }

// Combobox returns the combobox pattern.
func (m Model) Combobox() *combobox.Combobox[string] { return m.combo }

// Status returns the status line text.
func (m Model) Status() string { return m.status }

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, WatchFileCmd(m.watcher))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.input.Width = msg.Width - 4
		return m, nil

	case FileChangedMsg:
		m = m.reload()
		return m, WatchFileCmd(m.watcher)

	case ConfigChangedMsg:
		if msg.Err != nil {
			m = m.setError(fmt.Sprintf("config: %v", msg.Err))
			return m, nil
		}
		m = m.applyConfig(msg.Config)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.view == ViewCombobox {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	defer metrics.Timer(metrics.KeyDispatch)()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextView):
		m = m.switchView((m.view + 1) % viewCount)
		return m, nil
	case key.Matches(msg, m.keys.PrevView):
		m = m.switchView((m.view + viewCount - 1) % viewCount)
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		return m.copyActive(), nil
	}

	ev := keys.FromTeaKey(msg)
	switch m.view {
	case ViewListbox:
		m.listbox.OnKeydown(ev)
	case ViewTree:
		switch {
		case key.Matches(msg, m.keys.ExpandAll):
			m.tree.ExpandAll()
		case key.Matches(msg, m.keys.Collapse):
			m.tree.CollapseAll()
		default:
			m.tree.OnKeydown(ev)
		}
	case ViewCombobox:
		return m.updateCombobox(msg, ev)
	}
	return m, nil
}

// updateCombobox offers the key to the combobox keymap first and lets the
// text field edit the input otherwise.
func (m Model) updateCombobox(msg tea.KeyMsg, ev keys.KeyEvent) (tea.Model, tea.Cmd) {
	if m.combo.OnKeydown(ev) {
		m.syncInput()
		return m, nil
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		defer metrics.Timer(metrics.ComboboxInput)()
		m.combo.OnInput(after, ev.Key == keys.Backspace || ev.Key == keys.Delete)
		m.syncInput()
	}
	return m, cmd
}

// syncInput copies the combobox input into the text field. A pending inline
// completion is shown as the field's suggestion.
func (m *Model) syncInput() {
	in := m.combo.Input()
	typed := in.Text
	var suggestions []string
	if in.SelectionStart < in.SelectionEnd {
		typed = string([]rune(in.Text)[:in.SelectionStart])
		suggestions = []string{in.Text}
	}
	m.input.SetValue(typed)
	m.input.SetSuggestions(suggestions)
	m.input.CursorEnd()
}

func (m Model) switchView(v View) Model {
	if m.view == ViewCombobox && v != ViewCombobox {
		m.combo.OnFocusOut(false)
		m.syncInput()
		m.input.Blur()
	}
	if v == ViewCombobox && m.view != ViewCombobox {
		m.combo.OnFocusIn()
		m.input.Focus()
	}
	m.view = v
	m.status = ""
	return m
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if !keys.IsPrimaryPress(msg) {
		return m
	}
	defer metrics.Timer(metrics.PointerDispatch)()
	row := msg.Y - headerLines
	if row < 0 {
		return m
	}
	switch m.view {
	case ViewListbox:
		if el, ok := m.elementAt(m.listRows(), row); ok {
			m.listbox.OnPointerdown(keys.FromTeaMouse(msg, el))
		}
	case ViewTree:
		if el, ok := m.elementAt(m.treeRows(), row); ok {
			m.tree.OnPointerdown(keys.FromTeaMouse(msg, el))
		}
	case ViewCombobox:
		var target any = inputElement
		if row > 0 {
			el, ok := m.elementAt(m.popupRows(), row-1)
			if !ok {
				return m
			}
			target = el
		}
		m.combo.OnPointerup(keys.FromTeaMouse(msg, target))
		m.syncInput()
	}
	return m
}

// elementAt maps a body line to the element of the row drawn there.
func (m Model) elementAt(rows []row, line int) (any, bool) {
	start, end := window(len(rows), activeRow(rows), m.bodyHeight())
	i := start + line
	if i < start || i >= end {
		return nil, false
	}
	return rows[i].element, true
}

func (m Model) bodyHeight() int {
	if m.height == 0 {
		return 0
	}
	h := m.height - headerLines - footerLines
	if m.view == ViewCombobox {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) activeID() (string, bool) {
	switch m.view {
	case ViewListbox:
		if a := m.listbox.ActiveItem(); a != nil {
			return a.ID(), true
		}
	case ViewTree:
		if a := m.tree.ActiveItem(); a != nil {
			return a.ID(), true
		}
	case ViewCombobox:
		if v, ok := m.combo.Value(); ok {
			return v, true
		}
		return m.combo.ActiveDescendant()
	}
	return "", false
}

func (m Model) copyActive() Model {
	id, ok := m.activeID()
	if !ok {
		return m.setError("nothing to copy")
	}
	if err := m.copyText(id); err != nil {
		return m.setError(fmt.Sprintf("clipboard: %v", err))
	}
	m.status, m.statusIsError = fmt.Sprintf("Copied %s to clipboard", id), false
	return m
}

func (m Model) setError(s string) Model {
	m.status, m.statusIsError = s, true
	return m
}

// reload reads the data file again and hands the new nodes to the patterns.
// Selections are kept by value and focus by id.
func (m Model) reload() Model {
	if m.dataPath == "" {
		return m
	}
	stop := metrics.Timer(metrics.DataLoad)
	roots, err := loader.LoadFile(m.dataPath)
	stop()
	if err != nil {
		return m.setError(fmt.Sprintf("reload: %v", err))
	}
	if err := m.tree.SetSources(model.Sources(roots)); err != nil {
		return m.setError(fmt.Sprintf("reload: %v", err))
	}
	var activeID string
	if a := m.listbox.ActiveItem(); a != nil {
		activeID = a.ID()
	}
	m.data.set(roots)
	// Drop values whose item went away.
	m.listbox.SetValue(m.listbox.Value())
	m.popup.Listbox().SetValue(m.popup.Listbox().Value())
	focus := m.listbox.List().Focus
	if n := model.Find(roots, activeID); n != nil {
		focus.Focus(n)
	} else {
		focus.Unfocus()
		m.listbox.SetDefaultState()
	}
	m.popup.Filter(m.combo.Input().Text)
	m.status, m.statusIsError = fmt.Sprintf("Reloaded %d items", len(m.data.flat)), false
	return m
}

func (m Model) applyConfig(cfg config.Config) Model {
	m.cfg = cfg
	m.listbox.SetOptions(cfg.ListboxOptions())
	m.tree.SetOptions(cfg.TreeOptions())
	m.combo.SetOptions(cfg.ComboboxOptions())
	m.status, m.statusIsError = "Configuration reloaded", false
	return m
}

func (m Model) View() string {
	defer metrics.Timer(metrics.UIRender)()
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteByte('\n')
	b.WriteString(RenderDivider(m.width))
	b.WriteByte('\n')

	switch m.view {
	case ViewListbox:
		b.WriteString(m.renderRows(m.listRows(), m.listbox.Options().Multi))
	case ViewTree:
		b.WriteString(m.renderRows(m.treeRows(), m.tree.Options().Multi))
	case ViewCombobox:
		b.WriteString(m.renderCombobox())
	}

	b.WriteByte('\n')
	b.WriteString(m.renderStatus())
	b.WriteByte('\n')
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, viewCount)
	for v := View(0); v < viewCount; v++ {
		style := m.theme.Tab
		if v == m.view {
			style = m.theme.Header
		}
		tabs = append(tabs, style.Render(v.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderCombobox() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	if !m.combo.Expanded() {
		if text := m.combo.CommittedText(); text != "" {
			b.WriteByte('\n')
			b.WriteString(m.theme.MutedText.Render("value: " + text))
		}
		return b.String()
	}
	b.WriteByte('\n')
	b.WriteString(m.renderRows(m.popupRows(), false))
	return b.String()
}

func (m Model) renderStatus() string {
	if m.status != "" {
		if m.statusIsError {
			return m.theme.Error.Render(m.status)
		}
		return m.theme.Status.Render(m.status)
	}
	var value []string
	switch m.view {
	case ViewListbox:
		value = m.listbox.Value()
	case ViewTree:
		value = m.tree.Value()
	case ViewCombobox:
		if v, ok := m.combo.Value(); ok {
			value = []string{v}
		}
	}
	s := fmt.Sprintf("%d selected", len(value))
	if id, ok := m.activeID(); ok {
		s += " · active " + id
	}
	return m.theme.MutedText.Render(s)
}

func (m Model) renderHelp() string {
	var km *keys.Keymap
	switch m.view {
	case ViewListbox:
		km = m.listbox.Keymap()
	case ViewTree:
		km = m.tree.Keymap()
	case ViewCombobox:
		km = m.combo.Keymap()
	}
	global := []key.Binding{m.keys.NextView, m.keys.Help, m.keys.Copy, m.keys.Quit}
	if m.view == ViewTree {
		global = append(global, m.keys.ExpandAll, m.keys.Collapse)
	}
	if m.showHelp {
		return m.help.FullHelpView([][]key.Binding{km.Help(), global})
	}
	return m.help.ShortHelpView(global)
}
