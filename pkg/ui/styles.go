package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Adaptive palette; light values meet WCAG AA contrast on white.
var (
	ColorBgHighlight = lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#44475A"}
	ColorMuted       = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#6272A4"}
	ColorInfo        = lipgloss.AdaptiveColor{Light: "#006080", Dark: "#8BE9FD"}
	ColorDanger      = lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"}
)

// Row markers.
const (
	markerActive    = "›"
	markerChecked   = "●"
	markerUnchecked = "○"
	markerTick      = "✓"
	markerExpanded  = "▾"
	markerCollapsed = "▸"
)

// RenderDivider renders a horizontal divider line
func RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(ColorBgHighlight).
		Render(strings.Repeat("─", width))
}
