// Package theme provides the Lip Gloss color palette and reusable styles for
// the TradeSage TUI. It is a leaf package with no internal imports to avoid
// import cycles.
package theme

import "github.com/charmbracelet/lipgloss"

// Brand colors.
var (
	ColorBrand   = lipgloss.Color("#a855f7")
	ColorAccent  = lipgloss.Color("#3b82f6")
	ColorBright  = lipgloss.Color("#f9fafb")
	ColorDimmed  = lipgloss.Color("#6b7280")
	ColorBorder  = lipgloss.Color("#4b5563")
	ColorHealthy = lipgloss.Color("#22c55e")
	ColorWarning = lipgloss.Color("#d97706")
	ColorError   = lipgloss.Color("#dc2626")
)

// Market colors.
var (
	ColorUp   = lipgloss.Color("#16a34a")
	ColorDown = lipgloss.Color("#dc2626")
)

// Asset class colors.
var (
	ColorStock  = lipgloss.Color("#3b82f6")
	ColorCrypto = lipgloss.Color("#f59e0b")
	ColorFuture = lipgloss.Color("#06b6d4")
	ColorOption = lipgloss.Color("#a855f7")
)

// Reusable styles.
var (
	StyleHeader   = lipgloss.NewStyle().Bold(true).Foreground(ColorBright)
	StyleTitle    = lipgloss.NewStyle().Bold(true).Foreground(ColorBrand)
	StyleDimmed   = lipgloss.NewStyle().Foreground(ColorDimmed)
	StyleError    = lipgloss.NewStyle().Foreground(ColorError)
	StyleSuccess  = lipgloss.NewStyle().Foreground(ColorHealthy)
	StyleSelected = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	StyleBox      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorBorder).Padding(0, 1)
)

// ClassColor maps an asset class name to its color.
func ClassColor(class string) lipgloss.Color {
	switch class {
	case "stock":
		return ColorStock
	case "crypto":
		return ColorCrypto
	case "future":
		return ColorFuture
	case "option":
		return ColorOption
	default:
		return ColorDimmed
	}
}
