package render

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorGreen     = lipgloss.Color("78")
	ColorYellow    = lipgloss.Color("221")
	ColorRed       = lipgloss.Color("196")
	ColorBrightRed = lipgloss.Color("203")
	ColorGray      = lipgloss.Color("245")
	ColorCyan      = lipgloss.Color("86")
)

// Status indicator styles
var (
	StatusDone    = lipgloss.NewStyle().Foreground(ColorGreen)
	StatusPending = lipgloss.NewStyle().Foreground(ColorRed)
)

// Priority styles, from the original color scheme: low unstyled,
// medium yellow, high bright red, critical red bold.
var (
	PriorityMediumStyle   = lipgloss.NewStyle().Foreground(ColorYellow)
	PriorityHighStyle     = lipgloss.NewStyle().Foreground(ColorBrightRed)
	PriorityCriticalStyle = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
)

// Common styles
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorGray)
	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorCyan)
	DimStyle    = lipgloss.NewStyle().Foreground(ColorGray)
)

// Status indicators
const (
	IndicatorDone    = "✓"
	IndicatorPending = "✗"
)
