package ui

import "github.com/charmbracelet/lipgloss"

// Radar color palette
var (
	ColorPhosphor     = lipgloss.Color("#5CFF8A")
	ColorGreen        = lipgloss.Color("#3DBE8B")
	ColorMidGreen     = lipgloss.Color("#2E8C6E")
	ColorDimGreen     = lipgloss.Color("#1A4D3D")
	ColorBlip         = lipgloss.Color("#61FF7A")
	ColorBorderBright = lipgloss.Color("#5CFF8A")
	ColorBorderNorm   = lipgloss.Color("#2E8C6E")
	ColorWarning      = lipgloss.Color("#FFAA00")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#062018")).
			Foreground(ColorPhosphor).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorPhosphor).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorGreen)

	StyleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#062018")).
			Foreground(ColorGreen).
			Padding(0, 1)

	StyleStatusSweeping = lipgloss.NewStyle().
				Foreground(ColorPhosphor).
				Bold(true)

	StyleStatusPaused = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderNorm)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorPhosphor).
			Bold(true).
			Padding(0, 1)

	StyleSeparator = lipgloss.NewStyle().
			Foreground(ColorMidGreen)

	StyleTargetName = lipgloss.NewStyle().
			Foreground(ColorPhosphor).
			Bold(true)

	StyleTargetPos = lipgloss.NewStyle().
			Foreground(ColorMidGreen)

	StyleTargetInfo = lipgloss.NewStyle().
			Foreground(ColorGreen)

	StyleTargetIdle = lipgloss.NewStyle().
			Foreground(ColorDimGreen)

	StyleBlip = lipgloss.NewStyle().
			Foreground(ColorBlip).
			Bold(true)

	StyleLegend = lipgloss.NewStyle().
			Foreground(ColorMidGreen)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDimGreen)
)
