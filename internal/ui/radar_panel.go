package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderRadarPanel wraps radar content with a styled border.
// The radar itself is rasterised externally to avoid import cycles.
func RenderRadarPanel(width, height int, radarContent, legend string) string {
	content := radarContent + "\n" + legend
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}

// RenderLegend produces the radar legend line.
func RenderLegend(width int, interactive bool) string {
	legend := StyleBlip.Render("@ blip") + StyleLegend.Render("  / sweep")
	if interactive {
		legend += StyleHelp.Render("  click to place a target")
	}

	pad := (width - lipgloss.Width(legend)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + legend
}
