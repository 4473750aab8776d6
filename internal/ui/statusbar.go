package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"sweep-radar.klederson.com/internal/radar"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, paused bool, stats radar.Stats, fps float64) string {
	status := StyleStatusSweeping.Render("[SWEEPING]")
	if paused {
		status = StyleStatusPaused.Render("[PAUSED]")
	}

	info := fmt.Sprintf(" Sweep: %03ddeg  Targets: %d  Blips: %d  Pings: %d  Expired: %d  FPS: %.0f",
		int(stats.SweepDeg), stats.Targets, stats.Hits, stats.Triggers, stats.Expired, fps)

	content := status + StyleStatusBar.Foreground(ColorGreen).Render(info)

	gap := width - lipgloss.Width(content) - 2
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
