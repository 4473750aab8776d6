package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"sweep-radar.klederson.com/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, mode config.Mode, paused, muted bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"Space", "pause"},
		{"M", "ute"},
	}
	if mode == config.ModeInteractive {
		keys = append(keys, struct{ key, label string }{"C", "lear"})
	}
	keys = append(keys, struct{ key, label string }{"Q", "uit"})

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	status := StyleStatusSweeping.Render("SWEEPING")
	if paused {
		status = StyleStatusPaused.Render("PAUSED")
	}
	if muted {
		status += StyleMenuLabel.Render("  MUTED")
	}

	modeInfo := StyleMenuLabel.Render(fmt.Sprintf("Mode: %s", mode))

	left := StyleMenuKey.Render(title) + menu
	right := status + "  " + modeInfo + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 0 {
		gap = 0
	}

	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
