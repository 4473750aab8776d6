package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"sweep-radar.klederson.com/internal/radar"
)

// Cursor row style: dark text on bright phosphor
var cursorRowSty = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#000000")).
	Background(ColorPhosphor).
	Bold(true)

const linesPerTarget = 4 // 3 content + 1 blank

// TargetListView carries what the list needs from the frame loop.
type TargetListView struct {
	Targets     []radar.Target
	Sweep       radar.Sweep
	Now         time.Duration
	FadeOut     time.Duration
	MaxBlips    int
	Interactive bool
}

// RenderTargetList renders the scrollable target panel with a cursor.
// The title stays fixed at the top; only the entries scroll.
func RenderTargetList(v TargetListView, width, height, cursorIndex int) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}

	title := StylePanelTitle.Render(fmt.Sprintf("TARGETS [%d]", len(v.Targets)))
	separator := StyleSeparator.Render(strings.Repeat("-", innerW))
	headerLines := []string{title, separator}
	headerCount := len(headerLines)

	innerH := height - 2
	if innerH < headerCount+1 {
		innerH = headerCount + 1
	}

	space := innerH - headerCount
	if space < 1 {
		space = 1
	}

	var lines []string
	if len(v.Targets) == 0 {
		lines = append(lines, "")
		if v.Interactive {
			lines = append(lines, StyleHelp.Render(" No targets..."))
			lines = append(lines, StyleHelp.Render(" Click the radar"))
		} else {
			lines = append(lines, StyleHelp.Render(" No targets"))
		}
	} else {
		maxVisible := space / linesPerTarget
		if maxVisible < 1 {
			maxVisible = 1
		}

		// Keep the cursor in view
		viewStart := 0
		if cursorIndex >= maxVisible {
			viewStart = cursorIndex - maxVisible + 1
		}

		count := 0
		for i := viewStart; i < len(v.Targets); i++ {
			entry := renderTargetEntry(v, v.Targets[i], innerW, i == cursorIndex)
			for _, l := range entry {
				if count >= space {
					break
				}
				lines = append(lines, l)
				count++
			}
			if count >= space {
				break
			}
		}
	}

	if len(lines) > space {
		lines = lines[:space]
	}
	for len(lines) < space {
		lines = append(lines, "")
	}

	all := make([]string, 0, innerH)
	all = append(all, headerLines...)
	all = append(all, lines...)

	content := strings.Join(all, "\n")
	rendered := StylePanelBorder.Width(width - 2).Height(innerH).Render(content)

	// lipgloss Height() only sets a minimum; clamp to exactly `height` lines.
	outLines := strings.Split(rendered, "\n")
	if len(outLines) > height {
		outLines = outLines[:height]
	}
	for len(outLines) < height {
		outLines = append(outLines, "")
	}
	return strings.Join(outLines, "\n")
}

func renderTargetEntry(v TargetListView, t radar.Target, maxW int, isCursor bool) []string {
	cursor := "  "
	if isCursor {
		cursor = ">>"
	}

	fade := t.Fade(v.Now, v.FadeOut)
	symbol := "o"
	if fade > 0 {
		symbol = "@"
	}

	tag := "[IDLE]"
	if t.Hit() {
		tag = "[HIT]"
	}

	bearing := radar.NormalizeDeg(t.Bearing())
	blips := fmt.Sprintf("blips %d", t.Blips)
	if v.Interactive {
		blips = fmt.Sprintf("blips %d/%d", t.Blips, v.MaxBlips+1)
	}

	raw1 := truncRaw(fmt.Sprintf("%s %s %s %s", cursor, symbol, t.Callsign(), tag), maxW)
	raw2 := truncRaw(fmt.Sprintf("     x=%+.0f y=%+.0f", t.X, t.Y), maxW)
	raw3 := truncRaw(fmt.Sprintf("     brg %05.1f  %s  %3d%%", bearing, blips, int(fade*100)), maxW)

	if isCursor {
		return []string{cursorRowSty.Render(raw1), cursorRowSty.Render(raw2), cursorRowSty.Render(raw3), ""}
	}

	nameSty := StyleTargetName
	if !t.Hit() {
		nameSty = StyleTargetIdle
	}
	symSty := StyleTargetIdle
	if fade > 0 || v.Sweep.Intensity(bearing) > 0.8 {
		symSty = StyleBlip
	}

	line1 := fmt.Sprintf("   %s %s %s", symSty.Render(symbol), nameSty.Render(t.Callsign()), StyleTargetInfo.Render(tag))
	line2 := StyleTargetPos.Render(raw2)
	line3 := StyleTargetInfo.Render(raw3)
	return []string{line1, line2, line3, ""}
}

// truncRaw pads or truncates a raw string to exactly w characters.
func truncRaw(s string, w int) string {
	if len(s) > w {
		return s[:w]
	}
	if len(s) < w {
		return s + strings.Repeat(" ", w-len(s))
	}
	return s
}
