package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rounded border pieces.
const (
	cornerTopLeft     = "╭"
	cornerTopRight    = "╮"
	cornerBottomLeft  = "╰"
	cornerBottomRight = "╯"
	edgeHorizontal    = "─"
	edgeVertical      = "│"
)

// Frame draws a rounded border of the given outer size around content,
// with title set into the top edge on the left and status on the right.
// Titles that do not fit are dropped, status first.
func Frame(content, title, status string, width, height int) string {
	innerW := max(width-2, 0)
	innerH := max(height-2, 0)

	var b strings.Builder
	b.WriteString(frameTop(title, status, innerW))

	body := strings.Split(content, "\n")
	for i := range innerH {
		line := ""
		if i < len(body) {
			line = body[i]
		}
		if w := lipgloss.Width(line); w < innerW {
			line += strings.Repeat(" ", innerW-w)
		}
		b.WriteString("\n")
		b.WriteString(BorderStyle.Render(edgeVertical))
		b.WriteString(line)
		b.WriteString(BorderStyle.Render(edgeVertical))
	}

	b.WriteString("\n")
	b.WriteString(BorderStyle.Render(cornerBottomLeft + strings.Repeat(edgeHorizontal, innerW) + cornerBottomRight))
	return b.String()
}

func frameTop(title, status string, innerW int) string {
	// ╭─ title ───── status ─╮
	need := func(s string) int {
		if s == "" {
			return 0
		}
		return lipgloss.Width(s) + 3
	}
	if need(title)+need(status) > innerW {
		status = ""
	}
	if need(title) > innerW {
		title = ""
	}

	var b strings.Builder
	b.WriteString(BorderStyle.Render(cornerTopLeft))
	used := 0
	if title != "" {
		b.WriteString(BorderStyle.Render(edgeHorizontal + " "))
		b.WriteString(TitleStyle.Render(title))
		b.WriteString(BorderStyle.Render(" "))
		used += need(title)
	}
	fill := innerW - used - need(status)
	b.WriteString(BorderStyle.Render(strings.Repeat(edgeHorizontal, max(fill, 0))))
	if status != "" {
		b.WriteString(BorderStyle.Render(" "))
		b.WriteString(MutedStyle.Render(status))
		b.WriteString(BorderStyle.Render(" " + edgeHorizontal))
	}
	b.WriteString(BorderStyle.Render(cornerTopRight))
	return b.String()
}
