package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/stint/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderShareBar renders a category's share of the period total as a
// colored bar, like "████░░░░░░".
func RenderShareBar(share float64, width int, style lipgloss.Style) string {
	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(share * float64(width))
	if filled > width {
		filled = width
	}
	return style.Render(strings.Repeat(filledBlock, filled)) +
		StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
}

// RenderBreakdown renders one bar line per category, descending, each
// showing name, bar, duration, and share of the total.
func RenderBreakdown(breakdown []domain.CategoryDuration, total int, barWidth int) string {
	if len(breakdown) == 0 || total <= 0 {
		return Dim("No tracked time in this period.")
	}

	nameWidth := 0
	for _, cd := range breakdown {
		if len(cd.Name) > nameWidth {
			nameWidth = len(cd.Name)
		}
	}

	var b strings.Builder
	for i, cd := range breakdown {
		share := float64(cd.Duration) / float64(total)
		style := CategoryStyle(cd.Color)
		b.WriteString(style.Render(padRight(cd.Name, nameWidth)))
		b.WriteString("  ")
		b.WriteString(RenderShareBar(share, barWidth, style))
		b.WriteString("  ")
		b.WriteString(FormatSeconds(cd.Duration))
		b.WriteString(Dim(percentSuffix(share)))
		if i < len(breakdown)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func percentSuffix(share float64) string {
	pct := int(share*100 + 0.5)
	if pct > 100 {
		pct = 100
	}
	return fmt.Sprintf("  %d%%", pct)
}
