package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/stint/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// categoryStyles maps the ten stored category color tokens onto the
// palette. Unknown tokens render dim.
var categoryStyles = map[domain.CategoryColor]lipgloss.Style{
	domain.ColorRed:    StyleRed,
	domain.ColorBlue:   StyleBlue,
	domain.ColorGreen:  StyleGreen,
	domain.ColorYellow: StyleYellow,
	domain.ColorOrange: lipgloss.NewStyle().Foreground(ColorOrange),
	domain.ColorPurple: StylePurple,
	domain.ColorPink:   StylePurple,
	domain.ColorIndigo: StyleBlue,
	domain.ColorCyan:   lipgloss.NewStyle().Foreground(ColorAqua),
	domain.ColorGray:   StyleDim,
}

// CategoryStyle returns the style for a stored category color token.
func CategoryStyle(c domain.CategoryColor) lipgloss.Style {
	if s, ok := categoryStyles[c]; ok {
		return s
	}
	return StyleDim
}

// CategoryDot renders a colored bullet followed by the category name.
// A nil category renders the uncategorized placeholder.
func CategoryDot(c *domain.Category) string {
	if c == nil {
		return StyleDim.Render("● Uncategorized")
	}
	return CategoryStyle(c.Color).Render("● " + c.Name)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
