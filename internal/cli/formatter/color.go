package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/whatif/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
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

// ImpactColor returns the lipgloss style corresponding to the given impact level.
func ImpactColor(impact domain.ImpactLevel) lipgloss.Style {
	switch impact {
	case domain.ImpactHigh:
		return StyleRed
	case domain.ImpactMedium:
		return StyleYellow
	case domain.ImpactLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// ImpactIndicator returns a colored impact indicator string such as "● HIGH".
func ImpactIndicator(impact domain.ImpactLevel) string {
	switch impact {
	case domain.ImpactHigh:
		return StyleRed.Render("● HIGH")
	case domain.ImpactMedium:
		return StyleYellow.Render("● MEDIUM")
	case domain.ImpactLow:
		return StyleGreen.Render("● LOW")
	default:
		return StyleDim.Render("● NONE")
	}
}

// CategoryColor returns the style used for a change category tag.
func CategoryColor(category domain.ChangeCategory) lipgloss.Style {
	switch category {
	case domain.CategoryFinancial:
		return StyleYellow
	case domain.CategoryResources:
		return StyleBlue
	case domain.CategoryTimeline:
		return StylePurple
	case domain.CategoryScope:
		return StyleGreen
	case domain.CategoryOrganizational:
		return StyleFg
	default:
		return StyleDim
	}
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
