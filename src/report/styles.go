package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// StyleConfig holds the colors used by the pretty report.
type StyleConfig struct {
	PrimaryBlue   lipgloss.Color
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	BorderColor   lipgloss.Color

	// Status colors
	Success lipgloss.Color
	Failure lipgloss.Color
	Warning lipgloss.Color
	Running lipgloss.Color

	// Renderer detects the color profile of the output; nil uses stdout.
	Renderer *lipgloss.Renderer
}

// DefaultStyles returns the default color palette
func DefaultStyles() *StyleConfig {
	return &StyleConfig{
		PrimaryBlue:   lipgloss.Color("#8AB4F8"),
		TextPrimary:   lipgloss.Color("#E8EAED"),
		TextSecondary: lipgloss.Color("#9AA0A6"),
		BorderColor:   lipgloss.Color("#5F6368"),
		Success:       lipgloss.Color("#34A853"),
		Failure:       lipgloss.Color("#EA4335"),
		Warning:       lipgloss.Color("#FBBC04"),
		Running:       lipgloss.Color("#24C1E0"),
	}
}

// StylesFor returns the default palette rendered for w
func StylesFor(w io.Writer) *StyleConfig {
	s := DefaultStyles()
	s.Renderer = lipgloss.NewRenderer(w)
	return s
}

func (s *StyleConfig) newStyle() lipgloss.Style {
	if s.Renderer != nil {
		return s.Renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// TitleStyle returns the style of the box title
func (s *StyleConfig) TitleStyle() lipgloss.Style {
	return s.newStyle().
		Foreground(s.PrimaryBlue).
		Bold(true)
}

// LabelStyle returns the style of field labels
func (s *StyleConfig) LabelStyle() lipgloss.Style {
	return s.newStyle().
		Foreground(s.TextSecondary)
}

// ValueStyle returns the style of a field value
func (s *StyleConfig) ValueStyle() lipgloss.Style {
	return s.newStyle().
		Foreground(s.TextPrimary)
}

// StatusStyle colors a Jenkins result
func (s *StyleConfig) StatusStyle(status string) lipgloss.Style {
	style := s.newStyle().Bold(true)
	switch status {
	case "SUCCESS":
		return style.Foreground(s.Success)
	case "FAILURE":
		return style.Foreground(s.Failure)
	case "UNSTABLE", "ABORTED", "NOT_BUILT":
		return style.Foreground(s.Warning)
	case "building":
		return style.Foreground(s.Running)
	default:
		return style.Foreground(s.TextPrimary)
	}
}

// BoxStyle returns the bordered container around the report
func (s *StyleConfig) BoxStyle() lipgloss.Style {
	return s.newStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.BorderColor)
}
