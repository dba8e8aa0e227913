package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MaxValueWidth caps a value's width in the pretty report.
const MaxValueWidth = 60

// RenderPretty renders the report as a bordered box with aligned labels.
func (r *Report) RenderPretty(styles *StyleConfig) string {
	if styles == nil {
		styles = DefaultStyles()
	}

	labelWidth := 0
	for _, f := range r.Fields {
		if w := VisualWidth(f.Label); w > labelWidth {
			labelWidth = w
		}
	}

	lines := make([]string, 0, len(r.Fields)+2)
	lines = append(lines, styles.TitleStyle().Render(r.JobName+" #"+r.BuildID), "")

	for _, f := range r.Fields {
		label := styles.LabelStyle().Render(PadRight(f.Label, labelWidth))

		valueStyle := styles.ValueStyle()
		if f.Label == "Status:" {
			valueStyle = styles.StatusStyle(f.Value)
		}
		value := valueStyle.Render(Truncate(f.Value, MaxValueWidth, true))

		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, label, " ", value))
	}

	return styles.BoxStyle().Render(strings.Join(lines, "\n"))
}
