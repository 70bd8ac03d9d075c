package manager

import "github.com/dmitrijs2005/infrakeeper/internal/models"

const ansiReset = "\033[0m"

// Style is how a severity is drawn in the terminal.
type Style struct {
	Icon  string
	Color string
	Label string
}

var severityStyles = map[models.Severity]Style{
	models.SeverityInfo:     {Icon: "ℹ", Color: "\033[34m", Label: "Info"},
	models.SeverityNotice:   {Icon: "◉", Color: "\033[32m", Label: "Notice"},
	models.SeverityWarning:  {Icon: "⚠", Color: "\033[33m", Label: "Warning"},
	models.SeverityCritical: {Icon: "✖", Color: "\033[31m", Label: "Critical"},
}

// SeverityStyle returns the style for s. Unknown values draw as info.
func SeverityStyle(s models.Severity) Style {
	if st, ok := severityStyles[s]; ok {
		return st
	}
	return severityStyles[models.SeverityInfo]
}

// Badge renders icon and label in the severity color.
func (s Style) Badge() string {
	return s.Color + s.Icon + " " + s.Label + ansiReset
}
