package list

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	name       lipgloss.Style
	detail     lipgloss.Style
	muted      lipgloss.Style
	warning    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	key        lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		name:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		key:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

var statusColors = map[string]lipgloss.Color{
	"idee":               lipgloss.Color("245"),
	"achete":             lipgloss.Color("220"),
	"commande":           lipgloss.Color("214"),
	"en_cours_livraison": lipgloss.Color("117"),
	"livre":              lipgloss.Color("39"),
	"recupere":           lipgloss.Color("75"),
	"emballe":            lipgloss.Color("177"),
	"offert":             lipgloss.Color("42"),
}
