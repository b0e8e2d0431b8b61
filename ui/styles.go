package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent    = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
	colorGlassEdge = lipgloss.AdaptiveColor{Light: "#CBD5E1", Dark: "#475569"}
	colorGlassFill = lipgloss.AdaptiveColor{Light: "#F8FAFC", Dark: "#0F172A"}
	colorMuted     = lipgloss.AdaptiveColor{Light: "#64748B", Dark: "#94A3B8"}
	colorText      = lipgloss.AdaptiveColor{Light: "#0F172A", Dark: "#E2E8F0"}
	colorWarning   = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}

	titleStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)

	queryBubbleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(colorAccent).
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorAccent).
				Padding(0, 2)

	responseCardStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorGlassEdge).
				Padding(0, 1)

	sectionCardStyle = lipgloss.NewStyle().
				Background(colorGlassFill).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderTop(false).
				BorderRight(false).
				BorderBottom(false).
				BorderForeground(colorAccent).
				Padding(0, 1)

	sectionLabelStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	articleNumberStyle = lipgloss.NewStyle().
				Foreground(colorWarning).
				Bold(true)

	articleTextStyle = lipgloss.NewStyle().
				Foreground(colorText)

	roleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	inputBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	inputBoxDisabledStyle = inputBoxStyle.
				BorderForeground(colorGlassEdge)
)
