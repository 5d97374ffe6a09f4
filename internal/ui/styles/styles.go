package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/bd-tui/internal/view"
)

var (
	Accent = lipgloss.Color("#f4722b")

	Black    = lipgloss.Color("#111111")
	Gray     = lipgloss.Color("#3e3e3e")
	GrayDark = lipgloss.Color("#2f3030")
	White    = lipgloss.Color("#cccccc")
	Whiter   = lipgloss.Color("#aaaaaa")

	Red = lipgloss.Color("#B8383B")
	Blu = lipgloss.Color("#5885A2")

	ColourCheater = lipgloss.Color("#d32f2f")
	ColourBot     = lipgloss.Color("#ffd700")
	ColourMatch   = lipgloss.Color("#8650ac")
	ColourMuted   = lipgloss.Color("#6e6e6e")
	ColourOK      = lipgloss.Color("#4d7455")

	ContainerBorder = lipgloss.DoubleBorder()
	ContainerStyle  = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Gray)

	HeaderContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)
	ContentContainerStyle = lipgloss.NewStyle().Align(lipgloss.Center)
	FooterContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)

	FocusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	BlurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(Black)
	NoStyle      = lipgloss.NewStyle()

	TableHeaderStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true).Align(lipgloss.Left)

	PlayerTableRow     = lipgloss.NewStyle().Foreground(White)
	PlayerTableRowOdd  = lipgloss.NewStyle().Foreground(Whiter)
	PlayerTableRowSelf = lipgloss.NewStyle().Foreground(ColourOK)
	SelectedCellStyle  = lipgloss.NewStyle().Bold(true).Background(Accent).Foreground(Black)

	RowDisconnected = lipgloss.NewStyle().Foreground(ColourMuted)
	RowCheater      = lipgloss.NewStyle().Foreground(Black).Background(ColourCheater)
	RowBot          = lipgloss.NewStyle().Foreground(Black).Background(ColourBot)
	RowMatch        = lipgloss.NewStyle().Foreground(Black).Background(ColourMatch)
	RowTeamRed      = lipgloss.NewStyle().Foreground(Red)
	RowTeamBlu      = lipgloss.NewStyle().Foreground(Blu)
	RowConnecting   = lipgloss.NewStyle().Foreground(Gray).Italic(true)

	StatusMessage  = lipgloss.NewStyle().Foreground(White).Background(Black).Padding(0, 1)
	StatusError    = lipgloss.NewStyle().Foreground(ColourCheater).Background(Black).Padding(0, 1)
	StatusHostname = lipgloss.NewStyle().Foreground(ColourOK).Background(Black).Padding(0, 1)
	StatusMap      = lipgloss.NewStyle().Foreground(ColourMatch).Background(Black).Padding(0, 1)
	StatusVersion  = lipgloss.NewStyle().Foreground(Gray).Background(Black).Padding(0, 1)
	StatusRedTeam  = lipgloss.NewStyle().Foreground(Red).Background(Black).Padding(0, 1)
	StatusBluTeam  = lipgloss.NewStyle().Foreground(Blu).Background(Black).Padding(0, 1)
	StatusHelp     = lipgloss.NewStyle().Foreground(Whiter).Background(Black).Padding(0, 1)

	DetailLabel = lipgloss.NewStyle().Foreground(Gray).Bold(true)
	DetailValue = lipgloss.NewStyle().Foreground(White)
	DetailWarn  = lipgloss.NewStyle().Foreground(ColourCheater).Bold(true)
)

// RowStyle maps a row category to its base render style. Category styling is
// what makes a cheater visually dominate team colour.
func RowStyle(category view.Category) lipgloss.Style {
	switch category {
	case view.CategoryDisconnected:
		return RowDisconnected
	case view.CategoryMatchCheater:
		return RowCheater
	case view.CategoryMatchBot:
		return RowBot
	case view.CategoryMatchOther:
		return RowMatch
	case view.CategoryTeamRed:
		return RowTeamRed
	case view.CategoryTeamBlu:
		return RowTeamBlu
	case view.CategoryConnecting:
		fallthrough
	default:
		return RowConnecting
	}
}
