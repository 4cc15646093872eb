package viz

import "github.com/charmbracelet/lipgloss"

var (
	Title   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	Label   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	Value   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	Dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	Dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	Accent  = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)
