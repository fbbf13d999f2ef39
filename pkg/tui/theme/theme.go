package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer FooterTheme
	Panel  PanelTheme
	Quote  QuoteTheme
	Task   TaskTheme
}

// FooterTheme groups styles used by the bottom help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Key    lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style
	Title        lipgloss.Style
	Body         lipgloss.Style
}

// QuoteTheme styles the quote banner.
type QuoteTheme struct {
	Text   lipgloss.Style
	Author lipgloss.Style
}

// TaskTheme styles task rows.
type TaskTheme struct {
	Open   lipgloss.Style
	Done   lipgloss.Style
	Cursor lipgloss.Style
	Empty  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Key:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
		Panel: PanelTheme{
			Frame:        frame,
			FocusedFrame: frame.BorderForeground(lipgloss.Color("63")),
			Title:        lipgloss.NewStyle().Bold(true),
			Body:         lipgloss.NewStyle(),
		},
		Quote: QuoteTheme{
			Text:   lipgloss.NewStyle().Italic(true),
			Author: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Task: TaskTheme{
			Open:   lipgloss.NewStyle(),
			Done:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
			Cursor: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Empty:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		},
	}
}
