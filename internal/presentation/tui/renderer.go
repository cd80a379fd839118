package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// Styles are detected from the terminal background; plain output falls back to
// the "notty" style so piped reports stay readable.
func NewRenderer(tty bool) func(string) (string, error) {
	style := glamour.WithAutoStyle()
	if !tty {
		style = glamour.WithStandardStyle("notty")
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, err
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
