package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the puzzler banner to w using the terminal's color profile.
func PrintBanner(w io.Writer) {
	p := termenv.NewOutput(w).ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{`                         _           `, "#818cf8"},
		{` _ __  _   _ __________| | ___ _ __ `, "#a78bfa"},
		{`| '_ \| | | |_  /_  / | |/ _ \ '__|`, "#c084fc"},
		{`| |_) | |_| |/ / / /  | |  __/ |   `, "#e879f9"},
		{`| .__/ \__,_/___/___| |_|\___|_|   `, "#f472b6"},
		{`|_|                                `, "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
