// Package report renders the final statistics of a run.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/rskv-p/sltree/rho"
)

// Line is one labelled counter.
type Line struct {
	Label string
	Value uint64
}

// Summary is a titled list of counters.
type Summary struct {
	Title string
	Lines []Line
}

// Rho summarises a bounded rho traversal.
func Rho(s rho.Stats) Summary {
	return Summary{
		Title: "rho",
		Lines: []Line{
			{"nodes processed", s.Nodes},
			{"SLT leaves", s.Leaves},
			{"leaf right-extensions", s.LeafExts},
			{"rho", s.Rho},
			{"max recursion depth", s.MaxDepth},
		},
	}
}

// Size summarises a plain enumeration.
func Size(s rho.Stats) Summary {
	return Summary{
		Title: "size",
		Lines: []Line{
			{"max stack size", s.MaxStack},
			{"nodes processed", s.Nodes},
			{"SLT leaves", s.Leaves},
			{"SLT factorization size", s.LeafExts},
		},
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4589ff"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8d8d8d"))
	valueStyle = lipgloss.NewStyle().Bold(true)
)

// Render writes s to w, styled when w is a terminal.
func Render(w io.Writer, s Summary) error {
	var b strings.Builder
	if isTerminal(w) {
		width := 0
		for _, l := range s.Lines {
			width = max(width, len(l.Label)+1)
		}
		b.WriteString(titleStyle.Render(s.Title))
		b.WriteByte('\n')
		for _, l := range s.Lines {
			b.WriteString(labelStyle.Width(width).Render(l.Label + ":"))
			b.WriteByte(' ')
			b.WriteString(valueStyle.Render(fmt.Sprint(l.Value)))
			b.WriteByte('\n')
		}
	} else {
		fmt.Fprintf(&b, "[%s]\n", s.Title)
		for _, l := range s.Lines {
			fmt.Fprintf(&b, "%s: %d\n", l.Label, l.Value)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
