// file: sltree/logger/style.go
package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// ----------------------------------------------------
// Colors
// ----------------------------------------------------

const (
	ColorTeal40    = "#3ddbd9"
	ColorBlue60    = "#4589ff"
	ColorBlue40    = "#78a9ff"
	ColorRed60     = "#da1e28"
	ColorRedStrong = "#ff0000"
	ColorOrange40  = "#ff832b"
	ColorGray60    = "#8d8d8d"
	ColorGray10    = "#f4f4f4"
)

// ----------------------------------------------------
// Styles
// ----------------------------------------------------

// Styles defines the formatting of console log lines.
type Styles struct {
	Out             io.Writer
	Timestamp       lipgloss.Style
	Keys            map[string]lipgloss.Style
	DefaultKeyStyle lipgloss.Style
}

// DefaultStyles returns the console theme for out.
func DefaultStyles(out io.Writer) *Styles {
	return &Styles{
		Out:             out,
		Timestamp:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60)),
		DefaultKeyStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
		Keys: map[string]lipgloss.Style{
			"module":  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
			"run":     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTeal40)),
			"percent": lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTeal40)),
			"error":   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
		},
	}
}

func levelColor(lvl string) string {
	switch lvl {
	case "debug":
		return ColorTeal40
	case "info":
		return ColorBlue60
	case "warn":
		return ColorOrange40
	case "error":
		return ColorRed60
	case "fatal", "panic":
		return ColorRedStrong
	default:
		return ColorGray60
	}
}

func levelBadge(i any) string {
	lvl := strings.ToLower(fmt.Sprint(i))
	if len(lvl) > 3 {
		return strings.ToUpper(lvl[:3])
	}
	return strings.ToUpper(lvl)
}

// ----------------------------------------------------
// Console writers
// ----------------------------------------------------

// ConsoleWriterWithStyles builds a zerolog.ConsoleWriter with lipgloss badges.
func ConsoleWriterWithStyles(styles *Styles) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        styles.Out,
		TimeFormat: timeFormat,

		FormatLevel: func(i any) string {
			lvl := strings.ToLower(fmt.Sprint(i))
			return lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ffffff")).
				Background(lipgloss.Color(levelColor(lvl))).
				Padding(0, 1).
				Render(levelBadge(lvl))
		},

		FormatTimestamp: func(i any) string {
			return styles.Timestamp.Render(fmt.Sprint(i))
		},

		FormatFieldName: func(i any) string {
			key := fmt.Sprint(i)
			style, ok := styles.Keys[key]
			if !ok {
				style = styles.DefaultKeyStyle
			}
			eq := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60))
			return style.Render(key) + eq.Render("=")
		},

		FormatMessage: func(i any) string {
			if i == nil {
				return ""
			}
			return lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorGray10)).
				Render(fmt.Sprint(i))
		},
	}
}

// PlainConsoleWriter is the uncoloured console format used when the output
// is not a terminal.
func PlainConsoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:         out,
		NoColor:     true,
		TimeFormat:  timeFormat,
		FormatLevel: levelBadge,
	}
}
