// Package output renders structured results as aligned text tables and JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styler wraps the small palette habitctl uses. With color disabled every
// style renders as plain text.
type Styler struct {
	enabled bool
	green   lipgloss.Style
	gray    lipgloss.Style
	bold    lipgloss.Style
}

func NewStyler(colorEnabled bool) *Styler {
	return &Styler{
		enabled: colorEnabled,
		green:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		gray:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		bold:    lipgloss.NewStyle().Bold(true),
	}
}

func (s *Styler) Green(text string) string {
	if !s.enabled {
		return text
	}
	return s.green.Render(text)
}

func (s *Styler) Gray(text string) string {
	if !s.enabled {
		return text
	}
	return s.gray.Render(text)
}

func (s *Styler) Bold(text string) string {
	if !s.enabled {
		return text
	}
	return s.bold.Render(text)
}

// Column describes one table column: a header and how to pull the cell value
// from a row.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// RenderTable lays out rows under headers with two-space gutters. An empty
// row set renders just the header line.
func RenderTable[T any](rows []T, cols []Column[T]) string {
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = len(c.Header)
	}
	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, len(cols))
		for i, c := range cols {
			v := c.Value(row)
			cells[r][i] = v
			if len(v) > widths[i] {
				widths[i] = len(v)
			}
		}
	}

	var b strings.Builder
	writeRow := func(values []string) {
		for i, v := range values {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(v)
			if i < len(values)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-len(v)))
			}
		}
		b.WriteString("\n")
	}

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}
	writeRow(headers)
	for _, row := range cells {
		writeRow(row)
	}
	return strings.TrimRight(b.String(), "\n")
}

// PrintJSON writes the value as indented JSON followed by a newline.
func PrintJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
