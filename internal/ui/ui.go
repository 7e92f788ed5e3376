// Package ui provides console output helpers for librarylink.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
)

// UI writes styled status lines to the console.
type UI struct {
	out io.Writer
	err io.Writer
}

// New creates a UI writing to stdout/stderr.
func New() *UI {
	return &UI{out: os.Stdout, err: os.Stderr}
}

// NewWriter creates a UI writing both streams to w. Used by tests.
func NewWriter(w io.Writer) *UI {
	return &UI{out: w, err: w}
}

// Success prints a success message.
func (u *UI) Success(format string, args ...interface{}) {
	fmt.Fprintln(u.out, successStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Error prints an error message.
func (u *UI) Error(format string, args ...interface{}) {
	fmt.Fprintln(u.err, errorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// Warning prints a warning message.
func (u *UI) Warning(format string, args ...interface{}) {
	fmt.Fprintln(u.out, warningStyle.Render("⚠ "+fmt.Sprintf(format, args...)))
}

// Info prints an informational message.
func (u *UI) Info(format string, args ...interface{}) {
	fmt.Fprintln(u.out, infoStyle.Render(fmt.Sprintf(format, args...)))
}

// Subtle prints a muted message.
func (u *UI) Subtle(format string, args ...interface{}) {
	fmt.Fprintln(u.out, subtleStyle.Render(fmt.Sprintf(format, args...)))
}

// Println prints an unstyled line.
func (u *UI) Println(msg string) {
	fmt.Fprintln(u.out, msg)
}

// Header prints a section header.
func (u *UI) Header(title string) {
	fmt.Fprintln(u.out, headerStyle.Render(title))
}

// KeyValue prints an indented key-value pair.
func (u *UI) KeyValue(key, value string) {
	fmt.Fprintf(u.out, "  %s: %s\n", subtleStyle.Render(key), value)
}

// Table prints rows aligned under column headers.
type Table struct {
	ui      *UI
	headers []string
	rows    [][]string
}

// NewTable creates a table with the given column headers.
func (u *UI) NewTable(headers ...string) *Table {
	return &Table{ui: u, headers: headers}
}

// AddRow appends a row.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Render prints the table with column widths sized to the widest cell.
func (t *Table) Render() {
	if len(t.headers) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	for i, header := range t.headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}

	headerParts := make([]string, len(t.headers))
	for i, header := range t.headers {
		headerParts[i] = padRight(header, widths[i])
	}
	t.ui.Println(headerStyle.Render(strings.Join(headerParts, "  ")))

	separatorParts := make([]string, len(widths))
	for i, width := range widths {
		separatorParts[i] = strings.Repeat("─", width)
	}
	t.ui.Println(subtleStyle.Render(strings.Join(separatorParts, "  ")))

	for _, row := range t.rows {
		rowParts := make([]string, len(t.headers))
		for i := range t.headers {
			if i < len(row) {
				rowParts[i] = padRight(row[i], widths[i])
			} else {
				rowParts[i] = padRight("", widths[i])
			}
		}
		t.ui.Println(strings.Join(rowParts, "  "))
	}
}

// padRight pads by display width, not byte length, so cells holding
// wide or multibyte runes still line up.
func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
