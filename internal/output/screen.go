package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benloeffel/dns-compare/internal/compare"
)

const (
	ansiGreen = "\033[32m"
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"
)

// Screen renders the comparison as a bordered grid on the terminal,
// color-coding rows by status: green for Identical, red for Different.
type Screen struct {
	out     io.Writer
	noColor bool
	entries []compare.Entry
}

// NewScreen returns a screen writer printing to stdout.
func NewScreen(noColor bool) *Screen {
	return &Screen{out: os.Stdout, noColor: noColor}
}

func (s *Screen) WriteEntry(e compare.Entry) error {
	s.entries = append(s.entries, e)
	return nil
}

// Close renders the collected entries. With no entries only the header is
// printed, so an all-empty run still shows the table shape.
func (s *Screen) Close() error {
	rows := make([][]string, 0, len(s.entries))
	for _, e := range s.entries {
		rows = append(rows, row(e))
	}

	widths := columnWidths(Header, rows)
	border := gridBorder(widths)

	fmt.Fprintln(s.out, border)
	fmt.Fprintln(s.out, gridRow(Header, widths, ""))
	fmt.Fprintln(s.out, border)
	for i, r := range rows {
		color := ""
		if !s.noColor {
			color = ansiGreen
			if s.entries[i].Status == compare.StatusDifferent {
				color = ansiRed
			}
		}
		fmt.Fprintln(s.out, gridRow(r, widths, color))
		fmt.Fprintln(s.out, border)
	}
	return nil
}

func columnWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, r := range rows {
		for i, cell := range r {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

func gridBorder(widths []int) string {
	var b strings.Builder
	for _, w := range widths {
		b.WriteString("+")
		b.WriteString(strings.Repeat("-", w+2))
	}
	b.WriteString("+")
	return b.String()
}

// gridRow pads each cell to its column width before applying color, so the
// escape sequences never skew the alignment.
func gridRow(cells []string, widths []int, color string) string {
	var b strings.Builder
	for i, cell := range cells {
		padded := cell + strings.Repeat(" ", widths[i]-len(cell))
		b.WriteString("| ")
		if color != "" {
			b.WriteString(color)
			b.WriteString(padded)
			b.WriteString(ansiReset)
		} else {
			b.WriteString(padded)
		}
		b.WriteString(" ")
	}
	b.WriteString("|")
	return b.String()
}
