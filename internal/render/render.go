// Package render draws analysis results for the terminal: road grids, a
// dragon table and a rule table, styled with lipgloss using the color tokens
// the model carries. All layout is computed on plain text before styling, so
// a NoColor renderer emits byte-stable ASCII suitable for golden files.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/arwah7/dragonet/internal/engine"
	"github.com/arwah7/dragonet/internal/model"
)

// heights groups block heights as 1,234,567 so large chains stay readable.
var heights = message.NewPrinter(language.English)

// Height formats a block height with digit grouping.
func Height(n int64) string {
	return heights.Sprintf("%d", n)
}

const emptyMark = "."

// Option configures a Renderer.
type Option func(*Renderer)

// NoColor disables all styling. Output is plain ASCII.
func NoColor() Option {
	return func(r *Renderer) { r.noColor = true }
}

// Renderer draws roads and tables. Use New; the zero value panics on color
// lookups.
type Renderer struct {
	noColor bool
	marks   map[model.Label]lipgloss.Style
	head    lipgloss.Style
	dim     lipgloss.Style
}

// New builds a renderer, resolving one lipgloss style per classification
// value from the model's color tokens.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	if r.noColor {
		return r
	}
	r.marks = make(map[model.Label]lipgloss.Style, 4)
	for _, l := range []model.Label{model.Odd, model.Even, model.Big, model.Small} {
		r.marks[l] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(l.Color()))
	}
	r.head = lipgloss.NewStyle().Bold(true)
	r.dim = lipgloss.NewStyle().Faint(true)
	return r
}

func (r *Renderer) paint(l model.Label, s string) string {
	if r.noColor {
		return s
	}
	return r.marks[l].Render(s)
}

func (r *Renderer) header(s string) string {
	if r.noColor {
		return s
	}
	return r.head.Render(s)
}

func (r *Renderer) faint(s string) string {
	if r.noColor {
		return s
	}
	return r.dim.Render(s)
}

// Road draws a grid as Rows lines of two-rune cells, oldest column on the
// left. A positive maxCols keeps only the most recent maxCols columns, so
// output fits a terminal width hint of 2*maxCols characters. Empty cells
// draw as dots.
func (r *Renderer) Road(g model.Grid, maxCols int) string {
	cols := g.Cols
	if maxCols > 0 && len(cols) > maxCols {
		cols = cols[len(cols)-maxCols:]
	}
	var b strings.Builder
	for row := 0; row < g.Rows; row++ {
		line := make([]string, len(cols))
		for i, col := range cols {
			var cell model.Cell
			if row < len(col) {
				cell = col[row]
			}
			if cell.Empty() {
				line[i] = r.faint(emptyMark)
			} else {
				line[i] = r.paint(cell.Value, cell.Value.Short())
			}
		}
		b.WriteString(strings.Join(line, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// Legend names the two cell markers used on an axis's road.
func (r *Renderer) Legend(axis model.Axis) string {
	parts := make([]string, 0, 2)
	for _, l := range model.LabelsFor(axis) {
		parts = append(parts, r.paint(l, l.Short())+" "+l.Display())
	}
	return strings.Join(parts, "   ")
}

// Dragons draws every reported streak as one table line, trend streaks
// before row streaks, preserving report order. An empty report yields a
// single "no dragons" line.
func (r *Renderer) Dragons(rep engine.Report) string {
	all := make([]model.Dragon, 0, len(rep.Trend)+len(rep.Row))
	all = append(all, rep.Trend...)
	all = append(all, rep.Row...)
	if len(all) == 0 {
		return r.faint("no dragons") + "\n"
	}

	head := []string{"RULE", "AXIS", "VALUE", "RUN", "ROW", "NEXT SAMPLE"}
	rows := make([][]string, len(all))
	for i, d := range all {
		row := "-"
		if d.Row > 0 {
			row = strconv.Itoa(d.Row)
		}
		rows[i] = []string{
			d.RuleID,
			string(d.Axis),
			d.Display,
			fmt.Sprintf("x%d", d.Count),
			row,
			heights.Sprintf("%d", d.NextHeight),
		}
	}

	widths := columnWidths(head, rows)
	var b strings.Builder
	b.WriteString(r.header(formatRow(head, widths)))
	b.WriteByte('\n')
	for i, cells := range rows {
		// pad before styling so escape codes never shift the columns
		padded := make([]string, len(cells))
		for j, c := range cells {
			padded[j] = pad(c, widths[j], j == len(cells)-1)
		}
		padded[2] = r.paint(all[i].Value, padded[2])
		b.WriteString(strings.Join(padded, "  "))
		b.WriteByte('\n')
	}
	return b.String()
}

// Rules draws the active rule set, one line per rule in configuration order.
func (r *Renderer) Rules(rules []model.Rule) string {
	head := []string{"ID", "LABEL", "EVERY", "START", "ROWS", "THRESHOLD"}
	rows := make([][]string, len(rules))
	for i, rule := range rules {
		start := "-"
		if rule.StartBlock > 0 {
			start = heights.Sprintf("%d", rule.StartBlock)
		}
		rows[i] = []string{
			rule.ID,
			rule.Label,
			heights.Sprintf("%d", rule.Step()),
			start,
			fmt.Sprintf("%d/%d", rule.EffectiveTrendRows(), rule.EffectiveBeadRows()),
			strconv.Itoa(rule.EffectiveThreshold()),
		}
	}

	widths := columnWidths(head, rows)
	var b strings.Builder
	b.WriteString(r.header(formatRow(head, widths)))
	b.WriteByte('\n')
	for _, cells := range rows {
		b.WriteString(formatRow(cells, widths))
		b.WriteByte('\n')
	}
	return b.String()
}

func columnWidths(head []string, rows [][]string) []int {
	widths := make([]int, len(head))
	for i, h := range head {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, c := range row {
			if len(c) > widths[i] {
				widths[i] = len(c)
			}
		}
	}
	return widths
}

// pad left-aligns s in a w-wide cell; the last column stays unpadded so
// lines carry no trailing spaces.
func pad(s string, w int, last bool) string {
	if last {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func formatRow(cells []string, widths []int) string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = pad(c, widths[i], i == len(cells)-1)
	}
	return strings.Join(out, "  ")
}
