package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/muesli/reflow/truncate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"cmdheat/internal/freq"
)

// eighths are partial block glyphs for sub-cell bar resolution. Index is the
// number of filled eighths; a full cell is '█'.
var eighths = []rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉'}

var countPrinter = message.NewPrinter(language.English)

// RenderTable renders the ranked rows as a HEAT / COUNT / COMMAND table.
// An empty selection still renders the headers.
func RenderTable(title string, rows []freq.Ranked, barWidth, termWidth int) string {
	if barWidth < 1 {
		barWidth = 8
	}

	countWidth := 8
	for _, row := range rows {
		if w := len(countPrinter.Sprintf("%d", row.Count)); w > countWidth {
			countWidth = w
		}
	}

	// "| " + bar + " | " + count + " | " + label
	labelWidth := termWidth - barWidth - countWidth - 8
	if labelWidth < 10 {
		labelWidth = 10
	}

	var b strings.Builder

	b.WriteString("\n  " + Title(title) + "\n\n")

	header := fmt.Sprintf("| %-*s | %*s | %s", barWidth, "HEAT", countWidth, "COUNT", "COMMAND")
	rule := fmt.Sprintf("| %s | %s | %s",
		strings.Repeat("-", barWidth),
		strings.Repeat("-", countWidth),
		strings.Repeat("-", 9))
	b.WriteString(headerStyle.Render(header) + "\n")
	b.WriteString(ruleStyle.Render(rule) + "\n")

	for _, row := range rows {
		bar := barStyle.Render(barGlyphs(row.Bar, row.Frac, barWidth))
		count := countStyle.Render(fmt.Sprintf("%*s", countWidth, countPrinter.Sprintf("%d", row.Count)))
		label := labelStyle.Render(truncate.StringWithTail(row.Label, uint(labelWidth), "…"))
		fmt.Fprintf(&b, "| %s | %s | %s\n", bar, count, label)
	}

	return b.String()
}

// barGlyphs draws a bar of exactly bar cells on a width-cell canvas, using
// frac for eighth-block resolution inside the final cell. The glyph cell
// count always agrees with the scaled bar length.
func barGlyphs(bar int, frac float64, width int) string {
	if width < 1 {
		return ""
	}
	if bar > width {
		bar = width
	}
	if bar <= 0 {
		return strings.Repeat(" ", width)
	}

	units := int(math.Round(frac * float64(width) * 8))
	if min := (bar-1)*8 + 1; units < min {
		units = min
	}
	if max := bar * 8; units > max {
		units = max
	}

	full := units / 8
	rem := units % 8

	var b strings.Builder
	b.WriteString(strings.Repeat("█", full))
	cells := full
	if rem > 0 {
		b.WriteRune(eighths[rem])
		cells++
	}
	if cells < width {
		b.WriteString(strings.Repeat(" ", width-cells))
	}
	return b.String()
}
