package freq

import (
	"math"
	"sort"
)

// Ranked is one display row: label, count and the proportional bar.
type Ranked struct {
	Label string
	Count int
	Bar   int     // bar length in cells
	Frac  float64 // count relative to the selected maximum
}

// TopN selects the n highest-count records. Records with equal counts keep
// their first-seen order, so output is deterministic for a given input.
// n is a ceiling: fewer distinct keys return fewer rows.
func TopN(records []Record, n int) []Record {
	if n <= 0 {
		return nil
	}

	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// BarLength scales count against the selected maximum onto a width-cell
// canvas. Any nonzero count gets at least one cell.
func BarLength(count, max, width int) int {
	if count <= 0 || max <= 0 || width <= 0 {
		return 0
	}

	cells := int(math.Round(float64(count) / float64(max) * float64(width)))
	if cells < 1 {
		cells = 1
	}
	if cells > width {
		cells = width
	}
	return cells
}

// Rank converts selected records into display rows, scaling bars against
// the maximum count in the selection.
func Rank(records []Record, width int) []Ranked {
	max := 0
	for _, rec := range records {
		if rec.Count > max {
			max = rec.Count
		}
	}

	out := make([]Ranked, 0, len(records))
	for _, rec := range records {
		frac := 0.0
		if max > 0 {
			frac = float64(rec.Count) / float64(max)
		}
		out = append(out, Ranked{
			Label: rec.Label,
			Count: rec.Count,
			Bar:   BarLength(rec.Count, max, width),
			Frac:  frac,
		})
	}
	return out
}
