// Package freq counts signature occurrences and ranks them for display.
package freq

import "sort"

// Record holds the occurrence count and display label for one signature key.
type Record struct {
	Key   string
	Label string
	Count int

	seq int // first-seen order, used for deterministic tie-breaks
}

// Aggregator builds a count map over a single run. Not safe for concurrent
// use; the pipeline is one linear pass.
type Aggregator struct {
	records map[string]*Record
	next    int
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{records: make(map[string]*Record)}
}

// Add counts one occurrence of key. The label of the first occurrence wins;
// later labels are ignored.
func (a *Aggregator) Add(key, label string) {
	if rec, ok := a.records[key]; ok {
		rec.Count++
		return
	}
	a.records[key] = &Record{Key: key, Label: label, Count: 1, seq: a.next}
	a.next++
}

// Len returns the number of distinct keys seen.
func (a *Aggregator) Len() int {
	return len(a.records)
}

// Records returns all records in first-seen order.
func (a *Aggregator) Records() []Record {
	out := make([]Record, 0, len(a.records))
	for _, rec := range a.records {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}
