package freq

import "testing"

func TestAggregatorCountsOccurrences(t *testing.T) {
	agg := NewAggregator()
	agg.Add("git add -i", "git add -i")
	agg.Add("git add -i", "git add -i")

	records := agg.Records()
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].Count != 2 {
		t.Errorf("Expected count 2, got %d", records[0].Count)
	}
}

func TestAggregatorFirstLabelWins(t *testing.T) {
	agg := NewAggregator()
	agg.Add("key", "first label")
	agg.Add("key", "second label")

	records := agg.Records()
	if records[0].Label != "first label" {
		t.Errorf("Expected first-seen label to win, got %q", records[0].Label)
	}
}

func TestAggregatorRecordsInFirstSeenOrder(t *testing.T) {
	agg := NewAggregator()
	agg.Add("b", "b")
	agg.Add("a", "a")
	agg.Add("b", "b")
	agg.Add("c", "c")

	records := agg.Records()
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}
	order := []string{records[0].Key, records[1].Key, records[2].Key}
	want := []string{"b", "a", "c"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Expected first-seen order %v, got %v", want, order)
		}
	}
}

func TestAggregatorEmpty(t *testing.T) {
	agg := NewAggregator()
	if agg.Len() != 0 {
		t.Errorf("Expected empty aggregator, got %d keys", agg.Len())
	}
	if records := agg.Records(); len(records) != 0 {
		t.Errorf("Expected no records, got %d", len(records))
	}
}
