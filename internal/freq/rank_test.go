package freq

import "testing"

func TestTopNTieBreakIsFirstSeen(t *testing.T) {
	agg := NewAggregator()
	for i := 0; i < 5; i++ {
		agg.Add("a", "a")
	}
	for i := 0; i < 5; i++ {
		agg.Add("b", "b")
	}
	for i := 0; i < 3; i++ {
		agg.Add("c", "c")
	}

	top := TopN(agg.Records(), 2)
	if len(top) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(top))
	}
	if top[0].Key != "a" || top[1].Key != "b" {
		t.Errorf("Expected [a b] in first-seen order, got [%s %s]", top[0].Key, top[1].Key)
	}
}

func TestTopNIsACeiling(t *testing.T) {
	agg := NewAggregator()
	agg.Add("only", "only")

	if top := TopN(agg.Records(), 10); len(top) != 1 {
		t.Errorf("Expected all records when fewer than n exist, got %d", len(top))
	}
}

func TestTopNEmpty(t *testing.T) {
	if top := TopN(nil, 10); len(top) != 0 {
		t.Errorf("Expected no records, got %d", len(top))
	}
}

func TestBarLengthScaling(t *testing.T) {
	if got := BarLength(540, 540, 8); got != 8 {
		t.Errorf("Expected max count to fill the canvas, got %d", got)
	}
	if got := BarLength(270, 540, 8); got != 4 {
		t.Errorf("Expected half count to fill half the canvas, got %d", got)
	}
}

func TestBarLengthMinimumOne(t *testing.T) {
	if got := BarLength(1, 1000, 8); got != 1 {
		t.Errorf("Expected nonzero count to get at least one cell, got %d", got)
	}
}

func TestBarLengthZero(t *testing.T) {
	if got := BarLength(0, 100, 8); got != 0 {
		t.Errorf("Expected zero count to get no bar, got %d", got)
	}
	if got := BarLength(5, 0, 8); got != 0 {
		t.Errorf("Expected zero max to get no bar, got %d", got)
	}
}

func TestRank(t *testing.T) {
	records := []Record{
		{Key: "a", Label: "a", Count: 540},
		{Key: "b", Label: "b", Count: 270},
	}

	ranked := Rank(records, 8)
	if len(ranked) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(ranked))
	}
	if ranked[0].Bar != 8 || ranked[1].Bar != 4 {
		t.Errorf("Expected bars [8 4], got [%d %d]", ranked[0].Bar, ranked[1].Bar)
	}
	if ranked[0].Frac != 1.0 || ranked[1].Frac != 0.5 {
		t.Errorf("Expected fractions [1 0.5], got [%v %v]", ranked[0].Frac, ranked[1].Frac)
	}
}

func TestRankEmpty(t *testing.T) {
	if rows := Rank(nil, 8); len(rows) != 0 {
		t.Errorf("Expected no rows, got %d", len(rows))
	}
}
