package normalization

import (
	"testing"

	"GoldPulse/internal/domain/models"
)

func TestSortAscending(t *testing.T) {
	s := models.Series{
		{Time: 3000, Value: 3},
		{Time: 1000, Value: 1},
		{Time: 2000, Value: 2},
	}
	got := SortAscending(s)
	for i, want := range []int64{1000, 2000, 3000} {
		if got[i].Time != want {
			t.Fatalf("index %d: expected %d, got %d", i, want, got[i].Time)
		}
	}
	// Input order untouched.
	if s[0].Time != 3000 {
		t.Fatalf("input was mutated")
	}
}

func TestSortAscendingIdempotent(t *testing.T) {
	s := models.Series{{Time: 2000, Value: 2}, {Time: 1000, Value: 1}}
	once := SortAscending(s)
	twice := SortAscending(once)
	if len(once) != len(twice) {
		t.Fatalf("length changed on re-sort")
	}
	for i := range once {
		if once[i].Time != twice[i].Time || once[i].Value != twice[i].Value {
			t.Fatalf("index %d: re-sort changed order", i)
		}
	}
}

func TestSortAscendingStable(t *testing.T) {
	s := models.Series{
		{Time: 1000, Value: 1},
		{Time: 1000, Value: 2},
		{Time: 500, Value: 0},
		{Time: 1000, Value: 3},
	}
	got := SortAscending(s)
	if got[0].Time != 500 {
		t.Fatalf("expected earliest first, got %+v", got[0])
	}
	for i, want := range []float64{1, 2, 3} {
		if got[i+1].Value != want {
			t.Fatalf("equal timestamps must keep input order, got %+v", got)
		}
	}
}

func TestSortAscendingEmpty(t *testing.T) {
	if got := SortAscending(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
