package normalization

import (
	"testing"

	"GoldPulse/internal/domain/models"
)

func TestMergeIdentityOnEmpty(t *testing.T) {
	s := models.Series{{Time: 2000, Value: 2}, {Time: 1000, Value: 1}}
	sorted := SortAscending(s)

	for _, got := range []models.Series{Merge(s, nil), Merge(nil, s), Merge(s, models.Series{})} {
		if len(got) != len(sorted) {
			t.Fatalf("expected %d points, got %d", len(sorted), len(got))
		}
		for i := range sorted {
			if got[i].Time != sorted[i].Time || got[i].Value != sorted[i].Value {
				t.Fatalf("merge with empty must equal sorted input, got %+v", got)
			}
		}
	}
}

func TestMergeBothEmpty(t *testing.T) {
	if got := Merge(nil, nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestMergeCollisionExistingWins(t *testing.T) {
	existing := models.Series{{Time: 100, Value: 5}}
	incoming := models.Series{{Time: 100, Value: 9}, {Time: 200, Value: 7}}
	got := Merge(existing, incoming)
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	if got[0].Time != 100 || got[0].Value != 5 {
		t.Fatalf("existing point must win on collision, got %+v", got[0])
	}
	if got[1].Time != 200 || got[1].Value != 7 {
		t.Fatalf("unexpected appended point %+v", got[1])
	}
}

func TestMergeResortsUnion(t *testing.T) {
	existing := models.Series{{Time: 300, Value: 3}, {Time: 100, Value: 1}}
	incoming := models.Series{{Time: 200, Value: 2}}
	got := Merge(existing, incoming)
	for i, want := range []int64{100, 200, 300} {
		if got[i].Time != want {
			t.Fatalf("index %d: expected %d, got %d", i, want, got[i].Time)
		}
	}
}
