package lookup

import (
	"testing"

	"GoldPulse/internal/domain/models"
)

func TestNearestValueExactMatch(t *testing.T) {
	s := models.Series{{Time: 100, Value: 1}, {Time: 200, Value: 2}}
	got, ok := NearestValue(s, 200)
	if !ok || got != 2 {
		t.Fatalf("expected exact match 2, got %v ok=%v", got, ok)
	}
}

func TestNearestValueTieGoesToLowerIndex(t *testing.T) {
	s := models.Series{{Time: 100, Value: 1}, {Time: 200, Value: 2}}
	// 150 is equidistant from both; the earlier timestamp wins.
	got, ok := NearestValue(s, 150)
	if !ok || got != 1 {
		t.Fatalf("expected tie to lower index (value 1), got %v ok=%v", got, ok)
	}
}

func TestNearestValueClosest(t *testing.T) {
	s := models.Series{{Time: 100, Value: 1}, {Time: 200, Value: 2}, {Time: 500, Value: 5}}
	got, ok := NearestValue(s, 280)
	if !ok || got != 2 {
		t.Fatalf("expected 2, got %v ok=%v", got, ok)
	}
}

func TestNearestValueEmpty(t *testing.T) {
	if _, ok := NearestValue(nil, 100); ok {
		t.Fatalf("expected no result for empty series")
	}
	if _, ok := NearestValue(models.Series{}, 100); ok {
		t.Fatalf("expected no result for empty series")
	}
}

func TestNearestValueSkipsMalformedPoints(t *testing.T) {
	s := models.Series{{Time: 0, Value: 99}, {Time: -5, Value: 98}, {Time: 300, Value: 3}}
	got, ok := NearestValue(s, 100)
	if !ok || got != 3 {
		t.Fatalf("malformed points must be skipped, got %v ok=%v", got, ok)
	}

	allBad := models.Series{{Time: 0, Value: 99}}
	if _, ok := NearestValue(allBad, 100); ok {
		t.Fatalf("expected no result when every point is malformed")
	}
}

func TestNearestPointCarriesFields(t *testing.T) {
	s := models.Series{
		{Time: 100, Value: 1, Fields: map[string]float64{models.FieldBarSell: 11}},
	}
	p, ok := NearestPoint(s, 130)
	if !ok || p.Fields[models.FieldBarSell] != 11 {
		t.Fatalf("expected fields preserved, got %+v ok=%v", p, ok)
	}
}
