package normalization

import (
	"testing"
	"time"

	"GoldPulse/internal/domain/models"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNormalizeRecordsDropsNonPositiveTimestamps(t *testing.T) {
	n := New(nil)
	payload := []interface{}{
		map[string]interface{}{"time": float64(0), "price": float64(100)},
		map[string]interface{}{"time": float64(1700000000), "price": float64(101)},
	}
	got := n.Normalize(payload)
	if len(got) != 1 {
		t.Fatalf("expected 1 point, got %d", len(got))
	}
	if got[0].Time != 1700000000 || got[0].Value != 101 {
		t.Fatalf("unexpected point %+v", got[0])
	}
}

func TestNormalizeRecordsFieldSuppression(t *testing.T) {
	n := New(nil)
	// bar_sell never appears: it must be suppressed, not emitted as zeros.
	payload := []interface{}{
		map[string]interface{}{"time": float64(1000), "bar_buy": float64(100), "ornament_buy": float64(110)},
		map[string]interface{}{"time": float64(2000), "bar_buy": float64(200)},
	}
	got := n.Normalize(payload)
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	for _, p := range got {
		if _, present := p.Fields[models.FieldBarSell]; present {
			t.Fatalf("bar_sell absent everywhere must not produce a series")
		}
	}
	// ornament_buy is present on one record: it defaults to 0 on the other.
	if got[0].Fields[models.FieldOrnamentBuy] != 110 {
		t.Fatalf("expected ornament_buy=110, got %+v", got[0].Fields)
	}
	if v, present := got[1].Fields[models.FieldOrnamentBuy]; !present || v != 0 {
		t.Fatalf("expected ornament_buy defaulted to 0, got %+v", got[1].Fields)
	}
}

func TestNormalizeRecordsSkipsMalformed(t *testing.T) {
	n := New(nil)
	payload := []interface{}{
		map[string]interface{}{"time": "not-a-date", "price": float64(1)},
		map[string]interface{}{"time": float64(1000), "price": "abc"},
		map[string]interface{}{"time": float64(2000), "price": "250.5"},
		"not a record at all",
	}
	got := n.Normalize(payload)
	if len(got) != 1 {
		t.Fatalf("expected 1 point, got %d", len(got))
	}
	// Bad dates and non-numeric prices skip the record; numeric strings
	// parse through.
	if got[0].Time != 2000 || got[0].Value != 250.5 {
		t.Fatalf("unexpected point %+v", got[0])
	}
}

func TestNormalizeRecordsDayFirstDates(t *testing.T) {
	n := New(nil)
	payload := []interface{}{
		map[string]interface{}{"date": "25-12-2023", "price": float64(5)},
	}
	got := n.Normalize(payload)
	if len(got) != 1 {
		t.Fatalf("expected 1 point, got %d", len(got))
	}
	want := time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC).Unix()
	if got[0].Time != want {
		t.Fatalf("expected %d, got %d", want, got[0].Time)
	}
}

func TestNormalizeRecordsDuplicatesCollapseToLastSeen(t *testing.T) {
	n := New(nil)
	payload := []interface{}{
		map[string]interface{}{"time": float64(1000), "price": float64(1)},
		map[string]interface{}{"time": float64(2000), "price": float64(2)},
		map[string]interface{}{"time": float64(1000), "price": float64(9)},
	}
	got := n.Normalize(payload)
	if len(got) != 2 {
		t.Fatalf("expected duplicates collapsed, got %d points", len(got))
	}
	if got[0].Time != 1000 || got[0].Value != 9 {
		t.Fatalf("expected last-seen value at t=1000, got %+v", got[0])
	}
}

func TestNormalizeLabelsDatasetsRoundTrip(t *testing.T) {
	n := New(nil)
	payload := map[string]interface{}{
		"data": map[string]interface{}{
			"labels": []interface{}{"2024-01-01", "2024-01-02"},
			"datasets": []interface{}{
				map[string]interface{}{"label": "Price", "data": []interface{}{float64(100), float64(102)}},
			},
		},
	}
	got := SortAscending(n.Normalize(payload))
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	d2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC).Unix()
	if got[0].Time != d1 || got[0].Value != 100 {
		t.Fatalf("unexpected first point %+v", got[0])
	}
	if got[1].Time != d2 || got[1].Value != 102 {
		t.Fatalf("unexpected second point %+v", got[1])
	}
}

func TestNormalizeLabelsDatasetsMillisecondTimestamps(t *testing.T) {
	n := New(nil)
	payload := map[string]interface{}{
		"data": map[string]interface{}{
			"labels": []interface{}{"ignored", "ignored"},
			"datasets": []interface{}{
				map[string]interface{}{"label": "Timestamp", "data": []interface{}{float64(1700000000500), float64(1700086400999)}},
				map[string]interface{}{"label": "Bar Sell Price", "data": []interface{}{float64(33900), float64(34000)}},
			},
		},
	}
	got := n.Normalize(payload)
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	if got[0].Time != 1700000000 {
		t.Fatalf("milliseconds must floor to seconds, got %d", got[0].Time)
	}
	if got[0].Value != 33900 {
		t.Fatalf("unexpected value %v", got[0].Value)
	}
}

func TestNormalizePredictionsFallbackDeterminism(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	n := New(nil, WithClock(fixedClock(now)))
	payload := map[string]interface{}{
		"labels": []interface{}{"bad-date", "also-bad", "bad-date"},
		"data":   []interface{}{float64(1), float64(2), float64(3)},
	}
	first := n.Normalize(payload)
	second := n.Normalize(payload)
	if len(first) != 3 {
		t.Fatalf("expected 3 points, got %d", len(first))
	}
	base := now.Unix()
	for i, p := range first {
		want := base + int64(i)*86400
		if p.Time != want {
			t.Fatalf("index %d: expected synthetic ts %d, got %d", i, want, p.Time)
		}
		if second[i].Time != want {
			t.Fatalf("fallback must be deterministic across calls")
		}
	}
}

func TestNormalizePredictionsTwoDigitYearLabels(t *testing.T) {
	n := New(nil, WithClock(fixedClock(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))))
	payload := map[string]interface{}{
		"labels": []interface{}{"05-03-24"},
		"data":   []interface{}{float64(42)},
	}
	got := n.Normalize(payload)
	if len(got) != 1 {
		t.Fatalf("expected 1 point, got %d", len(got))
	}
	want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC).Unix()
	if got[0].Time != want {
		t.Fatalf("expected %d, got %d", want, got[0].Time)
	}
}

func TestNormalizeUnknownPayloadYieldsEmpty(t *testing.T) {
	n := New(nil)
	for _, payload := range []interface{}{nil, "junk", []interface{}{}, map[string]interface{}{"a": 1}} {
		got := n.Normalize(payload)
		if got == nil || len(got) != 0 {
			t.Fatalf("expected empty series for %v, got %v", payload, got)
		}
	}
}
