package normalization

import (
	"testing"
	"time"

	"GoldPulse/internal/domain/models"
	"GoldPulse/internal/domain/repository"
)

func dayTS(y int, m time.Month, d, hour int) int64 {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC).Unix()
}

func TestAggregateDayAveraging(t *testing.T) {
	s := models.Series{
		{Time: dayTS(2024, 3, 5, 9), Value: 10},
		{Time: dayTS(2024, 3, 5, 12), Value: 20},
		{Time: dayTS(2024, 3, 5, 18), Value: 30},
	}
	got := Aggregate(s, repository.GranDay)
	if len(got) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(got))
	}
	b := got[0]
	if b.Key != "2024-03-05" {
		t.Fatalf("unexpected key %q", b.Key)
	}
	if b.Value != 20 || b.Count != 3 {
		t.Fatalf("expected mean 20 over 3 members, got value=%v count=%d", b.Value, b.Count)
	}
}

func TestAggregateFieldAveragingAdditivePolicy(t *testing.T) {
	s := models.Series{
		{Time: dayTS(2024, 3, 5, 9), Value: 10, Fields: map[string]float64{models.FieldBarSell: 30}},
		{Time: dayTS(2024, 3, 5, 12), Value: 20}, // bar_sell missing: contributes 0
	}
	got := Aggregate(s, repository.GranDay)
	if len(got) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(got))
	}
	if v := got[0].Fields[models.FieldBarSell]; v != 15 {
		t.Fatalf("expected additive mean 15, got %v", v)
	}
}

func TestAggregateBucketKeys(t *testing.T) {
	ts := dayTS(2024, 2, 10, 0) // day-of-year 41
	cases := []struct {
		g    repository.Granularity
		want string
	}{
		{repository.GranDay, "2024-02-10"},
		{repository.GranWeek, "2024-W06"}, // floor(41/7)+1 = 6, simplified scheme
		{repository.GranMonth, "2024-02"},
		{repository.GranQuarter, "2024-Q1"},
		{repository.GranYear, "2024"},
	}
	for _, c := range cases {
		if got := BucketKey(ts, c.g); got != c.want {
			t.Errorf("%s: expected %q, got %q", c.g, c.want, got)
		}
	}
}

func TestAggregateBucketsSortedByKey(t *testing.T) {
	s := models.Series{
		{Time: dayTS(2024, 11, 1, 0), Value: 1},
		{Time: dayTS(2024, 2, 1, 0), Value: 2},
		{Time: dayTS(2024, 9, 1, 0), Value: 3},
	}
	got := Aggregate(s, repository.GranMonth)
	want := []string{"2024-02", "2024-09", "2024-11"}
	if len(got) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Key != want[i] {
			t.Fatalf("index %d: expected %q, got %q", i, want[i], got[i].Key)
		}
	}
}

func TestAggregateAllIsIdentity(t *testing.T) {
	s := models.Series{
		{Time: dayTS(2024, 3, 5, 9), Value: 10},
		{Time: dayTS(2024, 3, 5, 12), Value: 20},
	}
	got := Aggregate(s, repository.GranAll)
	if len(got) != len(s) {
		t.Fatalf("granularity all must not bucket, got %d buckets", len(got))
	}
	for i, b := range got {
		if b.Count != 1 || b.Value != s[i].Value || len(b.Members) != 1 {
			t.Fatalf("bucket %d not a pass-through: %+v", i, b)
		}
	}
}

func TestAggregateEmpty(t *testing.T) {
	if got := Aggregate(nil, repository.GranDay); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
