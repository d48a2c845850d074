package usecase

import (
	"context"
	"testing"
	"time"

	"GoldPulse/internal/domain/models"
	"GoldPulse/internal/normalization"
	"GoldPulse/internal/service/goldapi"
	"GoldPulse/pkg/cache"
)

type fakeFetcher struct {
	seriesPayload interface{}
	predsPayload  interface{}
	seriesCalls   int
	predsCalls    int
}

func (f *fakeFetcher) FetchSeries(ctx context.Context, category string, q goldapi.SeriesQuery) (interface{}, error) {
	f.seriesCalls++
	return f.seriesPayload, nil
}

func (f *fakeFetcher) FetchPredictions(ctx context.Context, model string, max int) (interface{}, error) {
	f.predsCalls++
	return f.predsPayload, nil
}

type nopMetrics struct{}

func (nopMetrics) RecordMessageSent(string, string) {}
func (nopMetrics) RecordError(string)               {}
func (nopMetrics) RecordLastPrice(string, float64)  {}
func (nopMetrics) RecordLatency(string, float64)    {}
func (nopMetrics) RecordPayload(string, string)     {}
func (nopMetrics) RecordRecordsDropped(string, int) {}

func newTestService(f *fakeFetcher) *SeriesService {
	norm := normalization.New(nil)
	mem := cache.NewMemoryCache()
	return NewSeriesService(f, norm, mem, nopMetrics{}, nil, time.Minute)
}

func recordsPayload(points ...[2]float64) []interface{} {
	out := make([]interface{}, 0, len(points))
	for _, p := range points {
		out = append(out, map[string]interface{}{
			"time":  p[0],
			"price": p[1],
		})
	}
	return out
}

func TestSeriesCachesSecondCall(t *testing.T) {
	f := &fakeFetcher{seriesPayload: recordsPayload(
		[2]float64{1000, 10},
		[2]float64{2000, 20},
	)}
	svc := newTestService(f)
	req := &models.SeriesRequest{Category: "gold_th", Frame: "7d", GroupBy: "daily", Cache: true}

	got, err := svc.Series(context.Background(), req)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}

	if _, err := svc.Series(context.Background(), req); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if f.seriesCalls != 1 {
		t.Fatalf("expected 1 upstream fetch, got %d", f.seriesCalls)
	}
}

func TestSeriesBypassRefetchesAndCachedWinsCollision(t *testing.T) {
	f := &fakeFetcher{seriesPayload: recordsPayload([2]float64{1000, 5})}
	svc := newTestService(f)

	// prime the cache with value 5 at t=1000
	req := &models.SeriesRequest{Category: "gold_th", Frame: "7d", GroupBy: "daily", Cache: true}
	if _, err := svc.Series(context.Background(), req); err != nil {
		t.Fatal(err)
	}

	// same timestamp, different value; cache=false forces a refetch
	f.seriesPayload = recordsPayload([2]float64{1000, 9}, [2]float64{2000, 20})
	req.Cache = false
	got, err := svc.Series(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if f.seriesCalls != 2 {
		t.Fatalf("expected 2 upstream fetches, got %d", f.seriesCalls)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	if got[0].Value != 5 {
		t.Fatalf("cached point should win collision: got %v", got[0].Value)
	}
	if got[1].Value != 20 {
		t.Fatalf("new point should be merged in: got %v", got[1].Value)
	}
}

func TestSeriesTrimsToMax(t *testing.T) {
	f := &fakeFetcher{seriesPayload: recordsPayload(
		[2]float64{1000, 1},
		[2]float64{2000, 2},
		[2]float64{3000, 3},
	)}
	svc := newTestService(f)

	got, err := svc.Series(context.Background(), &models.SeriesRequest{
		Category: "gold_th", Frame: "7d", GroupBy: "daily", Cache: true, Max: 2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 points after trim, got %d", len(got))
	}
	if got[0].Time != 2000 || got[1].Time != 3000 {
		t.Fatalf("trim should keep the most recent points: %+v", got)
	}
}

func TestAggregateDaily(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC).Unix()
	f := &fakeFetcher{seriesPayload: recordsPayload(
		[2]float64{float64(day), 10},
		[2]float64{float64(day + 3600), 30},
		[2]float64{float64(day + 86400), 50},
	)}
	svc := newTestService(f)

	buckets, err := svc.Aggregate(context.Background(), &models.AggregateRequest{
		Category: "gold_th", Frame: "1m", Granularity: "day",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(buckets) != 2 {
		t.Fatalf("expected 2 day buckets, got %d", len(buckets))
	}
	if buckets[0].Key != "2024-03-10" || buckets[0].Value != 20 || buckets[0].Count != 2 {
		t.Fatalf("unexpected first bucket: %+v", buckets[0])
	}
}

func TestQuoteChangeAgainstPrevious(t *testing.T) {
	f := &fakeFetcher{seriesPayload: recordsPayload(
		[2]float64{1000, 100},
		[2]float64{2000, 102.5},
	)}
	svc := newTestService(f)

	q, err := svc.Quote(context.Background(), &models.QuoteRequest{
		Category: "gold_th", Currency: "THB", Locale: "th",
	})
	if err != nil {
		t.Fatal(err)
	}
	if q.Price != 102.5 {
		t.Fatalf("expected latest price 102.5, got %v", q.Price)
	}
	if q.Change != "+2.50 (+2.50%)" {
		t.Fatalf("unexpected change text: %q", q.Change)
	}
	if q.PriceText == "" {
		t.Fatal("expected formatted price text")
	}
}

func TestNearestReturnsClosestPoint(t *testing.T) {
	f := &fakeFetcher{seriesPayload: recordsPayload(
		[2]float64{1000, 1},
		[2]float64{5000, 5},
	)}
	svc := newTestService(f)

	p, ok, err := svc.Nearest(context.Background(), &models.NearestRequest{
		Category: "gold_th", Frame: "7d", T: 2500,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a nearest point")
	}
	if p.Time != 1000 {
		t.Fatalf("expected nearest t=1000, got %d", p.Time)
	}
}

func TestPredictionsNormalizesLabels(t *testing.T) {
	f := &fakeFetcher{predsPayload: map[string]interface{}{
		"labels": []interface{}{"2024-01-01", "2024-01-02"},
		"data":   []interface{}{float64(2100), float64(2110)},
	}}
	svc := newTestService(f)

	got, err := svc.Predictions(context.Background(), &models.PredictionsRequest{Model: "default", Max: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	if got[0].Value != 2100 || got[1].Value != 2110 {
		t.Fatalf("unexpected values: %+v", got)
	}
	if got[0].Time >= got[1].Time {
		t.Fatalf("expected ascending times: %+v", got)
	}

	// second call served from cache
	if _, err := svc.Predictions(context.Background(), &models.PredictionsRequest{Model: "default", Max: 10}); err != nil {
		t.Fatal(err)
	}
	if f.predsCalls != 1 {
		t.Fatalf("expected 1 upstream fetch, got %d", f.predsCalls)
	}
}
