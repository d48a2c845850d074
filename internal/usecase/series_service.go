package usecase

import (
	"context"
	"fmt"
	"time"

	"GoldPulse/internal/domain/models"
	drepo "GoldPulse/internal/domain/repository"
	"GoldPulse/internal/format"
	"GoldPulse/internal/lookup"
	"GoldPulse/internal/normalization"
	"GoldPulse/internal/service/goldapi"
	"GoldPulse/pkg/cache"
	"GoldPulse/pkg/logger"
)

// SeriesFetcher is the upstream the series service pulls payloads from.
type SeriesFetcher interface {
	FetchSeries(ctx context.Context, category string, q goldapi.SeriesQuery) (interface{}, error)
	FetchPredictions(ctx context.Context, model string, max int) (interface{}, error)
}

// SeriesService fetches raw upstream payloads, runs them through the
// normalization pipeline, and serves aligned series from the layered cache.
type SeriesService struct {
	fetcher SeriesFetcher
	norm    *normalization.Normalizer
	cache   cache.Service
	metrics drepo.Metrics
	log     *logger.Logger
	ttl     time.Duration
}

// NewSeriesService creates a SeriesService.
func NewSeriesService(
	fetcher SeriesFetcher,
	norm *normalization.Normalizer,
	c cache.Service,
	metrics drepo.Metrics,
	log *logger.Logger,
	ttl time.Duration,
) *SeriesService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &SeriesService{
		fetcher: fetcher,
		norm:    norm,
		cache:   c,
		metrics: metrics,
		log:     log,
		ttl:     ttl,
	}
}

func seriesCacheKey(category string, frame drepo.Frame, groupBy string) string {
	return cache.GenerateKeyWithParams("series", category, frame, groupBy)
}

func predictionsCacheKey(model string) string {
	return cache.GenerateKey("predictions", model)
}

// Series returns the normalized, ascending series for one category.
// With req.Cache the cached series answers directly on a hit; without it the
// upstream is always consulted, and the fresh result still refreshes the
// cache. Fetched points merge into the cached series with cached points
// winning timestamp collisions.
func (s *SeriesService) Series(ctx context.Context, req *models.SeriesRequest) (models.Series, error) {
	frame := drepo.NormalizeFrame(req.Frame)
	key := seriesCacheKey(req.Category, frame, req.GroupBy)

	var cached models.Series
	if err := s.cache.Get(ctx, key, &cached); err != nil {
		cached = nil
	}
	// window-bounded requests always consult upstream; the frame cache only
	// answers whole-frame reads
	if req.Cache && req.From.IsZero() && req.To.IsZero() && len(cached) > 0 {
		return trimSeries(cached, req.Max), nil
	}

	payload, err := s.fetcher.FetchSeries(ctx, req.Category, goldapi.SeriesQuery{
		Frame:   frame,
		GroupBy: req.GroupBy,
		Max:     req.Max,
		Cache:   req.Cache,
		From:    req.From,
		To:      req.To,
	})
	if err != nil {
		// serve stale on upstream failure when anything is cached
		if len(cached) > 0 {
			s.warn("upstream fetch failed, serving cached series",
				logger.String("category", req.Category), logger.Error(err))
			return trimSeries(cached, req.Max), nil
		}
		return nil, fmt.Errorf("series %s: %w", req.Category, err)
	}

	tag := normalization.Detect(payload)
	s.metrics.RecordPayload(req.Category, tag.String())

	fresh := s.norm.Normalize(payload)
	if raw, ok := payload.([]interface{}); ok {
		if dropped := len(raw) - len(fresh); dropped > 0 {
			s.metrics.RecordRecordsDropped(req.Category, dropped)
		}
	}

	merged := normalization.Merge(cached, fresh)
	if err := s.cache.Set(ctx, key, merged, s.ttl); err != nil {
		s.warn("cache set failed", logger.String("key", key), logger.Error(err))
	}
	return trimSeries(merged, req.Max), nil
}

// Aggregate returns period buckets for one category over the given frame.
// Buckets are built fresh per call from the aligned series.
func (s *SeriesService) Aggregate(ctx context.Context, req *models.AggregateRequest) ([]models.Bucket, error) {
	series, err := s.Series(ctx, &models.SeriesRequest{
		Category: req.Category,
		Frame:    req.Frame,
		GroupBy:  "daily",
		Cache:    true,
	})
	if err != nil {
		return nil, err
	}
	g := drepo.NormalizeGranularity(req.Granularity)
	return normalization.Aggregate(series, g), nil
}

// Predictions returns the normalized model forecast series.
func (s *SeriesService) Predictions(ctx context.Context, req *models.PredictionsRequest) (models.Series, error) {
	key := predictionsCacheKey(req.Model)

	var cached models.Series
	if err := s.cache.Get(ctx, key, &cached); err == nil && len(cached) > 0 {
		return trimSeries(cached, req.Max), nil
	}

	payload, err := s.fetcher.FetchPredictions(ctx, req.Model, req.Max)
	if err != nil {
		return nil, fmt.Errorf("predictions %s: %w", req.Model, err)
	}

	tag := normalization.Detect(payload)
	s.metrics.RecordPayload("predictions", tag.String())

	series := normalization.SortAscending(s.norm.Normalize(payload))
	if err := s.cache.Set(ctx, key, series, s.ttl); err != nil {
		s.warn("cache set failed", logger.String("key", key), logger.Error(err))
	}
	return trimSeries(series, req.Max), nil
}

// Nearest returns the series point closest in time to req.T.
func (s *SeriesService) Nearest(ctx context.Context, req *models.NearestRequest) (models.SeriesPoint, bool, error) {
	series, err := s.Series(ctx, &models.SeriesRequest{
		Category: req.Category,
		Frame:    req.Frame,
		GroupBy:  "daily",
		Cache:    true,
	})
	if err != nil {
		return models.SeriesPoint{}, false, err
	}
	p, ok := lookup.NearestPoint(series, req.T)
	return p, ok, nil
}

// Quote returns the latest price with locale-aware currency text and the
// change against the previous point.
func (s *SeriesService) Quote(ctx context.Context, req *models.QuoteRequest) (*models.Quote, error) {
	series, err := s.Series(ctx, &models.SeriesRequest{
		Category: req.Category,
		Frame:    "7d",
		GroupBy:  "daily",
		Cache:    true,
	})
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("no data for %s", req.Category)
	}

	last := series[len(series)-1]
	q := &models.Quote{
		Category:  req.Category,
		Time:      last.Time,
		Price:     last.Value,
		PriceText: format.Currency(last.Value, req.Currency, req.Locale),
	}
	if len(series) > 1 {
		prev := series[len(series)-2]
		diff, pct := format.ChangeBetween(prev.Value, last.Value)
		q.Diff = diff
		q.Pct = pct
		q.Change = format.Change(diff, pct)
	} else {
		q.Change = format.Change(0, 0)
	}
	s.metrics.RecordLastPrice(req.Category, last.Value)
	return q, nil
}

func (s *SeriesService) warn(msg string, fields ...logger.Field) {
	if s.log != nil {
		s.log.Warn(msg, fields...)
	}
}

// trimSeries keeps the most recent max points, preserving order.
func trimSeries(s models.Series, max int) models.Series {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[len(s)-max:]
}
