// Package goldapi is the HTTP client for the upstream gold price and
// prediction service. It owns endpoint paths and query conventions; payload
// shape is deliberately opaque here and left to the normalization pipeline.
package goldapi

import (
	"context"
	"fmt"
	"time"

	"GoldPulse/internal/domain/repository"
	"GoldPulse/internal/service/ratelimit"
	xhttp "GoldPulse/pkg/http"
	"GoldPulse/pkg/logger"
	"GoldPulse/pkg/util"
)

// categoryPaths maps dashboard categories to upstream endpoints.
var categoryPaths = map[string]string{
	"gold_th":  "/gold-th/chart",
	"gold_us":  "/gold-us/chart",
	"currency": "/currency/chart",
}

const predictionsPath = "/predictions"

// SeriesQuery carries the upstream query parameters for a series fetch.
// Dates go over the wire as dd-mm-yyyy; booleans in the upstream's
// True/False convention.
type SeriesQuery struct {
	Frame   repository.Frame
	GroupBy string
	Max     int
	Cache   bool
	From    time.Time
	To      time.Time
}

// Client talks to the upstream price service.
type Client struct {
	http    *xhttp.Client
	baseURL string
	limiter *ratelimit.Limiter
	maxRPS  float64
	burst   float64
	log     *logger.Logger
}

// New creates an upstream client. maxRPS/burst throttle calls per category;
// zero disables throttling.
func New(baseURL string, timeout time.Duration, maxRPS, burst float64, log *logger.Logger) *Client {
	return &Client{
		http:    xhttp.NewClient(xhttp.WithTimeout(timeout)),
		baseURL: baseURL,
		limiter: ratelimit.New(),
		maxRPS:  maxRPS,
		burst:   burst,
		log:     log,
	}
}

// FetchSeries fetches one category's raw series payload. The result is the
// deserialized JSON as-is; classification happens downstream.
func (c *Client) FetchSeries(ctx context.Context, category string, q SeriesQuery) (interface{}, error) {
	path, ok := categoryPaths[category]
	if !ok {
		return nil, fmt.Errorf("unknown category: %s", category)
	}
	if !c.allow(category) {
		return nil, fmt.Errorf("upstream rate limit exceeded for %s", category)
	}

	params := map[string][]string{
		"frame": {string(q.Frame)},
		"cache": {pyBool(q.Cache)},
	}
	if q.GroupBy != "" {
		params["group_by"] = []string{q.GroupBy}
	}
	if q.Max > 0 {
		params["max"] = []string{fmt.Sprintf("%d", q.Max)}
	}
	if !q.From.IsZero() {
		params["start"] = []string{util.FormatDayFirst(q.From)}
	}
	if !q.To.IsZero() {
		params["end"] = []string{util.FormatDayFirst(q.To)}
	}

	var payload interface{}
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.baseURL + path,
		QueryParams: params,
	}, &payload)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", category, err)
	}
	return payload, nil
}

// FetchPredictions fetches the model prediction payload (parallel
// labels/data arrays).
func (c *Client) FetchPredictions(ctx context.Context, model string, max int) (interface{}, error) {
	if !c.allow("predictions") {
		return nil, fmt.Errorf("upstream rate limit exceeded for predictions")
	}

	params := map[string][]string{}
	if model != "" {
		params["model"] = []string{model}
	}
	if max > 0 {
		params["max"] = []string{fmt.Sprintf("%d", max)}
	}

	var payload interface{}
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.baseURL + predictionsPath,
		QueryParams: params,
	}, &payload)
	if err != nil {
		return nil, fmt.Errorf("fetch predictions: %w", err)
	}
	return payload, nil
}

func (c *Client) allow(key string) bool {
	if c.maxRPS <= 0 {
		return true
	}
	allowed := c.limiter.Allow(key, c.burst, c.maxRPS)
	if !allowed && c.log != nil {
		c.log.Warn("upstream call throttled", logger.String("key", key))
	}
	return allowed
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
