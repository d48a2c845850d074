package normalization

import (
	"time"

	"GoldPulse/internal/domain/models"
	"GoldPulse/pkg/logger"
	"GoldPulse/pkg/util"
)

// defaultPriceFields are the record keys recognized as prices, in priority
// order. The first field present anywhere in a batch becomes the primary
// point value; the rest are carried as secondary fields.
var defaultPriceFields = []string{
	models.FieldPrice,
	models.FieldBarBuy,
	models.FieldBarSell,
	models.FieldOrnamentBuy,
	models.FieldOrnamentSell,
	models.FieldPriceChange,
}

// datasetFieldNames maps legacy chart dataset labels to canonical field
// names. "Price" always maps to the primary value.
var datasetFieldNames = map[string]string{
	"Price":               models.FieldPrice,
	"Bar Buy Price":       models.FieldBarBuy,
	"Bar Sell Price":      models.FieldBarSell,
	"Ornament Buy Price":  models.FieldOrnamentBuy,
	"Ornament Sell Price": models.FieldOrnamentSell,
	"Price Change":        models.FieldPriceChange,
}

// Dataset labels recognized as the time axis.
const (
	datasetDate      = "Date"
	datasetTimestamp = "Timestamp"
)

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithPriceFields overrides the recognized price field set and priority.
func WithPriceFields(fields []string) Option {
	return func(n *Normalizer) {
		if len(fields) > 0 {
			n.priceFields = fields
		}
	}
}

// WithClock overrides the clock used for the prediction-label fallback.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		if now != nil {
			n.now = now
		}
	}
}

// Normalizer converts classified payloads into canonical series. Every call
// is independent: the normalizer holds no cross-call state beyond its
// configuration, so concurrent use is safe.
type Normalizer struct {
	log         *logger.Logger
	now         func() time.Time
	priceFields []string
}

// New creates a Normalizer. The logger may be nil; skipped records then go
// unreported.
func New(log *logger.Logger, opts ...Option) *Normalizer {
	n := &Normalizer{
		log:         log,
		now:         time.Now,
		priceFields: defaultPriceFields,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize classifies payload and dispatches to the shape normalizer.
// Total: any input, including nil, yields a well-formed (possibly empty)
// series. Output order follows the input; sorting is a separate stage.
func (n *Normalizer) Normalize(payload interface{}) models.Series {
	switch Detect(payload) {
	case FormatArrayOfRecords:
		return n.NormalizeRecords(payload.([]interface{}))
	case FormatLabelsDatasets:
		return n.NormalizeLabelsDatasets(payload.(map[string]interface{}))
	case FormatPredictionLabels:
		return n.NormalizePredictions(payload.(map[string]interface{}))
	default:
		n.warn("unrecognized payload shape, returning empty series")
		return models.Series{}
	}
}

// NormalizeRecords converts a flat array of records. A price field absent
// from every record is suppressed entirely rather than emitted as an
// all-zero series; a field absent on an individual record defaults to 0.
func (n *Normalizer) NormalizeRecords(records []interface{}) models.Series {
	// First pass: which price fields exist anywhere in the batch.
	seen := make(map[string]bool, len(n.priceFields))
	for _, raw := range records {
		rec, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		for _, f := range n.priceFields {
			if _, present := rec[f]; present {
				seen[f] = true
			}
		}
	}

	primary := ""
	for _, f := range n.priceFields {
		if seen[f] {
			primary = f
			break
		}
	}
	if primary == "" {
		n.warn("no recognized price field in any record, returning empty series")
		return models.Series{}
	}

	out := make(models.Series, 0, len(records))
	dropped := 0
	for _, raw := range records {
		rec, ok := raw.(map[string]interface{})
		if !ok {
			dropped++
			continue
		}
		ts, ok := n.recordTime(rec)
		if !ok {
			dropped++
			continue
		}

		p := models.SeriesPoint{Time: ts}
		if raw, present := rec[primary]; present {
			v, ok := util.ParseFloat(raw)
			if !ok {
				// Present but non-numeric is a malformed record, unlike
				// an absent field which defaults to 0.
				dropped++
				continue
			}
			p.Value = v
		}
		for _, f := range n.priceFields {
			if f == primary || !seen[f] {
				continue
			}
			v, _ := util.ParseFloat(rec[f]) // missing-on-this-record -> 0
			if p.Fields == nil {
				p.Fields = make(map[string]float64)
			}
			p.Fields[f] = v
		}
		out = append(out, p)
	}
	if dropped > 0 {
		n.debug("records skipped during normalization", dropped)
	}
	return collapseDuplicates(out)
}

// NormalizeLabelsDatasets converts the legacy {data:{labels,datasets}}
// chart structure. A "Timestamp" dataset, when present, takes priority over
// label parsing and is assumed to be milliseconds.
func (n *Normalizer) NormalizeLabelsDatasets(payload map[string]interface{}) models.Series {
	data, _ := payload["data"].(map[string]interface{})
	labels, _ := data["labels"].([]interface{})
	rawSets, _ := data["datasets"].([]interface{})

	var timestamps []interface{}
	valueSets := make(map[string][]interface{})
	for _, raw := range rawSets {
		ds, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		label, _ := ds["label"].(string)
		seriesData, _ := ds["data"].([]interface{})
		switch {
		case label == datasetTimestamp:
			timestamps = seriesData
		case label == datasetDate:
			// Dates ride along as labels; nothing to zip.
		default:
			if field, known := datasetFieldNames[label]; known {
				valueSets[field] = seriesData
			}
		}
	}

	primary := ""
	for _, f := range n.priceFields {
		if _, ok := valueSets[f]; ok {
			primary = f
			break
		}
	}
	if primary == "" {
		n.warn("no recognized value dataset, returning empty series")
		return models.Series{}
	}

	out := make(models.Series, 0, len(labels))
	dropped := 0
	for i := range labels {
		ts, ok := n.datasetTime(labels, timestamps, i)
		if !ok {
			dropped++
			continue
		}
		v, ok := floatAt(valueSets[primary], i)
		if !ok {
			dropped++
			continue
		}
		p := models.SeriesPoint{Time: ts, Value: v}
		for field, set := range valueSets {
			if field == primary {
				continue
			}
			fv, _ := floatAt(set, i)
			if p.Fields == nil {
				p.Fields = make(map[string]float64)
			}
			p.Fields[field] = fv
		}
		out = append(out, p)
	}
	if dropped > 0 {
		n.debug("label/dataset rows skipped during normalization", dropped)
	}
	return collapseDuplicates(out)
}

// NormalizePredictions converts parallel {labels, data} arrays. Unparseable
// labels fall back to now + index*86400 seconds: a deterministic placeholder
// that keeps index alignment with the label array the caller trusts.
func (n *Normalizer) NormalizePredictions(payload map[string]interface{}) models.Series {
	labels, _ := payload["labels"].([]interface{})
	values, _ := payload["data"].([]interface{})

	base := n.now().UTC().Unix()
	out := make(models.Series, 0, len(labels))
	dropped := 0
	for i, raw := range labels {
		v, ok := floatAt(values, i)
		if !ok {
			dropped++
			continue
		}
		ts := base + int64(i)*86400
		if label, ok := raw.(string); ok {
			if t, parsed := util.ParseDateLabel(label); parsed && t.Unix() > 0 {
				ts = t.Unix()
			}
		}
		out = append(out, models.SeriesPoint{Time: ts, Value: v})
	}
	if dropped > 0 {
		n.debug("prediction rows skipped during normalization", dropped)
	}
	return collapseDuplicates(out)
}

// recordTime extracts a timestamp from a record. Supports epoch seconds,
// ISO-8601, and dd-mm-yyyy strings. Non-positive epochs are sentinel
// "unknown time" values and are rejected.
func (n *Normalizer) recordTime(rec map[string]interface{}) (int64, bool) {
	for _, k := range timeKeys {
		raw, ok := rec[k]
		if !ok {
			continue
		}
		switch v := raw.(type) {
		case float64:
			ts := int64(v)
			if ts > 0 {
				return ts, true
			}
			return 0, false
		case string:
			if t, ok := util.ParseDateLabel(v); ok && t.Unix() > 0 {
				return t.Unix(), true
			}
			return 0, false
		}
	}
	return 0, false
}

// datasetTime resolves the time for row i: the Timestamp dataset (ms,
// floored to seconds) when present, otherwise the parsed label.
func (n *Normalizer) datasetTime(labels, timestamps []interface{}, i int) (int64, bool) {
	if i < len(timestamps) {
		if ms, ok := util.ParseFloat(timestamps[i]); ok {
			ts := int64(ms) / 1000
			if ts > 0 {
				return ts, true
			}
			return 0, false
		}
	}
	label, ok := labels[i].(string)
	if !ok {
		return 0, false
	}
	t, ok := util.ParseDateLabel(label)
	if !ok || t.Unix() <= 0 {
		return 0, false
	}
	return t.Unix(), true
}

// collapseDuplicates drops repeated timestamps within one batch, keeping the
// first position but the last-seen values.
func collapseDuplicates(s models.Series) models.Series {
	if len(s) < 2 {
		return s
	}
	index := make(map[int64]int, len(s))
	out := s[:0]
	for _, p := range s {
		if at, ok := index[p.Time]; ok {
			out[at] = p
			continue
		}
		index[p.Time] = len(out)
		out = append(out, p)
	}
	return out
}

func floatAt(set []interface{}, i int) (float64, bool) {
	if i >= len(set) {
		return 0, false
	}
	return util.ParseFloat(set[i])
}

func (n *Normalizer) warn(msg string) {
	if n.log != nil {
		n.log.Warn(msg)
	}
}

func (n *Normalizer) debug(msg string, count int) {
	if n.log != nil {
		n.log.Debug(msg, logger.Int("count", count))
	}
}
