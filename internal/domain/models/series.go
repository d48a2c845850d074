package models

// Known upstream field names carried on gold price records. The primary
// field doubles as the point value when present.
const (
	FieldBarBuy       = "bar_buy"
	FieldBarSell      = "bar_sell"
	FieldOrnamentBuy  = "ornament_buy"
	FieldOrnamentSell = "ornament_sell"
	FieldPriceChange  = "price_change"
	FieldPrice        = "price"
)

// SeriesPoint is the canonical unit of a normalized series.
// Time is epoch seconds UTC and is always > 0 once normalized; Value is the
// primary price; Fields carries any secondary prices present on the record.
type SeriesPoint struct {
	Time   int64              `json:"time"`
	Value  float64            `json:"value"`
	Fields map[string]float64 `json:"fields,omitempty"`
}

// Field returns a named field value. The primary value answers for
// FieldPrice so callers can treat all fields uniformly.
func (p SeriesPoint) Field(name string) (float64, bool) {
	if name == FieldPrice {
		return p.Value, true
	}
	v, ok := p.Fields[name]
	return v, ok
}

// Series is an ordered sequence of points, strictly non-decreasing by Time
// after sorting, with no duplicate timestamps within a single series.
type Series []SeriesPoint

// Timestamps returns the set of timestamps present in the series.
func (s Series) Timestamps() map[int64]struct{} {
	set := make(map[int64]struct{}, len(s))
	for _, p := range s {
		set[p.Time] = struct{}{}
	}
	return set
}

// Bucket is one aggregation period: the mean of contributing points per
// field, built fresh per call and never persisted.
type Bucket struct {
	Key     string             `json:"key"`
	Value   float64            `json:"value"`
	Count   int                `json:"count"`
	Fields  map[string]float64 `json:"fields,omitempty"`
	Members Series             `json:"-"`
}

// Quote is a formatted latest-price view for one category.
type Quote struct {
	Category  string  `json:"category"`
	Time      int64   `json:"time"`
	Price     float64 `json:"price"`
	PriceText string  `json:"price_text"`
	Diff      float64 `json:"diff"`
	Pct       float64 `json:"pct"`
	Change    string  `json:"change"`
}

// Tick is a single live price update from the streaming feed.
type Tick struct {
	Category  string
	Timestamp int64 // epoch seconds
	Price     float64
	Fields    map[string]float64
}
