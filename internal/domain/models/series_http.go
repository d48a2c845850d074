package models

import "time"

// Requests for series HTTP endpoints. Defined in domain for consistency and reuse.

type SeriesRequest struct {
	Category string `query:"category" json:"category" default:"gold_th" validate:"oneof=gold_th gold_us currency"`
	Frame    string `query:"frame" json:"frame" default:"1m" validate:"oneof=7d 15d 1m 3m 1y 3y all"`
	GroupBy  string `query:"group_by" json:"group_by" default:"daily" validate:"oneof=daily monthly"`
	Max      int    `query:"max" json:"max" default:"1000" validate:"gte=1,lte=20000"`
	Cache    bool   `query:"cache" json:"cache" default:"true"`

	// optional window bounds, parsed by the handler from from/to params
	From time.Time `query:"-" json:"-"`
	To   time.Time `query:"-" json:"-"`
}

type AggregateRequest struct {
	Category    string `query:"category" json:"category" default:"gold_th" validate:"oneof=gold_th gold_us currency"`
	Frame       string `query:"frame" json:"frame" default:"1y" validate:"oneof=7d 15d 1m 3m 1y 3y all"`
	Granularity string `query:"granularity" json:"granularity" default:"month" validate:"oneof=day week month quarter year all"`
}

type PredictionsRequest struct {
	Model string `query:"model" json:"model" default:"default" validate:"min=1,max=64"`
	Max   int    `query:"max" json:"max" default:"365" validate:"gte=1,lte=5000"`
}

type NearestRequest struct {
	Category string `query:"category" json:"category" default:"gold_th" validate:"oneof=gold_th gold_us currency"`
	Frame    string `query:"frame" json:"frame" default:"1m" validate:"oneof=7d 15d 1m 3m 1y 3y all"`
	T        int64  `query:"t" json:"t" validate:"required,gt=0"`
}

type TicksRequest struct {
	Category string `query:"category" json:"category" default:"gold_th" validate:"oneof=gold_th gold_us currency"`
	Limit    int    `query:"limit" json:"limit" default:"1000" validate:"gte=1,lte=20000"`
}

type QuoteRequest struct {
	Category string `query:"category" json:"category" default:"gold_th" validate:"oneof=gold_th gold_us currency"`
	Currency string `query:"currency" json:"currency" default:"THB" validate:"oneof=THB USD"`
	Locale   string `query:"locale" json:"locale" default:"th" validate:"oneof=th en"`
}
