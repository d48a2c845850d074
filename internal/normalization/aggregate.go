package normalization

import (
	"fmt"
	"sort"
	"time"

	"GoldPulse/internal/domain/models"
	"GoldPulse/internal/domain/repository"
)

// Aggregate buckets a series into coarser periods, averaging each numeric
// field over the number of contributing points. A field absent on one member
// contributes 0 to that bucket's sum; a field absent on every member is not
// emitted for the bucket. GranAll performs no bucketing: each point becomes
// its own single-member bucket so the series passes through unchanged.
// Buckets are returned ascending by key, which matches time order given the
// zero-padded key formats.
func Aggregate(s models.Series, g repository.Granularity) []models.Bucket {
	if len(s) == 0 {
		return []models.Bucket{}
	}

	if g == repository.GranAll {
		out := make([]models.Bucket, 0, len(s))
		for _, p := range s {
			out = append(out, models.Bucket{
				Key:     time.Unix(p.Time, 0).UTC().Format(time.RFC3339),
				Value:   p.Value,
				Count:   1,
				Fields:  copyFields(p.Fields),
				Members: models.Series{p},
			})
		}
		return out
	}

	type accum struct {
		valueSum  float64
		fieldSums map[string]float64
		members   models.Series
	}
	groups := make(map[string]*accum)
	for _, p := range s {
		key := BucketKey(p.Time, g)
		a, ok := groups[key]
		if !ok {
			a = &accum{}
			groups[key] = a
		}
		a.valueSum += p.Value
		for f, v := range p.Fields {
			if a.fieldSums == nil {
				a.fieldSums = make(map[string]float64)
			}
			a.fieldSums[f] += v
		}
		a.members = append(a.members, p)
	}

	out := make([]models.Bucket, 0, len(groups))
	for key, a := range groups {
		count := len(a.members)
		b := models.Bucket{
			Key:     key,
			Value:   a.valueSum / float64(count),
			Count:   count,
			Members: a.members,
		}
		for f, sum := range a.fieldSums {
			if b.Fields == nil {
				b.Fields = make(map[string]float64)
			}
			b.Fields[f] = sum / float64(count)
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// BucketKey derives the aggregation key for a timestamp, in UTC.
// Week numbering is the simplified floor(dayOfYear/7)+1 scheme, not
// ISO-8601 weeks; downstream consumers key on this format.
func BucketKey(ts int64, g repository.Granularity) string {
	t := time.Unix(ts, 0).UTC()
	switch g {
	case repository.GranDay:
		return t.Format("2006-01-02")
	case repository.GranWeek:
		week := t.YearDay()/7 + 1
		return fmt.Sprintf("%d-W%02d", t.Year(), week)
	case repository.GranMonth:
		return fmt.Sprintf("%d-%02d", t.Year(), int(t.Month()))
	case repository.GranQuarter:
		return fmt.Sprintf("%d-Q%d", t.Year(), (int(t.Month())-1)/3+1)
	case repository.GranYear:
		return fmt.Sprintf("%d", t.Year())
	default:
		return t.Format("2006-01-02")
	}
}

func copyFields(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
