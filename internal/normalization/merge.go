package normalization

import "GoldPulse/internal/domain/models"

// Merge combines a previously normalized series with a newly fetched one.
// On timestamp collision the existing point wins; the incoming duplicate is
// discarded, never overwritten. The union is re-sorted ascending. Either
// input may be nil or empty, in which case the other is returned sorted
// (merge is an identity element operation on empty input).
func Merge(existing, incoming models.Series) models.Series {
	if len(existing) == 0 {
		return SortAscending(incoming)
	}
	if len(incoming) == 0 {
		return SortAscending(existing)
	}

	have := existing.Timestamps()
	out := make(models.Series, len(existing), len(existing)+len(incoming))
	copy(out, existing)
	for _, p := range incoming {
		if _, dup := have[p.Time]; dup {
			continue
		}
		have[p.Time] = struct{}{}
		out = append(out, p)
	}
	return SortAscending(out)
}
