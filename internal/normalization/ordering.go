package normalization

import (
	"sort"

	"GoldPulse/internal/domain/models"
)

// SortAscending returns a copy of the series ordered by time ascending.
// The sort is stable: equal timestamps retain their relative input order.
// The input is never mutated.
func SortAscending(s models.Series) models.Series {
	if len(s) == 0 {
		return models.Series{}
	}
	out := make(models.Series, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}
