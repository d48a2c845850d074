package lookup

import "GoldPulse/internal/domain/models"

// NearestValue returns the value of the point closest in time to target,
// used for interactive crosshair/tooltip lookups. An exact timestamp match
// wins outright; otherwise the minimal |time-target| point is chosen, with
// distance ties going to the lower index (the earlier timestamp, for an
// ascending series). Points without a positive timestamp are skipped rather
// than aborting the scan. Returns false when the series is empty or every
// candidate is malformed.
func NearestValue(s models.Series, target int64) (float64, bool) {
	found := false
	var best float64
	var bestDist int64
	for _, p := range s {
		if p.Time <= 0 {
			continue
		}
		if p.Time == target {
			return p.Value, true
		}
		dist := p.Time - target
		if dist < 0 {
			dist = -dist
		}
		if !found || dist < bestDist {
			found = true
			best = p.Value
			bestDist = dist
		}
	}
	return best, found
}

// NearestPoint is NearestValue but returns the whole point, for callers
// that need the secondary fields as well.
func NearestPoint(s models.Series, target int64) (models.SeriesPoint, bool) {
	found := false
	var best models.SeriesPoint
	var bestDist int64
	for _, p := range s {
		if p.Time <= 0 {
			continue
		}
		if p.Time == target {
			return p, true
		}
		dist := p.Time - target
		if dist < 0 {
			dist = -dist
		}
		if !found || dist < bestDist {
			found = true
			best = p
			bestDist = dist
		}
	}
	return best, found
}
