package route

import (
	"cmp"
	"slices"
)

const (
	HOP_PENALTY       = 0.1
	COMPOSITE_PENALTY = 0.15
)

// score rates every route relative to the candidate set. Fee, time and
// confidence are min-max normalised and a dimension without spread scores 1.
func score(routes []Route, criteria Criteria) {
	if len(routes) == 0 {
		return
	}

	minFee, maxFee := routes[0].EstimatedFee, routes[0].EstimatedFee
	minTime, maxTime := routes[0].EstimatedTime, routes[0].EstimatedTime
	minConf, maxConf := routes[0].Confidence, routes[0].Confidence
	for _, r := range routes[1:] {
		minFee, maxFee = min(minFee, r.EstimatedFee), max(maxFee, r.EstimatedFee)
		minTime, maxTime = min(minTime, r.EstimatedTime), max(maxTime, r.EstimatedTime)
		minConf, maxConf = min(minConf, r.Confidence), max(maxConf, r.Confidence)
	}

	for i := range routes {
		r := &routes[i]
		costScore := 1 - normalize(r.EstimatedFee, minFee, maxFee)
		speedScore := 1 - normalize(float64(r.EstimatedTime), float64(minTime), float64(maxTime))
		reliabilityScore := normalize(r.Confidence, minConf, maxConf)
		if maxConf == minConf {
			reliabilityScore = 1
		}

		s := criteria.Cost*costScore +
			criteria.Speed*speedScore +
			criteria.Reliability*reliabilityScore +
			r.Bonus -
			HOP_PENALTY*float64(r.Hops-1)
		if r.Hops > 1 && len(r.Protocols) > 1 {
			s -= COMPOSITE_PENALTY
		}
		r.Score = clamp(s)
	}
}

func normalize(v, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	return (v - lo) / (hi - lo)
}

func clamp(v float64) float64 {
	return min(max(v, 0), 1)
}

// rank orders routes by score with ties broken by time, fee and id
func rank(routes []Route) {
	slices.SortStableFunc(routes, func(a, b Route) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if c := cmp.Compare(a.EstimatedTime, b.EstimatedTime); c != 0 {
			return c
		}
		if c := cmp.Compare(a.EstimatedFee, b.EstimatedFee); c != 0 {
			return c
		}
		return cmp.Compare(a.ID(), b.ID())
	})
}
