package internal

import (
	"sort"

	"fundtracker/internal/domain"
	"fundtracker/internal/util"
)

// ValuationCalculator estimates a fund's intraday return from its disclosed
// holdings, per-security previous closes, and intraday samples. It performs
// no I/O and holds no state beyond its construction inputs, so one instance
// per request is cheap and concurrent use of separate instances is safe.
//
// Every input is treated as best-effort market data: a missing or
// non-positive previous close, an absent sample series, or a zero total
// weight all degrade to a zero contribution rather than an error.
type ValuationCalculator struct {
	holdings      []domain.Holding
	previousClose map[string]float64
	scaleFactor   float64
}

// NewValuationCalculator builds a calculator for one fund snapshot.
// positionRatio is the disclosed stock position as a percent of NAV, in the
// same units as the holding weights. The scale factor rescales the sum of
// disclosed weights to the full position ratio, since top-holdings
// disclosures rarely cover the whole equity book.
func NewValuationCalculator(holdings []domain.Holding, previousClose map[string]float64, positionRatio float64) *ValuationCalculator {
	totalWeight := 0.0
	for _, h := range holdings {
		totalWeight += h.Weight
	}

	scaleFactor := 0.0
	if totalWeight > 0 {
		scaleFactor = positionRatio / totalWeight
	}

	return &ValuationCalculator{
		holdings:      holdings,
		previousClose: previousClose,
		scaleFactor:   scaleFactor,
	}
}

func (c *ValuationCalculator) ScaleFactor() float64 {
	return c.scaleFactor
}

// SecurityReturn computes one security's percent change against its
// previous close. An unknown or non-positive close means "no information"
// and yields 0.
func (c *ValuationCalculator) SecurityReturn(securityId string, currentPrice float64) float64 {
	prev, ok := c.previousClose[securityId]
	if !ok || prev <= 0 {
		return 0
	}
	return (currentPrice - prev) / prev * 100
}

// ComputeValuation aggregates per-security samples into the fund's
// estimated return series. The output timeline is exactly the sorted union
// of every timestamp observed in samplesBySecurity; no timestamp is
// invented or dropped. Securities without a sample at a given timestamp are
// forward-filled from their last observed price, seeded with the previous
// close (or 0 when unknown).
func (c *ValuationCalculator) ComputeValuation(samplesBySecurity map[string]domain.IntradaySeries) []domain.ValuationPoint {
	timeline := canonicalTimeline(samplesBySecurity)

	sampleAt := make(map[string]map[string]float64, len(samplesBySecurity))
	for securityId, series := range samplesBySecurity {
		prices := make(map[string]float64, len(series))
		for _, s := range series {
			prices[s.Timestamp] = s.Price
		}
		sampleAt[securityId] = prices
	}

	// last known price per security, seeded with the previous close
	lastPrice := make(map[string]float64, len(c.holdings))
	for _, h := range c.holdings {
		lastPrice[h.SecurityId] = c.previousClose[h.SecurityId]
	}

	points := make([]domain.ValuationPoint, 0, len(timeline))
	for _, timestamp := range timeline {
		total := 0.0
		for _, h := range c.holdings {
			if price, ok := sampleAt[h.SecurityId][timestamp]; ok {
				lastPrice[h.SecurityId] = price
			}
			securityReturn := c.SecurityReturn(h.SecurityId, lastPrice[h.SecurityId])
			total += securityReturn * h.Weight * c.scaleFactor / 100
		}
		points = append(points, domain.ValuationPoint{
			Timestamp: timestamp,
			Value:     util.RoundTo(total, 4),
		})
	}

	return points
}

// Summarize derives current/max/min stats from a valuation series. Ties on
// the extrema resolve to the earliest timestamp. Returns nil for an empty
// series.
func (c *ValuationCalculator) Summarize(series []domain.ValuationPoint) *domain.ValuationStats {
	if len(series) == 0 {
		return nil
	}

	stats := &domain.ValuationStats{
		Current: series[len(series)-1].Value,
		Max:     series[0].Value,
		Min:     series[0].Value,
		MaxTime: series[0].Timestamp,
		MinTime: series[0].Timestamp,
	}
	for _, p := range series[1:] {
		if p.Value > stats.Max {
			stats.Max = p.Value
			stats.MaxTime = p.Timestamp
		}
		if p.Value < stats.Min {
			stats.Min = p.Value
			stats.MinTime = p.Timestamp
		}
	}

	return stats
}

func canonicalTimeline(samplesBySecurity map[string]domain.IntradaySeries) []string {
	seen := map[string]bool{}
	timeline := []string{}
	for _, series := range samplesBySecurity {
		for _, s := range series {
			if !seen[s.Timestamp] {
				seen[s.Timestamp] = true
				timeline = append(timeline, s.Timestamp)
			}
		}
	}
	sort.Strings(timeline)
	return timeline
}
