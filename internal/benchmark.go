package internal

import (
	"fmt"
	"sort"

	"fundtracker/internal/domain"
	"fundtracker/internal/repository"
	"fundtracker/internal/util"
)

// CSI300 is the default comparison index for the fund page.
const CSI300 = "000300.SH"

type BenchmarkHandler struct {
	QuoteRepository repository.QuoteRepository
}

// GetIntradayChange gets an index's intraday samples for a day
// and converts them to % change from the first sample
func (h BenchmarkHandler) GetIntradayChange(
	indexCode string,
	day string,
) ([]domain.ValuationPoint, error) {
	if indexCode == "" {
		indexCode = CSI300
	}
	series, err := h.QuoteRepository.GetIntradaySeries(indexCode, day)
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("no samples found for index %s on %s", indexCode, day)
	}
	return intradayChangeSeries(series), nil
}

func intradayChangeSeries(samples domain.IntradaySeries) []domain.ValuationPoint {
	sorted := make(domain.IntradaySeries, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	base := sorted[0].Price
	out := make([]domain.ValuationPoint, 0, len(sorted))
	for _, sample := range sorted {
		value := 0.0
		if base > 0 {
			value = util.RoundTo((sample.Price-base)/base*100, 4)
		}
		out = append(out, domain.ValuationPoint{
			Timestamp: sample.Timestamp,
			Value:     value,
		})
	}

	return out
}
