package repository

import (
	"fmt"

	"fundtracker/internal/domain"
	"fundtracker/internal/util"
	"fundtracker/pkg/eastmoney"
)

// QuoteRepository serves market quotes for one exchange-listed security at
// a time. Each call is one vendor request, which is what the rate-limit
// decorator counts.
type QuoteRepository interface {
	// GetPreviousClose returns the daily close at tradeDate. found is
	// false when the vendor has no bar for that day (suspension, new
	// listing); that is not an error.
	GetPreviousClose(securityId string, tradeDate string) (float64, bool, error)
	// GetIntradaySeries returns the day's 5-minute samples, possibly
	// empty.
	GetIntradaySeries(securityId string, day string) (domain.IntradaySeries, error)
}

type quoteRepositoryHandler struct {
	Client *eastmoney.Client
}

func NewQuoteRepository(client *eastmoney.Client) QuoteRepository {
	return quoteRepositoryHandler{
		Client: client,
	}
}

func (h quoteRepositoryHandler) GetPreviousClose(securityId string, tradeDate string) (float64, bool, error) {
	compact := util.CompactDate(tradeDate)
	klines, err := h.Client.GetKlines(securityId, 101, compact, compact)
	if err != nil {
		return 0, false, fmt.Errorf("failed to get close for %s at %s: %w", securityId, tradeDate, err)
	}
	if len(klines) == 0 {
		return 0, false, nil
	}
	return klines[len(klines)-1].Close, true, nil
}

func (h quoteRepositoryHandler) GetIntradaySeries(securityId string, day string) (domain.IntradaySeries, error) {
	compact := util.CompactDate(day)
	klines, err := h.Client.GetKlines(securityId, 5, compact, compact)
	if err != nil {
		return nil, fmt.Errorf("failed to get intraday series for %s: %w", securityId, err)
	}

	series := make(domain.IntradaySeries, 0, len(klines))
	for _, kline := range klines {
		series = append(series, domain.IntradaySample{
			Timestamp: kline.Timestamp,
			Price:     kline.Close,
		})
	}

	return series, nil
}
