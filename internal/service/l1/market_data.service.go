package l1_service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"fundtracker/internal/domain"
	"fundtracker/internal/logger"
	"fundtracker/internal/repository"
	"fundtracker/pkg/tradecal"
)

// MarketDataService fans quote lookups out across a fund's holdings. It
// routes each security to the vendor that lists it and treats per-security
// failures as missing data, so one suspended or unknown listing never
// fails a whole valuation.
type MarketDataService interface {
	// GetPreviousTradeDate returns the last A-share trading date strictly
	// before today ("YYYY-MM-DD").
	GetPreviousTradeDate(today string) (string, error)
	GetPreviousCloses(ctx context.Context, securityIds []string, tradeDate string) (map[string]float64, error)
	GetIntradaySeriesBulk(ctx context.Context, securityIds []string, day string) (map[string]domain.IntradaySeries, error)
}

type marketDataServiceHandler struct {
	QuoteRepository      repository.QuoteRepository
	AlpacaRepository     repository.AlpacaRepository
	YahooQuoteRepository repository.YahooQuoteRepository
}

func NewMarketDataService(quoteRepository repository.QuoteRepository, alpacaRepository repository.AlpacaRepository, yahooQuoteRepository repository.YahooQuoteRepository) MarketDataService {
	return marketDataServiceHandler{
		QuoteRepository:      quoteRepository,
		AlpacaRepository:     alpacaRepository,
		YahooQuoteRepository: yahooQuoteRepository,
	}
}

func (h marketDataServiceHandler) GetPreviousTradeDate(today string) (string, error) {
	end, err := time.Parse(time.DateOnly, today)
	if err != nil {
		return "", fmt.Errorf("failed to parse date %s: %w", today, err)
	}
	start := end.AddDate(0, 0, -30)

	calendar, err := tradecal.GetTradingDates(start, end)
	if err != nil {
		// the calendar feed is down; plain yesterday keeps valuations
		// serving, at worst with a stale baseline over a holiday
		fallback := end.AddDate(0, 0, -1).Format(time.DateOnly)
		logger.Warn("trading calendar unavailable, falling back to %s: %s", fallback, err.Error())
		return fallback, nil
	}

	if date, ok := calendar.LastBefore(today); ok {
		return date, nil
	}

	fallback := end.AddDate(0, 0, -1).Format(time.DateOnly)
	logger.Warn("no trading date before %s in calendar window, falling back to %s", today, fallback)
	return fallback, nil
}

// quoteRepositoryFor routes a security to the vendor that lists it. US
// listings in a QDII book are served by alpaca when it is configured.
func (h marketDataServiceHandler) quoteRepositoryFor(securityId string) repository.QuoteRepository {
	if strings.HasSuffix(securityId, ".US") && h.AlpacaRepository != nil {
		return h.AlpacaRepository
	}
	return h.QuoteRepository
}

func (h marketDataServiceHandler) GetPreviousCloses(ctx context.Context, securityIds []string, tradeDate string) (map[string]float64, error) {
	log := logger.FromContext(ctx)
	numGoroutines := 10

	inputCh := make(chan string, len(securityIds))

	var wg sync.WaitGroup
	for _, id := range securityIds {
		wg.Add(1)
		inputCh <- id
	}
	close(inputCh)

	var mu sync.Mutex
	closes := map[string]float64{}

	for i := 0; i < numGoroutines; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case securityId, ok := <-inputCh:
					if !ok {
						return
					}
					price, found, err := h.getPreviousClose(securityId, tradeDate)
					if err != nil {
						log.Warnf("failed to get close for %s: %s", securityId, err.Error())
					} else if found {
						mu.Lock()
						closes[securityId] = price
						mu.Unlock()
					}
					wg.Done()
				}
			}
		}()
	}

	wg.Wait()

	return closes, nil
}

func (h marketDataServiceHandler) getPreviousClose(securityId string, tradeDate string) (float64, bool, error) {
	price, found, err := h.quoteRepositoryFor(securityId).GetPreviousClose(securityId, tradeDate)
	if err != nil || found {
		return price, found, err
	}

	// offshore listings are patchy in the primary feed around holidays
	if h.YahooQuoteRepository != nil &&
		(strings.HasSuffix(securityId, ".HK") || strings.HasSuffix(securityId, ".US")) {
		return h.YahooQuoteRepository.GetPreviousClose(securityId, tradeDate)
	}

	return 0, false, nil
}

func (h marketDataServiceHandler) GetIntradaySeriesBulk(ctx context.Context, securityIds []string, day string) (map[string]domain.IntradaySeries, error) {
	log := logger.FromContext(ctx)
	numGoroutines := 10

	inputCh := make(chan string, len(securityIds))

	var wg sync.WaitGroup
	for _, id := range securityIds {
		wg.Add(1)
		inputCh <- id
	}
	close(inputCh)

	var mu sync.Mutex
	series := map[string]domain.IntradaySeries{}

	for i := 0; i < numGoroutines; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case securityId, ok := <-inputCh:
					if !ok {
						return
					}
					samples, err := h.quoteRepositoryFor(securityId).GetIntradaySeries(securityId, day)
					if err != nil {
						log.Warnf("failed to get intraday series for %s: %s", securityId, err.Error())
					} else {
						mu.Lock()
						series[securityId] = samples
						mu.Unlock()
					}
					wg.Done()
				}
			}
		}()
	}

	wg.Wait()

	return series, nil
}
