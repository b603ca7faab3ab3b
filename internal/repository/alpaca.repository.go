package repository

import (
	"fmt"
	"strings"
	"time"

	"fundtracker/internal/domain"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
)

// AlpacaRepository serves quotes for US-listed holdings (QDII books)
// through the same contract as the A-share quote repository, so the market
// data service can route purely by listing.
type AlpacaRepository interface {
	QuoteRepository
}

func NewAlpacaRepository(apiKey, apiSecret string, endpoint string) (AlpacaRepository, error) {
	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		BaseURL:   endpoint,
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	// all timestamps render on the mainland clock so a mixed book shares
	// one timeline
	renderLoc, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		return nil, fmt.Errorf("failed to load render timezone: %w", err)
	}

	return &alpacaRepositoryHandler{
		MdClient:  mdClient,
		renderLoc: renderLoc,
	}, nil
}

type alpacaRepositoryHandler struct {
	MdClient  *marketdata.Client
	renderLoc *time.Location
}

func (h *alpacaRepositoryHandler) GetPreviousClose(securityId string, tradeDate string) (float64, bool, error) {
	dayStart, err := time.Parse("2006-01-02", tradeDate)
	if err != nil {
		return 0, false, fmt.Errorf("failed to parse trade date %s: %w", tradeDate, err)
	}

	bars, err := h.MdClient.GetBars(alpacaSymbol(securityId), marketdata.GetBarsRequest{
		TimeFrame:  marketdata.OneDay,
		Adjustment: marketdata.Raw,
		Start:      dayStart,
		End:        dayStart.Add(24 * time.Hour),
	})
	if err != nil {
		return 0, false, fmt.Errorf("failed to get daily bar for %s: %w", securityId, err)
	}
	if len(bars) == 0 {
		return 0, false, nil
	}

	return bars[len(bars)-1].Close, true, nil
}

func (h *alpacaRepositoryHandler) GetIntradaySeries(securityId string, day string) (domain.IntradaySeries, error) {
	dayStart, err := time.Parse("2006-01-02", day)
	if err != nil {
		return nil, fmt.Errorf("failed to parse day %s: %w", day, err)
	}

	bars, err := h.MdClient.GetBars(alpacaSymbol(securityId), marketdata.GetBarsRequest{
		TimeFrame:  marketdata.NewTimeFrame(5, marketdata.Min),
		Adjustment: marketdata.Raw,
		Start:      dayStart,
		End:        dayStart.Add(24 * time.Hour),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get intraday bars for %s: %w", securityId, err)
	}

	series := make(domain.IntradaySeries, 0, len(bars))
	for _, bar := range bars {
		series = append(series, domain.IntradaySample{
			Timestamp: bar.Timestamp.In(h.renderLoc).Format("2006-01-02 15:04"),
			Price:     bar.Close,
		})
	}

	return series, nil
}

func alpacaSymbol(securityId string) string {
	return strings.TrimSuffix(securityId, ".US")
}
