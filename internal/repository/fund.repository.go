package repository

import (
	"fmt"
	"strings"

	"fundtracker/internal/domain"
	"fundtracker/internal/logger"
	"fundtracker/pkg/eastmoney"
)

// FundRepository resolves a fund's disclosed facts: its stock holdings,
// the report date of the disclosure, and the stock position ratio.
type FundRepository interface {
	// GetHoldings returns the latest disclosed stock book and its report
	// date. A fund with no stock positions returns an empty slice, not an
	// error.
	GetHoldings(fundCode string) ([]domain.Holding, string, error)
	GetStockPositionRatio(fundCode string, reportDate string) (float64, error)
}

type fundRepositoryHandler struct {
	Client *eastmoney.Client
}

func NewFundRepository(client *eastmoney.Client) FundRepository {
	return fundRepositoryHandler{
		Client: client,
	}
}

func (h fundRepositoryHandler) GetHoldings(fundCode string) ([]domain.Holding, string, error) {
	response, err := h.Client.GetFundHoldings(fundCode)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get holdings for %s: %w", fundCode, err)
	}

	holdings := make([]domain.Holding, 0, len(response.Stocks))
	for _, stock := range response.Stocks {
		holdings = append(holdings, domain.Holding{
			SecurityId: withExchangeSuffix(stock.Code),
			Name:       stock.Name,
			Weight:     stock.Weight,
		})
	}

	return holdings, response.ReportDate, nil
}

func (h fundRepositoryHandler) GetStockPositionRatio(fundCode string, reportDate string) (float64, error) {
	allocations, err := h.Client.GetAssetAllocations(fundCode)
	if err != nil {
		return 0, fmt.Errorf("failed to get position ratio for %s: %w", fundCode, err)
	}
	if len(allocations) == 0 {
		return 0, fmt.Errorf("no asset allocation disclosed for %s", fundCode)
	}

	for _, allocation := range allocations {
		if allocation.ReportDate == reportDate {
			return allocation.StockPct, nil
		}
	}

	// newest first; fall back to it when the holdings disclosure and the
	// allocation disclosure are out of step
	latest := allocations[0]
	logger.Warn("no allocation for %s at %s, using %s", fundCode, reportDate, latest.ReportDate)
	return latest.StockPct, nil
}

// withExchangeSuffix restores the exchange-suffixed id the quote layer keys
// on. The disclosure api sends bare codes: 6-digit mainland listings split
// by prefix, 5-digit codes are Hong Kong, anything with letters is a US
// listing held through a QDII book.
func withExchangeSuffix(code string) string {
	if strings.Contains(code, ".") {
		return code
	}
	if strings.ContainsFunc(code, func(r rune) bool { return r < '0' || r > '9' }) {
		return code + ".US"
	}
	if len(code) == 5 {
		return code + ".HK"
	}
	if strings.HasPrefix(code, "0") || strings.HasPrefix(code, "3") {
		return code + ".SZ"
	}
	return code + ".SH"
}
