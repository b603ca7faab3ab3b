package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// YahooQuoteRepository is the previous-close fallback for listings the
// primary vendor cannot price, mostly Hong Kong lines of mixed books.
type YahooQuoteRepository interface {
	GetPreviousClose(securityId string, tradeDate string) (float64, bool, error)
}

type yahooQuoteRepositoryHandler struct{}

func NewYahooQuoteRepository() YahooQuoteRepository {
	return yahooQuoteRepositoryHandler{}
}

func (h yahooQuoteRepositoryHandler) GetPreviousClose(securityId string, tradeDate string) (float64, bool, error) {
	day, err := time.Parse("2006-01-02", tradeDate)
	if err != nil {
		return 0, false, fmt.Errorf("failed to parse trade date %s: %w", tradeDate, err)
	}
	dayAfter := day.AddDate(0, 0, 1)

	symbol := yahooSymbol(securityId)
	iter := chart.Get(&chart.Params{
		Symbol:   symbol,
		Interval: datetime.OneDay,
		Start:    datetime.New(&day),
		End:      datetime.New(&dayAfter),
	})

	closePrice := 0.0
	found := false
	for iter.Next() {
		closePrice = iter.Bar().Close.InexactFloat64()
		found = true
	}
	if err := iter.Err(); err != nil {
		return 0, false, fmt.Errorf("yahoo chart for %s failed: %w", symbol, err)
	}

	return closePrice, found, nil
}

// yahooSymbol maps exchange-suffixed ids to yahoo's convention: Shanghai
// is .SS, Hong Kong wants 4-digit codes, US symbols are bare.
func yahooSymbol(securityId string) string {
	code, exchange, ok := strings.Cut(securityId, ".")
	if !ok {
		return securityId
	}
	switch exchange {
	case "SH":
		return code + ".SS"
	case "SZ":
		return code + ".SZ"
	case "HK":
		if len(code) == 5 && strings.HasPrefix(code, "0") {
			code = code[1:]
		}
		return code + ".HK"
	case "US":
		return code
	}
	return securityId
}
