package tradecal

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"
)

// BaseUrl points at the Shenzhen exchange's public trading-calendar feed,
// which covers the whole A-share market.
var BaseUrl = "https://www.szse.cn"

type TradingCalendar struct {
	Dates []string
}

// LastBefore returns the latest trading date strictly before the given
// "YYYY-MM-DD" date.
func (tc TradingCalendar) LastBefore(date string) (string, bool) {
	for i := len(tc.Dates) - 1; i >= 0; i-- {
		if tc.Dates[i] < date {
			return tc.Dates[i], true
		}
	}
	return "", false
}

func (tc TradingCalendar) Contains(date string) bool {
	for _, d := range tc.Dates {
		if d == date {
			return true
		}
	}
	return false
}

type monthCalendarResponse struct {
	Data []struct {
		Jyrq string `json:"jyrq"`
		Jybz string `json:"jybz"`
	} `json:"data"`
}

// GetTradingDates collects the trading dates between start and end,
// inclusive, sorted ascending. The exchange feed is month-granular, so one
// request is made per calendar month in the range.
func GetTradingDates(start, end time.Time) (*TradingCalendar, error) {
	client := http.DefaultClient

	startStr := start.Format(time.DateOnly)
	endStr := end.Format(time.DateOnly)

	dates := []string{}
	for month := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC); !month.After(end); month = month.AddDate(0, 1, 0) {
		url := fmt.Sprintf("%s/api/report/exchange/onepersistenthour/monthList?month=%s", BaseUrl, month.Format("2006-01"))
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		response, err := client.Do(req)
		if err != nil {
			return nil, err
		}

		responseBytes, err := io.ReadAll(response.Body)
		response.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
		}
		if response.StatusCode != 200 {
			return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
		}

		responseJson := monthCalendarResponse{}
		err = json.Unmarshal(responseBytes, &responseJson)
		if err != nil {
			return nil, fmt.Errorf("failed to decode calendar month %s: %w", month.Format("2006-01"), err)
		}

		for _, day := range responseJson.Data {
			if day.Jybz != "1" {
				continue
			}
			if day.Jyrq >= startStr && day.Jyrq <= endStr {
				dates = append(dates, day.Jyrq)
			}
		}
	}

	sort.Strings(dates)
	return &TradingCalendar{Dates: dates}, nil
}
