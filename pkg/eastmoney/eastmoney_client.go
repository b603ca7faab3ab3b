package eastmoney

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fundtracker/internal/logger"
)

// Client talks to the public Eastmoney quote and fund endpoints. There is
// no api key; ut is the public web token every client sends.
type Client struct {
	HttpClient   *http.Client
	QuoteBaseUrl string
	FundBaseUrl  string
	ListBaseUrl  string
}

func NewClient() *Client {
	return &Client{
		HttpClient:   &http.Client{Timeout: 5 * time.Second},
		QuoteBaseUrl: "http://push2his.eastmoney.com",
		FundBaseUrl:  "https://fundmobapi.eastmoney.com",
		ListBaseUrl:  "http://fund.eastmoney.com",
	}
}

const utToken = "fa5fd1943c7b386f172d6893dbfba10b"

// SecId maps a suffixed security id ("600519.SH", "000858.SZ", "00700.HK")
// to the vendor's market-prefixed key. Bare A-share codes fall back to the
// exchange-by-prefix rule (0/3 list on Shenzhen).
func SecId(securityId string) string {
	if code, exchange, found := strings.Cut(securityId, "."); found {
		switch exchange {
		case "SZ":
			return "0." + code
		case "HK":
			return "116." + code
		default:
			return "1." + code
		}
	}
	if strings.HasPrefix(securityId, "0") || strings.HasPrefix(securityId, "3") {
		return "0." + securityId
	}
	return "1." + securityId
}

type Kline struct {
	Timestamp string
	Open      float64
	Close     float64
}

type klineResponse struct {
	Rc   int `json:"rc"`
	Data *struct {
		Code   string   `json:"code"`
		Name   string   `json:"name"`
		Klines []string `json:"klines"`
	} `json:"data"`
}

// GetKlines fetches candles for one security. klt 5 is the 5-minute
// intraday bar, klt 101 the daily bar; beg/end are compact dates like
// "20250718". A payload with rc != 0 or no rows means the vendor has
// nothing for the range and yields an empty result, not an error.
func (c *Client) GetKlines(securityId string, klt int, beg, end string) ([]Kline, error) {
	params := url.Values{}
	params.Set("secid", SecId(securityId))
	params.Set("ut", utToken)
	params.Set("klt", strconv.Itoa(klt))
	params.Set("fqt", "0")
	params.Set("beg", beg)
	params.Set("end", end)
	params.Set("fields1", "f1,f2,f3,f4,f5")
	params.Set("fields2", "f51,f52,f53")

	requestUrl := fmt.Sprintf("%s/api/qt/stock/kline/get?%s", c.QuoteBaseUrl, params.Encode())
	responseBytes, err := c.doGet(requestUrl)
	if err != nil {
		return nil, fmt.Errorf("kline request for %s failed: %w", securityId, err)
	}

	var responseJson klineResponse
	err = json.Unmarshal(responseBytes, &responseJson)
	if err != nil {
		return nil, fmt.Errorf("failed to decode kline response for %s: %w", securityId, err)
	}

	if responseJson.Rc != 0 || responseJson.Data == nil {
		return nil, nil
	}

	klines := make([]Kline, 0, len(responseJson.Data.Klines))
	for _, row := range responseJson.Data.Klines {
		parts := strings.Split(row, ",")
		if len(parts) < 3 {
			continue
		}
		open, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse kline row %q for %s: %w", row, securityId, err)
		}
		closePrice, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse kline row %q for %s: %w", row, securityId, err)
		}
		klines = append(klines, Kline{
			Timestamp: parts[0],
			Open:      open,
			Close:     closePrice,
		})
	}

	return klines, nil
}

type FundStock struct {
	Code   string
	Name   string
	Weight float64
}

type FundHoldings struct {
	ReportDate string
	Stocks     []FundStock
}

type investPositionResponse struct {
	Datas *struct {
		FundStocks []struct {
			GPDM string `json:"GPDM"`
			GPJC string `json:"GPJC"`
			JZBL string `json:"JZBL"`
		} `json:"fundStocks"`
	} `json:"Datas"`
	Expansion string `json:"Expansion"`
	ErrCode   int    `json:"ErrCode"`
	ErrMsg    string `json:"ErrMsg"`
}

// GetFundHoldings returns a fund's latest disclosed stock portfolio.
// Expansion on the wire is the disclosure's report date. A fund with no
// stock book (pure bond funds) comes back with zero stocks.
func (c *Client) GetFundHoldings(fundCode string) (*FundHoldings, error) {
	params := fundApiParams(fundCode)
	requestUrl := fmt.Sprintf("%s/FundMNewApi/FundMNInverstPosition?%s", c.FundBaseUrl, params.Encode())
	responseBytes, err := c.doGet(requestUrl)
	if err != nil {
		return nil, fmt.Errorf("holdings request for %s failed: %w", fundCode, err)
	}

	var responseJson investPositionResponse
	err = json.Unmarshal(responseBytes, &responseJson)
	if err != nil {
		return nil, fmt.Errorf("failed to decode holdings response for %s: %w", fundCode, err)
	}
	if responseJson.ErrCode != 0 {
		return nil, fmt.Errorf("holdings request for %s failed: %s", fundCode, responseJson.ErrMsg)
	}

	holdings := &FundHoldings{
		ReportDate: responseJson.Expansion,
	}
	if responseJson.Datas == nil {
		return holdings, nil
	}
	for _, stock := range responseJson.Datas.FundStocks {
		weight, err := strconv.ParseFloat(stock.JZBL, 64)
		if err != nil {
			logger.Warn("skipping holding %s of %s: bad weight %q", stock.GPDM, fundCode, stock.JZBL)
			continue
		}
		holdings.Stocks = append(holdings.Stocks, FundStock{
			Code:   stock.GPDM,
			Name:   stock.GPJC,
			Weight: weight,
		})
	}

	return holdings, nil
}

type AssetAllocation struct {
	ReportDate string
	StockPct   float64
}

type assetAllocationResponse struct {
	Datas []struct {
		FSRQ string `json:"FSRQ"`
		GP   string `json:"GP"`
	} `json:"Datas"`
	ErrCode int    `json:"ErrCode"`
	ErrMsg  string `json:"ErrMsg"`
}

// GetAssetAllocations returns the fund's stock position percent per report
// date, newest first as the vendor sends it. Rows the vendor cannot state
// ("--") are skipped.
func (c *Client) GetAssetAllocations(fundCode string) ([]AssetAllocation, error) {
	params := fundApiParams(fundCode)
	requestUrl := fmt.Sprintf("%s/FundMNewApi/FundMNAssetAllocationNew?%s", c.FundBaseUrl, params.Encode())
	responseBytes, err := c.doGet(requestUrl)
	if err != nil {
		return nil, fmt.Errorf("asset allocation request for %s failed: %w", fundCode, err)
	}

	var responseJson assetAllocationResponse
	err = json.Unmarshal(responseBytes, &responseJson)
	if err != nil {
		return nil, fmt.Errorf("failed to decode asset allocation response for %s: %w", fundCode, err)
	}
	if responseJson.ErrCode != 0 {
		return nil, fmt.Errorf("asset allocation request for %s failed: %s", fundCode, responseJson.ErrMsg)
	}

	allocations := make([]AssetAllocation, 0, len(responseJson.Datas))
	for _, row := range responseJson.Datas {
		stockPct, err := strconv.ParseFloat(row.GP, 64)
		if err != nil {
			continue
		}
		allocations = append(allocations, AssetAllocation{
			ReportDate: row.FSRQ,
			StockPct:   stockPct,
		})
	}

	return allocations, nil
}

type FundListEntry struct {
	Code   string
	Abbr   string
	Name   string
	Type   string
	Pinyin string
}

// GetFundList downloads the full open-fund code table. The payload is a
// javascript assignment ("var r = [[...]];"), not bare json, so the array
// gets cut out before decoding.
func (c *Client) GetFundList() ([]FundListEntry, error) {
	requestUrl := c.ListBaseUrl + "/js/fundcode_search.js"
	responseBytes, err := c.doGet(requestUrl)
	if err != nil {
		return nil, fmt.Errorf("fund list request failed: %w", err)
	}

	body := string(responseBytes)
	start := strings.Index(body, "[")
	end := strings.LastIndex(body, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("unexpected fund list payload")
	}

	var rows [][]string
	err = json.Unmarshal([]byte(body[start:end+1]), &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to decode fund list: %w", err)
	}

	entries := make([]FundListEntry, 0, len(rows))
	for _, row := range rows {
		if len(row) < 5 {
			continue
		}
		entries = append(entries, FundListEntry{
			Code:   row[0],
			Abbr:   row[1],
			Name:   row[2],
			Type:   row[3],
			Pinyin: row[4],
		})
	}

	return entries, nil
}

func fundApiParams(fundCode string) url.Values {
	params := url.Values{}
	params.Set("FCODE", fundCode)
	params.Set("deviceid", "Wap")
	params.Set("plat", "Wap")
	params.Set("product", "EFund")
	params.Set("version", "2.0.0")
	return params
}

func (c *Client) doGet(requestUrl string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, requestUrl, nil)
	if err != nil {
		return nil, err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode == 429 {
		logger.Warn("hit vendor rate limit. sleeping...")
		time.Sleep(60 * time.Second)
		return c.doGet(requestUrl)
	} else if response.StatusCode != 200 {
		return nil, fmt.Errorf("received status code %d", response.StatusCode)
	}

	return responseBytes, nil
}
