package api

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fundtracker/internal/domain"
	l2_service "fundtracker/internal/service/l2"
	"fundtracker/internal/util"

	"github.com/gin-gonic/gin"
)

type valuationRequest struct {
	FundCode string `json:"fund_code"`
}

type valuationHoldingResponse struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Ratio       float64  `json:"ratio"`
	PrevClose   *float64 `json:"prev_close"`
	LatestPrice float64  `json:"latest_price"`
	ChangePct   *float64 `json:"change_pct"`
}

type valuationPointResponse struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

type valuationStatsResponse struct {
	Current float64 `json:"current"`
	Max     float64 `json:"max"`
	Min     float64 `json:"min"`
	MaxTime string  `json:"max_time"`
	MinTime string  `json:"min_time"`
}

type valuationResponse struct {
	Success       bool                       `json:"success"`
	FundCode      string                     `json:"fund_code"`
	ReportDate    string                     `json:"report_date"`
	StockPosition float64                    `json:"stock_position"`
	HoldingsCount int                        `json:"holdings_count"`
	ValuationData []valuationPointResponse   `json:"valuation_data"`
	Stats         *valuationStatsResponse    `json:"stats"`
	Holdings      []valuationHoldingResponse `json:"holdings"`
}

func (m ApiHandler) valuation(c *gin.Context) {
	profile := requestProfile(c)
	ctx := context.WithValue(c.Request.Context(), domain.ContextProfileKey, profile)

	var requestBody valuationRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	fundCode := strings.TrimSpace(requestBody.FundCode)
	if fundCode == "" {
		returnErrorJsonCode(fmt.Errorf("missing fund_code"), c, 400)
		return
	}

	result, err := m.ValuationService.GetValuation(ctx, fundCode)
	if errors.Is(err, l2_service.ErrNoHoldings) {
		returnErrorJsonCode(err, c, 404)
		return
	} else if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, buildValuationResponse(result))
}

func buildValuationResponse(result *l2_service.ValuationResult) valuationResponse {
	out := valuationResponse{
		Success:       true,
		FundCode:      result.FundCode,
		ReportDate:    result.ReportDate,
		StockPosition: util.RoundTo(result.PositionRatio, 2),
		HoldingsCount: len(result.Holdings),
		ValuationData: []valuationPointResponse{},
		Holdings:      []valuationHoldingResponse{},
	}

	for _, p := range result.Points {
		out.ValuationData = append(out.ValuationData, valuationPointResponse{
			Time:  p.Timestamp,
			Value: p.Value,
		})
	}

	if result.Stats != nil {
		out.Stats = &valuationStatsResponse{
			Current: result.Stats.Current,
			Max:     result.Stats.Max,
			Min:     result.Stats.Min,
			MaxTime: result.Stats.MaxTime,
			MinTime: result.Stats.MinTime,
		}
	}

	for _, h := range result.Holdings {
		holding := valuationHoldingResponse{
			Code:        h.SecurityId,
			Name:        h.Name,
			Ratio:       util.RoundTo(h.Weight, 4),
			LatestPrice: util.RoundTo(h.LatestPrice, 3),
		}
		if h.PrevClose != nil {
			v := util.RoundTo(*h.PrevClose, 3)
			holding.PrevClose = &v
		}
		if h.ChangePct != nil {
			v := util.RoundTo(*h.ChangePct, 2)
			holding.ChangePct = &v
		}
		out.Holdings = append(out.Holdings, holding)
	}

	return out
}
