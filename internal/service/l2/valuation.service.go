package l2_service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"fundtracker/internal"
	"fundtracker/internal/domain"
	"fundtracker/internal/repository"
	l1_service "fundtracker/internal/service/l1"
)

// ErrNoHoldings marks a fund whose latest disclosure has no stock
// positions. The api maps it to a 404 instead of a server fault.
var ErrNoHoldings = errors.New("fund has no disclosed stock holdings")

type ValuationResult struct {
	FundCode      string
	ReportDate    string
	PositionRatio float64
	Holdings      []domain.HoldingDetail
	Points        []domain.ValuationPoint
	Stats         *domain.ValuationStats
}

// ValuationService runs the whole estimation pipeline for one fund:
// disclosure, baseline closes, intraday samples, then the calculator.
type ValuationService interface {
	GetValuation(ctx context.Context, fundCode string) (*ValuationResult, error)
}

type valuationServiceHandler struct {
	FundRepository    repository.FundRepository
	MarketDataService l1_service.MarketDataService
	renderLoc         *time.Location
}

func NewValuationService(fundRepository repository.FundRepository, marketDataService l1_service.MarketDataService) (ValuationService, error) {
	renderLoc, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		return nil, fmt.Errorf("failed to load render timezone: %w", err)
	}

	return valuationServiceHandler{
		FundRepository:    fundRepository,
		MarketDataService: marketDataService,
		renderLoc:         renderLoc,
	}, nil
}

func (h valuationServiceHandler) GetValuation(ctx context.Context, fundCode string) (*ValuationResult, error) {
	profile, endProfile := domain.GetProfile(ctx)
	defer endProfile()

	_, endSpan := profile.StartNewSpan("get holdings")
	holdings, reportDate, err := h.FundRepository.GetHoldings(fundCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load disclosure for %s: %w", fundCode, err)
	}
	if len(holdings) == 0 {
		return nil, fmt.Errorf("%s: %w", fundCode, ErrNoHoldings)
	}

	_, endSpan = profile.StartNewSpan("get position ratio")
	positionRatio, err := h.FundRepository.GetStockPositionRatio(fundCode, reportDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load position ratio for %s: %w", fundCode, err)
	}

	today := time.Now().In(h.renderLoc).Format(time.DateOnly)

	_, endSpan = profile.StartNewSpan("get previous trade date")
	previousTradeDate, err := h.MarketDataService.GetPreviousTradeDate(today)
	if err != nil {
		return nil, err
	}

	securityIds := make([]string, 0, len(holdings))
	for _, holding := range holdings {
		securityIds = append(securityIds, holding.SecurityId)
	}

	_, endSpan = profile.StartNewSpan("get previous closes")
	previousCloses, err := h.MarketDataService.GetPreviousCloses(ctx, securityIds, previousTradeDate)
	if err != nil {
		return nil, err
	}

	_, endSpan = profile.StartNewSpan("get intraday series")
	samplesBySecurity, err := h.MarketDataService.GetIntradaySeriesBulk(ctx, securityIds, today)
	if err != nil {
		return nil, err
	}

	_, endSpan = profile.StartNewSpan("compute valuation")
	calculator := internal.NewValuationCalculator(holdings, previousCloses, positionRatio)
	points := calculator.ComputeValuation(samplesBySecurity)
	stats := calculator.Summarize(points)
	details := buildHoldingDetails(holdings, previousCloses, samplesBySecurity)
	endSpan()

	return &ValuationResult{
		FundCode:      fundCode,
		ReportDate:    reportDate,
		PositionRatio: positionRatio,
		Holdings:      details,
		Points:        points,
		Stats:         stats,
	}, nil
}

// buildHoldingDetails assembles the per-holding rows for the fund page:
// latest price falls back to the previous close when a security has no
// samples yet, and change stays null without a baseline.
func buildHoldingDetails(holdings []domain.Holding, previousCloses map[string]float64, samplesBySecurity map[string]domain.IntradaySeries) []domain.HoldingDetail {
	details := make([]domain.HoldingDetail, 0, len(holdings))
	for _, holding := range holdings {
		detail := domain.HoldingDetail{
			SecurityId: holding.SecurityId,
			Name:       holding.Name,
			Weight:     holding.Weight,
		}

		prevClose, hasPrevClose := previousCloses[holding.SecurityId]
		if hasPrevClose {
			p := prevClose
			detail.PrevClose = &p
		}

		if series := samplesBySecurity[holding.SecurityId]; len(series) > 0 {
			detail.LatestPrice = series[len(series)-1].Price
		} else if hasPrevClose {
			detail.LatestPrice = prevClose
		}

		if hasPrevClose && prevClose > 0 {
			change := (detail.LatestPrice - prevClose) / prevClose * 100
			detail.ChangePct = &change
		}

		details = append(details, detail)
	}

	sort.Slice(details, func(i, j int) bool {
		if details[i].Weight == details[j].Weight {
			return details[i].SecurityId < details[j].SecurityId
		}
		return details[i].Weight > details[j].Weight
	})

	return details
}
