package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fundtracker/internal/domain"
	l2_service "fundtracker/internal/service/l2"
	mock_l2_service "fundtracker/internal/service/l2/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func floatPtr(f float64) *float64 {
	return &f
}

func newValuationRouter(handler ApiHandler) *gin.Engine {
	router := gin.New()
	router.POST("/api/valuation", handler.valuation)
	return router
}

func Test_valuation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the computed series", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		valuationService := mock_l2_service.NewMockValuationService(ctrl)
		handler := ApiHandler{
			ValuationService: valuationService,
		}

		valuationService.EXPECT().
			GetValuation(gomock.Any(), "005827").
			Return(&l2_service.ValuationResult{
				FundCode:      "005827",
				ReportDate:    "2025-03-31",
				PositionRatio: 90,
				Holdings:      []domain.HoldingDetail{},
				Points:        []domain.ValuationPoint{},
			}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/valuation", strings.NewReader(`{"fund_code": "005827"}`))
		newValuationRouter(handler).ServeHTTP(w, req)

		require.Equal(t, 200, w.Code)
		require.JSONEq(t, `{
			"success": true,
			"fund_code": "005827",
			"report_date": "2025-03-31",
			"stock_position": 90,
			"holdings_count": 0,
			"valuation_data": [],
			"stats": null,
			"holdings": []
		}`, w.Body.String())
	})

	t.Run("blank fund code yields 400", func(t *testing.T) {
		handler := ApiHandler{}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/valuation", strings.NewReader(`{"fund_code": "  "}`))
		newValuationRouter(handler).ServeHTTP(w, req)

		require.Equal(t, 400, w.Code)
		require.Contains(t, w.Body.String(), "missing fund_code")
	})

	t.Run("fund without stock holdings yields 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		valuationService := mock_l2_service.NewMockValuationService(ctrl)
		handler := ApiHandler{
			ValuationService: valuationService,
		}

		valuationService.EXPECT().
			GetValuation(gomock.Any(), "999999").
			Return(nil, fmt.Errorf("999999: %w", l2_service.ErrNoHoldings))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/valuation", strings.NewReader(`{"fund_code": "999999"}`))
		newValuationRouter(handler).ServeHTTP(w, req)

		require.Equal(t, 404, w.Code)
	})
}

func Test_buildValuationResponse(t *testing.T) {
	result := &l2_service.ValuationResult{
		FundCode:      "005827",
		ReportDate:    "2025-03-31",
		PositionRatio: 93.456,
		Holdings: []domain.HoldingDetail{
			{
				SecurityId:  "600519.SH",
				Name:        "贵州茅台",
				Weight:      9.1261,
				PrevClose:   floatPtr(1500),
				LatestPrice: 1530,
				ChangePct:   floatPtr(2),
			},
			{
				SecurityId: "000858.SZ",
				Name:       "五粮液",
				Weight:     5.5,
			},
		},
		Points: []domain.ValuationPoint{
			{Timestamp: "2025-07-02 09:35", Value: 0.1234},
			{Timestamp: "2025-07-02 10:00", Value: 0.52},
		},
		Stats: &domain.ValuationStats{
			Current: 0.52,
			Max:     0.52,
			Min:     0.1234,
			MaxTime: "2025-07-02 10:00",
			MinTime: "2025-07-02 09:35",
		},
	}

	got := buildValuationResponse(result)

	expected := valuationResponse{
		Success:       true,
		FundCode:      "005827",
		ReportDate:    "2025-03-31",
		StockPosition: 93.46,
		HoldingsCount: 2,
		ValuationData: []valuationPointResponse{
			{Time: "2025-07-02 09:35", Value: 0.1234},
			{Time: "2025-07-02 10:00", Value: 0.52},
		},
		Stats: &valuationStatsResponse{
			Current: 0.52,
			Max:     0.52,
			Min:     0.1234,
			MaxTime: "2025-07-02 10:00",
			MinTime: "2025-07-02 09:35",
		},
		Holdings: []valuationHoldingResponse{
			{
				Code:        "600519.SH",
				Name:        "贵州茅台",
				Ratio:       9.1261,
				PrevClose:   floatPtr(1500),
				LatestPrice: 1530,
				ChangePct:   floatPtr(2),
			},
			{
				Code:  "000858.SZ",
				Name:  "五粮液",
				Ratio: 5.5,
			},
		},
	}

	require.Equal(t, "", cmp.Diff(expected, got))
}
