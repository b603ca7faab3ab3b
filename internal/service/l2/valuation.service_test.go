package l2_service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"fundtracker/internal/domain"
	mock_repository "fundtracker/internal/repository/mocks"
	mock_l1_service "fundtracker/internal/service/l1/mocks"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newProfiledCtx() context.Context {
	profile, _ := domain.NewProfile()
	return context.WithValue(context.Background(), domain.ContextProfileKey, profile)
}

func newValuationHandler(t *testing.T, fundRepository *mock_repository.MockFundRepository, marketDataService *mock_l1_service.MockMarketDataService) valuationServiceHandler {
	renderLoc, err := time.LoadLocation("Asia/Shanghai")
	require.NoError(t, err)
	return valuationServiceHandler{
		FundRepository:    fundRepository,
		MarketDataService: marketDataService,
		renderLoc:         renderLoc,
	}
}

func Test_valuationServiceHandler_GetValuation(t *testing.T) {
	t.Run("two-holding fund", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fundRepository := mock_repository.NewMockFundRepository(ctrl)
		marketDataService := mock_l1_service.NewMockMarketDataService(ctrl)
		handler := newValuationHandler(t, fundRepository, marketDataService)

		fundRepository.EXPECT().
			GetHoldings("000001").
			Return([]domain.Holding{
				{SecurityId: "600519.SH", Name: "贵州茅台", Weight: 60},
				{SecurityId: "000858.SZ", Name: "五粮液", Weight: 40},
			}, "2025-06-30", nil)
		fundRepository.EXPECT().
			GetStockPositionRatio("000001", "2025-06-30").
			Return(50.0, nil)

		securityIds := []string{"600519.SH", "000858.SZ"}
		marketDataService.EXPECT().
			GetPreviousTradeDate(gomock.Any()).
			Return("2025-07-01", nil)
		marketDataService.EXPECT().
			GetPreviousCloses(gomock.Any(), securityIds, "2025-07-01").
			Return(map[string]float64{
				"600519.SH": 10,
				"000858.SZ": 20,
			}, nil)
		marketDataService.EXPECT().
			GetIntradaySeriesBulk(gomock.Any(), securityIds, gomock.Any()).
			Return(map[string]domain.IntradaySeries{
				"600519.SH": {{Timestamp: "2025-07-02 09:35", Price: 11}},
				"000858.SZ": {{Timestamp: "2025-07-02 09:35", Price: 19}},
			}, nil)

		result, err := handler.GetValuation(newProfiledCtx(), "000001")
		require.NoError(t, err)

		require.Equal(t, "000001", result.FundCode)
		require.Equal(t, "2025-06-30", result.ReportDate)
		require.Equal(t, 50.0, result.PositionRatio)

		// 60% up 10% plus 40% down 5%, scaled to a half stock position
		require.Equal(t, "", cmp.Diff(
			[]domain.ValuationPoint{{Timestamp: "2025-07-02 09:35", Value: 2.0}},
			result.Points,
		))
		require.NotNil(t, result.Stats)
		require.Equal(t, 2.0, result.Stats.Current)
		require.Equal(t, "2025-07-02 09:35", result.Stats.MaxTime)

		require.Len(t, result.Holdings, 2)
		first := result.Holdings[0]
		require.Equal(t, "600519.SH", first.SecurityId)
		require.Equal(t, 11.0, first.LatestPrice)
		require.NotNil(t, first.PrevClose)
		require.Equal(t, 10.0, *first.PrevClose)
		require.NotNil(t, first.ChangePct)
		require.InDelta(t, 10.0, *first.ChangePct, 1e-9)

		second := result.Holdings[1]
		require.Equal(t, "000858.SZ", second.SecurityId)
		require.InDelta(t, -5.0, *second.ChangePct, 1e-9)
	})

	t.Run("no disclosed holdings maps to ErrNoHoldings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fundRepository := mock_repository.NewMockFundRepository(ctrl)
		marketDataService := mock_l1_service.NewMockMarketDataService(ctrl)
		handler := newValuationHandler(t, fundRepository, marketDataService)

		fundRepository.EXPECT().
			GetHoldings("009999").
			Return([]domain.Holding{}, "", nil)

		_, err := handler.GetValuation(newProfiledCtx(), "009999")
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrNoHoldings))
	})

	t.Run("position ratio failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fundRepository := mock_repository.NewMockFundRepository(ctrl)
		marketDataService := mock_l1_service.NewMockMarketDataService(ctrl)
		handler := newValuationHandler(t, fundRepository, marketDataService)

		fundRepository.EXPECT().
			GetHoldings("000001").
			Return([]domain.Holding{
				{SecurityId: "600519.SH", Name: "贵州茅台", Weight: 60},
			}, "2025-06-30", nil)
		fundRepository.EXPECT().
			GetStockPositionRatio("000001", "2025-06-30").
			Return(0.0, fmt.Errorf("no asset allocation disclosed for 000001"))

		_, err := handler.GetValuation(newProfiledCtx(), "000001")
		require.Error(t, err)
	})

	t.Run("security without baseline stays null", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fundRepository := mock_repository.NewMockFundRepository(ctrl)
		marketDataService := mock_l1_service.NewMockMarketDataService(ctrl)
		handler := newValuationHandler(t, fundRepository, marketDataService)

		fundRepository.EXPECT().
			GetHoldings("000001").
			Return([]domain.Holding{
				{SecurityId: "689009.SH", Name: "九号公司", Weight: 30},
			}, "2025-06-30", nil)
		fundRepository.EXPECT().
			GetStockPositionRatio("000001", "2025-06-30").
			Return(60.0, nil)

		marketDataService.EXPECT().
			GetPreviousTradeDate(gomock.Any()).
			Return("2025-07-01", nil)
		marketDataService.EXPECT().
			GetPreviousCloses(gomock.Any(), []string{"689009.SH"}, "2025-07-01").
			Return(map[string]float64{}, nil)
		marketDataService.EXPECT().
			GetIntradaySeriesBulk(gomock.Any(), []string{"689009.SH"}, gomock.Any()).
			Return(map[string]domain.IntradaySeries{
				"689009.SH": {{Timestamp: "2025-07-02 09:35", Price: 40}},
			}, nil)

		result, err := handler.GetValuation(newProfiledCtx(), "000001")
		require.NoError(t, err)

		// no previous close means the security contributes zero
		require.Equal(t, 0.0, result.Points[0].Value)

		detail := result.Holdings[0]
		require.Nil(t, detail.PrevClose)
		require.Nil(t, detail.ChangePct)
		require.Equal(t, 40.0, detail.LatestPrice)
	})
}
