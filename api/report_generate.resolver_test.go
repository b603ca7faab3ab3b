package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fundtracker/internal/app"
	mock_app "fundtracker/internal/app/mocks"
	"fundtracker/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newReportRouter(handler ApiHandler) *gin.Engine {
	router := gin.New()
	router.POST("/api/report/generate", handler.reportGenerate)
	return router
}

func Test_reportGenerate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("explicit month drives the period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reportApp := mock_app.NewMockReportApp(ctrl)
		handler := ApiHandler{
			ReportApp: reportApp,
			ReportJobConfig: app.ReportJobConfig{
				Recipients: []string{"ops@example.com"},
			},
		}

		reportApp.EXPECT().
			GenerateMonthlyReport(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, input app.ReportRunInput) (*domain.MonthlyReport, error) {
				require.Equal(t, domain.ReportPeriod{Start: "2025-06-01", End: "2025-06-30"}, input.Period)
				require.Empty(t, input.Recipients)
				require.False(t, input.Force)
				return &domain.MonthlyReport{Month: "2025-06"}, nil
			})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/report/generate", strings.NewReader(`{"month": "2025-06"}`))
		newReportRouter(handler).ServeHTTP(w, req)

		require.Equal(t, 200, w.Code)
		require.Contains(t, w.Body.String(), `"success":true`)
	})

	t.Run("email flag attaches the configured recipients", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reportApp := mock_app.NewMockReportApp(ctrl)
		handler := ApiHandler{
			ReportApp: reportApp,
			ReportJobConfig: app.ReportJobConfig{
				Recipients: []string{"ops@example.com"},
			},
		}

		reportApp.EXPECT().
			GenerateMonthlyReport(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, input app.ReportRunInput) (*domain.MonthlyReport, error) {
				require.Equal(t, []string{"ops@example.com"}, input.Recipients)
				require.True(t, input.Force)
				return &domain.MonthlyReport{Month: "2025-06"}, nil
			})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/report/generate", strings.NewReader(`{"month": "2025-06", "email": true, "force": true}`))
		newReportRouter(handler).ServeHTTP(w, req)

		require.Equal(t, 200, w.Code)
	})

	t.Run("empty body falls back to the configured month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reportApp := mock_app.NewMockReportApp(ctrl)
		handler := ApiHandler{
			ReportApp: reportApp,
			ReportJobConfig: app.ReportJobConfig{
				Month: "2025-05",
			},
		}

		reportApp.EXPECT().
			GenerateMonthlyReport(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, input app.ReportRunInput) (*domain.MonthlyReport, error) {
				require.Equal(t, domain.ReportPeriod{Start: "2025-05-01", End: "2025-05-31"}, input.Period)
				return &domain.MonthlyReport{Month: "2025-05"}, nil
			})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/report/generate", nil)
		newReportRouter(handler).ServeHTTP(w, req)

		require.Equal(t, 200, w.Code)
	})

	t.Run("malformed month yields 400", func(t *testing.T) {
		handler := ApiHandler{}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/report/generate", strings.NewReader(`{"month": "June 2025"}`))
		newReportRouter(handler).ServeHTTP(w, req)

		require.Equal(t, 400, w.Code)
	})
}
