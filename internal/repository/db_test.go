package repository

import (
	"database/sql"
	"fundtracker/internal/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestDb(t *testing.T) *sql.DB {
	dbConn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// each pooled connection would get its own :memory: database
	dbConn.SetMaxOpenConns(1)
	t.Cleanup(func() { dbConn.Close() })

	require.NoError(t, InitSchema(dbConn))

	return dbConn
}

func TestFundCatalogRepository(t *testing.T) {
	db := newTestDb(t)
	handler := NewFundCatalogRepository(db)

	err := handler.Replace([]domain.Fund{
		{Code: "000001", Name: "华夏成长混合", Type: "混合型", Pinyin: "HXCZHH"},
		{Code: "110011", Name: "易方达中小盘混合", Type: "混合型", Pinyin: "YFDZXPHH"},
		{Code: "510300", Name: "沪深300ETF", Type: "指数型", Pinyin: "HS300ETF"},
	})
	require.NoError(t, err)

	n, err := handler.Count()
	require.NoError(t, err)
	require.Equal(t, 3, n)

	t.Run("search by code prefix", func(t *testing.T) {
		funds, err := handler.Search("1100", 10)
		require.NoError(t, err)
		require.Len(t, funds, 1)
		require.Equal(t, "易方达中小盘混合", funds[0].Name)
	})

	t.Run("search by name fragment", func(t *testing.T) {
		funds, err := handler.Search("混合", 10)
		require.NoError(t, err)
		require.Len(t, funds, 2)
	})

	t.Run("search by pinyin", func(t *testing.T) {
		funds, err := handler.Search("YFD", 10)
		require.NoError(t, err)
		require.Len(t, funds, 1)
		require.Equal(t, "110011", funds[0].Code)
	})

	t.Run("limit caps results", func(t *testing.T) {
		funds, err := handler.Search("0", 1)
		require.NoError(t, err)
		require.Len(t, funds, 1)
	})

	t.Run("replace swaps catalog", func(t *testing.T) {
		err := handler.Replace([]domain.Fund{
			{Code: "161725", Name: "招商中证白酒", Type: "指数型", Pinyin: "ZSZZBJ"},
		})
		require.NoError(t, err)

		n, err := handler.Count()
		require.NoError(t, err)
		require.Equal(t, 1, n)
	})
}

func TestApiRequestRepository(t *testing.T) {
	db := newTestDb(t)
	handler := NewApiRequestRepository(db)

	ip := "10.0.0.1"
	body := `{"fund_code":"000001"}`
	added, err := handler.Add(ApiRequest{
		IPAddress:   &ip,
		Method:      "POST",
		Route:       "/api/valuation",
		RequestBody: &body,
		StartTs:     time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, added.RequestID)

	duration := int64(42)
	status := int32(200)
	response := `{"points":[]}`
	added.DurationMs = &duration
	added.StatusCode = &status
	added.ResponseBody = &response
	require.NoError(t, handler.Update(*added))

	var (
		gotDuration int64
		gotStatus   int32
		gotResponse string
	)
	err = db.QueryRow(
		`SELECT duration_ms, status_code, response_body FROM api_request WHERE request_id = ?`,
		added.RequestID.String(),
	).Scan(&gotDuration, &gotStatus, &gotResponse)
	require.NoError(t, err)
	require.Equal(t, int64(42), gotDuration)
	require.Equal(t, int32(200), gotStatus)
	require.Equal(t, `{"points":[]}`, gotResponse)
}

func TestLatencyTrackingRepository_Add(t *testing.T) {
	db := newTestDb(t)
	handler := NewLatencyTrackingRepository(db)

	profile, endProfile := domain.NewProfile()
	_, endSpan := profile.StartNewSpan("fetch intraday")
	endSpan()
	endProfile()

	requestID := uuid.New()
	require.NoError(t, handler.Add(profile, &requestID))
	require.NoError(t, handler.Add(profile, nil))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM latency_tracking`).Scan(&n))
	require.Equal(t, 2, n)
}

func TestReportArchiveRepository(t *testing.T) {
	db := newTestDb(t)
	handler := NewReportArchiveRepository(db)

	t.Run("missing month returns nil", func(t *testing.T) {
		report, err := handler.Get("2025-07")
		require.NoError(t, err)
		require.Nil(t, report)
	})

	report := domain.MonthlyReport{
		ID:     uuid.New(),
		Month:  "2025-07",
		Period: domain.ReportPeriod{Start: "2025-07-01", End: "2025-07-31"},
		Table: domain.ReportTable{
			Period:          domain.ReportPeriod{Start: "2025-07-01", End: "2025-07-31"},
			Institutions:    []string{"招行"},
			Categories:      []string{"股票型"},
			MajorCategories: []string{"股票型"},
			Cells: map[string]map[string]decimal.Decimal{
				"股票型": {"招行": decimal.NewFromInt(1200)},
			},
			CategoryTotals:    map[string]decimal.Decimal{"股票型": decimal.NewFromInt(1200)},
			InstitutionTotals: map[string]decimal.Decimal{"招行": decimal.NewFromInt(1200)},
			GrandTotal:        decimal.NewFromInt(1200),
		},
		Stats:       domain.FlowStats{Mean: 40, Stdev: 5, MaxDrawdown: 0.1},
		Narrative:   &domain.NarrativeSummary{Overall: "净申购为主", Institutions: map[string]string{"招行": "持续净流入"}},
		GeneratedAt: time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, handler.Add(report))

	got, err := handler.Get("2025-07")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, report.ID, got.ID)
	require.Equal(t, report.Period, got.Period)
	require.True(t, got.Table.GrandTotal.Equal(decimal.NewFromInt(1200)))
	require.Equal(t, "净申购为主", got.Narrative.Overall)

	t.Run("regenerate replaces archived month", func(t *testing.T) {
		replacement := report
		replacement.ID = uuid.New()
		replacement.Narrative = &domain.NarrativeSummary{Overall: "小幅净赎回"}
		require.NoError(t, handler.Add(replacement))

		got, err := handler.Get("2025-07")
		require.NoError(t, err)
		require.Equal(t, replacement.ID, got.ID)
		require.Equal(t, "小幅净赎回", got.Narrative.Overall)

		var n int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM monthly_report`).Scan(&n))
		require.Equal(t, 1, n)
	})
}
