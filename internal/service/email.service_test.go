package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"fundtracker/internal/domain"
	"fundtracker/internal/repository"
	mock_repository "fundtracker/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleMonthlyReport() *domain.MonthlyReport {
	period := domain.ReportPeriod{Start: "2025-06-01", End: "2025-06-30"}
	return &domain.MonthlyReport{
		ID:     uuid.New(),
		Month:  "2025-06",
		Period: period,
		Table: domain.ReportTable{
			Period:          period,
			Institutions:    []string{"保险", "券商"},
			Categories:      []string{"1权益（风格标签）", "2纯债（券种偏好）"},
			MajorCategories: []string{"1权益（风格标签）", "2纯债（券种偏好）"},
			Cells: map[string]map[string]decimal.Decimal{
				"1权益（风格标签）": {
					"保险": decimal.NewFromInt(1000),
					"券商": decimal.NewFromFloat(80.25),
				},
				"2纯债（券种偏好）": {
					"保险": decimal.NewFromFloat(-300.25),
				},
			},
			CategoryTotals: map[string]decimal.Decimal{
				"1权益（风格标签）": decimal.NewFromFloat(1080.25),
				"2纯债（券种偏好）": decimal.NewFromFloat(-300.25),
			},
			InstitutionTotals: map[string]decimal.Decimal{
				"保险": decimal.NewFromFloat(699.75),
				"券商": decimal.NewFromFloat(80.25),
			},
			GrandTotal: decimal.NewFromInt(780),
		},
		Stats: domain.FlowStats{
			Mean:        266.583,
			Stdev:       568.968,
			MaxDrawdown: 200.5,
		},
		Narrative: &domain.NarrativeSummary{
			Overall: "1. 保险净申购规模最大（1000.00）\n2. 纯债基金遭遇净赎回（-300.25）",
			Institutions: map[string]string{
				"保险": "1. 整体净申购（699.75）；\n2. 主要加仓权益基金；",
				"券商": "1. 交易量较小，净申购（80.25）；",
			},
		},
		GeneratedAt: time.Date(2025, 7, 1, 2, 30, 0, 0, time.UTC),
	}
}

func Test_emailServiceHandler_GenerateMonthlyReportEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	emailService, err := NewEmailService(mock_repository.NewMockEmailRepository(ctrl))
	require.NoError(t, err)

	t.Run("renders table and narrative", func(t *testing.T) {
		subject, body, err := emailService.GenerateMonthlyReportEmail(sampleMonthlyReport())
		require.NoError(t, err)

		require.Equal(t, "基金申赎月报 2025-06", subject)
		require.Contains(t, body, "2025-06-01 至 2025-06-30")
		require.Contains(t, body, "<th>保险净申赎</th>")
		require.Contains(t, body, "<th>券商净申赎</th>")
		require.Contains(t, body, "<td>1权益（风格标签）</td><td>1000.00</td><td>80.25</td><td>1080.25</td>")
		// a category with no entry for an institution renders as zero
		require.Contains(t, body, "<td>2纯债（券种偏好）</td><td>-300.25</td><td>0.00</td><td>-300.25</td>")
		require.Contains(t, body, "<td>总计</td><td>699.75</td><td>80.25</td><td>780.00</td>")
		require.Contains(t, body, "日均净申赎 266.58，日度波动 568.97，最大回撤 200.50。")
		require.Contains(t, body, "整体分析")
		require.Contains(t, body, "<p>1. 保险净申购规模最大（1000.00）</p>")
		require.Contains(t, body, "<h4>保险</h4>")
		require.Contains(t, body, "<p>2. 主要加仓权益基金；</p>")
		require.Contains(t, body, "生成时间 2025-07-01 02:30:00 UTC")
	})

	t.Run("report without narrative omits the analysis section", func(t *testing.T) {
		report := sampleMonthlyReport()
		report.Narrative = nil

		_, body, err := emailService.GenerateMonthlyReportEmail(report)
		require.NoError(t, err)
		require.NotContains(t, body, "整体分析")
		require.Contains(t, body, "<td>总计</td>")
	})

	t.Run("nil report rejected", func(t *testing.T) {
		_, _, err := emailService.GenerateMonthlyReportEmail(nil)
		require.Error(t, err)
	})
}

func Test_emailServiceHandler_SendMonthlyReportEmail(t *testing.T) {
	t.Run("sends to every recipient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		emailRepository := mock_repository.NewMockEmailRepository(ctrl)
		emailService, err := NewEmailService(emailRepository)
		require.NoError(t, err)

		sent := []string{}
		emailRepository.EXPECT().
			SendEmail(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(to, subject, body string) error {
				require.Equal(t, "基金申赎月报 2025-06", subject)
				require.Contains(t, body, "<td>总计</td>")
				sent = append(sent, to)
				return nil
			}).
			Times(2)

		err = emailService.SendMonthlyReportEmail([]string{"a@example.com", "b@example.com"}, sampleMonthlyReport())
		require.NoError(t, err)
		require.Equal(t, []string{"a@example.com", "b@example.com"}, sent)
	})

	t.Run("delivery failure names the recipient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		emailRepository := mock_repository.NewMockEmailRepository(ctrl)
		emailService, err := NewEmailService(emailRepository)
		require.NoError(t, err)

		emailRepository.EXPECT().
			SendEmail("a@example.com", gomock.Any(), gomock.Any()).
			Return(errors.New("ses throttled"))

		err = emailService.SendMonthlyReportEmail([]string{"a@example.com", "b@example.com"}, sampleMonthlyReport())
		require.ErrorContains(t, err, "failed to send report to a@example.com")
	})
}

func initializeEmailService() (EmailService, error) {
	secretsFile := "../../secrets-dev.json"
	f, err := os.ReadFile(secretsFile)
	if err != nil {
		return nil, err
	}

	type secrets struct {
		SES struct {
			Region    string `json:"region"`
			FromEmail string `json:"fromEmail"`
		} `json:"ses"`
	}

	s := secrets{}
	err = json.Unmarshal(f, &s)
	if err != nil {
		return nil, err
	}

	if s.SES.Region == "" || s.SES.FromEmail == "" {
		return nil, fmt.Errorf("SES config not found in secrets")
	}

	emailRepo, err := repository.NewEmailRepository(s.SES.Region, s.SES.FromEmail)
	if err != nil {
		return nil, err
	}

	return NewEmailService(emailRepo)
}

// Test_emailServiceHandler_GenerateMonthlyReportEmail_Preview renders a
// template with sample data and saves it to a file for preview
func Test_emailServiceHandler_GenerateMonthlyReportEmail_Preview(t *testing.T) {
	// Set to false to run this test
	if true {
		t.Skip("Skipping template preview - set condition to false to run")
	}

	emailService, err := initializeEmailService()
	require.NoError(t, err)

	subject, htmlBody, err := emailService.GenerateMonthlyReportEmail(sampleMonthlyReport())
	require.NoError(t, err)

	previewFile := "/tmp/email_preview.html"
	err = os.WriteFile(previewFile, []byte(htmlBody), 0644)
	require.NoError(t, err)

	t.Logf("Subject: %s", subject)
	t.Logf("Preview saved to: %s", previewFile)
	t.Logf("Open it in your browser with:")
	t.Logf("  open %s", previewFile)
}
