package service

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"fundtracker/internal/domain"
	"fundtracker/internal/repository"
)

// EmailService is responsible for the business logic around emails.
// It handles template rendering and email formatting, but does NOT
// compute report contents - those are passed in as domain objects.
type EmailService interface {
	// SendMonthlyReportEmail renders the report and sends it to every
	// recipient.
	SendMonthlyReportEmail(recipients []string, report *domain.MonthlyReport) error

	// GenerateMonthlyReportEmail generates the email content for a
	// monthly report. Returns the subject and HTML body. This is used
	// internally by SendMonthlyReportEmail but can also be called
	// separately for testing/preview purposes.
	GenerateMonthlyReportEmail(report *domain.MonthlyReport) (string, string, error)
}

type emailServiceHandler struct {
	EmailRepository repository.EmailRepository
	reportTemplate  *template.Template
}

func NewEmailService(
	emailRepository repository.EmailRepository,
) (EmailService, error) {
	reportTemplate, err := template.New("monthlyReport").Parse(monthlyReportEmailTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report email template: %w", err)
	}

	return &emailServiceHandler{
		EmailRepository: emailRepository,
		reportTemplate:  reportTemplate,
	}, nil
}

func (h *emailServiceHandler) SendMonthlyReportEmail(recipients []string, report *domain.MonthlyReport) error {
	subject, body, err := h.GenerateMonthlyReportEmail(report)
	if err != nil {
		return err
	}

	for _, recipient := range recipients {
		if err := h.EmailRepository.SendEmail(recipient, subject, body); err != nil {
			return fmt.Errorf("failed to send report to %s: %w", recipient, err)
		}
	}

	return nil
}

func (h *emailServiceHandler) GenerateMonthlyReportEmail(report *domain.MonthlyReport) (string, string, error) {
	if report == nil {
		return "", "", fmt.Errorf("cannot render email from nil report")
	}

	subject := fmt.Sprintf("基金申赎月报 %s", report.Month)

	buf := bytes.Buffer{}
	if err := h.reportTemplate.Execute(&buf, buildReportEmailData(report)); err != nil {
		return "", "", fmt.Errorf("failed to render report email: %w", err)
	}

	return subject, buf.String(), nil
}

type reportEmailRow struct {
	Label string
	Cells []string
}

type reportEmailNarrative struct {
	Name  string
	Lines []string
}

type reportEmailData struct {
	PeriodStart  string
	PeriodEnd    string
	Columns      []string
	Rows         []reportEmailRow
	TotalRow     reportEmailRow
	MeanText     string
	StdevText    string
	DrawdownText string
	Overall      []string
	Institutions []reportEmailNarrative
	GeneratedAt  string
}

func buildReportEmailData(report *domain.MonthlyReport) reportEmailData {
	table := report.Table

	columns := []string{"基金类型"}
	for _, institution := range table.Institutions {
		columns = append(columns, institution+"净申赎")
	}
	columns = append(columns, "合计")

	rows := make([]reportEmailRow, 0, len(table.Categories))
	for _, category := range table.Categories {
		cells := make([]string, 0, len(table.Institutions)+1)
		for _, institution := range table.Institutions {
			cells = append(cells, table.Cell(category, institution).StringFixed(2))
		}
		cells = append(cells, table.CategoryTotals[category].StringFixed(2))
		rows = append(rows, reportEmailRow{Label: category, Cells: cells})
	}

	totalCells := make([]string, 0, len(table.Institutions)+1)
	for _, institution := range table.Institutions {
		totalCells = append(totalCells, table.InstitutionTotals[institution].StringFixed(2))
	}
	totalCells = append(totalCells, table.GrandTotal.StringFixed(2))

	data := reportEmailData{
		PeriodStart:  report.Period.Start,
		PeriodEnd:    report.Period.End,
		Columns:      columns,
		Rows:         rows,
		TotalRow:     reportEmailRow{Label: "总计", Cells: totalCells},
		MeanText:     fmt.Sprintf("%.2f", report.Stats.Mean),
		StdevText:    fmt.Sprintf("%.2f", report.Stats.Stdev),
		DrawdownText: fmt.Sprintf("%.2f", report.Stats.MaxDrawdown),
		GeneratedAt:  report.GeneratedAt.Format(time.DateTime) + " UTC",
	}

	if report.Narrative != nil {
		data.Overall = narrativeLines(report.Narrative.Overall)
		// keep institution commentary in table column order
		for _, institution := range table.Institutions {
			commentary, ok := report.Narrative.Institutions[institution]
			if !ok {
				continue
			}
			data.Institutions = append(data.Institutions, reportEmailNarrative{
				Name:  institution,
				Lines: narrativeLines(commentary),
			})
		}
	}

	return data
}

func narrativeLines(commentary string) []string {
	lines := []string{}
	for _, line := range strings.Split(commentary, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

const monthlyReportEmailTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
body { font-family: "Microsoft YaHei", "PingFang SC", Arial, sans-serif; color: #222; }
table { border-collapse: collapse; margin: 16px 0; }
th, td { border: 1px solid #999; padding: 4px 12px; text-align: right; }
th:first-child, td:first-child { text-align: left; }
th { background: #305496; color: #fff; }
tr.total td { font-weight: bold; background: #d9e1f2; }
h4 { margin-bottom: 4px; }
p.meta { color: #888; font-size: 12px; }
</style>
</head>
<body>
<h2>基金申赎月度汇总（{{.PeriodStart}} 至 {{.PeriodEnd}}）</h2>
<p>单位：亿元</p>
<table>
<tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr><td>{{.Label}}</td>{{range .Cells}}<td>{{.}}</td>{{end}}</tr>
{{end}}<tr class="total"><td>{{.TotalRow.Label}}</td>{{range .TotalRow.Cells}}<td>{{.}}</td>{{end}}</tr>
</table>
<p>日均净申赎 {{.MeanText}}，日度波动 {{.StdevText}}，最大回撤 {{.DrawdownText}}。</p>
{{if .Overall}}<h3>整体分析</h3>
{{range .Overall}}<p>{{.}}</p>
{{end}}{{range .Institutions}}<h4>{{.Name}}</h4>
{{range .Lines}}<p>{{.}}</p>
{{end}}{{end}}{{end}}<p class="meta">生成时间 {{.GeneratedAt}}</p>
</body>
</html>
`
