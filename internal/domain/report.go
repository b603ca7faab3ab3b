package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FlowRecord is one day's net subscription/redemption amount for one fund,
// as exported by a distribution institution. NetFlow is subscriptions minus
// redemptions, in currency units.
type FlowRecord struct {
	Date     string          `csv:"date"`
	FundCode string          `csv:"fund_code"`
	FundName string          `csv:"fund_name"`
	Category string          `csv:"category"`
	NetFlow  decimal.Decimal `csv:"net_flow"`
}

// InstitutionFlows groups one institution's records for a report run.
type InstitutionFlows struct {
	Institution string
	Records     []FlowRecord
}

// ReportPeriod is an inclusive date range, "YYYY-MM-DD" bounds.
type ReportPeriod struct {
	Start string
	End   string
}

func (p ReportPeriod) Contains(date string) bool {
	return date >= p.Start && date <= p.End
}

// ReportTable is the aggregated monthly flow table. Cells are keyed
// category then institution. CategoryTotals spans institutions per
// category; InstitutionTotals and GrandTotal sum major categories only.
type ReportTable struct {
	Period            ReportPeriod
	Institutions      []string
	Categories        []string
	MajorCategories   []string
	Cells             map[string]map[string]decimal.Decimal
	CategoryTotals    map[string]decimal.Decimal
	InstitutionTotals map[string]decimal.Decimal
	GrandTotal        decimal.Decimal
}

func (t ReportTable) Cell(category, institution string) decimal.Decimal {
	if row, ok := t.Cells[category]; ok {
		return row[institution]
	}
	return decimal.Zero
}

func (t ReportTable) IsMajor(category string) bool {
	for _, c := range t.MajorCategories {
		if c == category {
			return true
		}
	}
	return false
}

// TrendPoint is one day of an institution's cumulative major-category flow.
type TrendPoint struct {
	Date       string
	Cumulative decimal.Decimal
}

// FlowStats describes the daily aggregate flow series over the period.
// MaxDrawdown is the largest peak-to-trough drop of the cumulative series.
type FlowStats struct {
	Mean        float64
	Stdev       float64
	MaxDrawdown float64
}

// NarrativeSummary is the validated analyst commentary for a report.
type NarrativeSummary struct {
	Overall      string            `json:"overall"`
	Institutions map[string]string `json:"institutions"`
}

// MonthlyReport is the full generated artifact that gets archived and,
// optionally, emailed. Month is the "YYYY-MM" the report covers.
type MonthlyReport struct {
	ID          uuid.UUID
	Month       string
	Period      ReportPeriod
	Table       ReportTable
	Trends      map[string][]TrendPoint
	Stats       FlowStats
	Narrative   *NarrativeSummary
	GeneratedAt time.Time
}
