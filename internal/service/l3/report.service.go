package l3_service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"fundtracker/internal/domain"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// ReportService aggregates per-institution fund flow records into the
// monthly report: the category x institution table, cumulative trend
// series, and summary statistics. The narrative is attached separately
// by the caller.
type ReportService interface {
	GenerateReport(flows []domain.InstitutionFlows, period domain.ReportPeriod) (*domain.MonthlyReport, error)
}

type reportServiceHandler struct {
	MajorCategories []string
}

func NewReportService(majorCategories []string) ReportService {
	return reportServiceHandler{
		MajorCategories: majorCategories,
	}
}

func (h reportServiceHandler) GenerateReport(flows []domain.InstitutionFlows, period domain.ReportPeriod) (*domain.MonthlyReport, error) {
	if len(period.Start) < len("2006-01") || period.End < period.Start {
		return nil, fmt.Errorf("invalid report period %s to %s", period.Start, period.End)
	}

	table := h.buildTable(flows, period)
	flowStats, err := h.buildStats(flows, period)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate flow stats: %w", err)
	}

	return &domain.MonthlyReport{
		ID:          uuid.New(),
		Month:       period.Start[:len("2006-01")],
		Period:      period,
		Table:       *table,
		Trends:      h.buildTrends(flows, period),
		Stats:       flowStats,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

func (h reportServiceHandler) buildTable(flows []domain.InstitutionFlows, period domain.ReportPeriod) *domain.ReportTable {
	institutions := make([]string, 0, len(flows))
	cells := map[string]map[string]decimal.Decimal{}
	categorySet := map[string]bool{}

	for _, institutionFlows := range flows {
		institutions = append(institutions, institutionFlows.Institution)
		for _, record := range institutionFlows.Records {
			if !period.Contains(record.Date) {
				continue
			}
			categorySet[record.Category] = true
			row, ok := cells[record.Category]
			if !ok {
				row = map[string]decimal.Decimal{}
				cells[record.Category] = row
			}
			row[institutionFlows.Institution] = row[institutionFlows.Institution].Add(record.NetFlow)
		}
	}

	categories := make([]string, 0, len(categorySet))
	for category := range categorySet {
		categories = append(categories, category)
	}
	// vendor category labels carry a numeric ordering prefix, so
	// lexicographic sort reproduces the published column order
	sort.Strings(categories)

	table := &domain.ReportTable{
		Period:            period,
		Institutions:      institutions,
		Categories:        categories,
		MajorCategories:   h.MajorCategories,
		Cells:             cells,
		CategoryTotals:    map[string]decimal.Decimal{},
		InstitutionTotals: map[string]decimal.Decimal{},
	}

	for _, category := range categories {
		total := decimal.Zero
		for _, institution := range institutions {
			total = total.Add(table.Cell(category, institution))
		}
		table.CategoryTotals[category] = total
	}

	// the bottom row of the published table only sums the major
	// categories, minor ones are shown but excluded from totals
	grandTotal := decimal.Zero
	for _, institution := range institutions {
		total := decimal.Zero
		for _, category := range categories {
			if table.IsMajor(category) {
				total = total.Add(table.Cell(category, institution))
			}
		}
		table.InstitutionTotals[institution] = total
		grandTotal = grandTotal.Add(total)
	}
	table.GrandTotal = grandTotal

	return table
}

func (h reportServiceHandler) buildTrends(flows []domain.InstitutionFlows, period domain.ReportPeriod) map[string][]domain.TrendPoint {
	trends := map[string][]domain.TrendPoint{}
	for _, institutionFlows := range flows {
		daily := h.dailyMajorFlows(institutionFlows.Records, period)

		days := make([]string, 0, len(daily))
		for day := range daily {
			days = append(days, day)
		}
		sort.Strings(days)

		points := make([]domain.TrendPoint, 0, len(days))
		cumulative := decimal.Zero
		for _, day := range days {
			cumulative = cumulative.Add(daily[day])
			points = append(points, domain.TrendPoint{
				Date:       day,
				Cumulative: cumulative,
			})
		}
		trends[institutionFlows.Institution] = points
	}

	return trends
}

func (h reportServiceHandler) buildStats(flows []domain.InstitutionFlows, period domain.ReportPeriod) (domain.FlowStats, error) {
	daily := map[string]decimal.Decimal{}
	for _, institutionFlows := range flows {
		for day, flow := range h.dailyMajorFlows(institutionFlows.Records, period) {
			daily[day] = daily[day].Add(flow)
		}
	}
	if len(daily) == 0 {
		return domain.FlowStats{}, nil
	}

	days := make([]string, 0, len(daily))
	for day := range daily {
		days = append(days, day)
	}
	sort.Strings(days)

	series := make([]float64, 0, len(days))
	for _, day := range days {
		series = append(series, daily[day].InexactFloat64())
	}

	mean, err := stats.Mean(series)
	if err != nil {
		return domain.FlowStats{}, err
	}
	stdev := 0.0
	if len(series) >= 2 {
		stdev, err = stats.StandardDeviationSample(series)
		if err != nil {
			return domain.FlowStats{}, fmt.Errorf("failed to calculate stdev: %w", err)
		}
	}

	return domain.FlowStats{
		Mean:        mean,
		Stdev:       stdev,
		MaxDrawdown: maxDrawdown(series),
	}, nil
}

// dailyMajorFlows sums an institution's major-category flows by day,
// restricted to the report period.
func (h reportServiceHandler) dailyMajorFlows(records []domain.FlowRecord, period domain.ReportPeriod) map[string]decimal.Decimal {
	daily := map[string]decimal.Decimal{}
	for _, record := range records {
		if !period.Contains(record.Date) || !h.isMajor(record.Category) {
			continue
		}
		daily[record.Date] = daily[record.Date].Add(record.NetFlow)
	}

	return daily
}

func (h reportServiceHandler) isMajor(category string) bool {
	for _, major := range h.MajorCategories {
		if major == category {
			return true
		}
	}

	return false
}

// maxDrawdown is the deepest peak-to-trough decline of the cumulative
// flow series, in currency units. Zero when flows never retreat from
// their running peak.
func maxDrawdown(dailyFlows []float64) float64 {
	worst := 0.0
	cumulative := 0.0
	peak := math.Inf(-1)
	for _, flow := range dailyFlows {
		cumulative += flow
		if cumulative > peak {
			peak = cumulative
		}
		if drawdown := peak - cumulative; drawdown > worst {
			worst = drawdown
		}
	}

	return worst
}
