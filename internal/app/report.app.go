package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fundtracker/internal/domain"
	"fundtracker/internal/logger"
	"fundtracker/internal/repository"
	"fundtracker/internal/service"
	l3_service "fundtracker/internal/service/l3"
	"fundtracker/internal/util"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// DefaultMajorCategories mirrors the vendor's published fund category
// labels. Totals, trends and stats only sum these; other categories are
// shown in the table but never enter totals.
var DefaultMajorCategories = []string{
	"1权益（风格标签）",
	"2纯债（券种偏好）",
	"3固收+",
	"5 QDII基金",
	"8其他-香港互认",
}

type InstitutionFileConfig struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

// ReportJobConfig is the yaml job description for a monthly report run:
// which institution flow files to read, who gets the email, and which
// categories count toward totals.
type ReportJobConfig struct {
	Month           string                  `yaml:"month"`
	MajorCategories []string                `yaml:"major_categories"`
	Recipients      []string                `yaml:"recipients"`
	Institutions    []InstitutionFileConfig `yaml:"institutions"`
}

func DefaultReportJobConfig() ReportJobConfig {
	return ReportJobConfig{
		MajorCategories: DefaultMajorCategories,
	}
}

func LoadReportJobConfig(path string) (ReportJobConfig, error) {
	cfg := DefaultReportJobConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Period resolves the configured month, defaulting to the calendar month
// before now.
func (c ReportJobConfig) Period(now time.Time) (domain.ReportPeriod, error) {
	month := c.Month
	if month == "" {
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		month = firstOfMonth.AddDate(0, -1, 0).Format("2006-01")
	}
	start, end, err := util.MonthBounds(month)
	if err != nil {
		return domain.ReportPeriod{}, err
	}

	return domain.ReportPeriod{Start: start, End: end}, nil
}

// LoadInstitutionFlows reads one csv per configured institution. Relative
// file paths are resolved against flowsDir when it is set.
func LoadInstitutionFlows(cfg ReportJobConfig, flowsDir string) ([]domain.InstitutionFlows, error) {
	flows := make([]domain.InstitutionFlows, 0, len(cfg.Institutions))
	for _, institution := range cfg.Institutions {
		path := institution.File
		if flowsDir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(flowsDir, path)
		}

		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open flow file for %s: %w", institution.Name, err)
		}
		records := []domain.FlowRecord{}
		err = gocsv.UnmarshalFile(f, &records)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse flow file for %s: %w", institution.Name, err)
		}

		flows = append(flows, domain.InstitutionFlows{
			Institution: institution.Name,
			Records:     records,
		})
	}

	return flows, nil
}

type ReportRunInput struct {
	Flows      []domain.InstitutionFlows
	Period     domain.ReportPeriod
	Recipients []string
	// Force regenerates even when the month is already archived.
	Force bool
}

// ReportApp orchestrates a monthly report run. It coordinates the l3
// services to:
// 1. Aggregate flow records into the report table, trends and stats
// 2. Attach the narrative, tolerating narrative failure
// 3. Archive the report and email it to any recipients
type ReportApp interface {
	GenerateMonthlyReport(ctx context.Context, input ReportRunInput) (*domain.MonthlyReport, error)
}

type reportAppHandler struct {
	ReportService           l3_service.ReportService
	NarrativeService        l3_service.NarrativeService
	EmailService            service.EmailService
	ReportArchiveRepository repository.ReportArchiveRepository
}

func NewReportApp(
	reportService l3_service.ReportService,
	narrativeService l3_service.NarrativeService,
	emailService service.EmailService,
	reportArchiveRepository repository.ReportArchiveRepository,
) ReportApp {
	return &reportAppHandler{
		ReportService:           reportService,
		NarrativeService:        narrativeService,
		EmailService:            emailService,
		ReportArchiveRepository: reportArchiveRepository,
	}
}

func (h *reportAppHandler) GenerateMonthlyReport(ctx context.Context, input ReportRunInput) (*domain.MonthlyReport, error) {
	log := logger.FromContext(ctx)

	if month := reportMonth(input.Period); month != "" && !input.Force {
		archived, err := h.ReportArchiveRepository.Get(month)
		if err != nil {
			return nil, err
		}
		if archived != nil {
			log.Infof("reusing archived report for %s", archived.Month)
			return archived, nil
		}
	}

	report, err := h.ReportService.GenerateReport(input.Flows, input.Period)
	if err != nil {
		return nil, err
	}

	narrative, err := h.NarrativeService.Summarize(ctx, report.Table)
	if err != nil {
		log.Warnf("report %s will ship without narrative: %v", report.Month, err)
	} else {
		report.Narrative = narrative
	}

	if err := h.ReportArchiveRepository.Add(*report); err != nil {
		return nil, err
	}

	if len(input.Recipients) > 0 {
		if err := h.EmailService.SendMonthlyReportEmail(input.Recipients, report); err != nil {
			return nil, err
		}
	}

	return report, nil
}

func reportMonth(period domain.ReportPeriod) string {
	if len(period.Start) < len("2006-01") {
		return ""
	}
	return period.Start[:len("2006-01")]
}
