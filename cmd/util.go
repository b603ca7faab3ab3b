package cmd

import (
	"database/sql"
	"fmt"
	"fundtracker/api"
	"fundtracker/internal"
	"fundtracker/internal/app"
	"fundtracker/internal/repository"
	l1_service "fundtracker/internal/service/l1"
	l2_service "fundtracker/internal/service/l2"
	l3_service "fundtracker/internal/service/l3"
	"fundtracker/pkg/eastmoney"
	"log"
	"time"

	"fundtracker/internal/service"

	_ "github.com/mattn/go-sqlite3"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	gptRepository, err := repository.NewGptRepository(secrets.Llm.ApiKey, secrets.Llm.BaseUrl, secrets.Llm.Model)
	if err != nil {
		return nil, err
	}

	dbConn, err := sql.Open("sqlite3", secrets.Db.ToDsn())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	if err := repository.InitSchema(dbConn); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	eastmoneyClient := eastmoney.NewClient()

	// the vendor throttles at roughly 700 req/min per IP, stay under it
	quoteRepository := repository.NewRateLimitedQuoteRepository(
		repository.NewQuoteRepository(eastmoneyClient),
		650,
		time.Minute,
	)
	yahooQuoteRepository := repository.NewYahooQuoteRepository()
	alpacaRepository, err := repository.NewAlpacaRepository(secrets.Alpaca.ApiKey, secrets.Alpaca.ApiSecret, secrets.Alpaca.Endpoint)
	if err != nil {
		return nil, err
	}

	fundRepository := repository.NewFundRepository(eastmoneyClient)
	fundCatalogRepository := repository.NewFundCatalogRepository(dbConn)
	reportArchiveRepository := repository.NewReportArchiveRepository(dbConn)

	marketDataService := l1_service.NewMarketDataService(quoteRepository, alpacaRepository, yahooQuoteRepository)
	catalogService := l1_service.NewCatalogService(eastmoneyClient, fundCatalogRepository)
	valuationService, err := l2_service.NewValuationService(fundRepository, marketDataService)
	if err != nil {
		return nil, err
	}

	reportJobConfig := app.DefaultReportJobConfig()
	if secrets.Report.ConfigPath != "" {
		reportJobConfig, err = app.LoadReportJobConfig(secrets.Report.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load report job config: %w", err)
		}
	}

	reportService := l3_service.NewReportService(reportJobConfig.MajorCategories)
	narrativeService := l3_service.NewNarrativeService(gptRepository, 2, 5*time.Second)

	emailRepository, err := repository.NewEmailRepository(secrets.SES.Region, secrets.SES.FromEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to create email repository: %w", err)
	}
	emailService, err := service.NewEmailService(emailRepository)
	if err != nil {
		return nil, err
	}

	reportApp := app.NewReportApp(
		reportService,
		narrativeService,
		emailService,
		reportArchiveRepository,
	)

	apiHandler := &api.ApiHandler{
		Db: dbConn,
		BenchmarkHandler: internal.BenchmarkHandler{
			QuoteRepository: quoteRepository,
		},
		ValuationService:          valuationService,
		CatalogService:            catalogService,
		ReportApp:                 reportApp,
		ReportJobConfig:           reportJobConfig,
		ReportFlowsDir:            secrets.Report.FlowsDir,
		FundCatalogRepository:     fundCatalogRepository,
		ApiRequestRepository:      repository.NewApiRequestRepository(dbConn),
		LatencyTrackingRepository: repository.NewLatencyTrackingRepository(dbConn),
		JwtDecodeToken:            secrets.Jwt,
		AdminEmails:               secrets.AdminEmails,
	}

	return apiHandler, nil
}
