package l1_service

import (
	"context"
	"fmt"

	"fundtracker/internal/domain"
	"fundtracker/internal/logger"
	"fundtracker/internal/repository"
	"fundtracker/pkg/eastmoney"
)

// CatalogService keeps the searchable fund catalog in sync with the
// vendor's open-fund code table.
type CatalogService interface {
	RefreshCatalog(ctx context.Context) (int, error)
}

type catalogServiceHandler struct {
	EastmoneyClient       *eastmoney.Client
	FundCatalogRepository repository.FundCatalogRepository
}

func NewCatalogService(eastmoneyClient *eastmoney.Client, fundCatalogRepository repository.FundCatalogRepository) CatalogService {
	return catalogServiceHandler{
		EastmoneyClient:       eastmoneyClient,
		FundCatalogRepository: fundCatalogRepository,
	}
}

func (h catalogServiceHandler) RefreshCatalog(ctx context.Context) (int, error) {
	entries, err := h.EastmoneyClient.GetFundList()
	if err != nil {
		return 0, fmt.Errorf("failed to download fund list: %w", err)
	}
	if len(entries) == 0 {
		// never wipe a working catalog because the vendor served an
		// empty table
		return 0, fmt.Errorf("fund list came back empty, keeping current catalog")
	}

	funds := make([]domain.Fund, 0, len(entries))
	for _, entry := range entries {
		funds = append(funds, domain.Fund{
			Code:   entry.Code,
			Name:   entry.Name,
			Type:   entry.Type,
			Pinyin: entry.Abbr,
		})
	}

	if err := h.FundCatalogRepository.Replace(funds); err != nil {
		return 0, fmt.Errorf("failed to store fund catalog: %w", err)
	}

	logger.FromContext(ctx).Infof("refreshed fund catalog with %d funds", len(funds))
	return len(funds), nil
}
