package repository

import (
	"database/sql"
	"fmt"
	"fundtracker/internal/domain"
)

type FundCatalogRepository interface {
	// Replace swaps the whole catalog for the given listing in one
	// transaction. The refresh job calls it with ~20k rows.
	Replace(funds []domain.Fund) error
	Search(keyword string, limit int) ([]domain.Fund, error)
	Count() (int, error)
}

type fundCatalogRepositoryHandler struct {
	Db *sql.DB
}

func NewFundCatalogRepository(db *sql.DB) FundCatalogRepository {
	return fundCatalogRepositoryHandler{db}
}

func (h fundCatalogRepositoryHandler) Replace(funds []domain.Fund) error {
	tx, err := h.Db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin catalog tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM fund_catalog`); err != nil {
		return fmt.Errorf("failed to clear fund catalog: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO fund_catalog(code, name, type, pinyin) VALUES(?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare catalog insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range funds {
		if _, err := stmt.Exec(f.Code, f.Name, f.Type, f.Pinyin); err != nil {
			return fmt.Errorf("failed to insert fund %s: %w", f.Code, err)
		}
	}

	return tx.Commit()
}

func (h fundCatalogRepositoryHandler) Search(keyword string, limit int) ([]domain.Fund, error) {
	rows, err := h.Db.Query(
		`SELECT code, name, type, pinyin FROM fund_catalog
		WHERE code LIKE ? OR name LIKE ? OR pinyin LIKE ?
		ORDER BY code LIMIT ?`,
		keyword+"%", "%"+keyword+"%", "%"+keyword+"%", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search fund catalog: %w", err)
	}
	defer rows.Close()

	out := []domain.Fund{}
	for rows.Next() {
		f := domain.Fund{}
		if err := rows.Scan(&f.Code, &f.Name, &f.Type, &f.Pinyin); err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	return out, rows.Err()
}

func (h fundCatalogRepositoryHandler) Count() (int, error) {
	var n int
	err := h.Db.QueryRow(`SELECT COUNT(*) FROM fund_catalog`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count fund catalog: %w", err)
	}

	return n, nil
}
