package repository

import (
	"database/sql"
	"fmt"
	"fundtracker/internal/domain"

	"github.com/google/uuid"
)

type latencyTrackingRepositoryHandler struct {
	Db *sql.DB
}

type LatencyTrackingRepository interface {
	Add(profile *domain.Profile, requestID *uuid.UUID) error
}

func NewLatencyTrackingRepository(db *sql.DB) LatencyTrackingRepository {
	return latencyTrackingRepositoryHandler{db}
}

func (h latencyTrackingRepositoryHandler) Add(profile *domain.Profile, requestID *uuid.UUID) error {
	bytes, err := profile.ToJsonBytes()
	if err != nil {
		return err
	}

	var id *string
	if requestID != nil {
		s := requestID.String()
		id = &s
	}
	_, err = h.Db.Exec(
		`INSERT INTO latency_tracking(request_id, processing_times) VALUES(?,?)`,
		id, string(bytes),
	)
	if err != nil {
		return fmt.Errorf("failed to insert latency tracking: %w", err)
	}

	return nil
}
