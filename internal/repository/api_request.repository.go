package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ApiRequest struct {
	RequestID    uuid.UUID
	IPAddress    *string
	Method       string
	Route        string
	RequestBody  *string
	StartTs      time.Time
	DurationMs   *int64
	StatusCode   *int32
	ResponseBody *string
}

type ApiRequestRepository interface {
	Add(ar ApiRequest) (*ApiRequest, error)
	Update(ar ApiRequest) error
}

type apiRequestRepositoryHandler struct {
	Db *sql.DB
}

func NewApiRequestRepository(db *sql.DB) ApiRequestRepository {
	return apiRequestRepositoryHandler{db}
}

func (h apiRequestRepositoryHandler) Add(ar ApiRequest) (*ApiRequest, error) {
	ar.RequestID = uuid.New()

	_, err := h.Db.Exec(
		`INSERT INTO api_request(request_id, ip_address, method, route, request_body, start_ts)
		VALUES(?,?,?,?,?,?)`,
		ar.RequestID.String(), ar.IPAddress, ar.Method, ar.Route, ar.RequestBody,
		ar.StartTs.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert API request: %w", err)
	}

	return &ar, nil
}

func (h apiRequestRepositoryHandler) Update(ar ApiRequest) error {
	_, err := h.Db.Exec(
		`UPDATE api_request SET duration_ms = ?, status_code = ?, response_body = ?
		WHERE request_id = ?`,
		ar.DurationMs, ar.StatusCode, ar.ResponseBody, ar.RequestID.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update API request: %w", err)
	}

	return nil
}
