package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fintrack-server/src/models"
	"fintrack-server/src/summary"
)

// Remote implements Store against the REST API. Any transport-level failure
// is reported as models.ErrBackendUnavailable so callers can substitute the
// local mode; API-level errors map back onto the shared taxonomy.
type Remote struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewRemote(baseURL, token string) *Remote {
	return &Remote{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Data    json.RawMessage `json:"data"`
}

func (r *Remote) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.token)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		return apiError(resp.StatusCode, env.Message)
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

// apiError inverts the server's status mapping. A 401 is an ownership
// failure only when it carries the ownership message; the auth middleware's
// 401s (missing, expired or otherwise rejected token) are a different
// condition and must not look like one.
func apiError(status int, message string) error {
	switch status {
	case http.StatusNotFound:
		return models.ErrNotFound
	case http.StatusUnauthorized:
		if message == "Not authorized to access this record" {
			return models.ErrNotOwner
		}
		return models.ErrUnauthenticated
	case http.StatusBadRequest:
		if message == "Category already exists" {
			return models.ErrDuplicateCategory
		}
		return &models.ValidationError{Message: message}
	default:
		return fmt.Errorf("api error (%d): %s", status, message)
	}
}

func (r *Remote) Transactions(ctx context.Context) ([]models.Transaction, error) {
	var txns []models.Transaction
	if err := r.do(ctx, http.MethodGet, "/api/transactions", nil, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

func (r *Remote) Transaction(ctx context.Context, id string) (*models.Transaction, error) {
	var t models.Transaction
	if err := r.do(ctx, http.MethodGet, "/api/transactions/"+id, nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Remote) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error) {
	var t models.Transaction
	if err := r.do(ctx, http.MethodPost, "/api/transactions", req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Remote) UpdateTransaction(ctx context.Context, id string, req models.UpdateTransactionRequest) (*models.Transaction, error) {
	var t models.Transaction
	if err := r.do(ctx, http.MethodPut, "/api/transactions/"+id, req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Remote) DeleteTransaction(ctx context.Context, id string) error {
	return r.do(ctx, http.MethodDelete, "/api/transactions/"+id, nil, nil)
}

func (r *Remote) Categories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := r.do(ctx, http.MethodGet, "/api/categories", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *Remote) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	var c models.Category
	if err := r.do(ctx, http.MethodPost, "/api/categories", req, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Remote) UpdateCategory(ctx context.Context, id string, req models.UpdateCategoryRequest) (*models.Category, error) {
	var c models.Category
	if err := r.do(ctx, http.MethodPut, "/api/categories/"+id, req, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Remote) DeleteCategory(ctx context.Context, id string) error {
	return r.do(ctx, http.MethodDelete, "/api/categories/"+id, nil, nil)
}

func (r *Remote) MonthlySummary(ctx context.Context) ([]summary.MonthBucket, error) {
	var buckets []summary.MonthBucket
	if err := r.do(ctx, http.MethodGet, "/api/transactions/summary/monthly", nil, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}
