// Package client gives consumers of the API a single store interface with
// two interchangeable modes: Remote speaks the REST API, Local persists the
// same shapes in per-owner files, and Fallback degrades from the first to
// the second when the backend is unreachable.
package client

import (
	"context"

	"fintrack-server/src/models"
	"fintrack-server/src/summary"
)

// Store is the data-access contract shared by all modes. Results are
// structurally identical regardless of which mode served them.
type Store interface {
	Transactions(ctx context.Context) ([]models.Transaction, error)
	Transaction(ctx context.Context, id string) (*models.Transaction, error)
	CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, req models.UpdateTransactionRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error

	Categories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, req models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	MonthlySummary(ctx context.Context) ([]summary.MonthBucket, error)
}
