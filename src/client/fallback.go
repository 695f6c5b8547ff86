package client

import (
	"context"
	"errors"
	"log"

	"fintrack-server/src/models"
	"fintrack-server/src/summary"
)

// Fallback tries the remote store and substitutes the local one only when
// the backend is unreachable. Every other error passes through untouched;
// nothing is retried.
type Fallback struct {
	remote Store
	local  Store
}

func NewFallback(remote, local Store) *Fallback {
	return &Fallback{remote: remote, local: local}
}

func (f *Fallback) unavailable(err error) bool {
	if errors.Is(err, models.ErrBackendUnavailable) {
		log.Printf("INFO: Backend unavailable, using local store: %v", err)
		return true
	}
	return false
}

func (f *Fallback) Transactions(ctx context.Context) ([]models.Transaction, error) {
	txns, err := f.remote.Transactions(ctx)
	if f.unavailable(err) {
		return f.local.Transactions(ctx)
	}
	return txns, err
}

func (f *Fallback) Transaction(ctx context.Context, id string) (*models.Transaction, error) {
	t, err := f.remote.Transaction(ctx, id)
	if f.unavailable(err) {
		return f.local.Transaction(ctx, id)
	}
	return t, err
}

func (f *Fallback) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error) {
	t, err := f.remote.CreateTransaction(ctx, req)
	if f.unavailable(err) {
		return f.local.CreateTransaction(ctx, req)
	}
	return t, err
}

func (f *Fallback) UpdateTransaction(ctx context.Context, id string, req models.UpdateTransactionRequest) (*models.Transaction, error) {
	t, err := f.remote.UpdateTransaction(ctx, id, req)
	if f.unavailable(err) {
		return f.local.UpdateTransaction(ctx, id, req)
	}
	return t, err
}

func (f *Fallback) DeleteTransaction(ctx context.Context, id string) error {
	err := f.remote.DeleteTransaction(ctx, id)
	if f.unavailable(err) {
		return f.local.DeleteTransaction(ctx, id)
	}
	return err
}

func (f *Fallback) Categories(ctx context.Context) ([]models.Category, error) {
	cats, err := f.remote.Categories(ctx)
	if f.unavailable(err) {
		return f.local.Categories(ctx)
	}
	return cats, err
}

func (f *Fallback) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	c, err := f.remote.CreateCategory(ctx, req)
	if f.unavailable(err) {
		return f.local.CreateCategory(ctx, req)
	}
	return c, err
}

func (f *Fallback) UpdateCategory(ctx context.Context, id string, req models.UpdateCategoryRequest) (*models.Category, error) {
	c, err := f.remote.UpdateCategory(ctx, id, req)
	if f.unavailable(err) {
		return f.local.UpdateCategory(ctx, id, req)
	}
	return c, err
}

func (f *Fallback) DeleteCategory(ctx context.Context, id string) error {
	err := f.remote.DeleteCategory(ctx, id)
	if f.unavailable(err) {
		return f.local.DeleteCategory(ctx, id)
	}
	return err
}

func (f *Fallback) MonthlySummary(ctx context.Context) ([]summary.MonthBucket, error) {
	buckets, err := f.remote.MonthlySummary(ctx)
	if f.unavailable(err) {
		return f.local.MonthlySummary(ctx)
	}
	return buckets, err
}
