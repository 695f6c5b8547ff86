package client

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"fintrack-server/src/models"
	"fintrack-server/src/summary"
)

// Local implements Store on top of per-owner JSON files, mirroring the
// remote mode's shapes and error semantics. It is the fallback when the
// backend is unreachable.
type Local struct {
	mu      sync.Mutex
	dir     string
	ownerID string
	now     func() time.Time
}

func NewLocal(dir, ownerID string) *Local {
	return &Local{
		dir:     dir,
		ownerID: ownerID,
		now:     time.Now,
	}
}

func (l *Local) transactionsPath() string {
	return filepath.Join(l.dir, "transactions-"+l.ownerID+".json")
}

func (l *Local) categoriesPath() string {
	return filepath.Join(l.dir, "categories-"+l.ownerID+".json")
}

func readRecords[T any](path string) (records []T, found bool, err error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, false, err
	}
	return records, true, nil
}

func writeRecords[T any](dir, path string, records []T) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// loadCategories seeds the default set the first time this owner's category
// file is seen. An existing empty file stays empty: the user emptied it on
// purpose.
func (l *Local) loadCategories() ([]models.Category, error) {
	cats, found, err := readRecords[models.Category](l.categoriesPath())
	if err != nil {
		return nil, err
	}
	if !found {
		cats = l.defaultSet()
		if err := writeRecords(l.dir, l.categoriesPath(), cats); err != nil {
			return nil, err
		}
	}
	return cats, nil
}

func (l *Local) defaultSet() []models.Category {
	cats := make([]models.Category, 0, len(models.DefaultCategories))
	for _, c := range models.DefaultCategories {
		c.ID = uuid.NewString()
		c.UserID = l.ownerID
		cats = append(cats, c)
	}
	return cats
}

// SeedDefaults creates the default category set when the owner has none.
// Idempotent; the store mutex covers the check and the write, so concurrent
// calls cannot both seed.
func (l *Local) SeedDefaults(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	cats, found, err := readRecords[models.Category](l.categoriesPath())
	if err != nil {
		return err
	}
	if found && len(cats) > 0 {
		return nil
	}
	return writeRecords(l.dir, l.categoriesPath(), l.defaultSet())
}

func (l *Local) Transactions(ctx context.Context) ([]models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	txns, _, err := readRecords[models.Transaction](l.transactionsPath())
	if err != nil {
		return nil, err
	}
	sort.Slice(txns, func(i, j int) bool { return txns[i].Date.After(txns[j].Date) })
	return txns, nil
}

func (l *Local) Transaction(ctx context.Context, id string) (*models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	txns, _, err := readRecords[models.Transaction](l.transactionsPath())
	if err != nil {
		return nil, err
	}
	for i := range txns {
		if txns[i].ID == id {
			if txns[i].UserID != l.ownerID {
				return nil, models.ErrNotOwner
			}
			return &txns[i], nil
		}
	}
	return nil, models.ErrNotFound
}

func (l *Local) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error) {
	if req.Date.IsZero() {
		req.Date = l.now().UTC()
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	txns, _, err := readRecords[models.Transaction](l.transactionsPath())
	if err != nil {
		return nil, err
	}
	t := models.Transaction{
		ID:          uuid.NewString(),
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        req.Date,
		Type:        req.Type,
		UserID:      l.ownerID,
		CreatedAt:   l.now().UTC(),
	}
	txns = append(txns, t)
	if err := writeRecords(l.dir, l.transactionsPath(), txns); err != nil {
		return nil, err
	}
	return &t, nil
}

func (l *Local) UpdateTransaction(ctx context.Context, id string, req models.UpdateTransactionRequest) (*models.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	txns, _, err := readRecords[models.Transaction](l.transactionsPath())
	if err != nil {
		return nil, err
	}
	for i := range txns {
		if txns[i].ID != id {
			continue
		}
		if txns[i].UserID != l.ownerID {
			return nil, models.ErrNotOwner
		}
		req.ApplyTo(&txns[i])
		if err := writeRecords(l.dir, l.transactionsPath(), txns); err != nil {
			return nil, err
		}
		return &txns[i], nil
	}
	return nil, models.ErrNotFound
}

func (l *Local) DeleteTransaction(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	txns, _, err := readRecords[models.Transaction](l.transactionsPath())
	if err != nil {
		return err
	}
	for i := range txns {
		if txns[i].ID != id {
			continue
		}
		if txns[i].UserID != l.ownerID {
			return models.ErrNotOwner
		}
		txns = append(txns[:i], txns[i+1:]...)
		return writeRecords(l.dir, l.transactionsPath(), txns)
	}
	return models.ErrNotFound
}

func (l *Local) Categories(ctx context.Context) ([]models.Category, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cats, err := l.loadCategories()
	if err != nil {
		return nil, err
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].Name < cats[j].Name })
	return cats, nil
}

func (l *Local) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cats, err := l.loadCategories()
	if err != nil {
		return nil, err
	}
	for _, c := range cats {
		if c.Name == req.Name {
			return nil, models.ErrDuplicateCategory
		}
	}
	c := models.Category{
		ID:     uuid.NewString(),
		Name:   req.Name,
		Color:  req.ColorOrDefault(),
		UserID: l.ownerID,
	}
	cats = append(cats, c)
	if err := writeRecords(l.dir, l.categoriesPath(), cats); err != nil {
		return nil, err
	}
	return &c, nil
}

func (l *Local) UpdateCategory(ctx context.Context, id string, req models.UpdateCategoryRequest) (*models.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cats, err := l.loadCategories()
	if err != nil {
		return nil, err
	}
	for i := range cats {
		if cats[i].ID != id {
			continue
		}
		if cats[i].UserID != l.ownerID {
			return nil, models.ErrNotOwner
		}
		if req.Name != nil {
			for j := range cats {
				if j != i && cats[j].Name == *req.Name {
					return nil, models.ErrDuplicateCategory
				}
			}
		}
		req.ApplyTo(&cats[i])
		if err := writeRecords(l.dir, l.categoriesPath(), cats); err != nil {
			return nil, err
		}
		return &cats[i], nil
	}
	return nil, models.ErrNotFound
}

func (l *Local) DeleteCategory(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	cats, err := l.loadCategories()
	if err != nil {
		return err
	}
	for i := range cats {
		if cats[i].ID != id {
			continue
		}
		if cats[i].UserID != l.ownerID {
			return models.ErrNotOwner
		}
		cats = append(cats[:i], cats[i+1:]...)
		return writeRecords(l.dir, l.categoriesPath(), cats)
	}
	return models.ErrNotFound
}

func (l *Local) MonthlySummary(ctx context.Context) ([]summary.MonthBucket, error) {
	txns, err := l.Transactions(ctx)
	if err != nil {
		return nil, err
	}
	return summary.Monthly(txns), nil
}
