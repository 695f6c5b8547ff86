package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fintrack-server/src/models"
)

const transactionColumns = `id, user_id, amount, description, category, date, type, created_at`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(&t.ID, &t.UserID, &t.Amount, &t.Description, &t.Category, &t.Date, &t.Type, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func CreateTransaction(ctx context.Context, pool *pgxpool.Pool, t *models.Transaction) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, amount, description, category, date, type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + transactionColumns
	return scanTransaction(pool.QueryRow(ctx, query,
		t.UserID, t.Amount, t.Description, t.Category, t.Date, t.Type))
}

// GetTransactionByID loads a transaction regardless of owner, then checks
// ownership, so an unknown id and a foreign record fail differently.
func GetTransactionByID(ctx context.Context, pool *pgxpool.Pool, userID, transactionID string) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	t, err := scanTransaction(pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	if t.UserID != userID {
		return nil, models.ErrNotOwner
	}
	return t, nil
}

func GetAllTransactionsForUser(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, *t)
	}
	return txns, rows.Err()
}

// UpdateTransaction writes the full record back. Ownership must already have
// been established through GetTransactionByID.
func UpdateTransaction(ctx context.Context, pool *pgxpool.Pool, t *models.Transaction) (*models.Transaction, error) {
	query := `
		UPDATE transactions
		SET amount = $1, description = $2, category = $3, date = $4, type = $5
		WHERE id = $6
		RETURNING ` + transactionColumns
	updated, err := scanTransaction(pool.QueryRow(ctx, query,
		t.Amount, t.Description, t.Category, t.Date, t.Type, t.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func DeleteTransaction(ctx context.Context, pool *pgxpool.Pool, userID, transactionID string) error {
	if _, err := GetTransactionByID(ctx, pool, userID, transactionID); err != nil {
		return err
	}
	cmd, err := pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, transactionID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
