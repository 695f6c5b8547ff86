package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fintrack-server/src/models"
)

const categoryColumns = `id, user_id, name, color`

func scanCategory(row pgx.Row) (*models.Category, error) {
	var c models.Category
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Color)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func CreateCategory(ctx context.Context, pool *pgxpool.Pool, c *models.Category) (*models.Category, error) {
	query := `
		INSERT INTO categories (user_id, name, color)
		VALUES ($1, $2, $3)
		RETURNING ` + categoryColumns
	created, err := scanCategory(pool.QueryRow(ctx, query, c.UserID, c.Name, c.Color))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrDuplicateCategory
		}
		return nil, err
	}
	return created, nil
}

func GetCategoryByID(ctx context.Context, pool *pgxpool.Pool, userID, categoryID string) (*models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	c, err := scanCategory(pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	if c.UserID != userID {
		return nil, models.ErrNotOwner
	}
	return c, nil
}

func GetAllCategoriesForUser(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories WHERE user_id = $1
		ORDER BY name
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		cats = append(cats, *c)
	}
	return cats, rows.Err()
}

func UpdateCategory(ctx context.Context, pool *pgxpool.Pool, c *models.Category) (*models.Category, error) {
	query := `
		UPDATE categories
		SET name = $1, color = $2
		WHERE id = $3
		RETURNING ` + categoryColumns
	updated, err := scanCategory(pool.QueryRow(ctx, query, c.Name, c.Color, c.ID))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrDuplicateCategory
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func DeleteCategory(ctx context.Context, pool *pgxpool.Pool, userID, categoryID string) error {
	if _, err := GetCategoryByID(ctx, pool, userID, categoryID); err != nil {
		return err
	}
	cmd, err := pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, categoryID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// SeedDefaultCategories creates the default category set for a user who has
// none. The existence check and the inserts are one statement, so two
// concurrent calls cannot both seed; the unique index backstops any remaining
// overlap.
func SeedDefaultCategories(ctx context.Context, pool *pgxpool.Pool, userID string) error {
	var values strings.Builder
	args := []interface{}{userID}
	for i, c := range models.DefaultCategories {
		if i > 0 {
			values.WriteString(", ")
		}
		args = append(args, c.Name, c.Color)
		fmt.Fprintf(&values, "($%d, $%d)", len(args)-1, len(args))
	}

	query := fmt.Sprintf(`
		INSERT INTO categories (user_id, name, color)
		SELECT $1, d.name, d.color
		FROM (VALUES %s) AS d(name, color)
		WHERE NOT EXISTS (SELECT 1 FROM categories WHERE user_id = $1)
		ON CONFLICT (user_id, name) DO NOTHING
	`, values.String())

	_, err := pool.Exec(ctx, query, args...)
	return err
}
