package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fintrack-server/src/models"
)

func CreateUser(ctx context.Context, pool *pgxpool.Pool, name, email string, passwordHash []byte) (*models.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, password_hash, created_at
	`
	var u models.User
	err := pool.QueryRow(ctx, query, name, email, string(passwordHash)).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrDuplicateEmail
		}
		return nil, err
	}
	return &u, nil
}

func GetUserByEmail(ctx context.Context, pool *pgxpool.Pool, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at
		FROM users WHERE email = $1
	`
	var u models.User
	err := pool.QueryRow(ctx, query, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func GetUserByID(ctx context.Context, pool *pgxpool.Pool, userID string) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at
		FROM users WHERE id = $1
	`
	var u models.User
	err := pool.QueryRow(ctx, query, userID).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
