package db

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"tutorbill/internal/auth"
	"tutorbill/internal/platform/config"
)

// Seed creates the configured bootstrap user when it does not exist yet.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	email := strings.TrimSpace(cfg.SeedUserEmail)
	if email == "" {
		return nil
	}

	var id string
	err := pool.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&id)
	if err == nil {
		return nil
	}

	hash, err := auth.HashPassword(cfg.SeedUserPassword)
	if err != nil {
		return err
	}

	name := cfg.SeedUserName
	if name == "" {
		name = email
	}
	_, err = pool.Exec(ctx, `
    INSERT INTO users (name, email, password_hash)
    VALUES ($1,$2,$3)
  `, name, email, hash)
	return err
}
