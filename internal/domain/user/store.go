package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// Credentials is the subset of the user row needed to verify a login.
type Credentials struct {
	ID           string
	Name         string
	PasswordHash string
}

func (s *Store) Create(ctx context.Context, name, email, passwordHash string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO users (name, email, password_hash)
    VALUES ($1,$2,$3)
    RETURNING id
  `, name, email, passwordHash).Scan(&id)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return "", ErrEmailTaken
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) FindCredentialsByEmail(ctx context.Context, email string) (Credentials, error) {
	var out Credentials
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, password_hash
    FROM users
    WHERE email = $1
  `, email).Scan(&out.ID, &out.Name, &out.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return Credentials{}, ErrNotFound
	}
	if err != nil {
		return Credentials{}, err
	}
	return out, nil
}

func (s *Store) FindByID(ctx context.Context, id string) (Profile, error) {
	var out Profile
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, email, role, wage_per_hour, contact_number, manager_name, bsb, account_number, created_at
    FROM users
    WHERE id = $1
  `, id).Scan(&out.ID, &out.Name, &out.Email, &out.Role, &out.WagePerHour, &out.ContactNumber, &out.ManagerName, &out.BSB, &out.AccountNumber, &out.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, err
	}
	return out, nil
}

func (s *Store) UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (Profile, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE users
    SET role = $1, wage_per_hour = $2, contact_number = $3, manager_name = $4, bsb = $5, account_number = $6
    WHERE id = $7
  `, patch.Role, patch.WagePerHour, patch.ContactNumber, patch.ManagerName, patch.BSB, patch.AccountNumber, id)
	if err != nil {
		return Profile{}, err
	}
	if tag.RowsAffected() == 0 {
		return Profile{}, ErrNotFound
	}
	return s.FindByID(ctx, id)
}

func (s *Store) TouchLastLogin(ctx context.Context, id string) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET last_login = now() WHERE id = $1", id)
	return err
}
