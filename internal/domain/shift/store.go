package shift

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const shiftColumns = "id, user_id, class, grade, status, date, start_time, end_time, recurring, created_at"

func scanShift(row pgx.Row) (Shift, error) {
	var s Shift
	err := row.Scan(&s.ID, &s.UserID, &s.Class, &s.Grade, &s.Status, &s.Date, &s.StartTime, &s.EndTime, &s.Recurring, &s.CreatedAt)
	return s, err
}

func (s *Store) Create(ctx context.Context, record Shift) (Shift, error) {
	err := s.DB.QueryRow(ctx, `
    INSERT INTO shifts (user_id, class, grade, status, date, start_time, end_time, recurring)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING id, created_at
  `, record.UserID, record.Class, record.Grade, record.Status, record.Date, record.StartTime, record.EndTime, record.Recurring).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return Shift{}, err
	}
	return record, nil
}

// CreateBatch inserts every record inside one transaction; either the whole
// batch lands or none of it does.
func (s *Store) CreateBatch(ctx context.Context, records []Shift) ([]Shift, error) {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	out := make([]Shift, 0, len(records))
	for _, record := range records {
		err := tx.QueryRow(ctx, `
      INSERT INTO shifts (user_id, class, grade, status, date, start_time, end_time, recurring)
      VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
      RETURNING id, created_at
    `, record.UserID, record.Class, record.Grade, record.Status, record.Date, record.StartTime, record.EndTime, record.Recurring).Scan(&record.ID, &record.CreatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) ListByOwner(ctx context.Context, userID string) ([]Shift, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+shiftColumns+`
    FROM shifts
    WHERE user_id = $1
    ORDER BY date ASC, start_time ASC
  `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []Shift
	for rows.Next() {
		record, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, record)
	}
	return shifts, rows.Err()
}

func (s *Store) FindByID(ctx context.Context, id string) (Shift, error) {
	record, err := scanShift(s.DB.QueryRow(ctx, `
    SELECT `+shiftColumns+`
    FROM shifts
    WHERE id = $1
  `, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Shift{}, ErrNotFound
	}
	if err != nil {
		return Shift{}, err
	}
	return record, nil
}

func (s *Store) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE shifts SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM shifts WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePattern removes every shift of the owner matching the weekly sibling
// pattern: same class, grade and clock times, dated on one of the recomputed
// dates. Sibling recurring shifts carry no stored link.
func (s *Store) DeletePattern(ctx context.Context, userID, class, grade, startTime, endTime string, dates []time.Time) (int64, error) {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM shifts
    WHERE user_id = $1 AND class = $2 AND grade = $3
      AND start_time = $4 AND end_time = $5
      AND date = ANY($6)
  `, userID, class, grade, startTime, endTime, dates)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (s *Store) ListRecurring(ctx context.Context) ([]Shift, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+shiftColumns+`
    FROM shifts
    WHERE recurring
    ORDER BY date ASC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []Shift
	for rows.Next() {
		record, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, record)
	}
	return shifts, rows.Err()
}

func (s *Store) Exists(ctx context.Context, userID, class, grade, startTime, endTime string, date time.Time) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM shifts
    WHERE user_id = $1 AND class = $2 AND grade = $3
      AND start_time = $4 AND end_time = $5 AND date = $6
  `, userID, class, grade, startTime, endTime, date).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
