package shift

import (
	"context"
	"time"
)

type StoreAPI interface {
	Create(ctx context.Context, record Shift) (Shift, error)
	CreateBatch(ctx context.Context, records []Shift) ([]Shift, error)
	ListByOwner(ctx context.Context, userID string) ([]Shift, error)
	FindByID(ctx context.Context, id string) (Shift, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	DeletePattern(ctx context.Context, userID, class, grade, startTime, endTime string, dates []time.Time) (int64, error)
	ListRecurring(ctx context.Context) ([]Shift, error)
	Exists(ctx context.Context, userID, class, grade, startTime, endTime string, date time.Time) (bool, error)
}
