package shift

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type Service struct {
	store StoreAPI
	now   func() time.Time
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store, now: time.Now}
}

// Create expands the request into its weekly occurrences and persists them
// as one atomic batch.
func (s *Service) Create(ctx context.Context, userID string, input CreateInput) ([]Shift, error) {
	if !ValidStatus(input.Status) {
		return nil, ErrInvalidStatus
	}
	return s.store.CreateBatch(ctx, Expand(userID, input))
}

// Reconcile promotes every UPCOMING shift of the owner whose end instant has
// passed to PENDING, persisting each promotion. It returns the number of
// shifts promoted. List runs it before every read so callers always see
// reconciled statuses.
func (s *Service) Reconcile(ctx context.Context, userID string) (int, error) {
	shifts, err := s.store.ListByOwner(ctx, userID)
	if err != nil {
		return 0, err
	}

	now := s.now()
	promoted := 0
	for _, record := range shifts {
		if !record.ShouldPromote(now) {
			continue
		}
		if err := s.store.UpdateStatus(ctx, record.ID, StatusPending); err != nil {
			return promoted, err
		}
		promoted++
	}
	return promoted, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Shift, error) {
	if _, err := s.Reconcile(ctx, userID); err != nil {
		return nil, err
	}
	return s.store.ListByOwner(ctx, userID)
}

// UpdateStatus sets a new status on an owned shift and returns the updated
// record.
func (s *Service) UpdateStatus(ctx context.Context, userID, shiftID, status string) (Shift, error) {
	if !ValidStatus(status) {
		return Shift{}, ErrInvalidStatus
	}
	record, err := s.store.FindByID(ctx, shiftID)
	if err != nil {
		return Shift{}, err
	}
	if record.UserID != userID {
		return Shift{}, ErrNotOwner
	}
	if err := s.store.UpdateStatus(ctx, shiftID, status); err != nil {
		return Shift{}, err
	}
	record.Status = status
	return record, nil
}

// ConfirmPending moves every PENDING shift of the owner to LOGGED. Updates
// are issued one by one; shifts already confirmed before a failure stay
// confirmed, and the failure is reported as an aggregate error.
func (s *Service) ConfirmPending(ctx context.Context, userID string) (int, error) {
	shifts, err := s.store.ListByOwner(ctx, userID)
	if err != nil {
		return 0, err
	}

	confirmed := 0
	var failures []error
	for _, record := range shifts {
		if record.Status != StatusPending {
			continue
		}
		if err := s.store.UpdateStatus(ctx, record.ID, StatusLogged); err != nil {
			failures = append(failures, fmt.Errorf("confirm shift %s: %w", record.ID, err))
			continue
		}
		confirmed++
	}
	if len(failures) > 0 {
		return confirmed, errors.Join(failures...)
	}
	return confirmed, nil
}

// Delete removes an owned shift. With deleteAll set on a recurring shift it
// removes every same-weekly-pattern sibling within the shift's month,
// recomputing the pattern rather than following a stored link. It returns
// the number of shifts removed.
func (s *Service) Delete(ctx context.Context, userID, shiftID string, deleteAll bool) (int64, error) {
	record, err := s.store.FindByID(ctx, shiftID)
	if err != nil {
		return 0, err
	}
	if record.UserID != userID {
		return 0, ErrNotOwner
	}

	if deleteAll && record.Recurring {
		return s.store.DeletePattern(ctx, userID, record.Class, record.Grade, record.StartTime, record.EndTime, ExpandDates(record.Date))
	}

	if err := s.store.Delete(ctx, shiftID); err != nil {
		return 0, err
	}
	return 1, nil
}
