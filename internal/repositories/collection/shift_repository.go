package collection

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
)

type ShiftRepository struct {
	BaseRepository[domain.ShiftRecord]
}

// NewShiftRepository creates a read-only repository over the "closedShifts" collection.
func NewShiftRepository(store portsrepo.CollectionStore) *ShiftRepository {
	return &ShiftRepository{BaseRepository[domain.ShiftRecord]{Store: store, Key: domain.CollectionClosedShifts}}
}

var _ portsrepo.ShiftReader = (*ShiftRepository)(nil)

// ListClosedShifts returns only records whose status is closed, whatever else the
// shift subsystem left in the collection.
func (r *ShiftRepository) ListClosedShifts(ctx context.Context) ([]domain.ShiftRecord, error) {
	shifts, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	closed := shifts[:0]
	for _, s := range shifts {
		if s.Status == domain.ShiftClosed {
			closed = append(closed, s)
		}
	}
	return closed, nil
}
