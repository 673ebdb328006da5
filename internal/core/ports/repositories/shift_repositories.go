package repositories

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// ShiftReader exposes the closed shifts written by the shift-management subsystem.
type ShiftReader interface {
	ListClosedShifts(ctx context.Context) ([]domain.ShiftRecord, error)
}
