package domain

import "time"

// ShiftStatus indicates whether a cash-register session is still open.
type ShiftStatus string

const (
	ShiftOpen   ShiftStatus = "open"
	ShiftClosed ShiftStatus = "closed"
)

// ShiftRecord is a cash-register session. It is owned by the shift-management
// subsystem and is read-only here.
type ShiftRecord struct {
	ID        string      `json:"id"`
	OpenedAt  time.Time   `json:"openedAt"`
	ClosedAt  time.Time   `json:"closedAt"`
	CashierID string      `json:"cashierId"`
	Status    ShiftStatus `json:"status"`
}

// Covers reports whether t falls within [OpenedAt, ClosedAt], bounds included.
func (s ShiftRecord) Covers(t time.Time) bool {
	return !t.Before(s.OpenedAt) && !t.After(s.ClosedAt)
}

// LocksSaleAt reports whether a sale made at t is frozen by this shift.
// Only closed shifts lock their sales.
func (s ShiftRecord) LocksSaleAt(t time.Time) bool {
	return s.Status == ShiftClosed && s.Covers(t)
}
