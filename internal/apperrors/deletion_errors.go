package apperrors

import (
	"errors"
	"fmt"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// Sentinels matched by errors.Is for every DeletionError of the corresponding kind.
var (
	ErrSaleNotFound  = errors.New("sale not found")
	ErrClosedShift   = errors.New("sale belongs to a closed shift")
	ErrEmptyReason   = errors.New("deletion reason is empty")
	ErrReasonTooLong = errors.New("deletion reason is too long")
	ErrStorageWrite  = errors.New("storage write failed")
)

// DeletionErrorKind enumerates why a sale deletion did not complete.
type DeletionErrorKind string

const (
	KindNotFound            DeletionErrorKind = "NOT_FOUND"
	KindClosedShift         DeletionErrorKind = "CLOSED_SHIFT_VIOLATION"
	KindEmptyReason         DeletionErrorKind = "EMPTY_REASON"
	KindReasonTooLong       DeletionErrorKind = "REASON_TOO_LONG"
	KindStorageWriteFailure DeletionErrorKind = "STORAGE_WRITE_FAILURE"
)

func (k DeletionErrorKind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrSaleNotFound
	case KindClosedShift:
		return ErrClosedShift
	case KindEmptyReason:
		return ErrEmptyReason
	case KindReasonTooLong:
		return ErrReasonTooLong
	case KindStorageWriteFailure:
		return ErrStorageWrite
	}
	return ErrInternal
}

// Recoverable reports whether the caller can fix the input and retry.
// Recoverable kinds are always detected before any mutation.
func (k DeletionErrorKind) Recoverable() bool {
	return k != KindStorageWriteFailure
}

// DeletionError is the structured failure of a sale deletion.
type DeletionError struct {
	Kind    DeletionErrorKind
	Stage   domain.DeletionStage // Pipeline stage that failed
	SaleID  string
	ShiftID string // Set for KindClosedShift
	Length  int    // Set for KindReasonTooLong
	Message string // Human-readable, safe to show to the operator
	Err     error
}

func (e *DeletionError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *DeletionError) Unwrap() []error {
	errs := []error{e.Kind.sentinel()}
	if e.Kind == KindNotFound {
		errs = append(errs, ErrNotFound)
	}
	if e.Kind == KindEmptyReason || e.Kind == KindReasonTooLong {
		errs = append(errs, ErrValidation)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// AsDeletionError extracts a *DeletionError from err's chain.
func AsDeletionError(err error) (*DeletionError, bool) {
	var de *DeletionError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// NewSaleNotFound reports that no sale matches the given id or sale number.
func NewSaleNotFound(saleID string) *DeletionError {
	return &DeletionError{
		Kind:    KindNotFound,
		Stage:   domain.StageValidating,
		SaleID:  saleID,
		Message: fmt.Sprintf("Sale %s was not found", saleID),
	}
}

// NewClosedShift reports that the sale falls inside a closed shift.
func NewClosedShift(saleID, shiftID string) *DeletionError {
	return &DeletionError{
		Kind:    KindClosedShift,
		Stage:   domain.StageValidating,
		SaleID:  saleID,
		ShiftID: shiftID,
		Message: fmt.Sprintf("Sale %s belongs to closed shift %s; sales of a closed shift cannot be deleted", saleID, shiftID),
	}
}

// NewEmptyReason reports a missing deletion reason.
func NewEmptyReason() *DeletionError {
	return &DeletionError{
		Kind:    KindEmptyReason,
		Stage:   domain.StageValidating,
		Message: "A deletion reason is required",
	}
}

// NewReasonTooLong reports a reason above the allowed length.
func NewReasonTooLong(length, max int) *DeletionError {
	return &DeletionError{
		Kind:    KindReasonTooLong,
		Stage:   domain.StageValidating,
		Length:  length,
		Message: fmt.Sprintf("Deletion reason is %d characters long; the maximum is %d", length, max),
	}
}

// NewStorageWriteFailure reports that the store rejected a write (or a delete) at the given stage.
func NewStorageWriteFailure(stage domain.DeletionStage, saleID, message string, err error) *DeletionError {
	return &DeletionError{
		Kind:    KindStorageWriteFailure,
		Stage:   stage,
		SaleID:  saleID,
		Message: message,
		Err:     err,
	}
}
