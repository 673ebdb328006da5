package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
)

// MaxReasonLength is the longest accepted deletion reason, in characters.
const MaxReasonLength = 500

type eligibilityValidator struct {
	BaseService
	saleRepo  portsrepo.SaleReader
	shiftRepo portsrepo.ShiftReader
}

// NewEligibilityValidator creates the read-only deletion precondition checks.
func NewEligibilityValidator(saleRepo portsrepo.SaleReader, shiftRepo portsrepo.ShiftReader, options ...ServiceOption) portssvc.EligibilityValidatorSvc {
	svc := &eligibilityValidator{
		BaseService: newBaseService(),
		saleRepo:    saleRepo,
		shiftRepo:   shiftRepo,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.EligibilityValidatorSvc = (*eligibilityValidator)(nil)

func (s *eligibilityValidator) ValidateDeletion(ctx context.Context, saleIDOrNumber string) error {
	sale, err := s.saleRepo.FindSale(ctx, saleIDOrNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewSaleNotFound(saleIDOrNumber)
		}
		s.LogError(ctx, err, "Failed to load sale for eligibility check", slog.String("sale_id", saleIDOrNumber))
		return fmt.Errorf("failed to load sale %s: %w", saleIDOrNumber, err)
	}

	shifts, err := s.shiftRepo.ListClosedShifts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load closed shifts", slog.String("sale_id", sale.ID))
		return fmt.Errorf("failed to load closed shifts: %w", err)
	}

	for _, shift := range shifts {
		if shift.LocksSaleAt(sale.Date) {
			s.LogInfo(ctx, "Sale is locked by a closed shift",
				slog.String("sale_id", sale.ID),
				slog.String("shift_id", shift.ID))
			return apperrors.NewClosedShift(sale.ID, shift.ID)
		}
	}
	return nil
}

// ValidateReason trims only for the emptiness check; the returned reason is
// exactly what the operator typed.
func (s *eligibilityValidator) ValidateReason(reason string) (string, error) {
	if strings.TrimSpace(reason) == "" {
		return "", apperrors.NewEmptyReason()
	}
	if n := utf8.RuneCountInString(reason); n > MaxReasonLength {
		return "", apperrors.NewReasonTooLong(n, MaxReasonLength)
	}
	return reason, nil
}
