package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
)

// deletionService runs the sale deletion pipeline. The collections have no
// shared transaction, so once stock has been restored nothing is rolled back;
// a later failure is reported and logged as a partial deletion instead.
type deletionService struct {
	BaseService
	mu        sync.Mutex // one deletion at a time within this process
	validator portssvc.EligibilityValidatorSvc
	restorer  portssvc.StockRestorerSvc
	poster    portssvc.ReversalPosterSvc
	saleRepo  portsrepo.SaleRepositoryFacade
	auditRepo portsrepo.AuditRepositoryFacade
}

// NewDeletionService creates the sale deletion orchestrator.
func NewDeletionService(
	validator portssvc.EligibilityValidatorSvc,
	restorer portssvc.StockRestorerSvc,
	poster portssvc.ReversalPosterSvc,
	saleRepo portsrepo.SaleRepositoryFacade,
	auditRepo portsrepo.AuditRepositoryFacade,
	options ...ServiceOption,
) portssvc.DeletionSvcFacade {
	svc := &deletionService{
		BaseService: newBaseService(),
		validator:   validator,
		restorer:    restorer,
		poster:      poster,
		saleRepo:    saleRepo,
		auditRepo:   auditRepo,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.DeletionSvcFacade = (*deletionService)(nil)

// deletionRun tracks what one pipeline run has already changed.
type deletionRun struct {
	sale     *domain.Sale
	stage    domain.DeletionStage
	restored int
	journals []string
	unposted bool // a journal posting was stored without its balance update
	warnings []string
}

func (r *deletionRun) mutated() []string {
	var done []string
	if r.restored > 0 {
		done = append(done, fmt.Sprintf("stock restored for %d line item(s)", r.restored))
	}
	if len(r.journals) > 0 {
		done = append(done, fmt.Sprintf("journal postings %s appended", strings.Join(r.journals, ", ")))
	}
	if r.unposted {
		done = append(done, "journal posting appended without account balance update")
	}
	if r.stage == domain.StageLogging {
		done = append(done, "sale record removed")
	}
	return done
}

func (s *deletionService) DeleteSale(ctx context.Context, saleIDOrNumber, reason, deletedBy string) (*domain.DeletionOutcome, error) {
	if strings.TrimSpace(deletedBy) == "" {
		return nil, fmt.Errorf("%w: deletedBy is required", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	run := &deletionRun{stage: domain.StageValidating, warnings: []string{}}

	if err := s.validator.ValidateDeletion(ctx, saleIDOrNumber); err != nil {
		return nil, s.abort(ctx, run, saleIDOrNumber, err)
	}
	validReason, err := s.validator.ValidateReason(reason)
	if err != nil {
		return nil, s.abort(ctx, run, saleIDOrNumber, err)
	}

	sale, err := s.saleRepo.FindSale(ctx, saleIDOrNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			err = apperrors.NewSaleNotFound(saleIDOrNumber)
		}
		return nil, s.abort(ctx, run, saleIDOrNumber, err)
	}
	run.sale = sale
	snapshot := sale.Clone()

	run.stage = domain.StageRestoring
	restored, err := s.restorer.Restore(ctx, sale.LineItems)
	if restored != nil {
		run.restored = restored.RestoredItems
		run.warnings = append(run.warnings, restored.Warnings...)
	}
	if err != nil {
		return nil, s.fail(ctx, run, "Stock restoration failed; the sale was not deleted", err)
	}

	run.stage = domain.StagePosting
	reversal, err := s.poster.Post(ctx, *sale, deletedBy)
	if reversal != nil {
		run.journals = reversal.PostedJournalIDs
	}
	if err != nil {
		run.unposted = errors.Is(err, apperrors.ErrPartialWrite)
		return nil, s.fail(ctx, run, "Posting the reversal journal failed; the sale was not deleted", err)
	}

	run.stage = domain.StageDeleting
	if err := s.saleRepo.DeleteSale(ctx, sale.ID); err != nil {
		msg := "Storage deletion failed; the sale record could not be removed"
		if errors.Is(err, apperrors.ErrNotFound) {
			msg = fmt.Sprintf("Storage deletion failed; sale %s no longer exists", sale.SaleNumber)
		}
		return nil, s.fail(ctx, run, msg, err)
	}

	run.stage = domain.StageLogging
	entry := domain.DeletionLogEntry{
		ID:              s.NewID(),
		SaleID:          sale.ID,
		SaleNumber:      sale.SaleNumber,
		SaleSnapshot:    *snapshot,
		Reason:          validReason,
		DeletedBy:       deletedBy,
		DeletedAt:       s.Now(),
		StockRestored:   true,
		JournalReversed: true,
		Warnings:        run.warnings,
	}
	if err := s.auditRepo.AppendDeletionLog(ctx, entry); err != nil {
		return nil, s.fail(ctx, run, "The sale was deleted but the audit entry could not be written", err)
	}

	run.stage = domain.StageDone
	s.LogInfo(ctx, "Sale deleted",
		slog.String("stage", string(run.stage)),
		slog.String("sale_id", sale.ID),
		slog.String("sale_number", sale.SaleNumber),
		slog.String("deleted_by", deletedBy),
		slog.Int("warnings", len(run.warnings)))

	outcome := &domain.DeletionOutcome{
		SaleID:           sale.ID,
		SaleNumber:       sale.SaleNumber,
		Message:          fmt.Sprintf("Sale %s was deleted; stock and journal have been reversed", sale.SaleNumber),
		PostedJournalIDs: run.journals,
		LogEntryID:       entry.ID,
	}
	if len(run.warnings) > 0 {
		outcome.Warnings = run.warnings
	}
	return outcome, nil
}

// abort handles failures detected before anything was written.
func (s *deletionService) abort(ctx context.Context, run *deletionRun, saleIDOrNumber string, err error) error {
	failedAt := run.stage
	run.stage = domain.StageAborted
	if de, ok := apperrors.AsDeletionError(err); ok && de.Kind.Recoverable() {
		s.LogInfo(ctx, "Sale deletion rejected",
			slog.String("stage", string(run.stage)),
			slog.String("sale_id", saleIDOrNumber),
			slog.String("kind", string(de.Kind)))
		return err
	}
	s.LogError(ctx, err, "Sale deletion aborted",
		slog.String("stage", string(run.stage)),
		slog.String("failed_at", string(failedAt)),
		slog.String("sale_id", saleIDOrNumber))
	return err
}

// fail handles failures after the first write. Earlier steps are left in place.
func (s *deletionService) fail(ctx context.Context, run *deletionRun, msg string, err error) error {
	mutated := run.mutated()
	attrs := []any{
		slog.String("stage", string(run.stage)),
		slog.String("sale_id", run.sale.ID),
		slog.String("sale_number", run.sale.SaleNumber),
		slog.Any("already_applied", mutated),
	}
	if run.stage.Mutating() || len(mutated) > 0 {
		s.LogError(ctx, err, "Partial sale deletion: stored data is inconsistent", attrs...)
	} else {
		s.LogError(ctx, err, "Sale deletion failed before any change", attrs...)
	}
	return apperrors.NewStorageWriteFailure(run.stage, run.sale.ID, msg, err)
}

func (s *deletionService) CheckEligibility(ctx context.Context, saleIDOrNumber string) error {
	return s.validator.ValidateDeletion(ctx, saleIDOrNumber)
}

func (s *deletionService) GetDeletionLog(ctx context.Context, saleID string) (*domain.DeletionLogEntry, error) {
	entry, err := s.auditRepo.FindDeletionLogBySaleID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get deletion log for sale %s: %w", saleID, err)
	}
	return entry, nil
}

func (s *deletionService) ListDeletionLog(ctx context.Context, limit int, nextToken *string) ([]domain.DeletionLogEntry, *string, error) {
	entries, next, err := s.auditRepo.ListDeletionLog(ctx, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list deletion log: %w", err)
	}
	return entries, next, nil
}
