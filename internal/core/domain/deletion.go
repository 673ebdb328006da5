package domain

import "time"

// DeletionStage names a step of the sale deletion pipeline.
type DeletionStage string

const (
	StageValidating DeletionStage = "VALIDATING"
	StageRestoring  DeletionStage = "RESTORING"
	StagePosting    DeletionStage = "POSTING"
	StageDeleting   DeletionStage = "DELETING"
	StageLogging    DeletionStage = "LOGGING"
	StageDone       DeletionStage = "DONE"
	StageAborted    DeletionStage = "ABORTED"
)

// Mutating reports whether a failure at this stage leaves earlier writes in
// place. Stock restoration is the first writing step, so every later stage is mutating.
func (s DeletionStage) Mutating() bool {
	switch s {
	case StagePosting, StageDeleting, StageLogging, StageDone:
		return true
	}
	return false
}

// DeletionLogEntry is the append-only audit record of one completed sale deletion.
type DeletionLogEntry struct {
	ID              string    `json:"id"`
	SaleID          string    `json:"saleId"`
	SaleNumber      string    `json:"saleNumber"`
	SaleSnapshot    Sale      `json:"saleSnapshot"` // Deep copy of the sale at deletion time
	Reason          string    `json:"reason"`
	DeletedBy       string    `json:"deletedBy"`
	DeletedAt       time.Time `json:"deletedAt"`
	StockRestored   bool      `json:"stockRestored"`
	JournalReversed bool      `json:"journalReversed"`
	Warnings        []string  `json:"warnings"`
}

// RestoreResult is the outcome of returning a sale's line items to stock.
type RestoreResult struct {
	RestoredItems int      `json:"restoredItems"`
	Warnings      []string `json:"warnings"`
}

// ReversalResult lists the journal postings created to reverse a sale.
type ReversalResult struct {
	PostedJournalIDs []string `json:"postedJournalIds"`
}

// DeletionOutcome describes a successful sale deletion.
type DeletionOutcome struct {
	SaleID           string   `json:"saleId"`
	SaleNumber       string   `json:"saleNumber"`
	Message          string   `json:"message"`
	Warnings         []string `json:"warnings,omitempty"`
	PostedJournalIDs []string `json:"postedJournalIds"`
	LogEntryID       string   `json:"logEntryId"`
}
