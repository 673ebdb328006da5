package dto

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteSaleResponse_Success(t *testing.T) {
	resp := NewDeleteSaleResponse(&domain.DeletionOutcome{
		SaleID:     "S1",
		SaleNumber: "INV-001",
		Message:    "Sale INV-001 was deleted",
		LogEntryID: "L1",
	}, nil)

	assert.True(t, resp.Success)
	assert.Equal(t, "Sale INV-001 was deleted", resp.Message)
	assert.Nil(t, resp.Warnings)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "warnings")
	assert.NotContains(t, string(raw), "errorKind")
}

func TestNewDeleteSaleResponse_Warnings(t *testing.T) {
	resp := NewDeleteSaleResponse(&domain.DeletionOutcome{
		SaleID:   "S1",
		Message:  "ok",
		Warnings: []string{"Item Rice (I9) was not found in stock"},
	}, nil)

	assert.True(t, resp.Success)
	assert.Equal(t, []string{"Item Rice (I9) was not found in stock"}, resp.Warnings)
}

func TestNewDeleteSaleResponse_DeletionError(t *testing.T) {
	resp := NewDeleteSaleResponse(nil, apperrors.NewClosedShift("S1", "SH1"))

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "closed shift")
	assert.Equal(t, string(apperrors.KindClosedShift), resp.ErrorKind)
	assert.Equal(t, string(domain.StageValidating), resp.Stage)
	assert.Equal(t, "S1", resp.SaleID)
	assert.Nil(t, resp.Warnings)
}

func TestNewDeleteSaleResponse_PlainError(t *testing.T) {
	resp := NewDeleteSaleResponse(nil, errors.New("boom"))
	assert.False(t, resp.Success)
	assert.Equal(t, "boom", resp.Message)
	assert.Empty(t, resp.ErrorKind)
}

func TestNewEligibilityResponse(t *testing.T) {
	ok := NewEligibilityResponse("S1", nil)
	assert.True(t, ok.Eligible)
	assert.Empty(t, ok.Message)

	blocked := NewEligibilityResponse("S1", apperrors.NewSaleNotFound("S1"))
	assert.False(t, blocked.Eligible)
	assert.Equal(t, string(apperrors.KindNotFound), blocked.ErrorKind)
}

func TestToListDeletionLogResponse(t *testing.T) {
	token := "abc"
	resp := ToListDeletionLogResponse([]domain.DeletionLogEntry{{ID: "L1", SaleID: "S1"}}, &token)

	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "L1", resp.Entries[0].ID)
	assert.NotNil(t, resp.Entries[0].Warnings)
	assert.Equal(t, &token, resp.NextToken)
}
