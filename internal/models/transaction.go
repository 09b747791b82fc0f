package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MoneyScale is the fixed decimal scale for all monetary amounts.
const MoneyScale = 2

var ErrTransactionAmountNotPositive = errors.New("transaction amounts must be larger than zero")

type TransactionType string

const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

type TransactionSource string

const (
	SourceManual TransactionSource = "MANUAL"
	SourceBank   TransactionSource = "BANK"
)

// Transaction represents a single income or expense record.
//
// A transaction is immutable once recorded, except for the deleted
// flag which is set by the ledger. The budget engine only reads
// transactions and never mutates them.
type Transaction struct {
	ID         uuid.UUID         `json:"id"`
	UserID     uuid.UUID         `json:"userId"`
	Amount     decimal.Decimal   `json:"amount"` // Positive magnitude, the direction is carried by Type
	Category   Category          `json:"category"`
	Type       TransactionType   `json:"type"`
	Source     TransactionSource `json:"source"`
	Note       string            `json:"note,omitempty"`
	OccurredAt time.Time         `json:"occurredAt"`
	DeletedAt  *time.Time        `json:"deletedAt,omitempty"` // Time the transaction was marked as deleted
}

// Deleted reports whether the transaction has been soft deleted.
// Deleted transactions are kept for the audit trail but are invisible
// to all budget calculations.
func (t Transaction) Deleted() bool {
	return t.DeletedAt != nil
}

// Validate checks the transaction invariants that do not depend on
// other records.
func (t Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	return nil
}
