// Package ledger provides in-memory implementations of the engine's
// collaborators: a soft-deleting transaction ledger and a budget
// configuration store. Reads hand out snapshots so the engine always
// computes over a consistent view.
package ledger

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/safespend/backend/internal/models"
)

var ErrTransactionNotFound = errors.New("there is no transaction with this ID")

// Ledger is an append-only transaction store with soft deletes.
// It is safe for concurrent use.
type Ledger struct {
	mu           sync.RWMutex
	transactions map[uuid.UUID][]models.Transaction // keyed by user ID
}

func New() *Ledger {
	return &Ledger{
		transactions: make(map[uuid.UUID][]models.Transaction),
	}
}

// Record validates and stores a transaction. A missing ID is
// generated, a zero date defaults to now and all dates are stored in
// UTC.
func (l *Ledger) Record(t models.Transaction) (models.Transaction, error) {
	if err := t.Validate(); err != nil {
		return models.Transaction{}, err
	}

	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.OccurredAt.IsZero() {
		t.OccurredAt = time.Now().In(time.UTC)
	} else {
		t.OccurredAt = t.OccurredAt.In(time.UTC)
	}

	t.Note = strings.TrimSpace(t.Note)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.transactions[t.UserID] = append(l.transactions[t.UserID], t)

	return t, nil
}

// SoftDelete marks a transaction as deleted. The record is kept and
// only becomes invisible to budget calculations. Deleting an already
// deleted transaction keeps the original deletion time.
func (l *Ledger) SoftDelete(userID, id uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	transactions := l.transactions[userID]
	for i := range transactions {
		if transactions[i].ID != id {
			continue
		}

		if transactions[i].DeletedAt == nil {
			now := time.Now().In(time.UTC)
			transactions[i].DeletedAt = &now
		}

		return nil
	}

	return ErrTransactionNotFound
}

// Transactions returns a snapshot of all transactions of the user,
// including soft-deleted ones. The snapshot is a copy: later writes to
// the ledger do not show up in it.
func (l *Ledger) Transactions(userID uuid.UUID) []models.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	transactions := l.transactions[userID]
	snapshot := make([]models.Transaction, len(transactions))
	for i, t := range transactions {
		if t.DeletedAt != nil {
			deletedAt := *t.DeletedAt
			t.DeletedAt = &deletedAt
		}

		snapshot[i] = t
	}

	return snapshot
}
