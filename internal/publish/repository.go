package publish

import (
	"context"
	"errors"
	"fmt"

	"github.com/apiarycd/assistd/pkg/badgerfx"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// Repository stores publish outcomes.
type Repository struct {
	db       *badger.DB
	outcomes *badgerfx.Repository[*outcomeModel]
}

func NewRepository(db *badger.DB) *Repository {
	return &Repository{
		db:       db,
		outcomes: badgerfx.NewRepository(func() *outcomeModel { return new(outcomeModel) }),
	}
}

// Create stores a new outcome.
func (r *Repository) Create(_ context.Context, outcome *Outcome) error {
	model := newOutcomeModel(outcome)

	err := r.db.Update(func(txn *badger.Txn) error {
		return r.outcomes.Write(txn, model)
	})
	if err != nil {
		return fmt.Errorf("failed to create publish record: %w", err)
	}

	return nil
}

// GetByID retrieves an outcome by its ID.
func (r *Repository) GetByID(_ context.Context, id uuid.UUID) (*Outcome, error) {
	var model *outcomeModel

	err := r.db.View(func(txn *badger.Txn) error {
		found, err := r.outcomes.Read(txn, idKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		if err != nil {
			return err
		}

		model = found
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get publish record: %w", err)
	}

	return newOutcome(model), nil
}

// ListByWorkspace returns the newest outcomes of a workspace first.
func (r *Repository) ListByWorkspace(_ context.Context, workspaceID string, limit int) ([]Outcome, error) {
	var models []*outcomeModel

	err := r.db.View(func(txn *badger.Txn) error {
		found, err := r.outcomes.ListByIndex(txn, workspacePrefix(workspaceID), true, limit)
		models = found
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list publish records: %w", err)
	}

	outcomes := make([]Outcome, 0, len(models))
	for _, m := range models {
		outcomes = append(outcomes, *newOutcome(m))
	}

	return outcomes, nil
}
