// Package etl implements the transaction registration flow: extract
// the request payload, validate it (structural checks plus duplicate
// detection, optionally a remote category-code check), stamp the
// processing time, and load the record through the store.
package etl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finledger/models"

	"github.com/rs/zerolog"
)

// ErrDuplicate is returned when a transaction with the same name and
// amount was already registered.
var ErrDuplicate = errors.New("uma transação similar já foi registrada")

// ValidationError reports a structurally invalid input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// CategoryLookupError reports a failed remote category-code check. All
// remote failure modes (unknown code, network error, timeout, bad
// response) collapse into this one category.
type CategoryLookupError struct {
	Code string
	Err  error
}

func (e *CategoryLookupError) Error() string {
	return fmt.Sprintf("erro ao buscar MCC %s: %v", e.Code, e.Err)
}

func (e *CategoryLookupError) Unwrap() error { return e.Err }

// TransactionStore is the storage dependency of the processor.
type TransactionStore interface {
	FindByNameAndAmount(ctx context.Context, name string, amount float64) (*models.Transaction, error)
	Insert(ctx context.Context, name, categoryCode string, amount float64, recordedAt time.Time) (models.Transaction, error)
}

// CategoryLookup validates a category code against the remote MCC
// service. A nil error means the code exists.
type CategoryLookup interface {
	Lookup(ctx context.Context, code string) error
}

// Processor runs the transaction registration flow.
type Processor struct {
	store  TransactionStore
	lookup CategoryLookup
	log    zerolog.Logger
}

func NewProcessor(store TransactionStore, lookup CategoryLookup, log zerolog.Logger) *Processor {
	return &Processor{store: store, lookup: lookup, log: log}
}

// ProcessAndLoad validates the input, rejects duplicates, stamps the
// processing time and persists the record. Nothing is written when any
// step fails.
func (p *Processor) ProcessAndLoad(ctx context.Context, input models.TransactionInput) (models.Transaction, error) {
	if err := validate(input); err != nil {
		return models.Transaction{}, err
	}

	existing, err := p.store.FindByNameAndAmount(ctx, input.Name, input.Amount)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("checking for duplicate: %w", err)
	}
	if existing != nil {
		return models.Transaction{}, ErrDuplicate
	}

	recordedAt := time.Now()

	created, err := p.store.Insert(ctx, input.Name, input.CategoryCode, input.Amount, recordedAt)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("inserting transaction: %w", err)
	}

	p.log.Info().
		Int64("id", created.ID).
		Str("mcc", created.CategoryCode).
		Msg("transaction registered")

	return created, nil
}

// ProcessAndLoadWithMCC first checks the category code against the
// remote MCC service and then delegates to ProcessAndLoad. The remote
// check is pre-flight only: the looked-up description is not stored,
// so later changes to the remote dataset do not affect existing
// records.
func (p *Processor) ProcessAndLoadWithMCC(ctx context.Context, input models.TransactionInput) (models.Transaction, error) {
	if err := p.lookup.Lookup(ctx, input.CategoryCode); err != nil {
		p.log.Warn().Err(err).Str("mcc", input.CategoryCode).Msg("category lookup failed")
		return models.Transaction{}, &CategoryLookupError{Code: input.CategoryCode, Err: err}
	}
	return p.ProcessAndLoad(ctx, input)
}

func validate(input models.TransactionInput) error {
	if input.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if input.CategoryCode == "" {
		return &ValidationError{Field: "categoryCode", Reason: "must not be empty"}
	}
	if input.Amount <= 0 {
		return &ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	return nil
}
