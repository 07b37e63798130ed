package etl

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"finledger/logger"
	"finledger/models"
)

type fakeStore struct {
	records []models.Transaction
	nextID  int64
	findErr error
}

func (f *fakeStore) FindByNameAndAmount(_ context.Context, name string, amount float64) (*models.Transaction, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.records {
		if f.records[i].Name == name && f.records[i].Amount == amount {
			return &f.records[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Insert(_ context.Context, name, categoryCode string, amount float64, recordedAt time.Time) (models.Transaction, error) {
	f.nextID++
	t := models.Transaction{
		ID:           f.nextID,
		Name:         name,
		CategoryCode: categoryCode,
		Amount:       amount,
		RecordedAt:   recordedAt,
	}
	f.records = append(f.records, t)
	return t, nil
}

type fakeLookup struct {
	err   error
	codes []string
}

func (f *fakeLookup) Lookup(_ context.Context, code string) error {
	f.codes = append(f.codes, code)
	return f.err
}

func newTestProcessor(store *fakeStore, lookup *fakeLookup) *Processor {
	return NewProcessor(store, lookup, logger.NewWithWriter(io.Discard))
}

func TestProcessAndLoadCreatesRecord(t *testing.T) {
	store := &fakeStore{}
	p := newTestProcessor(store, &fakeLookup{})

	before := time.Now()
	input := models.TransactionInput{Name: "Loja do Zé", CategoryCode: "5411", Amount: 59.99}

	created, err := p.ProcessAndLoad(context.Background(), input)
	if err != nil {
		t.Fatalf("ProcessAndLoad failed: %v", err)
	}

	if created.ID != 1 {
		t.Errorf("expected id 1, got %d", created.ID)
	}
	if created.Name != input.Name || created.CategoryCode != input.CategoryCode || created.Amount != input.Amount {
		t.Errorf("returned record does not match input: %+v", created)
	}
	if created.RecordedAt.Before(before) {
		t.Errorf("recordedAt %v is before the call started at %v", created.RecordedAt, before)
	}
	if len(store.records) != 1 {
		t.Errorf("expected 1 stored record, got %d", len(store.records))
	}
}

func TestProcessAndLoadRejectsDuplicate(t *testing.T) {
	store := &fakeStore{}
	p := newTestProcessor(store, &fakeLookup{})
	ctx := context.Background()

	input := models.TransactionInput{Name: "Loja do Zé", CategoryCode: "5411", Amount: 59.99}
	if _, err := p.ProcessAndLoad(ctx, input); err != nil {
		t.Fatal(err)
	}

	// Same name and amount with a different category is still a
	// duplicate.
	input.CategoryCode = "5812"
	_, err := p.ProcessAndLoad(ctx, input)
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if len(store.records) != 1 {
		t.Errorf("storage changed on rejected duplicate: %d records", len(store.records))
	}
}

func TestProcessAndLoadValidation(t *testing.T) {
	cases := []struct {
		name  string
		input models.TransactionInput
		field string
	}{
		{"empty name", models.TransactionInput{CategoryCode: "5411", Amount: 10}, "name"},
		{"empty category", models.TransactionInput{Name: "x", Amount: 10}, "categoryCode"},
		{"zero amount", models.TransactionInput{Name: "x", CategoryCode: "5411", Amount: 0}, "amount"},
		{"negative amount", models.TransactionInput{Name: "x", CategoryCode: "5411", Amount: -5}, "amount"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeStore{}
			p := newTestProcessor(store, &fakeLookup{})

			_, err := p.ProcessAndLoad(context.Background(), tc.input)

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, vErr.Field)
			}
			if len(store.records) != 0 {
				t.Errorf("record created despite invalid input")
			}
		})
	}
}

func TestProcessAndLoadPropagatesStoreError(t *testing.T) {
	store := &fakeStore{findErr: errors.New("db closed")}
	p := newTestProcessor(store, &fakeLookup{})

	_, err := p.ProcessAndLoad(context.Background(), models.TransactionInput{Name: "x", CategoryCode: "5411", Amount: 10})
	if err == nil || errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestProcessAndLoadWithMCCSuccessDelegates(t *testing.T) {
	store := &fakeStore{}
	lookup := &fakeLookup{}
	p := newTestProcessor(store, lookup)

	input := models.TransactionInput{Name: "Loja do Zé", CategoryCode: "5411", Amount: 59.99}
	created, err := p.ProcessAndLoadWithMCC(context.Background(), input)
	if err != nil {
		t.Fatalf("ProcessAndLoadWithMCC failed: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected id 1, got %d", created.ID)
	}
	if len(lookup.codes) != 1 || lookup.codes[0] != "5411" {
		t.Errorf("expected one lookup for code 5411, got %v", lookup.codes)
	}
}

func TestProcessAndLoadWithMCCLookupFailure(t *testing.T) {
	store := &fakeStore{}
	lookup := &fakeLookup{err: errors.New("not found")}
	p := newTestProcessor(store, lookup)

	input := models.TransactionInput{Name: "Loja do Zé", CategoryCode: "9999", Amount: 59.99}
	_, err := p.ProcessAndLoadWithMCC(context.Background(), input)

	var lErr *CategoryLookupError
	if !errors.As(err, &lErr) {
		t.Fatalf("expected CategoryLookupError, got %v", err)
	}
	if lErr.Code != "9999" {
		t.Errorf("expected code 9999 in error, got %q", lErr.Code)
	}
	if len(store.records) != 0 {
		t.Errorf("record created despite failed lookup")
	}
}
