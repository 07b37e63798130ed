package store

import (
	"context"
	"database/sql"
	"time"

	"finledger/models"
)

// TransactionStore persists transaction records in sqlite. Identity
// assignment is delegated to the database, so concurrent inserts never
// share an id.
type TransactionStore struct {
	db *sql.DB
}

func NewTransactionStore(db *sql.DB) *TransactionStore {
	return &TransactionStore{db: db}
}

// FindByNameAndAmount returns the first record matching the
// duplicate-detection key, or nil when there is none.
func (s *TransactionStore) FindByNameAndAmount(ctx context.Context, name string, amount float64) (*models.Transaction, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, mcc, amount, recorded_at
		FROM transactions
		WHERE name = ? AND amount = ?
		ORDER BY id
		LIMIT 1
	`, name, amount)

	var t models.Transaction
	err := row.Scan(&t.ID, &t.Name, &t.CategoryCode, &t.Amount, &t.RecordedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Insert persists a new record and returns it with the assigned id.
func (s *TransactionStore) Insert(ctx context.Context, name, categoryCode string, amount float64, recordedAt time.Time) (models.Transaction, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (name, mcc, amount, recorded_at)
		VALUES (?, ?, ?, ?)
	`, name, categoryCode, amount, recordedAt)
	if err != nil {
		return models.Transaction{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Transaction{}, err
	}

	return models.Transaction{
		ID:           id,
		Name:         name,
		CategoryCode: categoryCode,
		Amount:       amount,
		RecordedAt:   recordedAt,
	}, nil
}

// ListPaged returns records in insertion order, skipping the first
// skip rows and returning at most limit rows. An offset past the end
// yields an empty slice.
func (s *TransactionStore) ListPaged(ctx context.Context, skip, limit int) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, mcc, amount, recorded_at
		FROM transactions
		ORDER BY id
		LIMIT ? OFFSET ?
	`, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// ListByCategory returns all records with the given category code, in
// insertion order.
func (s *TransactionStore) ListByCategory(ctx context.Context, categoryCode string) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, mcc, amount, recorded_at
		FROM transactions
		WHERE mcc = ?
		ORDER BY id
	`, categoryCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func scanTransactions(rows *sql.Rows) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.Name, &t.CategoryCode, &t.Amount, &t.RecordedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
