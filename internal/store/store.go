// Package store persists contact messages and pricing estimates.
// Records are insert-only: nothing here updates or deletes a row once
// it has been written.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/boba-tech/site-api/internal/pricing"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("store: not found")

// Store wraps the SQL database with typed accessors.
type Store struct {
	db *sql.DB
}

// New returns a Store backed by db.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// ContactMessage is a persisted contact form submission.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Company   string
	Message   string
	CreatedAt string
}

// Estimate is a persisted pricing estimate. Reference is the public
// identifier handed to clients; the numeric ID stays internal.
type Estimate struct {
	ID         int64
	Reference  string
	Email      string
	TotalPrice int
	Selections pricing.Selections
	Breakdown  string
	CreatedAt  string
}

// InsertContactMessage stores one submission and returns its row id.
func (s *Store) InsertContactMessage(ctx context.Context, name, email, company, message string) (int64, error) {
	var companyValue any
	if company != "" {
		companyValue = company
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_messages (name, email, company, message)
		VALUES (?, ?, ?, ?)
	`, name, email, companyValue, message)
	if err != nil {
		return 0, fmt.Errorf("insert contact message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("contact message insert id: %w", err)
	}
	return id, nil
}

// ListContactMessages returns submissions newest-first, optionally
// filtered by a LIKE match on name, email, company, or message.
func (s *Store) ListContactMessages(ctx context.Context, query string) ([]ContactMessage, error) {
	search := "%" + query + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, COALESCE(company, ''), message, created_at
		FROM contact_messages
		WHERE (? = '' OR name LIKE ? OR email LIKE ? OR COALESCE(company, '') LIKE ? OR message LIKE ?)
		ORDER BY datetime(created_at) DESC, id DESC
	`, query, search, search, search, search)
	if err != nil {
		return nil, fmt.Errorf("query contact messages: %w", err)
	}
	defer rows.Close()

	messages := make([]ContactMessage, 0)
	for rows.Next() {
		var m ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Company, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact messages: %w", err)
	}

	return messages, nil
}

// InsertEstimate stores one estimate, generating its public reference.
func (s *Store) InsertEstimate(ctx context.Context, email string, totalPrice int, selections pricing.Selections, breakdown string) (Estimate, error) {
	selectionsJSON, err := json.Marshal(selections)
	if err != nil {
		return Estimate{}, fmt.Errorf("marshal selections: %w", err)
	}

	reference := uuid.NewString()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO pricing_estimates (reference, email, total_price, selections_json, breakdown)
		VALUES (?, ?, ?, ?, ?)
	`, reference, email, totalPrice, string(selectionsJSON), breakdown)
	if err != nil {
		return Estimate{}, fmt.Errorf("insert pricing estimate: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return Estimate{}, fmt.Errorf("pricing estimate insert id: %w", err)
	}

	return Estimate{
		ID:         id,
		Reference:  reference,
		Email:      email,
		TotalPrice: totalPrice,
		Selections: selections,
		Breakdown:  breakdown,
	}, nil
}

// GetEstimateByReference returns the estimate with the given public
// reference, or ErrNotFound.
func (s *Store) GetEstimateByReference(ctx context.Context, reference string) (Estimate, error) {
	var (
		e              Estimate
		selectionsJSON string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, reference, email, total_price, selections_json, breakdown, created_at
		FROM pricing_estimates
		WHERE reference = ?
	`, reference).Scan(&e.ID, &e.Reference, &e.Email, &e.TotalPrice, &selectionsJSON, &e.Breakdown, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Estimate{}, ErrNotFound
	}
	if err != nil {
		return Estimate{}, fmt.Errorf("query pricing estimate: %w", err)
	}

	if err := json.Unmarshal([]byte(selectionsJSON), &e.Selections); err != nil {
		// A corrupt selections blob should not hide the rest of the record.
		e.Selections = pricing.Selections{}
	}

	return e, nil
}

// ListEstimates returns estimates newest-first, optionally filtered by
// a LIKE match on email or breakdown text.
func (s *Store) ListEstimates(ctx context.Context, query string) ([]Estimate, error) {
	search := "%" + query + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, reference, email, total_price, selections_json, breakdown, created_at
		FROM pricing_estimates
		WHERE (? = '' OR email LIKE ? OR breakdown LIKE ?)
		ORDER BY datetime(created_at) DESC, id DESC
	`, query, search, search)
	if err != nil {
		return nil, fmt.Errorf("query pricing estimates: %w", err)
	}
	defer rows.Close()

	estimates := make([]Estimate, 0)
	for rows.Next() {
		var (
			e              Estimate
			selectionsJSON string
		)
		if err := rows.Scan(&e.ID, &e.Reference, &e.Email, &e.TotalPrice, &selectionsJSON, &e.Breakdown, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan pricing estimate: %w", err)
		}
		if err := json.Unmarshal([]byte(selectionsJSON), &e.Selections); err != nil {
			e.Selections = pricing.Selections{}
		}
		estimates = append(estimates, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pricing estimates: %w", err)
	}

	return estimates, nil
}
