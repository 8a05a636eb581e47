package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blogem/emma-oauth/models"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// ExchangeRepository persists exchange metadata
type ExchangeRepository interface {
	Create(ctx context.Context, record *models.ExchangeRecord) error
	GetByID(ctx context.Context, id string) (*models.ExchangeRecord, error)
	ListRecent(ctx context.Context, limit int) ([]models.ExchangeRecord, error)
	CountByOutcome(ctx context.Context) (map[models.ExchangeOutcome]int64, error)
}

type sqliteExchangeRepository struct {
	db *sql.DB
}

// NewExchangeRepository creates a new exchange repository
func NewExchangeRepository(db *sql.DB) ExchangeRepository {
	return &sqliteExchangeRepository{db: db}
}

// Create inserts a new exchange record, assigning ID and CreatedAt when unset
func (r *sqliteExchangeRepository) Create(ctx context.Context, record *models.ExchangeRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO exchange_log (id, request_id, state_hash, outcome, account_id, status_code, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.RequestID,
		record.StateHash,
		string(record.Outcome),
		record.AccountID,
		record.StatusCode,
		record.DurationMs,
		record.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert exchange record: %w", err)
	}
	return nil
}

// GetByID retrieves an exchange record by ID
func (r *sqliteExchangeRepository) GetByID(ctx context.Context, id string) (*models.ExchangeRecord, error) {
	query := `
		SELECT id, request_id, state_hash, outcome, account_id, status_code, duration_ms, created_at
		FROM exchange_log
		WHERE id = ?
	`

	record, err := scanExchange(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange record: %w", err)
	}
	return record, nil
}

// ListRecent returns up to limit records, newest first
func (r *sqliteExchangeRepository) ListRecent(ctx context.Context, limit int) ([]models.ExchangeRecord, error) {
	query := `
		SELECT id, request_id, state_hash, outcome, account_id, status_code, duration_ms, created_at
		FROM exchange_log
		ORDER BY created_at DESC, id
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange records: %w", err)
	}
	defer rows.Close()

	records := []models.ExchangeRecord{}
	for rows.Next() {
		record, err := scanExchange(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exchange record: %w", err)
		}
		records = append(records, *record)
	}

	return records, rows.Err()
}

// CountByOutcome returns the number of records per outcome
func (r *sqliteExchangeRepository) CountByOutcome(ctx context.Context) (map[models.ExchangeOutcome]int64, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT outcome, COUNT(*) FROM exchange_log GROUP BY outcome")
	if err != nil {
		return nil, fmt.Errorf("failed to count exchange records: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.ExchangeOutcome]int64)
	for rows.Next() {
		var outcome string
		var count int64
		if err := rows.Scan(&outcome, &count); err != nil {
			return nil, err
		}
		counts[models.ExchangeOutcome(outcome)] = count
	}

	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExchange(row rowScanner) (*models.ExchangeRecord, error) {
	var record models.ExchangeRecord
	var outcome string
	err := row.Scan(
		&record.ID,
		&record.RequestID,
		&record.StateHash,
		&outcome,
		&record.AccountID,
		&record.StatusCode,
		&record.DurationMs,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	record.Outcome = models.ExchangeOutcome(outcome)
	return &record, nil
}
