package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blogem/emma-oauth/models"
)

// StateRepository stores pending authorization states
type StateRepository interface {
	Create(ctx context.Context, state *models.AuthorizationState) error
	// Consume removes and returns the state; a state can be consumed once.
	Consume(ctx context.Context, state string) (*models.AuthorizationState, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type sqliteStateRepository struct {
	db *sql.DB
}

// NewStateRepository creates a new state repository
func NewStateRepository(db *sql.DB) StateRepository {
	return &sqliteStateRepository{db: db}
}

// Create inserts a pending state
func (r *sqliteStateRepository) Create(ctx context.Context, state *models.AuthorizationState) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO authorization_states (state, created_at, expires_at) VALUES (?, ?, ?)",
		state.State, state.CreatedAt.UTC(), state.ExpiresAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert authorization state: %w", err)
	}
	return nil
}

// Consume deletes the state inside a transaction and returns what was stored
func (r *sqliteStateRepository) Consume(ctx context.Context, state string) (*models.AuthorizationState, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	var stored models.AuthorizationState
	err = tx.QueryRowContext(ctx,
		"SELECT state, created_at, expires_at FROM authorization_states WHERE state = ?", state,
	).Scan(&stored.State, &stored.CreatedAt, &stored.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get authorization state: %w", err)
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM authorization_states WHERE state = ?", state)
	if err != nil {
		return nil, fmt.Errorf("failed to delete authorization state: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to delete authorization state: %w", err)
	}
	// Another callback consumed it first.
	if deleted != 1 {
		return nil, ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &stored, nil
}

// DeleteExpired removes states that expired at or before now
func (r *sqliteStateRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM authorization_states WHERE expires_at <= ?", now.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired states: %w", err)
	}
	return result.RowsAffected()
}
