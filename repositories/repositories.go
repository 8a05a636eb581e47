package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Exchanges ExchangeRepository
	States    StateRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Exchanges: NewExchangeRepository(db),
		States:    NewStateRepository(db),
	}
}
