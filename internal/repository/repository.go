package repository

import (
	"context"

	"github.com/lehmann314159/vokab/internal/models"
)

// WordRepository defines the interface for word persistence operations
type WordRepository interface {
	// Create inserts a new word and returns it with its assigned ID
	Create(ctx context.Context, word *models.Word) (*models.Word, error)

	// CreateMany inserts a batch of already validated words. SQLite
	// commits them in one transaction. MongoDB issues one ordered
	// InsertMany, so a failure partway leaves the earlier documents stored.
	CreateMany(ctx context.Context, words []*models.Word) ([]*models.Word, error)

	// GetByID retrieves a word by its ID
	GetByID(ctx context.Context, id string) (*models.Word, error)

	// FindByName retrieves every word whose name matches exactly
	FindByName(ctx context.Context, name string) ([]*models.Word, error)

	// List retrieves the whole collection
	List(ctx context.Context, opts models.ListOptions) ([]*models.Word, error)

	// ListNames returns the name of every word, sorted ascending
	ListNames(ctx context.Context) ([]string, error)

	// Replace overwrites every field of the word with the given ID
	Replace(ctx context.Context, id string, word *models.Word) (*models.Word, error)

	// Delete removes a word by ID
	Delete(ctx context.Context, id string) error

	// Count returns the total number of words
	Count(ctx context.Context) (int64, error)
}

// Store is a WordRepository with an explicit connection lifecycle
type Store interface {
	WordRepository

	// Ping checks that the backing database is reachable
	Ping(ctx context.Context) error

	// Close releases the connection
	Close(ctx context.Context) error
}
