package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/lehmann314159/vokab/internal/models"
	"github.com/lehmann314159/vokab/internal/repository"
)

// WordService provides business logic for word operations
type WordService struct {
	repo   repository.WordRepository
	logger *zap.Logger
}

// NewWordService creates a new word service
func NewWordService(repo repository.WordRepository, logger *zap.Logger) *WordService {
	return &WordService{
		repo:   repo,
		logger: logger,
	}
}

// List returns every word in store order
func (s *WordService) List(ctx context.Context) ([]*models.Word, error) {
	return s.repo.List(ctx, models.ListOptions{})
}

// GetByID retrieves a word by ID
func (s *WordService) GetByID(ctx context.Context, id string) (*models.Word, error) {
	return s.repo.GetByID(ctx, id)
}

// FindByName returns the words named name, matched in lower case
func (s *WordService) FindByName(ctx context.Context, name string) ([]*models.Word, error) {
	return s.repo.FindByName(ctx, strings.ToLower(name))
}

// ListNames returns all names sorted ascending
func (s *WordService) ListNames(ctx context.Context) ([]string, error) {
	return s.repo.ListNames(ctx)
}

// Count returns the total number of words
func (s *WordService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// ListPage loads the name-sorted collection and cuts one page from it
func (s *WordService) ListPage(ctx context.Context, req models.PageRequest) (*models.Page, error) {
	all, err := s.repo.List(ctx, models.ListOptions{SortByName: true})
	if err != nil {
		return nil, err
	}
	return Paginate(all, req, ListPath), nil
}

// Create validates and persists a new word
func (s *WordService) Create(ctx context.Context, req *models.WordRequest) (*models.Word, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, req.ToWord())
}

// CreateMany validates every request before writing any of them
func (s *WordService) CreateMany(ctx context.Context, reqs []*models.WordRequest) ([]*models.Word, error) {
	words := make([]*models.Word, 0, len(reqs))
	for i, req := range reqs {
		if req == nil {
			return nil, fmt.Errorf("word %d: %w", i+1, &models.ValidationError{Field: "name"})
		}
		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("word %d: %w", i+1, err)
		}
		words = append(words, req.ToWord())
	}

	created, err := s.repo.CreateMany(ctx, words)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Inserted words", zap.Int("count", len(created)))
	return created, nil
}

// Update replaces every field of an existing word
func (s *WordService) Update(ctx context.Context, id string, req *models.WordRequest) (*models.Word, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Replace(ctx, id, req.ToWord())
}

// Delete deletes a word by ID
func (s *WordService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
