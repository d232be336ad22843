package services

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/lehmann314159/vokab/internal/models"
	"github.com/lehmann314159/vokab/internal/repository"
)

func setupTestService(t *testing.T) (*WordService, func()) {
	t.Helper()

	db, err := repository.OpenSQLiteDB(":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := repository.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	repo := repository.NewSQLiteRepository(db)
	svc := NewWordService(repo, zap.NewNop())

	cleanup := func() {
		db.Close()
	}

	return svc, cleanup
}

func TestWordService_Create(t *testing.T) {
	svc, cleanup := setupTestService(t)
	defer cleanup()

	ctx := context.Background()

	tests := []struct {
		name    string
		req     *models.WordRequest
		wantErr error
	}{
		{
			name: "valid word",
			req: &models.WordRequest{
				Name:     "ephemeral",
				Meaning:  "lasting a very short time",
				Synonyms: []string{"fleeting"},
			},
		},
		{
			name:    "missing name",
			req:     &models.WordRequest{Meaning: "lasting a very short time"},
			wantErr: models.ErrInvalidWord,
		},
		{
			name:    "missing meaning",
			req:     &models.WordRequest{Name: "ephemeral"},
			wantErr: models.ErrInvalidWord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Create(ctx, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr == nil && got.ID == "" {
				t.Error("Create() returned word without an ID")
			}
		})
	}
}

// Names are unique neither in the store nor in the API.
func TestWordService_Create_SameNameTwice(t *testing.T) {
	svc, cleanup := setupTestService(t)
	defer cleanup()

	ctx := context.Background()

	req := &models.WordRequest{Name: "bank", Meaning: "edge of a river"}
	first, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("first Create() failed: %v", err)
	}

	req = &models.WordRequest{Name: "bank", Meaning: "financial institution"}
	second, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("second Create() failed: %v", err)
	}

	if first.ID == second.ID {
		t.Error("Create() reused an ID")
	}

	words, err := svc.FindByName(ctx, "bank")
	if err != nil {
		t.Fatalf("FindByName() error = %v", err)
	}
	if len(words) != 2 {
		t.Errorf("FindByName() returned %d words, want 2", len(words))
	}
}

func TestWordService_FindByName_LowerCases(t *testing.T) {
	svc, cleanup := setupTestService(t)
	defer cleanup()

	ctx := context.Background()

	svc.Create(ctx, &models.WordRequest{Name: "serendipity", Meaning: "a happy accident"})

	words, err := svc.FindByName(ctx, "SERENDIPITY")
	if err != nil {
		t.Fatalf("FindByName() error = %v", err)
	}
	if len(words) != 1 {
		t.Fatalf("FindByName() returned %d words, want 1", len(words))
	}

	words, err = svc.FindByName(ctx, "unknown")
	if err != nil {
		t.Fatalf("FindByName() error = %v", err)
	}
	if words == nil || len(words) != 0 {
		t.Errorf("FindByName() = %v, want empty slice", words)
	}
}

func TestWordService_Update(t *testing.T) {
	svc, cleanup := setupTestService(t)
	defer cleanup()

	ctx := context.Background()

	origin := "Greek"
	created, _ := svc.Create(ctx, &models.WordRequest{
		Name:     "ephemeral",
		Meaning:  "short-lived",
		Origin:   &origin,
		Synonyms: []string{"fleeting"},
	})

	// Replacement drops fields the request leaves out
	updated, err := svc.Update(ctx, created.ID, &models.WordRequest{
		Name:    "ephemeral",
		Meaning: "lasting a very short time",
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.ID != created.ID {
		t.Errorf("Update() id = %v, want %v", updated.ID, created.ID)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Meaning != "lasting a very short time" {
		t.Errorf("Update() meaning = %v", got.Meaning)
	}
	if got.Origin != nil {
		t.Errorf("Update() kept origin %q", *got.Origin)
	}
	if len(got.Synonyms) != 0 {
		t.Errorf("Update() kept synonyms %v", got.Synonyms)
	}

	_, err = svc.Update(ctx, created.ID, &models.WordRequest{Name: "ephemeral"})
	if !errors.Is(err, models.ErrInvalidWord) {
		t.Errorf("Update() with no meaning error = %v, want ErrInvalidWord", err)
	}

	_, err = svc.Update(ctx, "9999", &models.WordRequest{Name: "a", Meaning: "b"})
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Update() missing word error = %v, want ErrNotFound", err)
	}
}

func TestWordService_CreateMany(t *testing.T) {
	svc, cleanup := setupTestService(t)
	defer cleanup()

	ctx := context.Background()

	created, err := svc.CreateMany(ctx, []*models.WordRequest{
		{Name: "alpha", Meaning: "first"},
		{Name: "beta", Meaning: "second"},
	})
	if err != nil {
		t.Fatalf("CreateMany() error = %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("CreateMany() returned %d words, want 2", len(created))
	}

	// One bad entry keeps the whole batch out
	_, err = svc.CreateMany(ctx, []*models.WordRequest{
		{Name: "gamma", Meaning: "third"},
		{Name: "delta"},
	})
	if !errors.Is(err, models.ErrInvalidWord) {
		t.Errorf("CreateMany() error = %v, want ErrInvalidWord", err)
	}

	count, err := svc.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, want 2", count)
	}
}

func TestWordService_Delete(t *testing.T) {
	svc, cleanup := setupTestService(t)
	defer cleanup()

	ctx := context.Background()

	created, _ := svc.Create(ctx, &models.WordRequest{Name: "ephemeral", Meaning: "short-lived"})

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}

	if err := svc.Delete(ctx, created.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestWordService_ListPage(t *testing.T) {
	svc, cleanup := setupTestService(t)
	defer cleanup()

	ctx := context.Background()

	for _, name := range []string{"cherry", "apple", "banana"} {
		svc.Create(ctx, &models.WordRequest{Name: name, Meaning: "fruit"})
	}

	page, err := svc.ListPage(ctx, models.PageRequest{PageSize: 2, PageNumber: 1})
	if err != nil {
		t.Fatalf("ListPage() error = %v", err)
	}

	if len(page.Words) != 2 || page.Words[0].Name != "apple" || page.Words[1].Name != "banana" {
		t.Errorf("ListPage() words = %v, want apple, banana", page.Words)
	}
	if page.Pagination.TotalCount != 3 {
		t.Errorf("ListPage() total = %d, want 3", page.Pagination.TotalCount)
	}
	if page.Links.Next != "/words/list?pageNumber=2&pageSize=2" {
		t.Errorf("ListPage() next = %q", page.Links.Next)
	}
}
