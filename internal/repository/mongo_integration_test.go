package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/lehmann314159/vokab/internal/models"
)

// setupTestMongo returns a repository on a fresh collection of the server
// at VOKAB_TEST_MONGO_URL. The database is dropped when the test ends.
func setupTestMongo(t *testing.T) *MongoRepository {
	t.Helper()

	uri := os.Getenv("VOKAB_TEST_MONGO_URL")
	if uri == "" {
		t.Skip("VOKAB_TEST_MONGO_URL not set")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri).SetConnectTimeout(5 * time.Second))
	require.NoError(t, err)

	db := client.Database("vokab_test_" + bson.NewObjectID().Hex())
	repo := NewMongoRepository(client, db.Collection("words"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, repo.Ping(ctx))

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return repo
}

func TestMongoRepository_Create(t *testing.T) {
	repo := setupTestMongo(t)
	ctx := context.Background()

	tests := []struct {
		name string
		word *models.Word
	}{
		{
			name: "create word with all fields",
			word: &models.Word{
				Name:          "serendipity",
				Meaning:       "a happy accident or pleasant surprise",
				Origin:        strPtr("from the Persian fairy tale 'The Three Princes of Serendip'"),
				Pronunciation: strPtr("ˌserənˈdipədē"),
				Synonyms:      []string{"fluke", "chance"},
				Antonyms:      []string{"misfortune"},
				UsageExamples: []string{"It was pure serendipity that we met."},
			},
		},
		{
			name: "create word with minimal fields",
			word: &models.Word{Name: "ubiquitous", Meaning: "present everywhere"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := repo.Create(ctx, tt.word)
			require.NoError(t, err)
			require.NotEmpty(t, created.ID)

			got, err := repo.GetByID(ctx, created.ID)
			require.NoError(t, err)

			assert.Equal(t, created.ID, got.ID)
			assert.Equal(t, tt.word.Name, got.Name)
			assert.Equal(t, tt.word.Meaning, got.Meaning)
			assert.Equal(t, tt.word.Origin, got.Origin)
			assert.Equal(t, tt.word.Pronunciation, got.Pronunciation)
			assert.Equal(t, created.Synonyms, got.Synonyms)
			assert.Equal(t, created.Antonyms, got.Antonyms)
			assert.Equal(t, created.UsageExamples, got.UsageExamples)
		})
	}
}

func TestMongoRepository_GetByID(t *testing.T) {
	repo := setupTestMongo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.Word{Name: "ephemeral", Meaning: "short-lived"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{name: "existing word", id: created.ID},
		{name: "missing word", id: bson.NewObjectID().Hex(), wantErr: models.ErrNotFound},
		{name: "malformed id", id: "42", wantErr: models.ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ephemeral", got.Name)
		})
	}
}

func TestMongoRepository_FindByName(t *testing.T) {
	repo := setupTestMongo(t)
	ctx := context.Background()

	for _, w := range []*models.Word{
		{Name: "bank", Meaning: "edge of a river"},
		{Name: "bank", Meaning: "financial institution"},
		{Name: "river", Meaning: "flowing water"},
	} {
		_, err := repo.Create(ctx, w)
		require.NoError(t, err)
	}

	words, err := repo.FindByName(ctx, "bank")
	require.NoError(t, err)
	assert.Len(t, words, 2)

	words, err = repo.FindByName(ctx, "lake")
	require.NoError(t, err)
	assert.NotNil(t, words)
	assert.Empty(t, words)
}

func TestMongoRepository_ListAndNames(t *testing.T) {
	repo := setupTestMongo(t)
	ctx := context.Background()

	words, err := repo.List(ctx, models.ListOptions{SortByName: true})
	require.NoError(t, err)
	assert.NotNil(t, words)
	assert.Empty(t, words)

	for _, name := range []string{"cherry", "apple", "banana"} {
		_, err := repo.Create(ctx, &models.Word{Name: name, Meaning: "fruit"})
		require.NoError(t, err)
	}

	words, err = repo.List(ctx, models.ListOptions{SortByName: true})
	require.NoError(t, err)
	require.Len(t, words, 3)
	assert.Equal(t, "apple", words[0].Name)
	assert.Equal(t, "banana", words[1].Name)
	assert.Equal(t, "cherry", words[2].Name)

	words, err = repo.List(ctx, models.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, words, 3)

	names, err := repo.ListNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana", "cherry"}, names)
}

func TestMongoRepository_CreateMany(t *testing.T) {
	repo := setupTestMongo(t)
	ctx := context.Background()

	input := []*models.Word{
		{Name: "alpha", Meaning: "first"},
		{Name: "beta", Meaning: "second", Synonyms: []string{"b"}},
	}

	created, err := repo.CreateMany(ctx, input)
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.NotEqual(t, created[0].ID, created[1].ID)

	for _, w := range created {
		got, err := repo.GetByID(ctx, w.ID)
		require.NoError(t, err)
		assert.Equal(t, w.Name, got.Name)
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestMongoRepository_Replace(t *testing.T) {
	repo := setupTestMongo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.Word{
		Name:     "ephemeral",
		Meaning:  "short-lived",
		Origin:   strPtr("Greek"),
		Synonyms: []string{"fleeting"},
	})
	require.NoError(t, err)

	updated, err := repo.Replace(ctx, created.ID, &models.Word{
		Name:     "ephemeral",
		Meaning:  "lasting a very short time",
		Antonyms: []string{"permanent"},
	})
	require.NoError(t, err)

	// The returned document is the stored one after replacement
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "lasting a very short time", updated.Meaning)
	assert.Nil(t, updated.Origin)
	assert.Equal(t, []string{}, updated.Synonyms)
	assert.Equal(t, []string{"permanent"}, updated.Antonyms)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	_, err = repo.Replace(ctx, bson.NewObjectID().Hex(), &models.Word{Name: "a", Meaning: "b"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMongoRepository_Delete(t *testing.T) {
	repo := setupTestMongo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.Word{Name: "serendipity", Meaning: "a happy accident"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	err = repo.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMongoRepository_Count(t *testing.T) {
	repo := setupTestMongo(t)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	for _, name := range []string{"one", "two", "three"} {
		_, err := repo.Create(ctx, &models.Word{Name: name, Meaning: "number"})
		require.NoError(t, err)
	}

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
