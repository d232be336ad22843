package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/lehmann314159/vokab/internal/models"
)

const wordColumns = `id, name, meaning, origin, pronunciation, synonyms, antonyms, usage_examples`

// SQLiteRepository implements Store using SQLite, keeping list fields as JSON text
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite repository
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// execer is satisfied by both *sql.DB and *sql.Tx
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// scanner is satisfied by both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// Create inserts a new word and returns the created word with ID
func (r *SQLiteRepository) Create(ctx context.Context, word *models.Word) (*models.Word, error) {
	id, err := r.insert(ctx, r.db, word)
	if err != nil {
		return nil, err
	}
	return withID(word, id), nil
}

// CreateMany inserts all words in a single transaction
func (r *SQLiteRepository) CreateMany(ctx context.Context, words []*models.Word) ([]*models.Word, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, &models.StoreError{Op: "begin transaction", Err: err}
	}
	defer tx.Rollback()

	created := make([]*models.Word, 0, len(words))
	for _, word := range words {
		id, err := r.insert(ctx, tx, word)
		if err != nil {
			return nil, err
		}
		created = append(created, withID(word, id))
	}

	if err := tx.Commit(); err != nil {
		return nil, &models.StoreError{Op: "commit transaction", Err: err}
	}
	return created, nil
}

func (r *SQLiteRepository) insert(ctx context.Context, ex execer, word *models.Word) (int64, error) {
	synonyms, antonyms, examples, err := marshalLists(word)
	if err != nil {
		return 0, err
	}

	result, err := ex.ExecContext(ctx,
		`INSERT INTO words (name, meaning, origin, pronunciation, synonyms, antonyms, usage_examples)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		word.Name, word.Meaning, word.Origin, word.Pronunciation, synonyms, antonyms, examples,
	)
	if err != nil {
		return 0, &models.StoreError{Op: "insert word", Err: err}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, &models.StoreError{Op: "get last insert id", Err: err}
	}
	return id, nil
}

// GetByID retrieves a word by its ID
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Word, error) {
	rowID, err := parseRowID(id)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+wordColumns+` FROM words WHERE id = ?`, rowID)
	word, err := scanWord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	return word, err
}

// FindByName retrieves every word with exactly this name
func (r *SQLiteRepository) FindByName(ctx context.Context, name string) ([]*models.Word, error) {
	return r.query(ctx, `SELECT `+wordColumns+` FROM words WHERE name = ? ORDER BY id`, name)
}

// List retrieves the whole collection
func (r *SQLiteRepository) List(ctx context.Context, opts models.ListOptions) ([]*models.Word, error) {
	query := `SELECT ` + wordColumns + ` FROM words`
	if opts.SortByName {
		query += ` ORDER BY name ASC, id ASC`
	}
	return r.query(ctx, query)
}

// ListNames returns every name sorted ascending
func (r *SQLiteRepository) ListNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM words ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, &models.StoreError{Op: "query names", Err: err}
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, &models.StoreError{Op: "scan name", Err: err}
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, &models.StoreError{Op: "iterate names", Err: err}
	}
	return names, nil
}

// Replace overwrites an existing word
func (r *SQLiteRepository) Replace(ctx context.Context, id string, word *models.Word) (*models.Word, error) {
	rowID, err := parseRowID(id)
	if err != nil {
		return nil, err
	}

	synonyms, antonyms, examples, err := marshalLists(word)
	if err != nil {
		return nil, err
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE words SET name = ?, meaning = ?, origin = ?, pronunciation = ?,
		 synonyms = ?, antonyms = ?, usage_examples = ? WHERE id = ?`,
		word.Name, word.Meaning, word.Origin, word.Pronunciation, synonyms, antonyms, examples, rowID,
	)
	if err != nil {
		return nil, &models.StoreError{Op: "update word", Err: err}
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, &models.StoreError{Op: "get rows affected", Err: err}
	}
	if rowsAffected == 0 {
		return nil, models.ErrNotFound
	}

	return withID(word, rowID), nil
}

// Delete removes a word by ID
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	rowID, err := parseRowID(id)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM words WHERE id = ?`, rowID)
	if err != nil {
		return &models.StoreError{Op: "delete word", Err: err}
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return &models.StoreError{Op: "get rows affected", Err: err}
	}

	if rowsAffected == 0 {
		return models.ErrNotFound
	}

	return nil
}

// Count returns the total number of words
func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&count)
	if err != nil {
		return 0, &models.StoreError{Op: "count words", Err: err}
	}
	return count, nil
}

// Ping checks the database connection
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return &models.StoreError{Op: "ping sqlite", Err: err}
	}
	return nil
}

// Close closes the database
func (r *SQLiteRepository) Close(_ context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) query(ctx context.Context, query string, args ...any) ([]*models.Word, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &models.StoreError{Op: "query words", Err: err}
	}
	defer rows.Close()

	words := []*models.Word{}
	for rows.Next() {
		word, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}

	if err := rows.Err(); err != nil {
		return nil, &models.StoreError{Op: "iterate words", Err: err}
	}

	return words, nil
}

// scanWord scans a single row into a Word struct
func scanWord(row scanner) (*models.Word, error) {
	var word models.Word
	var id int64
	var origin, pronunciation sql.NullString
	var synonyms, antonyms, examples string

	err := row.Scan(&id, &word.Name, &word.Meaning, &origin, &pronunciation, &synonyms, &antonyms, &examples)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, &models.StoreError{Op: "scan word", Err: err}
	}

	word.ID = strconv.FormatInt(id, 10)
	if origin.Valid {
		word.Origin = &origin.String
	}
	if pronunciation.Valid {
		word.Pronunciation = &pronunciation.String
	}

	for _, f := range []struct {
		raw  string
		dest *[]string
	}{
		{synonyms, &word.Synonyms},
		{antonyms, &word.Antonyms},
		{examples, &word.UsageExamples},
	} {
		if err := json.Unmarshal([]byte(f.raw), f.dest); err != nil {
			return nil, &models.StoreError{Op: "unmarshal word lists", Err: err}
		}
	}

	word.Normalize()
	return &word, nil
}

func marshalLists(word *models.Word) (string, string, string, error) {
	encoded := make([]string, 3)
	for i, list := range [][]string{word.Synonyms, word.Antonyms, word.UsageExamples} {
		if list == nil {
			list = []string{}
		}
		b, err := json.Marshal(list)
		if err != nil {
			return "", "", "", fmt.Errorf("failed to marshal word lists: %w", err)
		}
		encoded[i] = string(b)
	}
	return encoded[0], encoded[1], encoded[2], nil
}

func parseRowID(id string) (int64, error) {
	rowID, err := strconv.ParseInt(id, 10, 64)
	if err != nil || rowID <= 0 {
		return 0, models.ErrInvalidID
	}
	return rowID, nil
}

func withID(word *models.Word, id int64) *models.Word {
	created := *word
	created.ID = strconv.FormatInt(id, 10)
	created.Normalize()
	return &created
}
