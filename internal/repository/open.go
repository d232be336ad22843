package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

// Backend identifies which store a database URL points at
type Backend string

const (
	BackendMongo  Backend = "mongodb"
	BackendSQLite Backend = "sqlite"
)

// Options configures Open
type Options struct {
	URL        string
	Database   string
	Collection string
	Timeout    time.Duration
}

// ParseBackend picks the backend from the URL scheme. It returns the
// backend and, for SQLite, the DSN handed to the driver.
func ParseBackend(url string) (Backend, string, error) {
	switch {
	case strings.HasPrefix(url, "mongodb://"), strings.HasPrefix(url, "mongodb+srv://"):
		return BackendMongo, url, nil
	case strings.HasPrefix(url, "sqlite://"):
		dsn := strings.TrimPrefix(url, "sqlite://")
		if dsn == "" {
			return "", "", fmt.Errorf("sqlite url %q has no path", url)
		}
		return BackendSQLite, dsn, nil
	case strings.HasPrefix(url, "file:"), url == ":memory:":
		return BackendSQLite, url, nil
	default:
		return "", "", fmt.Errorf("unsupported database url %q", url)
	}
}

// Open connects to the configured store, pings it and, for SQLite,
// applies pending migrations. The caller owns the returned Store and
// must Close it.
func Open(ctx context.Context, opts Options, logger *zap.Logger) (Store, error) {
	backend, dsn, err := ParseBackend(opts.URL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	switch backend {
	case BackendMongo:
		return openMongo(ctx, dsn, opts, logger)
	default:
		return openSQLite(ctx, dsn, logger)
	}
}

func openMongo(ctx context.Context, uri string, opts Options, logger *zap.Logger) (Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri).SetConnectTimeout(opts.Timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	repo := NewMongoRepository(client, client.Database(opts.Database).Collection(opts.Collection))
	if err := repo.Ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info("Connected to MongoDB",
		zap.String("database", opts.Database),
		zap.String("collection", opts.Collection),
	)
	return repo, nil
}

func openSQLite(ctx context.Context, dsn string, logger *zap.Logger) (Store, error) {
	db, err := OpenSQLiteDB(dsn)
	if err != nil {
		return nil, err
	}

	repo := NewSQLiteRepository(db)
	if err := repo.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}

	changed, err := Migrate(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	if changed {
		logger.Info("Database migrations applied")
	} else {
		logger.Info("No new migrations to apply")
	}

	logger.Info("Connected to SQLite", zap.String("dsn", dsn))
	return repo, nil
}

// OpenSQLiteDB opens a SQLite handle limited to one connection, so an
// in-memory database is shared by every query.
func OpenSQLiteDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
