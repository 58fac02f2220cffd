package credentials

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/carebook/carebook/internal/client/migrations"
	"github.com/carebook/carebook/internal/client/models"
	"github.com/carebook/carebook/internal/dbx"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// Storage keys, matching what the mobile app kept in device storage.
const (
	keyAccessToken = "access_token"
	keyUserData    = "user_data"
)

// OpenDatabase opens the client SQLite database at dsn and applies the
// embedded goose migrations.
func OpenDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

// SQLiteRepository stores credentials in a two-row key/value table.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) get(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Token(ctx context.Context) (string, error) {
	value, err := r.get(ctx, r.db, keyAccessToken)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

func (r *SQLiteRepository) Profile(ctx context.Context) (*models.User, error) {
	value, err := r.get(ctx, r.db, keyUserData)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal(value, &user); err != nil {
		return nil, fmt.Errorf("failed to decode stored profile: %w", err)
	}
	return &user, nil
}

// Save writes the token and the serialized profile in one transaction, so a
// failure on either write leaves the store unchanged.
func (r *SQLiteRepository) Save(ctx context.Context, token string, profile *models.User) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyAccessToken, []byte(token)); err != nil {
			return err
		}
		return set(ctx, tx, keyUserData, data)
	})
}

// Clear removes both entries in one transaction.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM credentials WHERE key IN (?, ?)`, keyAccessToken, keyUserData)
		if err != nil {
			return fmt.Errorf("failed to clear credentials: %w", err)
		}
		return nil
	})
}
