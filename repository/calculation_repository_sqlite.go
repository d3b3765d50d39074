package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"calcdesk/domain"
)

// Fixed-width so that created_at sorts lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteCalculationRepository persists calculation records in a SQLite file.
type SQLiteCalculationRepository struct {
	db   *sql.DB
	path string
}

// NewSQLiteCalculationRepository opens (creating if needed) the database at
// path and prepares the schema.
func NewSQLiteCalculationRepository(path string) (*SQLiteCalculationRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single writer avoids SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)

	repo := &SQLiteCalculationRepository{db: db, path: path}
	if err := repo.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return repo, nil
}

// Close closes the database connection.
func (r *SQLiteCalculationRepository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *SQLiteCalculationRepository) Path() string {
	return r.path
}

func (r *SQLiteCalculationRepository) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS calculations (
		id TEXT PRIMARY KEY,
		calculator TEXT NOT NULL,
		locale TEXT NOT NULL,
		input_json TEXT NOT NULL,
		result_json TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_calculations_calculator
		ON calculations(calculator, created_at);
	`
	_, err := r.db.Exec(schema)
	return err
}

func (r *SQLiteCalculationRepository) Save(ctx context.Context, record domain.CalculationRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO calculations (id, calculator, locale, input_json, result_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID.String(),
		record.Calculator,
		record.Locale,
		string(record.Input),
		string(record.Result),
		record.CreatedAt.UTC().Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("insert calculation %s: %w", record.ID, err)
	}
	return nil
}

func (r *SQLiteCalculationRepository) Get(ctx context.Context, id uuid.UUID) (domain.CalculationRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, calculator, locale, input_json, result_json, created_at
		 FROM calculations WHERE id = ?`, id.String())

	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CalculationRecord{}, ErrRecordNotFound
	}
	return record, err
}

func (r *SQLiteCalculationRepository) List(ctx context.Context, calculator string, limit int) ([]domain.CalculationRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, calculator, locale, input_json, result_json, created_at
		 FROM calculations
		 WHERE ? = '' OR calculator = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`, calculator, calculator, limit)
	if err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	defer rows.Close()

	out := []domain.CalculationRecord{}
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (domain.CalculationRecord, error) {
	var (
		id, calculator, locale, input, result, created string
	)
	if err := row.Scan(&id, &calculator, &locale, &input, &result, &created); err != nil {
		return domain.CalculationRecord{}, err
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return domain.CalculationRecord{}, fmt.Errorf("corrupt id %q: %w", id, err)
	}
	createdAt, err := time.Parse(timestampLayout, created)
	if err != nil {
		return domain.CalculationRecord{}, fmt.Errorf("corrupt timestamp %q: %w", created, err)
	}

	return domain.CalculationRecord{
		ID:         parsedID,
		Calculator: calculator,
		Locale:     locale,
		Input:      []byte(input),
		Result:     []byte(result),
		CreatedAt:  createdAt,
	}, nil
}
