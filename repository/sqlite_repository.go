package repository

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/odinmillion/dubai-mortgage-calculator/domain"
)

// SQLiteRepository persists calculations to a SQLite database.
type SQLiteRepository struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRepository opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so history reads don't block writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRepository{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

func (r *SQLiteRepository) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS calculations (
			id              TEXT PRIMARY KEY,
			created_at      INTEGER NOT NULL,
			amount          REAL NOT NULL,
			annual_rate     REAL NOT NULL,
			term_months     INTEGER NOT NULL,
			monthly_payment REAL NOT NULL,
			total_payment   REAL NOT NULL,
			total_interest  REAL NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_calculations_created ON calculations(created_at)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// Save inserts one calculation row.
func (r *SQLiteRepository) Save(
	input domain.MortgageInput,
	result domain.MortgageResult,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO calculations
		(id, created_at, amount, annual_rate, term_months,
		 monthly_payment, total_payment, total_interest)
		VALUES (?,?,?,?,?,?,?,?)`,
		uuid.New().String(), time.Now().Unix(),
		input.Amount, input.AnnualRate, input.TermMonths,
		result.MonthlyPayment, result.TotalPayment, result.TotalInterest,
	)
	return err
}

// List returns up to limit rows, newest first.
func (r *SQLiteRepository) List(limit int) ([]domain.CalculationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT id, created_at, amount, annual_rate, term_months,
		monthly_payment, total_payment, total_interest
		FROM calculations ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query calculations: %w", err)
	}
	defer rows.Close()

	records := []domain.CalculationRecord{}
	for rows.Next() {
		var rec domain.CalculationRecord
		var ts int64
		if err := rows.Scan(&rec.ID, &ts,
			&rec.Input.Amount, &rec.Input.AnnualRate, &rec.Input.TermMonths,
			&rec.Result.MonthlyPayment, &rec.Result.TotalPayment, &rec.Result.TotalInterest,
		); err != nil {
			return nil, fmt.Errorf("scan calculation: %w", err)
		}
		rec.CreatedAt = time.Unix(ts, 0)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
