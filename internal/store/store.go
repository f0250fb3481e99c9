// Package store handles SQLite persistence of the patient roster.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/speechdrill/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

var (
	// ErrPatientNotFound is returned when no patient has the requested ID.
	ErrPatientNotFound = errors.New("patient not found")
	// ErrInvalidPatient is returned for patients failing validation.
	ErrInvalidPatient = errors.New("invalid patient")
)

// timeLayout is fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps SQLite access for patient data.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS patients (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			age INTEGER NOT NULL,
			problem TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_patients_created_at ON patients(created_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePatient checks the fields a roster entry needs.
func ValidatePatient(p model.Patient) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidPatient)
	}
	if p.Age < 0 {
		return fmt.Errorf("%w: age must be >= 0", ErrInvalidPatient)
	}
	return nil
}

// AddPatient stores a patient, assigning an ID and creation time when unset.
func (s *Store) AddPatient(ctx context.Context, p model.Patient) (model.Patient, error) {
	if err := ValidatePatient(p); err != nil {
		return model.Patient{}, err
	}
	p.Name = strings.TrimSpace(p.Name)
	p.Problem = strings.TrimSpace(p.Problem)
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO patients (id, name, age, problem, created_at) VALUES (?, ?, ?, ?, ?)`,
		p.ID,
		p.Name,
		p.Age,
		p.Problem,
		p.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return model.Patient{}, err
	}
	return p, nil
}

// ListPatients returns every patient in creation order.
func (s *Store) ListPatients(ctx context.Context) ([]model.Patient, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, age, problem, created_at FROM patients ORDER BY created_at ASC, rowid ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetPatient returns the patient with id.
func (s *Store) GetPatient(ctx context.Context, id string) (model.Patient, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, age, problem, created_at FROM patients WHERE id = ?`, id)
	p, err := scanPatient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Patient{}, ErrPatientNotFound
	}
	if err != nil {
		return model.Patient{}, err
	}
	return p, nil
}

// DeletePatient removes the patient with id.
func (s *Store) DeletePatient(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM patients WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPatientNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPatient(row scanner) (model.Patient, error) {
	var (
		p       model.Patient
		created string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Age, &p.Problem, &created); err != nil {
		return model.Patient{}, err
	}
	t, err := time.Parse(timeLayout, created)
	if err != nil {
		return model.Patient{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	p.CreatedAt = t
	return p, nil
}
