/*
Package sqlite provides a SQLite-backed implementation of generic.Store.

PURPOSE:
  Keeps the session's employees in an in-memory SQLite database. The
  database lives only as long as the process: New always opens ":memory:",
  so nothing survives the run.

INTERFACES IMPLEMENTED:
  generic.Store: Append-only employee session store

APPEND-ONLY ENFORCEMENT:
  - No UPDATE statements on employees table
  - No DELETE statements on employees table
  - Duplicate IDs rejected by the PRIMARY KEY constraint

KEY TABLES:
  employees: One row per employee. Variant fields are kept as a JSON
             object in attributes_json and rebuilt through the kind
             registry on load.

ORDERING:
  seq is an AUTOINCREMENT column, so ORDER BY seq is insertion order.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. The database/sql pool is pinned to
  a single connection because every new connection to ":memory:" would
  open a different, empty database.

USAGE:
  store, err := sqlite.New()
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - generic/store.go: Interface definition
  - generic/kind.go: Decoder registry
  - generic/store/memory.go: Slice-backed implementation
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/payroll-tracker/generic"
)

// Store implements generic.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ generic.Store = (*Store)(nil)

// New opens a fresh in-memory SQLite database and creates the schema.
func New() (*Store, error) {
	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection, which discards every row.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Employees (append-only for the session)
	CREATE TABLE IF NOT EXISTS employees (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id INTEGER NOT NULL UNIQUE CHECK (id > 0),
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		attributes_json TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_employees_kind
		ON employees(kind);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// EMPLOYEE STORE (generic.Store interface)
// =============================================================================

// Append adds an employee to the session.
func (s *Store) Append(ctx context.Context, emp generic.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	attrsJSON, err := json.Marshal(emp.Attributes())
	if err != nil {
		return fmt.Errorf("failed to encode attributes: %w", err)
	}

	query := `
		INSERT INTO employees (id, name, kind, attributes_json, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		int(emp.ID()),
		emp.Name(),
		emp.Kind().KindID(),
		string(attrsJSON),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return &generic.DuplicateIDError{ID: emp.ID()}
		}
		return fmt.Errorf("failed to append employee: %w", err)
	}

	return nil
}

// Exists checks if an employee ID is taken.
func (s *Store) Exists(ctx context.Context, id generic.EmployeeID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM employees WHERE id = ?",
		int(id),
	).Scan(&count)

	return count > 0, err
}

// List returns all employees in insertion order.
func (s *Store) List(ctx context.Context) ([]generic.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, kind, attributes_json
		FROM employees
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []generic.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// Len returns the number of rows.
func (s *Store) Len(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM employees").Scan(&count)
	return count, err
}

func scanEmployee(rows *sql.Rows) (generic.Employee, error) {
	var (
		id        int
		name      string
		kindID    string
		attrsJSON string
	)

	if err := rows.Scan(&id, &name, &kindID, &attrsJSON); err != nil {
		return nil, fmt.Errorf("failed to scan employee: %w", err)
	}

	var attrs generic.Attributes
	if err := json.Unmarshal([]byte(attrsJSON), &attrs); err != nil {
		return nil, fmt.Errorf("failed to decode attributes of employee %d: %w", id, err)
	}

	// Convert the stored kind back to a concrete variant via the registry
	emp, err := generic.DecodeEmployee(kindID, generic.EmployeeID(id), name, attrs)
	if err != nil {
		return nil, fmt.Errorf("failed to decode employee %d: %w", id, err)
	}
	return emp, nil
}

// Helper functions

func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
