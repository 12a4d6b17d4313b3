/*
store.go - Session store interface

PURPOSE:
  Defines the interface between the menu loop and wherever the session's
  employees are kept. Two implementations exist: a slice in memory and an
  in-memory SQLite database. Neither survives the run.

APPEND-ONLY CONTRACT:
  - Append(): Single record write, rejects duplicate IDs
  - NO Update() or Delete() methods exist
  - Close() releases every record at the end of the session

ORDERING:
  List() returns records in insertion order. Report order is insertion
  order.

IMPLEMENTATIONS:
  - generic/store/memory.go: Slice-backed (default)
  - store/sqlite/sqlite.go: SQLite ":memory:" database

SEE ALSO:
  - kind.go: Registry used by backends that serialize records
  - console/session.go: The only writer
*/
package generic

import "context"

// Store holds the employees of one session.
// IMPORTANT: Store is APPEND-ONLY. No Update, No Delete.
type Store interface {
	// Append persists an employee. Returns a *DuplicateIDError (wrapping
	// ErrDuplicateID) if the ID is already taken.
	Append(ctx context.Context, emp Employee) error

	// Exists reports whether an employee with this ID is stored.
	Exists(ctx context.Context, id EmployeeID) (bool, error)

	// List returns all employees in insertion order.
	List(ctx context.Context) ([]Employee, error)

	// Len returns the number of stored employees.
	Len(ctx context.Context) (int, error)

	// Close releases all records. The store is unusable afterwards.
	Close() error
}
