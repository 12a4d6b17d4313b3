// Package store provides Store implementations.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/warp/payroll-tracker/generic"
)

// ErrClosed is returned by every operation after Close.
var ErrClosed = errors.New("store closed")

// =============================================================================
// MEMORY STORE - Slice-backed session store (the default)
// =============================================================================

type Memory struct {
	mu        sync.RWMutex
	employees []generic.Employee
	closed    bool
}

var _ generic.Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{}
}

// Append adds a single employee. Append-only.
func (m *Memory) Append(_ context.Context, emp generic.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	if m.indexLocked(emp.ID()) >= 0 {
		return &generic.DuplicateIDError{ID: emp.ID()}
	}
	m.employees = append(m.employees, emp)
	return nil
}

// Exists scans the session linearly.
func (m *Memory) Exists(_ context.Context, id generic.EmployeeID) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return false, ErrClosed
	}
	return m.indexLocked(id) >= 0, nil
}

func (m *Memory) indexLocked(id generic.EmployeeID) int {
	for i, emp := range m.employees {
		if emp.ID() == id {
			return i
		}
	}
	return -1
}

// List returns a copy so callers cannot reorder the session.
func (m *Memory) List(_ context.Context) ([]generic.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrClosed
	}
	result := make([]generic.Employee, len(m.employees))
	copy(result, m.employees)
	return result, nil
}

func (m *Memory) Len(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return 0, ErrClosed
	}
	return len(m.employees), nil
}

// Close drops every record.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.employees = nil
	m.closed = true
	return nil
}
