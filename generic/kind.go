/*
kind.go - Employee kind registration and lookup

PURPOSE:
  Provides a registry for domain packages to register their employee kinds
  together with a decoder. Storage backends that keep records as rows use
  it to turn (kind, id, name, attributes) back into concrete variants
  without importing the payroll package.

HOW IT WORKS:
  1. Domain packages define their Kind implementations
  2. Domain packages register them in init() with a DecodeFunc
  3. Backends call DecodeEmployee when loading a row

USAGE:
  // In payroll/kind.go
  func init() {
      generic.RegisterKind(KindFullTime, decodeFullTime)
  }

  // In store/sqlite
  emp, err := generic.DecodeEmployee("full_time", id, name, attrs)

SEE ALSO:
  - types.go: Kind and Employee interface definitions
  - payroll/kind.go: Concrete kinds
*/
package generic

import (
	"fmt"
	"sync"
)

// DecodeFunc rebuilds an employee of one kind from its stored fields.
type DecodeFunc func(id EmployeeID, name string, attrs Attributes) (Employee, error)

// =============================================================================
// KIND REGISTRY
// =============================================================================

var (
	kindRegistry = make(map[string]DecodeFunc)
	registryMu   sync.RWMutex
)

// RegisterKind adds a kind and its decoder to the global registry.
// Call this from domain package init() functions.
func RegisterKind(k Kind, decode DecodeFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	kindRegistry[k.KindID()] = decode
}

// DecodeEmployee rebuilds a concrete employee through the registered decoder.
func DecodeEmployee(kindID string, id EmployeeID, name string, attrs Attributes) (Employee, error) {
	registryMu.RLock()
	decode, ok := kindRegistry[kindID]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kindID)
	}
	return decode(id, name, attrs)
}
