/*
Package generic provides the kind-agnostic core of the payroll tracker.

PURPOSE:
  This package holds the types every other package shares: money, employee
  identifiers, the Employee capability that each pay variant implements,
  the session Store contract and the kind registry. It knows nothing about
  salaries, wages or projects; those live in the payroll package.

KEY CONCEPTS IN THIS FILE (types.go):
  - Money: A monetary value backed by decimal.Decimal
  - EmployeeID: Positive integer identifier, unique per session
  - Kind: Which pay variant an employee belongs to
  - Employee: The capability every variant implements (identity + pay)
  - Line: One labelled value of a report breakdown

DESIGN PRINCIPLES:
  1. Immutability: Employees are built once and never modified
  2. Precision: Uses decimal.Decimal to avoid floating-point errors
  3. Type Safety: EmployeeID is its own type, not a bare int

USAGE:
  wage := generic.NewMoneyFromInt(20)
  total := wage.MulInt(80) // 1600

SEE ALSO:
  - store.go: Session store interface
  - kind.go: Kind registry
  - payroll/employee.go: Concrete variants
*/
package generic

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Monetary value (no currency conversion, no locale formatting)
// =============================================================================

type Money struct {
	Value decimal.Decimal
}

// CurrencySymbol prefixes every rendered amount.
const CurrencySymbol = "$"

func NewMoneyFromInt(value int) Money {
	return Money{Value: decimal.NewFromInt(int64(value))}
}

func NewMoneyFromDecimal(value decimal.Decimal) Money {
	return Money{Value: value}
}

// ParseMoney parses a plain decimal string such as "1250.50".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{Value: d}, nil
}

func ZeroMoney() Money { return Money{Value: decimal.Zero} }

func (m Money) Add(o Money) Money { return Money{Value: m.Value.Add(o.Value)} }
func (m Money) MulInt(n int) Money { return Money{Value: m.Value.Mul(decimal.NewFromInt(int64(n)))} }
func (m Money) IsPositive() bool   { return m.Value.IsPositive() }
func (m Money) IsZero() bool       { return m.Value.IsZero() }

// String renders the amount with the currency symbol and decimal's default
// formatting ("$1600", "$12.5").
func (m Money) String() string {
	return CurrencySymbol + m.Value.String()
}

// =============================================================================
// IDENTIFIERS
// =============================================================================

type EmployeeID int

func (id EmployeeID) String() string { return strconv.Itoa(int(id)) }

// Valid reports whether the id is strictly positive.
func (id EmployeeID) Valid() bool { return id > 0 }

// Kind identifies which pay variant an employee belongs to.
// The generic package has NO knowledge of specific kinds.
//
// Domain packages implement this:
//
//	// In payroll/kind.go
//	type Kind string
//	func (k Kind) KindID() string { return string(k) }
//	func (k Kind) Label() string  { return "Full-time Employee" }
//	const KindFullTime Kind = "full_time"
type Kind interface {
	// KindID returns the unique identifier for this kind.
	KindID() string

	// Label returns the human readable name shown in the menu.
	Label() string
}

// =============================================================================
// EMPLOYEE - The capability every pay variant implements
// =============================================================================

type Employee interface {
	ID() EmployeeID
	Name() string
	Kind() Kind

	// TotalPay is derived from the variant fields, never stored.
	TotalPay() Money

	// Breakdown returns the variant-specific report lines in display order.
	Breakdown() []Line

	// Attributes returns the variant fields as strings so storage backends
	// can serialize the record without knowing the concrete type.
	Attributes() Attributes
}

// Line is one labelled value of a report breakdown.
type Line struct {
	Label string
	Value string
}

func (l Line) String() string { return l.Label + ": " + l.Value }

// Attributes maps variant field names to their string form.
type Attributes map[string]string
