// Package payroll implements the three employee pay variants.
// Each variant implements generic.Employee and registers its kind so stored
// records can be decoded back into concrete values.
package payroll

import "github.com/warp/payroll-tracker/generic"

// =============================================================================
// EMPLOYEE KIND
// =============================================================================

// Kind is the concrete kind type for payroll employees.
// Implements generic.Kind interface.
type Kind string

func (k Kind) KindID() string { return string(k) }

func (k Kind) Label() string {
	switch k {
	case KindFullTime:
		return "Full-time Employee"
	case KindPartTime:
		return "Part-time Employee"
	case KindContractual:
		return "Contractual Employee"
	}
	return string(k)
}

// Compile-time check that Kind implements generic.Kind
var _ generic.Kind = Kind("")

const (
	KindFullTime    Kind = "full_time"
	KindPartTime    Kind = "part_time"
	KindContractual Kind = "contractual"
)

// Kinds lists the variants in menu order.
var Kinds = []Kind{KindFullTime, KindPartTime, KindContractual}

// Attribute keys used by Attributes() and the decoders.
const (
	attrFixedSalary       = "fixed_salary"
	attrHourlyWage        = "hourly_wage"
	attrHoursWorked       = "hours_worked"
	attrPaymentPerProject = "payment_per_project"
	attrProjectCount      = "project_count"
)

func init() {
	generic.RegisterKind(KindFullTime, decodeFullTime)
	generic.RegisterKind(KindPartTime, decodePartTime)
	generic.RegisterKind(KindContractual, decodeContractual)
}
