package payroll

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/warp/payroll-tracker/generic"
)

// base carries the identity fields shared by every variant.
type base struct {
	id   generic.EmployeeID
	name string
}

func (b base) ID() generic.EmployeeID { return b.id }
func (b base) Name() string           { return b.name }

// =============================================================================
// FULL-TIME
// =============================================================================

// FullTime is paid a fixed monthly salary.
type FullTime struct {
	base
	fixedSalary generic.Money
}

var _ generic.Employee = (*FullTime)(nil)

// NewFullTime validates and builds a full-time employee.
func NewFullTime(id generic.EmployeeID, name string, fixedSalary decimal.Decimal) (*FullTime, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := positive(attrFixedSalary, fixedSalary); err != nil {
		return nil, err
	}
	return &FullTime{
		base:        base{id: id, name: name},
		fixedSalary: generic.NewMoneyFromDecimal(fixedSalary),
	}, nil
}

func (e *FullTime) Kind() generic.Kind         { return KindFullTime }
func (e *FullTime) FixedSalary() generic.Money { return e.fixedSalary }
func (e *FullTime) TotalPay() generic.Money    { return e.fixedSalary }

func (e *FullTime) Breakdown() []generic.Line {
	return []generic.Line{
		{Label: "Fixed Monthly Salary", Value: e.fixedSalary.String()},
	}
}

func (e *FullTime) Attributes() generic.Attributes {
	return generic.Attributes{attrFixedSalary: e.fixedSalary.Value.String()}
}

// =============================================================================
// PART-TIME
// =============================================================================

// PartTime is paid hourlyWage × hoursWorked.
type PartTime struct {
	base
	hourlyWage  generic.Money
	hoursWorked int
}

var _ generic.Employee = (*PartTime)(nil)

// NewPartTime validates and builds a part-time employee.
func NewPartTime(id generic.EmployeeID, name string, hourlyWage decimal.Decimal, hoursWorked int) (*PartTime, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := positive(attrHourlyWage, hourlyWage); err != nil {
		return nil, err
	}
	if err := positiveInt(attrHoursWorked, hoursWorked); err != nil {
		return nil, err
	}
	return &PartTime{
		base:        base{id: id, name: name},
		hourlyWage:  generic.NewMoneyFromDecimal(hourlyWage),
		hoursWorked: hoursWorked,
	}, nil
}

func (e *PartTime) Kind() generic.Kind        { return KindPartTime }
func (e *PartTime) HourlyWage() generic.Money { return e.hourlyWage }
func (e *PartTime) HoursWorked() int          { return e.hoursWorked }
func (e *PartTime) TotalPay() generic.Money   { return e.hourlyWage.MulInt(e.hoursWorked) }

func (e *PartTime) Breakdown() []generic.Line {
	return []generic.Line{
		{Label: "Hourly Wage", Value: e.hourlyWage.String()},
		{Label: "Hours Worked", Value: strconv.Itoa(e.hoursWorked)},
		{Label: "Total Salary", Value: e.TotalPay().String()},
	}
}

func (e *PartTime) Attributes() generic.Attributes {
	return generic.Attributes{
		attrHourlyWage:  e.hourlyWage.Value.String(),
		attrHoursWorked: strconv.Itoa(e.hoursWorked),
	}
}

// =============================================================================
// CONTRACTUAL
// =============================================================================

// Contractual is paid paymentPerProject × projectCount.
type Contractual struct {
	base
	paymentPerProject generic.Money
	projectCount      int
}

var _ generic.Employee = (*Contractual)(nil)

// NewContractual validates and builds a contractual employee.
func NewContractual(id generic.EmployeeID, name string, paymentPerProject decimal.Decimal, projectCount int) (*Contractual, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := positive(attrPaymentPerProject, paymentPerProject); err != nil {
		return nil, err
	}
	if err := positiveInt(attrProjectCount, projectCount); err != nil {
		return nil, err
	}
	return &Contractual{
		base:              base{id: id, name: name},
		paymentPerProject: generic.NewMoneyFromDecimal(paymentPerProject),
		projectCount:      projectCount,
	}, nil
}

func (e *Contractual) Kind() generic.Kind               { return KindContractual }
func (e *Contractual) PaymentPerProject() generic.Money { return e.paymentPerProject }
func (e *Contractual) ProjectCount() int                { return e.projectCount }
func (e *Contractual) TotalPay() generic.Money          { return e.paymentPerProject.MulInt(e.projectCount) }

func (e *Contractual) Breakdown() []generic.Line {
	return []generic.Line{
		{Label: "Contract Payment Per Project", Value: e.paymentPerProject.String()},
		{Label: "Projects Completed", Value: strconv.Itoa(e.projectCount)},
		{Label: "Total Salary", Value: e.TotalPay().String()},
	}
}

func (e *Contractual) Attributes() generic.Attributes {
	return generic.Attributes{
		attrPaymentPerProject: e.paymentPerProject.Value.String(),
		attrProjectCount:      strconv.Itoa(e.projectCount),
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

func validateID(id generic.EmployeeID) error {
	if !id.Valid() {
		return fmt.Errorf("employee id %d: %w", id, generic.ErrNotPositive)
	}
	return nil
}

func positive(field string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return fmt.Errorf("%s %s: %w", field, v, generic.ErrNotPositive)
	}
	return nil
}

func positiveInt(field string, v int) error {
	if v <= 0 {
		return fmt.Errorf("%s %d: %w", field, v, generic.ErrNotPositive)
	}
	return nil
}
