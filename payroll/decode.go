package payroll

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/warp/payroll-tracker/generic"
)

func decodeFullTime(id generic.EmployeeID, name string, attrs generic.Attributes) (generic.Employee, error) {
	salary, err := decimalAttr(attrs, attrFixedSalary)
	if err != nil {
		return nil, err
	}
	emp, err := NewFullTime(id, name, salary)
	if err != nil {
		return nil, err
	}
	return emp, nil
}

func decodePartTime(id generic.EmployeeID, name string, attrs generic.Attributes) (generic.Employee, error) {
	wage, err := decimalAttr(attrs, attrHourlyWage)
	if err != nil {
		return nil, err
	}
	hours, err := intAttr(attrs, attrHoursWorked)
	if err != nil {
		return nil, err
	}
	emp, err := NewPartTime(id, name, wage, hours)
	if err != nil {
		return nil, err
	}
	return emp, nil
}

func decodeContractual(id generic.EmployeeID, name string, attrs generic.Attributes) (generic.Employee, error) {
	rate, err := decimalAttr(attrs, attrPaymentPerProject)
	if err != nil {
		return nil, err
	}
	count, err := intAttr(attrs, attrProjectCount)
	if err != nil {
		return nil, err
	}
	emp, err := NewContractual(id, name, rate, count)
	if err != nil {
		return nil, err
	}
	return emp, nil
}

func decimalAttr(attrs generic.Attributes, key string) (decimal.Decimal, error) {
	raw, ok := attrs[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", generic.ErrMissingAttribute, key)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("attribute %s: %w", key, err)
	}
	return d, nil
}

func intAttr(attrs generic.Attributes, key string) (int, error) {
	raw, ok := attrs[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", generic.ErrMissingAttribute, key)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("attribute %s: %w", key, err)
	}
	return n, nil
}
