package payroll

import "github.com/warp/payroll-tracker/generic"

// Summary aggregates pay across a set of employees.
type Summary struct {
	Count int
	Total generic.Money
}

// Summarize sums TotalPay over employees.
func Summarize(employees []generic.Employee) Summary {
	s := Summary{Total: generic.ZeroMoney()}
	for _, emp := range employees {
		s.Count++
		s.Total = s.Total.Add(emp.TotalPay())
	}
	return s
}
