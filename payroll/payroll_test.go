package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll-tracker/generic"
	"github.com/warp/payroll-tracker/payroll"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// =============================================================================
// TOTAL PAY
// =============================================================================

func TestFullTime_TotalIsFixedSalary(t *testing.T) {
	emp, err := payroll.NewFullTime(1, "Ann", dec("5000"))
	require.NoError(t, err)

	assert.True(t, emp.TotalPay().Value.Equal(dec("5000")))
	assert.Equal(t, "$5000", emp.TotalPay().String())
	assert.Equal(t, payroll.KindFullTime, emp.Kind())
}

func TestPartTime_TotalIsWageTimesHours(t *testing.T) {
	emp, err := payroll.NewPartTime(2, "Bo", dec("20"), 80)
	require.NoError(t, err)

	assert.True(t, emp.TotalPay().Value.Equal(dec("1600")))
	assert.Equal(t, "$1600", emp.TotalPay().String())
}

func TestContractual_TotalIsRateTimesProjects(t *testing.T) {
	emp, err := payroll.NewContractual(3, "Cy", dec("300"), 4)
	require.NoError(t, err)

	assert.True(t, emp.TotalPay().Value.Equal(dec("1200")))
}

func TestPartTime_FractionalWageStaysExact(t *testing.T) {
	// GIVEN: A wage that float64 cannot represent exactly
	// WHEN: Multiplied by hours
	// THEN: The total is exact
	emp, err := payroll.NewPartTime(4, "Di", dec("0.1"), 3)
	require.NoError(t, err)

	assert.Equal(t, "$0.3", emp.TotalPay().String())
}

// =============================================================================
// BREAKDOWN
// =============================================================================

func TestBreakdown_LinesPerKind(t *testing.T) {
	ft, err := payroll.NewFullTime(1, "Ann", dec("5000"))
	require.NoError(t, err)
	pt, err := payroll.NewPartTime(2, "Bo", dec("20"), 80)
	require.NoError(t, err)
	ct, err := payroll.NewContractual(3, "Cy", dec("300"), 4)
	require.NoError(t, err)

	tests := []struct {
		name string
		emp  generic.Employee
		want []string
	}{
		{"full-time", ft, []string{
			"Fixed Monthly Salary: $5000",
		}},
		{"part-time", pt, []string{
			"Hourly Wage: $20",
			"Hours Worked: 80",
			"Total Salary: $1600",
		}},
		{"contractual", ct, []string{
			"Contract Payment Per Project: $300",
			"Projects Completed: 4",
			"Total Salary: $1200",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, l := range tt.emp.Breakdown() {
				got = append(got, l.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

func TestConstructors_RejectNonPositive(t *testing.T) {
	_, err := payroll.NewFullTime(0, "Ann", dec("5000"))
	assert.ErrorIs(t, err, generic.ErrNotPositive, "zero id")

	_, err = payroll.NewFullTime(1, "Ann", dec("-1"))
	assert.ErrorIs(t, err, generic.ErrNotPositive, "negative salary")

	_, err = payroll.NewPartTime(1, "Bo", dec("20"), 0)
	assert.ErrorIs(t, err, generic.ErrNotPositive, "zero hours")

	_, err = payroll.NewContractual(1, "Cy", dec("0"), 4)
	assert.ErrorIs(t, err, generic.ErrNotPositive, "zero rate")
}

func TestConstructors_AcceptEmptyName(t *testing.T) {
	emp, err := payroll.NewFullTime(1, "", dec("10"))
	require.NoError(t, err)
	assert.Equal(t, "", emp.Name())
}

// =============================================================================
// KIND REGISTRY
// =============================================================================

func TestKinds_RegisteredAndLabelled(t *testing.T) {
	for _, k := range payroll.Kinds {
		_, err := generic.DecodeEmployee(k.KindID(), 1, "x", nil)
		assert.ErrorIs(t, err, generic.ErrMissingAttribute, "kind %s has a registered decoder", k)
	}
	assert.Equal(t, "Full-time Employee", payroll.KindFullTime.Label())
	assert.Equal(t, "Part-time Employee", payroll.KindPartTime.Label())
	assert.Equal(t, "Contractual Employee", payroll.KindContractual.Label())
}

func TestDecode_RoundTripsAttributes(t *testing.T) {
	// GIVEN: A part-time employee serialized to attributes
	// WHEN: Decoded through the registry
	// THEN: The rebuilt record reports the same pay
	orig, err := payroll.NewPartTime(2, "Bo", dec("20.5"), 80)
	require.NoError(t, err)

	got, err := generic.DecodeEmployee(orig.Kind().KindID(), orig.ID(), orig.Name(), orig.Attributes())
	require.NoError(t, err)

	pt, ok := got.(*payroll.PartTime)
	require.True(t, ok, "should decode to *PartTime")
	assert.Equal(t, 80, pt.HoursWorked())
	assert.True(t, pt.TotalPay().Value.Equal(orig.TotalPay().Value))
}

func TestDecode_MissingAttribute(t *testing.T) {
	_, err := generic.DecodeEmployee("contractual", 3, "Cy", generic.Attributes{"payment_per_project": "300"})
	assert.ErrorIs(t, err, generic.ErrMissingAttribute)
}

func TestDecode_UnknownKind(t *testing.T) {
	_, err := generic.DecodeEmployee("intern", 3, "Cy", nil)
	assert.ErrorIs(t, err, generic.ErrUnknownKind)
}

// =============================================================================
// SUMMARY
// =============================================================================

func TestSummarize(t *testing.T) {
	ft, _ := payroll.NewFullTime(1, "Ann", dec("5000"))
	pt, _ := payroll.NewPartTime(2, "Bo", dec("20"), 80)
	ct, _ := payroll.NewContractual(3, "Cy", dec("300"), 4)
	ft2, _ := payroll.NewFullTime(4, "Dee", dec("1000"))

	sum := payroll.Summarize([]generic.Employee{ft, pt, ct, ft2})

	assert.Equal(t, 4, sum.Count)
	assert.Equal(t, "$8800", sum.Total.String())
}

func TestSummarize_Empty(t *testing.T) {
	sum := payroll.Summarize(nil)
	assert.Equal(t, 0, sum.Count)
	assert.True(t, sum.Total.IsZero())
}
