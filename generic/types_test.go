package generic_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll-tracker/generic"
)

type testKind string

func (k testKind) KindID() string { return string(k) }
func (k testKind) Label() string  { return "Test " + string(k) }

func TestMoney_Arithmetic(t *testing.T) {
	wage, err := generic.ParseMoney("20.25")
	require.NoError(t, err)

	assert.Equal(t, "$1620", wage.MulInt(80).String())
	assert.Equal(t, "$40.5", wage.Add(wage).String())
	assert.True(t, wage.IsPositive())
	assert.True(t, generic.ZeroMoney().IsZero())
	assert.Equal(t, "$5", generic.NewMoneyFromInt(5).String())

	_, err = generic.ParseMoney("abc")
	assert.Error(t, err)
}

func TestEmployeeID(t *testing.T) {
	assert.True(t, generic.EmployeeID(1).Valid())
	assert.False(t, generic.EmployeeID(0).Valid())
	assert.False(t, generic.EmployeeID(-4).Valid())
	assert.Equal(t, "12", generic.EmployeeID(12).String())
}

func TestLine_String(t *testing.T) {
	l := generic.Line{Label: "Hours Worked", Value: "80"}
	assert.Equal(t, "Hours Worked: 80", l.String())
}

func TestKindRegistry(t *testing.T) {
	k := testKind("registry_test")
	called := false
	generic.RegisterKind(k, func(id generic.EmployeeID, name string, attrs generic.Attributes) (generic.Employee, error) {
		called = true
		return nil, fmt.Errorf("decode %d %s", id, name)
	})

	_, err := generic.DecodeEmployee("registry_test", 3, "Cy", nil)
	assert.True(t, called)
	assert.EqualError(t, err, "decode 3 Cy")

	_, err = generic.DecodeEmployee("never_registered", 3, "Cy", nil)
	assert.ErrorIs(t, err, generic.ErrUnknownKind)
}

func TestErrors_Unwrap(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &generic.DuplicateIDError{ID: 7})
	assert.ErrorIs(t, err, generic.ErrDuplicateID)
	assert.True(t, generic.IsInputError(err))

	inErr := &generic.InputError{Token: "abc", Err: generic.ErrInvalidNumber}
	assert.ErrorIs(t, inErr, generic.ErrInvalidNumber)
	assert.Equal(t, `invalid number: "abc"`, inErr.Error())

	assert.False(t, generic.IsInputError(errors.New("disk on fire")))
}
