package store_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll-tracker/generic"
	"github.com/warp/payroll-tracker/generic/store"
	"github.com/warp/payroll-tracker/payroll"
)

func fullTime(t *testing.T, id int, name string) generic.Employee {
	emp, err := payroll.NewFullTime(generic.EmployeeID(id), name, decimal.NewFromInt(1000))
	require.NoError(t, err)
	return emp
}

func ids(emps []generic.Employee) []generic.EmployeeID {
	out := make([]generic.EmployeeID, len(emps))
	for i, e := range emps {
		out[i] = e.ID()
	}
	return out
}

func TestMemory_AppendKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	for _, id := range []int{7, 2, 9} {
		require.NoError(t, m.Append(ctx, fullTime(t, id, "x")))
	}

	got, err := m.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []generic.EmployeeID{7, 2, 9}, ids(got))

	n, err := m.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMemory_DuplicateIDRejected(t *testing.T) {
	// GIVEN: Employee 7 is stored
	// WHEN: Another employee with ID 7 is appended
	// THEN: DuplicateIDError, store unchanged
	ctx := context.Background()
	m := store.NewMemory()
	require.NoError(t, m.Append(ctx, fullTime(t, 7, "first")))

	err := m.Append(ctx, fullTime(t, 7, "second"))

	var dupErr *generic.DuplicateIDError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, generic.EmployeeID(7), dupErr.ID)
	assert.ErrorIs(t, err, generic.ErrDuplicateID)

	got, err := m.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "first", got[0].Name())
}

func TestMemory_Exists(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	require.NoError(t, m.Append(ctx, fullTime(t, 1, "Ann")))

	ok, err := m.Exists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.Exists(ctx, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	require.NoError(t, m.Append(ctx, fullTime(t, 1, "Ann")))
	require.NoError(t, m.Append(ctx, fullTime(t, 2, "Bo")))

	got, _ := m.List(ctx)
	got[0], got[1] = got[1], got[0]

	again, _ := m.List(ctx)
	assert.Equal(t, []generic.EmployeeID{1, 2}, ids(again))
}

func TestMemory_CloseReleasesRecords(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	require.NoError(t, m.Append(ctx, fullTime(t, 1, "Ann")))

	require.NoError(t, m.Close())

	_, err := m.List(ctx)
	assert.ErrorIs(t, err, store.ErrClosed)
	assert.ErrorIs(t, m.Append(ctx, fullTime(t, 2, "Bo")), store.ErrClosed)
}
