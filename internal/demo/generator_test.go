package demo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorDeterministic(t *testing.T) {
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	customerIDs := []int64{1, 2, 3, 4, 5}

	genA := NewGenerator(42)
	genB := NewGenerator(42)

	customersA := genA.Customers(10)
	customersB := genB.Customers(10)
	require.Len(t, customersB, 10)

	for i := range customersA {
		assert.Equal(t, customersA[i].FirstName, customersB[i].FirstName)
		assert.Equal(t, customersA[i].Email, customersB[i].Email)
		assert.Equal(t, customersA[i].PortalToken, customersB[i].PortalToken)
	}

	bookingsA := genA.BookingsForDay(day, 1, customerIDs, genA.Treatments())
	bookingsB := genB.BookingsForDay(day, 1, customerIDs, genB.Treatments())
	require.Equal(t, len(bookingsA), len(bookingsB))

	for i := range bookingsA {
		assert.Equal(t, bookingsA[i].StartTime, bookingsB[i].StartTime)
		assert.Equal(t, bookingsA[i].TreatmentName, bookingsB[i].TreatmentName)
		assert.Equal(t, bookingsA[i].CustomerID, bookingsB[i].CustomerID)
	}
}

func TestGeneratorDifferentSeeds(t *testing.T) {
	genA := NewGenerator(1)
	genB := NewGenerator(2)

	customersA := genA.Customers(20)
	customersB := genB.Customers(20)

	same := 0
	for i := range customersA {
		if customersA[i].Email == customersB[i].Email {
			same++
		}
	}
	assert.Less(t, same, 20, "different seeds should produce different customers")
}

func TestBookingsForDayWithinBusinessHours(t *testing.T) {
	gen := NewGenerator(7)
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	bookings := gen.BookingsForDay(day, 3, []int64{1, 2}, gen.Treatments())
	require.NotEmpty(t, bookings)

	for _, b := range bookings {
		assert.GreaterOrEqual(t, b.StartMinutes(), 9*60)
		assert.LessOrEqual(t, b.EndMinutes(), 19*60)
		assert.Equal(t, int64(3), b.StaffID)
		assert.True(t, b.IsActive())
	}
}
