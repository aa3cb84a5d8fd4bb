package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumptionEvent_Validation(t *testing.T) {
	when := time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC)

	event, err := NewConsumptionEvent(when, "INS-002", 7)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-02 | INS-002 | qty=7", event.String())

	testCases := []struct {
		name        string
		code        SupplyCode
		quantity    Quantity
		expectError string
	}{
		{"empty code", "", 1, "supply code cannot be empty"},
		{"zero quantity", "INS-001", 0, "quantity must be positive, got 0"},
		{"negative quantity", "INS-001", -3, "quantity must be positive, got -3"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewConsumptionEvent(when, tc.code, tc.quantity)
			assert.EqualError(t, err, tc.expectError)
		})
	}
}
