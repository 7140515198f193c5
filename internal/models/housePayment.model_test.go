package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusFromPaid(t *testing.T) {
	tests := []struct {
		name     string
		paid     bool
		expected PaymentStatus
	}{
		{
			name:     "Fully paid installment",
			paid:     true,
			expected: PaymentStatusPaid,
		},
		{
			name:     "Outstanding installment",
			paid:     false,
			expected: PaymentStatusUnpaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PaymentStatusFromPaid(tt.paid))
		})
	}
}

func TestHousePayment_BeforeCreate(t *testing.T) {
	t.Run("Rejects missing occupancy", func(t *testing.T) {
		payment := &HousePayment{
			PaymentDate:   time.Now(),
			PaymentAmount: decimal.NewFromInt(500000),
		}
		assert.Error(t, payment.BeforeCreate(nil))
	})

	t.Run("Rejects negative amount", func(t *testing.T) {
		payment := &HousePayment{
			OccupantHistoryID: 1,
			PaymentAmount:     decimal.NewFromInt(-1),
		}
		assert.Error(t, payment.BeforeCreate(nil))
	})

	t.Run("Defaults empty status to paid", func(t *testing.T) {
		payment := &HousePayment{
			OccupantHistoryID: 1,
			PaymentAmount:     decimal.NewFromInt(500000),
		}
		assert.NoError(t, payment.BeforeCreate(nil))
		assert.Equal(t, PaymentStatusPaid, payment.PaymentStatus)
	})

	t.Run("Keeps explicit unpaid status", func(t *testing.T) {
		payment := &HousePayment{
			OccupantHistoryID: 1,
			PaymentAmount:     decimal.NewFromInt(500000),
			PaymentStatus:     PaymentStatusUnpaid,
		}
		assert.NoError(t, payment.BeforeCreate(nil))
		assert.Equal(t, PaymentStatusUnpaid, payment.PaymentStatus)
		assert.False(t, payment.IsPaid())
	})
}

func TestOccupantHistory_IsOpen(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	open := &OccupantHistory{HouseID: 1, ResidentID: 1, StartDate: start}
	assert.True(t, open.IsOpen())

	closed := &OccupantHistory{HouseID: 1, ResidentID: 1, StartDate: start, EndDate: &end}
	assert.False(t, closed.IsOpen())
}
