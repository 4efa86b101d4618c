package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"staywise/internal/domains/booking/model"
)

func TestCurrentStay(t *testing.T) {
	assert.Nil(t, model.CurrentStay(nil))
	assert.Nil(t, model.CurrentStay([]model.Booking{{ID: "b_0", Status: model.StatusPending}}))

	stay := model.CurrentStay([]model.Booking{
		{ID: "b_0", Status: model.StatusCancelled},
		{ID: "b_1", Status: model.StatusConfirmed},
		{ID: "b_2", Status: model.StatusConfirmed},
	})

	if assert.NotNil(t, stay) {
		assert.Equal(t, "b_1", stay.ID)
	}
}

func TestPaymentStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		want     string
	}{
		{name: "no payments", want: model.PaymentStatusFullyPaid},
		{name: "all paid", statuses: []string{model.PaymentPaid, model.PaymentPaid}, want: model.PaymentStatusFullyPaid},
		{name: "pending", statuses: []string{model.PaymentPaid, model.PaymentPending}, want: model.PaymentStatusPending},
		{name: "overdue wins", statuses: []string{model.PaymentPending, model.PaymentOverdue, model.PaymentPaid}, want: model.PaymentStatusOverdue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payments := make([]model.Payment, len(tt.statuses))
			for i, status := range tt.statuses {
				payments[i] = model.Payment{Status: status}
			}

			assert.Equal(t, tt.want, model.PaymentStatus(payments))
		})
	}
}

func TestOutstanding(t *testing.T) {
	payments := []model.Payment{
		{Amount: 15000, Status: model.PaymentPaid},
		{Amount: 15000, Status: model.PaymentPending},
		{Amount: 500, Status: model.PaymentOverdue},
	}

	assert.Equal(t, 15500, model.Outstanding(payments))
	assert.Zero(t, model.Outstanding(nil))
}

func TestPendingMaintenance(t *testing.T) {
	requests := []model.MaintenanceRequest{
		{Status: model.MaintenanceOpen},
		{Status: model.MaintenanceInProgress},
		{Status: model.MaintenanceResolved},
	}

	assert.Equal(t, 2, model.PendingMaintenance(requests))
}
