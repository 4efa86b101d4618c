package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staywise/internal/domains/booking/model"
	"staywise/internal/domains/booking/model/dto"
	listingModel "staywise/internal/domains/listing/model"
)

func TestRenterDashboardResponse_FromModels(t *testing.T) {
	bookings := []model.Booking{
		{ID: "b_0", Status: model.StatusPending, CheckInDate: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "b_1", ListingName: "Luxury Zen PG", Status: model.StatusConfirmed, CheckInDate: time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC), Amount: 15000},
	}
	payments := []model.Payment{
		{ID: "pay_1", Amount: 15000, Status: model.PaymentPaid, Date: time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "pay_2", Amount: 15000, Status: model.PaymentPending},
	}
	requests := []model.MaintenanceRequest{{ID: "m_1", Status: model.MaintenanceResolved}}

	res := dto.RenterDashboardResponse{}
	res.FromModels("user_1", bookings, payments, requests)

	require.NotNil(t, res.CurrentStay)
	assert.Equal(t, "b_1", res.CurrentStay.ID)
	assert.Equal(t, "2024-10-01", res.CurrentStay.CheckInDate)
	assert.Equal(t, model.PaymentStatusPending, res.PaymentStatus)
	assert.Equal(t, 15000, res.Outstanding)
	assert.Zero(t, res.PendingMaintenance)
	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, "2024-10-01", res.Payments[0].Date)
}

func TestRenterDashboardResponse_Empty(t *testing.T) {
	res := dto.RenterDashboardResponse{}
	res.FromModels("user_9", nil, nil, nil)

	assert.Nil(t, res.CurrentStay)
	assert.Equal(t, model.PaymentStatusFullyPaid, res.PaymentStatus)
	assert.NotNil(t, res.Bookings)
	assert.NotNil(t, res.Payments)
	assert.NotNil(t, res.Maintenance)
}

func TestOwnerDashboardResponse_FromModels(t *testing.T) {
	rooms := []listingModel.Room{{ID: "r1", IsAvailable: true}, {ID: "r2", IsAvailable: false}}

	listings := []listingModel.Listing{
		{ID: "p_1", Availability: 4, Rating: 4.8, Rooms: rooms},
		{ID: "p_3", Availability: 1, Rating: 4.2, Rooms: rooms[:1]},
	}

	res := dto.OwnerDashboardResponse{}
	res.FromModels("owner_1", listings)

	assert.Equal(t, 2, res.Listings)
	assert.Equal(t, 3, res.Rooms)
	assert.Equal(t, 2, res.AvailableRooms)
	assert.Equal(t, 5, res.Vacancies)
	assert.InDelta(t, 4.5, res.AverageRating, 0.0001)

	empty := dto.OwnerDashboardResponse{}
	empty.FromModels("owner_9", nil)
	assert.Zero(t, empty.AverageRating)
}
