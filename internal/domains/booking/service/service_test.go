package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"staywise/config"
	"staywise/infras/otel/mocks"
	bookingMocks "staywise/internal/domains/booking/mocks"
	"staywise/internal/domains/booking/model"
	"staywise/internal/domains/booking/model/dto"
	"staywise/internal/domains/booking/service"
	listingMocks "staywise/internal/domains/listing/mocks"
	listingModel "staywise/internal/domains/listing/model"
	"staywise/shared/cache"
	cacheMocks "staywise/shared/cache/mocks"
	gDto "staywise/shared/dto"
)

type fixture struct {
	bookings    *bookingMocks.MockBooking
	payments    *bookingMocks.MockPayment
	maintenance *bookingMocks.MockMaintenance
	listing     *listingMocks.MockListingService
	cache       *cacheMocks.MockRedisCache
	svc         service.Dashboard
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	f := &fixture{
		bookings:    bookingMocks.NewMockBooking(ctrl),
		payments:    bookingMocks.NewMockPayment(ctrl),
		maintenance: bookingMocks.NewMockMaintenance(ctrl),
		listing:     listingMocks.NewMockListingService(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.bookings, f.payments, f.maintenance, f.listing, cfg, f.cache, mocks.NewOtel())

	return f
}

var cacheMiss = fmt.Errorf("failed to get cache value: %w", cache.Nil)

func TestDashboardService_RenterDashboard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	checkIn := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)

	f.cache.EXPECT().Get(gomock.Any(), "booking:dashboard:renter:user_1", gomock.Any()).Return(cacheMiss)
	f.bookings.EXPECT().
		GetAll(gomock.Any(), gDto.QueryParams{SortBy: model.FieldCheckInDate, SortDir: gDto.SortDirAsc}, gomock.Any()).
		Return([]model.Booking{{ID: "b_1", ListingName: "Luxury Zen PG", Status: model.StatusConfirmed, CheckInDate: checkIn, Amount: 15000}}, nil)
	f.payments.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) ([]model.Payment, error) {
			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "payments.booking_id IN")
			assert.Equal(t, "b_1", args["booking_id_0"])

			return []model.Payment{
				{ID: "pay_1", BookingID: "b_1", Amount: 5000, Status: model.PaymentPaid, Type: model.PaymentDeposit},
				{ID: "pay_2", BookingID: "b_1", Amount: 15000, Status: model.PaymentOverdue, Type: model.PaymentRent},
			}, nil
		})
	f.maintenance.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.MaintenanceRequest{{ID: "m_1", Status: model.MaintenanceOpen}}, nil)
	f.cache.EXPECT().Save(gomock.Any(), "booking:dashboard:renter:user_1", gomock.Any(), 300).Return(nil)

	res, err := f.svc.RenterDashboard(ctx, "user_1")
	require.NoError(t, err)

	require.NotNil(t, res.CurrentStay)
	assert.Equal(t, "Luxury Zen PG", res.CurrentStay.ListingName)
	assert.Equal(t, model.PaymentStatusOverdue, res.PaymentStatus)
	assert.Equal(t, 15000, res.Outstanding)
	assert.Equal(t, 1, res.PendingMaintenance)
}

func TestDashboardService_RenterDashboardWithoutBookings(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cacheMiss)
	f.bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.maintenance.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.svc.RenterDashboard(context.Background(), "user_9")
	require.NoError(t, err)

	assert.Nil(t, res.CurrentStay)
	assert.Equal(t, model.PaymentStatusFullyPaid, res.PaymentStatus)
}

func TestDashboardService_RenterDashboardCached(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().
		Get(gomock.Any(), "booking:dashboard:renter:user_1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*(value.(*dto.RenterDashboardResponse)) = dto.RenterDashboardResponse{RenterID: "user_1", PaymentStatus: model.PaymentStatusFullyPaid}

			return nil
		})

	res, err := f.svc.RenterDashboard(context.Background(), "user_1")
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusFullyPaid, res.PaymentStatus)
}

func TestDashboardService_RenterDashboardFailure(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cacheMiss)
	f.bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := f.svc.RenterDashboard(context.Background(), "user_1")

	assert.ErrorContains(t, err, "connection refused")
}

func TestDashboardService_OwnerDashboard(t *testing.T) {
	f := newFixture(t)

	rooms := []listingModel.Room{{ID: "r1", IsAvailable: true}, {ID: "r2"}}

	f.listing.EXPECT().Catalog(gomock.Any()).Return([]listingModel.Listing{
		{ID: "p_1", OwnerID: "owner_1", Availability: 4, Rating: 4.8, Rooms: rooms},
		{ID: "p_2", OwnerID: "owner_1", Availability: 1, Rating: 4.2, Rooms: rooms},
		{ID: "p_3", OwnerID: "owner_2", Availability: 2, Rating: 4.2, Rooms: rooms},
	}, nil).Times(2)

	res, err := f.svc.OwnerDashboard(context.Background(), "owner_1")
	require.NoError(t, err)

	assert.Equal(t, dto.OwnerDashboardResponse{
		OwnerID:        "owner_1",
		Listings:       2,
		Rooms:          4,
		AvailableRooms: 2,
		Vacancies:      5,
		AverageRating:  4.5,
	}, res)

	res, err = f.svc.OwnerDashboard(context.Background(), "owner_7")
	require.NoError(t, err)
	assert.Zero(t, res.Listings)
	assert.Zero(t, res.AverageRating)
}
