package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"staywise/config"
	"staywise/infras/otel"
	"staywise/internal/domains/booking/model"
	"staywise/internal/domains/booking/model/dto"
	"staywise/internal/domains/booking/repository"
	listingModel "staywise/internal/domains/listing/model"
	listingService "staywise/internal/domains/listing/service"
	"staywise/shared"
	"staywise/shared/cache"
	"staywise/shared/constant"
	gDto "staywise/shared/dto"

	"github.com/rs/zerolog/log"
)

const cacheRenterDashboard = "booking:dashboard:renter"

// Dashboard assembles the renter and owner dashboards from read-only data.
type Dashboard interface {
	RenterDashboard(ctx context.Context, renterID string) (dto.RenterDashboardResponse, error)
	OwnerDashboard(ctx context.Context, ownerID string) (dto.OwnerDashboardResponse, error)
}

type serviceImpl struct {
	bookingRepo     repository.Booking
	paymentRepo     repository.Payment
	maintenanceRepo repository.Maintenance
	listing         listingService.Listing
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(
	bookingRepo repository.Booking,
	paymentRepo repository.Payment,
	maintenanceRepo repository.Maintenance,
	listing listingService.Listing,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Dashboard {
	return &serviceImpl{
		bookingRepo:     bookingRepo,
		paymentRepo:     paymentRepo,
		maintenanceRepo: maintenanceRepo,
		listing:         listing,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

// RenterDashboard of a renter without bookings is empty and fully paid.
func (s *serviceImpl) RenterDashboard(ctx context.Context, renterID string) (res dto.RenterDashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.RenterDashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheRenterDashboard, renterID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for renter dashboard")

		return res, nil
	}

	if !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Msg("renter dashboard cache unavailable, reading from database")
	}

	bookings, err := s.bookingRepo.GetAll(ctx,
		gDto.QueryParams{SortBy: model.FieldCheckInDate, SortDir: gDto.SortDirAsc},
		shared.FilterByField(model.FieldRenterID, renterID, model.TableName),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	var payments []model.Payment

	if len(bookings) > 0 {
		payments, err = s.paymentRepo.GetAll(ctx,
			gDto.QueryParams{SortBy: model.FieldDate, SortDir: gDto.SortDirAsc},
			paymentsOf(bookings),
		)
		if err != nil {
			log.Error().Err(err).Msg("failed to get payments")

			return res, fmt.Errorf("failed to get payments: %w", err)
		}
	}

	requests, err := s.maintenanceRepo.GetAll(ctx,
		gDto.QueryParams{SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirDesc},
		shared.FilterByField(model.FieldRenterID, renterID, model.MaintenanceTableName),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance requests")

		return res, fmt.Errorf("failed to get maintenance requests: %w", err)
	}

	res.FromModels(renterID, bookings, payments, requests)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save renter dashboard to cache")
	}

	return res, nil
}

func (s *serviceImpl) OwnerDashboard(ctx context.Context, ownerID string) (res dto.OwnerDashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.OwnerDashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	catalog, err := s.listing.Catalog(ctx)
	if err != nil {
		return res, err
	}

	owned := []listingModel.Listing{}

	for _, listing := range catalog {
		if listing.OwnerID == ownerID {
			owned = append(owned, listing)
		}
	}

	res.FromModels(ownerID, owned)

	return res, nil
}

func paymentsOf(bookings []model.Booking) gDto.FilterGroup {
	ids := make([]string, len(bookings))
	for i, booking := range bookings {
		ids[i] = booking.ID
	}

	return shared.FilterByValues(model.FieldBookingID, ids, model.PaymentTableName)
}
