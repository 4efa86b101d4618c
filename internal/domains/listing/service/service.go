package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Listing=MockListingService

import (
	"context"
	"errors"
	"fmt"

	"staywise/config"
	"staywise/infras/otel"
	"staywise/internal/domains/listing/model"
	"staywise/internal/domains/listing/model/dto"
	"staywise/internal/domains/listing/repository"
	"staywise/shared/cache"
	"staywise/shared/constant"
	gDto "staywise/shared/dto"
	"staywise/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheCatalog = "listing:catalog"

var (
	ErrListingNotFound  = failure.NotFound("listing not found")
	ErrRoomNotFound     = failure.NotFound("room not found")
	ErrRoomNotAvailable = failure.Conflict("room is not available")
)

// Listing serves the read-only catalog. Every operation works on the whole
// catalog, loaded once and cached.
type Listing interface {
	Catalog(ctx context.Context) ([]model.Listing, error)
	Search(ctx context.Context, req dto.SearchRequest) (dto.SearchResponse, error)
	Get(ctx context.Context, id string) (dto.ListingResponse, error)
	Rooms(ctx context.Context, listingID string) (dto.RoomsResponse, error)
	SelectRoom(ctx context.Context, listingID, roomID string) (dto.RoomQuote, error)
}

type serviceImpl struct {
	listingRepo repository.Listing
	roomRepo    repository.Room
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(listingRepo repository.Listing, roomRepo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Listing {
	return &serviceImpl{
		listingRepo: listingRepo,
		roomRepo:    roomRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Catalog(ctx context.Context) (res []model.Listing, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".listing.Catalog")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheCatalog, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheCatalog).Msg("cache hit for catalog")

		return res, nil
	}

	if !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Msg("catalog cache unavailable, reading from database")
	}

	byID := gDto.QueryParams{SortBy: model.FieldID, SortDir: gDto.SortDirAsc}

	res, err = s.listingRepo.GetAll(ctx, byID, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get listings")

		return nil, fmt.Errorf("failed to get listings: %w", err)
	}

	rooms, err := s.roomRepo.GetAll(ctx, byID, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	roomsByListing := map[string][]model.Room{}
	for _, room := range rooms {
		roomsByListing[room.ListingID] = append(roomsByListing[room.ListingID], room)
	}

	for i := range res {
		res[i].Rooms = roomsByListing[res[i].ID]
	}

	if err := s.cache.Save(ctx, cacheCatalog, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save catalog to cache")
	}

	return res, nil
}

func (s *serviceImpl) Search(ctx context.Context, req dto.SearchRequest) (res dto.SearchResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".listing.Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{"search.query": req.Query, "search.type": req.Type})

	catalog, err := s.Catalog(ctx)
	if err != nil {
		return res, err
	}

	res.FromModels(model.Filter(catalog, req.Query, req.Type))

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ListingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".listing.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	listing, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(listing)

	return res, nil
}

func (s *serviceImpl) Rooms(ctx context.Context, listingID string) (res dto.RoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".listing.Rooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	listing, err := s.find(ctx, listingID)
	if err != nil {
		return res, err
	}

	res.FromModel(listing)

	return res, nil
}

// SelectRoom quotes an available room. Availability is never changed by a selection.
func (s *serviceImpl) SelectRoom(ctx context.Context, listingID, roomID string) (res dto.RoomQuote, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".listing.SelectRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	listing, err := s.find(ctx, listingID)
	if err != nil {
		return res, err
	}

	room, ok := listing.Room(roomID)
	if !ok {
		return res, ErrRoomNotFound
	}

	if !room.IsAvailable {
		return res, ErrRoomNotAvailable
	}

	res.FromModel(listing, room)
	scope.AddEvent("room quoted")

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Listing, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return model.Listing{}, err
	}

	for _, listing := range catalog {
		if listing.ID == id {
			return listing, nil
		}
	}

	return model.Listing{}, ErrListingNotFound
}
