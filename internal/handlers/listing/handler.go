package listing

import (
	"net/http"
	"staywise/infras/otel"
	"staywise/internal/domains/listing/model/dto"
	"staywise/internal/domains/listing/service"
	"staywise/shared/constant"
	"staywise/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Listing
	otel    otel.Otel
}

func New(service service.Listing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/listings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.SearchListings)
		routerGroup.Get("/{id}", handler.GetListingByID)
		routerGroup.Get("/{id}/rooms", handler.GetRooms)
		routerGroup.Post("/{id}/rooms/{roomID}/select", handler.SelectRoom)
	})
}

// SearchListings filters the catalog.
// @Summary Search listings
// @Description Listings whose title or location contains q (case-insensitive) and whose type matches. An empty q or a type of "all" matches everything.
// @Tags Listing
// @Produce json
// @Param q query string false "Text contained in the title or the location"
// @Param type query string false "PG, Flat or all"
// @Success 200 {object} response.Data[dto.SearchResponse]
// @Failure 500 {object} response.Error
// @Router /v1/listings [get]
func (handler *Handler) SearchListings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchListings")
	defer scope.End()

	req := dto.SearchRequest{}
	req.FromRequest(r)

	res, err := handler.service.Search(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search listings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetListingByID returns one listing with its rooms.
// @Summary Get a listing
// @Tags Listing
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} response.Data[dto.ListingResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/listings/{id} [get]
func (handler *Handler) GetListingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetListingByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get listing")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetRooms returns the room-selection panel of a listing.
// @Summary List rooms of a listing
// @Tags Listing
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} response.Data[dto.RoomsResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/listings/{id}/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	res, err := handler.service.Rooms(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SelectRoom quotes an available room.
// @Summary Select a room
// @Description Returns the monthly price of the room. Selecting does not reserve the room.
// @Tags Listing
// @Produce json
// @Param id path string true "Listing ID"
// @Param roomID path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomQuote]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Room is not available"
// @Failure 500 {object} response.Error
// @Router /v1/listings/{id}/rooms/{roomID}/select [post]
func (handler *Handler) SelectRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectRoom")
	defer scope.End()

	res, err := handler.service.SelectRoom(ctx, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamRoomID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to select room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room selected")

	response.WithJSON(w, http.StatusOK, res)
}
