package booking

import (
	"net/http"
	"staywise/infras/otel"
	"staywise/internal/domains/booking/service"
	"staywise/shared/constant"
	"staywise/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/renters/{id}/dashboard", handler.GetRenterDashboard)
	router.Get("/owners/{id}/dashboard", handler.GetOwnerDashboard)
}

// GetRenterDashboard
// @Summary Renter dashboard
// @Description Bookings, current stay, payment status, outstanding amount and pending maintenance of a renter.
// @Tags Dashboard
// @Produce json
// @Param id path string true "Renter ID"
// @Success 200 {object} response.Data[dto.RenterDashboardResponse]
// @Failure 500 {object} response.Error
// @Router /v1/renters/{id}/dashboard [get]
func (handler *Handler) GetRenterDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRenterDashboard")
	defer scope.End()

	res, err := handler.service.RenterDashboard(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get renter dashboard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetOwnerDashboard
// @Summary Owner dashboard
// @Tags Dashboard
// @Produce json
// @Param id path string true "Owner ID"
// @Success 200 {object} response.Data[dto.OwnerDashboardResponse]
// @Failure 500 {object} response.Error
// @Router /v1/owners/{id}/dashboard [get]
func (handler *Handler) GetOwnerDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnerDashboard")
	defer scope.End()

	res, err := handler.service.OwnerDashboard(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get owner dashboard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
