package notification

import (
	"net/http"
	"staywise/infras/otel"
	"staywise/internal/domains/notification/service"
	"staywise/shared/constant"
	"staywise/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Notification
	otel    otel.Otel
}

func New(service service.Notification, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/notifications", handler.GetNotifications)
}

// GetNotifications
// @Summary Notification feed
// @Tags Notification
// @Produce json
// @Success 200 {object} response.Data[dto.NotificationsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/notifications [get]
func (handler *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotifications")
	defer scope.End()

	res, err := handler.service.Notifications(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get notifications")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
