package concierge

import (
	"net/http"
	"staywise/infras/otel"
	"staywise/internal/domains/concierge/model/dto"
	"staywise/internal/domains/concierge/service"
	"staywise/shared/constant"
	"staywise/shared/validator"
	"staywise/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Concierge
	otel    otel.Otel
}

func New(service service.Concierge, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/concierge", func(routerGroup chi.Router) {
		routerGroup.Post("/conversations", handler.StartConversation)
		routerGroup.Get("/conversations/{id}", handler.GetConversation)
		routerGroup.Post("/conversations/{id}/messages", handler.SendMessage)
		routerGroup.Post("/recommendations", handler.Recommend)
	})
}

// StartConversation
// @Summary Start a concierge conversation
// @Description The transcript opens with a greeting from the assistant.
// @Tags Concierge
// @Produce json
// @Success 201 {object} response.Data[dto.ConversationResponse]
// @Failure 500 {object} response.Error
// @Router /v1/concierge/conversations [post]
func (handler *Handler) StartConversation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartConversation")
	defer scope.End()

	res, err := handler.service.Start(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start conversation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetConversation
// @Summary Get a concierge transcript
// @Tags Concierge
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} response.Data[dto.ConversationResponse]
// @Failure 404 {object} response.Error
// @Router /v1/concierge/conversations/{id} [get]
func (handler *Handler) GetConversation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConversation")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SendMessage asks the assistant and waits for its reply.
// @Summary Send a message
// @Description Blank text, or text sent while a reply is still pending, is not accepted and leaves the transcript unchanged.
// @Tags Concierge
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param request body dto.SendRequest true "Message"
// @Success 200 {object} response.Data[dto.SendResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/concierge/conversations/{id}/messages [post]
func (handler *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendMessage")
	defer scope.End()

	req := dto.SendRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Send(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send message")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Recommend answers a single query without keeping a transcript.
// @Summary Get recommendations
// @Tags Concierge
// @Accept json
// @Produce json
// @Param request body dto.RecommendRequest true "Query"
// @Success 200 {object} response.Data[dto.RecommendResponse]
// @Failure 400 {object} response.Error
// @Router /v1/concierge/recommendations [post]
func (handler *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Recommend")
	defer scope.End()

	req := dto.RecommendRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, handler.service.Recommend(ctx, req))
}
