package onboarding

import (
	"net/http"
	"staywise/infras/otel"
	"staywise/internal/domains/onboarding/model/dto"
	"staywise/internal/domains/onboarding/service"
	"staywise/shared/constant"
	"staywise/shared/failure"
	"staywise/shared/validator"
	"staywise/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Onboarding
	otel    otel.Otel
}

func New(service service.Onboarding, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/onboarding", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.StartSession)
		routerGroup.Get("/{id}", handler.GetSession)
		routerGroup.Patch("/{id}", handler.FillProfile)
		routerGroup.Post("/{id}/role", handler.ChooseRole)
		routerGroup.Post("/{id}/next", handler.Next)
		routerGroup.Post("/{id}/back", handler.Back)
		routerGroup.Post("/{id}/agreement", handler.Agree)
		routerGroup.Post("/{id}/finalize", handler.Finalize)
		routerGroup.Post("/{id}/skip", handler.Skip)
	})
}

// StartSession opens a wizard at the role step.
// @Summary Start onboarding
// @Tags Onboarding
// @Produce json
// @Success 201 {object} response.Data[dto.SessionResponse]
// @Failure 500 {object} response.Error
// @Router /v1/onboarding [post]
func (handler *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartSession")
	defer scope.End()

	res, err := handler.service.Start(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start onboarding")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetSession
// @Summary Get an onboarding session
// @Tags Onboarding
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 404 {object} response.Error
// @Router /v1/onboarding/{id} [get]
func (handler *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSession")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// FillProfile stores the form fields sent in the body. Omitted fields are left as they are.
// @Summary Fill the onboarding form
// @Tags Onboarding
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.FillRequest true "Form fields"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Session already completed"
// @Router /v1/onboarding/{id} [patch]
func (handler *Handler) FillProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FillProfile")
	defer scope.End()

	req := dto.FillRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Fill(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ChooseRole
// @Summary Choose renter or owner
// @Tags Onboarding
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.ChooseRoleRequest true "Role"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Not at the role step"
// @Router /v1/onboarding/{id}/role [post]
func (handler *Handler) ChooseRole(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChooseRole")
	defer scope.End()

	req := dto.ChooseRoleRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ChooseRole(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Next advances the wizard. At the agreement step it finishes onboarding.
// @Summary Next step
// @Tags Onboarding
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 400 {object} response.Error "Commission not accepted"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Session already completed"
// @Router /v1/onboarding/{id}/next [post]
func (handler *Handler) Next(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Next")
	defer scope.End()

	res, err := handler.service.Next(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		handler.withError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Back
// @Summary Previous step
// @Tags Onboarding
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Session already completed"
// @Router /v1/onboarding/{id}/back [post]
func (handler *Handler) Back(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Back")
	defer scope.End()

	res, err := handler.service.Back(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Agree records the partner commission checkbox.
// @Summary Accept the partner commission
// @Tags Onboarding
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.AgreementRequest true "Agreement"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Not at the agreement step"
// @Router /v1/onboarding/{id}/agreement [post]
func (handler *Handler) Agree(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Agree")
	defer scope.End()

	req := dto.AgreementRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Agree(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Finalize completes an owner session after the completion delay.
// @Summary Finish onboarding
// @Tags Onboarding
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 400 {object} response.Error "Commission not accepted"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Not at the agreement step"
// @Failure 503 {object} response.Error "Interrupted before completing"
// @Router /v1/onboarding/{id}/finalize [post]
func (handler *Handler) Finalize(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Finalize")
	defer scope.End()

	res, err := handler.service.Finalize(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		handler.withError(w, err)

		return
	}

	scope.AddEvent("Onboarding completed")

	response.WithJSON(w, http.StatusOK, res)
}

// Skip explores as a guest.
// @Summary Skip onboarding
// @Description Only allowed at the role step. Completes the session as a guest renter.
// @Tags Onboarding
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Not at the role step"
// @Router /v1/onboarding/{id}/skip [post]
func (handler *Handler) Skip(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Skip")
	defer scope.End()

	res, err := handler.service.Skip(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) withError(w http.ResponseWriter, err error) {
	if service.IsCancelled(err) {
		log.Warn().Err(err).Msg("onboarding request interrupted")

		response.WithError(w, failure.Unavailable("onboarding was interrupted before completing"))

		return
	}

	response.WithError(w, err)
}
