package schedule

import (
	"net/http"

	"bookly/infras/otel"
	"bookly/internal/domains/schedule/model/dto"
	"bookly/internal/domains/schedule/service"
	"bookly/shared/constant"
	"bookly/shared/validator"
	"bookly/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/brands/{brandID}/schedule", func(routerGroup chi.Router) {
		routerGroup.Get("/hours", handler.GetWeeklyHours)
		routerGroup.Put("/hours", handler.UpdateWeeklyHours)
		routerGroup.Get("/exceptions", handler.GetDateExceptions)
		routerGroup.Put("/exceptions", handler.UpsertDateException)
		routerGroup.Delete("/exceptions/{id}", handler.DeleteDateException)
		routerGroup.Get("/policy", handler.GetBookingPolicy)
		routerGroup.Patch("/policy", handler.UpdateBookingPolicy)
	})
}

// GetWeeklyHours retrieves a brand's weekly opening hours.
// @Summary Get weekly hours
// @Description Retrieve the brand's default weekly schedule. Seeds the default week on first access.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param brandID path string true "Brand ID"
// @Success 200 {object} response.Data[dto.GetWeeklyHoursResponse] "Weekly hours"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/brands/{brandID}/schedule/hours [get]
func (handler *Handler) GetWeeklyHours(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWeeklyHours")
	defer scope.End()

	brandID := chi.URLParam(r, constant.RequestParamBrandID)

	hours, err := handler.service.GetWeeklyHours(ctx, brandID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get weekly hours")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Weekly hours retrieved successfully")

	response.WithJSON(w, http.StatusOK, hours)
}

// UpdateWeeklyHours replaces entries of a brand's weekly schedule.
// @Summary Update weekly hours
// @Description Update one or more weekday entries of the brand's weekly schedule.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param brandID path string true "Brand ID"
// @Param request body dto.UpdateWeeklyHoursRequest true "Update Weekly Hours Request"
// @Success 200 {object} response.Message "Weekly hours updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/brands/{brandID}/schedule/hours [put]
// @Security BearerAuth
func (handler *Handler) UpdateWeeklyHours(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateWeeklyHours")
	defer scope.End()

	brandID := chi.URLParam(r, constant.RequestParamBrandID)

	req := dto.UpdateWeeklyHoursRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateWeeklyHours(ctx, req, brandID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update weekly hours")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Weekly hours updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Weekly hours updated successfully")
}

// GetDateExceptions retrieves a brand's date exceptions.
// @Summary Get date exceptions
// @Description Retrieve all date-specific schedule overrides for the brand.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param brandID path string true "Brand ID"
// @Success 200 {object} response.Data[dto.GetDateExceptionsResponse] "Date exceptions"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/brands/{brandID}/schedule/exceptions [get]
func (handler *Handler) GetDateExceptions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDateExceptions")
	defer scope.End()

	brandID := chi.URLParam(r, constant.RequestParamBrandID)

	exceptions, err := handler.service.GetDateExceptions(ctx, brandID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get date exceptions")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Date exceptions retrieved successfully")

	response.WithJSON(w, http.StatusOK, exceptions)
}

// UpsertDateException creates or replaces a date exception.
// @Summary Upsert a date exception
// @Description Create or replace the schedule override for a specific date. At most one exception exists per date.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param brandID path string true "Brand ID"
// @Param request body dto.UpsertDateExceptionRequest true "Upsert Date Exception Request"
// @Success 200 {object} response.Message "Date exception saved successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/brands/{brandID}/schedule/exceptions [put]
// @Security BearerAuth
func (handler *Handler) UpsertDateException(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertDateException")
	defer scope.End()

	brandID := chi.URLParam(r, constant.RequestParamBrandID)

	req := dto.UpsertDateExceptionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpsertDateException(ctx, req, brandID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upsert date exception")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Date exception saved successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Date exception saved successfully")
}

// DeleteDateException removes a date exception, restoring the weekly schedule.
// @Summary Delete a date exception
// @Description Delete a date exception by its ID. The date falls back to the weekly schedule.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param brandID path string true "Brand ID"
// @Param id path string true "Date Exception ID"
// @Success 200 {object} response.Message "Date exception deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/brands/{brandID}/schedule/exceptions/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDateException(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDateException")
	defer scope.End()

	brandID := chi.URLParam(r, constant.RequestParamBrandID)
	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteDateException(ctx, brandID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete date exception")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Date exception deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Date exception deleted successfully")
}

// GetBookingPolicy retrieves a brand's booking policy.
// @Summary Get booking policy
// @Description Retrieve the brand's booking policy. Responds 404 when no policy is configured.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param brandID path string true "Brand ID"
// @Success 200 {object} response.Data[dto.BookingPolicyResponse] "Booking policy"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/brands/{brandID}/schedule/policy [get]
func (handler *Handler) GetBookingPolicy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingPolicy")
	defer scope.End()

	brandID := chi.URLParam(r, constant.RequestParamBrandID)

	policy, err := handler.service.GetBookingPolicy(ctx, brandID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking policy")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking policy retrieved successfully")

	response.WithJSON(w, http.StatusOK, policy)
}

// UpdateBookingPolicy updates a brand's booking policy.
// @Summary Update booking policy
// @Description Update the brand's booking policy, creating it from defaults when absent.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param brandID path string true "Brand ID"
// @Param request body dto.UpdateBookingPolicyRequest true "Update Booking Policy Request"
// @Success 200 {object} response.Message "Booking policy updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/brands/{brandID}/schedule/policy [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBookingPolicy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingPolicy")
	defer scope.End()

	brandID := chi.URLParam(r, constant.RequestParamBrandID)

	req := dto.UpdateBookingPolicyRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateBookingPolicy(ctx, req, brandID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking policy")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking policy updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking policy updated successfully")
}
