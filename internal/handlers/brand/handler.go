package brand

import (
	"net/http"

	"bookly/infras/otel"
	"bookly/internal/domains/brand/model"
	"bookly/internal/domains/brand/model/dto"
	"bookly/internal/domains/brand/service"
	"bookly/shared"
	"bookly/shared/constant"
	gDto "bookly/shared/dto"
	"bookly/shared/validator"
	"bookly/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Brand
	otel    otel.Otel
}

func New(service service.Brand, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/brands", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBrand)
		routerGroup.Get("/", handler.GetBrands)
		routerGroup.Get("/{id}", handler.GetBrandByID)
		routerGroup.Patch("/{id}", handler.UpdateBrand)
		routerGroup.Delete("/{id}", handler.DeleteBrand)
	})
}

// CreateBrand handles the creation of a new brand.
// @Summary Create a new brand
// @Description Create a new brand (tenant) with the provided details.
// @Tags Brand
// @Accept json
// @Produce json
// @Param request body dto.CreateBrandRequest true "Create Brand Request"
// @Success 201 {object} response.Message "Brand created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/brands [post]
// @Security BearerAuth
func (handler *Handler) CreateBrand(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBrand")
	defer scope.End()

	req := dto.CreateBrandRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create brand")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Brand created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Brand created successfully")
}

// GetBrands retrieves all brands based on query parameters.
// @Summary Get all brands
// @Description Retrieve all brands with optional filtering and pagination.
// @Tags Brand
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name (partial match)"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetBrandsResponse] "List of brands"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/brands [get]
func (handler *Handler) GetBrands(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBrands")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)
	active := r.URL.Query().Get(model.FieldActive)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if activeValue := shared.ConvertStringToBool(active); activeValue != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *activeValue,
			Table:    model.TableName,
		})
	}

	brands, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get brands")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Brands retrieved successfully")

	response.WithJSON(w, http.StatusOK, brands)
}

// GetBrandByID retrieves a brand by its ID.
// @Summary Get a brand by ID
// @Description Retrieve a brand by its unique identifier.
// @Tags Brand
// @Accept json
// @Produce json
// @Param id path string true "Brand ID"
// @Success 200 {object} response.Data[dto.BrandResponse] "Brand details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/brands/{id} [get]
func (handler *Handler) GetBrandByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBrandByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	brand, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get brand by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Brand retrieved successfully")

	response.WithJSON(w, http.StatusOK, brand)
}

// UpdateBrand updates an existing brand by its ID.
// @Summary Update a brand by ID
// @Description Update the details of an existing brand.
// @Tags Brand
// @Accept json
// @Produce json
// @Param id path string true "Brand ID"
// @Param request body dto.UpdateBrandRequest true "Update Brand Request"
// @Success 200 {object} response.Message "Brand updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/brands/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBrand")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBrandRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update brand")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Brand updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Brand updated successfully")
}

// DeleteBrand deletes a brand by its ID.
// @Summary Delete a brand by ID
// @Description Delete a brand using its unique identifier.
// @Tags Brand
// @Accept json
// @Produce json
// @Param id path string true "Brand ID"
// @Success 200 {object} response.Message "Brand deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/brands/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBrand")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete brand")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Brand deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Brand deleted successfully")
}
