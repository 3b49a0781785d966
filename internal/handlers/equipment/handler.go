package equipment

import (
	"net/http"

	"courtside/infras/otel"
	"courtside/internal/domains/equipment/model"
	"courtside/internal/domains/equipment/model/dto"
	"courtside/internal/domains/equipment/service"
	"courtside/shared/constant"
	gDto "courtside/shared/dto"
	"courtside/shared/validator"
	"courtside/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Equipment
	otel    otel.Otel
}

func New(service service.Equipment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/equipment", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEquipment)
		routerGroup.Get("/", handler.GetEquipment)
		routerGroup.Get("/{id}", handler.GetEquipmentByID)
		routerGroup.Patch("/{id}", handler.UpdateEquipment)
		routerGroup.Delete("/{id}", handler.DeleteEquipment)
	})
}

// CreateEquipment handles the creation of a new equipment pool.
// @Summary Create a new equipment pool
// @Description Create a new equipment pool with the provided details. Each kind can only have one pool.
// @Tags Equipment
// @Accept json
// @Produce json
// @Param request body dto.CreateEquipmentRequest true "Create Equipment Request"
// @Success 201 {object} response.Message "Equipment pool created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/equipment [post]
func (handler *Handler) CreateEquipment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEquipment")
	defer scope.End()

	req := dto.CreateEquipmentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create equipment pool")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Equipment pool created successfully")

	response.WithMessage(writer, http.StatusCreated, "Equipment pool created successfully")
}

// GetEquipment retrieves all equipment pools based on query parameters.
// @Summary Get all equipment pools
// @Description Retrieve all equipment pools with optional filtering and pagination.
// @Tags Equipment
// @Accept json
// @Produce json
// @Param kind query string false "Filter by kind"
// @Success 200 {object} dto.GetEquipmentResponse "List of equipment pools"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/equipment [get]
func (handler *Handler) GetEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEquipment")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if kind := r.URL.Query().Get(model.FieldKind); kind != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldKind,
			Operator: gDto.FilterOperatorEq,
			Value:    kind,
			Table:    model.TableName,
		})
	}

	equipment, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get equipment pools")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Equipment pools retrieved successfully")

	response.WithJSON(w, http.StatusOK, equipment)
}

// GetEquipmentByID retrieves an equipment pool by its ID.
// @Summary Get an equipment pool by ID
// @Description Retrieve an equipment pool by its unique identifier.
// @Tags Equipment
// @Accept json
// @Produce json
// @Param id path string true "Equipment pool ID"
// @Success 200 {object} dto.EquipmentResponse "Equipment pool details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/equipment/{id} [get]
func (handler *Handler) GetEquipmentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEquipmentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	equipment, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get equipment pool by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Equipment pool retrieved successfully")

	response.WithJSON(w, http.StatusOK, equipment)
}

// UpdateEquipment updates an existing equipment pool by its ID.
// @Summary Update an equipment pool by ID
// @Description Update the details of an existing equipment pool.
// @Tags Equipment
// @Accept json
// @Produce json
// @Param id path string true "Equipment pool ID"
// @Param request body dto.UpdateEquipmentRequest true "Update Equipment Request"
// @Success 200 {object} response.Message "Equipment pool updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/equipment/{id} [patch]
func (handler *Handler) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEquipment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateEquipmentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update equipment pool")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Equipment pool updated successfully")

	response.WithMessage(w, http.StatusOK, "Equipment pool updated successfully")
}

// DeleteEquipment deletes an equipment pool by its ID.
// @Summary Delete an equipment pool by ID
// @Description Delete an equipment pool using its unique identifier.
// @Tags Equipment
// @Accept json
// @Produce json
// @Param id path string true "Equipment pool ID"
// @Success 200 {object} response.Message "Equipment pool deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/equipment/{id} [delete]
func (handler *Handler) DeleteEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEquipment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete equipment pool")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Equipment pool deleted successfully")

	response.WithMessage(w, http.StatusOK, "Equipment pool deleted successfully")
}
