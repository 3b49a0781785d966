package coach

import (
	"net/http"

	"courtside/infras/otel"
	"courtside/internal/domains/coach/model"
	"courtside/internal/domains/coach/model/dto"
	"courtside/internal/domains/coach/service"
	"courtside/shared"
	"courtside/shared/constant"
	gDto "courtside/shared/dto"
	"courtside/shared/validator"
	"courtside/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Coach
	otel    otel.Otel
}

func New(service service.Coach, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/coaches", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCoach)
		routerGroup.Get("/", handler.GetCoaches)
		routerGroup.Get("/{id}", handler.GetCoachByID)
		routerGroup.Patch("/{id}", handler.UpdateCoach)
		routerGroup.Delete("/{id}", handler.DeleteCoach)
	})
}

// CreateCoach handles the creation of a new coach.
// @Summary Create a new coach
// @Description Create a new coach with the provided details.
// @Tags Coach
// @Accept json
// @Produce json
// @Param request body dto.CreateCoachRequest true "Create Coach Request"
// @Success 201 {object} response.Message "Coach created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/coaches [post]
func (handler *Handler) CreateCoach(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCoach")
	defer scope.End()

	req := dto.CreateCoachRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create coach")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Coach created successfully")

	response.WithMessage(writer, http.StatusCreated, "Coach created successfully")
}

// GetCoaches retrieves all coaches based on query parameters.
// @Summary Get all coaches
// @Description Retrieve all coaches with optional filtering and pagination.
// @Tags Coach
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} dto.GetCoachesResponse "List of coaches"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/coaches [get]
func (handler *Handler) GetCoaches(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCoaches")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
		},
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	coaches, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get coaches")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Coaches retrieved successfully")

	response.WithJSON(w, http.StatusOK, coaches)
}

// GetCoachByID retrieves a coach by their ID.
// @Summary Get a coach by ID
// @Description Retrieve a coach by their unique identifier.
// @Tags Coach
// @Accept json
// @Produce json
// @Param id path string true "Coach ID"
// @Success 200 {object} dto.CoachResponse "Coach details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/coaches/{id} [get]
func (handler *Handler) GetCoachByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCoachByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	coach, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get coach by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Coach retrieved successfully")

	response.WithJSON(w, http.StatusOK, coach)
}

// UpdateCoach updates an existing coach by their ID.
// @Summary Update a coach by ID
// @Description Update the details of an existing coach.
// @Tags Coach
// @Accept json
// @Produce json
// @Param id path string true "Coach ID"
// @Param request body dto.UpdateCoachRequest true "Update Coach Request"
// @Success 200 {object} response.Message "Coach updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/coaches/{id} [patch]
func (handler *Handler) UpdateCoach(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCoach")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCoachRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update coach")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Coach updated successfully")

	response.WithMessage(w, http.StatusOK, "Coach updated successfully")
}

// DeleteCoach deletes a coach by their ID.
// @Summary Delete a coach by ID
// @Description Delete a coach using their unique identifier.
// @Tags Coach
// @Accept json
// @Produce json
// @Param id path string true "Coach ID"
// @Success 200 {object} response.Message "Coach deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/coaches/{id} [delete]
func (handler *Handler) DeleteCoach(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCoach")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete coach")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Coach deleted successfully")

	response.WithMessage(w, http.StatusOK, "Coach deleted successfully")
}
