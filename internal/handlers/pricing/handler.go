package pricing

import (
	"net/http"

	"courtside/infras/otel"
	"courtside/internal/domains/pricing/model"
	"courtside/internal/domains/pricing/model/dto"
	"courtside/internal/domains/pricing/service"
	"courtside/shared"
	"courtside/shared/constant"
	gDto "courtside/shared/dto"
	"courtside/shared/validator"
	"courtside/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Pricing
	otel    otel.Otel
}

func New(service service.Pricing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/pricing-rules", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePricingRule)
		routerGroup.Get("/", handler.GetPricingRules)
		routerGroup.Get("/{id}", handler.GetPricingRuleByID)
		routerGroup.Patch("/{id}", handler.UpdatePricingRule)
		routerGroup.Delete("/{id}", handler.DeletePricingRule)
	})
}

// CreatePricingRule handles the creation of a new pricing rule.
// @Summary Create a new pricing rule
// @Description Create a new pricing rule. The kind determines which parameters apply.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body dto.CreatePricingRuleRequest true "Create Pricing Rule Request"
// @Success 201 {object} response.Message "Pricing rule created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing-rules [post]
func (handler *Handler) CreatePricingRule(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePricingRule")
	defer scope.End()

	req := dto.CreatePricingRuleRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create pricing rule")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Pricing rule created successfully")

	response.WithMessage(writer, http.StatusCreated, "Pricing rule created successfully")
}

// GetPricingRules retrieves all pricing rules based on query parameters.
// @Summary Get all pricing rules
// @Description Retrieve all pricing rules with optional filtering and pagination.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param kind query string false "Filter by kind"
// @Param enabled query boolean false "Filter by enabled status"
// @Success 200 {object} dto.GetPricingRulesResponse "List of pricing rules"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing-rules [get]
func (handler *Handler) GetPricingRules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPricingRules")
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

	if enabled := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldEnabled)); enabled != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEnabled,
			Operator: gDto.FilterOperatorEq,
			Value:    *enabled,
			Table:    model.TableName,
		})
	}

	rules, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pricing rules")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pricing rules retrieved successfully")

	response.WithJSON(w, http.StatusOK, rules)
}

// GetPricingRuleByID retrieves a pricing rule by its ID.
// @Summary Get a pricing rule by ID
// @Description Retrieve a pricing rule by its unique identifier.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Pricing rule ID"
// @Success 200 {object} dto.PricingRuleResponse "Pricing rule details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing-rules/{id} [get]
func (handler *Handler) GetPricingRuleByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPricingRuleByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	rule, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pricing rule by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pricing rule retrieved successfully")

	response.WithJSON(w, http.StatusOK, rule)
}

// UpdatePricingRule updates an existing pricing rule by its ID.
// @Summary Update a pricing rule by ID
// @Description Update the details of an existing pricing rule. The kind cannot change.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Pricing rule ID"
// @Param request body dto.UpdatePricingRuleRequest true "Update Pricing Rule Request"
// @Success 200 {object} response.Message "Pricing rule updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing-rules/{id} [patch]
func (handler *Handler) UpdatePricingRule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePricingRule")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePricingRuleRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update pricing rule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pricing rule updated successfully")

	response.WithMessage(w, http.StatusOK, "Pricing rule updated successfully")
}

// DeletePricingRule deletes a pricing rule by its ID.
// @Summary Delete a pricing rule by ID
// @Description Delete a pricing rule using its unique identifier.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Pricing rule ID"
// @Success 200 {object} response.Message "Pricing rule deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing-rules/{id} [delete]
func (handler *Handler) DeletePricingRule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePricingRule")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete pricing rule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pricing rule deleted successfully")

	response.WithMessage(w, http.StatusOK, "Pricing rule deleted successfully")
}
