package organization

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/organization/model"
	"frontdesk/internal/domains/organization/model/dto"
	"frontdesk/internal/domains/organization/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Organization
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Organization, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/organizations", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)

		routerGroup.Get("/", handler.GetOrganizations)
		routerGroup.Get("/vouchers/{number}", handler.GetVoucherStatus)
		routerGroup.Get("/{id}", handler.GetOrganizationByID)

		routerGroup.Group(func(managerGroup chi.Router) {
			managerGroup.Use(handler.middleware.RequireRoles(constant.RoleAdministrator, constant.RoleManager))

			managerGroup.Post("/", handler.CreateOrganization)
			managerGroup.Patch("/{id}", handler.UpdateOrganization)
			managerGroup.Post("/{id}/vouchers", handler.IssueVoucher)
		})

		routerGroup.With(handler.middleware.RequireRoles(constant.RoleAdministrator)).
			Delete("/{id}", handler.DeleteOrganization)
	})
}

// CreateOrganization handles the creation of a new partner organization.
// @Summary Create a new organization
// @Description Create a new partner organization that can issue stay vouchers.
// @Tags Organization
// @Accept json
// @Produce json
// @Param request body dto.CreateOrganizationRequest true "Create Organization Request"
// @Success 201 {object} response.Message "Organization created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/organizations [post]
// @Security BearerAuth
func (handler *Handler) CreateOrganization(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOrganization")
	defer scope.End()

	req := dto.CreateOrganizationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create organization")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Organization created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Organization created successfully")
}

// GetOrganizations retrieves all organizations based on query parameters.
// @Summary Get all organizations
// @Description Retrieve all partner organizations with optional filtering and pagination.
// @Tags Organization
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param official_name query string false "Filter by official name (substring)"
// @Param contract_number query string false "Filter by contract number"
// @Success 200 {object} response.Data[dto.GetOrganizationsResponse] "List of organizations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/organizations [get]
// @Security BearerAuth
func (handler *Handler) GetOrganizations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrganizations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name := r.URL.Query().Get(model.FieldOfficialName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldOfficialName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if contract := r.URL.Query().Get(model.FieldContractNumber); contract != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldContractNumber,
			Operator: gDto.FilterOperatorEq,
			Value:    contract,
			Table:    model.TableName,
		})
	}

	organizations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get organizations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Organizations retrieved successfully")

	response.WithJSON(w, http.StatusOK, organizations)
}

// GetOrganizationByID retrieves an organization by ID.
// @Summary Get an organization by ID
// @Description Retrieve an organization with its issued voucher numbers.
// @Tags Organization
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} response.Data[dto.OrganizationResponse] "Organization details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/organizations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetOrganizationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrganizationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	organization, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get organization by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Organization retrieved successfully")

	response.WithJSON(w, http.StatusOK, organization)
}

// UpdateOrganization updates an existing organization.
// @Summary Update an organization by ID
// @Description Update the details of an existing partner organization.
// @Tags Organization
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Param request body dto.UpdateOrganizationRequest true "Update Organization Request"
// @Success 200 {object} response.Message "Organization updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/organizations/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateOrganization(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOrganization")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateOrganizationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update organization")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Organization updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Organization updated successfully")
}

// DeleteOrganization deletes an organization by ID.
// @Summary Delete an organization by ID
// @Description Delete an organization and the vouchers it issued.
// @Tags Organization
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} response.Message "Organization deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/organizations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteOrganization(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteOrganization")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete organization")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Organization deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Organization deleted successfully")
}

// IssueVoucher issues a new voucher for an organization.
// @Summary Issue a voucher
// @Description Issue a new stay voucher under an organization; voucher numbers are globally unique.
// @Tags Organization
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Param request body dto.IssueVoucherRequest true "Issue Voucher Request"
// @Success 201 {object} response.Data[dto.VoucherResponse] "Voucher issued successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/organizations/{id}/vouchers [post]
// @Security BearerAuth
func (handler *Handler) IssueVoucher(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".IssueVoucher")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.IssueVoucherRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	voucher, err := handler.service.IssueVoucher(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to issue voucher")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Voucher issued successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, voucher)
}

// GetVoucherStatus reports whether a voucher is attached to an active booking.
// @Summary Get voucher status
// @Description Report whether a voucher number is currently attached to an active booking.
// @Tags Organization
// @Accept json
// @Produce json
// @Param number path string true "Voucher number"
// @Success 200 {object} response.Data[dto.VoucherStatusResponse] "Voucher status"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/organizations/vouchers/{number} [get]
// @Security BearerAuth
func (handler *Handler) GetVoucherStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVoucherStatus")
	defer scope.End()

	number := chi.URLParam(r, "number")

	status, err := handler.service.VoucherStatus(ctx, number)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get voucher status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Voucher status retrieved successfully")

	response.WithJSON(w, http.StatusOK, status)
}
