package guest

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/internal/domains/guest/model/dto"
	"frontdesk/internal/domains/guest/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Guest
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Guest, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)

		routerGroup.Get("/", handler.GetGuests)
		routerGroup.Get("/find", handler.FindGuest)
		routerGroup.Get("/{id}", handler.GetGuestByID)

		routerGroup.Group(func(deskGroup chi.Router) {
			deskGroup.Use(handler.middleware.RequireRoles(
				constant.RoleAdministrator, constant.RoleManager, constant.RoleReception,
			))

			deskGroup.Post("/", handler.CreateGuest)
			deskGroup.Patch("/{id}", handler.UpdateGuest)
		})

		routerGroup.With(handler.middleware.RequireRoles(constant.RoleAdministrator)).
			Delete("/{id}", handler.DeleteGuest)
	})
}

// CreateGuest handles the creation of a new guest profile.
// @Summary Create a new guest
// @Description Create a new guest profile with the provided details.
// @Tags Guest
// @Accept json
// @Produce json
// @Param request body dto.CreateGuestRequest true "Create Guest Request"
// @Success 201 {object} response.Message "Guest created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests [post]
// @Security BearerAuth
func (handler *Handler) CreateGuest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuest")
	defer scope.End()

	req := dto.CreateGuestRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create guest")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Guest created successfully")
}

// GetGuests retrieves all guests based on query parameters.
// @Summary Get all guests
// @Description Retrieve all guests with optional filtering and pagination. Phone and passport filters allow the desk to find returning guests.
// @Tags Guest
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param phone query string false "Filter by phone"
// @Param passport_number query string false "Filter by passport number"
// @Param full_name query string false "Filter by full name (substring)"
// @Success 200 {object} response.Data[dto.GetGuestsResponse] "List of guests"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests [get]
// @Security BearerAuth
func (handler *Handler) GetGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if phone := r.URL.Query().Get(model.FieldPhone); phone != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPhone,
			Operator: gDto.FilterOperatorEq,
			Value:    phone,
			Table:    model.TableName,
		})
	}

	if passport := r.URL.Query().Get(model.FieldPassportNumber); passport != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPassportNumber,
			Operator: gDto.FilterOperatorEq,
			Value:    passport,
			Table:    model.TableName,
		})
	}

	if name := r.URL.Query().Get(model.FieldFullName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldFullName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	guests, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guests retrieved successfully")

	response.WithJSON(w, http.StatusOK, guests)
}

// FindGuest looks up a returning guest by phone or passport number.
// @Summary Find a guest by phone or passport
// @Description Look up a returning guest by phone or passport number; used by the desk before creating a booking.
// @Tags Guest
// @Accept json
// @Produce json
// @Param phone query string false "Phone number"
// @Param passport_number query string false "Passport number"
// @Success 200 {object} response.Data[dto.GuestResponse] "Guest details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests/find [get]
// @Security BearerAuth
func (handler *Handler) FindGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FindGuest")
	defer scope.End()

	phone := r.URL.Query().Get(model.FieldPhone)
	passport := r.URL.Query().Get(model.FieldPassportNumber)

	guest, err := handler.service.FindByPhoneOrPassport(ctx, phone, passport)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to find guest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest found successfully")

	response.WithJSON(w, http.StatusOK, guest)
}

// GetGuestByID retrieves a guest by ID.
// @Summary Get a guest by ID
// @Description Retrieve a guest profile by its unique identifier.
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} response.Data[dto.GuestResponse] "Guest details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetGuestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	guest, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest retrieved successfully")

	response.WithJSON(w, http.StatusOK, guest)
}

// UpdateGuest updates an existing guest profile.
// @Summary Update a guest by ID
// @Description Update the details of an existing guest profile.
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Param request body dto.UpdateGuestRequest true "Update Guest Request"
// @Success 200 {object} response.Message "Guest updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateGuestRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update guest")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Guest updated successfully")
}

// DeleteGuest deletes a guest by ID.
// @Summary Delete a guest by ID
// @Description Delete a guest profile using its unique identifier.
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} response.Message "Guest deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGuest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete guest")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Guest deleted successfully")
}
