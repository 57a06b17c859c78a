package room

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Room
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Room, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)

		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)

		routerGroup.Group(func(managerGroup chi.Router) {
			managerGroup.Use(handler.middleware.RequireRoles(constant.RoleAdministrator, constant.RoleManager))

			managerGroup.Post("/", handler.CreateRoom)
			managerGroup.Patch("/{id}", handler.UpdateRoom)
			managerGroup.Post("/{id}/block", handler.BlockRoom)
			managerGroup.Post("/{id}/unblock", handler.UnblockRoom)
		})

		routerGroup.With(handler.middleware.RequireRoles(constant.RoleAdministrator)).
			Delete("/{id}", handler.DeleteRoom)
	})
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Description Create a new room with the provided details.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param number formData string true "Room number"
// @Param type formData string true "Room type"
// @Param floor formData integer true "Floor"
// @Param building formData string false "Building"
// @Param capacity formData integer false "Capacity override"
// @Param image formData file false "Room image"
// @Success 201 {object} response.Message "Room created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.CreateRoomRequest{
		Number:   request.FormValue("number"),
		Type:     request.FormValue("type"),
		Building: request.FormValue("building"),
	}

	if floorStr := request.FormValue("floor"); floorStr != "" {
		if f, err := shared.ConvertStringToInt(floorStr); err == nil {
			req.Floor = f
		}
	}

	if capStr := request.FormValue("capacity"); capStr != "" {
		if c, err := shared.ConvertStringToInt(capStr); err == nil {
			req.Capacity = c
		}
	}

	file, fileHeader, err := request.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Room created successfully")
}

// GetRooms retrieves all rooms based on query parameters.
// @Summary Get all rooms
// @Description Retrieve all rooms with optional filtering and pagination.
// @Tags Room
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type query string false "Filter by room type"
// @Param floor query integer false "Filter by floor"
// @Param building query string false "Filter by building"
// @Param blocked query boolean false "Filter by blocked state"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if roomType := r.URL.Query().Get(model.FieldType); roomType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    roomType,
			Table:    model.TableName,
		})
	}

	if floor := r.URL.Query().Get(model.FieldFloor); floor != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldFloor,
			Operator: gDto.FilterOperatorEq,
			Value:    floor,
			Table:    model.TableName,
		})
	}

	if building := r.URL.Query().Get(model.FieldBuilding); building != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBuilding,
			Operator: gDto.FilterOperatorEq,
			Value:    building,
			Table:    model.TableName,
		})
	}

	if blocked := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldBlocked)); blocked != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBlocked,
			Operator: gDto.FilterOperatorEq,
			Value:    *blocked,
			Table:    model.TableName,
		})
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Description Retrieve a room by its unique identifier.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoom updates an existing room by its ID.
// @Summary Update a room by ID
// @Description Update the details of an existing room.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Room ID"
// @Param number formData string false "Room number"
// @Param type formData string false "Room type"
// @Param floor formData integer false "Floor"
// @Param building formData string false "Building"
// @Param capacity formData integer false "Capacity"
// @Param image formData file false "Room image"
// @Success 200 {object} response.Message "Room updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdateRoomRequest{
		Number:   r.FormValue("number"),
		Type:     r.FormValue("type"),
		Building: r.FormValue("building"),
	}

	if floorStr := r.FormValue("floor"); floorStr != "" {
		if f, err := shared.ConvertStringToInt(floorStr); err == nil {
			req.Floor = &f
		}
	}

	if capStr := r.FormValue("capacity"); capStr != "" {
		if c, err := shared.ConvertStringToInt(capStr); err == nil {
			req.Capacity = &c
		}
	}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// BlockRoom takes a room out of service.
// @Summary Block a room
// @Description Block a room for maintenance or repair; blocked rooms accept no bookings.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.BlockRoomRequest true "Block Room Request"
// @Success 200 {object} response.Message "Room blocked successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/block [post]
// @Security BearerAuth
func (handler *Handler) BlockRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BlockRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.BlockRoomRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Block(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to block room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room blocked successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room blocked successfully")
}

// UnblockRoom returns a blocked room to service.
// @Summary Unblock a room
// @Description Return a blocked room to service so it can accept bookings again.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message "Room unblocked successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/unblock [post]
// @Security BearerAuth
func (handler *Handler) UnblockRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UnblockRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Unblock(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to unblock room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room unblocked successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room unblocked successfully")
}

// DeleteRoom deletes a room by its ID.
// @Summary Delete a room by ID
// @Description Delete a room that has no active bookings.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message "Room deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}
