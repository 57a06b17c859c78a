package audit

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/audit/model"
	"frontdesk/internal/domains/audit/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Audit
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Audit, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/audit", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)

		routerGroup.Get("/logs", handler.GetAuditLogs)
		routerGroup.Get("/business-date", handler.GetBusinessDate)

		routerGroup.With(handler.middleware.RequireRoles(constant.RoleAdministrator, constant.RoleManager)).
			Post("/night-run", handler.RunNightAudit)
	})
}

// RunNightAudit closes out the current business date.
// @Summary Run the night audit
// @Description Move confirmed arrivals to booked, complete overdue stays, and advance the business date by one day. Not idempotent: each run ends one business date.
// @Tags Audit
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.NightAuditResponse] "Night audit result"
// @Failure 500 {object} response.Error
// @Router /v1/audit/night-run [post]
// @Security BearerAuth
func (handler *Handler) RunNightAudit(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RunNightAudit")
	defer scope.End()

	result, err := handler.service.RunNightAudit(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to run night audit")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Night audit run successfully by user " + user)

	response.WithJSON(writer, http.StatusOK, result)
}

// GetAuditLogs retrieves night audit and timer sweep history.
// @Summary Get audit logs
// @Description Retrieve the history of night audit runs and timer sweeps with optional filtering and pagination.
// @Tags Audit
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type query string false "Filter by run type (nightly_audit, timer_sweep)"
// @Param actor query string false "Filter by acting user"
// @Success 200 {object} response.Data[dto.GetAuditLogsResponse] "List of audit logs"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/audit/logs [get]
// @Security BearerAuth
func (handler *Handler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAuditLogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if runType := r.URL.Query().Get(model.FieldType); runType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    runType,
			Table:    model.TableName,
		})
	}

	if actor := r.URL.Query().Get(model.FieldActor); actor != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActor,
			Operator: gDto.FilterOperatorEq,
			Value:    actor,
			Table:    model.TableName,
		})
	}

	logs, err := handler.service.Logs(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get audit logs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Audit logs retrieved successfully")

	response.WithJSON(w, http.StatusOK, logs)
}

// GetBusinessDate returns the current business date.
// @Summary Get the business date
// @Description Return the business date the desk is operating under; advances only when the night audit runs.
// @Tags Audit
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.BusinessDateResponse] "Business date"
// @Failure 500 {object} response.Error
// @Router /v1/audit/business-date [get]
// @Security BearerAuth
func (handler *Handler) GetBusinessDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBusinessDate")
	defer scope.End()

	date, err := handler.service.BusinessDate(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get business date")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Business date retrieved successfully")

	response.WithJSON(w, http.StatusOK, date)
}
