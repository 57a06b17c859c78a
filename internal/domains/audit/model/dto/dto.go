package dto

import (
	"frontdesk/internal/domains/audit/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
)

type AuditLogResponse struct {
	ID                string `json:"id"`
	Type              string `json:"type"`
	DateRun           string `json:"date_run"`
	Actor             string `json:"actor"`
	Details           string `json:"details,omitempty"`
	Processed         int    `json:"processed"`
	ConfirmedToBooked int    `json:"confirmed_to_booked"`
	AutoCompleted     int    `json:"auto_completed"`
	NextDate          string `json:"next_date"`
	CreatedAt         string `json:"created_at"`
}

func (r *AuditLogResponse) FromModel(model model.AuditLog) {
	r.ID = model.ID
	r.Type = model.Type
	r.DateRun = timezone.Format(model.DateRun, constant.DateOnlyFormat)
	r.Actor = model.Actor
	r.Details = model.Details
	r.Processed = model.Processed
	r.ConfirmedToBooked = model.ConfirmedToBooked
	r.AutoCompleted = model.AutoCompleted
	r.NextDate = timezone.Format(model.NextDate, constant.DateOnlyFormat)
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}

type GetAuditLogsResponse struct {
	Logs      []AuditLogResponse `json:"logs"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetAuditLogsResponse) FromModels(models []model.AuditLog, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Logs = make([]AuditLogResponse, len(models))
	for i, mod := range models {
		r.Logs[i].FromModel(mod)
	}
}

// NightAuditResponse summarizes one run and the business date it advanced to.
type NightAuditResponse struct {
	DateRun           string `json:"date_run"`
	Processed         int    `json:"processed"`
	ConfirmedToBooked int    `json:"confirmed_to_booked"`
	AutoCompleted     int    `json:"auto_completed"`
	NextDate          string `json:"next_date"`
}

type BusinessDateResponse struct {
	BusinessDate string `json:"business_date"`
}

// AuditEvent is published after a night audit or timer sweep commits.
type AuditEvent struct {
	Type              string `json:"type"`
	DateRun           string `json:"date_run"`
	Actor             string `json:"actor"`
	Processed         int    `json:"processed"`
	ConfirmedToBooked int    `json:"confirmed_to_booked"`
	AutoCompleted     int    `json:"auto_completed"`
	OccurredAt        string `json:"occurred_at"`
}
