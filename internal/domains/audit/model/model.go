package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	TableName  = "audit_logs"
	EntityName = "audit_log"

	FieldID                = "id"
	FieldType              = "type"
	FieldDateRun           = "date_run"
	FieldActor             = "actor"
	FieldDetails           = "details"
	FieldProcessed         = "processed"
	FieldConfirmedToBooked = "confirmed_to_booked"
	FieldAutoCompleted     = "auto_completed"
	FieldNextDate          = "next_date"
)

const (
	TypeNightAudit = "nightly_audit"
	TypeTimerSweep = "timer_sweep"
)

// AuditLog records one audit run. NextDate carries the business date forward:
// the most recent log's next date is the current business date of the desk.
type AuditLog struct {
	ID                string    `db:"id"`
	Type              string    `db:"type"`
	DateRun           time.Time `db:"date_run"`
	Actor             string    `db:"actor"`
	Details           string    `db:"details"`
	Processed         int       `db:"processed"`
	ConfirmedToBooked int       `db:"confirmed_to_booked"`
	AutoCompleted     int       `db:"auto_completed"`
	NextDate          time.Time `db:"next_date"`
	model.Metadata
}
