package model

import (
	"frontdesk/shared/model"
	"time"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID             = "id"
	FieldFirstName      = "first_name"
	FieldLastName       = "last_name"
	FieldMiddleName     = "middle_name"
	FieldFullName       = "full_name"
	FieldPhone          = "phone"
	FieldEmail          = "email"
	FieldAge            = "age"
	FieldDateOfBirth    = "date_of_birth"
	FieldAddress        = "address"
	FieldPassportNumber = "passport_number"
	FieldGender         = "gender"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

type Guest struct {
	ID               string     `db:"id"`
	FirstName        string     `db:"first_name"`
	LastName         string     `db:"last_name"`
	MiddleName       string     `db:"middle_name"`
	FullName         string     `db:"full_name"`
	Phone            string     `db:"phone"`
	Email            string     `db:"email"`
	Age              int        `db:"age"`
	DateOfBirth      *time.Time `db:"date_of_birth"`
	Address          string     `db:"address"`
	PassportNumber   string     `db:"passport_number"`
	Gender           string     `db:"gender"`
	EmergencyContact string     `db:"emergency_contact"`
	EmergencyPhone   string     `db:"emergency_phone"`
	Notes            string     `db:"notes"`
	model.Metadata
}
