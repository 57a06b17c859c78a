package dto

import (
	"strings"
	"time"

	"frontdesk/internal/domains/guest/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	FirstName        string `json:"first_name"        validate:"required,max=100"`
	LastName         string `json:"last_name"         validate:"required,max=100"`
	MiddleName       string `json:"middle_name"       validate:"omitempty,max=100"`
	Phone            string `json:"phone"             validate:"required,max=20"`
	Email            string `json:"email"             validate:"omitempty,email,max=100"`
	Age              int    `json:"age"               validate:"omitempty,min=0,max=130"`
	DateOfBirth      string `json:"date_of_birth"     validate:"omitempty,datetime=2006-01-02"`
	Address          string `json:"address"           validate:"omitempty,max=200"`
	PassportNumber   string `json:"passport_number"   validate:"omitempty,max=30"`
	Gender           string `json:"gender"            validate:"required,oneof=male female"`
	EmergencyContact string `json:"emergency_contact" validate:"omitempty,max=100"`
	EmergencyPhone   string `json:"emergency_phone"   validate:"omitempty,max=20"`
	Notes            string `json:"notes"             validate:"omitempty,max=500"`
}

func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	var dateOfBirth *time.Time

	if c.DateOfBirth != "" {
		if parsed, err := timezone.Parse(constant.DateOnlyFormat, c.DateOfBirth); err == nil {
			dateOfBirth = &parsed
		}
	}

	fullName := strings.TrimSpace(strings.Join([]string{c.LastName, c.FirstName, c.MiddleName}, " "))

	return model.Guest{
		ID:               uuid.NewString(),
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		MiddleName:       c.MiddleName,
		FullName:         fullName,
		Phone:            c.Phone,
		Email:            c.Email,
		Age:              c.Age,
		DateOfBirth:      dateOfBirth,
		Address:          c.Address,
		PassportNumber:   c.PassportNumber,
		Gender:           c.Gender,
		EmergencyContact: c.EmergencyContact,
		EmergencyPhone:   c.EmergencyPhone,
		Notes:            c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuestRequest struct {
	FirstName        string `db:"first_name"        json:"first_name"        validate:"omitempty,max=100"`
	LastName         string `db:"last_name"         json:"last_name"         validate:"omitempty,max=100"`
	MiddleName       string `db:"middle_name"       json:"middle_name"       validate:"omitempty,max=100"`
	Phone            string `db:"phone"             json:"phone"             validate:"omitempty,max=20"`
	Email            string `db:"email"             json:"email"             validate:"omitempty,email,max=100"`
	Age              *int   `db:"age"               json:"age"               validate:"omitempty,min=0,max=130"`
	Address          string `db:"address"           json:"address"           validate:"omitempty,max=200"`
	PassportNumber   string `db:"passport_number"   json:"passport_number"   validate:"omitempty,max=30"`
	EmergencyContact string `db:"emergency_contact" json:"emergency_contact" validate:"omitempty,max=100"`
	EmergencyPhone   string `db:"emergency_phone"   json:"emergency_phone"   validate:"omitempty,max=20"`
	Notes            string `db:"notes"             json:"notes"             validate:"omitempty,max=500"`
}

type GuestResponse struct {
	ID               string `json:"id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	MiddleName       string `json:"middle_name,omitempty"`
	FullName         string `json:"full_name"`
	Phone            string `json:"phone"`
	Email            string `json:"email,omitempty"`
	Age              int    `json:"age"`
	DateOfBirth      string `json:"date_of_birth,omitempty"`
	Address          string `json:"address,omitempty"`
	PassportNumber   string `json:"passport_number,omitempty"`
	Gender           string `json:"gender"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
	EmergencyPhone   string `json:"emergency_phone,omitempty"`
	Notes            string `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.MiddleName = model.MiddleName
	r.FullName = model.FullName
	r.Phone = model.Phone
	r.Email = model.Email
	r.Age = model.Age
	r.Address = model.Address
	r.PassportNumber = model.PassportNumber
	r.Gender = model.Gender
	r.EmergencyContact = model.EmergencyContact
	r.EmergencyPhone = model.EmergencyPhone
	r.Notes = model.Notes

	if model.DateOfBirth != nil {
		r.DateOfBirth = timezone.Format(*model.DateOfBirth, constant.DateOnlyFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
