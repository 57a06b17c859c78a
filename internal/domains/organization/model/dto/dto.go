package dto

import (
	"frontdesk/internal/domains/organization/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateOrganizationRequest struct {
	OfficialName      string `json:"official_name"       validate:"required,max=200"`
	UnofficialName    string `json:"unofficial_name"     validate:"omitempty,max=100"`
	ContactPersonName string `json:"contact_person_name" validate:"omitempty,max=100"`
	ContactPhone      string `json:"contact_phone"       validate:"omitempty,max=20"`
	ContractNumber    string `json:"contract_number"     validate:"omitempty,max=50"`
	Badge             string `json:"badge"               validate:"omitempty,max=10"`
	BadgeColor        string `json:"badge_color"         validate:"omitempty,hexcolor"`
}

func (c *CreateOrganizationRequest) ToModel(user string) model.Organization {
	return model.Organization{
		ID:                uuid.NewString(),
		OfficialName:      c.OfficialName,
		UnofficialName:    c.UnofficialName,
		ContactPersonName: c.ContactPersonName,
		ContactPhone:      c.ContactPhone,
		ContractNumber:    c.ContractNumber,
		Badge:             c.Badge,
		BadgeColor:        c.BadgeColor,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateOrganizationRequest struct {
	OfficialName      string `db:"official_name"       json:"official_name"       validate:"omitempty,max=200"`
	UnofficialName    string `db:"unofficial_name"     json:"unofficial_name"     validate:"omitempty,max=100"`
	ContactPersonName string `db:"contact_person_name" json:"contact_person_name" validate:"omitempty,max=100"`
	ContactPhone      string `db:"contact_phone"       json:"contact_phone"       validate:"omitempty,max=20"`
	ContractNumber    string `db:"contract_number"     json:"contract_number"     validate:"omitempty,max=50"`
	Badge             string `db:"badge"               json:"badge"               validate:"omitempty,max=10"`
	BadgeColor        string `db:"badge_color"         json:"badge_color"         validate:"omitempty,hexcolor"`
}

type IssueVoucherRequest struct {
	Number string `json:"number" validate:"required,max=50"`
}

type OrganizationResponse struct {
	ID                string   `json:"id"`
	OfficialName      string   `json:"official_name"`
	UnofficialName    string   `json:"unofficial_name,omitempty"`
	ContactPersonName string   `json:"contact_person_name,omitempty"`
	ContactPhone      string   `json:"contact_phone,omitempty"`
	ContractNumber    string   `json:"contract_number,omitempty"`
	Badge             string   `json:"badge,omitempty"`
	BadgeColor        string   `json:"badge_color,omitempty"`
	IssuedVouchers    []string `json:"issued_vouchers,omitempty"`
	gDto.Metadata
}

func (r *OrganizationResponse) FromModel(model model.Organization) {
	r.ID = model.ID
	r.OfficialName = model.OfficialName
	r.UnofficialName = model.UnofficialName
	r.ContactPersonName = model.ContactPersonName
	r.ContactPhone = model.ContactPhone
	r.ContractNumber = model.ContractNumber
	r.Badge = model.Badge
	r.BadgeColor = model.BadgeColor

	r.Metadata.FromModel(model.Metadata)
}

type GetOrganizationsResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetOrganizationsResponse) FromModels(models []model.Organization, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Organizations = make([]OrganizationResponse, len(models))
	for i, mod := range models {
		r.Organizations[i].FromModel(mod)
	}
}

type VoucherResponse struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id"`
	Number         string `json:"number"`
	IssuedAt       string `json:"issued_at"`
}

func (r *VoucherResponse) FromModel(model model.Voucher) {
	r.ID = model.ID
	r.OrganizationID = model.OrganizationID
	r.Number = model.Number
	r.IssuedAt = timezone.Format(model.IssuedAt, constant.DateFormat)
}

// VoucherStatusResponse reports whether the booking referencing the voucher
// number still counts toward occupancy.
type VoucherStatusResponse struct {
	Number        string `json:"number"`
	Active        bool   `json:"active"`
	BookingID     string `json:"booking_id,omitempty"`
	BookingStatus string `json:"booking_status,omitempty"`
}
