package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	TableName  = "organizations"
	EntityName = "organization"

	FieldID                = "id"
	FieldOfficialName      = "official_name"
	FieldUnofficialName    = "unofficial_name"
	FieldContactPersonName = "contact_person_name"
	FieldContactPhone      = "contact_phone"
	FieldContractNumber    = "contract_number"
	FieldBadge             = "badge"
	FieldBadgeColor        = "badge_color"
)

const (
	VoucherTableName  = "organization_vouchers"
	VoucherEntityName = "organization_voucher"

	VoucherFieldID             = "id"
	VoucherFieldOrganizationID = "organization_id"
	VoucherFieldNumber         = "number"
	VoucherFieldIssuedAt       = "issued_at"
)

// Organization is a contract partner whose vouchers cover guest stays.
// Badge and badge color drive how the partner's bookings render on the grid.
type Organization struct {
	ID                string `db:"id"`
	OfficialName      string `db:"official_name"`
	UnofficialName    string `db:"unofficial_name"`
	ContactPersonName string `db:"contact_person_name"`
	ContactPhone      string `db:"contact_phone"`
	ContractNumber    string `db:"contract_number"`
	Badge             string `db:"badge"`
	BadgeColor        string `db:"badge_color"`
	model.Metadata
}

// Voucher is one issued voucher number. A voucher is considered active while
// the booking referencing its number still counts toward occupancy.
type Voucher struct {
	ID             string    `db:"id"`
	OrganizationID string    `db:"organization_id"`
	Number         string    `db:"number"`
	IssuedAt       time.Time `db:"issued_at"`
	model.Metadata
}
