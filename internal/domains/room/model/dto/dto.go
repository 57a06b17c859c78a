package dto

import (
	"mime/multipart"

	"frontdesk/internal/domains/room/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Number    string                `json:"number"   validate:"required,max=20"`
	Type      string                `json:"type"     validate:"required,oneof=single single_improved double double_improved luxury luxury_double family family_improved"`
	Floor     int                   `json:"floor"    validate:"required,min=1"`
	Building  string                `json:"building" validate:"omitempty,max=50"`
	Capacity  int                   `json:"capacity" validate:"omitempty,min=1"`
	Image     *multipart.FileHeader `json:"image"    validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	roomType := model.RoomType(c.Type)

	capacity := c.Capacity
	if capacity == 0 {
		capacity = roomType.DefaultCapacity()
	}

	return model.Room{
		ID:       uuid.NewString(),
		Number:   c.Number,
		Type:     roomType,
		Floor:    c.Floor,
		Building: c.Building,
		Capacity: capacity,
		Image:    imageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Number    string                `db:"number"   json:"number"                                                               validate:"omitempty,max=20"`
	Type      string                `db:"type"     json:"type"                                                                 validate:"omitempty,oneof=single single_improved double double_improved luxury luxury_double family family_improved"`
	Floor     *int                  `db:"floor"    json:"floor"                                                                validate:"omitempty,min=1"`
	Building  string                `db:"building" json:"building"                                                             validate:"omitempty,max=50"`
	Capacity  *int                  `db:"capacity" json:"capacity"                                                             validate:"omitempty,min=1"`
	Image     *multipart.FileHeader `json:"image"  validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile multipart.File        `json:"-"`
}

type BlockRoomRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=200"`
}

type RoomResponse struct {
	ID          string `json:"id"`
	Number      string `json:"number"`
	Type        string `json:"type"`
	Floor       int    `json:"floor"`
	Building    string `json:"building,omitempty"`
	Capacity    int    `json:"capacity"`
	Image       string `json:"image,omitempty"`
	Blocked     bool   `json:"blocked"`
	BlockReason string `json:"block_reason,omitempty"`
	BlockedAt   string `json:"blocked_at,omitempty"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Type = string(model.Type)
	r.Floor = model.Floor
	r.Building = model.Building
	r.Capacity = model.Capacity
	r.Image = model.Image
	r.Blocked = model.Blocked
	r.BlockReason = model.BlockReason

	if model.BlockedAt != nil {
		r.BlockedAt = timezone.Format(*model.BlockedAt, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

// RoomStatusResponse is one cell of the front-desk grid: a room plus its
// computed status for the requested date.
type RoomStatusResponse struct {
	RoomID   string `json:"room_id"`
	Number   string `json:"number"`
	Type     string `json:"type"`
	Floor    int    `json:"floor"`
	Building string `json:"building,omitempty"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
}

type GetRoomStatusesResponse struct {
	Date     string               `json:"date"`
	Statuses []RoomStatusResponse `json:"statuses"`
}
