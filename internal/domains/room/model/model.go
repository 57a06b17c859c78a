package model

import (
	"frontdesk/shared/model"
	"time"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldNumber      = "number"
	FieldType        = "type"
	FieldFloor       = "floor"
	FieldBuilding    = "building"
	FieldCapacity    = "capacity"
	FieldImage       = "image"
	FieldBlocked     = "blocked"
	FieldBlockReason = "block_reason"
	FieldBlockedAt   = "blocked_at"
)

// RoomType is the closed set of room categories. Each category carries a
// default capacity used when a room is created without an explicit one.
type RoomType string

const (
	TypeSingle         RoomType = "single"
	TypeSingleImproved RoomType = "single_improved"
	TypeDouble         RoomType = "double"
	TypeDoubleImproved RoomType = "double_improved"
	TypeLuxury         RoomType = "luxury"
	TypeLuxuryDouble   RoomType = "luxury_double"
	TypeFamily         RoomType = "family"
	TypeFamilyImproved RoomType = "family_improved"
)

func (t RoomType) Valid() bool {
	switch t {
	case TypeSingle, TypeSingleImproved, TypeDouble, TypeDoubleImproved,
		TypeLuxury, TypeLuxuryDouble, TypeFamily, TypeFamilyImproved:
		return true
	}

	return false
}

func (t RoomType) DefaultCapacity() int {
	switch t {
	case TypeSingle, TypeSingleImproved:
		return 1
	case TypeDouble, TypeDoubleImproved, TypeLuxury, TypeLuxuryDouble:
		return 2
	case TypeFamily:
		return 3
	case TypeFamilyImproved:
		return 4
	}

	return 1
}

// Status is the computed occupancy state of a room on a given date.
// It is derived, never stored.
type Status string

const (
	StatusFree     Status = "free"
	StatusBooked   Status = "booked"
	StatusOccupied Status = "occupied"
	StatusBlocked  Status = "blocked"
)

type Room struct {
	ID          string     `db:"id"`
	Number      string     `db:"number"`
	Type        RoomType   `db:"type"`
	Floor       int        `db:"floor"`
	Building    string     `db:"building"`
	Capacity    int        `db:"capacity"`
	Image       string     `db:"image"`
	Blocked     bool       `db:"blocked"`
	BlockReason string     `db:"block_reason"`
	BlockedAt   *time.Time `db:"blocked_at"`
	model.Metadata
}
