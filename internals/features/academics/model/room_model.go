// file: internals/features/academics/model/room_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/datatypes"
)

// RoomModel is a physical aula. The engine only needs identity and a name for
// occupancy display; features is free-form (projector, lab benches, ...).
type RoomModel struct {
	// PK
	RoomID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:room_id" json:"room_id"`

	// Identity
	RoomName     string `gorm:"size:64;not null;column:room_name;uniqueIndex:uq_rooms_name" json:"room_name"`
	RoomLocation string `gorm:"size:160;not null;default:'';column:room_location" json:"room_location"`

	// Seats (0 = not tracked)
	RoomCapacity int `gorm:"not null;default:0;column:room_capacity" json:"room_capacity"`

	// Free-form features
	RoomFeatures datatypes.JSON `gorm:"column:room_features;type:jsonb" json:"room_features,omitempty"`

	// Status
	RoomIsActive bool `gorm:"not null;default:true;column:room_is_active;index:idx_rooms_active" json:"room_is_active"`

	// Timestamps (soft delete)
	RoomCreatedAt time.Time      `gorm:"column:room_created_at;autoCreateTime" json:"room_created_at"`
	RoomUpdatedAt time.Time      `gorm:"column:room_updated_at;autoUpdateTime" json:"room_updated_at"`
	RoomDeletedAt gorm.DeletedAt `gorm:"column:room_deleted_at;index" json:"room_deleted_at,omitempty"`
}

func (RoomModel) TableName() string { return "rooms" }
