// file: internals/features/timetable/schedule/model/scheduled_block_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ScheduledBlockModel binds one section to one time slot, with an optional
// room and zero-or-more teachers (join table below). The unique
// (section, time_slot) index is the last line of defense against racing
// reconciliations double-booking the same key.
type ScheduledBlockModel struct {
	// PK
	ScheduledBlockID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:scheduled_block_id" json:"scheduled_block_id"`

	// Binding
	ScheduledBlockSectionID  uuid.UUID `gorm:"type:uuid;not null;column:scheduled_block_section_id;uniqueIndex:uq_scheduled_blocks_key;index:idx_scheduled_blocks_section" json:"scheduled_block_section_id"`
	ScheduledBlockTimeSlotID uuid.UUID `gorm:"type:uuid;not null;column:scheduled_block_time_slot_id;uniqueIndex:uq_scheduled_blocks_key;index:idx_scheduled_blocks_slot" json:"scheduled_block_time_slot_id"`

	// Optional room
	ScheduledBlockRoomID *uuid.UUID `gorm:"type:uuid;column:scheduled_block_room_id;index:idx_scheduled_blocks_room" json:"scheduled_block_room_id,omitempty"`

	// Free-form remarks
	ScheduledBlockNotes string `gorm:"type:text;not null;default:'';column:scheduled_block_notes" json:"scheduled_block_notes"`

	// Timestamps
	ScheduledBlockCreatedAt time.Time `gorm:"column:scheduled_block_created_at;autoCreateTime" json:"scheduled_block_created_at"`
	ScheduledBlockUpdatedAt time.Time `gorm:"column:scheduled_block_updated_at;autoUpdateTime" json:"scheduled_block_updated_at"`
}

func (ScheduledBlockModel) TableName() string { return "scheduled_blocks" }

// ScheduledBlockTeacherModel is the block↔teacher assignment join.
type ScheduledBlockTeacherModel struct {
	ScheduledBlockTeacherID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:scheduled_block_teacher_id" json:"scheduled_block_teacher_id"`
	ScheduledBlockTeacherBlockID   uuid.UUID `gorm:"type:uuid;not null;column:scheduled_block_teacher_block_id;uniqueIndex:uq_scheduled_block_teachers_key;index:idx_sbt_block" json:"scheduled_block_teacher_block_id"`
	ScheduledBlockTeacherTeacherID uuid.UUID `gorm:"type:uuid;not null;column:scheduled_block_teacher_teacher_id;uniqueIndex:uq_scheduled_block_teachers_key;index:idx_sbt_teacher" json:"scheduled_block_teacher_teacher_id"`

	ScheduledBlockTeacherCreatedAt time.Time `gorm:"column:scheduled_block_teacher_created_at;autoCreateTime" json:"scheduled_block_teacher_created_at"`
}

func (ScheduledBlockTeacherModel) TableName() string { return "scheduled_block_teachers" }
