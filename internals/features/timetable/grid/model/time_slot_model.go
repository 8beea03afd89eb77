// file: internals/features/timetable/grid/model/time_slot_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// TimeSlotModel is a concrete (shift, weekday, start, end) interval. Rows are
// get-or-created from the grid catalog the first time a block is scheduled and
// never deleted once referenced. Break intervals never materialize here.
type TimeSlotModel struct {
	// PK
	TimeSlotID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:time_slot_id" json:"time_slot_id"`

	// Identity (logical key)
	TimeSlotShift    string      `gorm:"size:16;not null;column:time_slot_shift;uniqueIndex:uq_time_slots_key" json:"time_slot_shift"`
	TimeSlotWeekday  int         `gorm:"not null;column:time_slot_weekday;uniqueIndex:uq_time_slots_key" json:"time_slot_weekday"`
	TimeSlotStartMin ClockMinute `gorm:"not null;column:time_slot_start_min;uniqueIndex:uq_time_slots_key" json:"time_slot_start"`
	TimeSlotEndMin   ClockMinute `gorm:"not null;column:time_slot_end_min;uniqueIndex:uq_time_slots_key" json:"time_slot_end"`

	// Timestamps
	TimeSlotCreatedAt time.Time `gorm:"column:time_slot_created_at;autoCreateTime" json:"time_slot_created_at"`
}

func (TimeSlotModel) TableName() string { return "time_slots" }
