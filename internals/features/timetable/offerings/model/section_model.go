// file: internals/features/timetable/offerings/model/section_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SectionModel is one parallel instance ("A", "B", ...) of an offering inside
// a period. Created lazily on the first scheduling action or explicitly when
// opening a parallel section.
type SectionModel struct {
	// PK
	SectionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:section_id" json:"section_id"`

	// Identity
	SectionOfferingID uuid.UUID `gorm:"type:uuid;not null;column:section_offering_id;uniqueIndex:uq_sections_key;index:idx_sections_offering" json:"section_offering_id"`
	SectionPeriodID   uuid.UUID `gorm:"type:uuid;not null;column:section_period_id;uniqueIndex:uq_sections_key;index:idx_sections_period" json:"section_period_id"`
	SectionLabel      string    `gorm:"size:2;not null;default:'A';column:section_label;uniqueIndex:uq_sections_key" json:"section_label"`

	// Shift the section is taught in
	SectionShift string `gorm:"size:16;not null;column:section_shift" json:"section_shift"`

	// Seats (0 = not tracked)
	SectionCapacity int `gorm:"not null;default:0;column:section_capacity" json:"section_capacity"`

	// Timestamps
	SectionCreatedAt time.Time `gorm:"column:section_created_at;autoCreateTime" json:"section_created_at"`
	SectionUpdatedAt time.Time `gorm:"column:section_updated_at;autoUpdateTime" json:"section_updated_at"`
}

func (SectionModel) TableName() string { return "sections" }
