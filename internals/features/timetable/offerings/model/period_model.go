// file: internals/features/timetable/offerings/model/period_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// PeriodModel is one academic cycle: (year, term). Immutable once a section
// references it.
type PeriodModel struct {
	// PK
	PeriodID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:period_id" json:"period_id"`

	// Identity
	PeriodYear int `gorm:"not null;column:period_year;uniqueIndex:uq_periods_year_term" json:"period_year"`
	PeriodTerm int `gorm:"not null;column:period_term;uniqueIndex:uq_periods_year_term" json:"period_term"` // 1 or 2

	// Timestamps
	PeriodCreatedAt time.Time `gorm:"column:period_created_at;autoCreateTime" json:"period_created_at"`
}

func (PeriodModel) TableName() string { return "periods" }
