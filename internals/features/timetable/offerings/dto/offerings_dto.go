// file: internals/features/timetable/offerings/dto/offerings_dto.go
package dto

import (
	"github.com/google/uuid"

	model "academia_backend/internals/features/timetable/offerings/model"
)

/* ===============================
   Responses
=================================*/

type SectionItem struct {
	SectionID      uuid.UUID `json:"section_id"`
	OfferingID     uuid.UUID `json:"offering_id"`
	SubjectName    string    `json:"subject_name"`
	PeriodID       uuid.UUID `json:"period_id"`
	Shift          string    `json:"shift"`
	Label          string    `json:"label"`
	AssignedHours  int       `json:"assigned_hours"`
	QuotaHours     *int      `json:"quota_hours,omitempty"`     // nil = unbounded
	RemainingHours *int      `json:"remaining_hours,omitempty"` // nil = unbounded
}

func NewSectionItem(sec *model.SectionModel, off *model.CourseOfferingModel, assigned int, quota, remaining *int) SectionItem {
	return SectionItem{
		SectionID:      sec.SectionID,
		OfferingID:     sec.SectionOfferingID,
		SubjectName:    off.CourseOfferingSubjectName,
		PeriodID:       sec.SectionPeriodID,
		Shift:          sec.SectionShift,
		Label:          sec.SectionLabel,
		AssignedHours:  assigned,
		QuotaHours:     quota,
		RemainingHours: remaining,
	}
}
