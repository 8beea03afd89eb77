// file: internals/features/timetable/schedule/service/occupancy.go
package service

import (
	"context"

	"github.com/google/uuid"

	gridModel "academia_backend/internals/features/timetable/grid/model"
	dto "academia_backend/internals/features/timetable/schedule/dto"
	helper "academia_backend/internals/helpers"
)

type busyRow struct {
	Weekday      int                   `gorm:"column:weekday"`
	StartMin     gridModel.ClockMinute `gorm:"column:start_min"`
	EndMin       gridModel.ClockMinute `gorm:"column:end_min"`
	SectionLabel string                `gorm:"column:section_label"`
	SubjectName  string                `gorm:"column:subject_name"`
}

// Occupancy lists the busy intervals of a teacher or room within a period.
// Advisory only: the authoritative check is still the conflict detector at
// write time.
func (s *ScheduleService) Occupancy(ctx context.Context, teacherID, roomID *uuid.UUID, periodID uuid.UUID) ([]dto.BusyInterval, error) {
	if teacherID == nil && roomID == nil {
		return nil, helper.E(helper.KindMalformedInput, "teacher_id or room_id is required")
	}

	q := s.DB.WithContext(ctx).Table("scheduled_blocks").
		Select(`time_slots.time_slot_weekday AS weekday,
			time_slots.time_slot_start_min AS start_min,
			time_slots.time_slot_end_min AS end_min,
			sections.section_label AS section_label,
			course_offerings.course_offering_subject_name AS subject_name`).
		Joins("JOIN sections ON sections.section_id = scheduled_blocks.scheduled_block_section_id").
		Joins("JOIN course_offerings ON course_offerings.course_offering_id = sections.section_offering_id").
		Joins("JOIN time_slots ON time_slots.time_slot_id = scheduled_blocks.scheduled_block_time_slot_id").
		Where("sections.section_period_id = ?", periodID)

	if teacherID != nil {
		q = q.Joins("JOIN scheduled_block_teachers ON scheduled_block_teachers.scheduled_block_teacher_block_id = scheduled_blocks.scheduled_block_id").
			Where("scheduled_block_teachers.scheduled_block_teacher_teacher_id = ?", *teacherID)
	}
	if roomID != nil {
		q = q.Where("scheduled_blocks.scheduled_block_room_id = ?", *roomID)
	}

	var rows []busyRow
	if err := q.Order("weekday, start_min").Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]dto.BusyInterval, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.BusyInterval{
			Weekday:      r.Weekday,
			Start:        r.StartMin,
			End:          r.EndMin,
			SectionLabel: r.SectionLabel,
			SubjectName:  r.SubjectName,
		})
	}
	return out, nil
}
