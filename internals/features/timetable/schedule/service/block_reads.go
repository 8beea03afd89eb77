// file: internals/features/timetable/schedule/service/block_reads.go
package service

import (
	"context"

	"github.com/google/uuid"

	gridModel "academia_backend/internals/features/timetable/grid/model"
	gridService "academia_backend/internals/features/timetable/grid/service"
	scheduleModel "academia_backend/internals/features/timetable/schedule/model"
	dto "academia_backend/internals/features/timetable/schedule/dto"
)

type blockReadRow struct {
	BlockID      uuid.UUID             `gorm:"column:block_id"`
	Weekday      int                   `gorm:"column:weekday"`
	StartMin     gridModel.ClockMinute `gorm:"column:start_min"`
	EndMin       gridModel.ClockMinute `gorm:"column:end_min"`
	SectionLabel string                `gorm:"column:section_label"`
	SubjectName  string                `gorm:"column:subject_name"`
	RoomID       *uuid.UUID            `gorm:"column:room_id"`
	RoomName     *string               `gorm:"column:room_name"`
}

type BlocksFilter struct {
	OfferingID *uuid.UUID
	PlanID     *uuid.UUID
	PeriodID   *uuid.UUID
	Shift      *gridService.Shift
}

// ScheduledBlocks is the grid/report read path: flattened block rows with
// room and teacher names, filterable by offering, plan, period and shift.
func (s *ScheduleService) ScheduledBlocks(ctx context.Context, f BlocksFilter) ([]dto.ScheduledBlockRow, error) {
	q := s.DB.WithContext(ctx).Table("scheduled_blocks").
		Select(`scheduled_blocks.scheduled_block_id AS block_id,
			time_slots.time_slot_weekday AS weekday,
			time_slots.time_slot_start_min AS start_min,
			time_slots.time_slot_end_min AS end_min,
			sections.section_label AS section_label,
			course_offerings.course_offering_subject_name AS subject_name,
			scheduled_blocks.scheduled_block_room_id AS room_id,
			rooms.room_name AS room_name`).
		Joins("JOIN sections ON sections.section_id = scheduled_blocks.scheduled_block_section_id").
		Joins("JOIN course_offerings ON course_offerings.course_offering_id = sections.section_offering_id").
		Joins("JOIN time_slots ON time_slots.time_slot_id = scheduled_blocks.scheduled_block_time_slot_id").
		Joins("LEFT JOIN rooms ON rooms.room_id = scheduled_blocks.scheduled_block_room_id")

	if f.OfferingID != nil {
		q = q.Where("sections.section_offering_id = ?", *f.OfferingID)
	}
	if f.PlanID != nil {
		q = q.Where("course_offerings.course_offering_plan_id = ?", *f.PlanID)
	}
	if f.PeriodID != nil {
		q = q.Where("sections.section_period_id = ?", *f.PeriodID)
	}
	if f.Shift != nil {
		q = q.Where("sections.section_shift = ?", string(*f.Shift))
	}

	var rows []blockReadRow
	if err := q.Order("weekday, start_min, section_label").Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []dto.ScheduledBlockRow{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.BlockID)
	}
	type teacherNameRow struct {
		BlockID     uuid.UUID `gorm:"column:block_id"`
		TeacherName string    `gorm:"column:teacher_name"`
	}
	var names []teacherNameRow
	err := s.DB.WithContext(ctx).
		Model(&scheduleModel.ScheduledBlockTeacherModel{}).
		Select(`scheduled_block_teachers.scheduled_block_teacher_block_id AS block_id,
			teachers.teacher_full_name AS teacher_name`).
		Joins("JOIN teachers ON teachers.teacher_id = scheduled_block_teachers.scheduled_block_teacher_teacher_id").
		Where("scheduled_block_teachers.scheduled_block_teacher_block_id IN ?", ids).
		Order("teachers.teacher_full_name").
		Scan(&names).Error
	if err != nil {
		return nil, err
	}
	namesByBlock := make(map[uuid.UUID][]string, len(names))
	for _, n := range names {
		namesByBlock[n.BlockID] = append(namesByBlock[n.BlockID], n.TeacherName)
	}

	out := make([]dto.ScheduledBlockRow, 0, len(rows))
	for _, r := range rows {
		item := dto.ScheduledBlockRow{
			BlockID:      r.BlockID,
			Weekday:      r.Weekday,
			Start:        r.StartMin,
			End:          r.EndMin,
			SectionLabel: r.SectionLabel,
			SubjectName:  r.SubjectName,
			RoomID:       r.RoomID,
			TeacherNames: namesByBlock[r.BlockID],
		}
		if item.TeacherNames == nil {
			item.TeacherNames = []string{}
		}
		if r.RoomName != nil {
			item.RoomName = *r.RoomName
		}
		out = append(out, item)
	}
	return out, nil
}
