// file: internals/features/timetable/schedule/service/state.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	gridModel "academia_backend/internals/features/timetable/grid/model"
	model "academia_backend/internals/features/timetable/schedule/model"
)

type stateRow struct {
	BlockID      uuid.UUID             `gorm:"column:block_id"`
	SectionID    uuid.UUID             `gorm:"column:section_id"`
	SectionLabel string                `gorm:"column:section_label"`
	Weekday      int                   `gorm:"column:weekday"`
	StartMin     gridModel.ClockMinute `gorm:"column:start_min"`
	EndMin       gridModel.ClockMinute `gorm:"column:end_min"`
	RoomID       *uuid.UUID            `gorm:"column:room_id"`
}

// loadPeriodState flattens every scheduled block of a period (all sections)
// with its slot and teacher set. The reconciler runs this inside its
// transaction so the overlap scan sees a consistent snapshot.
func loadPeriodState(tx *gorm.DB, periodID uuid.UUID) ([]BlockView, error) {
	var rows []stateRow
	err := tx.Table("scheduled_blocks").
		Select(`scheduled_blocks.scheduled_block_id AS block_id,
			sections.section_id AS section_id,
			sections.section_label AS section_label,
			time_slots.time_slot_weekday AS weekday,
			time_slots.time_slot_start_min AS start_min,
			time_slots.time_slot_end_min AS end_min,
			scheduled_blocks.scheduled_block_room_id AS room_id`).
		Joins("JOIN sections ON sections.section_id = scheduled_blocks.scheduled_block_section_id").
		Joins("JOIN time_slots ON time_slots.time_slot_id = scheduled_blocks.scheduled_block_time_slot_id").
		Where("sections.section_period_id = ?", periodID).
		Order("time_slots.time_slot_weekday, time_slots.time_slot_start_min").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []BlockView{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.BlockID)
	}
	var links []model.ScheduledBlockTeacherModel
	if err := tx.Where("scheduled_block_teacher_block_id IN ?", ids).Find(&links).Error; err != nil {
		return nil, err
	}
	teachersByBlock := make(map[uuid.UUID][]uuid.UUID, len(links))
	for _, l := range links {
		teachersByBlock[l.ScheduledBlockTeacherBlockID] = append(
			teachersByBlock[l.ScheduledBlockTeacherBlockID], l.ScheduledBlockTeacherTeacherID)
	}

	state := make([]BlockView, 0, len(rows))
	for _, r := range rows {
		state = append(state, BlockView{
			BlockID:      r.BlockID,
			SectionID:    r.SectionID,
			SectionLabel: r.SectionLabel,
			Slot: SlotRef{
				Weekday: r.Weekday,
				Start:   r.StartMin,
				End:     r.EndMin,
			},
			RoomID:     r.RoomID,
			TeacherIDs: teachersByBlock[r.BlockID],
		})
	}
	return state, nil
}

// currentKeys extracts one section's bindings as a key→blockID map.
func currentKeys(state []BlockView, sectionID uuid.UUID) map[DesiredKey]uuid.UUID {
	out := make(map[DesiredKey]uuid.UUID)
	for i := range state {
		b := &state[i]
		if b.SectionID == sectionID {
			out[DesiredKey{Weekday: b.Slot.Weekday, Start: b.Slot.Start}] = b.BlockID
		}
	}
	return out
}
