// file: internals/features/timetable/schedule/service/duplicator.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	offeringsModel "academia_backend/internals/features/timetable/offerings/model"
	offeringsService "academia_backend/internals/features/timetable/offerings/service"
	gridService "academia_backend/internals/features/timetable/grid/service"
	dto "academia_backend/internals/features/timetable/schedule/dto"
	model "academia_backend/internals/features/timetable/schedule/model"
	helper "academia_backend/internals/helpers"
)

type OpenParallelInput struct {
	PlanID          uuid.UUID
	PeriodID        uuid.UUID
	FromLabel       string
	ToLabel         string
	CopySchedule    bool
	KeepInstructors bool
}

// OpenParallel clones every section of a plan+period carrying FromLabel into a
// twin with ToLabel. With CopySchedule each block is re-checked by the
// conflict detector; a teacher clash drops the teachers for that one block
// (room/time still copied) instead of aborting, any other clash skips just
// that block and becomes a warning.
func (s *ScheduleService) OpenParallel(ctx context.Context, in OpenParallelInput) (*dto.OpenParallelResponse, error) {
	if in.FromLabel == "" {
		in.FromLabel = "A"
	}
	if in.ToLabel == in.FromLabel {
		return nil, helper.E(helper.KindMalformedInput, "to_label must differ from from_label")
	}

	res := &dto.OpenParallelResponse{
		CreatedSections: []dto.CreatedSectionItem{},
		Warnings:        []dto.WarningItem{},
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		secSvc := offeringsService.NewSectionService(tx)

		per, err := secSvc.GetPeriod(ctx, in.PeriodID)
		if err != nil {
			return err
		}

		var sources []offeringsModel.SectionModel
		err = tx.
			Joins("JOIN course_offerings ON course_offerings.course_offering_id = sections.section_offering_id").
			Where("course_offerings.course_offering_plan_id = ?", in.PlanID).
			Where("sections.section_period_id = ? AND sections.section_label = ?", in.PeriodID, in.FromLabel).
			Order("course_offerings.course_offering_subject_name").
			Find(&sources).Error
		if err != nil {
			return err
		}

		state, err := loadPeriodState(tx, per.PeriodID)
		if err != nil {
			return err
		}
		registry := gridService.NewSlotRegistry(tx)

		for i := range sources {
			src := &sources[i]
			shift := gridService.Shift(src.SectionShift)

			twin, created, err := secSvc.GetOrCreateSection(ctx, src.SectionOfferingID, src.SectionPeriodID, in.ToLabel, shift)
			if err != nil {
				return err
			}
			if created {
				res.CreatedSections = append(res.CreatedSections, dto.CreatedSectionItem{
					SectionID:  twin.SectionID,
					OfferingID: twin.SectionOfferingID,
					Label:      twin.SectionLabel,
					Shift:      twin.SectionShift,
				})
			}

			if !in.CopySchedule {
				continue
			}

			off, err := secSvc.GetOffering(ctx, src.SectionOfferingID)
			if err != nil {
				return err
			}
			quota := off.QuotaForTerm(per.PeriodTerm)

			for j := range state {
				b := state[j]
				if b.SectionID != src.SectionID {
					continue
				}

				teacherIDs := []uuid.UUID(nil)
				if in.KeepInstructors {
					teacherIDs = b.TeacherIDs
				}
				cand := Candidate{
					SectionID:  twin.SectionID,
					Slot:       b.Slot,
					RoomID:     b.RoomID,
					TeacherIDs: teacherIDs,
					IsCreation: true,
					Quota:      quota,
				}

				dec := decideBlockCopy(state, cand, b.BlockID, in.KeepInstructors)
				res.Warnings = append(res.Warnings, dec.Warnings...)
				if dec.Skip {
					continue
				}
				cand.TeacherIDs = dec.TeacherIDs

				slot, err := registry.Resolve(ctx, shift, b.Slot.Weekday, b.Slot.Start, b.Slot.End)
				if err != nil {
					return err
				}
				block := model.ScheduledBlockModel{
					ScheduledBlockSectionID:  twin.SectionID,
					ScheduledBlockTimeSlotID: slot.TimeSlotID,
					ScheduledBlockRoomID:     b.RoomID,
				}
				if err := tx.Create(&block).Error; err != nil {
					return err
				}
				for _, teacherID := range cand.TeacherIDs {
					link := model.ScheduledBlockTeacherModel{
						ScheduledBlockTeacherBlockID:   block.ScheduledBlockID,
						ScheduledBlockTeacherTeacherID: teacherID,
					}
					if err := tx.Create(&link).Error; err != nil {
						return err
					}
				}
				res.CopiedBlocks++

				state = append(state, BlockView{
					BlockID:      block.ScheduledBlockID,
					SectionID:    twin.SectionID,
					SectionLabel: twin.SectionLabel,
					Slot:         b.Slot,
					RoomID:       b.RoomID,
					TeacherIDs:   cand.TeacherIDs,
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
