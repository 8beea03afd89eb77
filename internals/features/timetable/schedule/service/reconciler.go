// file: internals/features/timetable/schedule/service/reconciler.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	gridService "academia_backend/internals/features/timetable/grid/service"
	offeringsService "academia_backend/internals/features/timetable/offerings/service"
	dto "academia_backend/internals/features/timetable/schedule/dto"
	model "academia_backend/internals/features/timetable/schedule/model"
	helper "academia_backend/internals/helpers"
)

// ErrStrictAborted marks a strict-mode reconcile that hit a conflict; the
// transaction was rolled back and the result carries the warnings.
var ErrStrictAborted = errors.New("reconcile aborted: conflict in strict mode")

type ScheduleService struct {
	DB *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService { return &ScheduleService{DB: db} }

type ReconcileInput struct {
	OfferingID uuid.UUID
	PeriodID   uuid.UUID
	Label      string
	Shift      gridService.Shift
	Desired    []DesiredKey
	RoomID     *uuid.UUID
	TeacherIDs []uuid.UUID
	Strict     bool
}

// Reconcile transforms the section's persisted bindings into the desired set
// inside one transaction. Per-binding business conflicts become warnings and
// the rest of the change-set still applies; strict mode turns the first
// conflict into a full rollback. Calling it twice with the same desired set
// yields added=0, removed=0 the second time.
func (s *ScheduleService) Reconcile(ctx context.Context, in ReconcileInput) (*dto.ReconcileResponse, error) {
	if in.Label == "" {
		in.Label = "A"
	}

	res := &dto.ReconcileResponse{Warnings: []dto.WarningItem{}}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		secSvc := offeringsService.NewSectionService(tx)

		off, err := secSvc.GetOffering(ctx, in.OfferingID)
		if err != nil {
			return err
		}
		per, err := secSvc.GetPeriod(ctx, in.PeriodID)
		if err != nil {
			return err
		}
		sec, _, err := secSvc.GetOrCreateSection(ctx, in.OfferingID, in.PeriodID, in.Label, in.Shift)
		if err != nil {
			return err
		}
		res.SectionID = sec.SectionID

		state, err := loadPeriodState(tx, per.PeriodID)
		if err != nil {
			return err
		}

		quota := off.QuotaForTerm(per.PeriodTerm)
		plan := BuildReconcilePlan(in.Shift, sec.SectionID, quota, state,
			currentKeys(state, sec.SectionID), in.Desired, in.RoomID, in.TeacherIDs)
		res.Warnings = plan.Warnings

		if in.Strict && len(res.Warnings) > 0 {
			return ErrStrictAborted
		}

		registry := gridService.NewSlotRegistry(tx)
		for _, add := range plan.Adds {
			slot, err := registry.Resolve(ctx, in.Shift, add.Block.Weekday, add.Block.Start, add.Block.End)
			if err != nil {
				return err
			}

			block := model.ScheduledBlockModel{
				ScheduledBlockSectionID:  sec.SectionID,
				ScheduledBlockTimeSlotID: slot.TimeSlotID,
				ScheduledBlockRoomID:     add.RoomID,
			}
			if err := tx.Create(&block).Error; err != nil {
				// A racing reconcile created this key first; surface it as the
				// same structural conflict a sequential run would have seen.
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == "23505" {
					start := add.Key.Start
					res.Warnings = append(res.Warnings, dto.WarningItem{
						Kind:    helper.KindDuplicateBinding,
						Weekday: add.Key.Weekday,
						Start:   &start,
						Message: "binding already created by a concurrent request",
					})
					if in.Strict {
						return ErrStrictAborted
					}
					continue
				}
				return err
			}

			for _, teacherID := range add.TeacherIDs {
				link := model.ScheduledBlockTeacherModel{
					ScheduledBlockTeacherBlockID:   block.ScheduledBlockID,
					ScheduledBlockTeacherTeacherID: teacherID,
				}
				if err := tx.Create(&link).Error; err != nil {
					return err
				}
			}
			res.Added++
		}

		if len(plan.RemoveIDs) > 0 {
			if err := tx.Where("scheduled_block_teacher_block_id IN ?", plan.RemoveIDs).
				Delete(&model.ScheduledBlockTeacherModel{}).Error; err != nil {
				return err
			}
			del := tx.Where("scheduled_block_id IN ?", plan.RemoveIDs).
				Delete(&model.ScheduledBlockModel{})
			if del.Error != nil {
				return del.Error
			}
			res.Removed = int(del.RowsAffected)
		}

		return nil
	})

	if errors.Is(err, ErrStrictAborted) {
		res.Added, res.Removed = 0, 0
		return res, ErrStrictAborted
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}
