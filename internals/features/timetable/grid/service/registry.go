// file: internals/features/timetable/grid/service/registry.go
package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	model "academia_backend/internals/features/timetable/grid/model"
	helper "academia_backend/internals/helpers"
)

// SlotRegistry materializes concrete time slots out of grid catalog entries.
// Resolve is idempotent: the unique (shift, weekday, start, end) index makes
// concurrent get-or-creates converge on one row.
type SlotRegistry struct {
	DB *gorm.DB
}

func NewSlotRegistry(db *gorm.DB) *SlotRegistry { return &SlotRegistry{DB: db} }

func (r *SlotRegistry) Resolve(ctx context.Context, shift Shift, weekday int, start, end model.ClockMinute) (*model.TimeSlotModel, error) {
	if start >= end {
		return nil, helper.E(helper.KindInvalidInterval, "slot start must be before end")
	}

	tx := r.DB.WithContext(ctx)
	key := model.TimeSlotModel{
		TimeSlotShift:    string(shift),
		TimeSlotWeekday:  weekday,
		TimeSlotStartMin: start,
		TimeSlotEndMin:   end,
	}

	var slot model.TimeSlotModel
	err := tx.Where(&key).First(&slot).Error
	if err == nil {
		return &slot, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	slot = key
	if err := tx.Create(&slot).Error; err != nil {
		// Lost a race against another request creating the same slot.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if err2 := tx.Where(&key).First(&slot).Error; err2 == nil {
				return &slot, nil
			}
		}
		return nil, err
	}
	return &slot, nil
}

// SlotsForShift lists the slots already materialized for a shift, ordered for
// display.
func (r *SlotRegistry) SlotsForShift(ctx context.Context, shift Shift) ([]model.TimeSlotModel, error) {
	var slots []model.TimeSlotModel
	err := r.DB.WithContext(ctx).
		Where("time_slot_shift = ?", string(shift)).
		Order("time_slot_weekday, time_slot_start_min").
		Find(&slots).Error
	return slots, err
}
