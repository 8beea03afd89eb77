// file: internals/features/timetable/offerings/service/sections.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	gridService "academia_backend/internals/features/timetable/grid/service"
	model "academia_backend/internals/features/timetable/offerings/model"
	helper "academia_backend/internals/helpers"
)

// SectionService owns section lifecycle + quota arithmetic. Block counts are
// always live queries, never cached counters.
type SectionService struct {
	DB *gorm.DB
}

func NewSectionService(db *gorm.DB) *SectionService { return &SectionService{DB: db} }

// GetOffering loads an offering or reports NotFound.
func (s *SectionService) GetOffering(ctx context.Context, offeringID uuid.UUID) (*model.CourseOfferingModel, error) {
	var off model.CourseOfferingModel
	err := s.DB.WithContext(ctx).
		Where("course_offering_id = ?", offeringID).
		First(&off).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.E(helper.KindNotFound, "offering not found")
	}
	if err != nil {
		return nil, err
	}
	return &off, nil
}

// GetPeriod loads a period or reports NotFound.
func (s *SectionService) GetPeriod(ctx context.Context, periodID uuid.UUID) (*model.PeriodModel, error) {
	var p model.PeriodModel
	err := s.DB.WithContext(ctx).
		Where("period_id = ?", periodID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.E(helper.KindNotFound, "period not found")
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetOrCreateSection finds the (offering, period, label) section or creates it
// with the given shift. The unique key makes the get-or-create race-safe. The
// second return reports whether a new row was created.
func (s *SectionService) GetOrCreateSection(ctx context.Context, offeringID, periodID uuid.UUID, label string, shift gridService.Shift) (*model.SectionModel, bool, error) {
	tx := s.DB.WithContext(ctx)
	key := model.SectionModel{
		SectionOfferingID: offeringID,
		SectionPeriodID:   periodID,
		SectionLabel:      label,
	}

	var sec model.SectionModel
	err := tx.Where(&key).First(&sec).Error
	if err == nil {
		return &sec, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	sec = key
	sec.SectionShift = string(shift)
	if err := tx.Create(&sec).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if err2 := tx.Where(&key).First(&sec).Error; err2 == nil {
				return &sec, false, nil
			}
		}
		return nil, false, err
	}
	return &sec, true, nil
}

// CountBlocks is the live number of scheduled blocks bound to a section.
func (s *SectionService) CountBlocks(ctx context.Context, sectionID uuid.UUID) (int, error) {
	var n int64
	err := s.DB.WithContext(ctx).
		Table("scheduled_blocks").
		Where("scheduled_block_section_id = ?", sectionID).
		Count(&n).Error
	return int(n), err
}

// RemainingHours = quota - live block count; nil when the offering has no cap.
func (s *SectionService) RemainingHours(ctx context.Context, sec *model.SectionModel) (*int, error) {
	off, err := s.GetOffering(ctx, sec.SectionOfferingID)
	if err != nil {
		return nil, err
	}
	per, err := s.GetPeriod(ctx, sec.SectionPeriodID)
	if err != nil {
		return nil, err
	}
	quota := off.QuotaForTerm(per.PeriodTerm)
	if quota == nil {
		return nil, nil
	}
	used, err := s.CountBlocks(ctx, sec.SectionID)
	if err != nil {
		return nil, err
	}
	rest := *quota - used
	if rest < 0 {
		rest = 0
	}
	return &rest, nil
}
