// file: internals/features/timetable/offerings/controller/offerings_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "academia_backend/internals/features/timetable/offerings/dto"
	model "academia_backend/internals/features/timetable/offerings/model"
	service "academia_backend/internals/features/timetable/offerings/service"
	helper "academia_backend/internals/helpers"
)

type OfferingsController struct {
	DB *gorm.DB
}

func NewOfferingsController(db *gorm.DB) *OfferingsController {
	return &OfferingsController{DB: db}
}

/* ============================ GET /periods ============================ */
func (ctl *OfferingsController) ListPeriods(c *fiber.Ctx) error {
	var periods []model.PeriodModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("period_year desc, period_term").
		Find(&periods).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load periods")
	}
	return helper.Success(c, "OK", periods)
}

/* ============================ GET /offerings ============================ */
// Combo feed for the grid screen: offerings of one plan (optionally one year).
func (ctl *OfferingsController) ListOfferings(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.CourseOfferingModel{})

	if raw := c.Query("plan_id"); raw != "" {
		planID, err := uuid.Parse(raw)
		if err != nil {
			return helper.FromAppError(c, helper.E(helper.KindMalformedInput, "plan_id must be a UUID"))
		}
		q = q.Where("course_offering_plan_id = ?", planID)
	}
	if year := c.QueryInt("year"); year > 0 {
		q = q.Where("course_offering_target_year = ?", year)
	}

	p := helper.ParseFiber(c, "subject", "asc", helper.DefaultOpts)
	order, err := p.SafeOrderClause(map[string]string{
		"subject": "course_offering_subject_name",
		"year":    "course_offering_target_year",
	}, "subject")
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to sort offerings")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count offerings")
	}

	var offerings []model.CourseOfferingModel
	if err := q.Order("course_offering_target_year").Order(order).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&offerings).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load offerings")
	}
	return helper.Success(c, "OK", fiber.Map{
		"items":      offerings,
		"pagination": helper.BuildMeta(total, p),
	})
}

/* ============================ GET /sections ============================ */
// Sections of one offering+period with live assigned/remaining hours.
func (ctl *OfferingsController) ListSections(c *fiber.Ctx) error {
	offeringID, err := uuid.Parse(c.Query("offering_id"))
	if err != nil {
		return helper.FromAppError(c, helper.E(helper.KindMalformedInput, "offering_id must be a UUID"))
	}
	periodID, err := uuid.Parse(c.Query("period_id"))
	if err != nil {
		return helper.FromAppError(c, helper.E(helper.KindMalformedInput, "period_id must be a UUID"))
	}

	ctx := c.UserContext()
	svc := service.NewSectionService(ctl.DB)

	off, err := svc.GetOffering(ctx, offeringID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	per, err := svc.GetPeriod(ctx, periodID)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var sections []model.SectionModel
	if err := ctl.DB.WithContext(ctx).
		Where("section_offering_id = ? AND section_period_id = ?", offeringID, periodID).
		Order("section_label").
		Find(&sections).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load sections")
	}

	quota := off.QuotaForTerm(per.PeriodTerm)
	items := make([]dto.SectionItem, 0, len(sections))
	for i := range sections {
		sec := &sections[i]
		assigned, err := svc.CountBlocks(ctx, sec.SectionID)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to count blocks")
		}
		var remaining *int
		if quota != nil {
			r := *quota - assigned
			if r < 0 {
				r = 0
			}
			remaining = &r
		}
		items = append(items, dto.NewSectionItem(sec, off, assigned, quota, remaining))
	}
	return helper.Success(c, "OK", items)
}

/* ============================ GET /sections/:id ============================ */
func (ctl *OfferingsController) GetSection(c *fiber.Ctx) error {
	sectionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.FromAppError(c, helper.E(helper.KindMalformedInput, "section id must be a UUID"))
	}

	ctx := c.UserContext()
	var sec model.SectionModel
	if err := ctl.DB.WithContext(ctx).
		Where("section_id = ?", sectionID).
		First(&sec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.FromAppError(c, helper.E(helper.KindNotFound, "section not found"))
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load section")
	}

	svc := service.NewSectionService(ctl.DB)
	off, err := svc.GetOffering(ctx, sec.SectionOfferingID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	per, err := svc.GetPeriod(ctx, sec.SectionPeriodID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	assigned, err := svc.CountBlocks(ctx, sec.SectionID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count blocks")
	}
	quota := off.QuotaForTerm(per.PeriodTerm)
	var remaining *int
	if quota != nil {
		r := *quota - assigned
		if r < 0 {
			r = 0
		}
		remaining = &r
	}
	item := dto.NewSectionItem(&sec, off, assigned, quota, remaining)
	return helper.Success(c, "OK", item)
}
