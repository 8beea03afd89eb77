// file: internals/features/timetable/schedule/controller/schedule_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	gridService "academia_backend/internals/features/timetable/grid/service"
	dto "academia_backend/internals/features/timetable/schedule/dto"
	service "academia_backend/internals/features/timetable/schedule/service"
	helper "academia_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type ScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewScheduleController(db *gorm.DB, v *validator.Validate) *ScheduleController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &ScheduleController{DB: db, Validate: v}
}

/* ============================ GET /blocks ============================ */
func (ctl *ScheduleController) GetBlocks(c *fiber.Ctx) error {
	var f service.BlocksFilter

	if raw := c.Query("offering_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.FromAppError(c, helper.E(helper.KindMalformedInput, "offering_id must be a UUID"))
		}
		f.OfferingID = &id
	}
	if raw := c.Query("plan_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.FromAppError(c, helper.E(helper.KindMalformedInput, "plan_id must be a UUID"))
		}
		f.PlanID = &id
	}
	if raw := c.Query("period_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.FromAppError(c, helper.E(helper.KindMalformedInput, "period_id must be a UUID"))
		}
		f.PeriodID = &id
	}
	if raw := c.Query("shift"); raw != "" {
		shift, err := gridService.ParseShift(raw)
		if err != nil {
			return helper.FromAppError(c, err)
		}
		f.Shift = &shift
	}

	rows, err := service.NewScheduleService(ctl.DB).ScheduledBlocks(c.UserContext(), f)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load blocks")
	}
	return helper.Success(c, "OK", rows)
}

/* ============================ GET /occupancy ============================ */
// Busy intervals for one teacher or room; advisory highlight for the UI.
func (ctl *ScheduleController) GetOccupancy(c *fiber.Ctx) error {
	periodID, err := uuid.Parse(c.Query("period_id"))
	if err != nil {
		return helper.FromAppError(c, helper.E(helper.KindMalformedInput, "period_id must be a UUID"))
	}

	var teacherID, roomID *uuid.UUID
	if raw := c.Query("teacher_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.FromAppError(c, helper.E(helper.KindMalformedInput, "teacher_id must be a UUID"))
		}
		teacherID = &id
	}
	if raw := c.Query("room_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.FromAppError(c, helper.E(helper.KindMalformedInput, "room_id must be a UUID"))
		}
		roomID = &id
	}

	busy, err := service.NewScheduleService(ctl.DB).Occupancy(c.UserContext(), teacherID, roomID, periodID)
	if err != nil {
		var ae *helper.AppError
		if errors.As(err, &ae) {
			return helper.FromAppError(c, err)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load occupancy")
	}
	return helper.Success(c, "OK", busy)
}

/* ============================ POST /reconcile ============================ */
// The core mutating call: atomically shapes one section's bindings into the
// submitted desired set.
func (ctl *ScheduleController) PostReconcile(c *fiber.Ctx) error {
	var req dto.ReconcileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.FromAppError(c, helper.E(helper.KindMalformedInput, "invalid JSON payload"))
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	shift, err := gridService.ParseShift(req.Shift)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	desired := make([]service.DesiredKey, 0, len(req.Desired))
	for _, k := range req.Desired {
		desired = append(desired, service.DesiredKey{Weekday: k.Weekday, Start: k.Start})
	}

	res, err := service.NewScheduleService(ctl.DB).Reconcile(c.UserContext(), service.ReconcileInput{
		OfferingID: req.OfferingID,
		PeriodID:   req.PeriodID,
		Label:      req.Label,
		Shift:      shift,
		Desired:    desired,
		RoomID:     req.RoomID,
		TeacherIDs: req.TeacherIDs,
		Strict:     req.Strict,
	})
	if errors.Is(err, service.ErrStrictAborted) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"code":    fiber.StatusConflict,
			"status":  "error",
			"message": "Reconcile aborted: conflicts in strict mode",
			"data":    res,
		})
	}
	if err != nil {
		var ae *helper.AppError
		if errors.As(err, &ae) {
			return helper.FromAppError(c, err)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Reconcile failed")
	}
	return helper.Success(c, "Schedule reconciled", res)
}

/* ============================ POST /parallel ============================ */
func (ctl *ScheduleController) PostOpenParallel(c *fiber.Ctx) error {
	var req dto.OpenParallelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.FromAppError(c, helper.E(helper.KindMalformedInput, "invalid JSON payload"))
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := service.NewScheduleService(ctl.DB).OpenParallel(c.UserContext(), service.OpenParallelInput{
		PlanID:          req.PlanID,
		PeriodID:        req.PeriodID,
		FromLabel:       req.FromLabel,
		ToLabel:         req.ToLabel,
		CopySchedule:    req.CopySchedule,
		KeepInstructors: req.KeepInstructors,
	})
	if err != nil {
		var ae *helper.AppError
		if errors.As(err, &ae) {
			return helper.FromAppError(c, err)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Open parallel failed")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Parallel section opened", res)
}
