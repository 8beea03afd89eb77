// file: internals/features/academics/controller/academics_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "academia_backend/internals/features/academics/model"
	helper "academia_backend/internals/helpers"
)

type AcademicsController struct {
	DB *gorm.DB
}

func NewAcademicsController(db *gorm.DB) *AcademicsController {
	return &AcademicsController{DB: db}
}

/* ============================ GET /rooms ============================ */
func (ctl *AcademicsController) ListRooms(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.RoomModel{})
	if !c.QueryBool("include_inactive") {
		q = q.Where("room_is_active = true")
	}

	var rooms []model.RoomModel
	if err := q.Order("room_name").Find(&rooms).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load rooms")
	}
	return helper.Success(c, "OK", rooms)
}

/* ============================ GET /teachers ============================ */
func (ctl *AcademicsController) ListTeachers(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.TeacherModel{})
	if !c.QueryBool("include_inactive") {
		q = q.Where("teacher_is_active = true")
	}

	var teachers []model.TeacherModel
	if err := q.Order("teacher_full_name").Find(&teachers).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load teachers")
	}
	return helper.Success(c, "OK", teachers)
}
