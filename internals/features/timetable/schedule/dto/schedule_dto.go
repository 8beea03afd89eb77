// file: internals/features/timetable/schedule/dto/schedule_dto.go
package dto

import (
	"github.com/google/uuid"

	gridModel "academia_backend/internals/features/timetable/grid/model"
	helper "academia_backend/internals/helpers"
)

/* ===============================
   Requests
=================================*/

// One desired binding key: the block is identified by its start; the end is
// implied by the grid catalog for the shift.
type DesiredKeyItem struct {
	Weekday int                   `json:"weekday" validate:"required,min=1,max=6"`
	Start   gridModel.ClockMinute `json:"start" validate:"required"`
}

// ReconcileRequest is the full desired state of one (offering, period, label,
// shift) combination. Room/teachers apply to every added block.
type ReconcileRequest struct {
	OfferingID uuid.UUID        `json:"offering_id" validate:"required"`
	PeriodID   uuid.UUID        `json:"period_id" validate:"required"`
	Label      string           `json:"label" validate:"omitempty,max=2"`
	Shift      string           `json:"shift" validate:"required"`
	Desired    []DesiredKeyItem `json:"desired" validate:"dive"`
	RoomID     *uuid.UUID       `json:"room_id" validate:"omitempty"`
	TeacherIDs []uuid.UUID      `json:"teacher_ids" validate:"omitempty"`
	Strict     bool             `json:"strict"`
}

type OpenParallelRequest struct {
	PlanID          uuid.UUID `json:"plan_id" validate:"required"`
	PeriodID        uuid.UUID `json:"period_id" validate:"required"`
	FromLabel       string    `json:"from_label" validate:"omitempty,max=2"`
	ToLabel         string    `json:"to_label" validate:"required,max=2"`
	CopySchedule    bool      `json:"copy_schedule"`
	KeepInstructors bool      `json:"keep_instructors"`
}

/* ===============================
   Warnings & responses
=================================*/

// WarningItem reports one skipped binding: its kind plus the entities that
// caused the rejection. Nothing is silently dropped.
type WarningItem struct {
	Kind               helper.ErrorKind       `json:"kind"`
	Weekday            int                    `json:"weekday,omitempty"`
	Start              *gridModel.ClockMinute `json:"start,omitempty"`
	TeacherID          *uuid.UUID             `json:"teacher_id,omitempty"`
	RoomID             *uuid.UUID             `json:"room_id,omitempty"`
	ConflictingBlockID *uuid.UUID             `json:"conflicting_block_id,omitempty"`
	Message            string                 `json:"message"`
}

type ReconcileResponse struct {
	SectionID uuid.UUID     `json:"section_id"`
	Added     int           `json:"added"`
	Removed   int           `json:"removed"`
	Warnings  []WarningItem `json:"warnings"`
}

type CreatedSectionItem struct {
	SectionID  uuid.UUID `json:"section_id"`
	OfferingID uuid.UUID `json:"offering_id"`
	Label      string    `json:"label"`
	Shift      string    `json:"shift"`
}

type OpenParallelResponse struct {
	CreatedSections []CreatedSectionItem `json:"created_sections"`
	CopiedBlocks    int                  `json:"copied_blocks"`
	Warnings        []WarningItem        `json:"warnings"`
}

// ScheduledBlockRow is the read-path shape for grids and reports.
type ScheduledBlockRow struct {
	BlockID      uuid.UUID             `json:"block_id"`
	Weekday      int                   `json:"weekday"`
	Start        gridModel.ClockMinute `json:"start"`
	End          gridModel.ClockMinute `json:"end"`
	SectionLabel string                `json:"section_label"`
	SubjectName  string                `json:"subject_name"`
	RoomID       *uuid.UUID            `json:"room_id,omitempty"`
	RoomName     string                `json:"room_name,omitempty"`
	TeacherNames []string              `json:"teacher_names"`
}

// BusyInterval is one occupied stretch for a teacher or room.
type BusyInterval struct {
	Weekday      int                   `json:"weekday"`
	Start        gridModel.ClockMinute `json:"start"`
	End          gridModel.ClockMinute `json:"end"`
	SectionLabel string                `json:"section_label"`
	SubjectName  string                `json:"subject_name"`
}
