// file: internals/features/timetable/schedule/service/conflict_detector.go
package service

import (
	"fmt"

	"github.com/google/uuid"

	gridModel "academia_backend/internals/features/timetable/grid/model"
	helper "academia_backend/internals/helpers"
)

/* ===============================
   Pure conflict detection
=================================*/

// SlotRef is the time identity of a block: a half-open [start, end) interval
// on one weekday.
type SlotRef struct {
	Weekday int
	Start   gridModel.ClockMinute
	End     gridModel.ClockMinute
	IsBreak bool
}

// BlockView is a persisted scheduled block flattened for in-memory checks.
type BlockView struct {
	BlockID      uuid.UUID
	SectionID    uuid.UUID
	SectionLabel string
	Slot         SlotRef
	RoomID       *uuid.UUID
	TeacherIDs   []uuid.UUID
}

// Candidate is one binding to validate against the period's persisted state.
type Candidate struct {
	SectionID  uuid.UUID
	Slot       SlotRef
	RoomID     *uuid.UUID
	TeacherIDs []uuid.UUID
	IsCreation bool
	Quota      *int // nil = unbounded; checked on creation only
}

// Conflict is a single-cause rejection. Kind ordering is deterministic:
// structural checks (break, duplicate) run before resource overlaps, quota
// runs last.
type Conflict struct {
	Kind               helper.ErrorKind
	TeacherID          *uuid.UUID
	RoomID             *uuid.UUID
	ConflictingBlockID *uuid.UUID
	Message            string
}

// Overlaps is the half-open interval test: back-to-back blocks sharing a
// boundary do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd gridModel.ClockMinute) bool {
	return aStart < bEnd && bStart < aEnd
}

// CheckBinding decides whether the candidate may be persisted given the
// period's current blocks. Stateless: callers own loading and accumulation.
func CheckBinding(state []BlockView, cand Candidate) *Conflict {
	// 1) break slots are never schedulable
	if cand.Slot.IsBreak {
		return &Conflict{
			Kind:    helper.KindInvalidBlock,
			Message: fmt.Sprintf("slot %s-%s is a break", cand.Slot.Start, cand.Slot.End),
		}
	}

	// 2) duplicate (section, slot) binding
	for i := range state {
		b := &state[i]
		if b.SectionID == cand.SectionID &&
			b.Slot.Weekday == cand.Slot.Weekday &&
			b.Slot.Start == cand.Slot.Start {
			id := b.BlockID
			return &Conflict{
				Kind:               helper.KindDuplicateBinding,
				ConflictingBlockID: &id,
				Message:            fmt.Sprintf("section already bound at weekday %d %s", cand.Slot.Weekday, cand.Slot.Start),
			}
		}
	}

	// 3) teacher overlap, same period, same weekday
	for _, teacherID := range cand.TeacherIDs {
		for i := range state {
			b := &state[i]
			if b.Slot.Weekday != cand.Slot.Weekday {
				continue
			}
			if !Overlaps(cand.Slot.Start, cand.Slot.End, b.Slot.Start, b.Slot.End) {
				continue
			}
			for _, t := range b.TeacherIDs {
				if t == teacherID {
					tid, bid := teacherID, b.BlockID
					return &Conflict{
						Kind:               helper.KindInstructorOverlap,
						TeacherID:          &tid,
						ConflictingBlockID: &bid,
						Message:            fmt.Sprintf("teacher already busy at weekday %d %s-%s", b.Slot.Weekday, b.Slot.Start, b.Slot.End),
					}
				}
			}
		}
	}

	// 4) room overlap
	if cand.RoomID != nil {
		for i := range state {
			b := &state[i]
			if b.RoomID == nil || *b.RoomID != *cand.RoomID {
				continue
			}
			if b.Slot.Weekday != cand.Slot.Weekday {
				continue
			}
			if Overlaps(cand.Slot.Start, cand.Slot.End, b.Slot.Start, b.Slot.End) {
				rid, bid := *cand.RoomID, b.BlockID
				return &Conflict{
					Kind:               helper.KindRoomOverlap,
					RoomID:             &rid,
					ConflictingBlockID: &bid,
					Message:            fmt.Sprintf("room occupied at weekday %d %s-%s", b.Slot.Weekday, b.Slot.Start, b.Slot.End),
				}
			}
		}
	}

	// 5) weekly quota, creation only (edits never retro-validate totals)
	if cand.IsCreation && cand.Quota != nil {
		used := 0
		for i := range state {
			if state[i].SectionID == cand.SectionID {
				used++
			}
		}
		if used >= *cand.Quota {
			return &Conflict{
				Kind:    helper.KindQuotaExceeded,
				Message: fmt.Sprintf("weekly quota of %d catedra hours reached", *cand.Quota),
			}
		}
	}

	return nil
}
