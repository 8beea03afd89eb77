package service

import (
	"testing"

	"github.com/google/uuid"

	helper "academia_backend/internals/helpers"
)

// Copying a block whose teacher already teaches the same slot on the source
// section drops the teachers, keeps time+room, and reports the gap.
func TestDecideBlockCopy_TeacherClashDropsInstructors(t *testing.T) {
	teacher := uuid.New()
	room := uuid.New()
	srcSection, twinSection := uuid.New(), uuid.New()
	srcBlock := uuid.New()

	state := []BlockView{
		{BlockID: srcBlock, SectionID: srcSection, Slot: mkSlot(1, "08:25", "09:05"),
			RoomID: &room, TeacherIDs: []uuid.UUID{teacher}},
	}
	cand := Candidate{
		SectionID:  twinSection,
		Slot:       mkSlot(1, "08:25", "09:05"),
		RoomID:     &room,
		TeacherIDs: []uuid.UUID{teacher},
		IsCreation: true,
	}

	dec := decideBlockCopy(state, cand, srcBlock, true)
	if dec.Skip {
		t.Fatal("copy skipped, want time+room kept with teachers dropped")
	}
	if len(dec.TeacherIDs) != 0 {
		t.Errorf("teachers = %v, want none after drop", dec.TeacherIDs)
	}
	if len(dec.Warnings) != 1 || dec.Warnings[0].Kind != helper.KindInstructorOverlap {
		t.Fatalf("warnings = %+v, want one InstructorOverlap", dec.Warnings)
	}
}

// A room clash against the source block itself is tolerated; against a third
// block it skips the copy.
func TestDecideBlockCopy_RoomTolerance(t *testing.T) {
	room := uuid.New()
	srcSection, twinSection, otherSection := uuid.New(), uuid.New(), uuid.New()
	srcBlock, otherBlock := uuid.New(), uuid.New()

	base := []BlockView{
		{BlockID: srcBlock, SectionID: srcSection, Slot: mkSlot(2, "07:45", "08:25"), RoomID: &room},
	}
	cand := Candidate{
		SectionID:  twinSection,
		Slot:       mkSlot(2, "07:45", "08:25"),
		RoomID:     &room,
		IsCreation: true,
	}

	dec := decideBlockCopy(base, cand, srcBlock, true)
	if dec.Skip || len(dec.Warnings) != 0 {
		t.Fatalf("skip=%v warnings=%+v, want clean copy sharing the source room", dec.Skip, dec.Warnings)
	}

	third := append(base, BlockView{
		BlockID: otherBlock, SectionID: otherSection, Slot: mkSlot(2, "07:45", "08:25"), RoomID: &room,
	})
	// The source block sits first in state order, so it is the first room hit;
	// the clash with the third block must still surface.
	dec = decideBlockCopy(third, cand, srcBlock, true)
	if !dec.Skip {
		t.Fatal("copy not skipped, want skip on room clash with a third block")
	}
	if len(dec.Warnings) != 1 || dec.Warnings[0].Kind != helper.KindRoomOverlap {
		t.Fatalf("warnings = %+v, want one RoomOverlap", dec.Warnings)
	}
	if dec.Warnings[0].ConflictingBlockID == nil || *dec.Warnings[0].ConflictingBlockID != otherBlock {
		t.Errorf("conflicting block = %v, want %v", dec.Warnings[0].ConflictingBlockID, otherBlock)
	}
}

func TestDecideBlockCopy_CleanCopy(t *testing.T) {
	teacher := uuid.New()
	srcSection, twinSection := uuid.New(), uuid.New()
	srcBlock := uuid.New()

	state := []BlockView{
		{BlockID: srcBlock, SectionID: srcSection, Slot: mkSlot(3, "10:45", "11:25"), TeacherIDs: []uuid.UUID{teacher}},
	}
	// Twin lands on a different slot: nothing clashes, teachers survive.
	cand := Candidate{
		SectionID:  twinSection,
		Slot:       mkSlot(4, "10:45", "11:25"),
		TeacherIDs: []uuid.UUID{teacher},
		IsCreation: true,
	}
	dec := decideBlockCopy(state, cand, srcBlock, true)
	if dec.Skip || len(dec.Warnings) != 0 || len(dec.TeacherIDs) != 1 {
		t.Fatalf("dec = %+v, want clean copy keeping the teacher", dec)
	}
}
