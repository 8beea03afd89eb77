// file: internals/helpers/apperr.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Error kinds
=================================*/

// ErrorKind is the closed set of engine error causes. Structural kinds abort
// the whole call; business kinds are recoverable per binding (reconcile /
// open-parallel report them as warnings unless strict mode is on).
type ErrorKind string

const (
	KindUnknownShift      ErrorKind = "UnknownShift"
	KindInvalidInterval   ErrorKind = "InvalidInterval"
	KindInvalidBlock      ErrorKind = "InvalidBlock"
	KindDuplicateBinding  ErrorKind = "DuplicateBinding"
	KindInstructorOverlap ErrorKind = "InstructorOverlap"
	KindRoomOverlap       ErrorKind = "RoomOverlap"
	KindQuotaExceeded     ErrorKind = "QuotaExceeded"
	KindMalformedInput    ErrorKind = "MalformedInput"
	KindNotFound          ErrorKind = "NotFound"
)

// Structural reports whether the kind must abort the whole call.
func (k ErrorKind) Structural() bool {
	switch k {
	case KindUnknownShift, KindInvalidInterval, KindMalformedInput, KindNotFound:
		return true
	}
	return false
}

type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string { return string(e.Kind) + ": " + e.Message }

func E(kind ErrorKind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// KindStatus maps an ErrorKind to its HTTP status.
func KindStatus(kind ErrorKind) int {
	switch kind {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindDuplicateBinding, KindInstructorOverlap, KindRoomOverlap, KindQuotaExceeded:
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}

// FromAppError renders an *AppError (or falls back to 500).
func FromAppError(c *fiber.Ctx, err error) error {
	var ae *AppError
	if errors.As(err, &ae) {
		return ErrorWithDetails(c, KindStatus(ae.Kind), ae.Message, fiber.Map{"kind": ae.Kind})
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return Error(c, fe.Code, fe.Message)
	}
	return Error(c, fiber.StatusInternalServerError, "Internal error")
}
