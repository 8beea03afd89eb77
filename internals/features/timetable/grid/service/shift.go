// file: internals/features/timetable/grid/service/shift.go
package service

import (
	"strings"

	helper "academia_backend/internals/helpers"
)

// Shift is the closed set of institutional shifts. Input is canonicalized once
// at the boundary via ParseShift; everything past that point works with these
// values only.
type Shift string

const (
	ShiftManana     Shift = "manana"
	ShiftTarde      Shift = "tarde"
	ShiftVespertino Shift = "vespertino"
	ShiftSabado     Shift = "sabado"
)

var accentFolder = strings.NewReplacer(
	"ñ", "n", "á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
)

// ParseShift canonicalizes a raw shift string: trim, lowercase, fold accents,
// accept the legacy one-letter aliases. Anything else is UnknownShift.
func ParseShift(raw string) (Shift, error) {
	s := accentFolder.Replace(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case "manana", "m":
		return ShiftManana, nil
	case "tarde", "t":
		return ShiftTarde, nil
	case "vespertino", "v":
		return ShiftVespertino, nil
	case "sabado", "s":
		return ShiftSabado, nil
	}
	return "", helper.E(helper.KindUnknownShift, "unknown shift: "+raw)
}

// Weekdays returns the ISO weekday numbers the shift runs on
// (1=Monday .. 6=Saturday). Weekday shifts cover Mon-Fri; sabado is
// Saturday only, with its own break windows.
func (s Shift) Weekdays() []int {
	if s == ShiftSabado {
		return []int{6}
	}
	return []int{1, 2, 3, 4, 5}
}

func (s Shift) String() string { return string(s) }
