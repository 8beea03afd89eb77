// file: internals/features/timetable/grid/model/clock.go
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockMinute is a time of day in minutes since midnight. It marshals as
// "HH:MM" so the frontend never deals with raw minute counts.
type ClockMinute int

func (m ClockMinute) Hour() int   { return int(m) / 60 }
func (m ClockMinute) Minute() int { return int(m) % 60 }

func (m ClockMinute) String() string {
	return fmt.Sprintf("%02d:%02d", m.Hour(), m.Minute())
}

func (m ClockMinute) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

func (m *ClockMinute) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	v, err := ParseClock(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseClock parses "HH:MM" (24h).
func ParseClock(s string) (ClockMinute, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	mi, err := strconv.Atoi(parts[1])
	if err != nil || mi < 0 || mi > 59 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	return ClockMinute(h*60 + mi), nil
}

// MustClock is for package-level grid constants.
func MustClock(s string) ClockMinute {
	v, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return v
}
