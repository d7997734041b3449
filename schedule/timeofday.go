package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
// Trip days never cross midnight, so plain integer arithmetic is enough
// and the half-open overlap test stays exact.
type TimeOfDay int

// ParseTimeOfDay parses "HH:mm" or "HH:mm:ss" (seconds ignored).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return TimeOfDay(hour*60 + minute), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// GapMinutes returns startB - endA in minutes: negative when B starts
// before A ends (overlap), zero when back to back, positive otherwise.
func GapMinutes(endA, startB TimeOfDay) int {
	return int(startB) - int(endA)
}

// ValidTimeRange reports whether start and end are both well-formed and
// strictly ordered. Handlers call this at the data-entry boundary so the
// pure scheduling functions only ever see parseable times.
func ValidTimeRange(start, end string) bool {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return false
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return false
	}
	return s < e
}
