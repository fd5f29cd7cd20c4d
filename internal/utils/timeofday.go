package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a validated time expressed as minutes since midnight.
type TimeOfDay int

// ParseTimeOfDay parses "H:MM" or "HH:MM" 24-hour strings. Unlike the
// historical client-side parser it refuses malformed input instead of
// coercing components to zero.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: bad hour", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: bad minute", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return TimeOfDay(h*60 + m), nil
}

func (t TimeOfDay) Minutes() int {
	return int(t)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// LenientMinutes converts a stored time string to minutes since midnight,
// counting unparseable components as zero. Stored rows predate server-side
// validation, so reading them must never fail.
func LenientMinutes(s string) int {
	parts := strings.Split(s, ":")
	h := atoiOrZero(parts[0])
	m := 0
	if len(parts) > 1 {
		m = atoiOrZero(parts[1])
	}
	return h*60 + m
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
