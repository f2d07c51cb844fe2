package domain

import "fmt"

type DayType string

const (
	DayRest     DayType = "rest"
	DayLight    DayType = "light"
	DayFull     DayType = "full"
	DayOptional DayType = "optional"
)

// ValidDayTypes is the canonical set of accepted day type strings.
var ValidDayTypes = map[string]bool{
	"rest": true, "light": true, "full": true, "optional": true,
}

// ParseDayType converts a raw string into a DayType.
func ParseDayType(s string) (DayType, error) {
	if !ValidDayTypes[s] {
		return "", fmt.Errorf("invalid day type %q (expected rest, light, full or optional)", s)
	}
	return DayType(s), nil
}

// Exercise note markers with special meaning.
const (
	NoteGuidance = "Guidance"
	NoteOptional = "Optional"
)

type ActivityAction string

const (
	ActivityCompleted ActivityAction = "completed"
	ActivityReopened  ActivityAction = "reopened"
	ActivityReset     ActivityAction = "reset"
)
