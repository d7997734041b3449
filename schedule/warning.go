package schedule

import (
	"fmt"

	"roamio/models"
)

type WarningType string

const (
	WarningError    WarningType = "error"
	WarningAdvisory WarningType = "warning"
)

// Warning is the user-facing classification of one item's conflicts.
type Warning struct {
	Type    WarningType `json:"type"`
	Message string      `json:"message"`
}

// WarningFor maps an item plus the full item collection to a single
// warning. An overlap anywhere wins as a hard error; otherwise no-gap
// outranks insufficient-gap, which reports the tightest gap. Returns nil
// when the item has no conflicts.
func WarningFor(item models.ScheduledItem, all []models.ScheduledItem) *Warning {
	var hasNoGap bool
	minGap := -1

	for _, c := range DetectConflicts(all) {
		if c.First.ItemID != item.ItemID && c.Second.ItemID != item.ItemID {
			continue
		}
		switch c.Type {
		case ConflictOverlap:
			return &Warning{Type: WarningError, Message: "Time overlap!"}
		case ConflictNoGap:
			hasNoGap = true
		case ConflictInsufficientGap:
			if minGap < 0 || c.GapMinutes < minGap {
				minGap = c.GapMinutes
			}
		}
	}

	if hasNoGap {
		return &Warning{Type: WarningAdvisory, Message: "No travel time"}
	}
	if minGap >= 0 {
		return &Warning{Type: WarningAdvisory, Message: fmt.Sprintf("Only %dmin gap", minGap)}
	}
	return nil
}
