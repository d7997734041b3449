package schedule

import "roamio/models"

// AvailableTimeSlot annotates a declared slot with whether it can be
// booked on a given day, and with the already-scheduled items blocking it
// when it cannot. Recomputed on every request, never persisted.
type AvailableTimeSlot struct {
	models.TimeSlot
	IsAvailable   bool                   `json:"is_available"`
	ConflictsWith []models.ScheduledItem `json:"conflicts_with,omitempty"`
}

// ResolveSlots filters an experience's candidate slots against the items
// already scheduled on the target day. excludeItemID names the item being
// rescheduled so it never blocks its own slot; pass "" when placing a new
// item. Intervals are half-open, so a slot starting exactly when an item
// ends does not collide.
func ResolveSlots(candidates []models.TimeSlot, dayItems []models.ScheduledItem, excludeItemID string) []AvailableTimeSlot {
	resolved := make([]AvailableTimeSlot, 0, len(candidates))

	for _, slot := range candidates {
		slotStart, err := ParseTimeOfDay(slot.StartTime)
		if err != nil {
			continue
		}
		slotEnd, err := ParseTimeOfDay(slot.EndTime)
		if err != nil {
			continue
		}

		var blocking []models.ScheduledItem
		for _, it := range dayItems {
			if excludeItemID != "" && it.ItemID == excludeItemID {
				continue
			}
			itemStart, err := ParseTimeOfDay(it.StartTime)
			if err != nil {
				continue
			}
			itemEnd, err := ParseTimeOfDay(it.EndTime)
			if err != nil {
				continue
			}
			if slotStart < itemEnd && itemStart < slotEnd {
				blocking = append(blocking, it)
			}
		}

		resolved = append(resolved, AvailableTimeSlot{
			TimeSlot:      slot,
			IsAvailable:   len(blocking) == 0,
			ConflictsWith: blocking,
		})
	}
	return resolved
}
