package schedule

import (
	"reflect"
	"testing"

	"roamio/models"
)

func slot(id, start, end string) models.TimeSlot {
	return models.TimeSlot{SlotID: id, StartTime: start, EndTime: end}
}

func TestResolveSlotsRescheduling(t *testing.T) {
	// Rescheduling item b (14:00-15:00 on day 2); day 2 also holds item c
	// at 16:00-18:00.
	b := item("b", 2, "14:00", "15:00")
	c := item("c", 2, "16:00", "18:00")
	candidates := []models.TimeSlot{
		slot("s1", "09:00", "10:00"),
		slot("s2", "14:00", "15:00"),
		slot("s3", "16:00", "17:00"),
	}

	got := ResolveSlots(candidates, []models.ScheduledItem{b, c}, "b")
	if len(got) != 3 {
		t.Fatalf("expected 3 resolved slots, got %d", len(got))
	}
	if !got[0].IsAvailable {
		t.Fatal("09:00-10:00 should be free")
	}
	if !got[1].IsAvailable {
		t.Fatal("item must not conflict with its own current slot")
	}
	if got[2].IsAvailable {
		t.Fatal("16:00-17:00 collides with item c")
	}
	if len(got[2].ConflictsWith) != 1 || got[2].ConflictsWith[0].ItemID != "c" {
		t.Fatalf("expected c as the blocking item, got %+v", got[2].ConflictsWith)
	}
}

func TestResolveSlotsNewItemChecksEverything(t *testing.T) {
	// Placing a brand-new item: no exclusion, so the existing 14:00 item
	// blocks its own window.
	b := item("b", 2, "14:00", "15:00")

	got := ResolveSlots([]models.TimeSlot{slot("s1", "14:00", "15:00")}, []models.ScheduledItem{b}, "")
	if got[0].IsAvailable {
		t.Fatal("occupied window should be unavailable for a new item")
	}
}

func TestResolveSlotsHalfOpenBoundaries(t *testing.T) {
	b := item("b", 2, "14:00", "15:00")
	candidates := []models.TimeSlot{
		slot("before", "13:00", "14:00"), // ends exactly at item start
		slot("after", "15:00", "16:00"),  // starts exactly at item end
		slot("touch", "14:59", "16:00"),  // one minute inside
	}

	got := ResolveSlots(candidates, []models.ScheduledItem{b}, "")
	if !got[0].IsAvailable || !got[1].IsAvailable {
		t.Fatal("touching boundaries must not collide")
	}
	if got[2].IsAvailable {
		t.Fatal("one minute of overlap must collide")
	}
}

func TestResolveSlotsIdempotent(t *testing.T) {
	b := item("b", 2, "14:00", "15:00")
	candidates := []models.TimeSlot{
		slot("s1", "09:00", "10:00"),
		slot("s2", "14:30", "15:30"),
	}

	first := ResolveSlots(candidates, []models.ScheduledItem{b}, "")
	second := ResolveSlots(candidates, []models.ScheduledItem{b}, "")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs must resolve identically:\n%+v\n%+v", first, second)
	}
}

func TestResolveSlotsEmptyCandidates(t *testing.T) {
	got := ResolveSlots(nil, []models.ScheduledItem{item("b", 2, "14:00", "15:00")}, "")
	if len(got) != 0 {
		t.Fatalf("no declared availability means no slots, got %+v", got)
	}
}
