package schedule

import (
	"testing"

	"roamio/models"
)

func TestWarningForOverlapWins(t *testing.T) {
	a := item("a", 1, "09:00", "11:00")
	b := item("b", 1, "10:00", "12:00")
	c := item("c", 1, "12:00", "13:00") // also no-gap against b

	w := WarningFor(b, []models.ScheduledItem{a, b, c})
	if w == nil {
		t.Fatal("expected a warning")
	}
	if w.Type != WarningError || w.Message != "Time overlap!" {
		t.Fatalf("expected overlap error, got %+v", w)
	}
}

func TestWarningForNoGap(t *testing.T) {
	a := item("a", 1, "09:00", "10:00")
	b := item("b", 1, "10:00", "11:00")

	w := WarningFor(a, []models.ScheduledItem{a, b})
	if w == nil || w.Type != WarningAdvisory || w.Message != "No travel time" {
		t.Fatalf("expected no-travel-time advisory, got %+v", w)
	}
}

func TestWarningForSmallestGap(t *testing.T) {
	// b has a 20 minute gap before and a 10 minute gap after; the message
	// reports the tighter one.
	a := item("a", 1, "09:00", "10:00")
	b := item("b", 1, "10:20", "11:00")
	c := item("c", 1, "11:10", "12:00")

	w := WarningFor(b, []models.ScheduledItem{a, b, c})
	if w == nil || w.Type != WarningAdvisory {
		t.Fatalf("expected advisory, got %+v", w)
	}
	if w.Message != "Only 10min gap" {
		t.Fatalf("expected tightest gap in message, got %q", w.Message)
	}
}

func TestWarningForCleanItem(t *testing.T) {
	a := item("a", 1, "09:00", "10:00")
	b := item("b", 1, "10:30", "11:00")

	if w := WarningFor(a, []models.ScheduledItem{a, b}); w != nil {
		t.Fatalf("expected no warning, got %+v", w)
	}
}

func TestWarningForIgnoresOtherItemsConflicts(t *testing.T) {
	// a and b overlap; c sits alone in the afternoon.
	a := item("a", 1, "09:00", "11:00")
	b := item("b", 1, "10:00", "12:00")
	c := item("c", 1, "15:00", "16:00")

	if w := WarningFor(c, []models.ScheduledItem{a, b, c}); w != nil {
		t.Fatalf("conflict between a and b must not touch c, got %+v", w)
	}
}
