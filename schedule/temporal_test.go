package schedule

import (
	"testing"
	"time"

	"roamio/models"
)

func testItinerary() models.Itinerary {
	return models.Itinerary{
		ItineraryID: "itn1",
		StartDate:   "2026-06-01", // a Monday
		EndDate:     "2026-06-07",
		Status:      "upcoming",
	}
}

func at(day, hour, min int) time.Time {
	return time.Date(2026, 6, day, hour, min, 0, 0, time.Local)
}

func TestDayDateAndWeekday(t *testing.T) {
	itin := testItinerary()

	date, err := DayDate(itin, 3)
	if err != nil {
		t.Fatalf("DayDate: %v", err)
	}
	if date.Day() != 3 || date.Month() != time.June {
		t.Fatalf("expected June 3, got %v", date)
	}

	dow, err := DayOfWeek(itin, 3)
	if err != nil {
		t.Fatalf("DayOfWeek: %v", err)
	}
	if dow != "Wednesday" {
		t.Fatalf("expected Wednesday, got %s", dow)
	}

	if _, err := DayDate(models.Itinerary{StartDate: "junk"}, 1); err == nil {
		t.Fatal("expected error for malformed start date")
	}
}

func TestIsDayPast(t *testing.T) {
	itin := testItinerary()

	// Late evening of day 2: day 2 is not past yet, day 1 is.
	now := at(2, 23, 0)
	if !IsDayPast(itin, 1, now) {
		t.Fatal("day 1 should be past")
	}
	if IsDayPast(itin, 2, now) {
		t.Fatal("day 2 should not be past before its end of day")
	}
	if IsDayPast(itin, 3, now) {
		t.Fatal("day 3 should not be past")
	}
}

func TestIsItemPastFromStartInstant(t *testing.T) {
	itin := testItinerary()
	it := item("a", 2, "14:00", "16:00")

	if IsItemPast(itin, it, at(2, 13, 59)) {
		t.Fatal("item should still be editable one minute before start")
	}
	// Locked from the start instant onward, even while still running.
	if !IsItemPast(itin, it, at(2, 14, 0)) {
		t.Fatal("item should be locked at its start instant")
	}
	if !IsItemPast(itin, it, at(2, 15, 0)) {
		t.Fatal("in-progress item should be locked")
	}
	if !IsItemPast(itin, it, at(3, 9, 0)) {
		t.Fatal("finished item should be locked")
	}
}

func TestIsItemOngoing(t *testing.T) {
	itin := testItinerary()
	it := item("a", 2, "14:00", "16:00")

	if IsItemOngoing(itin, it, at(2, 13, 59)) {
		t.Fatal("not ongoing before start")
	}
	if !IsItemOngoing(itin, it, at(2, 14, 0)) {
		t.Fatal("ongoing at start instant")
	}
	if !IsItemOngoing(itin, it, at(2, 15, 59)) {
		t.Fatal("ongoing just before end")
	}
	// End instant is excluded from the ongoing window.
	if IsItemOngoing(itin, it, at(2, 16, 0)) {
		t.Fatal("not ongoing at end instant")
	}
}

func TestOngoingVersusCompletedLabels(t *testing.T) {
	itin := testItinerary()
	it := item("a", 2, "14:00", "16:00")

	// While running: past (locked) and ongoing.
	now := at(2, 15, 0)
	if !IsItemPast(itin, it, now) || !IsItemOngoing(itin, it, now) {
		t.Fatal("running item should be past and ongoing")
	}

	// After the end: past but no longer ongoing.
	now = at(2, 17, 0)
	if !IsItemPast(itin, it, now) || IsItemOngoing(itin, it, now) {
		t.Fatal("finished item should be past and not ongoing")
	}
}
