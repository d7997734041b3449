package itinerary

import (
	"testing"

	"roamio/models"
)

func TestTripDays(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2026-06-01", "2026-06-07", 7},
		{"2026-06-01", "2026-06-01", 1},
		{"junk", "2026-06-07", 0},
	}
	for _, c := range cases {
		itin := models.Itinerary{StartDate: c.start, EndDate: c.end}
		if got := tripDays(itin); got != c.want {
			t.Fatalf("tripDays(%s, %s) = %d, want %d", c.start, c.end, got, c.want)
		}
	}
}

func TestFindItem(t *testing.T) {
	items := []models.ScheduledItem{
		{ItemID: "a"},
		{ItemID: "b"},
	}
	if got, ok := findItem(items, "b"); !ok || got.ItemID != "b" {
		t.Fatalf("expected to find b, got %+v ok=%v", got, ok)
	}
	if _, ok := findItem(items, "ghost"); ok {
		t.Fatal("expected miss for unknown id")
	}
}
