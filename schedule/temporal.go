package schedule

import (
	"time"

	"roamio/models"
)

// DayDate resolves a 1-based day number to its calendar date, midnight
// local time. Fails when the itinerary start date is malformed.
func DayDate(itin models.Itinerary, dayNumber int) (time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02", itin.StartDate, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return start.AddDate(0, 0, dayNumber-1), nil
}

// DayOfWeek returns the weekday name ("Monday".."Sunday") for a day
// number, used to look up an experience's declared weekly availability.
func DayOfWeek(itin models.Itinerary, dayNumber int) (string, error) {
	date, err := DayDate(itin, dayNumber)
	if err != nil {
		return "", err
	}
	return date.Weekday().String(), nil
}

// IsDayPast reports whether the whole day is over: its end of day
// (23:59:59.999 local) is strictly before now. Now is passed in rather
// than read from the system clock so tests stay deterministic.
func IsDayPast(itin models.Itinerary, dayNumber int, now time.Time) bool {
	date, err := DayDate(itin, dayNumber)
	if err != nil {
		return false
	}
	endOfDay := date.Add(24*time.Hour - time.Millisecond)
	return endOfDay.Before(now)
}

// ItemStart returns the item's absolute start instant.
func ItemStart(itin models.Itinerary, item models.ScheduledItem) (time.Time, error) {
	date, err := DayDate(itin, item.DayNumber)
	if err != nil {
		return time.Time{}, err
	}
	t, err := ParseTimeOfDay(item.StartTime)
	if err != nil {
		return time.Time{}, err
	}
	return date.Add(time.Duration(t) * time.Minute), nil
}

// ItemEnd returns the item's absolute end instant.
func ItemEnd(itin models.Itinerary, item models.ScheduledItem) (time.Time, error) {
	date, err := DayDate(itin, item.DayNumber)
	if err != nil {
		return time.Time{}, err
	}
	t, err := ParseTimeOfDay(item.EndTime)
	if err != nil {
		return time.Time{}, err
	}
	return date.Add(time.Duration(t) * time.Minute), nil
}

// IsItemPast reports whether the item has already started. An activity
// counts as past from its start instant, not its end: once underway it is
// locked against rescheduling and removal.
func IsItemPast(itin models.Itinerary, item models.ScheduledItem, now time.Time) bool {
	start, err := ItemStart(itin, item)
	if err != nil {
		return false
	}
	return !now.Before(start)
}

// IsItemOngoing reports whether now falls within [start, end). Ongoing
// items are just as locked as finished ones; the distinction only changes
// the label shown to the user.
func IsItemOngoing(itin models.Itinerary, item models.ScheduledItem, now time.Time) bool {
	start, err := ItemStart(itin, item)
	if err != nil {
		return false
	}
	end, err := ItemEnd(itin, item)
	if err != nil {
		return false
	}
	return !now.Before(start) && now.Before(end)
}
