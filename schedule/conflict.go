package schedule

import (
	"sort"

	"roamio/models"
)

// MinTravelGap is the advisory minimum number of minutes between the end
// of one activity and the start of the next on the same day.
const MinTravelGap = 30

type ConflictType string

const (
	ConflictOverlap         ConflictType = "overlap"
	ConflictNoGap           ConflictType = "no-gap"
	ConflictInsufficientGap ConflictType = "insufficient-gap"
)

// Conflict pairs two same-day items with a classification. Derived on
// demand from the current item set, never stored.
type Conflict struct {
	First      models.ScheduledItem `json:"first"`
	Second     models.ScheduledItem `json:"second"`
	Type       ConflictType         `json:"type"`
	GapMinutes int                  `json:"gap_minutes"`
}

// DetectConflicts groups items by day, sorts each day by start time and
// classifies every adjacent pair. Only adjacent pairs are checked: when
// intervals are sorted by start time, two non-adjacent intervals cannot
// overlap unless the one between them overlaps too, so the adjacent scan
// already surfaces every collision. Items with unparseable times are
// skipped rather than compared.
func DetectConflicts(items []models.ScheduledItem) []Conflict {
	byDay := make(map[int][]models.ScheduledItem)
	for _, it := range items {
		if _, err := ParseTimeOfDay(it.StartTime); err != nil {
			continue
		}
		if _, err := ParseTimeOfDay(it.EndTime); err != nil {
			continue
		}
		byDay[it.DayNumber] = append(byDay[it.DayNumber], it)
	}

	days := make([]int, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Ints(days)

	var conflicts []Conflict
	for _, d := range days {
		group := byDay[d]
		// Zero-padded HH:mm sorts correctly as a string.
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].StartTime < group[j].StartTime
		})

		for i := 0; i+1 < len(group); i++ {
			cur, next := group[i], group[i+1]
			end, _ := ParseTimeOfDay(cur.EndTime)
			start, _ := ParseTimeOfDay(next.StartTime)
			gap := GapMinutes(end, start)

			switch {
			case gap < 0:
				conflicts = append(conflicts, Conflict{First: cur, Second: next, Type: ConflictOverlap, GapMinutes: gap})
			case gap == 0:
				conflicts = append(conflicts, Conflict{First: cur, Second: next, Type: ConflictNoGap, GapMinutes: 0})
			case gap < MinTravelGap:
				conflicts = append(conflicts, Conflict{First: cur, Second: next, Type: ConflictInsufficientGap, GapMinutes: gap})
			}
		}
	}
	return conflicts
}

// HasOverlap reports whether any overlap-class conflict exists in the
// item set. Overlaps are hard conflicts: they block saving.
func HasOverlap(items []models.ScheduledItem) bool {
	for _, c := range DetectConflicts(items) {
		if c.Type == ConflictOverlap {
			return true
		}
	}
	return false
}
