package schedule

import (
	"context"
	"errors"
	"time"

	"roamio/models"
)

var (
	ErrItemNotFound  = errors.New("item not found in this itinerary")
	ErrItemPast      = errors.New("activity has already started and can no longer be changed")
	ErrNothingToSave = errors.New("nothing to save")
	ErrHardConflict  = errors.New("schedule contains overlapping activities")
	ErrSessionClosed = errors.New("editing session already finished")
)

// Store is the persistence boundary a session flushes to on save. Each
// call must succeed or fail as a unit; the session never assumes partial
// application.
type Store interface {
	BulkUpdate(ctx context.Context, itineraryID string, updates []models.ScheduleUpdate) error
	BulkDelete(ctx context.Context, itineraryID string, itemIDs []string) error
}

// ItemEdit carries the fields a user may change on a scheduled item.
// Nil fields are left untouched.
type ItemEdit struct {
	StartTime  *string
	EndTime    *string
	CustomNote *string
}

// SaveResult reports what a successful save wrote.
type SaveResult struct {
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`
}

// Session tracks one itinerary-edit pass: a baseline snapshot as fetched,
// a mutable working copy and an append-only list of deleted item IDs.
// Removed items must land on the deletion list because the persistence
// boundary takes explicit delete instructions separate from updates.
// A session is single-use: once Save has issued its writes, successful or
// not, the caller starts over with a fresh fetch.
type Session struct {
	itinerary models.Itinerary
	now       func() time.Time
	baseline  map[string]models.ScheduledItem
	items     []models.ScheduledItem
	deleted   []string
	closed    bool
}

// NewSession seeds a session from a freshly fetched itinerary. now is
// injectable so the past-item lockout can be tested deterministically.
func NewSession(itin models.Itinerary, items []models.ScheduledItem, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	baseline := make(map[string]models.ScheduledItem, len(items))
	working := make([]models.ScheduledItem, len(items))
	for i, it := range items {
		baseline[it.ItemID] = it
		working[i] = it
	}
	return &Session{
		itinerary: itin,
		now:       now,
		baseline:  baseline,
		items:     working,
	}
}

// Items returns a copy of the working copy, for conflict checks over the
// hypothetical post-edit state.
func (s *Session) Items() []models.ScheduledItem {
	out := make([]models.ScheduledItem, len(s.items))
	copy(out, s.items)
	return out
}

// UpdateItem applies an edit to the working copy. It deliberately does
// not re-run conflict detection: the slot-selection flow checks the
// hypothetical state first so the user can cancel before anything is
// applied.
func (s *Session) UpdateItem(itemID string, edit ItemEdit) error {
	if s.closed {
		return ErrSessionClosed
	}
	for i := range s.items {
		if s.items[i].ItemID != itemID {
			continue
		}
		if edit.StartTime != nil {
			s.items[i].StartTime = *edit.StartTime
		}
		if edit.EndTime != nil {
			s.items[i].EndTime = *edit.EndTime
		}
		if edit.CustomNote != nil {
			s.items[i].CustomNote = *edit.CustomNote
		}
		return nil
	}
	return ErrItemNotFound
}

// RemoveItem drops an item from the working copy and records the
// deletion. Items whose start instant has passed are locked: ongoing and
// finished activities cannot be removed.
func (s *Session) RemoveItem(itemID string) error {
	if s.closed {
		return ErrSessionClosed
	}
	for i := range s.items {
		if s.items[i].ItemID != itemID {
			continue
		}
		if IsItemPast(s.itinerary, s.items[i], s.now()) {
			return ErrItemPast
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		s.deleted = append(s.deleted, itemID)
		return nil
	}
	return ErrItemNotFound
}

// Changes diffs the working copy against the baseline and returns the
// update records for items whose start time, end time or note changed.
// Denormalized display fields never count.
func (s *Session) Changes() []models.ScheduleUpdate {
	var updates []models.ScheduleUpdate
	for _, it := range s.items {
		base, ok := s.baseline[it.ItemID]
		if ok && base.StartTime == it.StartTime && base.EndTime == it.EndTime && base.CustomNote == it.CustomNote {
			continue
		}
		updates = append(updates, models.ScheduleUpdate{
			ItemID:     it.ItemID,
			StartTime:  it.StartTime,
			EndTime:    it.EndTime,
			CustomNote: it.CustomNote,
		})
	}
	return updates
}

// Deletions returns the recorded item deletions.
func (s *Session) Deletions() []string {
	out := make([]string, len(s.deleted))
	copy(out, s.deleted)
	return out
}

// HasChanges reports whether saving would write anything.
func (s *Session) HasChanges() bool {
	return len(s.deleted) > 0 || len(s.Changes()) > 0
}

// Save gates and flushes the session. Refusals (nothing to save, hard
// overlap anywhere in the working copy) happen before any write and leave
// the session open. Once the writes are issued the session is done either
// way; the update and delete writes touch disjoint item sets, so they run
// concurrently and both are awaited before reporting.
func (s *Session) Save(ctx context.Context, store Store) (SaveResult, error) {
	if s.closed {
		return SaveResult{}, ErrSessionClosed
	}
	if !s.HasChanges() {
		return SaveResult{}, ErrNothingToSave
	}
	if HasOverlap(s.items) {
		return SaveResult{}, ErrHardConflict
	}

	updates := s.Changes()
	deletions := s.Deletions()
	s.closed = true

	errCh := make(chan error, 2)
	go func() {
		if len(updates) == 0 {
			errCh <- nil
			return
		}
		errCh <- store.BulkUpdate(ctx, s.itinerary.ItineraryID, updates)
	}()
	go func() {
		if len(deletions) == 0 {
			errCh <- nil
			return
		}
		errCh <- store.BulkDelete(ctx, s.itinerary.ItineraryID, deletions)
	}()

	var saveErr error
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil && saveErr == nil {
			saveErr = err
		}
	}
	if saveErr != nil {
		return SaveResult{}, saveErr
	}
	return SaveResult{Updated: len(updates), Deleted: len(deletions)}, nil
}
