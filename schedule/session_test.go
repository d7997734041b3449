package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"roamio/models"
)

type stubStore struct {
	updates   []models.ScheduleUpdate
	deletions []string
	updateErr error
	deleteErr error
}

func (s *stubStore) BulkUpdate(_ context.Context, _ string, updates []models.ScheduleUpdate) error {
	s.updates = updates
	return s.updateErr
}

func (s *stubStore) BulkDelete(_ context.Context, _ string, itemIDs []string) error {
	s.deletions = itemIDs
	return s.deleteErr
}

func futureClock() func() time.Time {
	// Well before the itinerary starts, so every item is editable.
	return func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.Local) }
}

func strp(s string) *string { return &s }

func newTestSession() *Session {
	items := []models.ScheduledItem{
		item("a", 1, "09:00", "10:00"),
		item("b", 1, "11:00", "12:00"),
		item("c", 2, "14:00", "15:00"),
	}
	return NewSession(testItinerary(), items, futureClock())
}

func TestSessionHasChangesPrecision(t *testing.T) {
	s := newTestSession()
	if s.HasChanges() {
		t.Fatal("fresh session must be clean")
	}

	// Display-only fields never count as edits — the session does not
	// even accept them. A note edit does count.
	if err := s.UpdateItem("a", ItemEdit{CustomNote: strp("bring sunscreen")}); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if !s.HasChanges() {
		t.Fatal("note change must dirty the session")
	}

	// Reverting leaves the session clean again.
	if err := s.UpdateItem("a", ItemEdit{CustomNote: strp("")}); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if s.HasChanges() {
		t.Fatal("reverted session must be clean")
	}

	// One minute counts.
	if err := s.UpdateItem("a", ItemEdit{StartTime: strp("09:01")}); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if !s.HasChanges() {
		t.Fatal("one-minute time change must dirty the session")
	}
}

func TestSessionUpdateUnknownItem(t *testing.T) {
	s := newTestSession()
	if err := s.UpdateItem("ghost", ItemEdit{StartTime: strp("09:00")}); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestSessionRemoveRecordsDeletion(t *testing.T) {
	s := newTestSession()
	if err := s.RemoveItem("b"); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if got := s.Deletions(); len(got) != 1 || got[0] != "b" {
		t.Fatalf("expected [b] on the deletion list, got %v", got)
	}
	if len(s.Items()) != 2 {
		t.Fatalf("expected 2 surviving items, got %d", len(s.Items()))
	}
	if !s.HasChanges() {
		t.Fatal("deletion must dirty the session")
	}
}

func TestSessionRemovePastItemRefused(t *testing.T) {
	items := []models.ScheduledItem{item("a", 1, "09:00", "10:00")}
	// Clock inside the item's window: it has started, so it is locked.
	now := func() time.Time { return time.Date(2026, 6, 1, 9, 30, 0, 0, time.Local) }
	s := NewSession(testItinerary(), items, now)

	if err := s.RemoveItem("a"); !errors.Is(err, ErrItemPast) {
		t.Fatalf("expected ErrItemPast, got %v", err)
	}
	if len(s.Items()) != 1 || len(s.Deletions()) != 0 {
		t.Fatal("refused removal must leave the working copy untouched")
	}
}

func TestSessionSaveNothingToSave(t *testing.T) {
	s := newTestSession()
	if _, err := s.Save(context.Background(), &stubStore{}); !errors.Is(err, ErrNothingToSave) {
		t.Fatalf("expected ErrNothingToSave, got %v", err)
	}
	// Refusal leaves the session usable.
	if err := s.UpdateItem("a", ItemEdit{StartTime: strp("09:30")}); err != nil {
		t.Fatalf("session should still be open: %v", err)
	}
}

func TestSessionSaveHardBlockOnOverlap(t *testing.T) {
	s := newTestSession()
	// Untouched items a and b are made to overlap via an edit to b; the
	// overlap blocks the save even though a was never touched.
	if err := s.UpdateItem("b", ItemEdit{StartTime: strp("09:30"), EndTime: strp("10:30")}); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}

	store := &stubStore{}
	if _, err := s.Save(context.Background(), store); !errors.Is(err, ErrHardConflict) {
		t.Fatalf("expected ErrHardConflict, got %v", err)
	}
	if store.updates != nil || store.deletions != nil {
		t.Fatal("blocked save must not reach the store")
	}
	if !s.HasChanges() {
		t.Fatal("blocked save must keep the session dirty")
	}
}

func TestSessionSaveFlushesDiff(t *testing.T) {
	s := newTestSession()
	if err := s.UpdateItem("a", ItemEdit{StartTime: strp("08:00"), EndTime: strp("09:00")}); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if err := s.RemoveItem("c"); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}

	store := &stubStore{}
	res, err := s.Save(context.Background(), store)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if res.Updated != 1 || res.Deleted != 1 {
		t.Fatalf("expected 1 update and 1 deletion, got %+v", res)
	}
	if len(store.updates) != 1 || store.updates[0].ItemID != "a" || store.updates[0].StartTime != "08:00" {
		t.Fatalf("unexpected update set: %+v", store.updates)
	}
	if len(store.deletions) != 1 || store.deletions[0] != "c" {
		t.Fatalf("unexpected deletion set: %v", store.deletions)
	}

	// Sessions are single-use after a save.
	if _, err := s.Save(context.Background(), store); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
	if err := s.UpdateItem("b", ItemEdit{StartTime: strp("11:30")}); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
}

func TestSessionSaveReportsWriteFailure(t *testing.T) {
	s := newTestSession()
	if err := s.UpdateItem("a", ItemEdit{StartTime: strp("08:00"), EndTime: strp("09:00")}); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if err := s.RemoveItem("c"); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}

	boom := errors.New("delete write failed")
	store := &stubStore{deleteErr: boom}
	if _, err := s.Save(context.Background(), store); !errors.Is(err, boom) {
		t.Fatalf("expected the write error, got %v", err)
	}
}

func TestSessionBaselineIsolation(t *testing.T) {
	items := []models.ScheduledItem{item("a", 1, "09:00", "10:00")}
	s := NewSession(testItinerary(), items, futureClock())

	// Mutating the caller's slice after seeding must not leak in.
	items[0].StartTime = "23:00"
	if s.HasChanges() {
		t.Fatal("session must snapshot its baseline")
	}
	if got := s.Items(); got[0].StartTime != "09:00" {
		t.Fatalf("working copy corrupted: %+v", got[0])
	}
}
