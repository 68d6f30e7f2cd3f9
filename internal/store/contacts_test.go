package store

import (
	"context"
	"testing"
	"time"

	"lifeboard/internal/storage"
)

func TestAddInteractionBumpsLastContacted(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c, err := s.AddContact(ctx, ContactInput{Name: "Sam", ReminderFrequency: 7})
	if err != nil {
		t.Fatalf("add contact: %v", err)
	}

	if err := s.AddInteraction(ctx, c.ID, storage.Interaction{Type: "call"}); err != nil {
		t.Fatalf("interaction: %v", err)
	}
	got := s.GetState().Contacts[0]
	today := testNow.Format(storage.DateLayout)
	if got.LastContacted != today {
		t.Fatalf("lastContacted %q, want %q", got.LastContacted, today)
	}
	if len(got.Interactions) != 1 {
		t.Fatalf("interactions %d, want 1", len(got.Interactions))
	}

	// An older backfilled interaction must not move lastContacted backward.
	old := testNow.AddDate(0, 0, -30).Format(storage.DateLayout)
	if err := s.AddInteraction(ctx, c.ID, storage.Interaction{Date: old, Type: "message"}); err != nil {
		t.Fatalf("backfill: %v", err)
	}
	if got := s.GetState().Contacts[0]; got.LastContacted != today {
		t.Fatalf("backfill moved lastContacted to %q", got.LastContacted)
	}
}

func TestContactsDue(t *testing.T) {
	contacts := []storage.Contact{
		{ID: "a", Name: "Never contacted", ReminderFrequency: 7},
		{ID: "b", Name: "Fresh", ReminderFrequency: 7, LastContacted: testNow.AddDate(0, 0, -2).Format(storage.DateLayout)},
		{ID: "c", Name: "Stale", ReminderFrequency: 7, LastContacted: testNow.AddDate(0, 0, -10).Format(storage.DateLayout)},
		{ID: "d", Name: "No reminder", ReminderFrequency: 0, LastContacted: "2020-01-01"},
	}

	due := ContactsDue(contacts, testNow)
	if len(due) != 2 {
		t.Fatalf("due %d, want 2", len(due))
	}
	if due[0].ID != "a" || due[1].ID != "c" {
		t.Fatalf("due ids: %s, %s", due[0].ID, due[1].ID)
	}
}

func TestContactsDueOnReminderDayInAheadOfUTCZone(t *testing.T) {
	// Exactly 7 days since last contact, evaluated in a UTC-positive zone:
	// the zone offset must not shave the elapsed-day count below the
	// frequency.
	zone := time.FixedZone("UTC+2", 2*3600)
	today := time.Date(2026, 3, 10, 9, 0, 0, 0, zone)
	contacts := []storage.Contact{
		{ID: "a", Name: "On the day", ReminderFrequency: 7, LastContacted: "2026-03-03"},
	}

	due := ContactsDue(contacts, today)
	if len(due) != 1 || due[0].ID != "a" {
		t.Fatalf("due %v, want contact a", due)
	}
}
