package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lifeboard/internal/storage"
)

type ContactInput struct {
	Name              string
	Category          string
	ReminderFrequency int
	Birthday          string // MM-DD
	Notes             string
}

func (s *Store) AddContact(ctx context.Context, in ContactInput) (storage.Contact, error) {
	name, err := normalizeTitle(in.Name)
	if err != nil {
		return storage.Contact{}, err
	}
	c := storage.Contact{
		ID:                uuid.NewString(),
		Name:              name,
		Category:          in.Category,
		ReminderFrequency: in.ReminderFrequency,
		Birthday:          in.Birthday,
		Notes:             in.Notes,
	}
	err = s.mutate(ctx, func(st *storage.State) error {
		st.Contacts = append(cloneContacts(st.Contacts), c)
		s.evaluateAchievementsLocked(st, s.now())
		return nil
	})
	return c, err
}

// AddInteraction logs a touch-point and bumps lastContacted.
func (s *Store) AddInteraction(ctx context.Context, contactID string, in storage.Interaction) error {
	if in.Date == "" {
		in.Date = s.today()
	}
	if _, err := time.Parse(storage.DateLayout, in.Date); err != nil {
		return StateError{Kind: "interaction", ID: contactID, Msg: "invalid date " + in.Date}
	}
	return s.mutate(ctx, func(st *storage.State) error {
		i := findContact(st.Contacts, contactID)
		if i < 0 {
			return NotFoundError{Kind: "contact", ID: contactID}
		}
		contacts := cloneContacts(st.Contacts)
		contacts[i].Interactions = append(contacts[i].Interactions, in)
		if in.Date > contacts[i].LastContacted {
			contacts[i].LastContacted = in.Date
		}
		st.Contacts = contacts
		return nil
	})
}

func (s *Store) DeleteContact(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *storage.State) error {
		i := findContact(st.Contacts, id)
		if i < 0 {
			return NotFoundError{Kind: "contact", ID: id}
		}
		contacts := cloneContacts(st.Contacts)
		st.Contacts = append(contacts[:i], contacts[i+1:]...)
		return nil
	})
}

// ContactsDue lists contacts whose reminder window has lapsed as of today.
func ContactsDue(contacts []storage.Contact, today time.Time) []storage.Contact {
	var due []storage.Contact
	for _, c := range contacts {
		if c.ReminderFrequency <= 0 {
			continue
		}
		if c.LastContacted == "" {
			due = append(due, c)
			continue
		}
		last, err := time.Parse(storage.DateLayout, c.LastContacted)
		if err != nil {
			continue
		}
		// Re-parse today's date so both sides are midnight in the same zone
		// and the day count is exact.
		day, _ := time.Parse(storage.DateLayout, today.Format(storage.DateLayout))
		if int(day.Sub(last).Hours()/24) >= c.ReminderFrequency {
			due = append(due, c)
		}
	}
	return due
}

func findContact(contacts []storage.Contact, id string) int {
	for i := range contacts {
		if contacts[i].ID == id {
			return i
		}
	}
	return -1
}
