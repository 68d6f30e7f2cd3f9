package notify

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lifeboard/internal/storage"
	"lifeboard/internal/store"
)

type recordingNotifier struct {
	granted bool
	sent    []string
}

func (n *recordingNotifier) IsSupported() bool { return true }

func (n *recordingNotifier) Permission() Permission {
	if n.granted {
		return PermissionGranted
	}
	return PermissionDefault
}

func (n *recordingNotifier) RequestPermission() Permission {
	n.granted = true
	return PermissionGranted
}

func (n *recordingNotifier) Send(title, body string) {
	n.sent = append(n.sent, title+": "+body)
}

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newSchedulerUnderTest(t *testing.T) (*store.Store, *recordingNotifier, *Scheduler) {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	st := store.New(storage.NewKV(db), nil, store.WithClock(func() time.Time { return testNow }))
	if err := st.Hydrate(ctx); err != nil {
		t.Fatalf("hydrate: %v", err)
	}

	n := &recordingNotifier{}
	return st, n, NewScheduler(st, n, nil, time.Minute)
}

func enableNotifications(t *testing.T, st *store.Store) {
	t.Helper()
	ns := st.GetState().Profile.Notifications
	ns.Enabled = true
	if err := st.SetNotificationSettings(context.Background(), ns); err != nil {
		t.Fatalf("enable notifications: %v", err)
	}
}

func TestPollSkipsWithoutPermission(t *testing.T) {
	st, n, sched := newSchedulerUnderTest(t)
	enableNotifications(t, st)

	if _, err := st.AddTask(context.Background(), store.TaskInput{
		Title:         "Scheduled today",
		ScheduledDate: testNow.Format(storage.DateLayout),
	}); err != nil {
		t.Fatalf("add task: %v", err)
	}

	sched.Poll(testNow)
	if len(n.sent) != 0 {
		t.Fatalf("sent %v without permission", n.sent)
	}
}

func TestPollSkipsWhenDisabled(t *testing.T) {
	_, n, sched := newSchedulerUnderTest(t)
	n.RequestPermission()

	sched.Poll(testNow)
	if len(n.sent) != 0 {
		t.Fatalf("sent %v with notifications disabled", n.sent)
	}
}

func TestMorningDigestFiresOncePerDay(t *testing.T) {
	st, n, sched := newSchedulerUnderTest(t)
	enableNotifications(t, st)
	n.RequestPermission()
	ctx := context.Background()

	if _, err := st.AddTask(ctx, store.TaskInput{
		Title:         "Scheduled today",
		ScheduledDate: testNow.Format(storage.DateLayout),
	}); err != nil {
		t.Fatalf("add task: %v", err)
	}
	if _, err := st.AddContact(ctx, store.ContactInput{Name: "Sam", ReminderFrequency: 7}); err != nil {
		t.Fatalf("add contact: %v", err)
	}

	// Default morning time is 08:00; polling at 09:00 is past it.
	sched.Poll(testNow)
	if len(n.sent) != 2 {
		t.Fatalf("sent %v, want plan + contact nudge", n.sent)
	}
	if !strings.Contains(n.sent[0], "Today's plan") {
		t.Fatalf("first send: %s", n.sent[0])
	}

	// A second poll the same day stays quiet.
	sched.Poll(testNow.Add(time.Hour))
	if len(n.sent) != 2 {
		t.Fatalf("digest repeated within a day: %v", n.sent)
	}

	// The next morning it fires again.
	sched.Poll(testNow.AddDate(0, 0, 1))
	if len(n.sent) <= 2 {
		t.Fatalf("digest did not fire the next day")
	}
}

func TestEveningReviewWhenEnergyUnlogged(t *testing.T) {
	st, n, sched := newSchedulerUnderTest(t)
	enableNotifications(t, st)
	n.RequestPermission()

	evening := time.Date(testNow.Year(), testNow.Month(), testNow.Day(), 21, 0, 0, 0, time.UTC)
	sched.Poll(evening)
	found := false
	for _, msg := range n.sent {
		if strings.Contains(msg, "Evening review") {
			found = true
		}
	}
	if !found {
		t.Fatalf("no evening review with energy unlogged: %v", n.sent)
	}

	// Logging energy suppresses the nudge the next evening.
	if _, err := st.LogEnergy(context.Background(), testNow.AddDate(0, 0, 1).Format(storage.DateLayout), 3, ""); err != nil {
		t.Fatalf("log energy: %v", err)
	}
	before := len(n.sent)
	sched.Poll(evening.AddDate(0, 0, 1))
	for _, msg := range n.sent[before:] {
		if strings.Contains(msg, "Evening review") {
			t.Fatalf("evening review fired with energy logged")
		}
	}
}

func TestStreakNudgeOnlyWhenUnlogged(t *testing.T) {
	st, n, sched := newSchedulerUnderTest(t)
	enableNotifications(t, st)
	n.RequestPermission()
	ctx := context.Background()

	h, err := st.AddHabit(ctx, store.HabitInput{Title: "Stretch"})
	if err != nil {
		t.Fatalf("add habit: %v", err)
	}
	yesterday := testNow.AddDate(0, 0, -1).Format(storage.DateLayout)
	if _, err := st.LogHabit(ctx, h.ID, yesterday, true); err != nil {
		t.Fatalf("log: %v", err)
	}

	sched.Poll(testNow)
	found := false
	for _, msg := range n.sent {
		if strings.Contains(msg, "streak") {
			found = true
		}
	}
	if !found {
		t.Fatalf("no streak nudge with an unlogged today: %v", n.sent)
	}
}
