// Package store is the single source of truth for all domain state. Every
// mutation goes through a typed mutator which applies the change, runs
// gamification side effects, persists the whole aggregate and notifies
// subscribers.
package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"lifeboard/internal/storage"
)

type Store struct {
	mu sync.Mutex

	kv  *storage.KV
	log *zap.Logger
	now func() time.Time

	state    storage.State
	hydrated bool
	locked   bool

	celebrations []Celebration

	subs    map[int]func()
	nextSub int
}

type Option func(*Store)

// WithClock overrides the store's notion of now. Used by tests; the default
// is time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(kv *storage.KV, log *zap.Logger, opts ...Option) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		kv:    kv,
		log:   log,
		now:   time.Now,
		state: storage.DefaultState(),
		subs:  map[int]func(){},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hydrate loads the persisted aggregate, replacing in-memory defaults. Read
// failures are logged and swallowed: the store starts from defaults rather
// than refusing to run. If security is enabled the store comes up locked.
func (s *Store) Hydrate(ctx context.Context) error {
	st, err := storage.LoadState(ctx, s.kv)
	if err != nil {
		s.log.Warn("state load failed, starting from defaults", zap.Error(err))
		st = nil
	}

	s.mu.Lock()
	if st != nil {
		s.state = *st
	}
	s.locked = s.state.Profile.SecurityEnabled
	s.hydrated = true
	s.mu.Unlock()

	s.notifySubscribers()
	return nil
}

// Hydrated reports whether the initial load has finished. Derived reads are
// unreliable before this is true.
func (s *Store) Hydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrated
}

// GetState returns a snapshot of the aggregate. The snapshot is a deep copy;
// callers can hold it across mutations without seeing torn state.
func (s *Store) GetState() storage.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state)
}

// Subscribe registers a listener invoked after every committed mutation.
// The returned function unsubscribes.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// mutate applies fn to the aggregate, persists the result and notifies
// subscribers. A business-rule error from fn aborts the mutation; a
// persistence error is returned but the in-memory change stands (worst case
// is loss of the most recent unsaved mutation, per the storage contract).
func (s *Store) mutate(ctx context.Context, fn func(st *storage.State) error) error {
	s.mu.Lock()
	if err := fn(&s.state); err != nil {
		s.mu.Unlock()
		return err
	}
	perr := storage.SaveState(ctx, s.kv, s.state)
	s.mu.Unlock()

	s.notifySubscribers()
	return perr
}

func (s *Store) notifySubscribers() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", ErrEmptyTitle
	}
	return t, nil
}

func (s *Store) today() string {
	return s.now().Format(storage.DateLayout)
}
