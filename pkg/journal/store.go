package journal

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/unowned-ai/reflections/pkg/logging"
	"go.uber.org/zap"
)

// Store owns the ordered entry collection. It is the only writer; every
// mutation is followed by a save through the Persister.
type Store struct {
	mu        sync.Mutex
	entries   []Entry
	lastID    int64
	persister Persister
	logger    *logging.Logger
	now       func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence diagnostics.
func WithLogger(l *logging.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source used for ids and default dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore returns an empty store backed by p. A nil p keeps entries in
// memory only. Call Load to read previously saved entries.
func NewStore(p Persister, opts ...Option) *Store {
	s := &Store{
		entries:   []Entry{},
		persister: p,
		logger:    logging.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("journal")
	return s
}

// Load replaces the collection with the persisted one. Missing data starts
// an empty journal; unreadable data is logged and also starts empty.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = []Entry{}
	s.lastID = 0
	if s.persister == nil {
		return
	}

	loaded, err := s.persister.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warn(ctx, "failed to load entries, starting with an empty journal", zap.Error(err))
		}
		return
	}

	for _, e := range loaded {
		if e.ID > s.lastID {
			s.lastID = e.ID
		}
	}
	s.entries = append(s.entries, loaded...)
	s.logger.Debug(ctx, "entries loaded", zap.Int("count", len(s.entries)))
}

// Append validates the draft and adds it as a new entry. Validation errors
// leave the collection untouched. When the save fails the entry is still
// returned, kept in memory, and the error wraps ErrPersistFailed.
func (s *Store) Append(ctx context.Context, d Draft) (Entry, error) {
	if err := d.Validate(); err != nil {
		return Entry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if d.Date == "" {
		d.Date = now.Format(DateLayout)
	}

	entry := d.entry(s.nextID(now))
	s.entries = append(s.entries, entry)

	return entry, s.persist(ctx)
}

// ClearAll removes every entry. There is no undo. A failed save is reported
// as ErrPersistFailed; the collection is empty either way.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cleared := len(s.entries)
	s.entries = []Entry{}
	if err := s.persist(ctx); err != nil {
		return err
	}
	s.logger.Info(ctx, "journal cleared", zap.Int("removed", cleared))
	return nil
}

// All returns a copy of the entries, oldest first.
func (s *Store) All() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// nextID uses the creation time in milliseconds and bumps past the last id
// when two entries land in the same millisecond or the clock goes backwards.
func (s *Store) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// persist must be called with mu held. Save failures do not roll back the
// in-memory change.
func (s *Store) persist(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}
	snapshot := make([]Entry, len(s.entries))
	copy(snapshot, s.entries)
	if err := s.persister.Save(ctx, snapshot); err != nil {
		s.logger.Error(ctx, "failed to save entries", zap.Error(err), zap.Int("count", len(snapshot)))
		return fmt.Errorf("%w: %w", ErrPersistFailed, err)
	}
	return nil
}
