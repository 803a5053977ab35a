package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Timzz-T/learnerhours/internal/storage"
)

// Service manages the persisted session list. Every mutation is a full
// read-modify-rewrite of the slot value.
type Service struct {
	slot   storage.Slot
	key    string
	clock  Clock
	logger *slog.Logger
}

// NewService creates a session service over the given slot. A nil clock
// falls back to the system clock.
func NewService(slot storage.Slot, key string, clock Clock, logger *slog.Logger) *Service {
	if clock == nil {
		clock = systemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		slot:   slot,
		key:    key,
		clock:  clock,
		logger: logger,
	}
}

// LoadAll returns every stored session in insertion order. An absent slot
// yields an empty list. Malformed slot content also yields an empty list;
// the corruption is surfaced through the log rather than the caller.
func (s *Service) LoadAll(ctx context.Context) ([]Session, error) {
	raw, err := s.slot.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading sessions: %w", err)
	}

	var sessions []Session
	if err := json.Unmarshal([]byte(raw), &sessions); err != nil {
		s.logger.Warn("stored sessions malformed, starting empty", "key", s.key, "error", err)
		return nil, nil
	}
	return sessions, nil
}

// SaveAll overwrites the stored session list in a single write.
func (s *Service) SaveAll(ctx context.Context, sessions []Session) error {
	if sessions == nil {
		sessions = []Session{}
	}
	data, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("encoding sessions: %w", err)
	}
	if err := s.slot.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("writing sessions: %w", err)
	}
	return nil
}

// Add validates and stores a new session. Field values are HTML-escaped
// before storage. Nothing is persisted when validation or the overlap check
// fails.
func (s *Service) Add(ctx context.Context, date, startTime, endTime string) (Session, error) {
	if err := ValidateDate(date); err != nil {
		return Session{}, err
	}
	if err := ValidateTimes(startTime, endTime); err != nil {
		return Session{}, err
	}

	sessions, err := s.LoadAll(ctx)
	if err != nil {
		return Session{}, err
	}

	candidate := Session{
		Date:      Sanitize(date),
		StartTime: Sanitize(startTime),
		EndTime:   Sanitize(endTime),
	}
	if conflict := findConflict(sessions, candidate, 0); conflict != nil {
		return Session{}, ErrOverlap
	}

	candidate.ID = s.mintID(sessions)
	sessions = append(sessions, candidate)
	if err := s.SaveAll(ctx, sessions); err != nil {
		return Session{}, err
	}

	s.logger.Debug("session added", "id", candidate.ID, "date", candidate.Date)
	return candidate, nil
}

// Update replaces the fields of an existing session in place, keeping its id
// and position. Validation matches Add; the overlap check ignores the
// session being updated.
func (s *Service) Update(ctx context.Context, id int64, date, startTime, endTime string) (Session, error) {
	if err := ValidateDate(date); err != nil {
		return Session{}, err
	}
	if err := ValidateTimes(startTime, endTime); err != nil {
		return Session{}, err
	}

	sessions, err := s.LoadAll(ctx)
	if err != nil {
		return Session{}, err
	}

	index := -1
	for i := range sessions {
		if sessions[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return Session{}, ErrSessionNotFound
	}

	updated := Session{
		ID:        id,
		Date:      Sanitize(date),
		StartTime: Sanitize(startTime),
		EndTime:   Sanitize(endTime),
	}
	if conflict := findConflict(sessions, updated, id); conflict != nil {
		return Session{}, ErrOverlap
	}

	sessions[index] = updated
	if err := s.SaveAll(ctx, sessions); err != nil {
		return Session{}, err
	}

	s.logger.Debug("session updated", "id", id)
	return updated, nil
}

// Remove deletes the session with the given id and persists the remainder.
// Removing an absent id is not an error.
func (s *Service) Remove(ctx context.Context, id int64) error {
	sessions, err := s.LoadAll(ctx)
	if err != nil {
		return err
	}

	remaining := sessions[:0]
	for _, sess := range sessions {
		if sess.ID != id {
			remaining = append(remaining, sess)
		}
	}
	if err := s.SaveAll(ctx, remaining); err != nil {
		return err
	}

	s.logger.Debug("session removed", "id", id)
	return nil
}

// Get returns the session with the given id.
func (s *Service) Get(ctx context.Context, id int64) (Session, error) {
	sessions, err := s.LoadAll(ctx)
	if err != nil {
		return Session{}, err
	}
	for _, sess := range sessions {
		if sess.ID == id {
			return sess, nil
		}
	}
	return Session{}, ErrSessionNotFound
}

// mintID derives a unique id from the clock. Ids are unix-millisecond
// timestamps; a collision with a stored id bumps until free.
func (s *Service) mintID(existing []Session) int64 {
	taken := make(map[int64]bool, len(existing))
	for _, sess := range existing {
		taken[sess.ID] = true
	}
	id := s.clock.Now().UnixMilli()
	for taken[id] {
		id++
	}
	return id
}
