package state

import (
	"sync"
	"time"

	"github.com/five82/bedboard/internal/freshness"
	"github.com/five82/bedboard/internal/housing"
)

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Rooms               []housing.Room
	Loaded              bool      // at least one fetch has resolved
	LastUpdated         time.Time // freshness anchor: newest record timestamp
	Elapsed             string    // time since LastUpdated, e.g. "3m 7s"
	FetchedAt           time.Time // when the last fetch resolved
	LastError           error
	ConsecutiveFailures int // Number of consecutive fetch failures
	IntervalMinutes     int
}

// IsOffline returns true when the feed has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// HasAnchor reports whether any record has carried a usable timestamp yet.
func (s Snapshot) HasAnchor() bool {
	return !s.LastUpdated.IsZero()
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Replace records a successful fetch. The record list is replaced wholesale,
// the error is cleared, and if any record has a parseable timestamp the
// newest one becomes the freshness anchor. It reports whether an anchor is
// set after the update.
func (s *Store) Replace(rooms []housing.Room, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Rooms = cloneRooms(rooms)
	if latest, ok := housing.LatestUpdate(rooms); ok {
		s.snapshot.LastUpdated = latest
	}
	s.snapshot.Elapsed = freshness.Since(s.snapshot.LastUpdated, now)
	s.snapshot.Loaded = true
	s.snapshot.LastError = nil
	s.snapshot.FetchedAt = now
	s.snapshot.ConsecutiveFailures = 0
	return s.snapshot.HasAnchor()
}

// Fail records a failed fetch. The previous rooms are kept but the error is
// recorded for visibility.
func (s *Store) Fail(err error, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastError = err
	s.snapshot.Loaded = true
	s.snapshot.FetchedAt = now
	s.snapshot.ConsecutiveFailures++
}

// Tick recomputes Elapsed against now.
func (s *Store) Tick(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Elapsed = freshness.Since(s.snapshot.LastUpdated, now)
}

// SetInterval records the active polling interval in minutes.
func (s *Store) SetInterval(minutes int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.IntervalMinutes = minutes
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Rooms = cloneRooms(s.snapshot.Rooms)
	if snap.Elapsed == "" {
		snap.Elapsed = "0s"
	}
	return snap
}

func cloneRooms(rooms []housing.Room) []housing.Room {
	if len(rooms) == 0 {
		return nil
	}
	dup := make([]housing.Room, len(rooms))
	copy(dup, rooms)
	return dup
}
