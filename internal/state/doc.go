// Package state provides thread-safe state management for bedboard.
//
// # Overview
//
// Store is the single coordination point between the fetch session, which
// writes room data, and the UI, which reads snapshots once a second and
// rebuilds its grouped view from them.
//
//	Producer (Session):            Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ FetchRooms()   │            │                 │
//	│      ↓         │            │                 │
//	│ store.Replace()│───────────→│ store.Snapshot()│
//	│ store.Fail()   │  (mutex)   │      ↓          │
//	│ store.Tick()   │            │ rooms.Build()   │
//	└────────────────┘            └─────────────────┘
//
// # Update Semantics
//
//	// Success: replace everything, clear the error
//	store.Replace(rooms, now)
//	→ snapshot.Rooms = rooms
//	→ snapshot.LastUpdated = newest parseable record timestamp (unchanged if none)
//	→ snapshot.LastError = nil
//	→ snapshot.Loaded = true
//
//	// Failure: keep old rooms, record the error
//	store.Fail(err, now)
//	→ snapshot.Rooms = <unchanged>
//	→ snapshot.LastError = err
//	→ snapshot.ConsecutiveFailures++
//	→ snapshot.Loaded = true
//
// Loaded distinguishes the initial loading screen from an empty result. Tick
// is driven by the session's one-second freshness loop and only touches
// Elapsed.
//
// # Copying
//
// Rooms are cloned on the way in and on the way out, and errors are rewrapped,
// so callers never share backing arrays with the store.
//
// The zero Store is ready to use.
package state
