// Package housing provides a client for the dormitory availability feed.
//
// # Overview
//
// The feed is a single HTTP endpoint returning a JSON array of bed-slot
// records. Each record is one unoccupied bed; beds of the same physical room
// share a base room number and differ only by a trailing letter.
//
//	[
//	  {"BuildingName":"Glenn","RoomNumber":"101A","Gender":"Male",
//	   "Capacity":"Double","Term":"Fall","LastUpdated":"2026-10-16T12:00:00Z"},
//	  ...
//	]
//
// # Architecture
//
//   - client.go: resty-backed HTTP client, one GET per FetchRooms call
//   - types.go: Room record with tolerant decoding and timestamp parsing
//
// # Decoding
//
// The feed is trusted but not schema-guaranteed. Room.UnmarshalJSON reads only
// the six known keys and coerces each to a string:
//
//   - strings pass through
//   - numbers keep their literal text (305 becomes "305")
//   - booleans become "true" or "false"
//   - null, objects, arrays and missing keys become ""
//
// Nothing is validated. A record with missing fields still decodes and flows
// into grouping with empty values.
//
// # Error Handling
//
// FetchRooms returns wrapped errors:
//
//   - "execute request: ..." for transport failures and timeouts
//   - "feed returned status N" for any non-2xx response
//   - "decode response: ..." when the body is not a JSON array of objects
//
// There are no retries. Callers poll again on their own schedule.
package housing
