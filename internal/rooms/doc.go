// Package rooms turns a raw list of bed-slot records into the grouped,
// classified view the dashboard renders.
//
// The pipeline is pure and synchronous:
//
//	records ──Apply(filter)──> filtered ──Group──> Grouped ──PruneByMinBeds──> view
//
// Build runs all three steps. Nothing is cached between runs; callers rebuild
// the view whenever the records or the Filter change.
//
// Each RoomGroup exposes its aggregates (AvailableBeds, TotalBeds, Percentage,
// AvailabilityString) and its Severity bucket. Rooms whose capacity label is
// not in the capacity table have TotalBeds 0, Percentage reports ok=false and
// Severity is SeverityUnknown.
package rooms
