package rooms

import "strings"

// Zone is the campus side a building belongs to.
type Zone string

const (
	ZoneNone Zone = ""
	ZoneEast Zone = "East"
	ZoneWest Zone = "West"
)

// Zones lists the selectable zones in display order.
var Zones = []Zone{ZoneWest, ZoneEast}

var locationZones = map[string]Zone{
	"North Avenue East":      ZoneEast,
	"North Avenue North":     ZoneEast,
	"North Avenue South":     ZoneEast,
	"North Avenue West":      ZoneEast,
	"Graduate Living Center": ZoneWest,
	"Center Street North":    ZoneWest,
	"Center Street South":    ZoneWest,
	"Crecine":                ZoneWest,
	"Maulding":               ZoneWest,
	"Zbar (SSA)":             ZoneWest,
	"Nelson-Shell (ULC)":     ZoneWest,
	"Armstrong":              ZoneWest,
	"Brown":                  ZoneEast,
	"Caldwell (Explore)":     ZoneWest,
	"Fitten":                 ZoneWest,
	"Folk (Explore)":         ZoneWest,
	"Freeman":                ZoneWest,
	"Fulmer":                 ZoneWest,
	"Glenn":                  ZoneEast,
	"Hanson":                 ZoneEast,
	"Harrison":               ZoneEast,
	"Hefner":                 ZoneWest,
	"Perry (GL Leadership)":  ZoneEast,
	"Smith":                  ZoneEast,
	"Woodruff North":         ZoneWest,
	"Woodruff South":         ZoneWest,
}

// ZoneOf returns the zone for building. ok is false for buildings missing from
// the table.
func ZoneOf(building string) (Zone, bool) {
	zone, ok := locationZones[building]
	return zone, ok
}

// ParseZone maps user input to a Zone, ignoring case. Unknown input yields
// ZoneNone.
func ParseZone(value string) Zone {
	switch {
	case strings.EqualFold(strings.TrimSpace(value), string(ZoneEast)):
		return ZoneEast
	case strings.EqualFold(strings.TrimSpace(value), string(ZoneWest)):
		return ZoneWest
	default:
		return ZoneNone
	}
}

var capacityBeds = map[string]int{
	"4 person": 4,
	"6 person": 6,
	"7 person": 7,
	"Quad":     4,
	"Double":   2,
	"Triple":   3,
	"Suite":    2,
}

// CapacityBeds returns the bed count for a capacity label. Unknown labels
// report 0 and ok=false.
func CapacityBeds(label string) (beds int, ok bool) {
	beds, ok = capacityBeds[label]
	return beds, ok
}
