package rooms

import (
	"github.com/five82/bedboard/internal/housing"
)

// RoomGroup is the set of available bed slots sharing one physical room.
type RoomGroup struct {
	BaseNumber string
	Beds       []housing.Room
}

// BuildingGroup holds a building's room groups in first-appearance order.
type BuildingGroup struct {
	Name  string
	Rooms []RoomGroup

	index map[string]int
}

// Zone returns the building's campus zone, or ZoneNone if unknown.
func (b BuildingGroup) Zone() Zone {
	zone, _ := ZoneOf(b.Name)
	return zone
}

// Room returns the group for a base room number.
func (b BuildingGroup) Room(base string) (RoomGroup, bool) {
	i, ok := b.index[base]
	if !ok {
		return RoomGroup{}, false
	}
	return b.Rooms[i], true
}

// Grouped is the building → room → beds view of a record list.
type Grouped struct {
	Buildings []BuildingGroup

	index map[string]int
}

// Building returns the group for a building name.
func (g Grouped) Building(name string) (BuildingGroup, bool) {
	i, ok := g.index[name]
	if !ok {
		return BuildingGroup{}, false
	}
	return g.Buildings[i], true
}

// Len returns the number of buildings.
func (g Grouped) Len() int {
	return len(g.Buildings)
}

// Stats summarises a grouped view.
type Stats struct {
	Buildings int
	Rooms     int
	Beds      int
}

// Stats counts buildings, room groups and available beds.
func (g Grouped) Stats() Stats {
	s := Stats{Buildings: len(g.Buildings)}
	for _, b := range g.Buildings {
		s.Rooms += len(b.Rooms)
		for _, r := range b.Rooms {
			s.Beds += len(r.Beds)
		}
	}
	return s
}

// BaseRoomNumber strips a single trailing bed letter (A-G, any case) from a
// room number: "305A" → "305", "7g" → "7", "12" → "12".
func BaseRoomNumber(roomNumber string) string {
	n := len(roomNumber)
	if n == 0 {
		return roomNumber
	}
	switch c := roomNumber[n-1]; {
	case 'A' <= c && c <= 'G', 'a' <= c && c <= 'g':
		return roomNumber[:n-1]
	}
	return roomNumber
}

// Group buckets records by building then base room number. Buildings, rooms
// and beds all keep the order in which they first appear in records.
func Group(records []housing.Room) Grouped {
	g := Grouped{index: make(map[string]int)}
	for _, room := range records {
		bi, ok := g.index[room.BuildingName]
		if !ok {
			bi = len(g.Buildings)
			g.index[room.BuildingName] = bi
			g.Buildings = append(g.Buildings, BuildingGroup{
				Name:  room.BuildingName,
				index: make(map[string]int),
			})
		}
		b := &g.Buildings[bi]

		base := BaseRoomNumber(room.RoomNumber)
		ri, ok := b.index[base]
		if !ok {
			ri = len(b.Rooms)
			b.index[base] = ri
			b.Rooms = append(b.Rooms, RoomGroup{BaseNumber: base})
		}
		b.Rooms[ri].Beds = append(b.Rooms[ri].Beds, room)
	}
	return g
}

// PruneByMinBeds drops room groups with fewer than minBeds available beds and
// then any building left without rooms. minBeds <= 0 returns g unchanged. The
// input is never modified.
func PruneByMinBeds(g Grouped, minBeds int) Grouped {
	if minBeds <= 0 {
		return g
	}
	out := Grouped{index: make(map[string]int)}
	for _, b := range g.Buildings {
		kept := BuildingGroup{Name: b.Name, index: make(map[string]int)}
		for _, r := range b.Rooms {
			if r.AvailableBeds() < minBeds {
				continue
			}
			kept.index[r.BaseNumber] = len(kept.Rooms)
			kept.Rooms = append(kept.Rooms, r)
		}
		if len(kept.Rooms) == 0 {
			continue
		}
		out.index[kept.Name] = len(out.Buildings)
		out.Buildings = append(out.Buildings, kept)
	}
	return out
}

// Build runs the whole pipeline: filter, group, then prune by minimum beds.
func Build(records []housing.Room, f Filter) Grouped {
	return PruneByMinBeds(Group(Apply(records, f)), f.MinBeds)
}
