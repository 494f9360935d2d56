package ui

import "github.com/five82/bedboard/internal/rooms"

// cycleOption steps through "" (All) followed by options, wrapping at both
// ends. A current value missing from options restarts from All.
func cycleOption(options []string, current string, dir int) string {
	all := make([]string, 0, len(options)+1)
	all = append(all, "")
	all = append(all, options...)

	idx := 0
	for i, opt := range all {
		if opt == current {
			idx = i
			break
		}
	}
	n := len(all)
	return all[((idx+dir)%n+n)%n]
}

// nextZone cycles All → West → East → All.
func nextZone(current rooms.Zone) rooms.Zone {
	names := make([]string, len(rooms.Zones))
	for i, z := range rooms.Zones {
		names[i] = string(z)
	}
	return rooms.Zone(cycleOption(names, string(current), +1))
}
