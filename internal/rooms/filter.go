package rooms

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/five82/bedboard/internal/housing"
)

// Gender values with special meaning to the gender filter.
const (
	GenderMale    = "Male"
	GenderFemale  = "Female"
	GenderDynamic = "DynamicGender"
)

// Filter holds the user's filter selections. The zero value matches every
// record and prunes nothing.
type Filter struct {
	Search   string
	Building string
	Gender   string
	Zone     Zone
	MinBeds  int
}

// IsZero reports whether no constraint is set.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Apply returns the records that satisfy every record-level predicate of f,
// in input order. MinBeds is not applied here; see PruneByMinBeds.
func Apply(records []housing.Room, f Filter) []housing.Room {
	if len(records) == 0 {
		return nil
	}
	m := newMatcher(f)
	out := make([]housing.Room, 0, len(records))
	for _, room := range records {
		if m.match(room) {
			out = append(out, room)
		}
	}
	return out
}

type matcher struct {
	filter Filter
	fold   cases.Caser
	needle string
}

func newMatcher(f Filter) matcher {
	m := matcher{filter: f, fold: cases.Fold()}
	if f.Search != "" {
		m.needle = m.fold.String(f.Search)
	}
	return m
}

func (m matcher) match(room housing.Room) bool {
	return m.matchSearch(room) &&
		m.matchBuilding(room) &&
		matchesGender(m.filter.Gender, room.Gender) &&
		matchesZone(m.filter.Zone, room.BuildingName)
}

func (m matcher) matchSearch(room housing.Room) bool {
	if m.filter.Search == "" {
		return true
	}
	for _, value := range room.SearchFields() {
		if strings.Contains(m.fold.String(value), m.needle) {
			return true
		}
	}
	return false
}

func (m matcher) matchBuilding(room housing.Room) bool {
	return m.filter.Building == "" || room.BuildingName == m.filter.Building
}

// matchesGender treats dynamic-gender rooms as open to both binary genders.
func matchesGender(selected, gender string) bool {
	switch selected {
	case "":
		return true
	case GenderMale, GenderFemale:
		return gender == selected || gender == GenderDynamic
	default:
		return gender == selected
	}
}

func matchesZone(selected Zone, building string) bool {
	if selected == ZoneNone {
		return true
	}
	zone, ok := ZoneOf(building)
	return ok && zone == selected
}

// Buildings returns the distinct building names in first-appearance order.
func Buildings(records []housing.Room) []string {
	return distinct(records, func(r housing.Room) string { return r.BuildingName })
}

// Genders returns the distinct gender values in first-appearance order.
func Genders(records []housing.Room) []string {
	return distinct(records, func(r housing.Room) string { return r.Gender })
}

// GenderOptions returns the selectable gender filter values: Male and Female
// first, then any other gender present in records.
func GenderOptions(records []housing.Room) []string {
	opts := []string{GenderMale, GenderFemale}
	for _, g := range Genders(records) {
		if g == GenderMale || g == GenderFemale {
			continue
		}
		opts = append(opts, g)
	}
	return opts
}

func distinct(records []housing.Room, key func(housing.Room) string) []string {
	seen := make(map[string]struct{}, len(records))
	var out []string
	for _, r := range records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
