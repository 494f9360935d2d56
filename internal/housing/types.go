package housing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

const (
	feedTimestampLayout = "2006-01-02 15:04:05"
	feedLocalISOLayout  = "2006-01-02T15:04:05"
)

// Room is one available bed slot as published by the housing feed. A physical
// room with four open beds appears as four Rooms sharing a base room number.
type Room struct {
	BuildingName string
	RoomNumber   string
	Gender       string
	Capacity     string
	Term         string
	LastUpdated  string
}

// UnmarshalJSON decodes a feed record without trusting its schema. Strings are
// kept as-is, numbers keep their literal text, booleans become "true"/"false",
// and anything else (null, objects, arrays, missing keys) becomes "". The
// record itself must be a JSON object.
func (r *Room) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("room record is not an object: %.20s", trimmed)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = Room{
		BuildingName: coerceField(raw["BuildingName"]),
		RoomNumber:   coerceField(raw["RoomNumber"]),
		Gender:       coerceField(raw["Gender"]),
		Capacity:     coerceField(raw["Capacity"]),
		Term:         coerceField(raw["Term"]),
		LastUpdated:  coerceField(raw["LastUpdated"]),
	}
	return nil
}

// MarshalJSON writes the record back in the feed's field naming.
func (r Room) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		"BuildingName": r.BuildingName,
		"RoomNumber":   r.RoomNumber,
		"Gender":       r.Gender,
		"Capacity":     r.Capacity,
		"Term":         r.Term,
		"LastUpdated":  r.LastUpdated,
	})
}

// SearchFields returns the values free-text search matches against, in a
// fixed order.
func (r Room) SearchFields() [6]string {
	return [6]string{r.BuildingName, r.RoomNumber, r.Gender, r.Capacity, r.Term, r.LastUpdated}
}

// ParsedLastUpdated returns LastUpdated as time.Time, or the zero time when the
// value is missing or in an unknown layout.
func (r Room) ParsedLastUpdated() time.Time {
	return parseTime(r.LastUpdated)
}

// LatestUpdate returns the most recent parseable LastUpdated across rooms.
// ok is false when no record carries a usable timestamp.
func LatestUpdate(rooms []Room) (latest time.Time, ok bool) {
	for _, room := range rooms {
		t := room.ParsedLastUpdated()
		if t.IsZero() {
			continue
		}
		if !ok || t.After(latest) {
			latest = t
			ok = true
		}
	}
	return latest, ok
}

func coerceField(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return ""
		}
		return s
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return ""
		}
		return strconv.FormatBool(b)
	case 'n', '{', '[':
		return ""
	default:
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return ""
		}
		return n.String()
	}
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	for _, layout := range []string{feedLocalISOLayout, feedTimestampLayout} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}
