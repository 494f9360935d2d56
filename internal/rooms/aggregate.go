package rooms

import "fmt"

// AvailableBeds is the number of open bed slots in the room.
func (r RoomGroup) AvailableBeds() int {
	return len(r.Beds)
}

// TotalBeds is the room's nominal size, taken from the capacity label of the
// last bed whose label is known. Beds of one room share a label, so this is
// the room capacity rather than a sum. Unknown labels give 0.
func (r RoomGroup) TotalBeds() int {
	total := 0
	for _, bed := range r.Beds {
		if beds, ok := CapacityBeds(bed.Capacity); ok && beds > 0 {
			total = beds
		}
	}
	return total
}

// AvailabilityString renders "<available>/<total> beds available".
func (r RoomGroup) AvailabilityString() string {
	return fmt.Sprintf("%d/%d beds available", r.AvailableBeds(), r.TotalBeds())
}

// Percentage returns the share of the room that is open, 0-100 for
// well-formed data. ok is false when the room size is unknown, in which case
// the value is 0.
func (r RoomGroup) Percentage() (pct float64, ok bool) {
	total := r.TotalBeds()
	if total == 0 {
		return 0, false
	}
	return float64(r.AvailableBeds()) / float64(total) * 100, true
}

// Severity classifies the room's availability. Rooms of unknown size are
// SeverityUnknown.
func (r RoomGroup) Severity() Severity {
	pct, ok := r.Percentage()
	if !ok {
		return SeverityUnknown
	}
	return Classify(pct)
}

// Gender is the room's gender designation, read from its first bed.
func (r RoomGroup) Gender() string {
	if len(r.Beds) == 0 {
		return ""
	}
	return r.Beds[0].Gender
}

// Term is the housing term, read from the first bed.
func (r RoomGroup) Term() string {
	if len(r.Beds) == 0 {
		return ""
	}
	return r.Beds[0].Term
}

// Capacity is the capacity label of the first bed.
func (r RoomGroup) Capacity() string {
	if len(r.Beds) == 0 {
		return ""
	}
	return r.Beds[0].Capacity
}

// BedLetters returns the last character of each bed's room number, which is
// the bed slot letter for lettered rooms.
func (r RoomGroup) BedLetters() []string {
	letters := make([]string, 0, len(r.Beds))
	for _, bed := range r.Beds {
		runes := []rune(bed.RoomNumber)
		if len(runes) == 0 {
			letters = append(letters, "")
			continue
		}
		letters = append(letters, string(runes[len(runes)-1]))
	}
	return letters
}
