package rooms

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/bedboard/internal/housing"
)

func bed(building, number, capacity string) housing.Room {
	return housing.Room{BuildingName: building, RoomNumber: number, Gender: "Male", Capacity: capacity, Term: "Fall"}
}

func TestBaseRoomNumber(t *testing.T) {
	cases := map[string]string{
		"305A": "305",
		"305g": "305",
		"7g":   "7",
		"12":   "12",
		"12H":  "12H",
		"B":    "",
		"":     "",
		"4-2C": "4-2",
	}
	for in, want := range cases {
		assert.Equal(t, want, BaseRoomNumber(in), in)
	}
}

func TestGroup_FirstAppearanceOrder(t *testing.T) {
	records := []housing.Room{
		bed("Smith", "210B", "Double"),
		bed("Glenn", "101A", "Double"),
		bed("Smith", "110A", "Double"),
		bed("Smith", "210A", "Double"),
		bed("Glenn", "101B", "Double"),
	}
	g := Group(records)

	require.Equal(t, 2, g.Len())
	assert.Equal(t, "Smith", g.Buildings[0].Name)
	assert.Equal(t, "Glenn", g.Buildings[1].Name)

	smith := g.Buildings[0]
	require.Len(t, smith.Rooms, 2)
	assert.Equal(t, "210", smith.Rooms[0].BaseNumber)
	assert.Equal(t, "110", smith.Rooms[1].BaseNumber)
	assert.Equal(t, []string{"B", "A"}, smith.Rooms[0].BedLetters())

	room, ok := smith.Room("210")
	require.True(t, ok)
	assert.Equal(t, 2, room.AvailableBeds())

	_, ok = smith.Room("999")
	assert.False(t, ok)

	glenn, ok := g.Building("Glenn")
	require.True(t, ok)
	assert.Equal(t, ZoneEast, glenn.Zone())

	_, ok = g.Building("Nowhere")
	assert.False(t, ok)

	assert.Equal(t, Stats{Buildings: 2, Rooms: 3, Beds: 5}, g.Stats())
}

func TestGroup_EveryRecordLandsOnce(t *testing.T) {
	records := sampleRooms()
	g := Group(records)
	assert.Equal(t, len(records), g.Stats().Beds)

	var regrouped []housing.Room
	for _, b := range g.Buildings {
		for _, r := range b.Rooms {
			for _, bed := range r.Beds {
				assert.Equal(t, b.Name, bed.BuildingName)
				assert.Equal(t, r.BaseNumber, BaseRoomNumber(bed.RoomNumber))
				regrouped = append(regrouped, bed)
			}
		}
	}
	assert.ElementsMatch(t, records, regrouped)
}

func TestGroup_Empty(t *testing.T) {
	g := Group(nil)
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, Stats{}, g.Stats())
}

func TestPruneByMinBeds(t *testing.T) {
	records := []housing.Room{
		bed("Glenn", "101A", "Triple"),
		bed("Glenn", "101B", "Triple"),
		bed("Glenn", "102A", "Triple"),
		bed("Smith", "301A", "Double"),
	}
	g := Group(records)

	assert.Equal(t, g, PruneByMinBeds(g, 0))
	assert.Equal(t, g, PruneByMinBeds(g, -3))

	pruned := PruneByMinBeds(g, 2)
	require.Equal(t, 1, pruned.Len())
	assert.Equal(t, "Glenn", pruned.Buildings[0].Name)
	require.Len(t, pruned.Buildings[0].Rooms, 1)
	assert.Equal(t, "101", pruned.Buildings[0].Rooms[0].BaseNumber)
	_, ok := pruned.Buildings[0].Room("101")
	assert.True(t, ok)
	_, ok = pruned.Building("Smith")
	assert.False(t, ok)

	// input untouched
	assert.Equal(t, 2, g.Len())
	assert.Len(t, g.Buildings[0].Rooms, 2)

	assert.Equal(t, 0, PruneByMinBeds(g, 3).Len())
}

func TestAggregates(t *testing.T) {
	t.Run("quad with three open beds", func(t *testing.T) {
		r := RoomGroup{BaseNumber: "210", Beds: []housing.Room{
			bed("Fitten", "210A", "Quad"),
			bed("Fitten", "210B", "Quad"),
			bed("Fitten", "210C", "Quad"),
		}}
		assert.Equal(t, 3, r.AvailableBeds())
		assert.Equal(t, 4, r.TotalBeds())
		assert.Equal(t, "3/4 beds available", r.AvailabilityString())
		pct, ok := r.Percentage()
		require.True(t, ok)
		assert.InDelta(t, 75.0, pct, 1e-9)
		assert.Equal(t, SeverityHigh, r.Severity())
	})

	t.Run("fully open double", func(t *testing.T) {
		r := RoomGroup{BaseNumber: "101", Beds: []housing.Room{
			bed("Glenn", "101A", "Double"),
			bed("Glenn", "101B", "Double"),
		}}
		assert.Equal(t, "2/2 beds available", r.AvailabilityString())
		pct, ok := r.Percentage()
		require.True(t, ok)
		assert.InDelta(t, 100.0, pct, 1e-9)
		assert.Equal(t, SeverityHigh, r.Severity())
		assert.Equal(t, "Male", r.Gender())
		assert.Equal(t, "Fall", r.Term())
		assert.Equal(t, "Double", r.Capacity())
	})

	t.Run("one of six", func(t *testing.T) {
		r := RoomGroup{Beds: []housing.Room{bed("Brown", "400A", "6 person")}}
		pct, ok := r.Percentage()
		require.True(t, ok)
		assert.InDelta(t, 100.0/6, pct, 1e-9)
		assert.Equal(t, SeverityLow, r.Severity())
	})

	t.Run("unknown capacity", func(t *testing.T) {
		r := RoomGroup{Beds: []housing.Room{bed("Mystery Hall", "12", "Studio")}}
		assert.Equal(t, 0, r.TotalBeds())
		assert.Equal(t, "1/0 beds available", r.AvailabilityString())
		pct, ok := r.Percentage()
		assert.False(t, ok)
		assert.Zero(t, pct)
		assert.Equal(t, SeverityUnknown, r.Severity())
	})

	t.Run("empty group", func(t *testing.T) {
		var r RoomGroup
		assert.Equal(t, 0, r.AvailableBeds())
		assert.Equal(t, "", r.Gender())
		assert.Equal(t, "", r.Term())
		assert.Equal(t, "", r.Capacity())
		assert.Empty(t, r.BedLetters())
		assert.Equal(t, SeverityUnknown, r.Severity())
	})
}

func TestClassify(t *testing.T) {
	cases := []struct {
		pct  float64
		want Severity
	}{
		{100, SeverityHigh},
		{75, SeverityHigh},
		{74.99, SeverityMediumHigh},
		{50, SeverityMediumHigh},
		{49.9, SeverityMediumLow},
		{25, SeverityMediumLow},
		{24.9, SeverityLow},
		{0, SeverityLow},
		{-10, SeverityLow},
		{150, SeverityHigh},
		{math.Inf(1), SeverityHigh},
		{math.Inf(-1), SeverityLow},
		{math.NaN(), SeverityUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.pct), "pct=%v", tc.pct)
	}

	assert.Equal(t, "high", SeverityHigh.String())
	assert.Equal(t, "medium-high", SeverityMediumHigh.String())
	assert.Equal(t, "medium-low", SeverityMediumLow.String())
	assert.Equal(t, "low", SeverityLow.String())
	assert.Equal(t, "unknown", SeverityUnknown.String())
	assert.Len(t, Severities, 5)
}

func TestBuild_EndToEnd(t *testing.T) {
	records := []housing.Room{
		{BuildingName: "Glenn", RoomNumber: "101A", Gender: "Male", Capacity: "Double", Term: "Fall"},
		{BuildingName: "Glenn", RoomNumber: "101B", Gender: "Male", Capacity: "Double", Term: "Fall"},
		{BuildingName: "Fitten", RoomNumber: "210A", Gender: "Female", Capacity: "Quad", Term: "Fall"},
		{BuildingName: "Smith", RoomNumber: "5A", Gender: "DynamicGender", Capacity: "Triple", Term: "Fall"},
	}

	g := Build(records, Filter{Gender: GenderMale, Zone: ZoneEast, MinBeds: 2})
	require.Equal(t, 1, g.Len())
	glenn := g.Buildings[0]
	assert.Equal(t, "Glenn", glenn.Name)
	require.Len(t, glenn.Rooms, 1)
	assert.Equal(t, "2/2 beds available", glenn.Rooms[0].AvailabilityString())

	all := Build(records, Filter{})
	assert.Equal(t, Stats{Buildings: 3, Rooms: 3, Beds: 4}, all.Stats())
}
