package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Logs       key.Binding
	Escape     key.Binding

	// Filters
	Search       key.Binding
	NextBuilding key.Binding
	PrevBuilding key.Binding
	CycleGender  key.Binding
	CycleZone    key.Binding
	MoreBeds     key.Binding
	FewerBeds    key.Binding
	ClearFilters key.Binding

	// Polling
	Refresh         key.Binding
	LongerInterval  key.Binding
	ShorterInterval key.Binding

	// Navigation
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding

	// Logs
	ToggleFollow key.Binding

	// Search input
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "Q"),
			key.WithHelp("Q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Logs: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Session log"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back to rooms"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		NextBuilding: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "Next building"),
		),
		PrevBuilding: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "Previous building"),
		),
		CycleGender: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "Cycle gender"),
		),
		CycleZone: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "Cycle zone"),
		),
		MoreBeds: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "More min beds"),
		),
		FewerBeds: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Fewer min beds"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Clear filters"),
		),

		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Refresh now"),
		),
		LongerInterval: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Longer interval"),
		),
		ShorterInterval: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Shorter interval"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "Go to bottom"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown"),
			key.WithHelp("ctrl+d", "Half page down"),
		),

		ToggleFollow: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Toggle follow mode"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}

// FullHelp returns key bindings grouped for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.NextBuilding, k.PrevBuilding, k.CycleGender, k.CycleZone, k.MoreBeds, k.FewerBeds, k.ClearFilters},
		{k.Refresh, k.LongerInterval, k.ShorterInterval},
		{k.Down, k.Up, k.HalfPageDown, k.HalfPageUp, k.Top, k.Bottom},
		{k.Logs, k.ToggleFollow, k.Escape},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
