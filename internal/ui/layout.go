package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100

	// LayoutWideWidth is the minimum width to show the term and capacity columns.
	LayoutWideWidth = 120
)

// Filter limits.
const (
	// MaxMinBeds caps the minimum-beds filter at the largest room size.
	MaxMinBeds = 7

	// SearchDisplayLimit is the longest search query shown in the filter bar.
	SearchDisplayLimit = 24
)

// Log display limits.
const (
	// LogTailLines is the number of session log lines read per refresh.
	LogTailLines = 2000
)

// Timing constants.
const (
	// DefaultUIInterval is the default UI refresh interval.
	DefaultUIInterval = time.Second
)
