package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRead(t *testing.T) {
	// Create a temporary log file
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	// Write 10 lines of content
	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"read all (0)", 0, expectedAll},
		{"read all (negative)", -1, expectedAll},
		{"read partial (5)", 5, expectedAll[5:]},
		{"read exactly all (10)", 10, expectedAll},
		{"read more than exists (20)", 20, expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil || got != nil {
		t.Fatalf("Read() = %v, %v; want nil, nil", got, err)
	}
}

func TestParse(t *testing.T) {
	line := `{"level":"warn","timestamp":"2026-10-16T12:00:05.123Z","logger":"session","msg":"fetch failed","session_id":"abc","seq":3,"error":"feed returned status 502"}`

	entry, ok := Parse(line)
	if !ok {
		t.Fatal("Parse() ok = false")
	}
	want := time.Date(2026, 10, 16, 12, 0, 5, 123_000_000, time.UTC)
	if !entry.Time.Equal(want) {
		t.Fatalf("Time = %v, want %v", entry.Time, want)
	}
	if entry.Level != "WARN" || entry.Logger != "session" || entry.Message != "fetch failed" {
		t.Fatalf("entry = %#v", entry)
	}
	wantFields := map[string]string{"seq": "3", "error": "feed returned status 502"}
	if !reflect.DeepEqual(entry.Fields, wantFields) {
		t.Fatalf("Fields = %#v, want %#v", entry.Fields, wantFields)
	}

	if _, ok := Parse("plain text line"); ok {
		t.Fatal("Parse() ok = true for non-JSON line")
	}
}

func TestFormat(t *testing.T) {
	ts := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	entry := Entry{
		Time:    ts,
		Level:   "INFO",
		Logger:  "session",
		Message: "fetch complete",
		Fields:  map[string]string{"seq": "3", "rooms": "12"},
	}
	want := ts.In(time.Local).Format("2006-01-02 15:04:05") + " INFO [session] – fetch complete rooms=12 seq=3"
	if got := Format(entry); got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}

	if got := Format(Entry{Level: "DEBUG", Message: "refresh coalesced"}); got != "DEBUG – refresh coalesced" {
		t.Fatalf("Format() = %q", got)
	}
}

func TestFormatLines(t *testing.T) {
	lines := []string{
		`{"level":"info","msg":"fetch complete"}`,
		"not json",
	}
	got := FormatLines(lines)
	want := []string{"INFO – fetch complete", "not json"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FormatLines() = %#v, want %#v", got, want)
	}
	if FormatLines(nil) != nil {
		t.Fatal("FormatLines(nil) should be nil")
	}
}
