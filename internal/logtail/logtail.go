package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns the whole file. A missing file yields no
// lines and no error.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one decoded line of the session log.
type Entry struct {
	Time    time.Time
	Level   string // upper case: DEBUG, INFO, WARN, ERROR
	Logger  string
	Message string
	Fields  map[string]string
}

// fields the encoder always writes; everything else is a context field.
var reservedKeys = map[string]struct{}{
	"timestamp":  {},
	"level":      {},
	"logger":     {},
	"msg":        {},
	"caller":     {},
	"stacktrace": {},
	"session_id": {},
}

// Parse decodes a JSON log line. ok is false for lines that are not JSON
// objects.
func Parse(line string) (entry Entry, ok bool) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{}, false
	}

	if ts, _ := raw["timestamp"].(string); ts != "" {
		for _, layout := range []string{"2006-01-02T15:04:05.000Z0700", time.RFC3339Nano} {
			if t, err := time.Parse(layout, ts); err == nil {
				entry.Time = t
				break
			}
		}
	}
	level, _ := raw["level"].(string)
	entry.Level = strings.ToUpper(strings.TrimSpace(level))
	if entry.Level == "" {
		entry.Level = "INFO"
	}
	entry.Logger, _ = raw["logger"].(string)
	entry.Message, _ = raw["msg"].(string)

	for k, v := range raw {
		if _, skip := reservedKeys[k]; skip {
			continue
		}
		if entry.Fields == nil {
			entry.Fields = make(map[string]string)
		}
		entry.Fields[k] = fieldString(v)
	}
	return entry, true
}

func fieldString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return "null"
	case float64, bool:
		return fmt.Sprint(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}

// Format renders an entry as a single display line:
//
//	2026-10-16 12:00:00 INFO [session] – fetch complete rooms=12 seq=3
//
// Fields are sorted by key.
func Format(e Entry) string {
	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(e.Time.In(time.Local).Format("2006-01-02 15:04:05"))
		b.WriteByte(' ')
	}
	b.WriteString(e.Level)
	if e.Logger != "" {
		b.WriteString(" [")
		b.WriteString(e.Logger)
		b.WriteByte(']')
	}
	if e.Message != "" {
		b.WriteString(" – ")
		b.WriteString(e.Message)
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(e.Fields[k])
	}
	return b.String()
}

// FormatLines formats each JSON line for display. Lines that do not parse are
// passed through unchanged.
func FormatLines(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if entry, ok := Parse(line); ok {
			out = append(out, Format(entry))
			continue
		}
		out = append(out, line)
	}
	return out
}
