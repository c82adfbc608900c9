package equipment

import (
	"fmt"
	"strings"
	"time"
)

// NoteEntry is one timestamped line of an equipment maintenance log.
type NoteEntry struct {
	Description string `json:"description"`
	LoggedAt    string `json:"logged_at,omitempty"`
}

const (
	noteSuffixOpen  = " (Logged: "
	noteSuffixClose = ")"
	noteTimeLayout  = "2006-01-02 15:04:05"
)

// FormatNote renders one maintenance-log line.
func FormatNote(description string, at time.Time) string {
	return fmt.Sprintf("%s%s%s%s", description, noteSuffixOpen, at.Format(noteTimeLayout), noteSuffixClose)
}

// AppendNote adds a line to a newline-separated maintenance log.
func AppendNote(notes, description string, at time.Time) string {
	line := FormatNote(description, at)
	if notes == "" {
		return line
	}
	return notes + "\n" + line
}

// ParseNotes splits a maintenance log back into its entries, oldest
// first. Lines without a timestamp suffix keep their full text as the
// description.
func ParseNotes(notes string) []NoteEntry {
	if notes == "" {
		return nil
	}

	var entries []NoteEntry
	for _, line := range strings.Split(notes, "\n") {
		if line == "" {
			continue
		}

		entry := NoteEntry{Description: line}
		if idx := strings.LastIndex(line, noteSuffixOpen); idx >= 0 && strings.HasSuffix(line, noteSuffixClose) {
			entry.Description = line[:idx]
			entry.LoggedAt = strings.TrimSuffix(line[idx+len(noteSuffixOpen):], noteSuffixClose)
		}
		entries = append(entries, entry)
	}

	return entries
}
