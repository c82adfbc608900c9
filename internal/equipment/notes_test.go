package equipment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendNoteToEmptyLog(t *testing.T) {
	at := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)

	got := AppendNote("", "Belt slipping", at)
	assert.Equal(t, "Belt slipping (Logged: 2024-06-01 10:30:00)", got)
}

func TestAppendNotePreservesOrder(t *testing.T) {
	first := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
	second := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)

	log := AppendNote("", "Belt slipping", first)
	log = AppendNote(log, "Belt replaced", second)

	entries := ParseNotes(log)
	require.Len(t, entries, 2)
	assert.Equal(t, "Belt slipping", entries[0].Description)
	assert.Equal(t, "2024-06-01 10:30:00", entries[0].LoggedAt)
	assert.Equal(t, "Belt replaced", entries[1].Description)
	assert.Equal(t, "2024-06-02 09:00:00", entries[1].LoggedAt)
}

func TestParseNotesWithoutTimestamp(t *testing.T) {
	entries := ParseNotes("legacy note without suffix")
	require.Len(t, entries, 1)
	assert.Equal(t, "legacy note without suffix", entries[0].Description)
	assert.Empty(t, entries[0].LoggedAt)
}

func TestParseNotesEmpty(t *testing.T) {
	assert.Nil(t, ParseNotes(""))
}

func TestParseNotesSkipsBlankLines(t *testing.T) {
	entries := ParseNotes("one\n\ntwo")
	require.Len(t, entries, 2)
	assert.Equal(t, "one", entries[0].Description)
	assert.Equal(t, "two", entries[1].Description)
}
