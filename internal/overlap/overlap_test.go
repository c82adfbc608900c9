package overlap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clock(t *testing.T, s string) time.Time {
	t.Helper()
	tm, err := time.Parse("15:04", s)
	if err != nil {
		t.Fatalf("bad clock literal %q: %v", s, err)
	}
	return tm
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"identical", "09:00", "10:00", "09:00", "10:00", true},
		{"contained", "09:00", "12:00", "10:00", "11:00", true},
		{"partial left", "09:00", "10:30", "10:00", "11:00", true},
		{"partial right", "10:30", "12:00", "10:00", "11:00", true},
		{"touching end to start", "09:00", "10:00", "10:00", "11:00", false},
		{"touching start to end", "10:00", "11:00", "09:00", "10:00", false},
		{"disjoint", "09:00", "10:00", "14:00", "15:00", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(clock(t, tc.aStart), clock(t, tc.aEnd), clock(t, tc.bStart), clock(t, tc.bEnd))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAnyConflict(t *testing.T) {
	existing := []Interval{
		{ID: 1, Start: clock(t, "09:00"), End: clock(t, "10:00")},
		{ID: 2, Start: clock(t, "13:00"), End: clock(t, "15:00")},
	}

	// Touching endpoints do not conflict.
	assert.False(t, AnyConflict(existing, Interval{Start: clock(t, "10:00"), End: clock(t, "11:00")}, 0))

	// Straddling a window does.
	assert.True(t, AnyConflict(existing, Interval{Start: clock(t, "09:30"), End: clock(t, "10:30")}, 0))
	assert.True(t, AnyConflict(existing, Interval{Start: clock(t, "14:00"), End: clock(t, "14:30")}, 0))

	assert.False(t, AnyConflict(nil, Interval{Start: clock(t, "09:00"), End: clock(t, "10:00")}, 0))
}

func TestAnyConflictExcludesSelf(t *testing.T) {
	existing := []Interval{
		{ID: 7, Start: clock(t, "09:00"), End: clock(t, "10:00")},
	}

	// Updating window 7 in place must not conflict with its own row.
	candidate := Interval{ID: 7, Start: clock(t, "09:00"), End: clock(t, "10:30")}
	assert.False(t, AnyConflict(existing, candidate, 7))
	assert.True(t, AnyConflict(existing, candidate, 0))
}
