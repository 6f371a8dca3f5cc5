package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlot(t *testing.T) {
	cases := []struct {
		label  string
		hour   int
		minute int
	}{
		{"09:00 AM", 9, 0},
		{"11:00 AM", 11, 0},
		{"12:00 PM", 12, 0},
		{"12:00 AM", 0, 0},
		{"02:00 PM", 14, 0},
		{"06:00 PM", 18, 0},
		{"12:30 PM", 12, 30},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			hour, minute, err := ParseSlot(tc.label)
			require.NoError(t, err)
			assert.Equal(t, tc.hour, hour)
			assert.Equal(t, tc.minute, minute)
		})
	}
}

func TestParseSlotRejectsMalformedLabels(t *testing.T) {
	for _, label := range []string{"", "10:00", "10 AM", "25:00 PM", "10:99 AM", "10:00 XM"} {
		_, _, err := ParseSlot(label)
		assert.Error(t, err, "label %q", label)
	}
}

func TestIsValidSlot(t *testing.T) {
	for _, label := range TimeSlots {
		assert.True(t, IsValidSlot(label))
	}
	assert.False(t, IsValidSlot("01:00 PM"))
	assert.False(t, IsValidSlot("07:00 PM"))
	assert.False(t, IsValidSlot(""))
}

func TestCombineDateSlot(t *testing.T) {
	when, err := CombineDateSlot("2024-06-01", "10:00 AM")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.June, 1, 10, 0, 0, 0, time.Local), when)

	when, err = CombineDateSlot("2024-06-01", "02:00 PM")
	require.NoError(t, err)
	assert.Equal(t, 14, when.Hour())

	_, err = CombineDateSlot("06/01/2024", "10:00 AM")
	assert.Error(t, err)
}
