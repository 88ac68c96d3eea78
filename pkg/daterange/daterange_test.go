package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

func TestFromPresetToday(t *testing.T) {
	r, err := FromPreset(PresetToday, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2025, 3, 15, 23, 59, 59, 999000000, time.UTC), r.End)
}

func TestFromPresetYesterday(t *testing.T) {
	r, err := FromPreset(PresetYesterday, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2025, 3, 14, 23, 59, 59, 999000000, time.UTC), r.End)
}

func TestFromPresetLast7DaysIncludesToday(t *testing.T) {
	r, err := FromPreset(PresetLast7Days, now)
	require.NoError(t, err)
	// 7 calendar days counting today
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), r.Start)
}

func TestFromPresetUnknown(t *testing.T) {
	_, err := FromPreset("fortnight", now)
	assert.Error(t, err)
}

func TestParseExplicitDatesWinOverPreset(t *testing.T) {
	r, err := Parse(PresetLastYear, "2025-01-01", "2025-01-31", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2025, 1, 31, 23, 59, 59, 999000000, time.UTC), r.End)
}

func TestParseRejectsHalfOpenPair(t *testing.T) {
	_, err := Parse("", "2025-01-01", "", now)
	assert.Error(t, err)
}

func TestParseRejectsInvertedRange(t *testing.T) {
	_, err := Parse("", "2025-02-01", "2025-01-01", now)
	assert.Error(t, err)
}

func TestParseDefaultsToToday(t *testing.T) {
	r, err := Parse("", "", "", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), r.Start)
}
