package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = LoadLocation("UTC")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = LoadLocation("Mars/Olympus_Mons")
	assert.Error(t, err)
}

func TestStartOfDay_UsesLocation(t *testing.T) {
	plus5 := time.FixedZone("UTC+5", 5*60*60)
	// 21:30 UTC on March 1 is already March 2 at UTC+5.
	ts := time.Date(2024, 3, 1, 21, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), StartOfDay(ts, time.UTC))
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, plus5), StartOfDay(ts, plus5))
	assert.Equal(t, "2024-03-02", FormatDateStr(ts, plus5))
	assert.Equal(t, "2024-03-01", FormatDateStr(ts, time.UTC))
}

func TestFormatDateStr_NilLocation(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-03-01", FormatDateStr(ts, nil))
}
