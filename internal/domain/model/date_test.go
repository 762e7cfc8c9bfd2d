package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysUntil(t *testing.T) {
	from, err := ParseDate("2026-08-28")
	require.NoError(t, err)
	to, err := ParseDate("2026-09-07")
	require.NoError(t, err)

	assert.Equal(t, 10, from.DaysUntil(to))
	assert.Equal(t, -10, to.DaysUntil(from))
	assert.Equal(t, 0, from.DaysUntil(from))
}

func TestDaysUntilAcrossLocations(t *testing.T) {
	// A local midnight west of UTC is an instant after the same day's UTC
	// midnight; the count must still be exact calendar days.
	west := time.FixedZone("UTC-5", -5*3600)
	today := NewDate(time.Date(2026, 8, 28, 0, 0, 0, 0, west))

	exam, err := ParseDate("2026-08-29") // UTC, as database scans produce
	require.NoError(t, err)

	assert.Equal(t, 1, today.DaysUntil(exam))
	assert.Equal(t, 0, today.DaysUntil(NewDate(time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC))))

	east := time.FixedZone("UTC+5:30", 5*3600+1800)
	assert.Equal(t, 1, NewDate(time.Date(2026, 8, 28, 0, 0, 0, 0, east)).DaysUntil(exam))
}
