package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("2025-03-10", "14:30")
	require.NoError(t, err)

	want := time.Date(2025, 3, 10, 14, 30, 0, 0, JST)
	assert.True(t, got.Equal(want))

	_, err = ParseDateTime("2025-03-10", "25:00")
	assert.Error(t, err)
}

func TestEndOfDay(t *testing.T) {
	in := time.Date(2025, 3, 10, 9, 15, 0, 0, JST)
	end := EndOfDay(in)

	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 10, end.Day())

	// A UTC instant is shifted into JST before truncation: 16:00 UTC on
	// the 10th is already the 11th in JST.
	utc := time.Date(2025, 3, 10, 16, 0, 0, 0, time.UTC)
	assert.Equal(t, 11, EndOfDay(utc).Day())
}
