package options

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	got, err := parseTime("--start", "2015-01-15")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2015, 1, 15, 0, 0, 0, 0, time.UTC), *got)

	got, err = parseTime("--start", "2015-01-15T06:30:00")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2015, 1, 15, 6, 30, 0, 0, time.UTC), *got)

	// Absent means the per-station default applies downstream.
	got, err = parseTime("--start", "")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = parseTime("--start", "January 15th")
	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "--start", validationErr.Flag)
}

func TestResolveTimeRange(t *testing.T) {
	db := testDB(t)

	cfg, _, err := runCalc(t, "--start", "2015-01-01", "--end", "2016-01-01", db)
	require.NoError(t, err)
	require.NotNil(t, cfg.Start)
	require.NotNil(t, cfg.End)
	assert.True(t, cfg.Start.Before(*cfg.End))

	_, _, err = runCalc(t, "--end", "not-a-time", db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--end")
}
