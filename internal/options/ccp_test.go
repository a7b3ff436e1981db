package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCCPRequiresStep(t *testing.T) {
	_, _, err := runCCP(t, testDB(t))
	require.Error(t, err)
	var usageErr *UsageError
	require.ErrorAs(t, err, &usageErr)
	assert.Contains(t, err.Error(), "at least one CCP step")
}

func TestCCPLoadRequiresLine(t *testing.T) {
	db := testDB(t)

	_, _, err := runCCP(t, "--load", db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--start=lat,lon is required")

	_, _, err = runCCP(t, "--load", "--start", "48.5,-123.2", db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--end=lat,lon is required")

	cfg, _, err := runCCP(t, "--load", "--start", "48.5,-123.2", "--end", "50.1,-120.7", db)
	require.NoError(t, err)
	// Coordinates keep the user order, they are not sorted.
	require.NotNil(t, cfg.LineStart)
	assert.Equal(t, Coord{Lat: 48.5, Lon: -123.2}, *cfg.LineStart)
	assert.Equal(t, Coord{Lat: 50.1, Lon: -120.7}, *cfg.LineEnd)
}

func TestCCPLineArity(t *testing.T) {
	_, _, err := runCCP(t, "--load", "--start", "48.5", "--end", "50.1,-120.7", testDB(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--start")
}

func TestCCPStackTypeConflict(t *testing.T) {
	_, _, err := runCCP(t, "--ccp", "--linear", "--phase", testDB(t))
	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "--linear and --phase")
}

func TestCCPStackTypeDefaults(t *testing.T) {
	db := testDB(t)

	// ccp defaults to a linear stack, gccp to a phase-weighted one.
	cfg, _, err := runCCP(t, "--ccp", db)
	require.NoError(t, err)
	assert.True(t, cfg.Linear)
	assert.False(t, cfg.PhaseWeighted)

	cfg, _, err = runCCP(t, "--gccp", db)
	require.NoError(t, err)
	assert.False(t, cfg.Linear)
	assert.True(t, cfg.PhaseWeighted)

	cfg, _, err = runCCP(t, "--gccp", "--linear", db)
	require.NoError(t, err)
	assert.True(t, cfg.Linear)
	assert.False(t, cfg.PhaseWeighted)
}

func TestCCPColorBoundDefaults(t *testing.T) {
	db := testDB(t)

	cfg, _, err := runCCP(t, "--ccp", db)
	require.NoError(t, err)
	assert.Equal(t, 0.05, cfg.CBound)

	cfg, _, err = runCCP(t, "--gccp", db)
	require.NoError(t, err)
	assert.Equal(t, 0.015, cfg.CBound)

	cfg, _, err = runCCP(t, "--gccp", "--cbound", "0.2", db)
	require.NoError(t, err)
	assert.Equal(t, 0.2, cfg.CBound)
}

func TestCCPFigure(t *testing.T) {
	db := testDB(t)

	// A figure needs a stacking step to draw.
	_, _, err := runCCP(t, "--prep", "--figure", db)
	require.Error(t, err)
	var usageErr *UsageError
	require.ErrorAs(t, err, &usageErr)

	// Figure flags without --figure warn but do not fail.
	buf := captureLog(t)
	cfg, _, err := runCCP(t, "--ccp", "--save-fig", db)
	require.NoError(t, err)
	assert.False(t, cfg.Figure)
	assert.Contains(t, buf.String(), "figure will not be produced")
}

func TestCCPPrestackOnly(t *testing.T) {
	cfg, _, err := runCCP(t, "--prestack", testDB(t))
	require.NoError(t, err)
	assert.True(t, cfg.Prestack)
	assert.False(t, cfg.Linear)
	assert.False(t, cfg.PhaseWeighted)
	assert.Zero(t, cfg.CBound)
}
