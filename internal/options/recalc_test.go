package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecalcDefaults(t *testing.T) {
	cfg, _, err := runRecalc(t, testDB(t))
	require.NoError(t, err)

	// allP is the default selection and expands to both P phases.
	assert.Equal(t, []Phase{PhaseP, PhasePP}, cfg.Phases)
	assert.Equal(t, AlignZRT, cfg.Align)
	assert.Equal(t, MethodWiener, cfg.Method)
	assert.Equal(t, 0.05, cfg.FMin)
	assert.Equal(t, 1.0, cfg.FMax)
}

func TestRecalcPhaseExpansion(t *testing.T) {
	db := testDB(t)

	cfg, _, err := runRecalc(t, "--phase", "allS", db)
	require.NoError(t, err)
	assert.Equal(t, []Phase{PhaseS, PhaseSKS}, cfg.Phases)

	cfg, _, err = runRecalc(t, "--phase", "PP", db)
	require.NoError(t, err)
	assert.Equal(t, []Phase{PhasePP}, cfg.Phases)

	_, _, err = runRecalc(t, "--phase", "everything", db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--phase")
}

func TestRecalcMethod(t *testing.T) {
	db := testDB(t)

	cfg, _, err := runRecalc(t, "--method", "multitaper", "--gfilt", "1.5", db)
	require.NoError(t, err)
	assert.Equal(t, MethodMultitaper, cfg.Method)
	require.NotNil(t, cfg.GFilt)
	assert.Equal(t, 1.5, *cfg.GFilt)

	_, _, err = runRecalc(t, "--method", "deterministic", db)
	require.Error(t, err)
}
