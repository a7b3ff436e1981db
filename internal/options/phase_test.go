package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePhase(t *testing.T) {
	for _, raw := range []string{"P", "PP", "S", "SKS"} {
		p, err := parsePhase(raw)
		require.NoError(t, err)
		assert.Equal(t, Phase(raw), p)
	}

	_, err := parsePhase("ScS")
	require.Error(t, err)

	// Aggregates are only valid where a phase list is expected.
	_, err = parsePhase("allP")
	require.Error(t, err)
}

func TestParsePhaseList(t *testing.T) {
	phases, err := parsePhaseList("allP")
	require.NoError(t, err)
	assert.Equal(t, []Phase{PhaseP, PhasePP}, phases)

	phases, err = parsePhaseList("allS")
	require.NoError(t, err)
	assert.Equal(t, []Phase{PhaseS, PhaseSKS}, phases)

	phases, err = parsePhaseList("SKS")
	require.NoError(t, err)
	assert.Equal(t, []Phase{PhaseSKS}, phases)

	_, err = parsePhaseList("allX")
	require.Error(t, err)
}

func TestPhaseEnvelopes(t *testing.T) {
	assert.Equal(t, Bound{30., 100.}, phaseEnvelope[PhaseP])
	assert.Equal(t, Bound{100., 180.}, phaseEnvelope[PhasePP])
	assert.Equal(t, Bound{55., 85.}, phaseEnvelope[PhaseS])
	assert.Equal(t, Bound{85., 115.}, phaseEnvelope[PhaseSKS])
}
