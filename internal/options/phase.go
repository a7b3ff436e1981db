package options

import (
	"github.com/urfave/cli/v3"
)

// Phase is a teleseismic phase used to select event-station geometries.
type Phase string

const (
	PhaseP   Phase = "P"
	PhasePP  Phase = "PP"
	PhaseS   Phase = "S"
	PhaseSKS Phase = "SKS"
)

// phaseEnvelope holds the canonical epicentral distance interval (degrees)
// for each phase. User-supplied bounds must lie within it.
var phaseEnvelope = map[Phase]Bound{
	PhaseP:   {30., 100.},
	PhasePP:  {100., 180.},
	PhaseS:   {55., 85.},
	PhaseSKS: {85., 115.},
}

// parsePhase checks a concrete phase name.
func parsePhase(raw string) (Phase, error) {
	switch p := Phase(raw); p {
	case PhaseP, PhasePP, PhaseS, PhaseSKS:
		return p, nil
	}
	return "", invalidf("--phase", "unknown phase %q, choose between P, PP, S and SKS", raw)
}

// parsePhaseList checks a phase selection that may be an aggregate; allP
// expands to [P, PP] and allS to [S, SKS].
func parsePhaseList(raw string) ([]Phase, error) {
	switch raw {
	case "allP":
		return []Phase{PhaseP, PhasePP}, nil
	case "allS":
		return []Phase{PhaseS, PhaseSKS}, nil
	case string(PhaseP), string(PhasePP), string(PhaseS), string(PhaseSKS):
		return []Phase{Phase(raw)}, nil
	}
	return nil, invalidf("--phase", "unknown phase %q, choose between P, PP, allP, S, SKS and allS", raw)
}

// resolveDistance applies the phase-dependent distance defaults and rejects
// user bounds that fall outside the canonical interval.
func resolveDistance(cmd *cli.Command, phase Phase) (Bound, error) {
	env := phaseEnvelope[phase]
	min, max := env.Low(), env.High()
	if cmd.IsSet("mindist") {
		min = cmd.Float("mindist")
	}
	if cmd.IsSet("maxdist") {
		max = cmd.Float("maxdist")
	}
	if min > max {
		return Bound{}, invalidf("--mindist/--maxdist",
			"minimum distance %g exceeds maximum distance %g", min, max)
	}
	if min < env.Low() || max > env.High() {
		return Bound{}, invalidf("--mindist/--maxdist",
			"distances should be between %g and %g deg for teleseismic %s waves",
			env.Low(), env.High(), phase)
	}
	return Bound{min, max}, nil
}
