package options

import (
	"github.com/urfave/cli/v3"
)

// RecalcConfig is the resolved configuration of the recalc command, which
// re-runs the deconvolution on previously downloaded data.
type RecalcConfig struct {
	Keys    []string
	Verbose bool

	Phases []Phase // aggregate selections expanded, concrete kept as-is

	Align   AlignKey
	VP      float64
	VS      float64
	DTSNR   float64
	PreFilt *Bound
	FMin    float64
	FMax    float64

	Method DeconMethod
	GFilt  *float64
	WLevel float64
}

// RecalcFlags returns the flag set of the recalc command.
func RecalcFlags() []cli.Flag {
	flags := []cli.Flag{
		keysFlag(),
		verboseFlag(),
		&cli.StringFlag{
			Name:  "phase",
			Value: "allP",
			Usage: "phase name: P, PP, allP, S, SKS or allS; mind the distance setting",
		},
	}
	flags = append(flags, paramFlags()...)
	flags = append(flags, deconFlags()...)
	return flags
}

// ResolveRecalc builds the recalc configuration from parsed flags.
func ResolveRecalc(cmd *cli.Command) (*RecalcConfig, string, error) {
	indb, err := resolveDatabase(cmd)
	if err != nil {
		return nil, "", err
	}

	cfg := &RecalcConfig{
		Keys:    resolveKeys(cmd),
		Verbose: cmd.Bool("verbose"),
		VP:      cmd.Float("vp"),
		VS:      cmd.Float("vs"),
		DTSNR:   cmd.Float("dt-snr"),
		FMin:    cmd.Float("fmin"),
		FMax:    cmd.Float("fmax"),
		GFilt:   floatPtr(cmd, "gfilt"),
		WLevel:  cmd.Float("wlevel"),
	}

	cfg.Phases, err = parsePhaseList(cmd.String("phase"))
	if err != nil {
		return nil, "", err
	}

	cfg.Align, err = parseAlign(cmd.String("align"))
	if err != nil {
		return nil, "", err
	}

	cfg.Method, err = parseMethod(cmd.String("method"))
	if err != nil {
		return nil, "", err
	}

	cfg.PreFilt, err = resolveOptionalBound(cmd, "pre-filt")
	if err != nil {
		return nil, "", err
	}

	return cfg, indb, nil
}
