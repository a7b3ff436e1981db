package options

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Coord is a geographic point. Coordinate pairs keep the user-supplied
// latitude,longitude order and are never sorted.
type Coord struct {
	Lat float64
	Lon float64
}

// CCPConfig is the resolved configuration of the ccp command:
// common-conversion-point imaging along a profile line.
type CCPConfig struct {
	Keys      []string
	Verbose   bool
	Overwrite bool

	LineStart *Coord // required with --load
	LineEnd   *Coord
	DZ        float64 // vertical cell size (km)
	DX        float64 // horizontal cell size (km)

	SNR       float64
	SNRH      float64
	CC        float64
	NoOutlier bool

	F1    float64 // low corner for all phases (Hz)
	F2PS  float64 // high corner, Ps (Hz)
	F2PPS float64 // high corner, Pps (Hz)
	F2PSS float64 // high corner, Pss (Hz)
	NBaz  int
	NSlow int
	WLen  float64 // P wavelength used as sensitivity (km)

	Load     bool // step 1: load receiver-function streams
	Prep     bool // step 2: prepare the image before pre-stacking
	Prestack bool // step 3: pre-stack all phases
	CCP      bool // step 4a: standard CCP stacking
	GCCP     bool // step 4b: Gaussian-weighted CCP stacking

	Linear        bool // step 5a: linear weighted stack
	PhaseWeighted bool // step 5b: phase-weighted stack

	Figure     bool
	CBound     float64
	SaveFigure bool
	Title      string
	Format     string
}

// CCPFlags returns the flag set of the ccp command.
func CCPFlags() []cli.Flag {
	flags := generalFlags()
	flags = append(flags,
		&cli.StringFlag{
			Name:  "start",
			Usage: "latitude and longitude of the line start point, in this order",
		},
		&cli.StringFlag{
			Name:  "end",
			Usage: "latitude and longitude of the line end point, in this order",
		},
		&cli.FloatFlag{
			Name:  "dz",
			Value: 1.,
			Usage: "vertical cell size (km)",
		},
		&cli.FloatFlag{
			Name:  "dx",
			Value: 2.5,
			Usage: "horizontal cell size (km)",
		},
	)
	flags = append(flags, qualityFlags()...)
	flags = append(flags,
		&cli.FloatFlag{
			Name:  "f1",
			Value: 0.05,
			Usage: "low frequency corner for the bandpass filter, all phases (Hz)",
		},
		&cli.FloatFlag{
			Name:  "f2ps",
			Value: 0.75,
			Usage: "high frequency corner for the Ps phase (Hz)",
		},
		&cli.FloatFlag{
			Name:  "f2pps",
			Value: 0.36,
			Usage: "high frequency corner for the Pps phase (Hz)",
		},
		&cli.FloatFlag{
			Name:  "f2pss",
			Value: 0.3,
			Usage: "high frequency corner for the Pss phase (Hz)",
		},
		&cli.IntFlag{
			Name:  "nbaz",
			Value: 36,
			Usage: "number of back-azimuth bins to consider",
		},
		&cli.IntFlag{
			Name:  "nslow",
			Value: 40,
			Usage: "number of slowness bins to consider",
		},
		&cli.FloatFlag{
			Name:  "wlen",
			Value: 35.,
			Usage: "P-wave wavelength used as sensitivity (km)",
		},
		&cli.BoolFlag{
			Name:  "load",
			Usage: "step 1: load receiver-function streams into the image",
		},
		&cli.BoolFlag{
			Name:  "prep",
			Usage: "step 2: prepare the image before pre-stacking",
		},
		&cli.BoolFlag{
			Name:  "prestack",
			Usage: "step 3: pre-stack all phases before CCP averaging",
		},
		&cli.BoolFlag{
			Name:  "ccp",
			Usage: "step 4a: standard CCP stacking with multiples",
		},
		&cli.BoolFlag{
			Name:  "gccp",
			Usage: "step 4b: Gaussian-weighted CCP stacking with multiples",
		},
		&cli.BoolFlag{
			Name:  "linear",
			Usage: "step 5a: linear weighted stack for the final image (default unless --phase is set)",
		},
		&cli.BoolFlag{
			Name:  "phase",
			Usage: "step 5b: phase-weighted stack for the final image",
		},
		&cli.BoolFlag{
			Name:  "figure",
			Usage: "plot the final image",
		},
		&cli.FloatFlag{
			Name:  "cbound",
			Usage: "maximum value for the color palette (default 0.05 for --ccp, 0.015 for --gccp)",
		},
		&cli.BoolFlag{
			Name:  "save-fig",
			Usage: "save the final figure; requires --figure",
		},
	)
	flags = append(flags, titleFormatFlags()...)
	return flags
}

// ResolveCCP builds the ccp configuration from parsed flags.
func ResolveCCP(cmd *cli.Command) (*CCPConfig, string, error) {
	indb, err := resolveDatabase(cmd)
	if err != nil {
		return nil, "", err
	}

	cfg := &CCPConfig{
		Keys:       resolveKeys(cmd),
		Verbose:    cmd.Bool("verbose"),
		Overwrite:  cmd.Bool("overwrite"),
		DZ:         cmd.Float("dz"),
		DX:         cmd.Float("dx"),
		SNR:        cmd.Float("snr"),
		SNRH:       cmd.Float("snrh"),
		CC:         cmd.Float("cc"),
		NoOutlier:  cmd.Bool("no-outlier"),
		F1:         cmd.Float("f1"),
		F2PS:       cmd.Float("f2ps"),
		F2PPS:      cmd.Float("f2pps"),
		F2PSS:      cmd.Float("f2pss"),
		NBaz:       int(cmd.Int("nbaz")),
		NSlow:      int(cmd.Int("nslow")),
		WLen:       cmd.Float("wlen"),
		Load:       cmd.Bool("load"),
		Prep:       cmd.Bool("prep"),
		Prestack:   cmd.Bool("prestack"),
		CCP:        cmd.Bool("ccp"),
		GCCP:       cmd.Bool("gccp"),
		Linear:     cmd.Bool("linear"),
		Figure:     cmd.Bool("figure"),
		SaveFigure: cmd.Bool("save-fig"),
		Title:      cmd.String("title"),
		Format:     cmd.String("format"),
	}
	cfg.PhaseWeighted = cmd.Bool("phase")

	cfg.LineStart, err = resolveCoord(cmd, "start", cfg.Load)
	if err != nil {
		return nil, "", err
	}
	cfg.LineEnd, err = resolveCoord(cmd, "end", cfg.Load)
	if err != nil {
		return nil, "", err
	}

	if !(cfg.Load || cfg.Prep || cfg.Prestack || cfg.CCP || cfg.GCCP) {
		return nil, "", usagef("needs at least one CCP step: --load, --prep, --prestack, --ccp or --gccp")
	}

	if cfg.Linear && cfg.PhaseWeighted {
		return nil, "", invalidf("--linear/--phase", "cannot use --linear and --phase at the same time")
	}
	// Each stacking flavor has a natural final-stack default.
	if cfg.CCP && !cfg.Linear && !cfg.PhaseWeighted {
		cfg.Linear = true
	}
	if cfg.GCCP && !cfg.Linear && !cfg.PhaseWeighted {
		cfg.PhaseWeighted = true
	}

	if (cfg.CCP || cfg.GCCP) && !cfg.Figure {
		if cfg.SaveFigure || cmd.IsSet("cbound") || cmd.IsSet("format") {
			slog.Warn("figure will not be produced since --figure has not been set")
		}
	}
	if cfg.Figure && !(cfg.CCP || cfg.GCCP) {
		return nil, "", usagef("cannot produce figure without specifying the type of stacking, --ccp or --gccp")
	}

	switch {
	case cmd.IsSet("cbound"):
		cfg.CBound = cmd.Float("cbound")
	case cfg.GCCP:
		cfg.CBound = 0.015
	case cfg.CCP:
		cfg.CBound = 0.05
	}

	return cfg, indb, nil
}

// resolveCoord parses a lat,lon pair; the pair is required when the load
// step is selected.
func resolveCoord(cmd *cli.Command, name string, required bool) (*Coord, error) {
	if !cmd.IsSet(name) {
		if required {
			return nil, usagef("--%s=lat,lon is required", name)
		}
		return nil, nil
	}
	vals, err := parseFloats("--"+name, cmd.String(name), 2)
	if err != nil {
		return nil, err
	}
	return &Coord{Lat: vals[0], Lon: vals[1]}, nil
}
