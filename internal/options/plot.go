package options

import (
	"github.com/urfave/cli/v3"
)

// PlotConfig is the resolved configuration of the plot command:
// back-azimuth or slowness wiggle panels of receiver functions.
type PlotConfig struct {
	Keys      []string
	Verbose   bool
	Overwrite bool

	SNR       float64
	SNRH      float64
	CC        float64
	NoOutlier bool
	BinLim    float64 // minimum number of receiver functions per plotted bin

	BP  *Bound // nil applies no filtering
	PWS bool

	NBaz  *int // exactly one of NBaz/NSlow is set
	NSlow *int

	SlowBound Bound
	BazBound  Bound
	Phases    []Phase

	Scale     *float64 // nil picks the per-plot-type default downstream
	Normalize bool
	TRange    Bound
	Stacked   bool

	Save   bool
	Title  string
	Format string
}

// PlotFlags returns the flag set of the plot command.
func PlotFlags() []cli.Flag {
	flags := generalFlags()
	flags = append(flags, qualityFlags()...)
	flags = append(flags,
		&cli.FloatFlag{
			Name:  "binlim",
			Usage: "minimum number of receiver functions needed before a bin is plotted",
		},
		&cli.StringFlag{
			Name:  "bp",
			Usage: "corner frequencies for the bandpass filter (default no filtering)",
		},
		&cli.BoolFlag{
			Name:  "pws",
			Usage: "use phase-weighted stacking during binning",
		},
		&cli.IntFlag{
			Name:  "nbaz",
			Usage: "number of back-azimuth bins, typically 36 or 72; sorts receiver functions by back azimuth",
		},
		&cli.IntFlag{
			Name:  "nslow",
			Usage: "number of slowness bins, typically 20 or 40; sorts receiver functions by slowness",
		},
		&cli.StringFlag{
			Name:  "slowbound",
			Usage: "minimum and maximum bounds on slowness (s/km, default 0.04,0.08)",
		},
		&cli.StringFlag{
			Name:  "bazbound",
			Usage: "minimum and maximum bounds on back azimuth (deg, default 0,360)",
		},
		&cli.StringFlag{
			Name:  "phase",
			Value: "allP",
			Usage: "phase name to plot: P, PP, allP, S, SKS or allS",
		},
		&cli.FloatFlag{
			Name:  "scale",
			Usage: "scaling factor for the receiver-function amplitudes (default 100 for a back-azimuth plot, 0.02 for a slowness plot)",
		},
		&cli.BoolFlag{
			Name:  "normalize",
			Usage: "normalize receiver functions by the maximum amplitude of the stack",
		},
		&cli.StringFlag{
			Name:  "trange",
			Usage: "time range for the x-axis (sec, negative allowed, default 0,30)",
		},
		&cli.BoolFlag{
			Name:  "stacked",
			Usage: "plot a stack of all traces in the top panel",
		},
		&cli.BoolFlag{
			Name:  "save",
			Usage: "save the figure",
		},
	)
	flags = append(flags, titleFormatFlags()...)
	return flags
}

// ResolvePlot builds the plot configuration from parsed flags.
func ResolvePlot(cmd *cli.Command) (*PlotConfig, string, error) {
	indb, err := resolveDatabase(cmd)
	if err != nil {
		return nil, "", err
	}

	cfg := &PlotConfig{
		Keys:      resolveKeys(cmd),
		Verbose:   cmd.Bool("verbose"),
		Overwrite: cmd.Bool("overwrite"),
		SNR:       cmd.Float("snr"),
		SNRH:      cmd.Float("snrh"),
		CC:        cmd.Float("cc"),
		NoOutlier: cmd.Bool("no-outlier"),
		BinLim:    cmd.Float("binlim"),
		PWS:       cmd.Bool("pws"),
		NBaz:      intPtr(cmd, "nbaz"),
		NSlow:     intPtr(cmd, "nslow"),
		Scale:     floatPtr(cmd, "scale"),
		Normalize: cmd.Bool("normalize"),
		Stacked:   cmd.Bool("stacked"),
		Save:      cmd.Bool("save"),
		Title:     cmd.String("title"),
		Format:    cmd.String("format"),
	}

	cfg.SlowBound, err = resolveBound(cmd, "slowbound", Bound{0.04, 0.08})
	if err != nil {
		return nil, "", err
	}
	cfg.BazBound, err = resolveBound(cmd, "bazbound", Bound{0., 360.})
	if err != nil {
		return nil, "", err
	}

	cfg.Phases, err = parsePhaseList(cmd.String("phase"))
	if err != nil {
		return nil, "", err
	}

	cfg.BP, err = resolveOptionalBound(cmd, "bp")
	if err != nil {
		return nil, "", err
	}

	cfg.TRange, err = resolveBound(cmd, "trange", Bound{0., 30.})
	if err != nil {
		return nil, "", err
	}

	// The plot is sorted either by back azimuth or by slowness, never both.
	switch {
	case cfg.NBaz == nil && cfg.NSlow == nil:
		return nil, "", usagef("specify at least one of --nbaz or --nslow")
	case cfg.NBaz != nil && cfg.NSlow != nil:
		return nil, "", usagef("specify only one of --nbaz or --nslow")
	}

	return cfg, indb, nil
}
