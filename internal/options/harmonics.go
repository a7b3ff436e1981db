package options

import (
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"
)

// HarmonicsConfig is the resolved configuration of the harmonics command:
// back-azimuth harmonic decomposition of receiver functions.
type HarmonicsConfig struct {
	Keys      []string
	Verbose   bool
	Overwrite bool

	Start *time.Time
	End   *time.Time

	BP        Bound
	NBin      *int // back-azimuth bins; nil does not bin the data
	SNR       float64
	SNRH      float64
	CC        float64
	NoOutlier bool

	Azim     float64
	FindAzim bool
	TRange   *Bound // search window for the optimal azimuth, set when FindAzim
	Save     bool

	Plot     bool
	YMax     float64
	Scale    float64
	SavePlot bool
	Title    string
	Format   string
}

// HarmonicsFlags returns the flag set of the harmonics command.
func HarmonicsFlags() []cli.Flag {
	flags := generalFlags()
	flags = append(flags, timeFlags()...)
	flags = append(flags,
		&cli.StringFlag{
			Name:  "bp",
			Usage: "corner frequencies for the bandpass filter (default 0.05,0.5)",
		},
		&cli.IntFlag{
			Name:  "bin",
			Usage: "number of back-azimuth bins to consider, typically 36 or 72 (default does not bin data)",
		},
	)
	flags = append(flags, qualityFlags()...)
	flags = append(flags,
		&cli.FloatFlag{
			Name:  "azim",
			Usage: "azimuth angle along which to perform the decomposition (default 0)",
		},
		&cli.BoolFlag{
			Name:  "find-azim",
			Usage: "calculate the optimal azimuth instead of using --azim",
		},
		&cli.StringFlag{
			Name:  "trange",
			Usage: "minimum and maximum bounds on the time range for finding the optimal azimuth (sec, default 0,10)",
		},
		&cli.BoolFlag{
			Name:  "save",
			Usage: "save the harmonics object to file",
		},
		&cli.BoolFlag{
			Name:  "plot",
			Usage: "produce a plot of the back-azimuth harmonics",
		},
		&cli.FloatFlag{
			Name:  "ymax",
			Value: 30.,
			Usage: "maximum y-axis value for the plot, in units of the dependent variable",
		},
		&cli.FloatFlag{
			Name:  "scale",
			Value: 30.,
			Usage: "scaling value that multiplies the amplitude of the harmonic components",
		},
		&cli.BoolFlag{
			Name:  "save-plot",
			Usage: "save the plot",
		},
	)
	flags = append(flags, titleFormatFlags()...)
	return flags
}

// ResolveHarmonics builds the harmonics configuration from parsed flags.
func ResolveHarmonics(cmd *cli.Command) (*HarmonicsConfig, string, error) {
	indb, err := resolveDatabase(cmd)
	if err != nil {
		return nil, "", err
	}

	cfg := &HarmonicsConfig{
		Keys:      resolveKeys(cmd),
		Verbose:   cmd.Bool("verbose"),
		Overwrite: cmd.Bool("overwrite"),
		NBin:      intPtr(cmd, "bin"),
		SNR:       cmd.Float("snr"),
		SNRH:      cmd.Float("snrh"),
		CC:        cmd.Float("cc"),
		NoOutlier: cmd.Bool("no-outlier"),
		Save:      cmd.Bool("save"),
		Plot:      cmd.Bool("plot"),
		YMax:      cmd.Float("ymax"),
		Scale:     cmd.Float("scale"),
		SavePlot:  cmd.Bool("save-plot"),
		Title:     cmd.String("title"),
		Format:    cmd.String("format"),
	}

	cfg.Start, cfg.End, err = resolveTimeRange(cmd)
	if err != nil {
		return nil, "", err
	}

	cfg.BP, err = resolveBound(cmd, "bp", Bound{0.05, 0.5})
	if err != nil {
		return nil, "", err
	}

	// A fixed azimuth wins over the azimuth search; setting both downgrades
	// the search with a warning rather than failing.
	cfg.FindAzim = cmd.Bool("find-azim")
	if cmd.IsSet("azim") {
		cfg.Azim = cmd.Float("azim")
		if cfg.FindAzim {
			slog.Warn("setting both --azim and --find-azim is conflicting, ignoring --find-azim")
			cfg.FindAzim = false
		}
	}

	if cfg.FindAzim {
		trange, err := resolveBound(cmd, "trange", Bound{0., 10.})
		if err != nil {
			return nil, "", err
		}
		cfg.TRange = &trange
	}

	return cfg, indb, nil
}
