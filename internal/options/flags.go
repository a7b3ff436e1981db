package options

import (
	"github.com/urfave/cli/v3"
)

// Shared flag groups. These mirror the option groups every command draws
// from; command-specific flags live next to their resolver.

func keysFlag() cli.Flag {
	return &cli.StringFlag{
		Name: "keys",
		Usage: "comma-separated list of station keys for which to perform " +
			"the analysis; partial keys match against the database " +
			"(default processes all stations)",
	}
}

func verboseFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v", "V"},
		Usage:   "increase verbosity",
	}
}

func overwriteFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "overwrite",
		Aliases: []string{"O"},
		Usage:   "force the overwriting of pre-existing data",
	}
}

func generalFlags() []cli.Flag {
	return []cli.Flag{keysFlag(), verboseFlag(), overwriteFlag()}
}

func timeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name: "start",
			Usage: "start time for the search, overriding any station " +
				"start times (default start date of station)",
		},
		&cli.StringFlag{
			Name: "end",
			Usage: "end time for the search, overriding any station " +
				"end times (default end date of station)",
		},
	}
}

// qualityFlags are the receiver-function selection thresholds shared by the
// post-processing commands.
func qualityFlags() []cli.Flag {
	return []cli.Flag{
		&cli.FloatFlag{
			Name:  "snr",
			Value: -9999.,
			Usage: "vertical component SNR threshold for extracting receiver functions",
		},
		&cli.FloatFlag{
			Name:  "snrh",
			Value: -9999.,
			Usage: "horizontal component SNR threshold for extracting receiver functions",
		},
		&cli.FloatFlag{
			Name:  "cc",
			Value: -1.,
			Usage: "CC threshold for extracting receiver functions",
		},
		&cli.BoolFlag{
			Name:  "no-outlier",
			Usage: "delete outliers based on the MAD of the variance",
		},
	}
}

// paramFlags are the waveform-processing parameters shared by calc and
// recalc.
func paramFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "align",
			Usage: "component alignment key: ZRT, LQT or PVH (default ZRT)",
		},
		&cli.FloatFlag{
			Name:  "vp",
			Value: 6.0,
			Usage: "near-surface Vp used with --align=PVH (km/s)",
		},
		&cli.FloatFlag{
			Name:  "vs",
			Value: 3.5,
			Usage: "near-surface Vs used with --align=PVH (km/s)",
		},
		&cli.FloatFlag{
			Name:  "dt-snr",
			Value: 30.,
			Usage: "window length over which to calculate the SNR (sec)",
		},
		&cli.StringFlag{
			Name:  "pre-filt",
			Usage: "low and high frequency corners for the pre-deconvolution filter",
		},
		&cli.FloatFlag{
			Name:  "fmin",
			Value: 0.05,
			Usage: "minimum frequency corner for the SNR and CC filter (Hz)",
		},
		&cli.FloatFlag{
			Name:  "fmax",
			Value: 1.0,
			Usage: "maximum frequency corner for the SNR and CC filter (Hz)",
		},
	}
}

func deconFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "method",
			Value: "wiener",
			Usage: "deconvolution method: wiener, water or multitaper",
		},
		&cli.FloatFlag{
			Name:  "gfilt",
			Usage: "Gaussian filter width (Hz, default none)",
		},
		&cli.FloatFlag{
			Name:  "wlevel",
			Value: 0.01,
			Usage: "water level used by the water method",
		},
	}
}

func titleFormatFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "title",
			Usage: "figure title (default none)",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: "png",
			Usage: "figure format: png, jpg, eps or pdf",
		},
	}
}
