package options

import (
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
)

// Credentials hold a datacenter username and password.
type Credentials struct {
	User     string
	Password string
}

// CalcConfig is the resolved configuration of the calc command: event
// download, pre-processing and receiver-function deconvolution.
type CalcConfig struct {
	Keys      []string
	Verbose   bool
	Overwrite bool

	Server   string
	UserAuth *Credentials // nil for anonymous access

	LocalData []string
	FillValue float64 // 0 or NaN, substituted for missing samples
	UseNet    bool

	Start   *time.Time
	End     *time.Time
	Reverse bool
	MinMag  float64
	MaxMag  float64

	Phase    Phase
	Distance Bound // epicentral distance interval (deg)

	SamplingRate float64
	DTS          float64 // data window, symmetric about arrival (sec)
	Align        AlignKey
	VP           float64
	VS           float64
	DTSNR        float64 // SNR window (sec), never exceeds DTS
	PreFilt      *Bound
	FMin         float64
	FMax         float64

	Method DeconMethod
	GFilt  *float64
	WLevel float64
}

// CalcFlags returns the flag set of the calc command.
func CalcFlags() []cli.Flag {
	flags := generalFlags()
	flags = append(flags,
		&cli.StringFlag{
			Name:    "Server",
			Aliases: []string{"S"},
			Value:   "IRIS",
			Usage:   "datacenter to connect to (IRIS, GFZ, ORFEUS, ...)",
		},
		&cli.StringFlag{
			Name:    "User-Auth",
			Aliases: []string{"U"},
			Usage:   "username:password for restricted data access",
		},
		&cli.StringFlag{
			Name:  "local-data",
			Usage: "comma-separated list of paths containing day-long SAC files, selected preferentially over download",
		},
		&cli.BoolFlag{
			Name:  "no-data-zero",
			Usage: "force missing data to zero rather than NaN",
		},
		&cli.BoolFlag{
			Name:  "no-local-net",
			Usage: "do not use the network code when searching local data",
		},
	)
	flags = append(flags, timeFlags()...)
	flags = append(flags,
		&cli.BoolFlag{
			Name:    "reverse",
			Aliases: []string{"R"},
			Usage:   "process events from most recent to oldest",
		},
		&cli.FloatFlag{
			Name:  "minmag",
			Value: 6.0,
			Usage: "minimum magnitude of event for which to search",
		},
		&cli.FloatFlag{
			Name:  "maxmag",
			Value: 9.0,
			Usage: "maximum magnitude of event for which to search",
		},
		&cli.StringFlag{
			Name:  "phase",
			Value: "P",
			Usage: "phase name: P, PP, S or SKS; mind the distance setting",
		},
		&cli.FloatFlag{
			Name:  "mindist",
			Usage: "minimum great-circle distance between station and event (deg, default depends on phase)",
		},
		&cli.FloatFlag{
			Name:  "maxdist",
			Usage: "maximum great-circle distance between station and event (deg, default depends on phase)",
		},
		&cli.FloatFlag{
			Name:  "sampling-rate",
			Value: 10.,
			Usage: "new sampling rate (Hz)",
		},
		&cli.FloatFlag{
			Name:  "dts",
			Value: 150.,
			Usage: "window length, symmetric about arrival time (sec)",
		},
	)
	flags = append(flags, paramFlags()...)
	flags = append(flags, deconFlags()...)
	return flags
}

// ResolveCalc builds the calc configuration from parsed flags.
func ResolveCalc(cmd *cli.Command) (*CalcConfig, string, error) {
	indb, err := resolveDatabase(cmd)
	if err != nil {
		return nil, "", err
	}

	cfg := &CalcConfig{
		Keys:         resolveKeys(cmd),
		Verbose:      cmd.Bool("verbose"),
		Overwrite:    cmd.Bool("overwrite"),
		Server:       cmd.String("Server"),
		UseNet:       !cmd.Bool("no-local-net"),
		Reverse:      cmd.Bool("reverse"),
		MinMag:       cmd.Float("minmag"),
		MaxMag:       cmd.Float("maxmag"),
		SamplingRate: cmd.Float("sampling-rate"),
		DTS:          cmd.Float("dts"),
		VP:           cmd.Float("vp"),
		VS:           cmd.Float("vs"),
		DTSNR:        cmd.Float("dt-snr"),
		FMin:         cmd.Float("fmin"),
		FMax:         cmd.Float("fmax"),
		GFilt:        floatPtr(cmd, "gfilt"),
		WLevel:       cmd.Float("wlevel"),
	}

	if auth := cmd.String("User-Auth"); auth != "" {
		parts := strings.Split(auth, ":")
		if len(parts) != 2 {
			return nil, "", invalidf("--User-Auth", "incorrect username and password strings, expected username:password")
		}
		cfg.UserAuth = &Credentials{User: parts[0], Password: parts[1]}
	}

	if local := cmd.String("local-data"); local != "" {
		cfg.LocalData = strings.Split(local, ",")
	}

	// Missing samples are NaN unless the user asks for zero fill.
	cfg.FillValue = math.NaN()
	if cmd.Bool("no-data-zero") {
		cfg.FillValue = 0.0
	}

	cfg.Start, cfg.End, err = resolveTimeRange(cmd)
	if err != nil {
		return nil, "", err
	}

	cfg.Phase, err = parsePhase(cmd.String("phase"))
	if err != nil {
		return nil, "", err
	}
	cfg.Distance, err = resolveDistance(cmd, cfg.Phase)
	if err != nil {
		return nil, "", err
	}

	cfg.PreFilt, err = resolveOptionalBound(cmd, "pre-filt")
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

	// Soft correction: the SNR window cannot exceed the data window.
	if cfg.DTSNR > cfg.DTS {
		requested := cfg.DTSNR
		cfg.DTSNR = cfg.DTS - 10.
		slog.Warn("SNR window longer than data window, defaulting to data window minus 10 sec",
			"dt_snr", requested, "dts", cfg.DTS, "clamped_to", cfg.DTSNR)
	}

	return cfg, indb, nil
}
