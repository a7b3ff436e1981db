package options

import (
	"sort"
	"time"

	"github.com/urfave/cli/v3"
)

// HKConfig is the resolved configuration of the hk command: a grid search
// over crustal thickness H and Vp/Vs ratio k.
type HKConfig struct {
	Keys      []string
	Verbose   bool
	Overwrite bool

	Start *time.Time
	End   *time.Time

	BP        Bound
	NBaz      int // back-azimuth bins, used only for dip-aware stacking
	NSlow     int
	SNR       float64
	SNRH      float64
	CC        float64
	NoOutlier bool
	SlowBound Bound
	BazBound  Bound
	Copy      bool
	BPCopy    *Bound // corners for the copied radial stream, set when Copy

	HBound  Bound
	DH      float64
	KBound  Bound
	DK      float64
	Weights [3]float64 // Ps, Pps, Pss stack weights
	Stack   StackType
	Save    bool

	VP      float64
	Strike  *float64
	Dip     *float64
	CalcDip bool

	Plot     bool
	SavePlot bool
	Title    string
	Format   string
}

// HKFlags returns the flag set of the hk command.
func HKFlags() []cli.Flag {
	flags := generalFlags()
	flags = append(flags, timeFlags()...)
	flags = append(flags,
		&cli.StringFlag{
			Name:  "bp",
			Usage: "corner frequencies for the bandpass filter (default 0.05,0.5)",
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
	)
	flags = append(flags, qualityFlags()...)
	flags = append(flags,
		&cli.StringFlag{
			Name:  "slowbound",
			Usage: "minimum and maximum bounds on slowness (s/km, default 0.04,0.08)",
		},
		&cli.StringFlag{
			Name:  "bazbound",
			Usage: "minimum and maximum bounds on back azimuth (deg, default 0,360)",
		},
		&cli.BoolFlag{
			Name:  "copy",
			Usage: "use a copy of the radial component filtered at different corners for the Pps and Pss phases",
		},
		&cli.StringFlag{
			Name:  "bp-copy",
			Usage: "minimum and maximum frequency for the copied stream (Hz, default 0.05,0.35)",
		},
		&cli.StringFlag{
			Name:  "hbound",
			Usage: "minimum and maximum bounds on Moho depth (H, km, default 20,50)",
		},
		&cli.FloatFlag{
			Name:  "dh",
			Value: 0.5,
			Usage: "search interval for H (km)",
		},
		&cli.StringFlag{
			Name:  "kbound",
			Usage: "minimum and maximum bounds on Vp/Vs (k, default 1.56,2.1)",
		},
		&cli.FloatFlag{
			Name:  "dk",
			Value: 0.02,
			Usage: "search interval for k",
		},
		&cli.StringFlag{
			Name:  "weights",
			Usage: "Ps, Pps and Pss weights in the final stack (default 0.5,2,-1)",
		},
		&cli.StringFlag{
			Name:  "type",
			Value: "sum",
			Usage: "type of final stacking: sum for a weighted average, prod for the product of positive values",
		},
		&cli.BoolFlag{
			Name:  "save",
			Usage: "save the H-k stack to file",
		},
		&cli.FloatFlag{
			Name:  "vp",
			Value: 6.0,
			Usage: "mean crustal Vp (km/s)",
		},
		&cli.FloatFlag{
			Name:  "strike",
			Usage: "strike of dipping Moho (default none)",
		},
		&cli.FloatFlag{
			Name:  "dip",
			Usage: "dip of dipping Moho (default none)",
		},
		&cli.BoolFlag{
			Name:  "plot",
			Usage: "produce a plot of the stacks",
		},
		&cli.BoolFlag{
			Name:  "save-plot",
			Usage: "save the plot",
		},
	)
	flags = append(flags, titleFormatFlags()...)
	return flags
}

// ResolveHK builds the hk configuration from parsed flags.
func ResolveHK(cmd *cli.Command) (*HKConfig, string, error) {
	indb, err := resolveDatabase(cmd)
	if err != nil {
		return nil, "", err
	}

	cfg := &HKConfig{
		Keys:      resolveKeys(cmd),
		Verbose:   cmd.Bool("verbose"),
		Overwrite: cmd.Bool("overwrite"),
		NBaz:      int(cmd.Int("nbaz")),
		NSlow:     int(cmd.Int("nslow")),
		SNR:       cmd.Float("snr"),
		SNRH:      cmd.Float("snrh"),
		CC:        cmd.Float("cc"),
		NoOutlier: cmd.Bool("no-outlier"),
		Copy:      cmd.Bool("copy"),
		DH:        cmd.Float("dh"),
		DK:        cmd.Float("dk"),
		Save:      cmd.Bool("save"),
		VP:        cmd.Float("vp"),
		Strike:    floatPtr(cmd, "strike"),
		Dip:       floatPtr(cmd, "dip"),
		Plot:      cmd.Bool("plot"),
		SavePlot:  cmd.Bool("save-plot"),
		Title:     cmd.String("title"),
		Format:    cmd.String("format"),
	}

	cfg.Start, cfg.End, err = resolveTimeRange(cmd)
	if err != nil {
		return nil, "", err
	}

	// Strike and dip come together or not at all. Without them the stack is
	// dip-unaware and the back-azimuth bin count is unused.
	switch {
	case cfg.Strike == nil && cfg.Dip == nil:
		cfg.CalcDip = false
		cfg.NBaz = 0
	case cfg.Strike == nil || cfg.Dip == nil:
		return nil, "", usagef("specify both strike and dip for this type of analysis")
	default:
		cfg.CalcDip = true
	}

	pairs := []struct {
		name string
		def  Bound
		dst  *Bound
	}{
		{"bp", Bound{0.05, 0.5}, &cfg.BP},
		{"slowbound", Bound{0.04, 0.08}, &cfg.SlowBound},
		{"bazbound", Bound{0., 360.}, &cfg.BazBound},
		{"hbound", Bound{20., 50.}, &cfg.HBound},
		{"kbound", Bound{1.56, 2.1}, &cfg.KBound},
	}
	for _, p := range pairs {
		*p.dst, err = resolveBound(cmd, p.name, p.def)
		if err != nil {
			return nil, "", err
		}
	}

	if cfg.Copy {
		bpCopy, err := resolveBound(cmd, "bp-copy", Bound{0.05, 0.35})
		if err != nil {
			return nil, "", err
		}
		cfg.BPCopy = &bpCopy
	}

	// The weight triple is sorted like the bound pairs even though its
	// entries carry positional (per-phase) meaning. Kept for compatibility
	// with the established behavior; see DESIGN.md.
	if !cmd.IsSet("weights") {
		cfg.Weights = [3]float64{0.5, 2.0, -1.0}
	} else {
		vals, err := parseFloats("--weights", cmd.String("weights"), 3)
		if err != nil {
			return nil, "", err
		}
		sort.Float64s(vals)
		copy(cfg.Weights[:], vals)
	}

	cfg.Stack, err = parseStackType(cmd.String("type"))
	if err != nil {
		return nil, "", err
	}

	return cfg, indb, nil
}
