package options

import (
	"time"

	"github.com/urfave/cli/v3"
)

// timeLayouts are the accepted forms for --start/--end. All are read as UTC.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseTime(flag, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return &t, nil
		}
	}
	return nil, invalidf(flag, "cannot parse %q as an absolute time", raw)
}

// resolveTimeRange resolves the --start/--end pair. A nil value means the
// per-station default is used downstream.
func resolveTimeRange(cmd *cli.Command) (start, end *time.Time, err error) {
	start, err = parseTime("--start", cmd.String("start"))
	if err != nil {
		return nil, nil, err
	}
	end, err = parseTime("--end", cmd.String("end"))
	if err != nil {
		return nil, nil, err
	}
	return start, end, nil
}
