package options

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
)

// Bound is an ordered (low, high) pair resolved from a comma-separated
// option. Low <= high always holds after resolution.
type Bound [2]float64

// Low returns the lower bound.
func (b Bound) Low() float64 { return b[0] }

// High returns the upper bound.
func (b Bound) High() float64 { return b[1] }

// resolveDatabase enforces the single positional argument and checks that
// the referenced station database exists. This is the only filesystem access
// performed during resolution.
func resolveDatabase(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() != 1 {
		return "", usagef("need station database file")
	}
	indb := cmd.Args().First()
	if _, err := os.Stat(indb); err != nil {
		return "", &InputError{Path: indb}
	}
	return indb, nil
}

// resolveKeys splits the --keys option into station key prefixes. An empty
// option selects every station in the database.
func resolveKeys(cmd *cli.Command) []string {
	raw := cmd.String("keys")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

// parseFloats parses a comma-separated float option and enforces its
// declared arity.
func parseFloats(flag, raw string, arity int) ([]float64, error) {
	parts := strings.Split(raw, ",")
	vals := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, invalidf(flag, "should contain %d comma-separated floats, got %q", arity, raw)
		}
		vals = append(vals, f)
	}
	if len(vals) != arity {
		return nil, invalidf(flag, "should contain %d comma-separated floats, got %d", arity, len(vals))
	}
	return vals, nil
}

// resolveBound resolves one bound-pair option: the canonical default when
// the flag is absent, otherwise the two parsed values sorted ascending.
func resolveBound(cmd *cli.Command, name string, def Bound) (Bound, error) {
	if !cmd.IsSet(name) {
		return def, nil
	}
	vals, err := parseFloats("--"+name, cmd.String(name), 2)
	if err != nil {
		return Bound{}, err
	}
	sort.Float64s(vals)
	return Bound{vals[0], vals[1]}, nil
}

// resolveOptionalBound is resolveBound without a default: an absent flag
// resolves to nil.
func resolveOptionalBound(cmd *cli.Command, name string) (*Bound, error) {
	if !cmd.IsSet(name) {
		return nil, nil
	}
	b, err := resolveBound(cmd, name, Bound{})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func floatPtr(cmd *cli.Command, name string) *float64 {
	if !cmd.IsSet(name) {
		return nil
	}
	v := cmd.Float(name)
	return &v
}

func intPtr(cmd *cli.Command, name string) *int {
	if !cmd.IsSet(name) {
		return nil
	}
	v := int(cmd.Int(name))
	return &v
}
