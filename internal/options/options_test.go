package options

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// testDB writes a throwaway station database so the existence check passes.
func testDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stations.pkl")
	require.NoError(t, os.WriteFile(path, []byte("stations"), 0600))
	return path
}

// runResolve drives a resolver through the real flag-parsing path.
func runResolve[T any](t *testing.T, name string, flags []cli.Flag,
	resolve func(*cli.Command) (T, string, error), args ...string) (T, string, error) {
	t.Helper()

	var cfg T
	var indb string
	cmd := &cli.Command{
		Name:  name,
		Flags: flags,
		Action: func(_ context.Context, c *cli.Command) error {
			var err error
			cfg, indb, err = resolve(c)
			return err
		},
	}
	err := cmd.Run(context.Background(), append([]string{name}, args...))
	return cfg, indb, err
}

func runCalc(t *testing.T, args ...string) (*CalcConfig, string, error) {
	return runResolve(t, "calc", CalcFlags(), ResolveCalc, args...)
}

func runRecalc(t *testing.T, args ...string) (*RecalcConfig, string, error) {
	return runResolve(t, "recalc", RecalcFlags(), ResolveRecalc, args...)
}

func runHK(t *testing.T, args ...string) (*HKConfig, string, error) {
	return runResolve(t, "hk", HKFlags(), ResolveHK, args...)
}

func runHarmonics(t *testing.T, args ...string) (*HarmonicsConfig, string, error) {
	return runResolve(t, "harmonics", HarmonicsFlags(), ResolveHarmonics, args...)
}

func runCCP(t *testing.T, args ...string) (*CCPConfig, string, error) {
	return runResolve(t, "ccp", CCPFlags(), ResolveCCP, args...)
}

func runPlot(t *testing.T, args ...string) (*PlotConfig, string, error) {
	return runResolve(t, "plot", PlotFlags(), ResolvePlot, args...)
}

// captureLog redirects the default logger for the duration of the test and
// returns the buffer collecting its output.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestResolveDeterministic(t *testing.T) {
	db := testDB(t)
	args := []string{"--keys", "IU,TA", "--phase", "PP", "--mindist", "110", db}

	first, _, err := runCalc(t, args...)
	require.NoError(t, err)
	second, _, err := runCalc(t, args...)
	require.NoError(t, err)

	// FillValue is NaN by default, so plain deep equality cannot hold.
	if diff := cmp.Diff(first, second, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("resolving the same argv twice differs (-first +second):\n%s", diff)
	}
}

func TestMissingDatabase(t *testing.T) {
	_, _, err := runCalc(t, "--phase", "P", filepath.Join(t.TempDir(), "absent.pkl"))
	require.Error(t, err)
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	require.Equal(t, 1, ExitCode(err))
}

func TestMissingPositional(t *testing.T) {
	_, _, err := runCalc(t)
	require.Error(t, err)
	var usageErr *UsageError
	require.ErrorAs(t, err, &usageErr)
	require.Contains(t, err.Error(), "need station database file")
	require.Equal(t, 2, ExitCode(err))
}
