package cmd

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zweihuehner/le-mehaute-diagram/diagram"
	"go.uber.org/zap"
)

// execute runs the root command in-process with a fresh home directory,
// config and flag state.
func execute(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	viper.Reset()
	bindFlags()
	resetFlags(rootCmd)
	logger = zap.NewNop()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func assertNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestParseWaveFlag(t *testing.T) {
	wp, err := parseWaveFlag(`d=1.682,T=1.42,H=0.11,label="wave, one",color=green,edge=#000,marker=*,size=60`)
	require.NoError(t, err)
	assert.Equal(t, 1.682, wp.Depth)
	assert.Equal(t, 1.42, wp.Period)
	assert.Equal(t, 0.11, wp.Height)
	assert.Equal(t, "wave, one", wp.Label)
	assert.Equal(t, "*", wp.Style.Marker)
	assert.Equal(t, 60.0, wp.Style.Size)
	green, _ := diagram.ParseColor("green")
	assert.Equal(t, green, wp.Style.Color)

	wp, err = parseWaveFlag("d=10, T=8, H=1")
	require.NoError(t, err)
	assert.Empty(t, wp.Label)
	assert.Nil(t, wp.Style.Color)

	_, err = parseWaveFlag("d=1,T=2,marker=x,H=1")
	assert.ErrorIs(t, err, diagram.ErrUnknownMarker)
	_, err = parseWaveFlag("d=1,T=2,H=1,color=nope")
	assert.ErrorIs(t, err, diagram.ErrUnknownColor)

	for _, bad := range []string{"d=1,T=2", "d=1,T=2,H=x", "d=1,T=2,H=1,d=3", "d=1,T=2,H=1,foo=bar", "d=1,T=2,H"} {
		_, err := parseWaveFlag(bad)
		assert.Error(t, err, bad)
	}
}

func TestRenderCommand(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "out.png")
	out, err := execute(t, home, "render", "-o", path,
		"--wave", "d=1.682,T=1.42,H=0.11,label=first",
		"--wave", "d=20,T=10,H=2,label=second,marker=s,color=#1f77b4",
		"--legend", "lower right")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)
	assertNonEmptyFile(t, path)
}

func TestRenderCommandRejectsBadInput(t *testing.T) {
	home := t.TempDir()
	_, err := execute(t, home, "render", "-o", filepath.Join(home, "x.png"), "--wave", "d=1,T=2")
	require.Error(t, err)

	_, err = execute(t, home, "render", "-o", filepath.Join(home, "x.png"), "--wave", "d=1,T=2,H=0.1", "--legend", "middle")
	require.ErrorIs(t, err, diagram.ErrUnknownLocation)

	_, err = execute(t, home, "render", "-o", filepath.Join(home, "noext"))
	require.Error(t, err)
}

func TestRenderUsesConfiguredOutput(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "configured.svg")
	cfg := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("output: "+path+"\nfigure:\n  width: 6\n  height: 4\n"), 0o644))

	_, err := execute(t, home, "--config", cfg, "render", "--no-legend", "--wave", "d=1,T=2,H=0.05,label=a")
	require.NoError(t, err)
	assertNonEmptyFile(t, path)
}

func TestWavesLifecycle(t *testing.T) {
	home := t.TempDir()

	out, err := execute(t, home, "waves", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No waves stored")

	out, err = execute(t, home, "waves", "add", "--label", "pier", "--depth", "4", "--period", "9", "--height", "1.1", "--marker", "o", "--color", "teal")
	require.NoError(t, err)
	id := strings.TrimSpace(out)
	require.NotEmpty(t, id)
	assert.FileExists(t, filepath.Join(home, ".lemehaute", "waves", id+".json"))

	out, err = execute(t, home, "waves", "list")
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "pier")

	path := filepath.Join(home, "saved.png")
	_, err = execute(t, home, "render", "--saved", "-o", path)
	require.NoError(t, err)
	assertNonEmptyFile(t, path)

	out, err = execute(t, home, "waves", "rm", id)
	require.NoError(t, err)
	assert.Contains(t, out, "deleted "+id)

	_, err = execute(t, home, "waves", "rm", id)
	require.Error(t, err)
}

func TestWavesDirFlag(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, "elsewhere")
	_, err := execute(t, home, "--waves-dir", dir, "waves", "add", "--label", "x", "--depth", "1", "--period", "1", "--height", "0.1")
	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestExampleCommand(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "example.pdf")
	out, err := execute(t, home, "example", "--out", path)
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)
	assertNonEmptyFile(t, path)
}

func TestBuoyCommand(t *testing.T) {
	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)
	httpmock.RegisterResponder("GET", "https://www.ndbc.noaa.gov/data/realtime2/46026.spec",
		httpmock.NewStringResponder(http.StatusOK, "#YY  MM DD hh mm WVHT  SwH  SwP  WWH  WWP SwD WWD  STEEPNESS  APD MWD\n"+
			"2025 08 14 17 40  1.2  1.1 12.5  0.4  4.0 WNW  W      AVERAGE  8.3 289\n"))

	home := t.TempDir()
	path := filepath.Join(home, "buoy.png")
	out, err := execute(t, home, "buoy", "--station", "46026", "--depth", "20", "--save", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "46026 2025-08-14 17:40")
	assert.Contains(t, out, "saved ")
	assertNonEmptyFile(t, path)

	out, err = execute(t, home, "waves", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "buoy 46026")

	_, err = execute(t, home, "buoy", "--station", "46026")
	require.Error(t, err, "a site depth is required")
}
