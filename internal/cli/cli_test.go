package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucrnz/readable"
	"github.com/lucrnz/readable/internal/version"
)

func run(t *testing.T, fs afero.Fs, args ...string) (string, string, error) {
	t.Helper()
	if fs == nil {
		fs = afero.NewMemMapFs()
	}
	cmd := NewRootCommand(fs)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"joined args", []string{"parse", "1y", "2mo", "3w", "4d", "5h", "6m", "7s", "8ms"}, "38898367008\n"},
		{"single arg", []string{"parse", "1y 1w"}, "32140800000\n"},
		{"number", []string{"parse", "100"}, "100\n"},
		{"no args", []string{"parse"}, "0\n"},
		{"tokens", []string{"parse", "--tokens", "1h", "30m"}, "5400000\n"},
		{"separator", []string{"parse", "-s", ",", "1h,30m"}, "5400000\n"},
		{"separator regex", []string{"parse", "--separator-regex", `\s*\+\s*`, "1h + 30m"}, "5400000\n"},
		{"human", []string{"parse", "--human", "1y 2mo 3w 4d 5h 6m 7s 8ms"}, "38,898,367,008\n"},
		{"duration", []string{"parse", "-d", "1h 30m"}, "5400000\t1h30m0s\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, nil, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	_, _, err := run(t, nil, "parse", "1y foobar 2h")
	require.ErrorIs(t, err, readable.ErrInvalidPattern)
	assert.EqualError(t, err, `unexpected value pattern: "foobar"`)

	_, _, err = run(t, nil, "parse", "--separator-regex", "(", "1h")
	assert.ErrorContains(t, err, "invalid --separator-regex")

	_, _, err = run(t, nil, "parse", "-s", ",", "--separator-regex", ",", "1h")
	assert.Error(t, err)

	_, _, err = run(t, nil, "parse", "--config", "missing.yaml", "1h")
	assert.ErrorContains(t, err, "failed to read config")
}

func TestFormatCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default", []string{"format", "38898367008"}, "1y 2mo 3w 4d 5h 6m 7s 8ms\n"},
		{"zero", []string{"format", "0"}, "\n"},
		{"separator", []string{"format", "-s", ";", "38898367008"}, "1y;2mo;3w;4d;5h;6m;7s;8ms\n"},
		{"array", []string{"format", "--array", "90061001"}, "1d\n1h\n1m\n1s\n1ms\n"},
		{"json", []string{"format", "--json", "60000"}, "\"1m\"\n"},
		{"json array", []string{"format", "--json", "--array", "90061001"}, "[\"1d\",\"1h\",\"1m\",\"1s\",\"1ms\"]\n"},
		{"go duration", []string{"format", "--go", "1h30m"}, "1h 30m\n"},
		{"go days", []string{"format", "-g", "9d"}, "1w 2d\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, nil, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestFormatCommandErrors(t *testing.T) {
	_, _, err := run(t, nil, "format", "soon")
	require.ErrorIs(t, err, readable.ErrNotANumber)
	assert.EqualError(t, err, "unexpected value: soon is not convertible to number")

	_, _, err = run(t, nil, "format", "--", "-5")
	require.ErrorIs(t, err, readable.ErrNegative)

	_, _, err = run(t, nil, "format", "--go", "1y")
	assert.ErrorContains(t, err, `invalid Go duration "1y"`)

	_, _, err = run(t, nil, "format")
	assert.ErrorContains(t, err, "accepts 1 arg(s)")
}

func TestConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "de.yaml", []byte(`parse:
  hour: [stunden, stunde, std]
format:
  hour: std
`), 0o644))

	out, _, err := run(t, fs, "parse", "--config", "de.yaml", "2std 5m")
	require.NoError(t, err)
	assert.Equal(t, "7500000\n", out)

	out, _, err = run(t, fs, "format", "-c", "de.yaml", "7500000")
	require.NoError(t, err)
	assert.Equal(t, "2std 5m\n", out)
}

func TestLogging(t *testing.T) {
	_, stderr, err := run(t, nil, "--log-level", "debug", "--log-format", "json", "parse", "1s")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"parsed"`)

	_, _, err = run(t, nil, "--log-format", "xml", "parse", "1s")
	assert.EqualError(t, err, "unsupported log format: xml")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, nil, "version")
	require.NoError(t, err)
	assert.Equal(t, version.Print()+"\n", out)
}
