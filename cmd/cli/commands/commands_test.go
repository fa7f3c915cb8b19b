package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucax88x/datestamp/cmd/cli/commands"
	"github.com/lucax88x/datestamp/cmd/cli/console"
	"github.com/lucax88x/datestamp/internal/clock"
	"github.com/lucax88x/datestamp/internal/timefmt"
)

func execute(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()

	return executeWithClock(t, clock.NewSeededClock(time.Date(2024, 3, 5, 8, 9, 10, 0, time.UTC)), configPath, args...)
}

func executeWithClock(t *testing.T, c clock.Clock, configPath string, args ...string) (string, error) {
	t.Helper()

	if configPath == "" {
		configPath = filepath.Join(t.TempDir(), "missing.yaml")
	}

	var stdout, stderr bytes.Buffer

	rootCmd := commands.NewRootCmd(context.Background(), commands.Deps{
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Viper:   viper.New(),
		Console: &console.Console{Stdout: &stdout, Stderr: &stderr},
		Level:   new(slog.LevelVar),
		Clock:   c,
	})

	rootCmd.SetArgs(append(args, "--config", configPath))
	err := rootCmd.Execute()

	return stdout.String(), err
}

func Test_Now_Normal(t *testing.T) {
	out, err := execute(t, "", "now", "-z", "UTC")

	require.NoError(t, err)
	assert.Equal(t, "2024-03-05 08:09:10\n", out)
}

func Test_Now_Compact(t *testing.T) {
	out, err := execute(t, "", "now", "-z", "UTC", "-p", "compact")

	require.NoError(t, err)
	assert.Equal(t, "20240305080910\n", out)
}

func Test_Now_Layout(t *testing.T) {
	out, err := execute(t, "", "now", "-z", "UTC", "-l", "dd.MM.yyyy")

	require.NoError(t, err)
	assert.Equal(t, "05.03.2024\n", out)
}

func Test_Now_FromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
pattern: minutes
zone: UTC
patterns:
  minutes: yyyyMMddHHmm
`), 0o600))

	out, err := execute(t, path, "now")

	require.NoError(t, err)
	assert.Equal(t, "202403050809\n", out)
}

func Test_Now_UnknownPattern(t *testing.T) {
	_, err := execute(t, "", "now", "-p", "nope")

	assert.True(t, errors.Is(err, timefmt.ErrUnknownPattern))
}

func Test_Now_MalformedLayout(t *testing.T) {
	_, err := execute(t, "", "now", "-l", "yyyy-QQ")

	var formattingErr *timefmt.FormattingError
	assert.True(t, errors.As(err, &formattingErr))
}

func Test_Now_InvalidLogLevel(t *testing.T) {
	_, err := execute(t, "", "now", "--log-level", "loud")

	assert.Error(t, err)
}

func Test_Patterns(t *testing.T) {
	out, err := execute(t, "", "patterns", "-z", "UTC")

	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "yyyy-MM-dd HH:mm:ss")
	assert.Contains(t, out, "2024-03-05 08:09:10")
	assert.Contains(t, out, "yyyyMMddHHmmss")
	assert.Contains(t, out, "20240305080910")
}

func Test_Patterns_ClockUnavailable(t *testing.T) {
	out, err := executeWithClock(t, clock.NewSeededClock(time.Time{}), "", "patterns", "-z", "UTC")

	var clockErr *timefmt.ClockUnavailableError
	assert.True(t, errors.As(err, &clockErr))
	assert.Empty(t, out)
}

func Test_Now_ClockUnavailable(t *testing.T) {
	_, err := executeWithClock(t, clock.NewSeededClock(time.Time{}), "", "now")

	var clockErr *timefmt.ClockUnavailableError
	assert.True(t, errors.As(err, &clockErr))
}

func Test_Parse(t *testing.T) {
	out, err := execute(t, "", "parse", "2024-03-05 08:09:10", "-z", "UTC")

	require.NoError(t, err)
	assert.Equal(t, "2024-03-05T08:09:10Z\n", out)
}

func Test_Parse_Compact(t *testing.T) {
	out, err := execute(t, "", "parse", "20240305080910", "-z", "UTC", "-p", "compact")

	require.NoError(t, err)
	assert.Equal(t, "2024-03-05T08:09:10Z\n", out)
}

func Test_Parse_Invalid(t *testing.T) {
	_, err := execute(t, "", "parse", "yesterday", "-z", "UTC")

	assert.Error(t, err)
}

func Test_Parse_RequiresValue(t *testing.T) {
	_, err := execute(t, "", "parse")

	assert.Error(t, err)
}
