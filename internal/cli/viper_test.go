package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

type testOptions struct {
	format    string
	count     int
	recursive bool
	keys      []string
	level     zapcore.Level
}

func newTestCommand(t *testing.T, o *testOptions) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{
		Use:  "semantic",
		RunE: func(*cobra.Command, []string) error { return nil },
	}
	opts := []Opt{
		{DestP: &o.format, Flag: "format", Default: "json", Desc: "output format", Short: 'f', Persistent: true},
		NewOpt(&o.count, "count", 3, "a number"),
		NewOpt(&o.recursive, "recursive", true, "recurse"),
		NewOpt(&o.keys, "include", nil, "keys"),
		NewOpt(&o.level, "log-level", zapcore.WarnLevel, "log level"),
	}
	require.NoError(t, BindOptions(NewViper("semantic"), cmd, opts))
	return cmd
}

func TestBindOptionsDefaults(t *testing.T) {
	var o testOptions
	cmd := newTestCommand(t, &o)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "json", o.format)
	assert.Equal(t, 3, o.count)
	assert.True(t, o.recursive)
	assert.Empty(t, o.keys)
	assert.Equal(t, zapcore.WarnLevel, o.level)
}

func TestBindOptionsFlags(t *testing.T) {
	var o testOptions
	cmd := newTestCommand(t, &o)
	cmd.SetArgs([]string{"-f", "yaml", "--count", "7", "--recursive=false", "--include", "a,b", "--log-level", "debug"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "yaml", o.format)
	assert.Equal(t, 7, o.count)
	assert.False(t, o.recursive)
	assert.Equal(t, []string{"a", "b"}, o.keys)
	assert.Equal(t, zapcore.DebugLevel, o.level)
}

func TestBindOptionsEnv(t *testing.T) {
	t.Setenv("SEMANTIC_FORMAT", "yaml")
	t.Setenv("SEMANTIC_LOG_LEVEL", "error")
	t.Setenv("SEMANTIC_COUNT", "9")

	var o testOptions
	cmd := newTestCommand(t, &o)
	cmd.SetArgs([]string{"--count", "1"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "yaml", o.format)
	assert.Equal(t, zapcore.ErrorLevel, o.level)
	assert.Equal(t, 1, o.count, "flags win over the environment")
}

func TestBindOptionsBadEnvLevel(t *testing.T) {
	t.Setenv("SEMANTIC_LOG_LEVEL", "loud")
	var level zapcore.Level
	err := BindOptions(NewViper("semantic"), &cobra.Command{Use: "x"}, []Opt{
		NewOpt(&level, "log-level", zapcore.InfoLevel, "log level"),
	})
	assert.Error(t, err)
}

func TestBindOptionsUnknownType(t *testing.T) {
	var f float64
	err := BindOptions(NewViper("semantic"), &cobra.Command{Use: "x"}, []Opt{NewOpt(&f, "ratio", 1.0, "")})
	assert.Error(t, err)
}

func TestLevelValue(t *testing.T) {
	var level zapcore.Level
	v := newLevelValue(zapcore.InfoLevel, &level)
	assert.Equal(t, "info", v.String())
	require.NoError(t, v.Set("warn"))
	assert.Equal(t, zapcore.WarnLevel, level)
	assert.Error(t, v.Set("chatty"))
	assert.Equal(t, "Log-Level", v.Type())
}
