package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hasbyte1/go-semantic-collections/internal/cli"
	"github.com/hasbyte1/go-semantic-collections/internal/document"
	"github.com/hasbyte1/go-semantic-collections/internal/logger"
	"github.com/hasbyte1/go-semantic-collections/semantic"
)

type globalOptions struct {
	Format    string
	LogLevel  zapcore.Level
	LogFormat string
}

// app holds the state shared by every subcommand.
type app struct {
	opts   globalOptions
	format document.Format
	out    io.Writer
	log    *zap.Logger
}

type commandBuilder func(v *viper.Viper, a *app) (*cobra.Command, error)

func newRootCommand(v *viper.Viper, out, errOut io.Writer) (*cobra.Command, error) {
	a := &app{out: out, log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "semantic",
		Short: "Query, merge and transform JSON and YAML documents",
		Long: `semantic loads JSON (.json) and YAML (.yaml, .yml) documents into ordered
mappings and sequences, and prints results as JSON or YAML.

Every flag can also be set through an environment variable prefixed with
SEMANTIC_, for example SEMANTIC_FORMAT=yaml or SEMANTIC_LOG_LEVEL=debug.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			f, err := document.ParseFormat(a.opts.Format)
			if err != nil {
				return err
			}
			a.format = f

			logconf := logger.Config{
				Format: a.opts.LogFormat,
				Level:  a.opts.LogLevel,
			}
			log, err := logconf.New(errOut)
			if err != nil {
				return err
			}
			a.log = log.With(zap.String("command", cmd.Name()))
			return nil
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	opts := []cli.Opt{
		{
			DestP:      &a.opts.Format,
			Flag:       "format",
			Default:    "json",
			Desc:       "output format, json or yaml",
			Short:      'o',
			Persistent: true,
		},
		{
			DestP:      &a.opts.LogLevel,
			Flag:       "log-level",
			Default:    zapcore.WarnLevel,
			Desc:       "supported log levels are debug, info, warn and error",
			Persistent: true,
		},
		{
			DestP:      &a.opts.LogFormat,
			Flag:       "log-format",
			Default:    "auto",
			Desc:       "log encoding, console or json",
			Persistent: true,
		},
	}
	if err := cli.BindOptions(v, cmd, opts); err != nil {
		return nil, err
	}

	for _, build := range []commandBuilder{
		newMergeCommand,
		newGetCommand,
		newTransformCommand,
		newStatsCommand,
		newWhereCommand,
		newDigestCommand,
	} {
		sub, err := build(v, a)
		if err != nil {
			return nil, err
		}
		cmd.AddCommand(sub)
	}
	return cmd, nil
}

// write prints v in the selected output format.
func (a *app) write(v semantic.Value) error {
	return document.Encode(a.out, v, a.format)
}

// parseValues reads command-line arguments as scalars.
func parseValues(args []string) *semantic.Sequence {
	s := semantic.EmptySequence()
	for _, arg := range args {
		s.Append(semantic.ParseScalar(arg))
	}
	return s
}
