package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-semantic-collections/internal/cli"
	"github.com/hasbyte1/go-semantic-collections/internal/document"
	"github.com/hasbyte1/go-semantic-collections/semantic"
)

type transformOptions struct {
	Fn        string
	Include   []string
	Exclude   []string
	Recursive bool
}

func newTransformCommand(v *viper.Viper, a *app) (*cobra.Command, error) {
	flags := transformOptions{}

	cmd := &cobra.Command{
		Use:   "transform FILE",
		Short: "Apply a named function to the values of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.transform(args[0], flags)
		},
	}

	opts := []cli.Opt{
		{
			DestP:   &flags.Fn,
			Flag:    "fn",
			Default: "identity",
			Desc:    fmt.Sprintf("function to apply, one of %s", strings.Join(semantic.TransformNames(), ", ")),
		},
		{
			DestP: &flags.Include,
			Flag:  "include",
			Desc:  "only transform these keys, at every level",
		},
		{
			DestP: &flags.Exclude,
			Flag:  "exclude",
			Desc:  "never transform these keys, at every level",
		},
		{
			DestP:   &flags.Recursive,
			Flag:    "recursive",
			Default: true,
			Desc:    "descend into nested mappings and sequences",
		},
	}
	if err := cli.BindOptions(v, cmd, opts); err != nil {
		return nil, err
	}
	return cmd, nil
}

func (a *app) transform(path string, flags transformOptions) error {
	fn, err := semantic.LookupTransform(flags.Fn)
	if err != nil {
		return err
	}
	m, err := document.Load(path)
	if err != nil {
		return err
	}

	opts := []semantic.TransformOption{semantic.Recursive(flags.Recursive)}
	if len(flags.Include) > 0 {
		opts = append(opts, semantic.IncludeKeys(flags.Include...))
	}
	if len(flags.Exclude) > 0 {
		opts = append(opts, semantic.ExcludeKeys(flags.Exclude...))
	}

	out, err := m.Transform(fn, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	a.log.Debug("Transformed document",
		zap.String("fn", flags.Fn),
		zap.Strings("include", flags.Include),
		zap.Strings("exclude", flags.Exclude),
		zap.Bool("recursive", flags.Recursive))
	return a.write(semantic.Map(out))
}
