package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-semantic-collections/internal/cli"
	"github.com/hasbyte1/go-semantic-collections/semantic"
)

type whereOptions struct {
	Op    string
	Value string
	Kind  string
}

func newWhereCommand(v *viper.Viper, a *app) (*cobra.Command, error) {
	flags := whereOptions{}

	cmd := &cobra.Command{
		Use:   "where VALUE...",
		Short: "Print the values that pass a filter",
		Long: `Print the values that pass a filter.

Filter either by comparison, with --op and --value together, or by kind,
with --kind alone. Values are read as null, integers, floats, booleans or
strings.`,
		Example: `  semantic where 1 5 3 8 --op '>' --value 3
  semantic where 1 a 2.5 --kind string`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.where(parseValues(args), flags.filter(cmd))
		},
	}

	opts := []cli.Opt{
		{
			DestP: &flags.Op,
			Flag:  "op",
			Desc:  "comparison operator: ==, !=, >, <, >= or <=",
		},
		{
			DestP: &flags.Value,
			Flag:  "value",
			Desc:  "value to compare against",
		},
		{
			DestP: &flags.Kind,
			Flag:  "kind",
			Desc:  "keep values of this kind: null, bool, int, float or string",
		},
	}
	if err := cli.BindOptions(v, cmd, opts); err != nil {
		return nil, err
	}
	return cmd, nil
}

// filter builds the filter from whichever flags were given. Invalid
// combinations are left for Sequence.Where to reject.
func (o whereOptions) filter(cmd *cobra.Command) semantic.Filter {
	var f semantic.Filter
	if o.Kind != "" {
		want := strings.ToLower(o.Kind)
		f.Predicate = func(v semantic.Value) bool { return v.Kind().String() == want }
	}
	if o.Op != "" {
		f.Operator = semantic.Operator(o.Op)
	}
	if o.Value != "" || cmd.Flags().Changed("value") {
		v := semantic.ParseScalar(o.Value)
		f.Value = &v
	}
	return f
}

func (a *app) where(s *semantic.Sequence, f semantic.Filter) error {
	out, err := s.Where(f)
	if err != nil {
		return err
	}
	a.log.Debug("Filtered values", zap.Int("in", s.Len()), zap.Int("out", out.Len()))
	return a.write(semantic.Seq(out))
}
