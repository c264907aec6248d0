package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-semantic-collections/semantic"
)

func newStatsCommand(_ *viper.Viper, a *app) (*cobra.Command, error) {
	return &cobra.Command{
		Use:   "stats VALUE...",
		Short: "Print the count, sum, mean, median and mode of the values",
		Example: `  semantic stats 1 3 5 7
  semantic stats -o yaml 2 2 3.5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.stats(parseValues(args))
		},
	}, nil
}

func (a *app) stats(s *semantic.Sequence) error {
	sum, err := s.Sum()
	if err != nil {
		return err
	}
	mean, err := s.Mean()
	if err != nil {
		return err
	}
	median, err := s.Median()
	if err != nil {
		return err
	}
	mode, err := s.Mode()
	if err != nil {
		return err
	}

	out := semantic.MappingOf(
		semantic.E("count", s.Len()),
		semantic.E("sum", sum),
		semantic.E("mean", mean),
		semantic.E("median", median),
		semantic.E("mode", mode),
	)
	a.log.Debug("Computed statistics", zap.Int("count", s.Len()))
	return a.write(semantic.Map(out))
}
