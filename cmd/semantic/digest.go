package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-semantic-collections/internal/document"
)

func newDigestCommand(_ *viper.Viper, a *app) (*cobra.Command, error) {
	return &cobra.Command{
		Use:   "digest FILE...",
		Short: "Print a content digest for each document",
		Long: `Print the BLAKE2b-256 digest of each document's content.

The digest ignores mapping key order and formatting, so the same data in
JSON and YAML hashes the same. Ints and floats hash differently.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.digest(args)
		},
	}, nil
}

func (a *app) digest(paths []string) error {
	var err error
	for _, path := range paths {
		c, loadErr := document.LoadContainer(path)
		if loadErr != nil {
			err = multierr.Append(err, loadErr)
			continue
		}
		a.log.Debug("Hashed document", zap.String("path", path), zap.Int("len", c.Len()))
		if _, writeErr := fmt.Fprintf(a.out, "%x  %s\n", c.Digest(), path); writeErr != nil {
			return writeErr
		}
	}
	return err
}
