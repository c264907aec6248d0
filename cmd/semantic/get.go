package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-semantic-collections/internal/document"
	"github.com/hasbyte1/go-semantic-collections/semantic"
)

func newGetCommand(_ *viper.Viper, a *app) (*cobra.Command, error) {
	return &cobra.Command{
		Use:   "get FILE PATH",
		Short: "Print the value at a dot-separated path",
		Long: `Print the value at a dot-separated path such as "db.host".

A nested mapping is printed as a copy of its own keys.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.get(args[0], args[1])
		},
	}, nil
}

func (a *app) get(path, key string) error {
	m, err := document.Load(path)
	if err != nil {
		return err
	}

	var v semantic.Value
	if !strings.Contains(key, ".") {
		v, err = m.Attr(key)
		if err != nil {
			return err
		}
	} else {
		var ok bool
		if v, ok = m.Lookup(key); !ok {
			return fmt.Errorf("%w: no value at path %q", semantic.ErrAttributeNotFound, key)
		}
	}

	a.log.Debug("Resolved path", zap.String("path", key), zap.Stringer("kind", v.Kind()))
	return a.write(v)
}
