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

type mergeOptions struct {
	Resolver string
}

func newMergeCommand(v *viper.Viper, a *app) (*cobra.Command, error) {
	flags := mergeOptions{}

	cmd := &cobra.Command{
		Use:   "merge FILE...",
		Short: "Deep-merge documents from left to right",
		Long: `Deep-merge mapping documents from left to right.

Nested mappings present in both documents are merged key by key. Any other
conflict is decided by the resolver; without one the later document wins.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.merge(args, flags)
		},
	}

	opts := []cli.Opt{
		{
			DestP: &flags.Resolver,
			Flag:  "resolver",
			Desc:  fmt.Sprintf("conflict resolver, one of %s", strings.Join(semantic.ResolverNames(), ", ")),
			Short: 'r',
		},
	}
	if err := cli.BindOptions(v, cmd, opts); err != nil {
		return nil, err
	}
	return cmd, nil
}

func (a *app) merge(paths []string, flags mergeOptions) error {
	var resolver semantic.Resolver
	if flags.Resolver != "" {
		r, err := semantic.LookupResolver(flags.Resolver)
		if err != nil {
			return err
		}
		resolver = r
	}

	docs, err := document.LoadAll(paths)
	if err != nil {
		return err
	}

	merged := docs[0]
	for i, doc := range docs[1:] {
		merged, err = merged.Merge(doc, resolver)
		if err != nil {
			return fmt.Errorf("merging %s: %w", paths[i+1], err)
		}
	}

	a.log.Debug("Merged documents",
		zap.Int("documents", len(docs)),
		zap.Int("keys", merged.Len()),
		zap.String("resolver", flags.Resolver))
	return a.write(semantic.Map(merged))
}
