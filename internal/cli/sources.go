package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calgrid/calgrid/internal/config"
	"github.com/calgrid/calgrid/pkg/source"
	"github.com/calgrid/calgrid/pkg/source/ics"
	"github.com/calgrid/calgrid/pkg/source/mongo"
)

// newSourcesCmd inspects the event sources listed in the config file.
func newSourcesCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Work with configured event sources",
	}
	cmd.AddCommand(newSourcesCheckCmd(configPath))
	return cmd
}

// newSourcesCheckCmd loads every configured source once and reports the
// event count, so a broken subscription shows up before it ruins a view.
func newSourcesCheckCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load each configured source and report event counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			sources, closeAll, err := openSources(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeAll()

			if len(sources) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no sources configured")
				return nil
			}

			failures := 0
			for _, src := range sources {
				events, err := src.Load(ctx)
				if err != nil {
					failures++
					logger.Error("source failed", "source", src.Name(), "err", err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-30s %d events\n", src.Name(), len(events))
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d sources failed", failures, len(sources))
			}
			return nil
		},
	}
}

// openSources builds every source the config lists. The returned closer
// releases sources holding connections.
func openSources(ctx context.Context, cfg *config.Config) ([]source.Source, func(), error) {
	var (
		sources []source.Source
		closers []func()
	)

	for _, s := range cfg.Sources.ICS {
		sources = append(sources, ics.New(s.Name, s.Location))
	}

	if m := cfg.Sources.Mongo; m != nil {
		src, err := mongo.New(ctx, mongo.Config{
			URI:        m.URI,
			Database:   m.Database,
			Collection: m.Collection,
		})
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
		closers = append(closers, func() { _ = src.Close(ctx) })
	}

	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}
	return sources, closeAll, nil
}
