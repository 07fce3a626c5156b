package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calgrid/calgrid/internal/config"
	"github.com/calgrid/calgrid/pkg/cache"
)

// newCacheCmd manages the file-based layout cache.
func newCacheCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the layout result cache",
	}
	cmd.AddCommand(newCacheInfoCmd(configPath))
	cmd.AddCommand(newCacheClearCmd(configPath))
	return cmd
}

// fileCacheFromConfig opens the file cache the config points at. Other
// backends are managed out of band (redis) or don't persist (memory).
func fileCacheFromConfig(configPath *string) (*cache.FileCache, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}
	dir := cfg.Cache.Dir
	if dir == "" {
		d, err := config.DefaultCacheDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	return cache.NewFileCache(dir)
}

func newCacheInfoCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cache location and size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := fileCacheFromConfig(configPath)
			if err != nil {
				return err
			}
			count, size, err := fc.Stats()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "dir:     %s\nentries: %d\nsize:    %d bytes\n", fc.Dir(), count, size)
			return nil
		},
	}
}

func newCacheClearCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached layout results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := fileCacheFromConfig(configPath)
			if err != nil {
				return err
			}
			if err := fc.Clear(); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("cache cleared", "dir", fc.Dir())
			return nil
		},
	}
}
