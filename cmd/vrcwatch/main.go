// Command vrcwatch tails the newest VRChat output log, matches lines against
// configured keyword rules, journals the matches to dated files, and shows
// them color-coded in a terminal UI. Matches can optionally be forwarded to a
// Discord webhook.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"vrcwatch/internal/app"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "vrcwatch: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:     "vrcwatch",
		Short:   "Watch VRChat logs for configured keywords",
		Long:    "vrcwatch tails the newest VRChat output log, highlights lines matching configured keywords, journals them to dated files, and optionally forwards them to a Discord webhook.",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Run(ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default ~/.config/vrcwatch/config.toml)")
	cmd.Flags().StringVar(&opts.PrefsPath, "prefs", "", "preferences file path (default ~/.config/vrcwatch/prefs.toml)")
	cmd.Flags().IntVar(&opts.PollMS, "poll", 0, "poll interval in milliseconds (overrides config)")
	cmd.Flags().BoolVar(&opts.NoDiscord, "no-discord", false, "disable Discord notifications")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug-level diagnostics")

	cmd.SilenceUsage = true

	return cmd
}
