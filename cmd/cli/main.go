// Package main provides the command-line companion to the gateway. It runs
// the same services as the HTTP server, without the server.
//
// Run with: go run ./cmd/cli logo --kind movie --id 603
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fleveque/media-gateway/internal/config"
	"github.com/fleveque/media-gateway/internal/model"
	"github.com/fleveque/media-gateway/internal/server"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// rootCmd builds the command tree:
//
//	gateway-cli logo --kind movie --id 603
//	gateway-cli suggest "heist movies"
func rootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "gateway-cli",
		Short:        "Media gateway CLI tools",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log provider activity to stderr")

	root.AddCommand(logoCmd(&verbose))
	root.AddCommand(suggestCmd(&verbose))
	return root
}

func logoCmd(verbose *bool) *cobra.Command {
	var kind, id string

	cmd := &cobra.Command{
		Use:   "logo",
		Short: "Resolve the best logo for a movie or series",
		RunE: func(cmd *cobra.Command, args []string) error {
			mediaKind, err := model.ParseMediaKind(kind)
			if err != nil {
				return err
			}

			deps, cleanup, err := setup(*verbose)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, stop := signalContext()
			defer stop()

			asset, err := deps.Assets.Resolve(ctx, mediaKind, id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), asset)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "movie", "Media kind: movie or tv")
	cmd.Flags().StringVar(&id, "id", "", "TMDB ID")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func suggestCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <query>",
		Short: "Ask the model for movie titles matching a free-text query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, cleanup, err := setup(*verbose)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, stop := signalContext()
			defer stop()

			titles := deps.Suggestions.Suggest(ctx, strings.Join(args, " "))
			return printJSON(cmd.OutOrStdout(), titles)
		},
	}
}

// setup loads configuration and builds the services. The returned cleanup
// flushes the logger.
func setup(verbose bool) (server.Deps, func(), error) {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("GATEWAY_CONFIG_PATH"))
	if err != nil {
		return server.Deps{}, nil, fmt.Errorf("loading config: %w", err)
	}

	logger := zap.NewNop()
	if verbose {
		// Development logger writes to stderr, leaving stdout for results.
		logger, err = zap.NewDevelopment()
		if err != nil {
			return server.Deps{}, nil, fmt.Errorf("creating logger: %w", err)
		}
	}

	return server.NewDeps(cfg, logger), func() { _ = logger.Sync() }, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
