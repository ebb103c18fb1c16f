// Copyright (c) 2026 ArtScope. All rights reserved.

// Command artscope browses the museum collection from the terminal.
//
// It shares the taxonomy, collection client and reconciler with the API server:
//
//	artscope taxonomy periods
//	artscope browse --medium gold --medium silver --period "1400–1600 CE"
//	artscope show 436535
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jenna9192/artscope/internal/collection"
	"github.com/jenna9192/artscope/internal/platform/config"
	"github.com/jenna9192/artscope/internal/platform/constants"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	baseURL string
	debug   bool
	asJSON  bool
	cfg     *config.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	options := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:          "artscope",
		Short:        "Browse the museum collection by department, medium and period",
		Version:      constants.AppVersion,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("base-url") {
				cfg.CollectionBaseURL = options.baseURL
			}
			options.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&options.baseURL, "base-url", "", "collection API base URL (default from COLLECTION_BASE_URL)")
	rootCmd.PersistentFlags().BoolVar(&options.debug, "debug", false, "log debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&options.asJSON, "json", false, "print JSON instead of text")

	rootCmd.AddCommand(taxonomyCmd(options))
	rootCmd.AddCommand(browseCmd(options))
	rootCmd.AddCommand(showCmd(options))

	return rootCmd
}

// logger writes human-readable logs to stderr so stdout stays pipeable.
func (options *globalOptions) logger(stderr io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if options.debug || (options.cfg != nil && options.cfg.Debug) {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
}

// client builds an uncached collection client; the CLI is a one-shot process.
func (options *globalOptions) client(logger *slog.Logger) *collection.Client {
	return collection.NewClient(collection.Options{
		BaseURL:   options.cfg.CollectionBaseURL,
		Timeout:   options.cfg.UpstreamTimeout,
		UserAgent: options.cfg.UserAgent,
		Logger:    logger,
	})
}

func printJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
