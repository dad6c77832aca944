package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/openesa/esacore/internal/build"
	"github.com/openesa/esacore/internal/corpus"
	"github.com/openesa/esacore/internal/store"
)

func newBuildCmd() *cobra.Command {
	var (
		dumpPath   string
		storePath  string
		labelsPath string
		configPath string
		limit      int
		minFreq    float32
		minFreqSet bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a concept index from a Wikipedia dump",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

			cfg, err := loadBuildConfig(configPath)
			if err != nil {
				return err
			}
			if minFreqSet {
				cfg.MinFreq = minFreq
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			s, err := store.Open(storePath)
			if err != nil {
				return err
			}
			defer s.Close()

			stripper := corpus.DefaultMarkupStripper{}
			source, err := corpus.OpenWikidump(dumpPath, limit, stripper, logger)
			if err != nil {
				return err
			}
			defer source.Close()

			ctx, cancel := signalContext()
			defer cancel()

			builder := build.New(cfg, s, labelsPath, logger)
			fingerprint, err := builder.Run(ctx, source)
			if err != nil {
				return err
			}
			logger.Info("build finished", slog.String("filter_chain_fingerprint", fingerprint))
			return nil
		},
	}

	cmd.Flags().StringVar(&dumpPath, "dump", "", "path to a bzip2-compressed MediaWiki export dump (required)")
	cmd.Flags().StringVar(&storePath, "store", "", "directory for the backing store (required)")
	cmd.Flags().StringVar(&labelsPath, "labels", "", "path to write the label map file (required)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a build config YAML file (default: built-in defaults)")
	cmd.Flags().IntVar(&limit, "limit", 0, "cap the number of documents ingested (0 = unlimited)")
	cmd.Flags().Float32Var(&minFreq, "min-freq", 0, "override min_freq from the config (spec leaves no default; see config)")
	cmd.MarkFlagRequired("dump")
	cmd.MarkFlagRequired("store")
	cmd.MarkFlagRequired("labels")
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		minFreqSet = cmd.Flags().Changed("min-freq")
		return nil
	}

	return cmd
}

func loadBuildConfig(path string) (*build.Config, error) {
	if path == "" {
		return build.DefaultConfig()
	}
	return build.LoadConfig(path)
}

// signalContext returns a context cancelled on SIGINT/SIGTERM, so a long
// ingest run can be interrupted cleanly.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
