package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/openesa/esacore/internal/query"
	"github.com/openesa/esacore/internal/store"
)

const defaultLabelCount = 10

func newQueryCmd() *cobra.Command {
	var (
		storePath  string
		labelsPath string
		configPath string
		topN       int
	)

	cmd := &cobra.Command{
		Use:   "query [text]",
		Short: "Map free text to its concept vector and print the top concepts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, closeStore, err := openSession(storePath, labelsPath, configPath)
			if err != nil {
				return err
			}
			defer closeStore()

			labels, _ := session.GetVector(args[0], topN)
			printLabels(labels)
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&storePath, "store", "", "directory of the backing store (required)")
	cmd.PersistentFlags().StringVar(&labelsPath, "labels", "", "path to the label map file (required)")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a build config YAML file (default: built-in defaults)")
	cmd.Flags().IntVar(&topN, "top", defaultLabelCount, "number of top concept labels to print")
	cmd.MarkPersistentFlagRequired("store")
	cmd.MarkPersistentFlagRequired("labels")

	cmd.AddCommand(newSimilarityCmd(&storePath, &labelsPath, &configPath))
	return cmd
}

func newSimilarityCmd(storePath, labelsPath, configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "similarity [text-a] [text-b]",
		Short: "Print the cosine similarity between two texts' concept vectors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, closeStore, err := openSession(*storePath, *labelsPath, *configPath)
			if err != nil {
				return err
			}
			defer closeStore()

			_, va := session.GetVector(args[0], 0)
			_, vb := session.GetVector(args[1], 0)
			fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", query.Similarity(va, vb))
			return nil
		},
	}
}

// openSession opens the store, loads its config's filter chain (falling
// back to built-in defaults when configPath is empty), and returns a ready
// query.Session along with a closer for the underlying store.
func openSession(storePath, labelsPath, configPath string) (*query.Session, func(), error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg, err := loadBuildConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	chain, err := cfg.BuildFilterChain()
	if err != nil {
		return nil, nil, err
	}

	s, err := store.Open(storePath)
	if err != nil {
		return nil, nil, err
	}
	closer := func() {
		if err := s.Close(); err != nil {
			logger.Error("closing store", slog.Any("error", err))
		}
	}

	session, err := query.Open(context.Background(), s, labelsPath, chain)
	if err != nil {
		closer()
		return nil, nil, err
	}
	return session, closer, nil
}

func printLabels(labels []query.Label) {
	sort.SliceStable(labels, func(i, j int) bool { return labels[i].Score > labels[j].Score })
	for _, l := range labels {
		fmt.Printf("%8.4f  %-10d %s\n", l.Score, l.DocID, l.Title)
	}
}
