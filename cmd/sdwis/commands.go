// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/speedofwater/internal/config"
	"github.com/tomtom215/speedofwater/internal/dashboard"
	"github.com/tomtom215/speedofwater/internal/ingest"
	"github.com/tomtom215/speedofwater/internal/logging"
	"github.com/tomtom215/speedofwater/internal/store"
)

// cli carries what the commands share. Tests swap loadConfig and openStore.
type cli struct {
	loadConfig func() (*config.Config, error)
	openStore  func(ctx context.Context, cfg config.DatabaseConfig) (storeHandle, error)
	out        io.Writer
	cfg        *config.Config
}

// storeHandle is a store that can be both read and loaded.
type storeHandle interface {
	store.RecordStore
	store.Loader
}

var errMemoryBackend = errors.New("the memory backend cannot be loaded; set STORE_BACKEND=mongo")

func newRootCmd(c *cli) *cobra.Command {
	if c.openStore == nil {
		c.openStore = openStore
	}

	root := &cobra.Command{
		Use:           "sdwis",
		Short:         "Load and check the SDWIS drinking water collections",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			logging.Init(logging.Config{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Caller: cfg.Logging.Caller,
			})
			c.cfg = cfg
			return nil
		},
	}
	root.SetOut(c.out)

	root.AddCommand(newIngestCmd(c), newSeedCmd(c), newValidateCmd(c))
	return root
}

func newIngestCmd(c *cli) *cobra.Command {
	var (
		dir       string
		batchSize int
	)
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Replace the collections with the EPA SDWA CSV exports in --dir",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.cfg.Database.Backend == "memory" {
				return errMemoryBackend
			}
			ctx := cmd.Context()
			s, err := c.openStore(ctx, c.cfg.Database)
			if err != nil {
				return err
			}
			defer closeStore(s)

			reader, err := ingest.OpenDuckDB()
			if err != nil {
				return err
			}
			defer func() { _ = reader.Close() }()

			opts := ingest.OptionsFromConfig(c.cfg.Ingest)
			if batchSize > 0 {
				opts.BatchSize = batchSize
			}
			report, err := ingest.New(reader, s, opts).Run(ctx, dir)
			if err != nil {
				return err
			}
			renderIngestReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "data", "directory holding the SDWA_*.csv exports")
	cmd.Flags().IntVar(&batchSize, "batch-size", 0, "documents per insert (default from INGEST_BATCH_SIZE)")
	return cmd
}

func newSeedCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace the collections with the built-in sample dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.cfg.Database.Backend == "memory" {
				return errMemoryBackend
			}
			ctx := cmd.Context()
			s, err := c.openStore(ctx, c.cfg.Database)
			if err != nil {
				return err
			}
			defer closeStore(s)

			counts, err := seed(ctx, s, store.SampleDataset(time.Now()))
			if err != nil {
				return err
			}
			for _, src := range ingest.DefaultSources() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-24s %d documents\n", src.Collection, counts[src.Collection])
			}
			return nil
		},
	}
}

func newValidateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Print the data-quality report for the loaded collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := c.openStore(ctx, c.cfg.Database)
			if err != nil {
				return err
			}
			defer closeStore(s)

			opts := dashboard.OptionsFromConfig(c.cfg.API)
			opts.CacheTTL = 0
			report, err := dashboard.NewService(s, opts).DataQuality(ctx)
			if err != nil {
				return fmt.Errorf("failed to build data-quality report: %w", err)
			}
			renderQualityReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

// seed writes every collection of data through l and ensures indexes.
func seed(ctx context.Context, l store.Loader, data store.Dataset) (map[string]int, error) {
	docs := data.Documents()
	counts := make(map[string]int, len(docs))
	for _, src := range ingest.DefaultSources() {
		if err := l.ResetCollection(ctx, src.Collection); err != nil {
			return nil, fmt.Errorf("failed to reset %s: %w", src.Collection, err)
		}
		batch := docs[src.Collection]
		if len(batch) > 0 {
			if err := l.InsertBatch(ctx, src.Collection, batch); err != nil {
				return nil, fmt.Errorf("failed to seed %s: %w", src.Collection, err)
			}
		}
		counts[src.Collection] = len(batch)
	}
	if err := l.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}
	return counts, nil
}

// openStore opens the configured backend for reading and loading.
func openStore(ctx context.Context, cfg config.DatabaseConfig) (storeHandle, error) {
	if cfg.Backend == "memory" {
		return store.NewMemoryStore(store.SampleDataset(time.Now())), nil
	}
	s, err := store.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	return s, nil
}

func closeStore(s store.RecordStore) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Close(ctx); err != nil {
		logging.Warn().Err(err).Msg("Error closing record store")
	}
}
