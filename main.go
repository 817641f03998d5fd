package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Douke77/bookstore-manager/bookstore"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := LoadConfig()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	root := &cobra.Command{
		Use:          "bookstore-manager",
		Short:        "Manage a small bookstore's sales records",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := openManager(cfg)
			if err != nil {
				return err
			}
			defer mgr.Close()
			runMenu(mgr)
			return nil
		},
	}

	report := &cobra.Command{
		Use:   "report",
		Short: "Print the sale report and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := openManager(cfg)
			if err != nil {
				return err
			}
			defer mgr.Close()
			return printSaleReport(mgr)
		},
	}
	root.AddCommand(report)

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("exiting")
		os.Exit(1)
	}
}

func openManager(cfg Config) (*bookstore.Manager, error) {
	log.Info().Str("db", cfg.DBPath).Msg("opening bookstore database")
	mgr, err := bookstore.NewManager(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return mgr, nil
}
