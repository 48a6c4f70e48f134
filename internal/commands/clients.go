package commands

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/synthbank-dev/synthbank/internal/clients"
	"github.com/synthbank-dev/synthbank/internal/config"
	"github.com/synthbank-dev/synthbank/internal/logger"
	"github.com/synthbank-dev/synthbank/internal/rng"
	"github.com/synthbank-dev/synthbank/internal/runlog"
)

func newClientsCommand() *cobra.Command {
	var cfgPath string
	var out string
	var count int
	var seed int64

	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Generate the synthetic client credit-profile dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("count") {
				cfg.Clients.Count = count
			}
			if cmd.Flags().Changed("seed") {
				cfg.Clients.Seed = seed
			}
			if cmd.Flags().Changed("out") {
				cfg.Clients.OutFile = out
			}
			if err := cfg.Clients.Validate(); err != nil {
				return fmt.Errorf("invalid generation profile: %w", err)
			}

			outPath, err := filepath.Abs(cfg.Clients.OutFile)
			if err != nil {
				return fmt.Errorf("resolving output path: %w", err)
			}

			return runClients(cfg, outPath)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "generation profile (YAML), defaults built in")
	cmd.Flags().StringVar(&out, "out", "", "output file path")
	cmd.Flags().IntVar(&count, "count", 0, "number of clients to generate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed")

	return cmd
}

func runClients(cfg *config.Config, outPath string) error {
	log := logger.New()
	runID := uuid.NewString()

	log.Info().
		Str("run_id", runID).
		Int("count", cfg.Clients.Count).
		Int64("seed", cfg.Clients.Seed).
		Msg("generating clients")

	gen := clients.NewGenerator(rng.New(cfg.Clients.Seed), time.Now)
	set, err := gen.Generate(cfg.Clients.Count)
	if err != nil {
		return fmt.Errorf("generating clients: %w", err)
	}

	if verrs := clients.Validate(set, time.Now); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return fmt.Errorf("client validation failed: %s", strings.Join(msgs, "; "))
	}

	if err := clients.Save(outPath, set); err != nil {
		return fmt.Errorf("writing client document: %w", err)
	}

	if err := runlog.Append(filepath.Dir(outPath), runlog.Entry{
		Timestamp: time.Now().UTC(),
		RunID:     runID,
		Generator: "clients",
		Records:   len(set),
		Seed:      cfg.Clients.Seed,
		Output:    outPath,
	}); err != nil {
		log.Warn().Err(err).Msg("failed to append run log")
	}

	summary := clients.Summarize(set)
	log.Info().Str("run_id", runID).Int("records", summary.Total).Msg("clients written")
	fmt.Printf("Wrote %s to %s\n", summary, outPath)
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading generation profile: %w", err)
	}
	return cfg, nil
}
