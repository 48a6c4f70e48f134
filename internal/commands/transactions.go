package commands

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/synthbank-dev/synthbank/internal/accounts"
	"github.com/synthbank-dev/synthbank/internal/config"
	"github.com/synthbank-dev/synthbank/internal/logger"
	"github.com/synthbank-dev/synthbank/internal/rng"
	"github.com/synthbank-dev/synthbank/internal/runlog"
	"github.com/synthbank-dev/synthbank/internal/transactions"
)

func newTransactionsCommand() *cobra.Command {
	var cfgPath string
	var out string
	var total int
	var numAccounts int
	var dailyCap int
	var seed int64
	var start string
	var end string

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Generate the synthetic account-transaction SQL script",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("total") {
				cfg.Transactions.Total = total
			}
			if cmd.Flags().Changed("accounts") {
				cfg.Transactions.Accounts = numAccounts
			}
			if cmd.Flags().Changed("cap") {
				cfg.Transactions.DailyCap = dailyCap
			}
			if cmd.Flags().Changed("seed") {
				cfg.Transactions.Seed = seed
			}
			if cmd.Flags().Changed("start") {
				cfg.Transactions.StartDate = start
			}
			if cmd.Flags().Changed("end") {
				cfg.Transactions.EndDate = end
			}
			if cmd.Flags().Changed("out") {
				cfg.Transactions.OutFile = out
			}
			if err := cfg.Transactions.Validate(); err != nil {
				return fmt.Errorf("invalid generation profile: %w", err)
			}

			outPath, err := filepath.Abs(cfg.Transactions.OutFile)
			if err != nil {
				return fmt.Errorf("resolving output path: %w", err)
			}

			return runTransactions(cfg, outPath)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "generation profile (YAML), defaults built in")
	cmd.Flags().StringVar(&out, "out", "", "output file path")
	cmd.Flags().IntVar(&total, "total", 0, "total number of transactions")
	cmd.Flags().IntVar(&numAccounts, "accounts", 0, "number of accounts")
	cmd.Flags().IntVar(&dailyCap, "cap", 0, "per-account daily transaction cap")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	cmd.Flags().StringVar(&start, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "end date (YYYY-MM-DD)")

	return cmd
}

func runTransactions(cfg *config.Config, outPath string) error {
	log := logger.New()
	runID := uuid.NewString()

	startDate, endDate, err := cfg.Transactions.DateRange()
	if err != nil {
		return err
	}

	log.Info().
		Str("run_id", runID).
		Int("total", cfg.Transactions.Total).
		Int("accounts", cfg.Transactions.Accounts).
		Int("daily_cap", cfg.Transactions.DailyCap).
		Int64("seed", cfg.Transactions.Seed).
		Msg("scheduling transactions")

	registry := accounts.NewRegistry(cfg.Transactions.Accounts)
	sched := transactions.NewScheduler(rng.New(cfg.Transactions.Seed), registry, cfg.Transactions.DailyCap)

	txs, err := sched.Schedule(cfg.Transactions.Total, startDate, endDate)
	if err != nil {
		return fmt.Errorf("scheduling transactions: %w", err)
	}

	if verrs := transactions.Validate(txs, cfg.Transactions.Total, registry, cfg.Transactions.DailyCap); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return fmt.Errorf("transaction validation failed: %s", strings.Join(msgs, "; "))
	}

	if err := transactions.Save(outPath, txs); err != nil {
		return fmt.Errorf("writing SQL script: %w", err)
	}

	if err := runlog.Append(filepath.Dir(outPath), runlog.Entry{
		Timestamp: time.Now().UTC(),
		RunID:     runID,
		Generator: "transactions",
		Records:   len(txs),
		Seed:      cfg.Transactions.Seed,
		Output:    outPath,
	}); err != nil {
		log.Warn().Err(err).Msg("failed to append run log")
	}

	summary := transactions.Summarize(txs)
	log.Info().Str("run_id", runID).Int("records", summary.Total).Msg("transactions written")
	fmt.Printf("Wrote %s to %s\n", summary, outPath)
	return nil
}
