package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-simulator/internal/config"
	"github.com/spec-kit/ticket-simulator/internal/engine"
	"github.com/spec-kit/ticket-simulator/internal/observability"
	"github.com/spec-kit/ticket-simulator/internal/persistence"
	"github.com/spec-kit/ticket-simulator/internal/repository"
)

var (
	runInputPath  string
	runOutputPath string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay a command batch from a file and write the output records",
	RunE:  runBatch,
}

func init() {
	// the bare root invocation also replays a batch, so both commands carry
	// the flags
	addBatchFlags(rootCmd)
	addBatchFlags(runCmd)
}

func addBatchFlags(c *cobra.Command) {
	c.Flags().StringVar(&runInputPath, "input", "", "path to the commands JSON file")
	c.Flags().StringVar(&runOutputPath, "output", "", "path for the output JSON file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	if runInputPath == "" || runOutputPath == "" {
		return fmt.Errorf("both --input and --output are required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	users, err := persistence.LoadUsers(cfg.Sim.UsersFile)
	if err != nil {
		return fmt.Errorf("users: %w", err)
	}
	commands, err := persistence.LoadCommands(runInputPath)
	if err != nil {
		return fmt.Errorf("commands: %w", err)
	}

	store := repository.NewStore()
	store.SetUsers(users)

	eng := engine.New(engine.Dependencies{
		Store:   store,
		Logger:  logger,
		Metrics: observability.NewMetrics(),
	})
	outputs := eng.Run(commands)

	if err := persistence.WriteOutput(runOutputPath, outputs); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	logger.Info("batch replayed",
		zap.Int("commands", len(commands)),
		zap.Int("records", len(outputs)),
		zap.String("output", runOutputPath))
	return nil
}
