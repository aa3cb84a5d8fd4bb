package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/vsinha/stocksim/pkg/application/services/simulation"
	"github.com/vsinha/stocksim/pkg/infrastructure/generator"
	"github.com/vsinha/stocksim/pkg/interfaces/cli/output"
)

// GenerateConfig holds configuration for dataset generation
type GenerateConfig struct {
	Supplies   int
	Days       int
	MeanEvents int
	MaxQty     int
	Seed       int64
	StartDate  time.Time
	Format     string
	Table      string
	Out        io.Writer
	Logger     *zap.Logger
}

// GenerateCommand prints the generated supplies or consumption events without running the algorithms
type GenerateCommand struct {
	config GenerateConfig
}

// NewGenerateCommand creates a new generate command
func NewGenerateCommand(config GenerateConfig) *GenerateCommand {
	if config.Out == nil {
		config.Out = os.Stdout
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	if config.Table == "" {
		config.Table = string(output.TableEvents)
	}
	return &GenerateCommand{config: config}
}

// Execute runs the generate command
func (cmd *GenerateCommand) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateFormat(cmd.config.Format); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	supplies, err := generator.GenerateSupplies(cmd.config.Supplies, cmd.config.StartDate, cmd.config.Seed)
	if err != nil {
		return fmt.Errorf("failed to generate supplies: %w", err)
	}

	sim, err := generator.SimulateDailyConsumption(generator.ConsumptionParams{
		Days:             cmd.config.Days,
		MeanEventsPerDay: cmd.config.MeanEvents,
		MaxQty:           cmd.config.MaxQty,
		Seed:             cmd.config.Seed,
		Reference:        cmd.config.StartDate,
	}, supplies)
	if err != nil {
		return fmt.Errorf("failed to simulate consumption: %w", err)
	}

	events, err := simulation.ProcessQueue(sim.Queue)
	if err != nil {
		return fmt.Errorf("failed to process queue: %w", err)
	}

	cmd.config.Logger.Debug("dataset generated",
		zap.Int("supplies", len(supplies)),
		zap.Int("events", len(events)),
		zap.Int64("seed", cmd.config.Seed))

	data := output.Dataset{Supplies: supplies, Events: events}
	if err := output.WriteDataset(cmd.config.Out, data, cmd.config.Format, output.Table(cmd.config.Table)); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}

	return nil
}
