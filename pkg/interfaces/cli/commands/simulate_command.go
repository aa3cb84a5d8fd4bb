package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/vsinha/stocksim/pkg/application/services/simulation"
	"github.com/vsinha/stocksim/pkg/domain/entities"
	"github.com/vsinha/stocksim/pkg/interfaces/cli/output"
)

// Config holds configuration for the simulate command
type Config struct {
	Supplies   int
	Days       int
	MeanEvents int
	MaxQty     int
	Seed       int64
	KLast      int
	StartDate  time.Time
	Target     string
	Format     string
	Out        io.Writer
	Logger     *zap.Logger
}

// SimulateCommand runs the full simulation and prints the report
type SimulateCommand struct {
	config Config
}

// NewSimulateCommand creates a new simulate command with the given configuration
func NewSimulateCommand(config Config) *SimulateCommand {
	if config.Out == nil {
		config.Out = os.Stdout
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	return &SimulateCommand{config: config}
}

// Execute runs the simulate command
func (c *SimulateCommand) Execute(ctx context.Context) error {
	if err := validateFormat(c.config.Format); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	orchestrator := simulation.NewOrchestrator(c.config.Logger.Named("simulation"))
	report, err := orchestrator.Run(ctx, simulation.Params{
		Supplies:   c.config.Supplies,
		Days:       c.config.Days,
		MeanEvents: c.config.MeanEvents,
		MaxQty:     c.config.MaxQty,
		Seed:       c.config.Seed,
		KLast:      c.config.KLast,
		StartDate:  c.config.StartDate,
		TargetCode: entities.SupplyCode(c.config.Target),
	})
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	if err := output.Generate(c.config.Out, report, output.Config{
		Format: c.config.Format,
		Limits: output.DefaultLimits,
	}); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

func validateFormat(format string) error {
	switch format {
	case output.FormatText, output.FormatJSON, output.FormatCSV:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
