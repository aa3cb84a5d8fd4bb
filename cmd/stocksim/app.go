package main

import (
	"context"
	"io"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/vsinha/stocksim/pkg/domain/entities"
	"github.com/vsinha/stocksim/pkg/infrastructure/config"
	"github.com/vsinha/stocksim/pkg/infrastructure/logging"
	"github.com/vsinha/stocksim/pkg/interfaces/cli/commands"
)

// newApp builds the command tree writing reports to out. cfg supplies flag
// defaults; root flags are inherited by subcommands and override cfg.
func newApp(cfg *config.Config, out io.Writer) *cli.Command {
	simulate := func(ctx context.Context, cmd *cli.Command) error {
		startDate, logger, err := commonSettings(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		return commands.NewSimulateCommand(commands.Config{
			Supplies:   cmd.Int("supplies"),
			Days:       cmd.Int("days"),
			MeanEvents: cmd.Int("mean-events"),
			MaxQty:     cmd.Int("max-qty"),
			Seed:       cmd.Int64("seed"),
			KLast:      cmd.Int("k-last"),
			StartDate:  startDate,
			Target:     cmd.String("target"),
			Format:     cmd.String("format"),
			Out:        out,
			Logger:     logger,
		}).Execute(ctx)
	}

	return &cli.Command{
		Name:   "stocksim",
		Usage:  "Queue, stack, search and sort algorithms applied to simulated supply consumption",
		Flags:  commonFlags(cfg),
		Action: simulate,
		Commands: []*cli.Command{
			{
				Name:   "simulate",
				Usage:  "Generate data and run every structure and algorithm over it (default)",
				Action: simulate,
			},
			{
				Name:  "generate",
				Usage: "Print the generated supplies or consumption events only",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "table",
						Value: "events",
						Usage: "Dataset to print for text and csv formats: supplies, events",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					startDate, logger, err := commonSettings(cmd)
					if err != nil {
						return err
					}
					defer func() { _ = logger.Sync() }()

					return commands.NewGenerateCommand(commands.GenerateConfig{
						Supplies:   cmd.Int("supplies"),
						Days:       cmd.Int("days"),
						MeanEvents: cmd.Int("mean-events"),
						MaxQty:     cmd.Int("max-qty"),
						Seed:       cmd.Int64("seed"),
						StartDate:  startDate,
						Format:     cmd.String("format"),
						Table:      cmd.String("table"),
						Out:        out,
						Logger:     logger,
					}).Execute(ctx)
				},
			},
		},
	}
}

func commonFlags(cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "supplies",
			Value: cfg.Supplies,
			Usage: "Number of simulated supplies",
		},
		&cli.IntFlag{
			Name:  "days",
			Value: cfg.Days,
			Usage: "Number of simulated days",
		},
		&cli.IntFlag{
			Name:  "mean-events",
			Value: cfg.MeanEvents,
			Usage: "Mean consumption events per day",
		},
		&cli.IntFlag{
			Name:  "max-qty",
			Value: cfg.MaxQty,
			Usage: "Maximum quantity per event",
		},
		&cli.Int64Flag{
			Name:  "seed",
			Value: cfg.Seed,
			Usage: "RNG seed for reproducibility",
		},
		&cli.IntFlag{
			Name:  "k-last",
			Value: cfg.KLast,
			Usage: "Number of most recent stack events to display",
		},
		&cli.StringFlag{
			Name:  "target",
			Usage: "Supply code to search for (default: first generated supply)",
		},
		&cli.StringFlag{
			Name:  "start-date",
			Value: cfg.StartDate.Format(entities.DateLayout),
			Usage: "Reference date (YYYY-MM-DD): supplies expire after it, consumption ends on it",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: cfg.Format,
			Usage: "Output format: text, json, csv",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Log each phase to stderr",
		},
	}
}

func commonSettings(cmd *cli.Command) (time.Time, *zap.Logger, error) {
	startDate, err := config.ParseDate(cmd.String("start-date"))
	if err != nil {
		return time.Time{}, nil, err
	}

	logger, err := logging.New(cmd.Bool("verbose"))
	if err != nil {
		return time.Time{}, nil, err
	}

	return startDate, logger, nil
}
