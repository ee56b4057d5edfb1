package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/okra-platform/tlbind/internal/commands"
	"github.com/okra-platform/tlbind/internal/config"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	flags := &commands.Flags{}
	ctrl := &commands.Controller{
		Flags: flags,
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:      "tlbind",
		Usage:     "Generate host bindings and TypeScript declarations from a type schema",
		ArgsUsage: "<schema-path> <binding-output-dir> <declarations-output-dir>",
		Version:   build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TLBIND_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "config",
				Usage:       "path to a " + config.FileName + " configuration file",
				Destination: &flags.Config,
			},
			&cli.StringFlag{
				Name:        "package",
				Usage:       "Go package name of the generated binding",
				Destination: &flags.Package,
			},
			&cli.StringFlag{
				Name:        "api-import",
				Usage:       "import path of the schema compiler's internal representation",
				Destination: &flags.APIImport,
			},
			&cli.StringFlag{
				Name:        "runtime-import",
				Usage:       "import path of the tlrt runtime package",
				Destination: &flags.RuntimeImport,
			},
			&cli.StringFlag{
				Name:        "client-name",
				Usage:       "name of the client class in the declarations",
				Destination: &flags.ClientName,
			},
			&cli.StringFlag{
				Name:        "file-base",
				Usage:       "base name of the generated files (defaults to the schema name)",
				Destination: &flags.FileBase,
			},
			&cli.BoolFlag{
				Name:        "comments",
				Usage:       "carry schema documentation into the generated code",
				Destination: &flags.Comments,
			},
			&cli.BoolFlag{
				Name:        "check",
				Usage:       "report out-of-date files without writing them",
				Destination: &flags.Check,
			},
			&cli.BoolFlag{
				Name:        "verify",
				Usage:       "round-trip sampled values through the reference converters before writing",
				Destination: &flags.Verify,
			},
			&cli.BoolFlag{
				Name:        "watch",
				Usage:       "regenerate whenever the schema changes",
				Destination: &flags.Watch,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}

			log.Logger = log.Level(level)
			ctrl.Logger = log.Logger

			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return ctrl.Generate(ctx, c.Args().Slice())
		},
	}

	ctx := context.Background()

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run tlbind")
	}
}
