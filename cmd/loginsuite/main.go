package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/phuslu/log"
	"github.com/urfave/cli/v2"

	internalcli "github.com/swaglabs/loginsuite/internal/cli"
	"github.com/swaglabs/loginsuite/internal/browser"
	"github.com/swaglabs/loginsuite/internal/config"
	"github.com/swaglabs/loginsuite/internal/database"
	"github.com/swaglabs/loginsuite/internal/dataset"
	"github.com/swaglabs/loginsuite/internal/logging"
	"github.com/swaglabs/loginsuite/internal/repository"
)

var version = "0.1.0"

// ServeCommand returns the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the stand-in login application",
		Action: func(c *cli.Context) error {
			deps, err := internalcli.BuildServerDependencies(config.LoadServerConfig(os.Getenv))
			if err != nil {
				return err
			}
			return internalcli.RunServe(deps)
		},
	}
}

// InstallCommand returns the install command
func InstallCommand() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Install the playwright driver and the configured browser",
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadSuiteConfig(os.Getenv)
			if err != nil {
				return err
			}
			if err := browser.Install(cfg.Browser); err != nil {
				return err
			}
			log.Info().Str("browser", cfg.Browser).Msg("browser installed")
			return nil
		},
	}
}

// MigrateCommand returns the migrate command
func MigrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create the result tables",
		Action: func(c *cli.Context) error {
			if err := database.Connect(os.Getenv); err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer database.Close()

			return database.RunMigrations()
		},
	}
}

// ResultsCommand returns the results command
func ResultsCommand() *cli.Command {
	return &cli.Command{
		Name:  "results",
		Usage: "Print recorded attempts of a run",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "run", Usage: "run id, defaults to the latest run"},
			&cli.IntFlag{Name: "limit", Usage: "maximum number of attempts to print, 0 for all"},
		},
		Action: func(c *cli.Context) error {
			if err := database.Connect(os.Getenv); err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer database.Close()

			ctx := context.Background()
			repo := repository.NewResultRepository()

			runID := c.String("run")
			if runID == "" {
				latest, err := repo.LatestRunID(ctx)
				if errors.Is(err, repository.ErrNoRuns) {
					fmt.Fprintln(c.App.Writer, "no recorded runs")
					return nil
				}
				if err != nil {
					return err
				}
				runID = latest
			}

			attempts, err := repo.ListAttempts(ctx, runID)
			if err != nil {
				return err
			}
			if limit := c.Int("limit"); limit > 0 && limit < len(attempts) {
				attempts = attempts[:limit]
			}

			internalcli.PrintAttempts(c.App.Writer, runID, attempts)
			return nil
		},
	}
}

// DataCommand returns the data command
func DataCommand() *cli.Command {
	return &cli.Command{
		Name:  "data",
		Usage: "Load and print the credential records",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Usage: "credential file, defaults to DATA_DIR/login.csv"},
		},
		Action: func(c *cli.Context) error {
			path := c.String("file")
			if path == "" {
				cfg, err := config.LoadSuiteConfig(os.Getenv)
				if err != nil {
					return err
				}
				path = filepath.Join(cfg.DataDir, dataset.LoginFile)
			}

			credentials, err := dataset.LoadCredentials(path)
			if err != nil {
				return err
			}

			internalcli.PrintCredentials(c.App.Writer, credentials.Records())
			return nil
		},
	}
}

func main() {
	// Load environment variables from .env file
	envErr := godotenv.Load()
	logging.Setup(os.Getenv("LOG_LEVEL"))
	if envErr != nil {
		log.Warn().Msg(".env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "loginsuite",
		Usage:   "Login flow UI test suite tooling",
		Version: version,
		Commands: []*cli.Command{
			ServeCommand(),
			InstallCommand(),
			MigrateCommand(),
			ResultsCommand(),
			DataCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}
