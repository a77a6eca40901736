package cmd

import (
	"context"
	"log"

	"zoo-admin/internal/data/repository"
	"zoo-admin/internal/wire"
	"zoo-admin/pkg/database"
	"zoo-admin/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCommand builds the zoo-admin CLI. Running it without a
// subcommand starts the API server.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "zoo-admin",
		Short:         "Zoo administration API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, _ []string) error {
			return runServe(c.Context())
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP API",
			RunE: func(c *cobra.Command, _ []string) error {
				return runServe(c.Context())
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create missing tables and seed the zoo profile",
			RunE: func(c *cobra.Command, _ []string) error {
				return runMigrate(c.Context())
			},
		},
	)

	return root
}

// bootstrap loads config, logger and the database pool shared by every command.
func bootstrap() (*utils.Config, *zap.Logger, database.PgxIface, error) {
	config, err := utils.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		_ = logger.Sync()
		return nil, nil, nil, err
	}
	logger.Info("Database connected successfully")

	return config, logger, db, nil
}

func runServe(ctx context.Context) error {
	config, logger, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer db.Close()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	if config.App.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			logger.Error("Migration failed", zap.Error(err))
			return err
		}
		logger.Info("Schema up to date")
	}

	repos := repository.NewRepository(db, logger)
	app := wire.Wiring(repos, config, logger)

	return APIServer(app.Router, config.App.Port, logger)
}

func runMigrate(ctx context.Context) error {
	_, logger, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		logger.Error("Migration failed", zap.Error(err))
		return err
	}

	logger.Info("Schema up to date")
	return nil
}
