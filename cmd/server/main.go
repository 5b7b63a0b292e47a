package main

import (
	"fmt"
	"log"
	"os"

	_ "taskboard/docs"
	"taskboard/internal/config"
	"taskboard/internal/database"
	"taskboard/internal/server"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
)

// @title           Taskboard API
// @version         1.0
// @description     Kanban boards with dependency-aware task movement.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	os.Exit(execute(newRootCmd()))
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "taskboard",
		Short:        "Kanban boards with dependency-aware task movement",
		SilenceUsage: true,
	}

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "taskboard %s (commit: %s)\n", Version, Commit)
		},
	}
}

func loadConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newServeCmd() *cobra.Command {
	var autoMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg)
			if err != nil {
				return err
			}
			log.Println("✅ Connected to database")

			// sqlite has no migration files, its schema always comes from the models
			if autoMigrate || cfg.DBDriver == "sqlite" {
				if err := database.MigrateUp(cfg, db); err != nil {
					return err
				}
			}

			s, err := server.Init(cfg, db)
			if err != nil {
				return err
			}
			return s.Run()
		},
	}

	cmd.Flags().BoolVar(&autoMigrate, "migrate", false, "apply pending migrations before serving")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database schema commands",
	}

	cmd.AddCommand(newMigrateStepCmd("up", "Apply all pending migrations", database.MigrateUp))
	cmd.AddCommand(newMigrateStepCmd("down", "Roll back every migration", database.MigrateDown))
	return cmd
}

func newMigrateStepCmd(use, short string, step func(*config.Config, *gorm.DB) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg)
			if err != nil {
				return err
			}
			return step(cfg, db)
		},
	}
}
