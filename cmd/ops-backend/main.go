package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nurpe/ops-backend/internal/auth"
	"github.com/nurpe/ops-backend/internal/config"
	"github.com/nurpe/ops-backend/internal/db"
	"github.com/nurpe/ops-backend/internal/excel"
	httphandler "github.com/nurpe/ops-backend/internal/http"
	"github.com/nurpe/ops-backend/internal/http/middleware"
	"github.com/nurpe/ops-backend/internal/logger"
	"github.com/nurpe/ops-backend/internal/repository"
	"github.com/nurpe/ops-backend/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "ops-backend",
	Short: "Projects, tasks and expense reports backend",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema and exit",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
		log := logger.New(cfg.Environment)

		cfg.DB.AutoMigrate = false
		database, err := db.New(cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect database")
		}
		if err := db.Migrate(database); err != nil {
			log.Fatal().Err(err).Msg("failed to apply migrations")
		}
		log.Info().Msg("migrations applied")
	},
}

func serve() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	companyRepo := repository.NewCompanyRepository(database)
	projectRepo := repository.NewProjectRepository(database)
	taskRepo := repository.NewTaskRepository(database)
	assignmentRepo := repository.NewEmployeeTaskRepository(database)
	employeeRepo := repository.NewEmployeeRepository(database)
	roleRepo := repository.NewRoleRepository(database)
	expenseRepo := repository.NewExpenseRepository(database)

	services := httphandler.Services{
		Projects:  service.NewProjectService(projectRepo, companyRepo, roleRepo),
		Companies: service.NewCompanyService(companyRepo),
		Tasks:     service.NewTaskService(taskRepo, projectRepo, assignmentRepo, employeeRepo),
		Roles:     service.NewRoleService(roleRepo, employeeRepo),
		Expenses:  service.NewExpenseService(expenseRepo, employeeRepo, roleRepo),
		Reports: service.NewReportService(
			projectRepo, companyRepo, taskRepo, assignmentRepo, employeeRepo, excel.NewGenerator(),
		),
		Home: service.NewHomeService(employeeRepo, assignmentRepo, taskRepo, projectRepo, companyRepo),
	}

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(services, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.HTTP.CORSAllowedOrigins, log)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting ops backend")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
