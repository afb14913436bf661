package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/stridehq/stride/internal/config"
	"github.com/stridehq/stride/internal/db"
	"github.com/stridehq/stride/internal/repository"
	"github.com/stridehq/stride/internal/service"
)

type App struct {
	Cfg             *config.Config
	DB              *sqlx.DB
	AuthService     *service.AuthService
	HabitService    *service.HabitService
	ProgressService *service.ProgressService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	habitRepository := repository.NewHabitRepository(database)
	progressRepository := repository.NewProgressRepository(database)

	// Services
	authService := service.NewAuthService(userRepository, cfg.BcryptCost)
	habitService := service.NewHabitService(habitRepository)
	progressService := service.NewProgressService(progressRepository)

	return &App{
		Cfg:             cfg,
		DB:              database,
		AuthService:     authService,
		HabitService:    habitService,
		ProgressService: progressService,
	}, nil
}

func (a *App) Close() error {
	return db.Close(a.DB)
}
