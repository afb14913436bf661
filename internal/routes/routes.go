package routes

import (
	"net/http"

	"github.com/stridehq/stride/internal/app"
	"github.com/stridehq/stride/internal/handler"
	"github.com/stridehq/stride/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService)
	habit := handler.NewHabitHandler(app.HabitService)
	progress := handler.NewProgressHandler(app.ProgressService)
	health := handler.NewHealthHandler(app.DB)

	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /healthz", health.Health)

	// Users
	mux.HandleFunc("POST /users", auth.Register)
	mux.HandleFunc("POST /login", auth.Login)
	mux.HandleFunc("GET /users", auth.Lookup)

	// Habits
	mux.HandleFunc("POST /habits", habit.Create)
	mux.HandleFunc("PUT /habits/{id}", habit.Update)
	mux.HandleFunc("DELETE /habits/{id}", habit.Delete)
	mux.HandleFunc("GET /habits", habit.List)

	// Progress
	mux.HandleFunc("POST /progress", progress.Log)
	mux.HandleFunc("PUT /progress/{id}", progress.Update)
	mux.HandleFunc("DELETE /progress/{id}", progress.Delete)
	mux.HandleFunc("GET /progress", progress.List)

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.Recover,
		middleware.RequestLogging,
	)
}
