package handler

import (
	"net/http"

	"github.com/jmoiron/sqlx"
)

type HealthHandler struct {
	db *sqlx.DB
}

func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	err := h.db.Ping()
	if err != nil {
		writeMessage(w, http.StatusServiceUnavailable, "Database unavailable.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
