package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/stridehq/stride/internal/repository"
	"github.com/stridehq/stride/internal/service"
)

type ProgressHandler struct {
	progressService *service.ProgressService
}

func NewProgressHandler(progressService *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
	}
}

type progressRequest struct {
	HabitID int64  `json:"habit_id"`
	Date    string `json:"date"`
	// Status is a pointer so a missing field is distinguishable from false
	Status *bool `json:"status"`
}

func (h *ProgressHandler) Log(w http.ResponseWriter, r *http.Request) {
	var req progressRequest
	err := decodeJSON(r, &req)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.HabitID == 0 || req.Date == "" || req.Status == nil {
		writeMessage(w, http.StatusBadRequest, "Habit ID, date, and status are required.")
		return
	}

	entry, err := h.progressService.Log(req.HabitID, req.Date, *req.Status)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			writeMessage(w, http.StatusBadRequest, ve.Error())
		case errors.Is(err, repository.ErrDuplicateProgress):
			writeMessage(w, http.StatusConflict, "Progress for this habit already logged for this date.")
		default:
			writeInternalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (h *ProgressHandler) Update(w http.ResponseWriter, r *http.Request) {
	entryID, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid progress entry id.")
		return
	}

	var req progressRequest
	err = decodeJSON(r, &req)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Date == "" || req.Status == nil {
		writeMessage(w, http.StatusBadRequest, "Date and status are required.")
		return
	}

	err = h.progressService.Update(entryID, req.HabitID, req.Date, *req.Status)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			writeMessage(w, http.StatusBadRequest, ve.Error())
		case errors.Is(err, repository.ErrDuplicateProgress):
			writeMessage(w, http.StatusConflict, "A progress entry for this habit already exists on this date.")
		case errors.Is(err, repository.ErrProgressNotFound):
			writeMessage(w, http.StatusNotFound, "Progress entry not found or unauthorized.")
		default:
			writeInternalError(w, r, err)
		}
		return
	}

	writeMessage(w, http.StatusOK, "Progress updated successfully.")
}

func (h *ProgressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	entryID, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid progress entry id.")
		return
	}

	var req progressRequest
	err = decodeJSON(r, &req)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	err = h.progressService.Delete(entryID, req.HabitID)
	if err != nil {
		if errors.Is(err, repository.ErrProgressNotFound) {
			writeMessage(w, http.StatusNotFound, "Progress entry not found or unauthorized.")
			return
		}
		writeInternalError(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "Progress deleted successfully.")
}

func (h *ProgressHandler) List(w http.ResponseWriter, r *http.Request) {
	habitID, err := strconv.ParseInt(r.URL.Query().Get("habit_id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Habit ID is required.")
		return
	}

	entries, err := h.progressService.Entries(habitID)
	if err != nil {
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
