package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/stridehq/stride/internal/repository"
	"github.com/stridehq/stride/internal/service"
)

type HabitHandler struct {
	habitService *service.HabitService
}

func NewHabitHandler(habitService *service.HabitService) *HabitHandler {
	return &HabitHandler{
		habitService: habitService,
	}
}

type habitRequest struct {
	UserID      int64   `json:"user_id"`
	Name        string  `json:"habit_name"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
}

func (h *HabitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req habitRequest
	err := decodeJSON(r, &req)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.UserID == 0 {
		writeMessage(w, http.StatusBadRequest, "User ID and habit name are required.")
		return
	}

	habit, err := h.habitService.Create(req.UserID, req.Name, req.Category, req.Description)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			writeMessage(w, http.StatusBadRequest, ve.Error())
			return
		}
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, habit)
}

func (h *HabitHandler) Update(w http.ResponseWriter, r *http.Request) {
	habitID, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid habit id.")
		return
	}

	var req habitRequest
	err = decodeJSON(r, &req)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	err = h.habitService.Update(habitID, req.UserID, req.Name, req.Category, req.Description)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			writeMessage(w, http.StatusBadRequest, ve.Error())
		case errors.Is(err, repository.ErrHabitNotFound):
			writeMessage(w, http.StatusNotFound, "Habit not found or unauthorized.")
		default:
			writeInternalError(w, r, err)
		}
		return
	}

	writeMessage(w, http.StatusOK, "Habit updated successfully.")
}

func (h *HabitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	habitID, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid habit id.")
		return
	}

	var req habitRequest
	err = decodeJSON(r, &req)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	err = h.habitService.Delete(habitID, req.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrHabitNotFound) {
			writeMessage(w, http.StatusNotFound, "Habit not found or unauthorized.")
			return
		}
		writeInternalError(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "Habit deleted successfully.")
}

func (h *HabitHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "User ID is required.")
		return
	}

	habits, err := h.habitService.Habits(userID)
	if err != nil {
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, habits)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
