package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hallmate/internal/entities"
	"hallmate/internal/service"
)

type HallHandler struct {
	Service *service.HallService
}

func NewHallHandler(svc *service.HallService) *HallHandler {
	return &HallHandler{Service: svc}
}

func (h *HallHandler) ListHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := h.Service.ListHalls()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, HallsResponse{Halls: halls})
}

func (h *HallHandler) CreateHall(w http.ResponseWriter, r *http.Request) {
	var req entities.HallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}
	hall, err := h.Service.CreateHall(&req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, hall)
}

func (h *HallHandler) UpdateHall(w http.ResponseWriter, r *http.Request) {
	var req entities.HallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}
	hall, err := h.Service.UpdateHall(&req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hall)
}

func (h *HallHandler) DeleteHall(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Hall ID is required"})
		return
	}
	if err := h.Service.DeleteHall(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Hall deleted successfully"})
}
