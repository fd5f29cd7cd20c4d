package api

import (
	"encoding/json"
	"net/http"

	"hallmate/internal/entities"
	"hallmate/internal/repository"
	"hallmate/internal/service"
)

type BookingHandler struct {
	Service *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	filter := repository.BookingFilter{
		UserEmail:   r.URL.Query().Get("userEmail"),
		BookingDate: r.URL.Query().Get("bookingDate"),
		HallName:    r.URL.Query().Get("hallName"),
	}
	bookings, err := h.Service.ListBookings(filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, BookingsResponse{Bookings: bookings})
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}
	id, err := h.Service.CreateBooking(&req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, CreateBookingResponse{ID: id})
}

func (h *BookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}
	booking, notified, err := h.Service.UpdateBookingStatus(req.ID, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, UpdateBookingStatusResponse{Booking: *booking, NotificationSent: notified})
}
