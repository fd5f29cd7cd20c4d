package service

import (
	"log"
	"time"

	"hallmate/internal/db"
	"hallmate/internal/entities"
	httperrors "hallmate/internal/errors"
	"hallmate/internal/repository"
	"hallmate/internal/utils"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ValidStatus reports whether s is one of the three booking states.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// BookingStore is the persistence contract the booking core depends on.
type BookingStore interface {
	Find(f repository.BookingFilter) ([]db.Booking, error)
	FindForSlot(hallName, bookingDate string) ([]db.Booking, error)
	Insert(b *db.Booking) (int, error)
	UpdateStatus(id int, status string) (*db.Booking, error)
}

type BookingService struct {
	store  BookingStore
	sender *SenderService
}

func NewBookingService(store BookingStore, sender *SenderService) *BookingService {
	return &BookingService{store: store, sender: sender}
}

func (s *BookingService) ListBookings(f repository.BookingFilter) ([]db.Booking, error) {
	bookings, err := s.store.Find(f)
	if err != nil {
		log.Printf("Error listing bookings: %v", err)
		return nil, httperrors.Internal("Internal server error")
	}
	if bookings == nil {
		bookings = []db.Booking{}
	}
	return bookings, nil
}

// CreateBooking admits a booking request if its half-open time window
// [startTime, endTime) does not overlap any existing booking for the same
// hall and date. Rejected bookings still count as occupying their window.
//
// The check and the insert are two separate storage round trips with no
// isolation between them, so two concurrent requests for the same window can
// both be admitted. Known gap, kept deliberately; see DESIGN.md.
func (s *BookingService) CreateBooking(req *entities.BookingRequest) (int, error) {
	if req.HallName == "" || req.BookingDate == "" || req.StartTime == "" || req.EndTime == "" {
		return 0, httperrors.Validation("Missing hallName, bookingDate, startTime, or endTime")
	}

	start, err := utils.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return 0, httperrors.Validation("Invalid startTime: use HH:MM in 24-hour format")
	}
	end, err := utils.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return 0, httperrors.Validation("Invalid endTime: use HH:MM in 24-hour format")
	}
	if end.Minutes() <= start.Minutes() {
		return 0, httperrors.Validation("endTime must be after startTime")
	}

	sameDay, err := s.store.FindForSlot(req.HallName, req.BookingDate)
	if err != nil {
		log.Printf("Error fetching bookings for %s on %s: %v", req.HallName, req.BookingDate, err)
		return 0, httperrors.Internal("Internal server error")
	}

	for _, b := range sameDay {
		bStart := utils.LenientMinutes(b.StartTime)
		bEnd := utils.LenientMinutes(b.EndTime)
		if start.Minutes() < bEnd && end.Minutes() > bStart {
			return 0, httperrors.Conflict("Selected hall is already booked for the chosen time window.")
		}
	}

	booking := &db.Booking{
		HallName:     req.HallName,
		BookingDate:  req.BookingDate,
		BookingTime:  req.BookingTime,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Name:         req.Name,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Department:   req.Department,
		EventName:    req.EventName,
		EventPurpose: req.EventPurpose,
		UserEmail:    req.UserEmail,
		Status:       StatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	id, err := s.store.Insert(booking)
	if err != nil {
		log.Printf("Error inserting booking: %v", err)
		return 0, httperrors.Internal("Internal server error")
	}
	return id, nil
}

// UpdateBookingStatus applies an admin decision to a booking. A transition to
// approved or rejected triggers one notification email to the booking owner;
// the returned bool reports whether it was delivered. Repeated transitions on
// an already-decided booking are allowed and re-notify.
func (s *BookingService) UpdateBookingStatus(id int, status string) (*db.Booking, bool, error) {
	if id <= 0 || !ValidStatus(status) {
		return nil, false, httperrors.InvalidStatus("Invalid id or status")
	}

	updated, err := s.store.UpdateStatus(id, status)
	if err != nil {
		log.Printf("Error updating booking %d: %v", id, err)
		return nil, false, httperrors.Internal("Internal server error")
	}
	if updated == nil {
		return nil, false, httperrors.NotFound("Booking not found")
	}

	notified := false
	if status == StatusApproved || status == StatusRejected {
		notified = s.sender.SendBookingStatusEmail(updated) == nil
		s.sender.SendBookingStatusSMS(updated)
	}
	return updated, notified, nil
}
