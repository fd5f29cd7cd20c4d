package service

import (
	"net/http"
	"testing"
	"time"

	"hallmate/internal/db"
	"hallmate/internal/entities"
	httperrors "hallmate/internal/errors"
	"hallmate/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingService(seed ...db.Booking) (*BookingService, *fakeBookingStore, *fakeMailer) {
	store := newFakeBookingStore(seed...)
	mailer := &fakeMailer{}
	sender := NewSenderService(mailer, &fakeSMSSender{})
	return NewBookingService(store, sender), store, mailer
}

func bookingRequest() *entities.BookingRequest {
	return &entities.BookingRequest{
		HallName:     "Board Room",
		BookingDate:  "2025-06-08",
		StartTime:    "09:00",
		EndTime:      "11:00",
		Name:         "Asha Rao",
		Email:        "asha@cutmap.ac.in",
		PhoneNumber:  "+911234567890",
		Department:   "CSE",
		EventName:    "Project Review",
		EventPurpose: "Semester project demos",
		UserEmail:    "asha@cutmap.ac.in",
	}
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	httpErr, ok := err.(*httperrors.HTTPError)
	require.True(t, ok, "expected *HTTPError, got %T", err)
	assert.Equal(t, code, httpErr.Code)
}

func TestCreateBooking(t *testing.T) {
	t.Run("admits a booking and persists it pending", func(t *testing.T) {
		svc, store, _ := newBookingService()

		id, err := svc.CreateBooking(bookingRequest())
		require.NoError(t, err)
		assert.Equal(t, 1, id)

		require.Len(t, store.bookings, 1)
		assert.Equal(t, StatusPending, store.bookings[0].Status)
		assert.False(t, store.bookings[0].CreatedAt.IsZero())
	})

	t.Run("rejects overlapping window for same hall and date", func(t *testing.T) {
		svc, store, _ := newBookingService()

		_, err := svc.CreateBooking(bookingRequest())
		require.NoError(t, err)

		overlapping := bookingRequest()
		overlapping.StartTime = "10:30"
		overlapping.EndTime = "12:00"
		_, err = svc.CreateBooking(overlapping)
		requireHTTPError(t, err, http.StatusConflict)
		assert.Len(t, store.bookings, 1)
	})

	t.Run("admits adjacent windows", func(t *testing.T) {
		svc, _, _ := newBookingService()

		first := bookingRequest()
		first.StartTime = "09:00"
		first.EndTime = "10:00"
		_, err := svc.CreateBooking(first)
		require.NoError(t, err)

		second := bookingRequest()
		second.StartTime = "10:00"
		second.EndTime = "11:00"
		_, err = svc.CreateBooking(second)
		require.NoError(t, err)
	})

	t.Run("window starting at an existing end is admitted", func(t *testing.T) {
		svc, _, _ := newBookingService()

		_, err := svc.CreateBooking(bookingRequest()) // 09:00-11:00
		require.NoError(t, err)

		next := bookingRequest()
		next.StartTime = "11:00"
		next.EndTime = "12:00"
		_, err = svc.CreateBooking(next)
		require.NoError(t, err)
	})

	t.Run("different hall or date never conflicts", func(t *testing.T) {
		svc, _, _ := newBookingService()

		_, err := svc.CreateBooking(bookingRequest())
		require.NoError(t, err)

		otherHall := bookingRequest()
		otherHall.HallName = "Gallery Hall 1"
		_, err = svc.CreateBooking(otherHall)
		require.NoError(t, err)

		otherDate := bookingRequest()
		otherDate.BookingDate = "2025-06-09"
		_, err = svc.CreateBooking(otherDate)
		require.NoError(t, err)
	})

	t.Run("rejected bookings still occupy their window", func(t *testing.T) {
		existing := db.Booking{
			HallName:    "Board Room",
			BookingDate: "2025-06-08",
			StartTime:   "09:00",
			EndTime:     "11:00",
			UserEmail:   "someone@cutmap.ac.in",
			Status:      StatusRejected,
			CreatedAt:   time.Now().UTC(),
		}
		svc, _, _ := newBookingService(existing)

		req := bookingRequest()
		req.StartTime = "10:00"
		req.EndTime = "12:00"
		_, err := svc.CreateBooking(req)
		requireHTTPError(t, err, http.StatusConflict)
	})

	t.Run("missing required fields yield 400 and persist nothing", func(t *testing.T) {
		mutations := map[string]func(*entities.BookingRequest){
			"hallName":    func(r *entities.BookingRequest) { r.HallName = "" },
			"bookingDate": func(r *entities.BookingRequest) { r.BookingDate = "" },
			"startTime":   func(r *entities.BookingRequest) { r.StartTime = "" },
			"endTime":     func(r *entities.BookingRequest) { r.EndTime = "" },
		}
		for field, mutate := range mutations {
			t.Run(field, func(t *testing.T) {
				svc, store, _ := newBookingService()
				req := bookingRequest()
				mutate(req)
				_, err := svc.CreateBooking(req)
				requireHTTPError(t, err, http.StatusBadRequest)
				assert.Empty(t, store.bookings)
			})
		}
	})

	t.Run("malformed time strings yield 400", func(t *testing.T) {
		svc, _, _ := newBookingService()
		req := bookingRequest()
		req.StartTime = "morning"
		_, err := svc.CreateBooking(req)
		requireHTTPError(t, err, http.StatusBadRequest)
	})

	t.Run("end not after start yields 400", func(t *testing.T) {
		svc, _, _ := newBookingService()
		req := bookingRequest()
		req.StartTime = "11:00"
		req.EndTime = "11:00"
		_, err := svc.CreateBooking(req)
		requireHTTPError(t, err, http.StatusBadRequest)
	})

	t.Run("storage failure yields 500", func(t *testing.T) {
		svc, store, _ := newBookingService()
		store.failFind = true
		_, err := svc.CreateBooking(bookingRequest())
		requireHTTPError(t, err, http.StatusInternalServerError)
	})
}

func TestListBookings(t *testing.T) {
	now := time.Now().UTC()
	seed := []db.Booking{
		{HallName: "Board Room", BookingDate: "2025-06-08", StartTime: "09:00", EndTime: "10:00", UserEmail: "a@cutmap.ac.in", Status: StatusPending, CreatedAt: now.Add(-time.Hour)},
		{HallName: "Board Room", BookingDate: "2025-06-08", StartTime: "10:00", EndTime: "11:00", UserEmail: "b@cutmap.ac.in", Status: StatusPending, CreatedAt: now},
		{HallName: "Gallery Hall 1", BookingDate: "2025-06-09", StartTime: "09:00", EndTime: "10:00", UserEmail: "a@cutmap.ac.in", Status: StatusPending, CreatedAt: now.Add(-2 * time.Hour)},
	}

	t.Run("filters are AND-combined and newest first", func(t *testing.T) {
		svc, _, _ := newBookingService(seed...)

		bookings, err := svc.ListBookings(repository.BookingFilter{HallName: "Board Room", BookingDate: "2025-06-08"})
		require.NoError(t, err)
		require.Len(t, bookings, 2)
		assert.Equal(t, "b@cutmap.ac.in", bookings[0].UserEmail)
		assert.Equal(t, "a@cutmap.ac.in", bookings[1].UserEmail)
	})

	t.Run("empty filter returns everything", func(t *testing.T) {
		svc, _, _ := newBookingService(seed...)
		bookings, err := svc.ListBookings(repository.BookingFilter{})
		require.NoError(t, err)
		assert.Len(t, bookings, 3)
	})

	t.Run("no matches returns empty slice, not nil", func(t *testing.T) {
		svc, _, _ := newBookingService(seed...)
		bookings, err := svc.ListBookings(repository.BookingFilter{UserEmail: "nobody@cutmap.ac.in"})
		require.NoError(t, err)
		assert.NotNil(t, bookings)
		assert.Empty(t, bookings)
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	seed := db.Booking{
		HallName:    "Board Room",
		BookingDate: "2025-06-08",
		StartTime:   "09:00",
		EndTime:     "11:00",
		Name:        "Asha Rao",
		UserEmail:   "asha@cutmap.ac.in",
		Status:      StatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	t.Run("approving notifies the owner exactly once", func(t *testing.T) {
		svc, store, mailer := newBookingService(seed)

		updated, notified, err := svc.UpdateBookingStatus(1, StatusApproved)
		require.NoError(t, err)
		assert.Equal(t, StatusApproved, updated.Status)
		assert.Equal(t, StatusApproved, store.bookings[0].Status)
		assert.True(t, notified)

		require.Len(t, mailer.sent, 1)
		assert.Equal(t, "asha@cutmap.ac.in", mailer.sent[0].To)
		assert.Contains(t, mailer.sent[0].Subject, "APPROVED")
	})

	t.Run("rejecting notifies too", func(t *testing.T) {
		svc, _, mailer := newBookingService(seed)

		_, notified, err := svc.UpdateBookingStatus(1, StatusRejected)
		require.NoError(t, err)
		assert.True(t, notified)
		assert.Len(t, mailer.sent, 1)
	})

	t.Run("notification failure does not fail the transition", func(t *testing.T) {
		svc, store, mailer := newBookingService(seed)
		mailer.fail = true

		updated, notified, err := svc.UpdateBookingStatus(1, StatusApproved)
		require.NoError(t, err)
		assert.Equal(t, StatusApproved, updated.Status)
		assert.Equal(t, StatusApproved, store.bookings[0].Status)
		assert.False(t, notified)
	})

	t.Run("unknown id yields 404", func(t *testing.T) {
		svc, _, _ := newBookingService(seed)
		_, _, err := svc.UpdateBookingStatus(99, StatusApproved)
		requireHTTPError(t, err, http.StatusNotFound)
	})

	t.Run("status outside the enum yields 400", func(t *testing.T) {
		svc, _, mailer := newBookingService(seed)
		_, _, err := svc.UpdateBookingStatus(1, "cancelled")
		requireHTTPError(t, err, http.StatusBadRequest)
		assert.Empty(t, mailer.sent)
	})

	t.Run("setting back to pending does not notify", func(t *testing.T) {
		svc, _, mailer := newBookingService(seed)
		_, notified, err := svc.UpdateBookingStatus(1, StatusPending)
		require.NoError(t, err)
		assert.False(t, notified)
		assert.Empty(t, mailer.sent)
	})

	// Known gap, not a guarantee: decided bookings accept further
	// transitions and each one re-notifies.
	t.Run("approving twice succeeds twice and notifies twice", func(t *testing.T) {
		svc, _, mailer := newBookingService(seed)

		_, _, err := svc.UpdateBookingStatus(1, StatusApproved)
		require.NoError(t, err)
		_, _, err = svc.UpdateBookingStatus(1, StatusApproved)
		require.NoError(t, err)

		assert.Len(t, mailer.sent, 2)
	})
}
