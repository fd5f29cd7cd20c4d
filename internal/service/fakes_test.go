package service

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"hallmate/internal/db"
	"hallmate/internal/repository"
)

type fakeBookingStore struct {
	bookings []db.Booking
	nextID   int
	failFind bool
}

func newFakeBookingStore(seed ...db.Booking) *fakeBookingStore {
	s := &fakeBookingStore{nextID: 1}
	for _, b := range seed {
		b.ID = s.nextID
		s.nextID++
		s.bookings = append(s.bookings, b)
	}
	return s
}

func (s *fakeBookingStore) Find(f repository.BookingFilter) ([]db.Booking, error) {
	if s.failFind {
		return nil, fmt.Errorf("store down")
	}
	var out []db.Booking
	for _, b := range s.bookings {
		if f.UserEmail != "" && b.UserEmail != f.UserEmail {
			continue
		}
		if f.BookingDate != "" && b.BookingDate != f.BookingDate {
			continue
		}
		if f.HallName != "" && b.HallName != f.HallName {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeBookingStore) FindForSlot(hallName, bookingDate string) ([]db.Booking, error) {
	if s.failFind {
		return nil, fmt.Errorf("store down")
	}
	var out []db.Booking
	for _, b := range s.bookings {
		if b.HallName == hallName && b.BookingDate == bookingDate {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *fakeBookingStore) Insert(b *db.Booking) (int, error) {
	b.ID = s.nextID
	s.nextID++
	s.bookings = append(s.bookings, *b)
	return b.ID, nil
}

func (s *fakeBookingStore) UpdateStatus(id int, status string) (*db.Booking, error) {
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = status
			updated := s.bookings[i]
			return &updated, nil
		}
	}
	return nil, nil
}

type sentEmail struct {
	To      string
	Subject string
}

type fakeMailer struct {
	sent []sentEmail
	fail bool
}

func (m *fakeMailer) Send(toEmail, toName, subject, plainBody, htmlBody string) error {
	if m.fail {
		return fmt.Errorf("mailer down")
	}
	m.sent = append(m.sent, sentEmail{To: toEmail, Subject: subject})
	return nil
}

type fakeSMSSender struct {
	mu   sync.Mutex
	sent []string
}

func (s *fakeSMSSender) Send(toNumber, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, toNumber)
	return nil
}

type fakeHallStore struct {
	halls  []db.Hall
	nextID int
}

func newFakeHallStore(seed ...db.Hall) *fakeHallStore {
	s := &fakeHallStore{nextID: 1}
	for _, h := range seed {
		h.ID = s.nextID
		s.nextID++
		s.halls = append(s.halls, h)
	}
	return s
}

func (s *fakeHallStore) List() ([]db.Hall, error) {
	out := make([]db.Hall, len(s.halls))
	copy(out, s.halls)
	return out, nil
}

func (s *fakeHallStore) GetByName(name string) (*db.Hall, error) {
	for _, h := range s.halls {
		if h.Name == name {
			found := h
			return &found, nil
		}
	}
	return nil, nil
}

func (s *fakeHallStore) GetByNameExcluding(name string, id int) (*db.Hall, error) {
	for _, h := range s.halls {
		if h.Name == name && h.ID != id {
			found := h
			return &found, nil
		}
	}
	return nil, nil
}

func (s *fakeHallStore) Insert(h *db.Hall) (int, error) {
	h.ID = s.nextID
	s.nextID++
	s.halls = append(s.halls, *h)
	return h.ID, nil
}

func (s *fakeHallStore) Update(h *db.Hall) (*db.Hall, error) {
	for i := range s.halls {
		if s.halls[i].ID == h.ID {
			created := s.halls[i].CreatedAt
			s.halls[i] = *h
			s.halls[i].CreatedAt = created
			updated := s.halls[i]
			return &updated, nil
		}
	}
	return nil, nil
}

func (s *fakeHallStore) Delete(id int) (bool, error) {
	for i := range s.halls {
		if s.halls[i].ID == id {
			s.halls = append(s.halls[:i], s.halls[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeUserStore struct {
	users  []db.User
	nextID int
}

func newFakeUserStore(seed ...db.User) *fakeUserStore {
	s := &fakeUserStore{nextID: 1}
	for _, u := range seed {
		u.ID = s.nextID
		s.nextID++
		s.users = append(s.users, u)
	}
	return s
}

func (s *fakeUserStore) GetByEmail(email string) (*db.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) Create(u *db.User) error {
	u.ID = s.nextID
	s.nextID++
	s.users = append(s.users, *u)
	return nil
}

func (s *fakeUserStore) List() ([]db.User, error) {
	out := make([]db.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *fakeUserStore) UpdatePassword(email, passwordHash string) error {
	for i := range s.users {
		if s.users[i].Email == email {
			s.users[i].PasswordHash = passwordHash
			return nil
		}
	}
	return fmt.Errorf("no user with email %s", email)
}

type fakeTokenStore struct {
	tokens map[string]db.ResetToken
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[string]db.ResetToken{}}
}

func (s *fakeTokenStore) Create(t *db.ResetToken) error {
	s.tokens[t.Token] = *t
	return nil
}

func (s *fakeTokenStore) Get(token string) (*db.ResetToken, error) {
	t, ok := s.tokens[token]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (s *fakeTokenStore) MarkUsed(token string) error {
	t, ok := s.tokens[token]
	if !ok {
		return fmt.Errorf("unknown token")
	}
	t.Used = true
	s.tokens[token] = t
	return nil
}

func expireToken(s *fakeTokenStore, token string, at time.Time) {
	t := s.tokens[token]
	t.ExpiresAt = at
	s.tokens[token] = t
}
