package service

import (
	"log"
	"strings"
	"time"

	"hallmate/internal/db"
	httperrors "hallmate/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	resetTokenTTL = time.Hour
	loginTokenTTL = 24 * time.Hour
)

type UserStore interface {
	GetByEmail(email string) (*db.User, error)
	Create(u *db.User) error
	List() ([]db.User, error)
	UpdatePassword(email, passwordHash string) error
}

type TokenStore interface {
	Create(t *db.ResetToken) error
	Get(token string) (*db.ResetToken, error)
	MarkUsed(token string) error
}

type AuthService struct {
	users  UserStore
	tokens TokenStore
	sender *SenderService

	jwtSecret []byte
	// allowedDomain restricts signups to a campus email domain when set,
	// e.g. "@cutmap.ac.in".
	allowedDomain string
}

func NewAuthService(users UserStore, tokens TokenStore, sender *SenderService, jwtSecret []byte, allowedDomain string) *AuthService {
	return &AuthService{
		users:         users,
		tokens:        tokens,
		sender:        sender,
		jwtSecret:     jwtSecret,
		allowedDomain: allowedDomain,
	}
}

func (s *AuthService) domainAllowed(email string) bool {
	if s.allowedDomain == "" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(email), strings.ToLower(s.allowedDomain))
}

func (s *AuthService) Signup(name, email, password string) (*db.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, httperrors.Validation("All fields are required")
	}
	if !s.domainAllowed(email) {
		return nil, httperrors.Validation("Only " + s.allowedDomain + " emails are allowed")
	}

	existing, err := s.users.GetByEmail(email)
	if err != nil {
		log.Printf("Error checking user %s: %v", email, err)
		return nil, httperrors.Internal("Internal server error")
	}
	if existing != nil {
		return nil, httperrors.Conflict("User with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password for %s: %v", email, err)
		return nil, httperrors.Internal("Internal server error")
	}

	user := &db.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         RoleUser,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(user); err != nil {
		log.Printf("Error creating user %s: %v", email, err)
		return nil, httperrors.Internal("Internal server error")
	}
	return user, nil
}

// Login verifies credentials and returns a signed JWT carrying the user's
// role claim, plus the user record.
func (s *AuthService) Login(email, password string) (string, *db.User, error) {
	if email == "" || password == "" {
		return "", nil, httperrors.Validation("Email and password are required")
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		log.Printf("Error fetching user %s: %v", email, err)
		return "", nil, httperrors.Internal("Internal server error")
	}
	if user == nil {
		return "", nil, httperrors.Unauthorized("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, httperrors.Unauthorized("Invalid email or password")
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(loginTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		log.Printf("Error signing token for %s: %v", email, err)
		return "", nil, httperrors.Internal("Internal server error")
	}
	return signed, user, nil
}

// ForgotPassword issues a single-use reset token valid for one hour and
// emails it to the account owner.
func (s *AuthService) ForgotPassword(email string) error {
	if email == "" {
		return httperrors.Validation("Email is required")
	}
	if !s.domainAllowed(email) {
		return httperrors.Validation("Please enter a valid " + s.allowedDomain + " email address.")
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		log.Printf("Error fetching user %s: %v", email, err)
		return httperrors.Internal("Internal server error")
	}
	if user == nil {
		return httperrors.NotFound("No account found with this email address.")
	}

	token := &db.ResetToken{
		Token:     uuid.NewString(),
		Email:     user.Email,
		ExpiresAt: time.Now().UTC().Add(resetTokenTTL),
		Used:      false,
	}
	if err := s.tokens.Create(token); err != nil {
		log.Printf("Error storing reset token for %s: %v", email, err)
		return httperrors.Internal("Internal server error")
	}

	if err := s.sender.SendPasswordResetEmail(user.Email, user.Name, token.Token, token.ExpiresAt); err != nil {
		return httperrors.Internal("Failed to send password reset email")
	}
	return nil
}

// VerifyResetToken checks a token is known, unused and unexpired.
func (s *AuthService) VerifyResetToken(token string) error {
	_, err := s.resolveToken(token)
	return err
}

// ResetPassword consumes a valid token and replaces the account password.
func (s *AuthService) ResetPassword(token, newPassword string) error {
	if newPassword == "" {
		return httperrors.Validation("New password is required")
	}

	t, err := s.resolveToken(token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing new password for %s: %v", t.Email, err)
		return httperrors.Internal("Internal server error")
	}
	if err := s.users.UpdatePassword(t.Email, string(hash)); err != nil {
		log.Printf("Error updating password for %s: %v", t.Email, err)
		return httperrors.Internal("Internal server error")
	}
	if err := s.tokens.MarkUsed(t.Token); err != nil {
		log.Printf("Error marking reset token used for %s: %v", t.Email, err)
		return httperrors.Internal("Internal server error")
	}
	return nil
}

func (s *AuthService) resolveToken(token string) (*db.ResetToken, error) {
	if token == "" {
		return nil, httperrors.Validation("Token is required")
	}
	t, err := s.tokens.Get(token)
	if err != nil {
		log.Printf("Error fetching reset token: %v", err)
		return nil, httperrors.Internal("Internal server error")
	}
	if t == nil {
		return nil, httperrors.NotFound("Invalid or expired reset token")
	}
	if t.Used || time.Now().UTC().After(t.ExpiresAt) {
		return nil, httperrors.Validation("Invalid or expired reset token")
	}
	return t, nil
}

func (s *AuthService) ListUsers() ([]db.User, error) {
	users, err := s.users.List()
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return nil, httperrors.Internal("Internal server error")
	}
	if users == nil {
		users = []db.User{}
	}
	return users, nil
}
