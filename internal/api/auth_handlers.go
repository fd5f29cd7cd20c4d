package api

import (
	"encoding/json"
	"net/http"

	"hallmate/internal/service"
)

type AuthHandler struct {
	Service *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}
	user, err := h.Service.Signup(req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		Message string   `json:"message"`
		User    UserInfo `json:"user"`
	}{
		Message: "Signup successful",
		User:    UserInfo{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}
	token, user, err := h.Service.Login(req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    UserInfo{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
	})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}
	if err := h.Service.ForgotPassword(req.Email); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Password reset email sent"})
}

func (h *AuthHandler) VerifyResetToken(w http.ResponseWriter, r *http.Request) {
	var req VerifyResetTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}
	if err := h.Service.VerifyResetToken(req.Token); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Token is valid"})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}
	if err := h.Service.ResetPassword(req.Token, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Password reset successful"})
}
