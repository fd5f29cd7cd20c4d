package api

import (
	"net/http"

	"hallmate/internal/service"
)

type UserHandler struct {
	Service *service.AuthService
}

func NewUserHandler(svc *service.AuthService) *UserHandler {
	return &UserHandler{Service: svc}
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.ListUsers()
	if err != nil {
		writeError(w, err)
		return
	}
	infos := make([]UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, UserInfo{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role})
	}
	writeJSON(w, http.StatusOK, UsersResponse{Users: infos})
}
