package transport

import (
	"net/http"

	"bananex-be/internal/admin"
)

type adminHandler struct {
	svc admin.Service
}

func (h *adminHandler) login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	token, a, err := h.svc.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"admin": map[string]any{"id": a.ID, "name": a.Name, "email": a.Email},
	})
}
