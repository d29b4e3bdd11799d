package transport

import (
	"net/http"

	"bananex-be/internal/user"
	"bananex-be/internal/utils"
)

type userHandler struct {
	svc user.Service
}

func (h *userHandler) register(w http.ResponseWriter, r *http.Request) {
	var in user.RegisterInput
	if !decodeBody(w, r, &in) {
		return
	}

	u, err := h.svc.Register(r.Context(), in)
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"user": u})
}

func (h *userHandler) login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	token, u, err := h.svc.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"token": token, "user": u})
}

func (h *userHandler) profile(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	u, err := h.svc.GetProfile(r.Context(), userID)
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"user": u})
}

func (h *userHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var upd user.ProfileUpdate
	if !decodeBody(w, r, &upd) {
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	u, err := h.svc.UpdateProfile(r.Context(), userID, upd)
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"user": u})
}

func (h *userHandler) addStockAlert(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ProductID uint `json:"product_id"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	alert, err := h.svc.AddStockAlert(r.Context(), userID, in.ProductID)
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"alert": alert})
}

func (h *userHandler) listAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListAll(r.Context())
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"users": users})
}

func (h *userHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var in struct {
		Status string `json:"status"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	u, err := h.svc.UpdateStatus(r.Context(), id, user.UserStatus(in.Status))
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"user": u})
}
