package transport

import (
	"net/http"

	"bananex-be/internal/notification"
	"bananex-be/internal/utils"
)

type notificationHandler struct {
	svc notification.Service
}

func (h *notificationHandler) listMine(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	notifications, err := h.svc.ListForUser(r.Context(), userID)
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"notifications": notifications})
}

func (h *notificationHandler) markRead(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	if err := h.svc.MarkRead(r.Context(), id, userID); err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"read": id})
}

func (h *notificationHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	if err := h.svc.Delete(r.Context(), id, userID); err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"deleted": id})
}

func (h *notificationHandler) create(w http.ResponseWriter, r *http.Request) {
	var in struct {
		UserID  uint   `json:"user_id"`
		Message string `json:"message"`
		Type    string `json:"type"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	n, err := h.svc.Notify(r.Context(), in.UserID, in.Message, in.Type)
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"notification": n})
}
