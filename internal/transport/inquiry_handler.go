package transport

import (
	"net/http"

	"bananex-be/internal/inquiry"
	"bananex-be/internal/utils"
)

type inquiryHandler struct {
	svc inquiry.Service
}

func (h *inquiryHandler) submitPublic(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Message string `json:"message"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	inq, err := h.svc.SubmitGuest(r.Context(), in.Name, in.Phone, in.Message)
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"inquiry": inq})
}

func (h *inquiryHandler) submit(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Message string `json:"message"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	inq, err := h.svc.SubmitForUser(r.Context(), userID, in.Message)
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"inquiry": inq})
}

func (h *inquiryHandler) listMine(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	inquiries, err := h.svc.ListMine(r.Context(), userID)
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"inquiries": inquiries})
}

func (h *inquiryHandler) listAll(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.svc.ListAll(r.Context())
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"inquiries": inquiries})
}

func (h *inquiryHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
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

	inq, err := h.svc.UpdateStatus(r.Context(), id, in.Status)
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"inquiry": inq})
}
