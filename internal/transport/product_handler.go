package transport

import (
	"net/http"

	"bananex-be/internal/product"
)

type productHandler struct {
	svc product.Service
}

func (h *productHandler) list(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.GetAll(r.Context())
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"products": products})
}

func (h *productHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	p, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"product": p})
}

func (h *productHandler) create(w http.ResponseWriter, r *http.Request) {
	var p product.Product
	if !decodeBody(w, r, &p) {
		return
	}

	if err := h.svc.Create(r.Context(), &p); err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"product": p})
}

func (h *productHandler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var upd product.Update
	if !decodeBody(w, r, &upd) {
		return
	}

	p, err := h.svc.Update(r.Context(), id, upd)
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"product": p})
}

func (h *productHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"deleted": id})
}
