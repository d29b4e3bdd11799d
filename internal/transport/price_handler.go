package transport

import (
	"net/http"
	"time"

	"bananex-be/internal/price"
)

type priceHandler struct {
	svc price.Service
}

func (h *priceHandler) listByProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := parseIDParam(w, r, "productID")
	if !ok {
		return
	}

	prices, err := h.svc.ListByProduct(r.Context(), productID)
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"prices": prices})
}

func (h *priceHandler) add(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ProductID uint      `json:"product_id"`
		Price     float64   `json:"price"`
		Date      time.Time `json:"date"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	p, err := h.svc.Add(r.Context(), in.ProductID, in.Price, in.Date)
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"price": p})
}

func (h *priceHandler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var in struct {
		Price float64 `json:"price"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	p, err := h.svc.UpdateAmount(r.Context(), id, in.Price)
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"price": p})
}

func (h *priceHandler) delete(w http.ResponseWriter, r *http.Request) {
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
