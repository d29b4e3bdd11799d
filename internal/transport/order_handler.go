package transport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"bananex-be/internal/invoice"
	"bananex-be/internal/order"
	"bananex-be/internal/utils"
)

type orderHandler struct {
	orders   order.Service
	invoices invoice.Service
}

func (h *orderHandler) create(w http.ResponseWriter, r *http.Request) {
	var in struct {
		DeliveryDate time.Time            `json:"delivery_date"`
		Products     []order.NewOrderItem `json:"products"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	o, err := h.orders.Create(r.Context(), userID, in.DeliveryDate, in.Products)
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{
		"order_id":   o.ID,
		"order_code": o.OrderCode,
	})
}

func (h *orderHandler) listMine(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	orders, err := h.orders.ListByUser(r.Context(), userID)
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (h *orderHandler) getByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	userID, _ := utils.GetUserIDFromContext(r.Context())

	o, err := h.orders.GetByCode(r.Context(), code, userID, utils.IsAdminContext(r.Context()))
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, orderPayload(o))
}

// orderPayload marks the invoice as pending on orders that have not
// been invoiced yet.
func orderPayload(o *order.Order) map[string]any {
	payload := map[string]any{"order": o}
	if o.Invoice == nil {
		payload["invoice_status"] = "pending"
	}
	return payload
}

func (h *orderHandler) cancel(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	userID, _ := utils.GetUserIDFromContext(r.Context())

	o, err := h.orders.Cancel(r.Context(), code, userID)
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"order": o})
}

func (h *orderHandler) listAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListAll(r.Context())
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (h *orderHandler) getByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	o, err := h.orders.GetByID(r.Context(), id)
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, orderPayload(o))
}

func (h *orderHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var in struct {
		Status       string     `json:"status"`
		DeliveryDate *time.Time `json:"delivery_date"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	o, err := h.orders.UpdateStatus(r.Context(), id, order.OrderStatus(in.Status), in.DeliveryDate)
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"order": o})
}

func (h *orderHandler) createInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var in struct {
		InvoiceNumber string         `json:"invoice_number"`
		Items         []invoice.Item `json:"items"`
		Total         float64        `json:"total"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	inv, err := h.invoices.Create(r.Context(), id, in.InvoiceNumber, in.Items, in.Total)
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"invoice": inv})
}
