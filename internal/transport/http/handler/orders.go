package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/storefront-api-nosql/internal/application/order"
	"github.com/storefront-api-nosql/internal/domain"
)

// OrderHandler handles order CRUD and status-transition endpoints.
type OrderHandler struct {
	svc order.Service
}

func NewOrderHandler(svc order.Service) *OrderHandler { return &OrderHandler{svc: svc} }

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	offset, limit, err := parsePage(q)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	filter := domain.OrderFilter{
		AccountID:   optString(q, "accountId"),
		OrderStatus: optString(q, "orderStatus"),
		DateCreated: optString(q, "dateCreated"),
	}
	orders, err := h.svc.List(r.Context(), filter, offset, limit)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	o, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved(o))
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.Get(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	o, err := h.svc.Update(r.Context(), chi.URLParam(r, "orderId"), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated(o))
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")
	o, err := h.svc.Delete(r.Context(), orderID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"Message":      fmt.Sprintf("Order with ID '%s' has been successfully deleted.", orderID),
		"DeletedOrder": o,
	})
}

// UpdateStatus transitions the order status and reports the notification
// side effect. When only the notification failed, the stored status has
// already changed; the 500 communicates the partial failure.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	result, err := h.svc.UpdateStatus(r.Context(), chi.URLParam(r, "orderId"), req)
	if err != nil {
		if errors.Is(err, order.ErrNotificationFailed) {
			writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"Message":           "Order status updated, but notification failed.",
				"NotificationError": err.Error(),
			})
			return
		}
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"Operation":         OpUpdate,
		"Message":           msgSuccess,
		"NotificationSent":  true,
		"UpdatedAttributes": result.UpdatedAttributes,
		"NotificationBody":  result.Notification,
	})
}
