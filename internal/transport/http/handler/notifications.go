package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/storefront-api-nosql/internal/application/notification"
	"github.com/storefront-api-nosql/internal/domain"
)

// NotificationHandler handles notification and notification-type endpoints.
type NotificationHandler struct {
	svc notification.Service
}

func NewNotificationHandler(svc notification.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	n, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved(n))
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.svc.List(r.Context(), notificationFilter(r))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"notifications": notifications})
}

func (h *NotificationHandler) History(w http.ResponseWriter, r *http.Request) {
	history, err := h.svc.History(r.Context(), notificationFilter(r))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"history": history})
}

func (h *NotificationHandler) Get(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Get(r.Context(), chi.URLParam(r, "notificationId"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Delete(r.Context(), chi.URLParam(r, "notificationId"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deleted(n))
}

func (h *NotificationHandler) CreateType(w http.ResponseWriter, r *http.Request) {
	var t domain.NotificationType
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.svc.CreateType(r.Context(), t)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved(created))
}

func (h *NotificationHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	typesList, err := h.svc.ListTypes(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"notificationTypes": typesList})
}

func (h *NotificationHandler) GetType(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.GetType(r.Context(), chi.URLParam(r, "typeId"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *NotificationHandler) DeleteType(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.DeleteType(r.Context(), chi.URLParam(r, "typeId"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deleted(t))
}

// notificationFilter builds the equality filter from recognized query
// parameters. Absent parameters are simply not applied; there is no
// stringified-"undefined" sentinel.
func notificationFilter(r *http.Request) domain.NotificationFilter {
	q := r.URL.Query()
	var f domain.NotificationFilter
	if q.Has("userId") {
		v := q.Get("userId")
		f.UserID = &v
	}
	if q.Has("typeId") {
		v := q.Get("typeId")
		f.TypeID = &v
	}
	return f
}
