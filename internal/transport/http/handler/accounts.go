package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/storefront-api-nosql/internal/application/account"
	"github.com/storefront-api-nosql/internal/domain"
)

// AccountHandler handles account, preference and login/logout endpoints.
type AccountHandler struct {
	svc account.Service
}

func NewAccountHandler(svc account.Service) *AccountHandler { return &AccountHandler{svc: svc} }

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	offset, limit, err := parsePage(q)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	filter := domain.AccountFilter{Type: q.Get("type")}
	if q.Has("active") {
		active, err := strconv.ParseBool(q.Get("active"))
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "query parameter 'active' must be a boolean")
			return
		}
		filter.Active = &active
	}
	accounts, err := h.svc.List(r.Context(), filter, offset, limit)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}

func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	a, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved(a))
}

func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deleted(a))
}

// DeleteConfirm deletes the account only when the body confirms it.
func (h *AccountHandler) DeleteConfirm(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Confirmation bool `json:"confirmation"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	a, err := h.svc.DeleteConfirm(r.Context(), chi.URLParam(r, "id"), req.Confirmation)
	if err != nil {
		httpError(w, err)
		return
	}
	if !req.Confirmation {
		writeJSON(w, http.StatusOK, OperationEnvelope{Operation: OpDelete, Message: msgCancelled})
		return
	}
	writeJSON(w, http.StatusOK, deleted(a))
}

func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	a, guest, err := h.svc.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrNoAccess) {
			writeJSON(w, http.StatusUnauthorized, OperationEnvelope{Operation: OpUserLogin, Message: msgError})
			return
		}
		httpError(w, err)
		return
	}
	if guest {
		writeJSON(w, http.StatusOK, OperationEnvelope{Operation: OpGuestLogin, Message: msgSuccess, Item: req})
		return
	}
	writeJSON(w, http.StatusOK, OperationEnvelope{Operation: OpUserLogin, Message: msgSuccess, Item: a})
}

func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Logout(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, OperationEnvelope{Operation: OpLogout, Message: msgSuccess, Item: a})
}

func (h *AccountHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var prefs map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := h.svc.UpdatePreferences(r.Context(), chi.URLParam(r, "id"), prefs)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated(p))
}

func (h *AccountHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetPreferences(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *AccountHandler) DeletePreferences(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.DeletePreferences(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deleted(p))
}
