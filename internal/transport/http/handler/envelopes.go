package handler

import (
	"encoding/json"
	"net/http"
)

// Operation tags carried in success envelopes.
const (
	OpSave       = "SAVE"
	OpUpdate     = "UPDATE"
	OpDelete     = "DELETE"
	OpLogout     = "LOGOUT"
	OpGuestLogin = "GUEST LOGIN"
	OpUserLogin  = "USER LOGIN"
)

const (
	msgSuccess   = "SUCCESS"
	msgError     = "ERROR"
	msgCancelled = "CANCELLED"
)

// OperationEnvelope is the generic mutation response wrapper.
type OperationEnvelope struct {
	Operation string      `json:"Operation"`
	Message   string      `json:"Message"`
	Item      interface{} `json:"Item,omitempty"`
}

// MessageEnvelope carries plain informational and error messages.
type MessageEnvelope struct {
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

// FailureEnvelope carries store/transport failures; Error holds the
// underlying error message.
type FailureEnvelope struct {
	Message string `json:"Message"`
	Error   string `json:"Error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Message: msg})
}

func saved(item interface{}) OperationEnvelope {
	return OperationEnvelope{Operation: OpSave, Message: msgSuccess, Item: item}
}

func updated(item interface{}) OperationEnvelope {
	return OperationEnvelope{Operation: OpUpdate, Message: msgSuccess, Item: item}
}

func deleted(item interface{}) OperationEnvelope {
	return OperationEnvelope{Operation: OpDelete, Message: msgSuccess, Item: item}
}
