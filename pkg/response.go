package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
}{
	JSON: "application/json",
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)

	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%s]: %s", message, err)
	}
}

// WriteJSON marshals payload and writes it with the given status code.
// A marshal failure is reported to the client as an internal error.
func WriteJSON(w http.ResponseWriter, payload any, statusCode int) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("failed to marshal response payload: %s", err)
		WriteErrorMessage(w, "internal server error", http.StatusInternalServerError)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, payloadJson, statusCode)
}

func WriteMessage(w http.ResponseWriter, message string) {
	WriteJSON(w, MessageResponse{Message: message}, http.StatusOK)
}

func WriteErrorMessage(w http.ResponseWriter, message string, statusCode int) {
	errJson, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		// cannot really happen with a plain string, but keep the client informed
		http.Error(w, message, statusCode)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, errJson, statusCode)
}

// WriteError maps err onto the API error taxonomy and writes it as JSON.
// Internal errors are logged and never exposed to the client.
func WriteError(w http.ResponseWriter, err error) {
	statusCode := StatusCode(err)
	if statusCode == http.StatusInternalServerError {
		log.Errorf("internal error: %s", err)
		WriteErrorMessage(w, "internal server error", statusCode)
		return
	}
	WriteErrorMessage(w, err.Error(), statusCode)
}
