package errors

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse represents the error envelope shared by every failing endpoint.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// RespondStatus writes the error envelope for status using its registered message.
func RespondStatus(w http.ResponseWriter, status int) {
	RespondError(w, status, MessageFor(status))
}

// RespondError writes the error envelope with an explicit message.
func RespondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// RespondBadRequest writes a 400 response.
func RespondBadRequest(w http.ResponseWriter) {
	RespondStatus(w, http.StatusBadRequest)
}

// RespondNotFound writes a 404 response.
func RespondNotFound(w http.ResponseWriter) {
	RespondStatus(w, http.StatusNotFound)
}

// RespondUnprocessable writes a 422 response.
func RespondUnprocessable(w http.ResponseWriter) {
	RespondStatus(w, http.StatusUnprocessableEntity)
}

// RespondInternalError writes a 500 response.
func RespondInternalError(w http.ResponseWriter) {
	RespondStatus(w, http.StatusInternalServerError)
}

// NotFoundHandler answers any request with the 404 envelope.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RespondNotFound(w)
	})
}

// MethodNotAllowedHandler answers any request with the 405 envelope.
func MethodNotAllowedHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RespondStatus(w, http.StatusMethodNotAllowed)
	})
}
