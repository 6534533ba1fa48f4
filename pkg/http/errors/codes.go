package errors

import "net/http"

// Fixed, client-facing messages keyed by HTTP status code. Responses never
// carry internal error detail.
var statusMessages = map[int]string{
	http.StatusBadRequest:          "Bad request",
	http.StatusNotFound:            "Not Found",
	http.StatusMethodNotAllowed:    "Method Not Allowed",
	http.StatusUnprocessableEntity: "Unprocessable",
	http.StatusInternalServerError: "Internal Server Error",
}

// MessageFor returns the registered message for a status code, falling back
// to the standard status text for codes without an explicit entry.
func MessageFor(status int) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return http.StatusText(status)
}
