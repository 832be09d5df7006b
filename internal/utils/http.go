package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mep-tools/bracket-tool/models"
)

const contentTypeJSON = "application/json"

// WriteJSON encodes data and writes it with statusCode. When data cannot be
// encoded the client gets a 500 {"detail"} reply instead and the encoding
// error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		body = []byte(`{"detail":"Internal Server Error"}`)
		statusCode = http.StatusInternalServerError
		err = fmt.Errorf("error encoding response: %w", err)
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)

	n, writeErr := w.Write(body)
	if err != nil {
		return n, err
	}
	return n, writeErr
}

// WriteDetail writes an error reply of the form {"detail": "..."}.
func WriteDetail(w http.ResponseWriter, detail string, statusCode int) {
	_, _ = WriteJSON(w, models.ErrorResponse{Detail: detail}, statusCode)
}
