package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fintrack-server/src/models"
)

// All responses share the original API's envelope: lists carry a count,
// single records just the data, errors {success:false, message}.

func writeData(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

func writeList(w http.ResponseWriter, count int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// writeStoreError maps the error taxonomy onto HTTP statuses. Anything
// unrecognized is a 500 with a generic message; details stay in the log.
func writeStoreError(w http.ResponseWriter, err error) {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeError(w, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, models.ErrNotFound):
		writeError(w, http.StatusNotFound, "Record not found")
	case errors.Is(err, models.ErrNotOwner):
		writeError(w, http.StatusUnauthorized, "Not authorized to access this record")
	case errors.Is(err, models.ErrDuplicateCategory):
		writeError(w, http.StatusBadRequest, "Category already exists")
	case errors.Is(err, models.ErrDuplicateEmail):
		writeError(w, http.StatusConflict, "Email already registered")
	default:
		writeError(w, http.StatusInternalServerError, "Internal error")
	}
}
