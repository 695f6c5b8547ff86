package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack-server/src/models"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestWriteList(t *testing.T) {
	rec := httptest.NewRecorder()
	writeList(rec, 2, []string{"a", "b"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Fatalf("success = %v", body["success"])
	}
	if body["count"] != float64(2) {
		t.Fatalf("count = %v", body["count"])
	}
}

func TestWriteStoreError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", &models.ValidationError{Field: "amount", Message: "amount must be a positive number"}, http.StatusBadRequest, "amount must be a positive number"},
		{"not found", models.ErrNotFound, http.StatusNotFound, "Record not found"},
		{"not owner", models.ErrNotOwner, http.StatusUnauthorized, "Not authorized to access this record"},
		{"duplicate category", models.ErrDuplicateCategory, http.StatusBadRequest, "Category already exists"},
		{"duplicate email", models.ErrDuplicateEmail, http.StatusConflict, "Email already registered"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeStoreError(rec, tc.err)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			body := decodeBody(t, rec)
			if body["success"] != false {
				t.Fatalf("success = %v", body["success"])
			}
			if body["message"] != tc.wantMsg {
				t.Fatalf("message = %q, want %q", body["message"], tc.wantMsg)
			}
		})
	}
}
