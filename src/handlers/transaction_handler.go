package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/events"
	"fintrack-server/src/models"
	"fintrack-server/src/summary"
)

func GetTransactions(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		txns, err := db.GetAllTransactionsForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for user %s: %v", userID, err)
			writeStoreError(w, err)
			return
		}
		if txns == nil {
			txns = []models.Transaction{}
		}
		writeList(w, len(txns), txns)
	}
}

func GetTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		transactionID := chi.URLParam(r, "transaction_id")
		t, err := db.GetTransactionByID(r.Context(), pool, userID, transactionID)
		if err != nil {
			log.Printf("ERROR: Failed to get transaction %s for user %s: %v", transactionID, userID, err)
			writeStoreError(w, err)
			return
		}
		writeData(w, http.StatusOK, t)
	}
}

func CreateTransaction(pool *pgxpool.Pool, pub *events.Publisher, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		var req models.CreateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create transaction request for user %s: %v", userID, err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Date.IsZero() {
			req.Date = now().UTC()
		}
		if err := req.Validate(); err != nil {
			writeStoreError(w, err)
			return
		}

		created, err := db.CreateTransaction(r.Context(), pool, &models.Transaction{
			UserID:      userID,
			Amount:      req.Amount,
			Description: req.Description,
			Category:    req.Category,
			Date:        req.Date,
			Type:        req.Type,
		})
		if err != nil {
			log.Printf("ERROR: Failed to create transaction for user %s: %v", userID, err)
			writeStoreError(w, err)
			return
		}

		log.Printf("INFO: Created transaction %s for user %s", created.ID, userID)
		pub.TransactionChanged(r.Context(), created.ID, userID, events.ActionCreated)
		writeData(w, http.StatusCreated, created)
	}
}

func UpdateTransaction(pool *pgxpool.Pool, pub *events.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		transactionID := chi.URLParam(r, "transaction_id")

		var req models.UpdateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update transaction request for user %s: %v", userID, err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := req.Validate(); err != nil {
			writeStoreError(w, err)
			return
		}

		existing, err := db.GetTransactionByID(r.Context(), pool, userID, transactionID)
		if err != nil {
			log.Printf("ERROR: Failed to load transaction %s for user %s: %v", transactionID, userID, err)
			writeStoreError(w, err)
			return
		}
		req.ApplyTo(existing)

		updated, err := db.UpdateTransaction(r.Context(), pool, existing)
		if err != nil {
			log.Printf("ERROR: Failed to update transaction %s for user %s: %v", transactionID, userID, err)
			writeStoreError(w, err)
			return
		}

		log.Printf("INFO: Updated transaction %s for user %s", updated.ID, userID)
		pub.TransactionChanged(r.Context(), updated.ID, userID, events.ActionUpdated)
		writeData(w, http.StatusOK, updated)
	}
}

func DeleteTransaction(pool *pgxpool.Pool, pub *events.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		transactionID := chi.URLParam(r, "transaction_id")

		if err := db.DeleteTransaction(r.Context(), pool, userID, transactionID); err != nil {
			log.Printf("ERROR: Failed to delete transaction %s for user %s: %v", transactionID, userID, err)
			writeStoreError(w, err)
			return
		}

		log.Printf("INFO: Deleted transaction %s for user %s", transactionID, userID)
		pub.TransactionChanged(r.Context(), transactionID, userID, events.ActionDeleted)
		writeData(w, http.StatusOK, struct{}{})
	}
}

// GetMonthlySummary recomputes the month buckets from the user's full
// transaction set on every call.
func GetMonthlySummary(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		txns, err := db.GetAllTransactionsForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for summary for user %s: %v", userID, err)
			writeStoreError(w, err)
			return
		}
		buckets := summary.Monthly(txns)
		if buckets == nil {
			buckets = []summary.MonthBucket{}
		}
		writeData(w, http.StatusOK, buckets)
	}
}
