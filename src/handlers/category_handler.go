package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
)

func GetCategories(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		cats, err := db.GetAllCategoriesForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get categories for user %s: %v", userID, err)
			writeStoreError(w, err)
			return
		}
		if cats == nil {
			cats = []models.Category{}
		}
		writeList(w, len(cats), cats)
	}
}

func CreateCategory(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		var req models.CreateCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create category request for user %s: %v", userID, err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := req.Validate(); err != nil {
			writeStoreError(w, err)
			return
		}

		created, err := db.CreateCategory(r.Context(), pool, &models.Category{
			UserID: userID,
			Name:   req.Name,
			Color:  req.ColorOrDefault(),
		})
		if err != nil {
			log.Printf("ERROR: Failed to create category for user %s: %v", userID, err)
			writeStoreError(w, err)
			return
		}

		log.Printf("INFO: Created category %s (%s) for user %s", created.ID, created.Name, userID)
		writeData(w, http.StatusCreated, created)
	}
}

func UpdateCategory(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		categoryID := chi.URLParam(r, "category_id")

		var req models.UpdateCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update category request for user %s: %v", userID, err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := req.Validate(); err != nil {
			writeStoreError(w, err)
			return
		}

		existing, err := db.GetCategoryByID(r.Context(), pool, userID, categoryID)
		if err != nil {
			log.Printf("ERROR: Failed to load category %s for user %s: %v", categoryID, userID, err)
			writeStoreError(w, err)
			return
		}
		req.ApplyTo(existing)

		updated, err := db.UpdateCategory(r.Context(), pool, existing)
		if err != nil {
			log.Printf("ERROR: Failed to update category %s for user %s: %v", categoryID, userID, err)
			writeStoreError(w, err)
			return
		}

		log.Printf("INFO: Updated category %s for user %s", updated.ID, userID)
		writeData(w, http.StatusOK, updated)
	}
}

func DeleteCategory(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		categoryID := chi.URLParam(r, "category_id")

		if err := db.DeleteCategory(r.Context(), pool, userID, categoryID); err != nil {
			log.Printf("ERROR: Failed to delete category %s for user %s: %v", categoryID, userID, err)
			writeStoreError(w, err)
			return
		}

		log.Printf("INFO: Deleted category %s for user %s", categoryID, userID)
		writeData(w, http.StatusOK, struct{}{})
	}
}
