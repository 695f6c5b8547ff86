package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/util"
)

func Register(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode register request body: %v", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))

		if !util.ValidateName(req.Name) {
			log.Printf("ERROR: Name validation failed during registration - Email: %s", req.Email)
			writeError(w, http.StatusBadRequest, "Name must be between 1 and 50 characters")
			return
		}
		if !util.ValidateEmail(req.Email) {
			log.Printf("ERROR: Email validation failed during registration - Email: %s", req.Email)
			writeError(w, http.StatusBadRequest, "Invalid email format")
			return
		}
		if !util.ValidatePassword(req.Password) {
			log.Printf("ERROR: Password validation failed during registration - Email: %s", req.Email)
			writeError(w, http.StatusBadRequest, "Password must be at least 8 characters with uppercase, lowercase and digit")
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("ERROR: Failed to hash password for %s: %v", req.Email, err)
			writeError(w, http.StatusInternalServerError, "Internal error")
			return
		}

		user, err := db.CreateUser(r.Context(), pool, req.Name, req.Email, hashedPassword)
		if err != nil {
			log.Printf("ERROR: Failed to create user %s: %v", req.Email, err)
			writeStoreError(w, err)
			return
		}

		// First-time users start with the default category set. A failure
		// here is logged but does not fail registration; seeding re-runs
		// the next time it is attempted and is idempotent.
		if err := db.SeedDefaultCategories(r.Context(), pool, user.ID); err != nil {
			log.Printf("ERROR: Failed to seed default categories for user %s: %v", user.ID, err)
		}

		tokenString, err := generateToken(user)
		if err != nil {
			log.Printf("ERROR: Failed to generate JWT token for user %s: %v", user.Email, err)
			writeError(w, http.StatusInternalServerError, "Error generating token")
			return
		}

		log.Printf("INFO: Successful registration - Email: %s, ID: %s", user.Email, user.ID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"token":   tokenString,
			"user":    user,
		})
	}
}

func Login(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode login request body: %v", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, err := db.GetUserByEmail(r.Context(), pool, strings.ToLower(strings.TrimSpace(req.Email)))
		if err != nil {
			log.Printf("ERROR: Failed to find user during login - Email: %s: %v", req.Email, err)
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)); err != nil {
			log.Printf("ERROR: Invalid password attempt for email %s from IP %s", req.Email, r.RemoteAddr)
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		tokenString, err := generateToken(user)
		if err != nil {
			log.Printf("ERROR: Failed to generate JWT token for user %s: %v", user.Email, err)
			writeError(w, http.StatusInternalServerError, "Error generating token")
			return
		}

		log.Printf("INFO: Successful login - Email: %s, ID: %s", user.Email, user.ID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"token":   tokenString,
			"user":    user,
		})
	}
}

func Me(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		user, err := db.GetUserByID(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to load user %s: %v", userID, err)
			writeStoreError(w, err)
			return
		}
		writeData(w, http.StatusOK, user)
	}
}

func generateToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(time.Hour * 168).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
