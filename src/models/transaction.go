package models

import (
	"strings"
	"time"
)

type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

func (t TransactionType) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

type Transaction struct {
	ID          string          `json:"id"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	Type        TransactionType `json:"type"`
	UserID      string          `json:"user_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

type CreateTransactionRequest struct {
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
	Date        time.Time       `json:"date,omitempty"`
}

func (r CreateTransactionRequest) Validate() error {
	if r.Amount <= 0 {
		return &ValidationError{Field: "amount", Message: "amount must be a positive number"}
	}
	if strings.TrimSpace(r.Description) == "" {
		return &ValidationError{Field: "description", Message: "description is required"}
	}
	if strings.TrimSpace(r.Category) == "" {
		return &ValidationError{Field: "category", Message: "category is required"}
	}
	if !r.Type.IsValid() {
		return &ValidationError{Field: "type", Message: "type must be income or expense"}
	}
	return nil
}

// UpdateTransactionRequest carries a partial update. Nil fields are left
// untouched.
type UpdateTransactionRequest struct {
	Amount      *float64         `json:"amount"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Type        *TransactionType `json:"type"`
	Date        *time.Time       `json:"date"`
}

func (r UpdateTransactionRequest) Validate() error {
	if r.Amount != nil && *r.Amount <= 0 {
		return &ValidationError{Field: "amount", Message: "amount must be a positive number"}
	}
	if r.Description != nil && strings.TrimSpace(*r.Description) == "" {
		return &ValidationError{Field: "description", Message: "description cannot be empty"}
	}
	if r.Category != nil && strings.TrimSpace(*r.Category) == "" {
		return &ValidationError{Field: "category", Message: "category cannot be empty"}
	}
	if r.Type != nil && !r.Type.IsValid() {
		return &ValidationError{Field: "type", Message: "type must be income or expense"}
	}
	if r.Date != nil && r.Date.IsZero() {
		return &ValidationError{Field: "date", Message: "date cannot be zero"}
	}
	return nil
}

func (r UpdateTransactionRequest) ApplyTo(t *Transaction) {
	if r.Amount != nil {
		t.Amount = *r.Amount
	}
	if r.Description != nil {
		t.Description = *r.Description
	}
	if r.Category != nil {
		t.Category = *r.Category
	}
	if r.Type != nil {
		t.Type = *r.Type
	}
	if r.Date != nil {
		t.Date = *r.Date
	}
}
