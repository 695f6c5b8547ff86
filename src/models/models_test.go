package models

import (
	"errors"
	"testing"
	"time"
)

func TestCreateTransactionRequestValidate(t *testing.T) {
	good := CreateTransactionRequest{
		Amount:      45.99,
		Description: "Grocery Shopping",
		Category:    "Food",
		Type:        TypeExpense,
		Date:        time.Date(2023, 7, 3, 0, 0, 0, 0, time.UTC),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		req   CreateTransactionRequest
		field string
	}{
		{CreateTransactionRequest{Amount: 0, Description: "x", Category: "Food", Type: TypeExpense}, "amount"},
		{CreateTransactionRequest{Amount: 10, Description: "  ", Category: "Food", Type: TypeExpense}, "description"},
		{CreateTransactionRequest{Amount: 10, Description: "x", Category: "", Type: TypeIncome}, "category"},
		{CreateTransactionRequest{Amount: 10, Description: "x", Category: "Food", Type: "transfer"}, "type"},
		{CreateTransactionRequest{Amount: 10, Description: "x", Category: "Food"}, "type"},
	}
	for i, tc := range cases {
		err := tc.req.Validate()
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("case %d: err = %v, want ValidationError", i, err)
		}
		if vErr.Field != tc.field {
			t.Fatalf("case %d: field = %q, want %q", i, vErr.Field, tc.field)
		}
	}
}

func TestUpdateTransactionRequestApplyTo(t *testing.T) {
	tx := Transaction{
		ID:          "t1",
		Amount:      10,
		Description: "old",
		Category:    "Food",
		Type:        TypeExpense,
		Date:        time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
	}

	amount := 20.0
	desc := "new"
	UpdateTransactionRequest{Amount: &amount, Description: &desc}.ApplyTo(&tx)

	if tx.Amount != 20 || tx.Description != "new" {
		t.Fatalf("update not applied: %+v", tx)
	}
	if tx.Category != "Food" || tx.Type != TypeExpense {
		t.Fatalf("untouched fields changed: %+v", tx)
	}
}

func TestResolveColor(t *testing.T) {
	cats := []Category{
		{Name: "Food", Color: "#FF5733"},
		{Name: "Housing", Color: "#33FF57"},
	}
	if got := ResolveColor("Food", cats); got != "#FF5733" {
		t.Fatalf("ResolveColor(Food) = %q", got)
	}
	if got := ResolveColor("Unknown", cats); got != DefaultColor {
		t.Fatalf("ResolveColor(Unknown) = %q, want %q", got, DefaultColor)
	}
	if got := ResolveColor("Food", nil); got != DefaultColor {
		t.Fatalf("ResolveColor with empty set = %q, want %q", got, DefaultColor)
	}
}

func TestCreateCategoryRequestValidate(t *testing.T) {
	if err := (CreateCategoryRequest{Name: "Coffee", Color: "#112233"}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (CreateCategoryRequest{Name: "Coffee"}).Validate(); err != nil {
		t.Fatalf("expected ok without color, got %v", err)
	}
	if err := (CreateCategoryRequest{Name: ""}).Validate(); err == nil {
		t.Fatal("expected error for empty name")
	}
	if err := (CreateCategoryRequest{Name: "Coffee", Color: "red"}).Validate(); err == nil {
		t.Fatal("expected error for non-hex color")
	}
}

func TestColorOrDefault(t *testing.T) {
	if got := (CreateCategoryRequest{Name: "x"}).ColorOrDefault(); got != DefaultColor {
		t.Fatalf("ColorOrDefault = %q, want %q", got, DefaultColor)
	}
	if got := (CreateCategoryRequest{Name: "x", Color: "#112233"}).ColorOrDefault(); got != "#112233" {
		t.Fatalf("ColorOrDefault = %q", got)
	}
}

func TestDefaultCategoriesFixedSet(t *testing.T) {
	if len(DefaultCategories) != 10 {
		t.Fatalf("default set has %d entries, want 10", len(DefaultCategories))
	}
	seen := make(map[string]bool)
	for _, c := range DefaultCategories {
		if seen[c.Name] {
			t.Fatalf("duplicate default category %q", c.Name)
		}
		seen[c.Name] = true
		if c.Color == "" {
			t.Fatalf("default category %q has no color", c.Name)
		}
	}
}
