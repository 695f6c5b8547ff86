package models

import (
	"regexp"
	"strings"
)

// DefaultColor is the neutral color used when a category has no color of its
// own or cannot be resolved.
const DefaultColor = "#808080"

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	UserID string `json:"user_id"`
}

// DefaultCategories is the fixed set seeded for users with no categories yet.
var DefaultCategories = []Category{
	{Name: "Food", Color: "#FF5733"},
	{Name: "Transportation", Color: "#33A1FF"},
	{Name: "Housing", Color: "#33FF57"},
	{Name: "Entertainment", Color: "#D433FF"},
	{Name: "Shopping", Color: "#FF33A1"},
	{Name: "Utilities", Color: "#33FFD4"},
	{Name: "Healthcare", Color: "#FF3333"},
	{Name: "Education", Color: "#FFFF33"},
	{Name: "Salary", Color: "#33FF33"},
	{Name: "Investments", Color: "#3333FF"},
}

// ResolveColor looks a category up by exact name and returns its color, or
// DefaultColor when the name is not present in the set.
func ResolveColor(name string, categories []Category) string {
	for _, c := range categories {
		if c.Name == name {
			return c.Color
		}
	}
	return DefaultColor
}

type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (r CreateCategoryRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if r.Color != "" && !hexColorRe.MatchString(r.Color) {
		return &ValidationError{Field: "color", Message: "color must be a hex value like #33A1FF"}
	}
	return nil
}

// ColorOrDefault returns the requested color, falling back to DefaultColor
// when none was supplied.
func (r CreateCategoryRequest) ColorOrDefault() string {
	if r.Color == "" {
		return DefaultColor
	}
	return r.Color
}

type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

func (r UpdateCategoryRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return &ValidationError{Field: "name", Message: "name cannot be empty"}
	}
	if r.Color != nil && !hexColorRe.MatchString(*r.Color) {
		return &ValidationError{Field: "color", Message: "color must be a hex value like #33A1FF"}
	}
	return nil
}

func (r UpdateCategoryRequest) ApplyTo(c *Category) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Color != nil {
		c.Color = *r.Color
	}
}
