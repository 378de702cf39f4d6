// Package item defines the core domain type for catalog entries.
package item

import (
	"errors"
	"strings"
)

// Item represents one catalog entry.
type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validation errors.
var (
	ErrEmptyName        = errors.New("name is required")
	ErrEmptyDescription = errors.New("description is required")
)

// Validate checks that name and description are non-empty after trimming.
// Returns the first failing field's error.
func Validate(name, description string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	return nil
}

// New builds a validated item with trimmed fields.
func New(id int, name, description string) (Item, error) {
	if err := Validate(name, description); err != nil {
		return Item{}, err
	}
	return Item{
		ID:          id,
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}, nil
}
