// Package catalog implements the in-memory collection operations over
// catalog items. The collection is passed explicitly; there is no shared
// state, so each operation can be tested in isolation.
package catalog

import (
	"errors"
	"sort"
	"strings"

	"github.com/renwick/curio/internal/item"
)

// ErrNotFound is returned when an id does not match any item.
// Not-found is a normal outcome, not an exceptional one.
var ErrNotFound = errors.New("item not found")

// NextID returns the id to assign to the next item: one more than the
// maximum existing id, or 1 for an empty collection. Since items are
// never deleted, ids are strictly increasing in insertion order.
func NextID(items []item.Item) int {
	max := 0
	for _, it := range items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max + 1
}

// FindByID returns the item with the given id and whether it was found.
func FindByID(items []item.Item, id int) (item.Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return item.Item{}, false
}

// Add validates the fields, assigns the next id and appends the new item.
// Returns the extended collection and the created item. On validation
// failure the input collection is returned unchanged.
func Add(items []item.Item, name, description string) ([]item.Item, item.Item, error) {
	it, err := item.New(NextID(items), name, description)
	if err != nil {
		return items, item.Item{}, err
	}
	return append(items, it), it, nil
}

// FieldUpdate describes an edit to a single item. A nil field means
// "keep the current value"; a non-nil field replaces it. Modeling this
// as pointers rather than empty-string sentinels keeps a future
// "clear field" update expressible.
type FieldUpdate struct {
	Name        *string
	Description *string
}

// Edit applies an update to the item with the given id. The resulting
// name/description pair is validated before anything is committed; on
// not-found or validation failure the collection is left unchanged.
// Returns the updated item.
func Edit(items []item.Item, id int, upd FieldUpdate) (item.Item, error) {
	for i, it := range items {
		if it.ID != id {
			continue
		}

		name := it.Name
		if upd.Name != nil {
			name = strings.TrimSpace(*upd.Name)
		}
		description := it.Description
		if upd.Description != nil {
			description = strings.TrimSpace(*upd.Description)
		}

		if err := item.Validate(name, description); err != nil {
			return item.Item{}, err
		}

		items[i].Name = name
		items[i].Description = description
		return items[i], nil
	}
	return item.Item{}, ErrNotFound
}

// SortByID sorts the collection ascending by id. This is the canonical
// display order.
func SortByID(items []item.Item) {
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
}
