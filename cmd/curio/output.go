package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/renwick/curio/internal/item"
)

// SearchDescriptionMaxLen caps description text in search result summaries.
const SearchDescriptionMaxLen = 60

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ItemsResponse is the response for commands that return a collection.
type ItemsResponse struct {
	Items []item.Item `json:"items"`
	Count int         `json:"count"`
}

// printItemsHuman prints items one block per item, ascending id order.
func printItemsHuman(w io.Writer, items []item.Item) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No items found.")
		return
	}
	for _, it := range items {
		fmt.Fprintf(w, "ID: %d\n", it.ID)
		fmt.Fprintf(w, "Name: %s\n", it.Name)
		fmt.Fprintf(w, "Description: %s\n", it.Description)
		fmt.Fprintln(w, "------------------------------")
	}
}

// truncateString truncates a string to maxLen runes, adding "..." if
// truncated. Cutting on rune boundaries keeps multi-byte text valid.
func truncateString(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}
