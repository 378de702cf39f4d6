// Package storage translates between the in-memory catalog and its
// persistent representations: a CSV file as the source of truth and a
// derived SQLite index for queries.
package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/renwick/curio/internal/catalog"
	"github.com/renwick/curio/internal/item"
)

// CatalogFile is the default catalog file name.
const CatalogFile = "catalog.csv"

// Header is the literal first row of the catalog file.
var Header = []string{"id", "name", "description"}

// Load reads all items from the catalog file, sorted ascending by id.
// A missing file is created with only the header row and yields an empty
// collection. Rows whose id field is missing or non-numeric are skipped:
// legacy files may contain junk rows and load must tolerate them.
func Load(path string) ([]item.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := Save(path, nil); err != nil {
				return nil, fmt.Errorf("creating catalog file: %w", err)
			}
			return nil, nil
		}
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate short/long rows, filtered below

	var items []item.Item
	header := true
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A quoting-mangled row is junk like any other; it must
			// never fail the load.
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return nil, fmt.Errorf("parsing catalog file: %w", err)
		}
		if header {
			header = false
			continue
		}
		if len(rec) < 3 {
			continue
		}
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			continue
		}
		items = append(items, item.Item{
			ID:          id,
			Name:        rec[1],
			Description: rec[2],
		})
	}

	catalog.SortByID(items)
	return items, nil
}

// Save writes the full collection to the catalog file: header row, then
// one row per item in id,name,description order. This is a full-replace
// write with no transactional fallback; a mid-write failure leaves the
// file in an undefined state and must be treated as fatal by the caller.
func Save(path string, items []item.Item) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating catalog file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, it := range items {
		rec := []string{strconv.Itoa(it.ID), it.Name, it.Description}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("writing item %d: %w", it.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing catalog file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing catalog file: %w", err)
	}
	return nil
}
