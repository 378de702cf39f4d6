package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/renwick/curio/internal/catalog"
	"github.com/renwick/curio/internal/item"
)

func TestLoad_CreatesFileWhenMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, CatalogFile)

	items, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty collection, got %d items", len(items))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("catalog file not created: %v", err)
	}
	if got := strings.TrimSpace(string(data)); got != "id,name,description" {
		t.Errorf("new file content = %q, want header only", got)
	}
}

func TestLoad_SkipsMalformedRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, CatalogFile)

	content := `id,name,description
1,Pen,Blue ink pen
abc,Widget,A thing
,Gadget,No id
2,Book,Paperback novel
3,Lonely
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	items, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []item.Item{
		{ID: 1, Name: "Pen", Description: "Blue ink pen"},
		{ID: 2, Name: "Book", Description: "Paperback novel"},
	}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Load() = %v, want %v", items, want)
	}
}

func TestLoad_SkipsQuotingJunkRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, CatalogFile)

	content := `id,name,description
1,Pen,Blue ink pen
2,Bad "quote,junk
3,Book,Paperback novel
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	items, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v, want junk row skipped", err)
	}
	want := []item.Item{
		{ID: 1, Name: "Pen", Description: "Blue ink pen"},
		{ID: 3, Name: "Book", Description: "Paperback novel"},
	}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Load() = %v, want %v", items, want)
	}
}

func TestLoad_SortsByID(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, CatalogFile)

	content := `id,name,description
3,Chair,Wooden chair
1,Pen,Blue ink pen
2,Book,Paperback novel
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	items, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	for i, want := range []int{1, 2, 3} {
		if items[i].ID != want {
			t.Errorf("items[%d].ID = %d, want %d", i, items[i].ID, want)
		}
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, CatalogFile)

	items := []item.Item{
		{ID: 1, Name: "Pen", Description: "Blue ink pen"},
		{ID: 2, Name: "Book, used", Description: `A "paperback" novel`},
		{ID: 3, Name: "Note", Description: "line one\nline two"},
	}

	if err := Save(path, items); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(got, items) {
		t.Errorf("round-trip mismatch:\ngot  %v\nwant %v", got, items)
	}
}

func TestSave_FullReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, CatalogFile)

	if err := Save(path, []item.Item{{ID: 1, Name: "a", Description: "a"}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := Save(path, []item.Item{{ID: 2, Name: "b", Description: "b"}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("Save did not replace file contents: %v", got)
	}
}

func TestEmptyFileAddAddSaveReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, CatalogFile)

	items, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	items, _, err = catalog.Add(items, "Pen", "Blue ink pen")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	items, _, err = catalog.Add(items, "Book", "Paperback novel")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := Save(path, items); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []item.Item{
		{ID: 1, Name: "Pen", Description: "Blue ink pen"},
		{ID: 2, Name: "Book", Description: "Paperback novel"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("reloaded catalog = %v, want %v", got, want)
	}
}

func TestSave_ErrorOnUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing", CatalogFile)

	if err := Save(path, nil); err == nil {
		t.Error("Save() to nonexistent directory succeeded, want error")
	}
}
