package store

import (
	"os"
	"path/filepath"
	"testing"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestWriteAndReadDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.json")
	in := doc{Name: "kart", Count: 3}
	if err := WriteDocument(path, in); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out doc
	if err := ReadDocument(path, &out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestWriteDocumentReplacesExisting(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	if err := WriteDocument(path, doc{Name: "a"}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WriteDocument(path, doc{Name: "b"}); err != nil {
		t.Fatalf("second write: %v", err)
	}

	var out doc
	if err := ReadDocument(path, &out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out.Name != "b" {
		t.Fatalf("expected replaced document, got %+v", out)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected a single file in %s, found %d", dir, len(entries))
	}
}

func TestReadDocumentBadJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out doc
	if err := ReadDocument(path, &out); err == nil {
		t.Fatalf("expected decode error")
	}
}
