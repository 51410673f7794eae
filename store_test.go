package investwise

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// rec is a minimal store record for exercising Store in isolation.
type rec struct {
	ID   string `json:"id"`
	Note string `json:"note"`
}

func (r rec) Equal(o rec) bool { return r.ID == o.ID }

func recCodec() lineCodec[rec] {
	return lineCodec[rec]{
		format:  "investwise/test",
		marshal: func(r rec) ([]byte, error) { return json.Marshal(r) },
		unmarshal: func(b []byte) (rec, error) {
			var r rec
			err := json.Unmarshal(b, &r)
			return r, err
		},
	}
}

func tempStore(t *testing.T) (*Store[rec], string) {
	t.Helper()
	file := filepath.Join(t.TempDir(), "recs.jsonl")
	return openStore(file, recCodec()), file
}

func TestStore_CreatesMissingFile(t *testing.T) {
	s, file := tempStore(t)
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
	b, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("backing file was not created: %v", err)
	}
	var h storeHeader
	if err := json.Unmarshal(b[:len(b)-1], &h); err != nil {
		t.Fatalf("first line is not a header: %v", err)
	}
	if h.Format != "investwise/test" || h.Version != storeVersion {
		t.Errorf("header = %+v", h)
	}
}

func TestStore_AddRejectsDuplicate(t *testing.T) {
	s, _ := tempStore(t)
	if !s.Add(rec{ID: "a", Note: "first"}) {
		t.Fatal("Add(a) = false, want true")
	}
	if s.Add(rec{ID: "a", Note: "other note, same id"}) {
		t.Error("Add(duplicate) = true, want false")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestStore_Delete(t *testing.T) {
	s, _ := tempStore(t)
	s.Add(rec{ID: "a"})
	s.Add(rec{ID: "b"})

	if s.Delete(rec{ID: "absent"}) {
		t.Error("Delete(absent) = true, want false")
	}
	if !s.Delete(rec{ID: "a"}) {
		t.Error("Delete(a) = false, want true")
	}
	items := s.Items()
	if len(items) != 1 || items[0].ID != "b" {
		t.Errorf("Items() = %v, want [b]", items)
	}
}

func TestStore_EditAbsentAppends(t *testing.T) {
	s, _ := tempStore(t)
	s.Add(rec{ID: "a"})

	// Edit always reports true; when old is absent it degrades to an append.
	if !s.Edit(rec{ID: "ghost"}, rec{ID: "b"}) {
		t.Error("Edit(absent, b) = false, want true")
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	if !s.Edit(rec{ID: "a"}, rec{ID: "a", Note: "edited"}) {
		t.Error("Edit(a, a') = false, want true")
	}
	items := s.Items()
	// Edit is delete then append, so the edited record moves to the end.
	if items[len(items)-1].Note != "edited" {
		t.Errorf("edited record not found at the end: %v", items)
	}
}

func TestStore_RoundTrip(t *testing.T) {
	s, file := tempStore(t)
	s.Add(rec{ID: "a", Note: "one"})
	s.Add(rec{ID: "b", Note: "two"})
	s.Delete(rec{ID: "a"})

	reopened := openStore(file, recCodec())
	items := reopened.Items()
	if len(items) != 1 {
		t.Fatalf("reopened Len() = %d, want 1", len(items))
	}
	if items[0] != (rec{ID: "b", Note: "two"}) {
		t.Errorf("reopened item = %+v", items[0])
	}
}

func TestStore_HeaderMismatchStartsEmpty(t *testing.T) {
	file := filepath.Join(t.TempDir(), "recs.jsonl")
	content := `{"format":"investwise/other","version":1}` + "\n" + `{"id":"a"}` + "\n"
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	s := openStore(file, recCodec())
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0 on header mismatch", s.Len())
	}
}

func TestStore_CorruptRecordStartsEmpty(t *testing.T) {
	file := filepath.Join(t.TempDir(), "recs.jsonl")
	content := `{"format":"investwise/test","version":1}` + "\n" +
		`{"id":"a"}` + "\n" +
		`{"id": broken` + "\n"
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	s := openStore(file, recCodec())
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0 on corrupt record", s.Len())
	}
}

func TestStore_Clear(t *testing.T) {
	s, file := tempStore(t)
	s.Add(rec{ID: "a"})
	s.Add(rec{ID: "b"})
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if openStore(file, recCodec()).Len() != 0 {
		t.Error("Clear was not persisted")
	}
}
