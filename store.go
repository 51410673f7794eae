package investwise

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/Welly0007/InvestWise/logger"
)

// Record is the constraint for store items: two records are the same entry
// iff Equal reports true, never by reference.
type Record[T any] interface{ Equal(T) bool }

// storeHeader is the first line of every store file. A missing or
// mismatched header makes the whole file unreadable, which degrades to an
// empty store instead of silently decoding records of another shape.
type storeHeader struct {
	Format  string `json:"format"`
	Version int    `json:"version"`
}

const storeVersion = 1

// lineCodec tells a Store how to persist one item per JSONL line.
type lineCodec[T any] struct {
	format    string
	marshal   func(T) ([]byte, error)
	unmarshal func([]byte) (T, error)
}

// Store is an ordered keyed list persisted as a single JSONL file. The file
// is read wholesale at construction and rewritten wholesale after every
// successful mutation; the in-memory sequence is the source of truth in
// between. Not safe for concurrent use, and two processes sharing a file
// are last-writer-wins.
type Store[T Record[T]] struct {
	fileName string
	codec    lineCodec[T]
	items    []T
}

// openStore opens the backing file, creating an empty one (header only) if
// it does not exist yet. Any read or decode failure is logged and the store
// starts empty.
func openStore[T Record[T]](fileName string, codec lineCodec[T]) *Store[T] {
	s := &Store[T]{fileName: fileName, codec: codec}
	if _, err := os.Stat(fileName); errors.Is(err, fs.ErrNotExist) {
		logger.Get().Infow("store file not found, creating a new one", "file", fileName)
		s.save()
		return s
	}
	s.items = s.load()
	return s
}

// load returns best-effort contents: the empty sequence on any failure.
func (s *Store[T]) load() []T {
	f, err := os.Open(s.fileName)
	if err != nil {
		logger.Get().Warnw("could not open store file", "file", s.fileName, "error", err)
		return nil
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	sawHeader := false
	var items []T
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if !sawHeader {
			var h storeHeader
			if err := json.Unmarshal(line, &h); err != nil || h.Format != s.codec.format || h.Version != storeVersion {
				logger.Get().Warnw("store header mismatch, starting empty",
					"file", s.fileName, "want", s.codec.format, "got", string(line))
				return nil
			}
			sawHeader = true
			continue
		}
		item, err := s.codec.unmarshal(line)
		if err != nil {
			logger.Get().Warnw("could not decode store record, starting empty",
				"file", s.fileName, "line", string(line), "error", err)
			return nil
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		logger.Get().Warnw("could not read store file, starting empty", "file", s.fileName, "error", err)
		return nil
	}
	return items
}

// Items returns a copy of the in-memory sequence in insertion order.
func (s *Store[T]) Items() []T { return slices.Clone(s.items) }

// Len returns the number of items held.
func (s *Store[T]) Len() int { return len(s.items) }

func (s *Store[T]) indexOf(item T) int {
	for i, it := range s.items {
		if it.Equal(item) {
			return i
		}
	}
	return -1
}

// Add appends item and persists. It returns false, without touching the
// sequence, when an equality match is already present.
func (s *Store[T]) Add(item T) bool {
	if s.indexOf(item) >= 0 {
		return false
	}
	s.items = append(s.items, item)
	s.save()
	return true
}

// Delete removes exactly one equality match and persists. It returns false,
// leaving the sequence unchanged, when no match is found.
func (s *Store[T]) Delete(item T) bool {
	i := s.indexOf(item)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	s.save()
	return true
}

// Edit is delete(old) unconditionally followed by add(new), and it reports
// true even when old was never present, in which case the edit degrades to
// an append. Callers depend on this exact behavior.
func (s *Store[T]) Edit(old, new T) bool {
	s.Delete(old)
	s.Add(new)
	return true
}

// Clear drops every item and persists the empty sequence.
func (s *Store[T]) Clear() {
	s.items = nil
	s.save()
}

// save rewrites the whole backing file. Failure is logged, not propagated,
// and leaves the in-memory state ahead of disk.
func (s *Store[T]) save() {
	if dir := filepath.Dir(s.fileName); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Get().Warnw("could not create store directory", "file", s.fileName, "error", err)
			return
		}
	}
	f, err := os.Create(s.fileName)
	if err != nil {
		logger.Get().Warnw("could not open store file for writing", "file", s.fileName, "error", err)
		return
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	header, err := json.Marshal(storeHeader{Format: s.codec.format, Version: storeVersion})
	if err != nil {
		logger.Get().Warnw("could not encode store header", "file", s.fileName, "error", err)
		return
	}
	w.Write(header)
	w.WriteByte('\n')
	for _, item := range s.items {
		b, err := s.codec.marshal(item)
		if err != nil {
			logger.Get().Warnw("could not encode store record", "file", s.fileName, "error", err)
			return
		}
		w.Write(b)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		logger.Get().Warnw("could not write store file", "file", s.fileName, "error", err)
	}
}
