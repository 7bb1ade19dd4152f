// Package store owns the journal data directory: the diskv-backed files,
// the in-memory index rebuilt from them, and the lifecycle operations that
// mutate them.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/jrnl/pkg/dates"
	"tableflip.dev/jrnl/pkg/entry"
)

// ErrNotFound reports a lookup miss, as distinct from an I/O failure.
var ErrNotFound = errors.New("store: entry not found")

// Persistence is the storage contract for journal entries.
type Persistence interface {
	// Snapshot returns the current index. The index is immutable; Refresh
	// swaps in a replacement wholesale so readers never see a partial scan.
	Snapshot() *Index
	// Refresh rebuilds the index from the data directory and atomically
	// replaces it. Safe to call from any goroutine at any time.
	Refresh() *Index
	// Create writes a new entry for the date with the default template,
	// then refreshes.
	Create(date time.Time) error
	// CreateToday writes today's entry, preferring the configured template
	// file when it is readable, then refreshes.
	CreateToday(now time.Time) error
	// Delete removes the entry file for key. A missing entry reports
	// ErrNotFound; a failed removal reports the underlying error.
	Delete(key string) error
	// AppendClock appends the " - HH:MM: " marker to the entry for key.
	AppendClock(key string, now time.Time) error
	// Watch streams change notifications for the data directory until ctx
	// is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)

	Config() *Config
}

// Index is one scan's worth of entries, ordered ascending by date.
type Index struct {
	entries []*entry.Entry
	byKey   map[string]*entry.Entry
}

// Entries returns the indexed entries in date order. Callers must treat the
// slice and its entries as read-only.
func (ix *Index) Entries() []*entry.Entry {
	return ix.entries
}

// Get looks up an entry by its key.
func (ix *Index) Get(key string) (*entry.Entry, bool) {
	e, ok := ix.byKey[key]
	return e, ok
}

// GetDate looks up an entry by calendar date. The entry's key can differ
// from the ISO form when the file was named with a tolerant layout.
func (ix *Index) GetDate(date time.Time) (*entry.Entry, bool) {
	date = dates.Day(date)
	for _, e := range ix.entries {
		if e.Date.Equal(date) {
			return e, true
		}
	}
	return nil, false
}

// Len reports the number of indexed entries.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Load builds a Persistence over the configured data directory and performs
// the initial scan. A nil cfg loads the default config file.
func Load(cfg *Config) (Persistence, error) {
	if cfg == nil {
		var err error
		if cfg, err = LoadConfig(""); err != nil {
			return nil, err
		}
	}
	p := &persistence{
		cfg: cfg,
		// Caching is off so external edits are always re-read on scan.
		d: diskv.New(diskv.Options{
			BasePath:          cfg.DataDir,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      0,
		}),
	}
	p.Refresh()
	return p, nil
}

type persistence struct {
	cfg *Config
	d   *diskv.Diskv

	mu    sync.RWMutex
	index *Index
}

func (p *persistence) Config() *Config {
	return p.cfg
}

func (p *persistence) Snapshot() *Index {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.index
}

func (p *persistence) Refresh() *Index {
	ix := p.scan()
	p.mu.Lock()
	p.index = ix
	p.mu.Unlock()
	return ix
}

// scan walks the data directory and builds a fresh index. Files whose names
// do not classify as dates are non-journal files and are skipped silently; a
// file that fails to read is skipped with a warning so one bad file never
// aborts the scan.
func (p *persistence) scan() *Index {
	ix := &Index{byKey: make(map[string]*entry.Entry)}
	for key := range p.d.Keys(nil) {
		// Nested files surface as slash-joined keys. The journal is flat,
		// so anything below the data directory itself is not an entry, even
		// when the path happens to look like a date.
		if strings.ContainsRune(key, '/') {
			continue
		}
		name := key
		if ext := p.cfg.FileExt; ext != "" {
			suffix := "." + ext
			if !strings.HasSuffix(name, suffix) {
				continue
			}
			name = strings.TrimSuffix(name, suffix)
		}
		date, ok := dates.Classify(name)
		if !ok {
			continue
		}
		raw, err := p.d.Read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failure reading %s - SKIPPING: %v\n", filepath.Join(p.cfg.DataDir, key), err)
			continue
		}
		e := entry.New(name, date, filepath.Join(p.cfg.DataDir, key), string(raw))
		ix.byKey[e.Key] = e
		ix.entries = append(ix.entries, e)
	}
	entry.Sort(ix.entries)
	return ix
}

// DefaultTemplate is the body written into newly created entries.
func DefaultTemplate(date time.Time) string {
	return date.Format("Journal for Monday, 2006-01-02") + "\n\nToday:\n"
}

func (p *persistence) Create(date time.Time) error {
	key := p.cfg.EntryFile(date)
	if err := p.d.Write(key, []byte(DefaultTemplate(date))); err != nil {
		return fmt.Errorf("store: create %s: %w", key, err)
	}
	p.Refresh()
	return nil
}

func (p *persistence) CreateToday(now time.Time) error {
	body := DefaultTemplate(now)
	if path := p.cfg.TodayTemplate; path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			fmt.Fprintln(os.Stderr, "unable to read template file, using default")
		} else {
			body = string(raw)
		}
	}
	key := p.cfg.EntryFile(now)
	if err := p.d.Write(key, []byte(body)); err != nil {
		return fmt.Errorf("store: create %s: %w", key, err)
	}
	p.Refresh()
	return nil
}

func (p *persistence) Delete(key string) error {
	e, ok := p.Snapshot().Get(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err := p.d.Erase(p.storeKey(e)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return fmt.Errorf("store: delete %s: %w", key, err)
	}
	p.Refresh()
	return nil
}

func (p *persistence) AppendClock(key string, now time.Time) error {
	e, ok := p.Snapshot().Get(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	f, err := os.OpenFile(e.Path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("store: append to %s: %w", key, err)
	}
	defer f.Close()
	if _, err := f.WriteString(now.Format(" - 15:04: ")); err != nil {
		return fmt.Errorf("store: append to %s: %w", key, err)
	}
	return nil
}

// storeKey maps an indexed entry back to its diskv key (extension intact).
// Built from the key, not the date, so a tolerantly-named file (e.g.
// "2024-3-5") still resolves to its actual filename.
func (p *persistence) storeKey(e *entry.Entry) string {
	if p.cfg.FileExt != "" {
		return e.Key + "." + p.cfg.FileExt
	}
	return e.Key
}

// The data directory is flat: a key is simply the filename. diskv still
// walks nested directories and yields their files as slash-joined keys;
// scan drops those before classification.
func keyToPathTransform(key string) *diskv.PathKey {
	parts := strings.Split(key, "/")
	return &diskv.PathKey{Path: parts[:len(parts)-1], FileName: parts[len(parts)-1]}
}

func pathToKeyTransform(pk *diskv.PathKey) string {
	if len(pk.Path) == 0 {
		return pk.FileName
	}
	return strings.Join(pk.Path, "/") + "/" + pk.FileName
}
