// File: badger.go
// Role: Named graph snapshots in an embedded badger database.
// Layout:
//   - key "graph/<name>" → zstd-compressed JSON snapshot (same format as Encode).
// Concurrency:
//   - Badger is safe for concurrent use; every method runs in its own transaction.

package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	"github.com/katalvlaran/versegen/core"
)

const graphPrefix = "graph/"

var (
	// ErrNotFound is returned when no graph is stored under a name.
	ErrNotFound = errors.New("store: graph not found")

	// ErrEmptyName is returned for an empty graph name.
	ErrEmptyName = errors.New("store: empty graph name")

	// ErrPathRequired is returned when a persistent store has no path.
	ErrPathRequired = errors.New("store: path is required for a persistent database")
)

// Config holds configuration for a badger-backed store.
type Config struct {
	// Path is the database directory. Ignored when InMemory is true.
	Path string

	// InMemory keeps everything in RAM. Useful for tests.
	InMemory bool

	// SyncWrites makes every commit durable before returning.
	SyncWrites bool

	// Logger receives badger's internal log lines. nil disables them.
	Logger *zap.Logger
}

// DefaultConfig returns a persistent configuration with synchronous writes.
func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true}
}

// InMemoryConfig returns a configuration for tests.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// badgerLogger adapts zap.Logger to badger's Logger interface.
type badgerLogger struct {
	sugar *zap.SugaredLogger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf(strings.TrimSpace(format), args...)
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.sugar.Warnf(strings.TrimSpace(format), args...)
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.sugar.Infof(strings.TrimSpace(format), args...)
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.sugar.Debugf(strings.TrimSpace(format), args...)
}

// Badger stores graphs by name.
type Badger struct {
	db     *badger.DB
	logger *zap.Logger
}

// Open opens (creating if needed) a badger store.
func Open(cfg Config) (*Badger, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, ErrPathRequired
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("store: create database directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)

	logger := cfg.Logger
	if logger != nil {
		opts = opts.WithLogger(&badgerLogger{sugar: logger.Named("badger").Sugar()})
	} else {
		logger = zap.NewNop()
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger database: %w", err)
	}
	return &Badger{db: db, logger: logger}, nil
}

// Close releases the database.
func (b *Badger) Close() error {
	return b.db.Close()
}

func graphKey(name string) []byte {
	return []byte(graphPrefix + name)
}

// Put stores a snapshot of g under name, replacing any previous one.
func (b *Badger) Put(name string, g *core.Graph) error {
	if name == "" {
		return ErrEmptyName
	}
	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		return err
	}
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(graphKey(name), buf.Bytes())
	})
	if err != nil {
		return fmt.Errorf("store: put %q: %w", name, err)
	}
	b.logger.Debug("graph stored", zap.String("name", name), zap.Int("bytes", buf.Len()))
	return nil
}

// Get loads the graph stored under name.
func (b *Badger) Get(name string) (*core.Graph, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	var data []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(graphKey(name))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("store: get %q: %w", name, err)
	}

	g, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("store: get %q: %w", name, err)
	}
	return g, nil
}

// Delete removes the graph stored under name.
func (b *Badger) Delete(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	err := b.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(graphKey(name)); err != nil {
			return err
		}
		return txn.Delete(graphKey(name))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("store: delete %q: %w", name, err)
	}
	return nil
}

// Names lists stored graph names in sorted order.
func (b *Badger) Names() ([]string, error) {
	var names []string
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(graphPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			names = append(names, strings.TrimPrefix(string(it.Item().Key()), graphPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	sort.Strings(names)
	return names, nil
}
