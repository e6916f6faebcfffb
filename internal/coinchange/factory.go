package coinchange

import (
	"slices"
	"strings"
	"sync"

	apperrors "github.com/agbru/coincalc/internal/errors"
)

// Registry keys for the built-in counters.
const (
	KeyGreedy = "greedy"
	KeyNaive  = "naive"
	KeyMemo   = "memo"
	KeyDP     = "dp"
)

// CounterFactory creates and looks up counters by key.
type CounterFactory interface {
	// Register adds a counter under key, replacing any previous entry.
	Register(key string, c Counter)
	// Get returns the counter registered under key.
	Get(key string) (Counter, error)
	// List returns the registered keys in sorted order.
	List() []string
	// GetAll returns a copy of the registry.
	GetAll() map[string]Counter
}

// DefaultFactory is a thread-safe in-memory CounterFactory.
type DefaultFactory struct {
	mu       sync.RWMutex
	counters map[string]Counter
}

// NewDefaultFactory returns a factory with the four built-in counters.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{counters: make(map[string]Counter)}
	f.Register(KeyGreedy, NewCounter(Greedy{}))
	f.Register(KeyNaive, NewCounter(NaiveRecursive{}))
	f.Register(KeyMemo, NewCounter(MemoizedRecursive{}))
	f.Register(KeyDP, NewCounter(BottomUp{}))
	return f
}

// Register implements CounterFactory.
func (f *DefaultFactory) Register(key string, c Counter) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counters[key] = c
}

// Get implements CounterFactory.
func (f *DefaultFactory) Get(key string) (Counter, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	c, ok := f.counters[key]
	if !ok {
		return nil, apperrors.NewConfigError("unknown algorithm %q (available: %s)", key, strings.Join(f.keysLocked(), ", "))
	}
	return c, nil
}

// List implements CounterFactory.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.keysLocked()
}

// GetAll implements CounterFactory.
func (f *DefaultFactory) GetAll() map[string]Counter {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make(map[string]Counter, len(f.counters))
	for k, c := range f.counters {
		out[k] = c
	}
	return out
}

func (f *DefaultFactory) keysLocked() []string {
	keys := make([]string, 0, len(f.counters))
	for k := range f.counters {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

var globalFactory = NewDefaultFactory()

// GlobalFactory returns the process-wide factory with the built-in counters.
func GlobalFactory() CounterFactory { return globalFactory }
