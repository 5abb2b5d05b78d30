// Package customdata provides implementations of the script CustomData
// contract: an in-process store for tests and single-node hosts, and a
// Redis-backed store for shared deployments.
package customdata

import (
	"context"
	"sort"
	"sync"

	v1 "github.com/Infigo-Official/types-for-megascript/v1"
)

// Memory is an in-process v1.CustomData implementation. Safe for concurrent
// use.
type Memory struct {
	mu     sync.RWMutex
	scopes map[string]map[string]string
}

var _ v1.CustomData = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{scopes: make(map[string]map[string]string)}
}

// Get implements v1.CustomData
func (m *Memory) Get(_ context.Context, scope, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.scopes[scope][key]
	return value, ok, nil
}

// Set implements v1.CustomData
func (m *Memory) Set(_ context.Context, scope, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.scopes[scope] == nil {
		m.scopes[scope] = make(map[string]string)
	}
	m.scopes[scope][key] = value
	return nil
}

// Delete implements v1.CustomData
func (m *Memory) Delete(_ context.Context, scope, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.scopes[scope], key)
	return nil
}

// Keys implements v1.CustomData. Keys are returned sorted.
func (m *Memory) Keys(_ context.Context, scope string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.scopes[scope]))
	for key := range m.scopes[scope] {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}
