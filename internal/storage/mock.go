package storage

import (
	"encoding/json"
	"fmt"
)

// MockRegistry keeps records in memory, round-tripping them through json
// so that reads behave like the file-backed implementation.
type MockRegistry struct {
	Elements map[K][]byte
}

func NewMockRegistry() *MockRegistry {
	return &MockRegistry{Elements: make(map[K][]byte)}
}

func (m *MockRegistry) Put(key K, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not marshal value: %w", err)
	}
	m.Elements[key] = b
	return nil
}

func (m *MockRegistry) Get(key K, value interface{}) error {
	b, ok := m.Elements[key]
	if !ok {
		return fmt.Errorf("no record for '%+v': %w", key, NotFoundErr)
	}
	if err := json.Unmarshal(b, value); err != nil {
		return fmt.Errorf("could not unmarshal value: %w", err)
	}
	return nil
}
