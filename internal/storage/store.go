package storage

import (
	"errors"
	"fmt"
)

const (
	HistoryDir = "history"
	ModelsDir  = "models"
)

var (
	// TODO : leaving this for now to be able to adjust for the tests
	DefaultDir = "file-storage"
)

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// K is the storage key for a candle series or model record.
type K struct {
	Pair  string `json:"pair"`
	Label string `json:"label"`
}

func (k K) Path() string {
	return fmt.Sprintf("%s_%s.json", k.Pair, k.Label)
}

// Registry is a keyed store for whole records.
type Registry interface {
	Put(key K, value interface{}) error
	Get(key K, value interface{}) error
}

// VoidRegistry is a dummy registry which ignores all writes and misses all reads.
type VoidRegistry struct {
}

func NewVoidRegistry() *VoidRegistry {
	return &VoidRegistry{}
}

func (v VoidRegistry) Put(key K, value interface{}) error {
	return nil
}

func (v VoidRegistry) Get(key K, value interface{}) error {
	return fmt.Errorf("not found '%+v': %w", key, NotFoundErr)
}
