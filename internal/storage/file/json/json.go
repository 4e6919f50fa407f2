package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sardelis/coin-ml/internal/storage"
)

// Save saves the given json struct into the given path with the provided filename.
func Save(filePath string, fileName string, value interface{}) error {
	info, err := os.Stat(filePath)
	if err != nil {
		err := os.MkdirAll(filePath, os.ModePerm)
		if err != nil {
			return fmt.Errorf("could not make dir: %s: %w", filePath, err)
		}
	} else if !info.IsDir() {
		return fmt.Errorf("path given is not a dir: %s", filePath)
	}

	p := filepath.Join(filePath, fileName)
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not marshal value for '%s': %w", p, err)
	}

	if err := os.WriteFile(p, b, 0644); err != nil {
		return fmt.Errorf("could not write file '%s': %w", p, err)
	}
	return nil
}

// Load loads the payload from the given filePath and fileName.
func Load(filePath string, fileName string, value interface{}) error {
	p := filepath.Join(filePath, fileName)

	data, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("could not read file '%s' %s: %w", p, err.Error(), storage.NotFoundErr)
	}

	err = json.Unmarshal(data, value)
	if err != nil {
		return fmt.Errorf("could not unmarshal '%s': %s: %w", p, err.Error(), storage.CouldNotLoadErr)
	}
	return nil
}

// Registry is a file backed registry keeping one json file per key.
type Registry struct {
	dir string
}

// NewRegistry creates a registry rooted at the given directory.
func NewRegistry(dir string) *Registry {
	return &Registry{dir: dir}
}

func (r *Registry) Put(key storage.K, value interface{}) error {
	return Save(r.dir, key.Path(), value)
}

func (r *Registry) Get(key storage.K, value interface{}) error {
	return Load(r.dir, key.Path(), value)
}
