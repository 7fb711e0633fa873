// Package session implementa el puerto SessionStore sobre un archivo JSON
// local. Es el equivalente del localStorage del portal original: un registro
// pequeño por clave que sobrevive reinicios del proceso.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore guarda los registros como un objeto JSON {clave: valor crudo}.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore construye el store sobre la ruta dada.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: leer %s: %w", s.path, err)
	}
	records := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &records); err != nil {
		// Archivo corrupto: se descarta completo y se continúa vacío.
		return map[string]json.RawMessage{}, nil
	}
	return records, nil
}

func (s *FileStore) save(records map[string]json.RawMessage) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("session: crear directorio: %w", err)
		}
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Get devuelve el valor crudo de la clave y si existe.
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, err := s.load()
	if err != nil {
		return nil, false, err
	}
	raw, ok := records[key]
	if !ok {
		return nil, false, nil
	}
	return raw, true, nil
}

// Set escribe el valor de la clave.
func (s *FileStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, err := s.load()
	if err != nil {
		return err
	}
	records[key] = json.RawMessage(value)
	return s.save(records)
}

// Delete elimina la clave; borrar una clave inexistente no es error.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := records[key]; !ok {
		return nil
	}
	delete(records, key)
	return s.save(records)
}
