// Package localstore implementa el almacenamiento local duradero del cliente:
// un espacio de claves con namespace fijo, serializado como JSON en disco
// (el análogo del localStorage del navegador). Claves en uso:
// bizflow_user (sesión), bizflow_customers / bizflow_transactions /
// bizflow_settings (solo modo mock).
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/bizflow-client/internal/application/ports"
)

// Verificar en tiempo de compilación que Store implementa el puerto.
var _ ports.LocalStorage = (*Store)(nil)

// Store persiste valores JSON bajo claves con namespace en un directorio.
// Seguro para uso concurrente dentro del proceso.
type Store struct {
	mu  sync.Mutex
	dir string
}

// New crea el Store asegurando que el directorio exista.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("localstore: directorio vacío")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("localstore: crear directorio: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Get deserializa el valor de la clave en v. Devuelve (false, nil) si la
// clave no existe; (false, error) si existe pero no es JSON válido.
func (s *Store) Get(key string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("localstore: leer %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("localstore: %s corrupto: %w", key, err)
	}
	return true, nil
}

// Set serializa v y lo escribe bajo la clave. Escritura atómica
// (archivo temporal + rename) para que nunca quede un registro a medias.
func (s *Store) Set(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("localstore: serializar %s: %w", key, err)
	}
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("localstore: escribir %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("localstore: publicar %s: %w", key, err)
	}
	return nil
}

// Delete elimina la clave. Borrar una clave inexistente no es error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("localstore: eliminar %s: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
