// Package localstore implementa los repositorios del catálogo sobre un
// almacén local de blobs JSON con nombre: un archivo <clave>.json por blob
// bajo un directorio de datos. La copia en memoria es la autoritativa; cada
// mutación se espeja al disco y una escritura fallida se registra y descarta.
package localstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/vitrina-api/internal/domain"
)

// Claves de blob persistidas.
const (
	blobCategories = "categories"
	blobProducts   = "products"
	blobGallery    = "gallery"
)

// Store almacén clave-valor de blobs JSON sobre disco local.
type Store struct {
	dir string
}

// NewStore crea el almacén y asegura el directorio de datos.
func NewStore(dir string) (*Store, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &Store{dir: abs}, nil
}

// Get lee el blob. El segundo valor es false si la clave no existe.
func (s *Store) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: leer blob %q: %v", domain.ErrPersistence, key, err)
	}
	return data, true, nil
}

// Set escribe el blob de forma atómica: archivo temporal en el mismo
// directorio y rename, así una caída a mitad de escritura no deja un blob
// truncado.
func (s *Store) Set(key string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+"-*")
	if err != nil {
		return fmt.Errorf("%w: crear temporal para %q: %v", domain.ErrPersistence, key, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: escribir blob %q: %v", domain.ErrPersistence, key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: cerrar temporal de %q: %v", domain.ErrPersistence, key, err)
	}
	if err := os.Rename(tmpPath, s.path(key)); err != nil {
		return fmt.Errorf("%w: publicar blob %q: %v", domain.ErrPersistence, key, err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
