// Package uploads implementa el colaborador de almacenamiento de imágenes:
// recibe el archivo subido, lo valida y devuelve la URL pública bajo la que
// queda servido desde disco local.
package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/vitrina-api/internal/domain"
)

// Extensiones de imagen aceptadas (JPG, PNG o WebP).
var allowedExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

// Local guarda imágenes en un directorio local con nombre aleatorio.
type Local struct {
	baseDir  string
	baseURL  string
	maxBytes int64
}

// NewLocal crea el almacenamiento y asegura el directorio base.
func NewLocal(baseDir, baseURL string, maxBytes int64) (*Local, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de subidas: %w", err)
	}
	return &Local{baseDir: abs, baseURL: strings.TrimRight(baseURL, "/"), maxBytes: maxBytes}, nil
}

// maxBytesWriter corta la escritura al superar n bytes.
type maxBytesWriter struct {
	w io.Writer
	n int64
}

func (m *maxBytesWriter) Write(p []byte) (int, error) {
	if m.n <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > m.n {
		p = p[:m.n]
	}
	n, err := m.w.Write(p)
	m.n -= int64(n)
	if err != nil {
		return n, err
	}
	if m.n <= 0 {
		return n, io.EOF
	}
	return n, nil
}

// Save valida la extensión, guarda el contenido con nombre aleatorio (archivo
// temporal y rename) y devuelve la URL pública. Un archivo que supera el
// límite configurado falla con ErrInvalidInput.
func (l *Local) Save(filename string, contents io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExts[ext]; !ok {
		return "", fmt.Errorf("%w: tipo de archivo inválido, use JPG, PNG o WebP", domain.ErrInvalidInput)
	}

	tmp, err := os.CreateTemp(l.baseDir, "upload-*")
	if err != nil {
		return "", fmt.Errorf("crear temporal de subida: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	// Se permite un byte extra para detectar archivos que exceden el límite.
	writer := &maxBytesWriter{w: tmp, n: l.maxBytes + 1}
	written, err := io.Copy(writer, contents)
	if err != nil && err != io.EOF {
		tmp.Close()
		return "", fmt.Errorf("escribir subida: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("cerrar temporal de subida: %w", err)
	}
	if written > l.maxBytes {
		return "", fmt.Errorf("%w: el archivo supera el tamaño máximo de %d bytes", domain.ErrInvalidInput, l.maxBytes)
	}

	name := uuid.New().String() + ext
	if err := os.Rename(tmpPath, filepath.Join(l.baseDir, name)); err != nil {
		return "", fmt.Errorf("publicar subida: %w", err)
	}
	return l.baseURL + "/" + name, nil
}

// Dir devuelve el directorio base, para montarlo como estático.
func (l *Local) Dir() string {
	return l.baseDir
}
