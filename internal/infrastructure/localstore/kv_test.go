package localstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vitrina-api/internal/infrastructure/localstore"
)

func TestStore_GetClaveInexistente(t *testing.T) {
	store, err := localstore.NewStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := store.Get("nada")
	require.NoError(t, err)
	assert.False(t, ok, "clave ausente no es un error")
}

func TestStore_SetGetRoundTrip(t *testing.T) {
	store, err := localstore.NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("demo", []byte(`{"x":1}`)))

	data, ok, err := store.Get("demo")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"x":1}`, string(data))
}

func TestStore_SetSobrescribe(t *testing.T) {
	store, err := localstore.NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("demo", []byte("uno")))
	require.NoError(t, store.Set("demo", []byte("dos")))

	data, _, err := store.Get("demo")
	require.NoError(t, err)
	assert.Equal(t, "dos", string(data))
}

// La escritura es temporal+rename: al terminar no quedan archivos temporales.
func TestStore_SinTemporalesResiduales(t *testing.T) {
	dir := t.TempDir()
	store, err := localstore.NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("demo", []byte("contenido")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "demo.json", entries[0].Name())
	_, err = os.Stat(filepath.Join(dir, "demo.json"))
	assert.NoError(t, err)
}
