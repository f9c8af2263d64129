package session_test

import (
	"testing"

	"gallery-app/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {

	t.Run("LoadAbsentReturnsNil", func(t *testing.T) {
		store, err := session.NewFileStore(t.TempDir())
		require.NoError(t, err)

		data, err := store.Load("cart")
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("SaveThenLoad", func(t *testing.T) {
		store, err := session.NewFileStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Save("cart", []byte(`[{"quantity":1}]`)))

		data, err := store.Load("cart")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[{"quantity":1}]`), data)
	})

	t.Run("RecordsAreIndependent", func(t *testing.T) {
		store, err := session.NewFileStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Save("cart", []byte(`[]`)))
		require.NoError(t, store.Save("favorites", []byte(`["x"]`)))

		require.NoError(t, store.Clear("cart"))

		data, err := store.Load("cart")
		require.NoError(t, err)
		assert.Nil(t, data)

		data, err = store.Load("favorites")
		require.NoError(t, err)
		assert.Equal(t, []byte(`["x"]`), data)
	})

	t.Run("ClearAbsentIsNoop", func(t *testing.T) {
		store, err := session.NewFileStore(t.TempDir())
		require.NoError(t, err)

		assert.NoError(t, store.Clear("cart"))
	})
}
