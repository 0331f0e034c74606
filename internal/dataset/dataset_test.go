package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "civilizations": [
    {"name": "Roman Empire", "unit": "denarius", "year_range": "27 BC - 476 AD", "note": "silver coin", "modern_usd": 3.62},
    {"name": "Indus Valley", "unit": "weight of barley", "year_range": "3300-1300 BC", "note": "barter economy"}
  ]
}`

func TestParse(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		ds, err := Parse([]byte(sampleJSON))
		require.NoError(t, err)
		require.Len(t, ds.Civilizations, 2)
		assert.Equal(t, "Roman Empire", ds.Civilizations[0].Name)
		assert.Equal(t, 3.62, ds.Civilizations[0].ModernUSD)
		// A missing modern_usd decodes as 0 (unknown unit value).
		assert.Equal(t, 0.0, ds.Civilizations[1].ModernUSD)
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := Parse([]byte(`{"civilizations": [`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse dataset JSON")
	})

	t.Run("empty document", func(t *testing.T) {
		ds, err := Parse([]byte(`{}`))
		require.NoError(t, err)
		assert.Empty(t, ds.Civilizations)
	})
}

func TestFileLoader(t *testing.T) {
	t.Run("reads and parses the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "historical.json")
		require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o600))

		ds, err := NewFileLoader(path).Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, ds.Civilizations, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewFileLoader(filepath.Join(t.TempDir(), "nope.json")).Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read dataset file")
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

		_, err := NewFileLoader(path).Load(context.Background())
		require.Error(t, err)
	})
}

func TestEmbedded(t *testing.T) {
	ds, err := Embedded().Load(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, ds.Civilizations)

	// The bundled dataset keeps its curated order, Roman Empire first.
	assert.Equal(t, "Roman Empire", ds.Civilizations[0].Name)
	assert.Equal(t, "denarius", ds.Civilizations[0].Unit)
	assert.Greater(t, ds.Civilizations[0].ModernUSD, 0.0)
}
