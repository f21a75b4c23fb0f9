package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atlas.healthmap.org/internal/geo"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("../../testdata", "countries.geo.json"))
	require.NoError(t, err)
	fc, err := geo.ParseFeatureCollection(data)
	require.NoError(t, err)

	known := map[string]bool{"NOR": true, "IND": true, "BRA": true}
	nameToKey := map[string]string{
		"norway": "NOR",
		"india":  "IND",
		"brazil": "BRA",
	}
	mismatches := map[string]string{
		"India Rep.":                    "IND",
		"Norway Kingdom":                "NOR",
		"Federative Republic of Brazil": "BRA",
	}

	return NewResolver(known, nameToKey, mismatches, geo.NewIndex(fc))
}

func TestByNameExactLabel(t *testing.T) {
	r := newTestResolver(t)

	key, ok := r.ByName("Norway")
	require.True(t, ok)
	assert.Equal(t, "NOR", key)

	// Labels match case-insensitively with surrounding whitespace ignored.
	key, ok = r.ByName("  norway ")
	require.True(t, ok)
	assert.Equal(t, "NOR", key)
}

func TestByNameAcceptsAKnownKey(t *testing.T) {
	r := newTestResolver(t)

	key, ok := r.ByName("ind")
	require.True(t, ok)
	assert.Equal(t, "IND", key)
}

func TestByNameSubstringFallback(t *testing.T) {
	r := newTestResolver(t)

	key, ok := r.ByName("Kingdom of Norway")
	require.True(t, ok)
	assert.Equal(t, "NOR", key)
}

func TestByNameMissIsSilent(t *testing.T) {
	r := newTestResolver(t)

	_, ok := r.ByName("Atlantis")
	assert.False(t, ok)
	_, ok = r.ByName("")
	assert.False(t, ok)
}

func TestByFeatureMismatchTableWinsOverRawID(t *testing.T) {
	r := newTestResolver(t)

	// The feature id is itself a valid key, but the display name appears in
	// the mismatch table for a different country, and that mapping wins.
	key, ok := r.ByFeature("NOR", "India Rep.")
	require.True(t, ok)
	assert.Equal(t, "IND", key)
}

func TestByFeatureFallsBackToIDThenName(t *testing.T) {
	r := newTestResolver(t)

	key, ok := r.ByFeature("bra", "Unmapped Name")
	require.True(t, ok)
	assert.Equal(t, "BRA", key)

	key, ok = r.ByFeature("-99", "India")
	require.True(t, ok)
	assert.Equal(t, "IND", key)

	_, ok = r.ByFeature("-99", "Atlantis")
	assert.False(t, ok)
}

func TestByCoordinate(t *testing.T) {
	r := newTestResolver(t)

	key, ok := r.ByCoordinate(61, 9)
	require.True(t, ok)
	assert.Equal(t, "NOR", key)

	_, ok = r.ByCoordinate(0, -140)
	assert.False(t, ok)

	_, ok = r.ByCoordinate(95, 0)
	assert.False(t, ok)
}

func TestByCoordinateMemoizesPerCell(t *testing.T) {
	r := newTestResolver(t)

	key1, ok1 := r.ByCoordinate(61, 9)
	key2, ok2 := r.ByCoordinate(61.0001, 9.0001)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, key1, key2)

	r.mu.Lock()
	memoSize := len(r.memo)
	r.mu.Unlock()
	assert.Equal(t, 1, memoSize)
}
