package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"warung/pkg/normalize"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "cam sanh", normalize.Fold("  Cam Sành "))
	assert.Equal(t, "tao my", normalize.Fold("Táo Mỹ"))
	assert.Equal(t, "nho den uc", normalize.Fold("Nho Đen Úc"))
	assert.Equal(t, "p_cam", normalize.Fold("P_CAM"))
	assert.Equal(t, "", normalize.Fold("   "))
}

func TestEqual(t *testing.T) {
	assert.True(t, normalize.Equal("Cam Sành", "cam sanh"))
	assert.True(t, normalize.Equal(" p_tao ", "P_TAO"))
	assert.False(t, normalize.Equal("Cam Sành", "Táo Mỹ"))
}

func TestResolve(t *testing.T) {
	catalog := []normalize.Candidate{
		{ID: "p_cam", Name: "Cam Sành"},
		{ID: "p_tao", Name: "Táo Mỹ"},
	}

	// Explicit id wins over name.
	res := normalize.Resolve(catalog, "P_TAO", "Cam Sành")
	assert.Equal(t, normalize.ByID, res.Method)
	assert.Equal(t, "p_tao", res.ProductID)

	// Falls back to a diacritic-insensitive name match.
	res = normalize.Resolve(catalog, "", "cam sanh")
	assert.Equal(t, normalize.ByName, res.Method)
	assert.Equal(t, "p_cam", res.ProductID)

	// Unknown references carry the raw name through, explicitly unresolved.
	res = normalize.Resolve(catalog, "", "Sầu Riêng")
	assert.Equal(t, normalize.Unresolved, res.Method)
	assert.Equal(t, "Sầu Riêng", res.ProductID)

	// Unknown id with no name keeps the id.
	res = normalize.Resolve(catalog, "p_xoai", "")
	assert.Equal(t, normalize.Unresolved, res.Method)
	assert.Equal(t, "p_xoai", res.ProductID)
}
