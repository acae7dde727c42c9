package catalog_cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wilsonAa123/seriprint-pro/models"
)

func TestCatalogCacheRoundTrip(t *testing.T) {
	Invalidate()

	_, ok := Get()
	assert.False(t, ok)

	Set([]models.Product{{Name: "Polera"}, {Name: "Taza"}})

	products, ok := Get()
	assert.True(t, ok)
	assert.Len(t, products, 2)
}

func TestCatalogCacheInvalidate(t *testing.T) {
	Set([]models.Product{{Name: "Polera"}})

	Invalidate()

	_, ok := Get()
	assert.False(t, ok)
}
