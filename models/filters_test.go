package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func catalogProducts() ([]Product, uuid.UUID, uuid.UUID) {
	textiles := uuid.Must(uuid.NewV7())
	corporativo := uuid.Must(uuid.NewV7())
	return []Product{
		{Name: "Polera Algodón", Description: strPtr("Polera 100% algodón para serigrafía"), CategoryID: &textiles, StockStatus: StockStatusInStock},
		{Name: "Taza Cerámica", Description: strPtr("Taza blanca sublimable"), CategoryID: &corporativo, StockStatus: StockStatusOnOrder},
		{Name: "Gorro Bordado", Description: nil, CategoryID: &textiles, StockStatus: StockStatusOutStock},
	}, textiles, corporativo
}

func TestCatalogFilterEmptyMatchesAll(t *testing.T) {
	products, _, _ := catalogProducts()

	result := CatalogFilter{}.Apply(products)

	assert.Len(t, result, 3)
}

func TestCatalogFilterSearchIsCaseInsensitive(t *testing.T) {
	products, _, _ := catalogProducts()

	result := CatalogFilter{Search: "polera"}.Apply(products)

	assert.Len(t, result, 1)
	assert.Equal(t, "Polera Algodón", result[0].Name)
}

func TestCatalogFilterSearchMatchesDescription(t *testing.T) {
	products, _, _ := catalogProducts()

	result := CatalogFilter{Search: "sublimable"}.Apply(products)

	assert.Len(t, result, 1)
	assert.Equal(t, "Taza Cerámica", result[0].Name)
}

func TestCatalogFilterSearchNilDescription(t *testing.T) {
	products, _, _ := catalogProducts()

	// Product without description must not panic and must not match
	result := CatalogFilter{Search: "bordado"}.Apply(products)

	assert.Len(t, result, 1)
	assert.Equal(t, "Gorro Bordado", result[0].Name)
}

func TestCatalogFilterByCategory(t *testing.T) {
	products, textiles, _ := catalogProducts()

	result := CatalogFilter{CategoryID: textiles.String()}.Apply(products)

	assert.Len(t, result, 2)
}

func TestCatalogFilterAllSentinel(t *testing.T) {
	products, _, _ := catalogProducts()

	result := CatalogFilter{CategoryID: FilterAll, StockStatus: FilterAll}.Apply(products)

	assert.Len(t, result, 3)
}

func TestCatalogFilterByStockStatus(t *testing.T) {
	products, _, _ := catalogProducts()

	result := CatalogFilter{StockStatus: StockStatusOutStock}.Apply(products)

	assert.Len(t, result, 1)
	assert.Equal(t, "Gorro Bordado", result[0].Name)
}

func TestCatalogFilterCombined(t *testing.T) {
	products, textiles, _ := catalogProducts()

	// All predicates must hold at once
	result := CatalogFilter{Search: "polera", CategoryID: textiles.String(), StockStatus: StockStatusInStock}.Apply(products)
	assert.Len(t, result, 1)

	result = CatalogFilter{Search: "polera", CategoryID: textiles.String(), StockStatus: StockStatusOutStock}.Apply(products)
	assert.Empty(t, result)
}

func TestCatalogFilterPreservesOrder(t *testing.T) {
	products, textiles, _ := catalogProducts()

	result := CatalogFilter{CategoryID: textiles.String()}.Apply(products)

	assert.Equal(t, "Polera Algodón", result[0].Name)
	assert.Equal(t, "Gorro Bordado", result[1].Name)
}

func TestCatalogFilterConcreteCase(t *testing.T) {
	poleras := uuid.Must(uuid.NewV7())
	gorras := uuid.Must(uuid.NewV7())
	product := Product{Name: "Camiseta Azul", CategoryID: &poleras, StockStatus: StockStatusInStock}

	match := CatalogFilter{Search: "azul", CategoryID: FilterAll, StockStatus: StockStatusInStock}
	assert.True(t, match.Matches(product))

	exclude := CatalogFilter{Search: "azul", CategoryID: gorras.String(), StockStatus: FilterAll}
	assert.False(t, exclude.Matches(product))
}

func TestValidCategoryParam(t *testing.T) {
	assert.True(t, ValidCategoryParam(""))
	assert.True(t, ValidCategoryParam(FilterAll))
	assert.True(t, ValidCategoryParam(uuid.Must(uuid.NewV7()).String()))
	assert.False(t, ValidCategoryParam("textiles"))
	assert.False(t, ValidCategoryParam("123"))
}
