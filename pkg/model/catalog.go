package model

import (
	"github.com/shopspring/decimal"
)

// Beverage grouping used by the UI and by the alcohol tax bucket.
const (
	CategoryBeer         = "beer"
	CategoryLiquor       = "liquor"
	CategoryWine         = "wine"
	CategoryNonAlcoholic = "non-alcoholic"
)

// CatalogItem is one priced entry of a catalog: a beverage, an entremes, an
// additional service or a food option. Custom beverages are CatalogItems
// created at runtime with a slug-derived id.
type CatalogItem struct {
	ID          string          `json:"id" validate:"required"`
	DisplayName string          `json:"name" validate:"required"`
	UnitPrice   decimal.Decimal `json:"price"`
	Category    string          `json:"category,omitempty"`
	Measurement string          `json:"measurement,omitempty"`
	IsAlcoholic bool            `json:"alcohol"`

	// PerPersonOnly items are selected with a flag instead of a quantity and
	// charge UnitPrice per guest (mimosa, asopao, ceviche).
	PerPersonOnly bool `json:"perPerson,omitempty"`
}
