package catalog

import (
	"context"
	"strings"

	apperrors "github.com/derekgf27/AntesalaReservationsDemo/pkg/errors"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/model"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/slug"

	"github.com/shopspring/decimal"
)

// CustomBeverageInput is the request payload for adding a custom beverage.
type CustomBeverageInput struct {
	Name        string          `json:"name" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category,omitempty"`
	Measurement string          `json:"measurement,omitempty"`
	IsAlcoholic bool            `json:"alcohol"`
}

// CustomBeverages returns the runtime-added beverages only.
func (c *Catalog) CustomBeverages() []model.CatalogItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.CatalogItem, len(c.custom))
	copy(out, c.custom)
	return out
}

// AddCustomBeverage derives a unique slug id from the name, appends the item
// and persists the full custom list. Ids never collide with static entries or
// previously added customs; a clash gets a numeric suffix.
func (c *Catalog) AddCustomBeverage(ctx context.Context, in CustomBeverageInput) (model.CatalogItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.CatalogItem{}, apperrors.InvalidInput("beverage name is required")
	}
	if in.Price.IsNegative() {
		return model.CatalogItem{}, apperrors.InvalidInput("beverage price cannot be negative")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	id := slug.MakeUnique(name, func(candidate string) bool {
		if _, ok := find(staticBeverages, candidate); ok {
			return true
		}
		for _, item := range c.custom {
			if item.ID == candidate {
				return true
			}
		}
		return false
	})

	item := model.CatalogItem{
		ID:          id,
		DisplayName: name,
		UnitPrice:   in.Price,
		Category:    in.Category,
		Measurement: in.Measurement,
		IsAlcoholic: in.IsAlcoholic,
	}
	if item.Category == "" {
		item.Category = model.CategoryNonAlcoholic
		if item.IsAlcoholic {
			item.Category = model.CategoryLiquor
		}
	}

	next := make([]model.CatalogItem, 0, len(c.custom)+1)
	next = append(next, c.custom...)
	next = append(next, item)

	if c.store != nil {
		if err := c.store.SaveCustomBeverages(ctx, next); err != nil {
			return model.CatalogItem{}, apperrors.Internal("failed to persist custom beverages", err)
		}
	}
	c.custom = next
	c.log.Info("Custom beverage added", "id", item.ID, "name", item.DisplayName)
	return item, nil
}

// RemoveCustomBeverage deletes a runtime-added beverage. Static catalog
// entries cannot be removed. Saved reservations referencing the id keep their
// frozen snapshot and are unaffected.
func (c *Catalog) RemoveCustomBeverage(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i, item := range c.custom {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		if _, ok := find(staticBeverages, id); ok {
			return apperrors.InvalidInput("catalog beverages cannot be removed")
		}
		return apperrors.NotFoundWithID("custom beverage", id)
	}

	next := make([]model.CatalogItem, 0, len(c.custom)-1)
	next = append(next, c.custom[:idx]...)
	next = append(next, c.custom[idx+1:]...)

	if c.store != nil {
		if err := c.store.SaveCustomBeverages(ctx, next); err != nil {
			return apperrors.Internal("failed to persist custom beverages", err)
		}
	}
	c.custom = next
	c.log.Info("Custom beverage removed", "id", id)
	return nil
}
