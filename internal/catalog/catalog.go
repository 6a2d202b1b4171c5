// Package catalog holds the price lists: beverages, entremeses, additional
// services and food options. Static catalogs are fixed at build time; custom
// beverages are added at runtime and persisted separately, then merged into
// the beverage catalog at use time.
package catalog

import (
	"context"
	"sync"

	"github.com/derekgf27/AntesalaReservationsDemo/pkg/logger"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/model"

	"github.com/shopspring/decimal"
)

// Catalog names accepted by Lookup.
const (
	Beverages   = "beverages"
	Entremeses  = "entremeses"
	Services    = "services"
	FoodOptions = "foodOptions"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var staticBeverages = []model.CatalogItem{
	{ID: "soft-drinks", DisplayName: "Caja de Refrescos (24)", UnitPrice: d("35"), Category: model.CategoryNonAlcoholic, Measurement: "caja"},
	{ID: "water", DisplayName: "Caja de Agua (24)", UnitPrice: d("20"), Category: model.CategoryNonAlcoholic, Measurement: "caja"},
	{ID: "michelob", DisplayName: "Michelob", UnitPrice: d("72"), Category: model.CategoryBeer, Measurement: "caja", IsAlcoholic: true},
	{ID: "medalla", DisplayName: "Medalla", UnitPrice: d("72"), Category: model.CategoryBeer, Measurement: "caja", IsAlcoholic: true},
	{ID: "heineken", DisplayName: "Heineken", UnitPrice: d("72"), Category: model.CategoryBeer, Measurement: "caja", IsAlcoholic: true},
	{ID: "coors", DisplayName: "Coors Light", UnitPrice: d("72"), Category: model.CategoryBeer, Measurement: "caja", IsAlcoholic: true},
	{ID: "corona", DisplayName: "Corona", UnitPrice: d("72"), Category: model.CategoryBeer, Measurement: "caja", IsAlcoholic: true},
	{ID: "modelo", DisplayName: "Modelo", UnitPrice: d("72"), Category: model.CategoryBeer, Measurement: "caja", IsAlcoholic: true},
	{ID: "black-label-1l", DisplayName: "1 Litro Black Label", UnitPrice: d("65"), Category: model.CategoryLiquor, Measurement: "botella", IsAlcoholic: true},
	{ID: "tito-1l", DisplayName: "1 Litro Tito Vodka", UnitPrice: d("45"), Category: model.CategoryLiquor, Measurement: "botella", IsAlcoholic: true},
	{ID: "dewars-12-handle", DisplayName: "Gancho Dewars 12", UnitPrice: d("200"), Category: model.CategoryLiquor, Measurement: "gancho", IsAlcoholic: true},
	{ID: "dewars-handle", DisplayName: "Gancho Dewars Reg.", UnitPrice: d("150"), Category: model.CategoryLiquor, Measurement: "gancho", IsAlcoholic: true},
	{ID: "donq-cristal-handle", DisplayName: "Gancho Don Q Cristal", UnitPrice: d("75"), Category: model.CategoryLiquor, Measurement: "gancho", IsAlcoholic: true},
	{ID: "donq-limon-handle", DisplayName: "Gancho Don Q Limón", UnitPrice: d("75"), Category: model.CategoryLiquor, Measurement: "gancho", IsAlcoholic: true},
	{ID: "donq-passion-handle", DisplayName: "Gancho Don Q Passion", UnitPrice: d("75"), Category: model.CategoryLiquor, Measurement: "gancho", IsAlcoholic: true},
	{ID: "donq-coco-handle", DisplayName: "Gancho Don Q Coco", UnitPrice: d("75"), Category: model.CategoryLiquor, Measurement: "gancho", IsAlcoholic: true},
	{ID: "donq-naranja-handle", DisplayName: "Gancho Don Q Naranja", UnitPrice: d("75"), Category: model.CategoryLiquor, Measurement: "gancho", IsAlcoholic: true},
	{ID: "donq-oro-handle", DisplayName: "Gancho Don Q Oro", UnitPrice: d("75"), Category: model.CategoryLiquor, Measurement: "gancho", IsAlcoholic: true},
	{ID: "tito-handle", DisplayName: "Gancho Tito Vodka", UnitPrice: d("150"), Category: model.CategoryLiquor, Measurement: "gancho", IsAlcoholic: true},
	{ID: "sangria", DisplayName: "Jarra de Sangria", UnitPrice: d("25"), Category: model.CategoryWine, Measurement: "jarra", IsAlcoholic: true},
	{ID: "red-wine-25", DisplayName: "Botella de Vino Tinto ($25)", UnitPrice: d("25"), Category: model.CategoryWine, Measurement: "botella", IsAlcoholic: true},
	{ID: "red-wine-30", DisplayName: "Botella de Vino Tinto ($30)", UnitPrice: d("30"), Category: model.CategoryWine, Measurement: "botella", IsAlcoholic: true},
	{ID: "red-wine-35-1", DisplayName: "Botella de Vino Tinto ($35)", UnitPrice: d("35"), Category: model.CategoryWine, Measurement: "botella", IsAlcoholic: true},
	{ID: "red-wine-35-2", DisplayName: "Botella de Vino Tinto ($35)", UnitPrice: d("35"), Category: model.CategoryWine, Measurement: "botella", IsAlcoholic: true},
	{ID: "red-wine-40", DisplayName: "Botella de Vino Tinto ($40)", UnitPrice: d("40"), Category: model.CategoryWine, Measurement: "botella", IsAlcoholic: true},
	{ID: "white-wine-25", DisplayName: "Botella de Vino Blanco ($25)", UnitPrice: d("25"), Category: model.CategoryWine, Measurement: "botella", IsAlcoholic: true},
	{ID: "white-wine-30", DisplayName: "Botella de Vino Blanco ($30)", UnitPrice: d("30"), Category: model.CategoryWine, Measurement: "botella", IsAlcoholic: true},
	{ID: "white-wine-35-1", DisplayName: "Botella de Vino Blanco ($35)", UnitPrice: d("35"), Category: model.CategoryWine, Measurement: "botella", IsAlcoholic: true},
	{ID: "white-wine-35-2", DisplayName: "Botella de Vino Blanco ($35)", UnitPrice: d("35"), Category: model.CategoryWine, Measurement: "botella", IsAlcoholic: true},
	{ID: "white-wine-40", DisplayName: "Botella de Vino Blanco ($40)", UnitPrice: d("40"), Category: model.CategoryWine, Measurement: "botella", IsAlcoholic: true},
	{ID: "descorche", DisplayName: "Descorche", UnitPrice: d("0"), Category: model.CategoryNonAlcoholic},

	// Mimosa is charged per guest. The bar mixes it on site, so it is kept
	// out of the alcohol tax bucket like the rest of the breakfast service.
	{ID: "mimosa", DisplayName: "Mimosa", UnitPrice: d("3.95"), Category: model.CategoryNonAlcoholic, PerPersonOnly: true},
}

var staticEntremeses = []model.CatalogItem{
	{ID: "bandeja-surtido", DisplayName: "Bandeja de Surtido", UnitPrice: d("100")},
	{ID: "media-bandeja", DisplayName: "Media Bandeja de Surtidos", UnitPrice: d("50")},
	{ID: "bandeja-cortes-frios", DisplayName: "Bandeja Cortes Frios", UnitPrice: d("150")},
	{ID: "platos-entremeses", DisplayName: "Platos de Entremeses", UnitPrice: d("20")},
	{ID: "asopao", DisplayName: "Asopao", UnitPrice: d("3.00"), PerPersonOnly: true},
	{ID: "caldo-gallego", DisplayName: "Caldo Gallego", UnitPrice: d("3.00"), PerPersonOnly: true},
	{ID: "ceviche", DisplayName: "Ceviche", UnitPrice: d("3.95"), PerPersonOnly: true},
}

// Additional services. Zero-priced entries are informational: they show up
// on reservations and invoices but never charge.
var staticServices = []model.CatalogItem{
	{ID: "audioVisual", DisplayName: "Manteles", UnitPrice: d("0")},
	{ID: "sillas", DisplayName: "Sillas", UnitPrice: d("0")},
	{ID: "mesas", DisplayName: "Mesas", UnitPrice: d("0")},
	{ID: "decorations", DisplayName: "Basic Decorations", UnitPrice: d("150")},
	{ID: "waitstaff", DisplayName: "Additional Waitstaff", UnitPrice: d("100")},
	{ID: "valet", DisplayName: "Valet Parking", UnitPrice: d("50")},
}

// Food options priced per guest. Buffet is listed for display only; its
// per-person price is entered by staff on the reservation itself.
var staticFoodOptions = []model.CatalogItem{
	{ID: "buffet", DisplayName: "Buffet", UnitPrice: d("0"), PerPersonOnly: true},
	{ID: "individual-plates", DisplayName: "Platos Individuales", UnitPrice: d("15.95"), PerPersonOnly: true},
	{ID: "cocktail-reception", DisplayName: "Recepción de Cóctel", UnitPrice: d("12.95"), PerPersonOnly: true},
	{ID: "desayuno-9.95", DisplayName: "Desayuno $9.95", UnitPrice: d("9.95"), PerPersonOnly: true},
	{ID: "desayuno-10.95", DisplayName: "Desayuno $10.95", UnitPrice: d("10.95"), PerPersonOnly: true},
	{ID: "postres", DisplayName: "Postres", UnitPrice: d("0"), PerPersonOnly: true},
	{ID: "no-food", DisplayName: "Sin Servicio de Comida", UnitPrice: d("0")},
}

// CustomBeverageStore persists the user-defined beverage list under its own
// storage key, independent of the reservation collection.
type CustomBeverageStore interface {
	LoadCustomBeverages(ctx context.Context) ([]model.CatalogItem, error)
	SaveCustomBeverages(ctx context.Context, items []model.CatalogItem) error
}

// Catalog merges the static tables with the persisted custom beverages.
type Catalog struct {
	mu     sync.RWMutex
	custom []model.CatalogItem
	store  CustomBeverageStore
	log    *logger.Logger
}

func New(store CustomBeverageStore, log *logger.Logger) *Catalog {
	return &Catalog{store: store, log: log}
}

// LoadCustom reads the persisted custom beverage list. Call once at startup.
func (c *Catalog) LoadCustom(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	items, err := c.store.LoadCustomBeverages(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.custom = items
	c.mu.Unlock()
	c.log.Info("Custom beverages loaded", "count", len(items))
	return nil
}

func (c *Catalog) BeverageItems() []model.CatalogItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.CatalogItem, 0, len(staticBeverages)+len(c.custom))
	out = append(out, staticBeverages...)
	out = append(out, c.custom...)
	return out
}

func (c *Catalog) EntremesItems() []model.CatalogItem {
	out := make([]model.CatalogItem, len(staticEntremeses))
	copy(out, staticEntremeses)
	return out
}

func (c *Catalog) ServiceItems() []model.CatalogItem {
	out := make([]model.CatalogItem, len(staticServices))
	copy(out, staticServices)
	return out
}

func (c *Catalog) FoodOptionItems() []model.CatalogItem {
	out := make([]model.CatalogItem, len(staticFoodOptions))
	copy(out, staticFoodOptions)
	return out
}

func (c *Catalog) Beverage(id string) (model.CatalogItem, bool) {
	for _, item := range staticBeverages {
		if item.ID == id {
			return item, true
		}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.custom {
		if item.ID == id {
			return item, true
		}
	}
	return model.CatalogItem{}, false
}

func (c *Catalog) Entremes(id string) (model.CatalogItem, bool) {
	return find(staticEntremeses, id)
}

func (c *Catalog) Service(id string) (model.CatalogItem, bool) {
	return find(staticServices, id)
}

func (c *Catalog) FoodOption(id string) (model.CatalogItem, bool) {
	return find(staticFoodOptions, id)
}

// Lookup resolves an item by catalog name and id.
func (c *Catalog) Lookup(catalogName, id string) (model.CatalogItem, bool) {
	switch catalogName {
	case Beverages:
		return c.Beverage(id)
	case Entremeses:
		return c.Entremes(id)
	case Services:
		return c.Service(id)
	case FoodOptions:
		return c.FoodOption(id)
	default:
		return model.CatalogItem{}, false
	}
}

func find(items []model.CatalogItem, id string) (model.CatalogItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return model.CatalogItem{}, false
}
