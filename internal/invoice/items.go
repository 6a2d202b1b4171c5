// Package invoice renders a reservation into the two-page PDF contract
// document. The line items are derived from the same selection and frozen
// pricing breakdown the screen shows, so invoice totals never diverge from
// the saved reservation.
package invoice

import (
	"sort"
	"strconv"

	"github.com/derekgf27/AntesalaReservationsDemo/internal/catalog"
	"github.com/derekgf27/AntesalaReservationsDemo/internal/pricing"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/model"

	"github.com/shopspring/decimal"
)

// LineItem is one row of the itemized table. Included rows render the word
// "Incluido" instead of an amount and contribute nothing to the subtotal.
type LineItem struct {
	Description string
	Details     []string
	Quantity    string
	Amount      decimal.Decimal
	Included    bool
}

// LineItems builds the invoice table for a reservation. The sum of the
// non-included amounts equals the frozen SubtotalBeforeTaxes.
func LineItems(r *model.Reservation, cat pricing.Catalog) []LineItem {
	items := []LineItem{}
	guests := decimal.NewFromInt(int64(r.GuestCount))
	guestQty := strconv.Itoa(r.GuestCount)

	if model.IsBuffet(r.FoodType) {
		items = append(items, LineItem{
			Description: "Buffet",
			Details:     buffetDetails(r.Buffet),
			Quantity:    guestQty,
			Amount:      r.Pricing.FoodCost,
		})
	} else if r.FoodType != "" && r.FoodType != "no-food" {
		items = append(items, LineItem{
			Description: catalog.FoodName(r.FoodType),
			Quantity:    guestQty,
			Amount:      r.Pricing.FoodCost,
		})
	}

	if model.IsBreakfast(r.BreakfastType) {
		items = append(items, LineItem{
			Description: catalog.FoodName(r.BreakfastType),
			Details:     breakfastDetails(r.Breakfast),
			Quantity:    guestQty,
			Amount:      r.Pricing.BreakfastCost,
		})
	}

	if model.IsDessert(r.DessertType) && r.Dessert != nil {
		items = append(items, LineItem{
			Description: "Postres",
			Details:     dessertDetails(r.Dessert),
			Quantity:    "-",
			Included:    true,
		})
	}

	items = append(items, selectionItems(r.Beverages, guests, cat.Beverage)...)
	items = append(items, selectionItems(r.Entremeses, guests, cat.Entremes)...)

	if r.RoomType != "" {
		items = append(items, LineItem{
			Description: catalog.RoomName(r.RoomType),
			Quantity:    "1",
			Amount:      r.Pricing.RoomCost,
		})
	}

	for _, key := range sortedKeys(r.AdditionalServices) {
		if !r.AdditionalServices[key] {
			continue
		}
		item, ok := cat.Service(key)
		if !ok {
			continue
		}
		if item.UnitPrice.IsPositive() {
			items = append(items, LineItem{Description: item.DisplayName, Quantity: "1", Amount: item.UnitPrice})
		} else {
			items = append(items, LineItem{Description: item.DisplayName, Quantity: "-", Included: true})
		}
	}

	return items
}

// selectionItems prices beverage/entremes rows with the same rules as the
// pricing engine: per-person items charge per guest, snapshots use their
// frozen price and unknown ids are skipped.
func selectionItems(sel map[string]model.SelectionItem, guests decimal.Decimal, lookup func(string) (model.CatalogItem, bool)) []LineItem {
	items := []LineItem{}
	for _, id := range sortedItemKeys(sel) {
		entry := sel[id]
		switch entry.Kind {
		case model.KindCustomSnapshot:
			if entry.Qty <= 0 {
				continue
			}
			qty := decimal.NewFromInt(int64(entry.Qty))
			items = append(items, LineItem{
				Description: entry.Name,
				Quantity:    qty.String(),
				Amount:      entry.Price.Mul(qty),
			})
		case model.KindPerPerson:
			if !entry.Selected {
				continue
			}
			item, ok := lookup(id)
			if !ok {
				continue
			}
			items = append(items, LineItem{
				Description: item.DisplayName,
				Quantity:    guests.String(),
				Amount:      item.UnitPrice.Mul(guests),
			})
		default:
			if entry.Qty <= 0 {
				continue
			}
			item, ok := lookup(id)
			if !ok {
				continue
			}
			qty := decimal.NewFromInt(int64(entry.Qty))
			row := LineItem{
				Description: item.DisplayName,
				Quantity:    qty.String(),
				Amount:      item.UnitPrice.Mul(qty),
			}
			if entry.Notes != "" {
				row.Details = []string{entry.Notes}
			}
			items = append(items, row)
		}
	}
	return items
}

func buffetDetails(b *model.BuffetChoices) []string {
	if b == nil {
		return nil
	}
	var details []string
	add := func(label, value string) {
		if value != "" {
			details = append(details, label+": "+catalog.BuffetItemName(value))
		}
	}
	add("Arroz", b.Rice)
	add("Arroz 2", b.Rice2)
	add("Proteína", b.Protein1)
	add("Proteína 2", b.Protein2)
	add("Acompañante", b.Side)
	add("Ensalada", b.Salad)
	add("Ensalada 2", b.Salad2)
	if b.Panecillos {
		details = append(details, "Panecillos")
	}
	if b.AguaRefresco {
		details = append(details, "Agua y Refresco")
	}
	if b.Pasteles {
		details = append(details, "Pasteles")
	}
	return details
}

func breakfastDetails(b *model.BreakfastChoices) []string {
	if b == nil {
		return nil
	}
	var details []string
	flags := []struct {
		on   bool
		name string
	}{
		{b.Cafe, "Café"},
		{b.Jugo, "Jugo"},
		{b.Avena, "Avena"},
		{b.WrapJamonQueso, "Wrap de Jamón y Queso"},
		{b.BocadilloJamonQueso, "Bocadillo de Jamón y Queso"},
	}
	for _, f := range flags {
		if f.on {
			details = append(details, f.name)
		}
	}
	return details
}

func dessertDetails(d *model.DessertChoices) []string {
	if d == nil {
		return nil
	}
	var details []string
	flags := []struct {
		on   bool
		name string
	}{
		{d.FlanQueso, "Flan de Queso"},
		{d.FlanVainilla, "Flan de Vainilla"},
		{d.FlanCoco, "Flan de Coco"},
		{d.Cheesecake, "Cheesecake"},
		{d.BizcochoChocolate, "Bizcocho de Chocolate"},
		{d.BizcochoZanahoria, "Bizcocho de Zanahoria"},
		{d.TresLeches, "Tres Leches"},
		{d.Tembleque, "Tembleque"},
		{d.PostresSurtidos, "Postres Surtidos"},
	}
	for _, f := range flags {
		if f.on {
			details = append(details, f.name)
		}
	}
	return details
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedItemKeys(m map[string]model.SelectionItem) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
