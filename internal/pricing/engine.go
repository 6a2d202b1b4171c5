// Package pricing turns a reservation selection into an itemized cost
// breakdown. Compute is pure and deterministic: the handlers call it on every
// quote request and the ledger calls it right before each save, so the frozen
// breakdown always matches the selection it was derived from.
package pricing

import (
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/model"

	"github.com/shopspring/decimal"
)

// Tax rates. Food covers the reduced bucket: food, breakfast, entremeses and
// non-alcoholic beverages. Alcohol applies to alcoholic beverages only.
var (
	foodStateRate    = decimal.RequireFromString("0.06")
	foodCityRate     = decimal.RequireFromString("0.01")
	alcoholStateRate = decimal.RequireFromString("0.105")
	alcoholCityRate  = decimal.RequireFromString("0.01")

	hundred = decimal.NewFromInt(100)
)

// Catalog is the read-only lookup surface the engine needs.
type Catalog interface {
	Beverage(id string) (model.CatalogItem, bool)
	Entremes(id string) (model.CatalogItem, bool)
	Service(id string) (model.CatalogItem, bool)
	FoodOption(id string) (model.CatalogItem, bool)
}

// Compute derives the full breakdown from a selection. It never fails: an
// unknown id, a missing price or a zero guest count produce zero-cost lines,
// not errors. Intermediate values are kept at full precision; only the
// deposit amount is fixed to cents because the payment ledger settles
// against it.
func Compute(sel *model.Selection, eventDuration int, cat Catalog) model.Breakdown {
	guests := int64(sel.GuestCount)
	if guests < 0 {
		guests = 0
	}
	guestCount := decimal.NewFromInt(guests)

	roomCost := decimal.Zero

	foodCost := decimal.Zero
	if model.IsBuffet(sel.FoodType) {
		if sel.BuffetPricePerPerson.IsPositive() {
			foodCost = sel.BuffetPricePerPerson.Mul(guestCount)
		}
	} else if item, ok := cat.FoodOption(sel.FoodType); ok {
		foodCost = item.UnitPrice.Mul(guestCount)
	}

	breakfastCost := decimal.Zero
	if item, ok := cat.FoodOption(sel.BreakfastType); ok && model.IsBreakfast(sel.BreakfastType) {
		breakfastCost = item.UnitPrice.Mul(guestCount)
	}

	drinks := tallySelections(sel.Beverages, guestCount, cat.Beverage)
	entremeses := tallySelections(sel.Entremeses, guestCount, cat.Entremes)

	additionalCost := decimal.Zero
	for key, on := range sel.AdditionalServices {
		if !on {
			continue
		}
		if item, ok := cat.Service(key); ok {
			additionalCost = additionalCost.Add(item.UnitPrice)
		}
	}

	drinkCost := drinks.alcoholic.Add(drinks.nonAlcoholic)
	entremesesCost := entremeses.alcoholic.Add(entremeses.nonAlcoholic)

	// The reduced food rate covers everything edible plus non-alcoholic
	// drinks. The alcohol rate applies only when alcoholic units were
	// actually selected.
	foodTaxBase := foodCost.Add(breakfastCost).Add(entremesesCost).Add(drinks.nonAlcoholic)
	foodStateTax := foodTaxBase.Mul(foodStateRate)
	foodCityTax := foodTaxBase.Mul(foodCityRate)

	alcoholStateTax := decimal.Zero
	alcoholCityTax := decimal.Zero
	if drinks.alcoholicQty > 0 {
		alcoholStateTax = drinks.alcoholic.Mul(alcoholStateRate)
		alcoholCityTax = drinks.alcoholic.Mul(alcoholCityRate)
	}
	totalTaxes := foodStateTax.Add(foodCityTax).Add(alcoholStateTax).Add(alcoholCityTax)

	subtotal := roomCost.Add(foodCost).Add(breakfastCost).Add(drinkCost).Add(entremesesCost).Add(additionalCost)

	tipPercent := sel.TipPercent
	if tipPercent.IsNegative() {
		tipPercent = decimal.Zero
	}
	tipAmount := subtotal.Mul(tipPercent).Div(hundred)

	totalCost := subtotal.Add(totalTaxes).Add(tipAmount)

	depositPercent := decimal.Zero
	var depositAmount decimal.Decimal
	if sel.Deposit.Custom {
		depositAmount = sel.DepositCustomAmount
		if depositAmount.IsNegative() {
			depositAmount = decimal.Zero
		}
		if depositAmount.GreaterThan(totalCost) {
			depositAmount = totalCost
		}
	} else {
		depositPercent = sel.Deposit.Percent
		if depositPercent.IsNegative() {
			depositPercent = decimal.Zero
		}
		depositAmount = totalCost.Mul(depositPercent).Div(hundred)
	}
	depositAmount = depositAmount.Round(2)

	return model.Breakdown{
		RoomCost:       roomCost,
		FoodCost:       foodCost,
		BreakfastCost:  breakfastCost,
		DrinkCost:      drinkCost,
		EntremesesCost: entremesesCost,
		AdditionalCost: additionalCost,
		Taxes: model.TaxBreakdown{
			FoodStateReducedTax: foodStateTax,
			FoodCityTax:         foodCityTax,
			AlcoholStateTax:     alcoholStateTax,
			AlcoholCityTax:      alcoholCityTax,
			TotalTaxes:          totalTaxes,
		},
		Tip: model.TipBreakdown{
			Percent: tipPercent,
			Amount:  tipAmount,
		},
		SubtotalBeforeTaxes: subtotal,
		TotalCost:           totalCost,
		DepositAmount:       depositAmount,
		DepositPercent:      depositPercent,
		GuestCount:          int(guests),
		EventDuration:       eventDuration,
	}
}

type tally struct {
	alcoholic    decimal.Decimal
	nonAlcoholic decimal.Decimal
	alcoholicQty int64
}

// tallySelections prices one selection map, splitting the sum into the
// alcoholic and non-alcoholic buckets. Snapshot entries use their frozen
// price and alcohol flag; everything else resolves through the catalog and an
// unknown id contributes nothing.
func tallySelections(items map[string]model.SelectionItem, guestCount decimal.Decimal, lookup func(string) (model.CatalogItem, bool)) tally {
	t := tally{alcoholic: decimal.Zero, nonAlcoholic: decimal.Zero}

	for id, entry := range items {
		var (
			cost      decimal.Decimal
			alcoholic bool
			units     int64
		)

		switch entry.Kind {
		case model.KindCustomSnapshot:
			if entry.Qty <= 0 {
				continue
			}
			cost = entry.Price.Mul(decimal.NewFromInt(int64(entry.Qty)))
			alcoholic = entry.Alcoholic
			units = int64(entry.Qty)

		case model.KindPerPerson:
			if !entry.Selected {
				continue
			}
			item, ok := lookup(id)
			if !ok {
				continue
			}
			cost = item.UnitPrice.Mul(guestCount)
			alcoholic = item.IsAlcoholic
			units = guestCount.IntPart()

		default: // KindQuantity, KindQuantityNotes
			if entry.Qty <= 0 {
				continue
			}
			item, ok := lookup(id)
			if !ok {
				continue
			}
			cost = item.UnitPrice.Mul(decimal.NewFromInt(int64(entry.Qty)))
			alcoholic = item.IsAlcoholic
			units = int64(entry.Qty)
		}

		if alcoholic {
			t.alcoholic = t.alcoholic.Add(cost)
			t.alcoholicQty += units
		} else {
			t.nonAlcoholic = t.nonAlcoholic.Add(cost)
		}
	}
	return t
}
