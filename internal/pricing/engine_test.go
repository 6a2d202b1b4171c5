package pricing

import (
	"testing"

	"github.com/derekgf27/AntesalaReservationsDemo/internal/catalog"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/logger"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/model"

	"github.com/shopspring/decimal"
)

func testCatalog() *catalog.Catalog {
	return catalog.New(nil, logger.Discard())
}

func d(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func assertMoney(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	w := decimal.RequireFromString(want)
	if !got.Equal(w) {
		t.Errorf("%s = %s, want %s", name, got, w)
	}
}

func buffetSelection(guests int) *model.Selection {
	return &model.Selection{
		GuestCount:           guests,
		RoomType:             "grand-hall",
		FoodType:             "buffet",
		BuffetPricePerPerson: decimal.NewFromInt(20),
		Beverages:            map[string]model.SelectionItem{},
		Entremeses:           map[string]model.SelectionItem{},
		AdditionalServices:   map[string]bool{},
		Deposit:              model.DepositPercent(decimal.NewFromInt(20)),
	}
}

func TestBuffetWithFoodTaxOnly(t *testing.T) {
	sel := buffetSelection(50)
	got := Compute(sel, 4, testCatalog())

	assertMoney(t, "foodCost", got.FoodCost, "1000")
	assertMoney(t, "foodStateReducedTax", got.Taxes.FoodStateReducedTax, "60")
	assertMoney(t, "foodCityTax", got.Taxes.FoodCityTax, "10")
	assertMoney(t, "alcoholStateTax", got.Taxes.AlcoholStateTax, "0")
	assertMoney(t, "alcoholCityTax", got.Taxes.AlcoholCityTax, "0")
	assertMoney(t, "totalTaxes", got.Taxes.TotalTaxes, "70")
	assertMoney(t, "subtotalBeforeTaxes", got.SubtotalBeforeTaxes, "1000")
	assertMoney(t, "totalCost", got.TotalCost, "1070")
	assertMoney(t, "depositAmount", got.DepositAmount, "214.00")
	if got.GuestCount != 50 {
		t.Errorf("guestCount = %d, want 50", got.GuestCount)
	}
	if got.EventDuration != 4 {
		t.Errorf("eventDuration = %d, want 4", got.EventDuration)
	}
}

func TestAlcoholTaxedSeparately(t *testing.T) {
	sel := buffetSelection(50)
	sel.Beverages["medalla"] = model.Quantity(2)
	got := Compute(sel, 4, testCatalog())

	assertMoney(t, "drinkCost", got.DrinkCost, "144")
	assertMoney(t, "alcoholStateTax", got.Taxes.AlcoholStateTax, "15.12")
	assertMoney(t, "alcoholCityTax", got.Taxes.AlcoholCityTax, "1.44")
	// Beer never enters the food tax base.
	assertMoney(t, "foodStateReducedTax", got.Taxes.FoodStateReducedTax, "60")
	assertMoney(t, "foodCityTax", got.Taxes.FoodCityTax, "10")
	assertMoney(t, "totalTaxes", got.Taxes.TotalTaxes, "86.56")
	assertMoney(t, "totalCost", got.TotalCost, "1230.56")
}

func TestNonAlcoholicDrinksJoinFoodTaxBase(t *testing.T) {
	sel := buffetSelection(50)
	sel.Beverages["soft-drinks"] = model.Quantity(2) // 2 × $35 = $70

	got := Compute(sel, 4, testCatalog())

	assertMoney(t, "drinkCost", got.DrinkCost, "70")
	// Base: 1000 food + 70 non-alcoholic drinks.
	assertMoney(t, "foodStateReducedTax", got.Taxes.FoodStateReducedTax, "64.2")
	assertMoney(t, "foodCityTax", got.Taxes.FoodCityTax, "10.7")
	assertMoney(t, "alcoholStateTax", got.Taxes.AlcoholStateTax, "0")
	assertMoney(t, "alcoholCityTax", got.Taxes.AlcoholCityTax, "0")
}

func TestComputeIsIdempotent(t *testing.T) {
	sel := buffetSelection(50)
	sel.Beverages["medalla"] = model.Quantity(2)
	sel.Beverages["mimosa"] = model.PerPersonFlag(true)
	sel.Entremeses["bandeja-surtido"] = model.Quantity(1)
	sel.AdditionalServices["decorations"] = true
	sel.TipPercent = decimal.NewFromInt(15)

	cat := testCatalog()
	first := Compute(sel, 4, cat)
	second := Compute(sel, 4, cat)

	pairs := []struct {
		name string
		a, b decimal.Decimal
	}{
		{"foodCost", first.FoodCost, second.FoodCost},
		{"drinkCost", first.DrinkCost, second.DrinkCost},
		{"entremesesCost", first.EntremesesCost, second.EntremesesCost},
		{"additionalCost", first.AdditionalCost, second.AdditionalCost},
		{"totalTaxes", first.Taxes.TotalTaxes, second.Taxes.TotalTaxes},
		{"tipAmount", first.Tip.Amount, second.Tip.Amount},
		{"subtotalBeforeTaxes", first.SubtotalBeforeTaxes, second.SubtotalBeforeTaxes},
		{"totalCost", first.TotalCost, second.TotalCost},
		{"depositAmount", first.DepositAmount, second.DepositAmount},
	}
	for _, p := range pairs {
		if !p.a.Equal(p.b) {
			t.Errorf("%s differs across calls: %s vs %s", p.name, p.a, p.b)
		}
	}
}

func TestTotalDecomposition(t *testing.T) {
	tolerance := decimal.RequireFromString("0.005")

	selections := []*model.Selection{
		buffetSelection(50),
		{
			GuestCount:         0,
			Beverages:          map[string]model.SelectionItem{},
			Entremeses:         map[string]model.SelectionItem{},
			AdditionalServices: map[string]bool{},
		},
		func() *model.Selection {
			sel := buffetSelection(120)
			sel.TipPercent = d(t, "18")
			sel.Beverages["medalla"] = model.Quantity(5)
			sel.Beverages["water"] = model.Quantity(3)
			sel.Entremeses["ceviche"] = model.PerPersonFlag(true)
			sel.AdditionalServices["valet"] = true
			return sel
		}(),
	}

	cat := testCatalog()
	for i, sel := range selections {
		got := Compute(sel, 4, cat)
		sum := got.SubtotalBeforeTaxes.Add(got.Taxes.TotalTaxes).Add(got.Tip.Amount)
		if got.TotalCost.Sub(sum).Abs().GreaterThan(tolerance) {
			t.Errorf("selection %d: totalCost %s != subtotal+taxes+tip %s", i, got.TotalCost, sum)
		}
	}
}

func TestZeroGuestsAndEmptySelectionDegradeToZero(t *testing.T) {
	sel := &model.Selection{
		GuestCount:         0,
		FoodType:           "buffet",
		Beverages:          map[string]model.SelectionItem{},
		Entremeses:         map[string]model.SelectionItem{},
		AdditionalServices: map[string]bool{},
		Deposit:            model.DepositPercent(decimal.NewFromInt(20)),
	}
	got := Compute(sel, 0, testCatalog())

	fields := map[string]decimal.Decimal{
		"roomCost":       got.RoomCost,
		"foodCost":       got.FoodCost,
		"breakfastCost":  got.BreakfastCost,
		"drinkCost":      got.DrinkCost,
		"entremesesCost": got.EntremesesCost,
		"additionalCost": got.AdditionalCost,
		"totalTaxes":     got.Taxes.TotalTaxes,
		"tipAmount":      got.Tip.Amount,
		"totalCost":      got.TotalCost,
		"depositAmount":  got.DepositAmount,
	}
	for name, v := range fields {
		if !v.IsZero() {
			t.Errorf("%s = %s, want 0", name, v)
		}
		if v.IsNegative() {
			t.Errorf("%s is negative", name)
		}
	}
}

func TestAlcoholTaxGatedOnQuantity(t *testing.T) {
	sel := buffetSelection(50)
	sel.Beverages["soft-drinks"] = model.Quantity(4)
	sel.Beverages["water"] = model.Quantity(2)
	sel.Beverages["medalla"] = model.Quantity(0) // present but zero units

	got := Compute(sel, 4, testCatalog())
	if !got.Taxes.AlcoholStateTax.IsZero() || !got.Taxes.AlcoholCityTax.IsZero() {
		t.Errorf("alcohol taxes = %s/%s, want 0/0 with no alcoholic units",
			got.Taxes.AlcoholStateTax, got.Taxes.AlcoholCityTax)
	}
}

func TestPerPersonBeverage(t *testing.T) {
	sel := buffetSelection(50)
	sel.Beverages["mimosa"] = model.PerPersonFlag(true)

	got := Compute(sel, 4, testCatalog())
	// 50 × $3.95, non-alcoholic bucket.
	assertMoney(t, "drinkCost", got.DrinkCost, "197.5")
	assertMoney(t, "alcoholStateTax", got.Taxes.AlcoholStateTax, "0")
}

func TestCustomSnapshotUsesFrozenPrice(t *testing.T) {
	sel := buffetSelection(50)
	// Snapshot of a custom beverage that no longer exists in any catalog.
	sel.Beverages["ron-anejo"] = model.CustomSnapshot(3, "Ron Añejo", d(t, "55"), true)

	got := Compute(sel, 4, testCatalog())
	assertMoney(t, "drinkCost", got.DrinkCost, "165")
	assertMoney(t, "alcoholStateTax", got.Taxes.AlcoholStateTax, "17.325")
	assertMoney(t, "alcoholCityTax", got.Taxes.AlcoholCityTax, "1.65")
}

func TestUnknownIDsContributeNothing(t *testing.T) {
	sel := buffetSelection(50)
	sel.Beverages["no-such-beverage"] = model.Quantity(9)
	sel.Entremeses["no-such-entremes"] = model.Quantity(9)
	sel.AdditionalServices["no-such-service"] = true

	got := Compute(sel, 4, testCatalog())
	assertMoney(t, "drinkCost", got.DrinkCost, "0")
	assertMoney(t, "entremesesCost", got.EntremesesCost, "0")
	assertMoney(t, "additionalCost", got.AdditionalCost, "0")
	assertMoney(t, "totalCost", got.TotalCost, "1070")
}

func TestTipOnPreTaxSubtotal(t *testing.T) {
	sel := buffetSelection(50)
	sel.TipPercent = decimal.NewFromInt(15)

	got := Compute(sel, 4, testCatalog())
	// 15% of the $1000 subtotal, not of the $1070 taxed total.
	assertMoney(t, "tipAmount", got.Tip.Amount, "150")
	assertMoney(t, "totalCost", got.TotalCost, "1220")
}

func TestBreakfastAndFoodAreIndependent(t *testing.T) {
	sel := buffetSelection(50)
	sel.BreakfastType = "desayuno-9.95"

	got := Compute(sel, 4, testCatalog())
	assertMoney(t, "foodCost", got.FoodCost, "1000")
	assertMoney(t, "breakfastCost", got.BreakfastCost, "497.5")
}

func TestPlainFoodTypePricedFromCatalog(t *testing.T) {
	sel := buffetSelection(50)
	sel.FoodType = "individual-plates"
	sel.BuffetPricePerPerson = decimal.Zero

	got := Compute(sel, 4, testCatalog())
	assertMoney(t, "foodCost", got.FoodCost, "797.5")
}

func TestAdditionalServices(t *testing.T) {
	sel := buffetSelection(50)
	sel.AdditionalServices["decorations"] = true
	sel.AdditionalServices["waitstaff"] = true
	sel.AdditionalServices["valet"] = true
	sel.AdditionalServices["sillas"] = true // informational, no charge
	sel.AdditionalServices["mesas"] = false

	got := Compute(sel, 4, testCatalog())
	assertMoney(t, "additionalCost", got.AdditionalCost, "300")
}

func TestCustomDepositClampedToTotal(t *testing.T) {
	sel := buffetSelection(50)
	sel.Deposit = model.DepositCustom()
	sel.DepositCustomAmount = d(t, "5000")

	got := Compute(sel, 4, testCatalog())
	assertMoney(t, "depositAmount", got.DepositAmount, "1070")
	assertMoney(t, "depositPercentage", got.DepositPercent, "0")

	sel.DepositCustomAmount = d(t, "300")
	got = Compute(sel, 4, testCatalog())
	assertMoney(t, "depositAmount", got.DepositAmount, "300")
}

func TestDepositRoundedToCents(t *testing.T) {
	sel := buffetSelection(50)
	sel.Beverages["medalla"] = model.Quantity(2)

	got := Compute(sel, 4, testCatalog())
	// 20% of $1230.56 is $246.112; the ledger settles against cents.
	assertMoney(t, "depositAmount", got.DepositAmount, "246.11")
}

func TestNegativeInputsFlooredAtZero(t *testing.T) {
	sel := buffetSelection(50)
	sel.GuestCount = -3
	sel.TipPercent = d(t, "-10")
	sel.Deposit = model.DepositPercent(d(t, "-20"))

	got := Compute(sel, 4, testCatalog())
	assertMoney(t, "totalCost", got.TotalCost, "0")
	assertMoney(t, "tipAmount", got.Tip.Amount, "0")
	assertMoney(t, "depositAmount", got.DepositAmount, "0")
	if got.GuestCount != 0 {
		t.Errorf("guestCount = %d, want 0", got.GuestCount)
	}
}
