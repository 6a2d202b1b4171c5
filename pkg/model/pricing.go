package model

import (
	"github.com/shopspring/decimal"
)

// TaxBreakdown segments taxes into the reduced food bucket (food, breakfast,
// entremeses and non-alcoholic beverages) and the alcohol bucket.
type TaxBreakdown struct {
	FoodStateReducedTax decimal.Decimal `json:"foodStateReducedTax"`
	FoodCityTax         decimal.Decimal `json:"foodCityTax"`
	AlcoholStateTax     decimal.Decimal `json:"alcoholStateTax"`
	AlcoholCityTax      decimal.Decimal `json:"alcoholCityTax"`
	TotalTaxes          decimal.Decimal `json:"totalTaxes"`
}

// TipBreakdown carries the tip percentage and the amount computed on the
// pre-tax subtotal.
type TipBreakdown struct {
	Percent decimal.Decimal `json:"percentage"`
	Amount  decimal.Decimal `json:"amount"`
}

// Breakdown is the itemized pricing result. It is immutable once frozen into
// a saved reservation; edits recompute and overwrite the whole value.
//
// Invariant: TotalCost = SubtotalBeforeTaxes + Taxes.TotalTaxes + Tip.Amount.
type Breakdown struct {
	RoomCost       decimal.Decimal `json:"roomCost"`
	FoodCost       decimal.Decimal `json:"foodCost"`
	BreakfastCost  decimal.Decimal `json:"breakfastCost"`
	DrinkCost      decimal.Decimal `json:"drinkCost"`
	EntremesesCost decimal.Decimal `json:"entremesesCost"`
	AdditionalCost decimal.Decimal `json:"additionalCost"`

	Taxes TaxBreakdown `json:"taxes"`
	Tip   TipBreakdown `json:"tip"`

	SubtotalBeforeTaxes decimal.Decimal `json:"subtotalBeforeTaxes"`
	TotalCost           decimal.Decimal `json:"totalCost"`

	DepositAmount  decimal.Decimal `json:"depositAmount"`
	DepositPercent decimal.Decimal `json:"depositPercentage"`

	GuestCount    int `json:"guestCount"`
	EventDuration int `json:"eventDuration"`
}
