package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// The persisted collection predates this implementation and stores money
	// as plain JSON numbers. Keep that wire format.
	decimal.MarshalJSONWithoutQuotes = true
}

// SelectionKind tags the shape of one beverage/entremes selection entry.
type SelectionKind int

const (
	// KindQuantity is a plain count of catalog units.
	KindQuantity SelectionKind = iota
	// KindPerPerson marks a per-guest item as selected; it has no quantity.
	KindPerPerson
	// KindQuantityNotes is a count plus free-text notes.
	KindQuantityNotes
	// KindCustomSnapshot is a count of a custom beverage with its name,
	// price and alcohol flag frozen at selection time, so a later edit or
	// removal of the catalog entry never reprices saved reservations.
	KindCustomSnapshot
)

// SelectionItem is the tagged variant behind the historical dynamic shapes
// (number | bool | {qty,notes} | {qty,name,price,alcohol}). The ambiguity is
// resolved once, at the JSON boundary.
type SelectionItem struct {
	Kind      SelectionKind
	Qty       int
	Selected  bool
	Notes     string
	Name      string
	Price     decimal.Decimal
	Alcoholic bool
}

func Quantity(n int) SelectionItem {
	return SelectionItem{Kind: KindQuantity, Qty: n}
}

func PerPersonFlag(on bool) SelectionItem {
	return SelectionItem{Kind: KindPerPerson, Selected: on}
}

func QuantityWithNotes(n int, notes string) SelectionItem {
	return SelectionItem{Kind: KindQuantityNotes, Qty: n, Notes: notes}
}

func CustomSnapshot(n int, name string, price decimal.Decimal, alcoholic bool) SelectionItem {
	return SelectionItem{Kind: KindCustomSnapshot, Qty: n, Name: name, Price: price, Alcoholic: alcoholic}
}

// Empty reports whether the entry carries no selection at all. Empty entries
// are pruned on save so "no selection" and "explicitly zero" are
// indistinguishable in storage.
func (s SelectionItem) Empty() bool {
	if s.Kind == KindPerPerson {
		return !s.Selected
	}
	return s.Qty <= 0
}

type quantityNotesJSON struct {
	Qty   int    `json:"qty"`
	Notes string `json:"notes,omitempty"`
}

type customSnapshotJSON struct {
	Qty     int             `json:"qty"`
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
	Alcohol bool            `json:"alcohol"`
}

func (s SelectionItem) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case KindPerPerson:
		return json.Marshal(s.Selected)
	case KindQuantityNotes:
		return json.Marshal(quantityNotesJSON{Qty: s.Qty, Notes: s.Notes})
	case KindCustomSnapshot:
		return json.Marshal(customSnapshotJSON{Qty: s.Qty, Name: s.Name, Price: s.Price, Alcohol: s.Alcoholic})
	default:
		return json.Marshal(s.Qty)
	}
}

func (s *SelectionItem) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty selection entry")
	}

	switch data[0] {
	case 't', 'f':
		var on bool
		if err := json.Unmarshal(data, &on); err != nil {
			return err
		}
		*s = PerPersonFlag(on)
		return nil
	case '{':
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if _, hasName := raw["name"]; hasName {
			var snap customSnapshotJSON
			if err := json.Unmarshal(data, &snap); err != nil {
				return err
			}
			*s = CustomSnapshot(snap.Qty, snap.Name, snap.Price, snap.Alcohol)
			return nil
		}
		var qn quantityNotesJSON
		if err := json.Unmarshal(data, &qn); err != nil {
			return err
		}
		*s = QuantityWithNotes(qn.Qty, qn.Notes)
		return nil
	default:
		var n int
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("unrecognized selection entry %s: %w", data, err)
		}
		*s = Quantity(n)
		return nil
	}
}

// DepositChoice is either a percentage of the total cost or a custom fixed
// amount. The wire value is a number or the literal "custom".
type DepositChoice struct {
	Custom  bool
	Percent decimal.Decimal
}

func DepositPercent(p decimal.Decimal) DepositChoice {
	return DepositChoice{Percent: p}
}

func DepositCustom() DepositChoice {
	return DepositChoice{Custom: true}
}

func (d DepositChoice) MarshalJSON() ([]byte, error) {
	if d.Custom {
		return json.Marshal("custom")
	}
	return json.Marshal(d.Percent)
}

func (d *DepositChoice) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "custom" {
			*d = DepositCustom()
			return nil
		}
		p, err := decimal.NewFromString(s)
		if err != nil {
			return fmt.Errorf("invalid deposit percentage %q", s)
		}
		*d = DepositPercent(p)
		return nil
	}
	var p decimal.Decimal
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*d = DepositPercent(p)
	return nil
}

// BuffetChoices are the buffet sub-selections. Rice, Protein1, Side and
// Salad are required when a buffet food type is active.
type BuffetChoices struct {
	Rice         string `json:"rice,omitempty"`
	Rice2        string `json:"rice2,omitempty"`
	Protein1     string `json:"protein1,omitempty"`
	Protein2     string `json:"protein2,omitempty"`
	Side         string `json:"side,omitempty"`
	Salad        string `json:"salad,omitempty"`
	Salad2       string `json:"salad2,omitempty"`
	Panecillos   bool   `json:"panecillos"`
	AguaRefresco bool   `json:"aguaRefresco"`
	Pasteles     bool   `json:"pasteles"`
}

type BreakfastChoices struct {
	Cafe                bool `json:"cafe"`
	Jugo                bool `json:"jugo"`
	Avena               bool `json:"avena"`
	WrapJamonQueso      bool `json:"wrapJamonQueso"`
	BocadilloJamonQueso bool `json:"bocadilloJamonQueso"`
}

type DessertChoices struct {
	FlanQueso         bool `json:"flanQueso"`
	FlanVainilla      bool `json:"flanVainilla"`
	FlanCoco          bool `json:"flanCoco"`
	Cheesecake        bool `json:"cheesecake"`
	BizcochoChocolate bool `json:"bizcochoChocolate"`
	BizcochoZanahoria bool `json:"bizcochoZanahoria"`
	TresLeches        bool `json:"tresLeches"`
	Tembleque         bool `json:"tembleque"`
	PostresSurtidos   bool `json:"postresSurtidos"`
}

// Selection is the mutable state of one in-progress reservation form. The
// pricing engine derives a Breakdown from it on every relevant mutation.
type Selection struct {
	GuestCount    int    `json:"guestCount" validate:"min=0,max=500"`
	RoomType      string `json:"roomType"`
	FoodType      string `json:"foodType"`
	BreakfastType string `json:"breakfastType,omitempty"`
	DessertType   string `json:"dessertType,omitempty"`

	Buffet    *BuffetChoices    `json:"buffet,omitempty"`
	Breakfast *BreakfastChoices `json:"breakfast,omitempty"`
	Dessert   *DessertChoices   `json:"dessert,omitempty"`

	// BuffetPricePerPerson is entered by staff; buffet prices are negotiated
	// per event, not catalog-fixed.
	BuffetPricePerPerson decimal.Decimal `json:"buffetPricePerPerson,omitempty"`

	Beverages          map[string]SelectionItem `json:"beverages"`
	Entremeses         map[string]SelectionItem `json:"entremeses"`
	AdditionalServices map[string]bool          `json:"additionalServices"`

	TipPercent          decimal.Decimal `json:"tipPercentage"`
	Deposit             DepositChoice   `json:"depositPercentage"`
	DepositCustomAmount decimal.Decimal `json:"depositCustomAmount,omitempty"`
}

// IsBuffet reports whether a food type belongs to the buffet family.
func IsBuffet(foodType string) bool {
	return strings.HasPrefix(foodType, "buffet")
}

// IsBreakfast reports whether a food type belongs to the breakfast family.
func IsBreakfast(foodType string) bool {
	return strings.HasPrefix(foodType, "desayuno")
}

// IsDessert reports whether a dessert type is active.
func IsDessert(dessertType string) bool {
	return dessertType == "postres"
}

// Normalize prunes empty selection entries and unchecked services, drops
// sub-selections of inactive food families and floors negative percentages.
// This is the single normalization step applied before a save; zero-quantity
// entries never reach storage.
func (s *Selection) Normalize() {
	for id, item := range s.Beverages {
		if item.Empty() {
			delete(s.Beverages, id)
		}
	}
	for id, item := range s.Entremeses {
		if item.Empty() {
			delete(s.Entremeses, id)
		}
	}
	for key, on := range s.AdditionalServices {
		if !on {
			delete(s.AdditionalServices, key)
		}
	}
	if s.Beverages == nil {
		s.Beverages = map[string]SelectionItem{}
	}
	if s.Entremeses == nil {
		s.Entremeses = map[string]SelectionItem{}
	}
	if s.AdditionalServices == nil {
		s.AdditionalServices = map[string]bool{}
	}

	if !IsBuffet(s.FoodType) {
		s.Buffet = nil
		s.BuffetPricePerPerson = decimal.Zero
	}
	if !IsBreakfast(s.BreakfastType) {
		s.Breakfast = nil
	}
	if !IsDessert(s.DessertType) {
		s.Dessert = nil
	}

	if s.TipPercent.IsNegative() {
		s.TipPercent = decimal.Zero
	}
	if s.Deposit.Percent.IsNegative() {
		s.Deposit.Percent = decimal.Zero
	}
	if s.DepositCustomAmount.IsNegative() {
		s.DepositCustomAmount = decimal.Zero
	}
	if !s.Deposit.Custom {
		s.DepositCustomAmount = decimal.Zero
	}
}

// Clone returns a deep copy; ledger operations never share maps with callers.
func (s *Selection) Clone() *Selection {
	out := *s
	if s.Buffet != nil {
		b := *s.Buffet
		out.Buffet = &b
	}
	if s.Breakfast != nil {
		b := *s.Breakfast
		out.Breakfast = &b
	}
	if s.Dessert != nil {
		d := *s.Dessert
		out.Dessert = &d
	}
	out.Beverages = make(map[string]SelectionItem, len(s.Beverages))
	for id, item := range s.Beverages {
		out.Beverages[id] = item
	}
	out.Entremeses = make(map[string]SelectionItem, len(s.Entremeses))
	for id, item := range s.Entremeses {
		out.Entremeses[id] = item
	}
	out.AdditionalServices = make(map[string]bool, len(s.AdditionalServices))
	for key, on := range s.AdditionalServices {
		out.AdditionalServices[key] = on
	}
	return &out
}
