package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for event and payment dates.
const DateLayout = "2006-01-02"

// ClientDetails are the fields fixed at reservation creation. They never
// change on edit.
type ClientDetails struct {
	ClientName     string `json:"clientName" validate:"required"`
	ClientEmail    string `json:"clientEmail,omitempty" validate:"omitempty,email"`
	ClientPhone    string `json:"clientPhone" validate:"required"`
	EventDate      string `json:"eventDate" validate:"required,datetime=2006-01-02"`
	EventTime      string `json:"eventTime" validate:"required"`
	EventType      string `json:"eventType,omitempty"`
	OtherEventType string `json:"otherEventType,omitempty"`
	EventDuration  int    `json:"eventDuration,omitempty" validate:"omitempty,min=1,max=24"`
	CompanyName    string `json:"companyName,omitempty"`
}

// Payment is one entry of the append-style payment list. Entries are only
// ever removed by an explicit, confirmed delete-by-index.
type Payment struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	Notes     string          `json:"notes,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// Reservation is a persisted booking: frozen client/event identity, the
// current selection, the pricing breakdown computed from that selection at
// the last save, and the payment ledger. All mutation goes through the
// reservation ledger service.
type Reservation struct {
	ID string `json:"id"`

	ClientDetails
	Selection

	Pricing Breakdown `json:"pricing"`

	DepositPaid        bool      `json:"depositPaid"`
	DepositPaymentDate string    `json:"depositPaymentDate,omitempty"`
	AdditionalPayments []Payment `json:"additionalPayments"`

	CreatedAt time.Time `json:"createdAt"`
}

// TotalPaid is derived, never stored: the deposit when marked paid plus the
// sum of additional payments.
func (r *Reservation) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	if r.DepositPaid {
		total = total.Add(r.Pricing.DepositAmount)
	}
	for _, p := range r.AdditionalPayments {
		total = total.Add(p.Amount)
	}
	return total
}

// RemainingBalance is TotalCost minus TotalPaid, floored at zero.
func (r *Reservation) RemainingBalance() decimal.Decimal {
	rem := r.Pricing.TotalCost.Sub(r.TotalPaid())
	if rem.IsNegative() {
		return decimal.Zero
	}
	return rem
}

// Clone returns a deep copy safe to hand to callers.
func (r *Reservation) Clone() *Reservation {
	out := *r
	out.Selection = *r.Selection.Clone()
	out.AdditionalPayments = make([]Payment, len(r.AdditionalPayments))
	copy(out.AdditionalPayments, r.AdditionalPayments)
	return &out
}
