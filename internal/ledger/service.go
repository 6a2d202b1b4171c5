// Package ledger owns the reservation collection. Every mutation — create,
// update, delete, deposit toggle, payment record and payment delete — goes
// through the Service, which recomputes pricing before each save, enforces
// the payment invariants and persists the full collection through the store.
package ledger

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/derekgf27/AntesalaReservationsDemo/internal/ledger/validator"
	"github.com/derekgf27/AntesalaReservationsDemo/internal/pricing"
	"github.com/derekgf27/AntesalaReservationsDemo/internal/storage"
	apperrors "github.com/derekgf27/AntesalaReservationsDemo/pkg/errors"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/events"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/logger"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// paymentEpsilon tolerates sub-cent noise when comparing paid amounts against
// the total. A payment exceeding the remaining balance by more than this is
// rejected; anything within it is clamped to the exact balance.
var paymentEpsilon = decimal.RequireFromString("0.01")

type Service struct {
	mu           sync.Mutex
	reservations []model.Reservation

	store     storage.Store
	catalog   pricing.Catalog
	validator *validator.Validator
	publisher events.Publisher
	log       *logger.Logger

	now   func() time.Time
	newID func() string
}

func NewService(store storage.Store, cat pricing.Catalog, v *validator.Validator, pub events.Publisher, log *logger.Logger) *Service {
	return &Service{
		store:     store,
		catalog:   cat,
		validator: v,
		publisher: pub,
		log:       log,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Load reads the persisted collection into memory. Call once at startup.
func (s *Service) Load(ctx context.Context) error {
	reservations, err := s.store.LoadAll(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.reservations = reservations
	s.mu.Unlock()
	s.log.Info("Reservations loaded", "count", len(reservations))
	return nil
}

// Create validates, prices and persists a new reservation. The client and
// event fields are frozen for the reservation's lifetime.
func (s *Service) Create(ctx context.Context, details model.ClientDetails, sel model.Selection) (*model.Reservation, error) {
	selCopy := *sel.Clone()
	selCopy.Normalize()

	if err := s.validator.ValidateReservation(&details, &selCopy); err != nil {
		return nil, err
	}
	breakdown := pricing.Compute(&selCopy, details.EventDuration, s.catalog)

	s.mu.Lock()
	defer s.mu.Unlock()

	reservation := model.Reservation{
		ID:                 s.nextReservationID(),
		ClientDetails:      details,
		Selection:          selCopy,
		Pricing:            breakdown,
		AdditionalPayments: []model.Payment{},
		CreatedAt:          s.now().UTC(),
	}

	next := append(s.snapshot(), reservation)
	if err := s.store.SaveAll(ctx, next); err != nil {
		return nil, err
	}
	s.reservations = next

	s.log.Info("Reservation created", "id", reservation.ID, "client", reservation.ClientName,
		"total", breakdown.TotalCost)
	s.publisher.Publish(ctx, events.ChangeEvent{Type: events.TypeCreated, ReservationID: reservation.ID})
	return reservation.Clone(), nil
}

// Update replaces the mutable selection of an existing reservation and
// recomputes its pricing. Identity, client fields, creation time and the
// whole payment ledger stay untouched.
func (s *Service) Update(ctx context.Context, id string, sel model.Selection) (*model.Reservation, error) {
	selCopy := *sel.Clone()
	selCopy.Normalize()

	updated, err := s.mutate(ctx, id, func(r *model.Reservation) error {
		if err := s.validator.ValidateReservation(&r.ClientDetails, &selCopy); err != nil {
			return err
		}
		r.Selection = selCopy
		r.Pricing = pricing.Compute(&selCopy, r.EventDuration, s.catalog)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Reservation updated", "id", id, "total", updated.Pricing.TotalCost)
	s.publisher.Publish(ctx, events.ChangeEvent{Type: events.TypeUpdated, ReservationID: id})
	return updated, nil
}

// Delete removes a reservation. The confirmed flag is the second step of the
// two-step confirmation; without it the call is refused.
func (s *Service) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return apperrors.ConfirmationRequired("deleting a reservation requires confirmation")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return apperrors.NotFoundWithID("reservation", id)
	}

	next := s.snapshot()
	next = append(next[:idx], next[idx+1:]...)
	if err := s.store.SaveAll(ctx, next); err != nil {
		return err
	}
	s.reservations = next

	s.log.Info("Reservation deleted", "id", id)
	s.publisher.Publish(ctx, events.ChangeEvent{Type: events.TypeDeleted, ReservationID: id})
	return nil
}

// ToggleDeposit flips the deposit-paid flag. Refused on a fully paid
// reservation, and refused when marking the deposit paid would push the total
// paid above the total cost.
func (s *Service) ToggleDeposit(ctx context.Context, id string) (*model.Reservation, error) {
	updated, err := s.mutate(ctx, id, func(r *model.Reservation) error {
		if isSettled(r.RemainingBalance()) {
			return apperrors.PaymentRule("the reservation is fully paid; the deposit can no longer be toggled")
		}
		if !r.DepositPaid {
			wouldPay := r.TotalPaid().Add(r.Pricing.DepositAmount)
			if wouldPay.GreaterThan(r.Pricing.TotalCost.Add(paymentEpsilon)) {
				return apperrors.PaymentRule("marking the deposit paid would exceed the total cost")
			}
			r.DepositPaid = true
			r.DepositPaymentDate = s.today()
			return nil
		}
		r.DepositPaid = false
		r.DepositPaymentDate = ""
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Deposit toggled", "id", id, "depositPaid", updated.DepositPaid)
	s.publisher.Publish(ctx, events.ChangeEvent{Type: events.TypeDepositToggled, ReservationID: id})
	return updated, nil
}

// RecordPayment appends a payment against the remaining balance. Amounts
// beyond the balance plus the epsilon are rejected; amounts within it are
// clamped to the exact balance. A payment that settles the reservation while
// the deposit is still unmarked flips the deposit paid automatically, since
// the fully-paid guard would otherwise leave it frozen unpaid forever.
func (s *Service) RecordPayment(ctx context.Context, id string, amount decimal.Decimal, date, notes string) (*model.Reservation, error) {
	if !amount.IsPositive() {
		return nil, apperrors.InvalidInput("payment amount must be greater than zero")
	}
	if date == "" {
		date = s.today()
	}

	updated, err := s.mutate(ctx, id, func(r *model.Reservation) error {
		remaining := r.RemainingBalance()
		if amount.GreaterThan(remaining.Add(paymentEpsilon)) {
			return apperrors.PaymentRule("payment exceeds the remaining balance").WithDetails(map[string]any{
				"amount":           amount,
				"remainingBalance": remaining,
			})
		}

		applied := amount
		if applied.GreaterThan(remaining) {
			applied = remaining
		}

		r.AdditionalPayments = append(r.AdditionalPayments, model.Payment{
			ID:        s.newID(),
			Amount:    applied,
			Date:      date,
			Notes:     notes,
			Timestamp: s.now().UTC(),
		})

		if !r.DepositPaid && isSettled(r.Pricing.TotalCost.Sub(r.TotalPaid())) {
			r.DepositPaid = true
			r.DepositPaymentDate = date
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Payment recorded", "id", id, "amount", amount, "remaining", updated.RemainingBalance())
	s.publisher.Publish(ctx, events.ChangeEvent{Type: events.TypePaymentRecorded, ReservationID: id})
	return updated, nil
}

// DeletePayment removes one payment by index after confirmation. It does not
// revert an automatically flipped deposit flag; unmarking the deposit again
// is a deliberate, separate action.
func (s *Service) DeletePayment(ctx context.Context, id string, index int, confirmed bool) (*model.Reservation, error) {
	if !confirmed {
		return nil, apperrors.ConfirmationRequired("deleting a payment requires confirmation")
	}

	updated, err := s.mutate(ctx, id, func(r *model.Reservation) error {
		if index < 0 || index >= len(r.AdditionalPayments) {
			return apperrors.NotFoundWithID("payment", strconv.Itoa(index))
		}
		r.AdditionalPayments = append(r.AdditionalPayments[:index], r.AdditionalPayments[index+1:]...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Payment deleted", "id", id, "index", index)
	s.publisher.Publish(ctx, events.ChangeEvent{Type: events.TypePaymentDeleted, ReservationID: id})
	return updated, nil
}

// Get returns one reservation by id.
func (s *Service) Get(id string) (*model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, apperrors.NotFoundWithID("reservation", id)
	}
	return s.reservations[idx].Clone(), nil
}

// GetAll returns the collection ordered by event date, then time.
func (s *Service) GetAll() []*model.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.Reservation, len(s.reservations))
	for i := range s.reservations {
		out[i] = s.reservations[i].Clone()
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].EventDate != out[j].EventDate {
			return out[i].EventDate < out[j].EventDate
		}
		return out[i].EventTime < out[j].EventTime
	})
	return out
}

// Stats summarizes the collection for the dashboard.
type Stats struct {
	TotalReservations  int             `json:"totalReservations"`
	Upcoming           int             `json:"upcoming"`
	TotalGuests        int             `json:"totalGuests"`
	ReservationsByRoom map[string]int  `json:"reservationsByRoom"`
	TotalBooked        decimal.Decimal `json:"totalBooked"`
	TotalCollected     decimal.Decimal `json:"totalCollected"`
	TotalOutstanding   decimal.Decimal `json:"totalOutstanding"`
}

func (s *Service) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.today()
	stats := Stats{
		TotalReservations:  len(s.reservations),
		ReservationsByRoom: map[string]int{},
		TotalBooked:        decimal.Zero,
		TotalCollected:     decimal.Zero,
		TotalOutstanding:   decimal.Zero,
	}
	for i := range s.reservations {
		r := &s.reservations[i]
		if r.EventDate >= today {
			stats.Upcoming++
		}
		stats.TotalGuests += r.GuestCount
		if r.RoomType != "" {
			stats.ReservationsByRoom[r.RoomType]++
		}
		stats.TotalBooked = stats.TotalBooked.Add(r.Pricing.TotalCost)
		stats.TotalCollected = stats.TotalCollected.Add(r.TotalPaid())
		stats.TotalOutstanding = stats.TotalOutstanding.Add(r.RemainingBalance())
	}
	return stats
}

// mutate applies fn to a copy of the reservation, persists the resulting
// collection and only then swaps it in. A failed save leaves the in-memory
// state exactly as it was.
func (s *Service) mutate(ctx context.Context, id string, fn func(r *model.Reservation) error) (*model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, apperrors.NotFoundWithID("reservation", id)
	}

	changed := s.reservations[idx].Clone()
	if err := fn(changed); err != nil {
		return nil, err
	}

	next := s.snapshot()
	next[idx] = *changed
	if err := s.store.SaveAll(ctx, next); err != nil {
		return nil, err
	}
	s.reservations = next
	return changed.Clone(), nil
}

func (s *Service) snapshot() []model.Reservation {
	next := make([]model.Reservation, len(s.reservations))
	copy(next, s.reservations)
	return next
}

func (s *Service) indexOf(id string) int {
	for i := range s.reservations {
		if s.reservations[i].ID == id {
			return i
		}
	}
	return -1
}

// nextReservationID derives a millisecond-timestamp id, bumping on the rare
// collision within the same millisecond. Caller holds the lock.
func (s *Service) nextReservationID() string {
	base := s.now().UnixMilli()
	for offset := int64(0); ; offset++ {
		id := strconv.FormatInt(base+offset, 10)
		if s.indexOf(id) < 0 {
			return id
		}
	}
}

func (s *Service) today() string {
	return s.now().UTC().Format(model.DateLayout)
}

func isSettled(remaining decimal.Decimal) bool {
	return remaining.Abs().LessThanOrEqual(paymentEpsilon)
}
