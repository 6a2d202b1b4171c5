// Package events publishes reservation change notifications to Kafka. The
// feed replaces the remote store's listener channel: consumers see every
// create, update, delete and payment mutation keyed by reservation id.
// Publishing is fire-and-forget; the ledger never fails an operation because
// the feed is down.
package events

import (
	"time"
)

const (
	TypeCreated         = "reservation.created"
	TypeUpdated         = "reservation.updated"
	TypeDeleted         = "reservation.deleted"
	TypePaymentRecorded = "reservation.payment_recorded"
	TypePaymentDeleted  = "reservation.payment_deleted"
	TypeDepositToggled  = "reservation.deposit_toggled"
)

type ChangeEvent struct {
	Type          string    `json:"type"`
	ReservationID string    `json:"reservationId"`
	At            time.Time `json:"at"`
}
