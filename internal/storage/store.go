// Package storage persists the reservation collection and the custom
// beverage list. The contract is load-all/save-all: the ledger owns the
// in-memory collection and hands the full list to the store on every
// mutation. Stores filter malformed records on load and refuse writes that
// would wipe a large part of the collection.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	apperrors "github.com/derekgf27/AntesalaReservationsDemo/pkg/errors"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/model"

	"github.com/shopspring/decimal"
)

// Store is the persistence contract consumed by the ledger and the catalog.
type Store interface {
	LoadAll(ctx context.Context) ([]model.Reservation, error)
	SaveAll(ctx context.Context, reservations []model.Reservation) error
	LoadCustomBeverages(ctx context.Context) ([]model.CatalogItem, error)
	SaveCustomBeverages(ctx context.Context, items []model.CatalogItem) error
}

// guardAgainstWipe rejects writes that would drop most of the persisted
// collection in one shot. Deleting a single reservation, or the only one,
// stays legal; an empty write over a populated collection or a bulk deletion
// of more than half of a sizable collection does not.
func guardAgainstWipe(prev, next int) error {
	if prev >= 2 && next == 0 {
		return apperrors.Conflict(fmt.Sprintf(
			"refusing to overwrite %d stored reservations with an empty collection", prev))
	}
	if prev >= 10 && next*2 < prev {
		return apperrors.Conflict(fmt.Sprintf(
			"refusing bulk deletion from %d to %d reservations in a single write", prev, next))
	}
	return nil
}

// recordProbe mirrors the essential fields a loadable reservation must carry.
// Records failing the probe are dropped from the working set, never surfaced.
type recordProbe struct {
	ID         string `json:"id"`
	ClientName string `json:"clientName"`
	Pricing    *struct {
		TotalCost *decimal.Decimal `json:"totalCost"`
	} `json:"pricing"`
}

func (p *recordProbe) wellFormed() bool {
	return p.ID != "" && p.ClientName != "" && p.Pricing != nil && p.Pricing.TotalCost != nil
}

// decodeReservations filters raw JSON documents through the probe and decodes
// the survivors. Returns the reservations and the number of records dropped.
func decodeReservations(raws []json.RawMessage) ([]model.Reservation, int) {
	out := make([]model.Reservation, 0, len(raws))
	dropped := 0
	for _, raw := range raws {
		var probe recordProbe
		if err := json.Unmarshal(raw, &probe); err != nil || !probe.wellFormed() {
			dropped++
			continue
		}
		var r model.Reservation
		if err := json.Unmarshal(raw, &r); err != nil {
			dropped++
			continue
		}
		out = append(out, r)
	}
	return out, dropped
}
