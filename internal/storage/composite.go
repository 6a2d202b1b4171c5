package storage

import (
	"context"

	"github.com/derekgf27/AntesalaReservationsDemo/pkg/logger"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/model"
)

// CompositeStore pairs a remote store with a local file store. Reads prefer
// the remote copy and fall back to the local one when it is unreachable.
// Writes always land locally first so no mutation is ever lost; the remote
// write is best-effort and a failure only logs a warning.
type CompositeStore struct {
	remote Store
	local  Store
	log    *logger.Logger
}

func NewCompositeStore(remote, local Store, log *logger.Logger) *CompositeStore {
	return &CompositeStore{remote: remote, local: local, log: log}
}

func (s *CompositeStore) LoadAll(ctx context.Context) ([]model.Reservation, error) {
	reservations, err := s.remote.LoadAll(ctx)
	if err != nil {
		s.log.Warn("Remote store load failed, falling back to local", "error", err)
		return s.local.LoadAll(ctx)
	}
	return reservations, nil
}

func (s *CompositeStore) SaveAll(ctx context.Context, reservations []model.Reservation) error {
	if err := s.local.SaveAll(ctx, reservations); err != nil {
		return err
	}
	if err := s.remote.SaveAll(ctx, reservations); err != nil {
		s.log.Warn("Remote store save failed, local copy is current", "error", err)
	}
	return nil
}

func (s *CompositeStore) LoadCustomBeverages(ctx context.Context) ([]model.CatalogItem, error) {
	items, err := s.remote.LoadCustomBeverages(ctx)
	if err != nil {
		s.log.Warn("Remote custom beverage load failed, falling back to local", "error", err)
		return s.local.LoadCustomBeverages(ctx)
	}
	return items, nil
}

func (s *CompositeStore) SaveCustomBeverages(ctx context.Context, items []model.CatalogItem) error {
	if err := s.local.SaveCustomBeverages(ctx, items); err != nil {
		return err
	}
	if err := s.remote.SaveCustomBeverages(ctx, items); err != nil {
		s.log.Warn("Remote custom beverage save failed, local copy is current", "error", err)
	}
	return nil
}
