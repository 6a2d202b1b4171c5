package storage

import (
	"context"
	"encoding/json"

	apperrors "github.com/derekgf27/AntesalaReservationsDemo/pkg/errors"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/logger"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore persists the collection in MongoDB. Saves are last-write-wins:
// every reservation in the list is upserted by id and anything absent from
// the list is deleted, behind the same wipe guard as the file store.
//
// Documents round-trip through relaxed extended JSON so the JSON struct tags
// stay the single source of field names.
type MongoStore struct {
	reservations *mongo.Collection
	custom       *mongo.Collection
	log          *logger.Logger
}

func NewMongoStore(db *mongo.Database, reservationsCollection string, log *logger.Logger) *MongoStore {
	return &MongoStore{
		reservations: db.Collection(reservationsCollection),
		custom:       db.Collection(reservationsCollection + "_custom_beverages"),
		log:          log,
	}
}

func (s *MongoStore) LoadAll(ctx context.Context) ([]model.Reservation, error) {
	raws, err := s.loadRaw(ctx, s.reservations)
	if err != nil {
		return nil, apperrors.Internal("failed to load reservations from mongodb", err)
	}

	reservations, dropped := decodeReservations(raws)
	if dropped > 0 {
		s.log.Warn("Dropped malformed reservation documents on load",
			"collection", s.reservations.Name(), "dropped", dropped, "kept", len(reservations))
	}
	return reservations, nil
}

func (s *MongoStore) SaveAll(ctx context.Context, reservations []model.Reservation) error {
	prev, err := s.reservations.CountDocuments(ctx, bson.M{})
	if err != nil {
		return apperrors.Internal("failed to count reservation documents", err)
	}
	if err := guardAgainstWipe(int(prev), len(reservations)); err != nil {
		return err
	}

	keep := make([]string, 0, len(reservations))
	for _, r := range reservations {
		keep = append(keep, r.ID)
		doc, err := toDocument(&r, r.ID)
		if err != nil {
			return apperrors.Internal("failed to encode reservation document", err)
		}
		_, err = s.reservations.ReplaceOne(ctx,
			bson.M{"_id": r.ID}, doc, options.Replace().SetUpsert(true))
		if err != nil {
			return apperrors.Internal("failed to upsert reservation document", err)
		}
	}

	_, err = s.reservations.DeleteMany(ctx, bson.M{"_id": bson.M{"$nin": keep}})
	if err != nil {
		return apperrors.Internal("failed to delete removed reservation documents", err)
	}
	return nil
}

func (s *MongoStore) LoadCustomBeverages(ctx context.Context) ([]model.CatalogItem, error) {
	raws, err := s.loadRaw(ctx, s.custom)
	if err != nil {
		return nil, apperrors.Internal("failed to load custom beverages from mongodb", err)
	}

	items := make([]model.CatalogItem, 0, len(raws))
	for _, raw := range raws {
		var item model.CatalogItem
		if err := json.Unmarshal(raw, &item); err != nil || item.ID == "" {
			s.log.Warn("Dropped malformed custom beverage document", "error", err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *MongoStore) SaveCustomBeverages(ctx context.Context, items []model.CatalogItem) error {
	keep := make([]string, 0, len(items))
	for _, item := range items {
		keep = append(keep, item.ID)
		doc, err := toDocument(&item, item.ID)
		if err != nil {
			return apperrors.Internal("failed to encode custom beverage document", err)
		}
		_, err = s.custom.ReplaceOne(ctx,
			bson.M{"_id": item.ID}, doc, options.Replace().SetUpsert(true))
		if err != nil {
			return apperrors.Internal("failed to upsert custom beverage document", err)
		}
	}

	_, err := s.custom.DeleteMany(ctx, bson.M{"_id": bson.M{"$nin": keep}})
	if err != nil {
		return apperrors.Internal("failed to delete removed custom beverage documents", err)
	}
	return nil
}

// loadRaw streams every document of a collection as relaxed extended JSON.
func (s *MongoStore) loadRaw(ctx context.Context, coll *mongo.Collection) ([]json.RawMessage, error) {
	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var raws []json.RawMessage
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		data, err := bson.MarshalExtJSON(doc, false, false)
		if err != nil {
			return nil, err
		}
		raws = append(raws, data)
	}
	return raws, cursor.Err()
}

// toDocument converts a JSON-tagged value into a BSON document keyed by id.
func toDocument(v any, id string) (bson.M, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.UnmarshalExtJSON(data, false, &doc); err != nil {
		return nil, err
	}
	doc["_id"] = id
	return doc, nil
}
