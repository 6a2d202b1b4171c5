package main

import (
	"context"

	"github.com/derekgf27/AntesalaReservationsDemo/internal/catalog"
	"github.com/derekgf27/AntesalaReservationsDemo/internal/invoice"
	"github.com/derekgf27/AntesalaReservationsDemo/internal/ledger"
	"github.com/derekgf27/AntesalaReservationsDemo/internal/ledger/validator"
	"github.com/derekgf27/AntesalaReservationsDemo/internal/reservations/handler"
	"github.com/derekgf27/AntesalaReservationsDemo/internal/storage"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/app"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/config"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/events"
)

func main() {
	cfg := config.Load("reservations")
	log := cfg.Log

	fileStore := storage.NewFileStore(cfg.ReservationsPath(), cfg.CustomBeveragesPath(), log)
	var store storage.Store = fileStore
	if cfg.MongoEnabled {
		cfg.SetMongo()
		db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
		store = storage.NewCompositeStore(storage.NewMongoStore(db, cfg.MongoCollection(), log), fileStore, log)
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.KafkaEnabled {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, log)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("Failed to close event publisher", "error", err)
		}
	}()

	ctx := context.Background()

	cat := catalog.New(store, log)
	if err := cat.LoadCustom(ctx); err != nil {
		log.Fatal("Failed to load custom beverages", "error", err)
	}

	svc := ledger.NewService(store, cat, validator.New(), publisher, log)
	if err := svc.Load(ctx); err != nil {
		log.Fatal("Failed to load reservations", "error", err)
	}

	application := app.NewApplication(cfg)
	application.SetApp(handler.New(svc, cat, invoice.NewGenerator(cat, log), log))
	application.Run()
}
