package config

import "time"

const (
	DefaultPort = "8080"

	DefaultDataDir = "./data"

	// Two storage names: ordinary data and an isolated sandbox dataset so
	// demonstration data never mixes with real reservations.
	ReservationsFile        = "antesalaReservations.json"
	SandboxReservationsFile = "antesalaReservations_demo.json"
	CustomBeveragesFile     = "antesalaCustomBeverages.json"

	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "antesala"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultKafkaBrokers = "localhost:9092"
	DefaultKafkaTopic   = "reservation-events"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultDepositPercentValue = 20
	DefaultEventDurationHours  = 4

	MinGuestCount = 1
	MaxGuestCount = 500

	DefaultLogLevel = "info"
)
