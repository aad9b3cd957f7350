package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "ashiyu"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 30
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// Venue layout observed in production: 12 foot-bath seats, a 10 minute
	// scheduling grid across 10:00-20:00, 30 minute default stay.
	DefaultSeatCount          = 12
	DefaultOpenTime           = "10:00"
	DefaultCloseTime          = "20:00"
	DefaultSlotIntervalMin    = 10
	DefaultDefaultDurationMin = 30
	DefaultSlotLockTTL        = 10 * time.Second

	DefaultReservationsURL = "http://localhost:8081"
	DefaultOrdersURL       = "http://localhost:8082"

	DefaultReservationEventsTopic = "ashiyu.reservations"
	DefaultOrderEventsTopic       = "ashiyu.orders"
	DefaultEventsDLQTopic         = "ashiyu.events.dlq"

	DefaultPaginationLimit = 100
)

// Payment methods accepted at the register.
const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentTransfer = "transfer"
)
