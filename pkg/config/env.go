package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvSeatCount          = "SEAT_COUNT"
	EnvOpenTime           = "OPEN_TIME"
	EnvCloseTime          = "CLOSE_TIME"
	EnvSlotIntervalMin    = "SLOT_INTERVAL_MIN"
	EnvDefaultDurationMin = "DEFAULT_DURATION_MIN"
	EnvSlotLockTTL        = "SLOT_LOCK_TTL"
	EnvSeatTokenKey       = "SEAT_TOKEN_KEY"

	EnvReservationsURL = "RESERVATIONS_URL"
	EnvOrdersURL       = "ORDERS_URL"

	EnvReservationEventsTopic = "RESERVATION_EVENTS_TOPIC"
	EnvOrderEventsTopic       = "ORDER_EVENTS_TOPIC"
	EnvEventsDLQTopic         = "EVENTS_DLQ_TOPIC"
)
