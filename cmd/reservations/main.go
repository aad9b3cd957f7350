package main

import (
	"ashiyu/internal/reservations/handler"
	"ashiyu/internal/reservations/repository"
	"ashiyu/internal/reservations/service"
	"ashiyu/internal/reservations/validator"
	"ashiyu/pkg/app"
	"ashiyu/pkg/config"
	"ashiyu/pkg/events"
	"ashiyu/pkg/kafka"
	kafka_config "ashiyu/pkg/kafka/config"
	kafka_middleware "ashiyu/pkg/kafka/middleware"
)

const ServiceName = "reservations"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Reservations service")

	producer := initProducer(cfg)
	defer producer.Close()

	reservationService := initServices(cfg, producer)
	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewReservationHandler(reservationService, cfg.Log))
	serverApp.Run()
}

func initProducer(cfg *config.Config) *kafka.Producer {
	kafkaCfg := kafka_config.Load()
	kafkaCfg.LogConfiguration(cfg.Log.Info)

	producer, err := kafka.NewProducer(kafkaCfg, cfg.ReservationEventsTopic, cfg.EventsDLQTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))

	return producer
}

func initServices(cfg *config.Config, producer *kafka.Producer) service.ReservationService {
	reservationValidator := validator.NewReservationValidator(cfg.Log)
	reservationRepo := repository.NewMongoReservationRepository(cfg)
	lockRepo := repository.NewSlotLockRepository(cfg)
	notifier := events.NewKafkaNotifier(producer, nil, ServiceName, cfg.Log)

	reservationService, err := service.NewReservationService(
		reservationRepo,
		lockRepo,
		reservationValidator,
		notifier,
		cfg,
	)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize reservation service", "error", err)
	}

	cfg.Log.Info("Reservation service initialized",
		"database", cfg.MongoDatabaseName,
		"seat_count", cfg.SeatCount,
		"open_time", cfg.OpenTime,
		"close_time", cfg.CloseTime,
	)
	return reservationService
}
