package main

import (
	"ashiyu/internal/orders/handler"
	"ashiyu/internal/orders/repository"
	"ashiyu/internal/orders/service"
	"ashiyu/internal/orders/validator"
	"ashiyu/pkg/app"
	"ashiyu/pkg/config"
	"ashiyu/pkg/events"
	"ashiyu/pkg/kafka"
	kafka_config "ashiyu/pkg/kafka/config"
	kafka_middleware "ashiyu/pkg/kafka/middleware"
	"ashiyu/pkg/sealer"
)

const ServiceName = "orders"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Orders service")

	producer := initProducer(cfg)
	defer producer.Close()

	orderService := initServices(cfg, producer)
	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewOrderHandler(orderService, cfg.Log))
	serverApp.Run()
}

func initProducer(cfg *config.Config) *kafka.Producer {
	kafkaCfg := kafka_config.Load()
	kafkaCfg.LogConfiguration(cfg.Log.Info)

	producer, err := kafka.NewProducer(kafkaCfg, cfg.OrderEventsTopic, cfg.EventsDLQTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))

	return producer
}

func initServices(cfg *config.Config, producer *kafka.Producer) service.OrderService {
	seatSealer, err := sealer.New(cfg.SeatTokenKey)
	if err != nil {
		cfg.Log.Fatal("Invalid seat token key, set SEAT_TOKEN_KEY to a base64 256-bit key", "error", err)
	}

	orderValidator := validator.NewOrderValidator(cfg.Log)
	orderRepo := repository.NewMongoOrderRepository(cfg)
	orderLogRepo := repository.NewMongoOrderLogRepository(cfg)
	notifier := events.NewKafkaNotifier(nil, producer, ServiceName, cfg.Log)

	orderService := service.NewOrderService(
		orderRepo,
		orderLogRepo,
		orderValidator,
		seatSealer,
		notifier,
		cfg,
	)

	cfg.Log.Info("Order service initialized",
		"database", cfg.MongoDatabaseName,
		"seat_count", cfg.SeatCount,
	)
	return orderService
}
