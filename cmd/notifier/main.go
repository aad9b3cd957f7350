package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"ashiyu/internal/notifier/handler"
	"ashiyu/pkg/config"
	"ashiyu/pkg/kafka"
	kafka_config "ashiyu/pkg/kafka/config"
	kafka_middleware "ashiyu/pkg/kafka/middleware"
)

const (
	ServiceName   = "notifier"
	ConsumerGroup = "ashiyu-notifier"
)

// The notifier consumes reservation and order events and surfaces them
// to staff. It serves no HTTP traffic.
func main() {
	cfg := config.Load(ServiceName)

	kafkaCfg := kafka_config.Load()
	kafkaCfg.LogConfiguration(cfg.Log.Info)

	eventHandler := handler.NewEventHandler(cfg.Log)

	consumers := []*kafka.Consumer{
		newConsumer(cfg, kafkaCfg, cfg.ReservationEventsTopic, eventHandler),
		newConsumer(cfg, kafkaCfg, cfg.OrderEventsTopic, eventHandler),
	}

	ctx, cancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	for _, consumer := range consumers {
		wg.Add(1)
		go func(c *kafka.Consumer) {
			defer wg.Done()
			if err := c.Start(ctx); err != nil && err != context.Canceled {
				cfg.Log.Error("Consumer stopped", "error", err)
			}
		}(consumer)
	}

	cfg.Log.Info("Notifier service started",
		"topics", []string{cfg.ReservationEventsTopic, cfg.OrderEventsTopic},
		"group", ConsumerGroup,
	)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	sig := <-shutdown

	cfg.Log.Info("Shutdown signal received", "signal", sig)
	cancel()
	wg.Wait()

	for _, consumer := range consumers {
		if err := consumer.Close(); err != nil {
			cfg.Log.Error("Failed to close consumer", "error", err)
		}
	}

	cfg.Log.Info("Notifier stopped gracefully")
}

func newConsumer(cfg *config.Config, kafkaCfg *kafka_config.Config, topic string, eventHandler *handler.EventHandler) *kafka.Consumer {
	consumer, err := kafka.NewConsumer(kafkaCfg, topic, ConsumerGroup, cfg.EventsDLQTopic, eventHandler.Handle)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer", "topic", topic, "error", err)
	}
	consumer.Use(kafka_middleware.LoggingConsumerMiddleware(cfg.Log))
	return consumer
}
