package main

import (
	"ashiyu/internal/board/handler"
	"ashiyu/internal/board/service"
	"ashiyu/pkg/app"
	"ashiyu/pkg/client"
	"ashiyu/pkg/config"
)

const ServiceName = "board"

// The board service owns no storage: it aggregates the reservations and
// orders services into the single staff view.
func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Board service")

	boardService := initServices(cfg)
	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewBoardHandler(boardService, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config) service.BoardService {
	reservationClient := client.NewReservationClient(cfg.ReservationsURL)
	orderClient := client.NewOrderClient(cfg.OrdersURL)

	boardService := service.NewBoardService(reservationClient, orderClient, cfg)

	cfg.Log.Info("Board service initialized",
		"reservations_url", cfg.ReservationsURL,
		"orders_url", cfg.OrdersURL,
	)
	return boardService
}
