package main

import (
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/config"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/database"
	logger "github.com/Adi-Yadav1/Aarohan-Backend/internal/logging"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/router"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/services"

	"go.uber.org/zap"
)

func main() {
	// Initialize Logger
	log, err := logger.Init(".")
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// Load configuration (file, env vars, defaults)
	if err := config.Init(".", log); err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize Database and reference data
	database.Init(log)
	database.Seed(log)

	// Start the background rank reconciliation pass
	services.NewRankService(log).Start()

	// Setup router, passing the logger to it
	r := router.Setup(log)

	// Start the Gin server
	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
