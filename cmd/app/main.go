package main

import (
	"fmt"
	"log/slog"
	"os"

	"coffeequeue/cmd"
	_ "coffeequeue/docs"
	httpadapter "coffeequeue/internal/adapters/in/http"

	"github.com/labstack/gommon/log"
)

//	@title			Coffee Queue API
//	@version		1.0
//	@description	Order-queue coordination for a single retail coffee counter.

func main() {
	configs := cmd.LoadConfig()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := cmd.OpenDatabase(configs)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	defer func() {
		if closeErr := cmd.CloseDatabase(db); closeErr != nil {
			logger.Error("Failed to close database", "error", closeErr)
		}
	}()

	root := cmd.NewCompositionRoot(configs, db)

	if configs.QueueMonitorEnabled {
		jobManager := root.CreateJobManager(logger)
		if err = jobManager.StartAll(); err != nil {
			log.Fatalf("Error starting jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&root, logger, configs.HTTPPort)
}

func startWebServer(root *cmd.CompositionRoot, logger *slog.Logger, port string) {
	e := httpadapter.NewRouter(root.CreateHTTPServer(), logger)
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
