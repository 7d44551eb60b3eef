package main

import (
	"context"
	"errors"
	"log"
	"os"

	"smart-menu/internal/menuservice"
	"smart-menu/internal/menuservice/app/core"
	"smart-menu/internal/mylogger"
)

func main() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "INFO"
	}

	mylog, err := mylogger.New(level)
	if err != nil {
		log.Fatalf("log error: %v", err)
	}
	mylog = mylog.With("service", "smart-menu")
	mylog.Action("service_started").Info("Successfully started")

	if err := menuservice.Execute(context.Background(), mylog, os.Args[1:]); err != nil {
		if errors.Is(err, core.ErrHelp) {
			return
		}
		mylog.Action("service_failed").Error("Error in menu service", err)
		os.Exit(1)
	}
	mylog.Action("service_completed").Info("Successfully completed")
}
