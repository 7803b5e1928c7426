package main

import (
	"context"
	"time"

	"github.com/spf13/pflag"

	"github.com/shandysiswandi/paywatch/internal/app"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to the config file (default /config/config.yaml, ./config/config.yaml when LOCAL=true)")
	pflag.Parse()

	application := app.New(*configPath) // Initialize the application
	wait := application.Start()         // Start the application and wait for the termination signal
	<-wait                              // Wait for the application to receive a termination signal

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	application.Stop(ctx) // Stop the application gracefully
}
