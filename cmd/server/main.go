package main

import (
	"context"
	"log"
	"os"
	"runtime/debug"

	internalassets "github.com/sevaops/temple-console/internal/assets"
	"github.com/sevaops/temple-console/internal/server"
	"github.com/sevaops/temple-console/modules"
	"github.com/sevaops/temple-console/pkg/apiclient"
	"github.com/sevaops/temple-console/pkg/application"
	"github.com/sevaops/temple-console/pkg/configuration"
	"github.com/sevaops/temple-console/pkg/eventbus"
	"github.com/sevaops/temple-console/pkg/logging"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	if conf.OpenTelemetry.Enabled {
		cleanup := logging.SetupTracing(
			context.Background(),
			conf.OpenTelemetry.ServiceName,
			conf.OpenTelemetry.TempoURL,
		)
		defer cleanup()
		logger.Info("OpenTelemetry tracing enabled, exporting to Tempo at " + conf.OpenTelemetry.TempoURL)
	}

	api, err := apiclient.New(apiclient.Options{
		BaseURL:         conf.API.BaseURL,
		PathPrefix:      conf.API.PathPrefix,
		Timeout:         conf.API.Timeout,
		RetryCount:      conf.API.RetryCount,
		RequestIDHeader: conf.RequestIDHeader,
		Logger:          logger,
	})
	if err != nil {
		log.Fatalf("failed to create backend client: %v", err)
	}

	app := application.New(&application.ApplicationOptions{
		Bundle:   application.LoadBundle(),
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
		API:      api,
	})
	if err := modules.Load(app, modules.BuiltInModules...); err != nil {
		log.Fatalf("failed to load modules: %v", err)
	}

	app.RegisterNavItems(modules.NavLinks...)
	app.RegisterHashFsAssets(internalassets.HashFS)

	serverInstance, err := server.Default(&server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
	})
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}
	log.Printf("Listening on: %s\n", conf.Origin)
	if err := serverInstance.Start(conf.SocketAddress); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
