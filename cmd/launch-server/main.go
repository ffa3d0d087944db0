package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/half-nothing/simple-launch/internal/base"
	"github.com/half-nothing/simple-launch/internal/catalog"
	"github.com/half-nothing/simple-launch/internal/catalog/store"
	"github.com/half-nothing/simple-launch/internal/database"
	"github.com/half-nothing/simple-launch/internal/http_server"
	"github.com/half-nothing/simple-launch/internal/interfaces"
	"github.com/half-nothing/simple-launch/internal/interfaces/global"
)

func recoverFromError() {
	if r := recover(); r != nil {
		fmt.Printf("It looks like there are some serious errors, the details are as follows: %v", r)
	}
}

func main() {
	flag.Parse()

	defer recoverFromError()

	logger := base.NewLogger()
	logger.Init(*global.DebugMode)

	logger.InfoF("Launch server v%s initializing...", global.AppVersion)

	cleaner := base.NewCleaner(logger)
	cleaner.Init()
	defer cleaner.Clean()

	configManager := base.NewManager(logger)
	config, result := configManager.Load()
	if result.IsFail() {
		logger.FatalF("Error occurred while loading configuration, details: %v", result.Error())
		cleaner.MarkFailed()
		return
	}

	shutdownCallback, databaseOperation, err := database.ConnectDatabase(logger, config, *global.DebugMode)
	if err != nil {
		logger.FatalF("Error occurred while initializing database, details: %v", err)
		cleaner.MarkFailed()
		return
	}

	cleaner.Add(shutdownCallback)

	catalogConfig := config.Catalog
	importer := catalog.NewImporter(
		logger,
		catalogConfig,
		databaseOperation.LaunchOperation(),
		catalog.NewClient(catalogConfig),
		store.NewSnapshotStore(logger, catalogConfig.Snapshot),
		catalog.NewEmailReporter(logger, catalogConfig.Email),
	)

	applicationContent := interfaces.NewApplicationContent(configManager, cleaner, logger, databaseOperation, importer)

	if catalogConfig.ImportOnStartup {
		if _, err := importer.Load(context.Background(), false); err != nil {
			logger.ErrorF("Launch catalog import failed, the server starts without it: %v", err)
		}
	}

	http_server.StartHttpServer(applicationContent)
}
