package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/shopgrid/shopgrid/internal/catalog"
	"github.com/shopgrid/shopgrid/internal/config"
	"github.com/shopgrid/shopgrid/internal/logging"
	"github.com/shopgrid/shopgrid/internal/metrics"
	"github.com/shopgrid/shopgrid/internal/model"
	"github.com/shopgrid/shopgrid/internal/query"
	"github.com/shopgrid/shopgrid/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.shopgrid.shopgrid"
	AppName = "ShopGrid"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	log := logging.New("shopgrid")
	defer func() { _ = log.Sync() }()

	log.Info("starting", zap.String("version", version))

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)

	// Instrumentation; the debug listener stays off unless configured
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	if addr := settings.GetMetricsAddress(); addr != "" {
		srv := metrics.Serve(addr, registry, log)
		defer func() { _ = srv.Close() }()
		log.Info("metrics listener started", zap.String("addr", addr))
	}

	// Initialize services
	source := catalog.NewSource(model.GenerateCatalog(), log, m)
	controller := query.NewController(source, log, m)
	defer controller.Close()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, source, controller)

	// Show and run
	myWindow.ShowAndRun()
}
