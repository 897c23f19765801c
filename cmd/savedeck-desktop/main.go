package main

import (
	"embed"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	// Create an instance of the app structure
	app := NewApp()

	config, err := app.settings.Load()
	if err != nil {
		println("Warning: using default settings:", err.Error())
		config = defaultDesktopConfig()
	}

	// Detect development mode
	isDev := isDevMode()
	debugBuild := isDev || isDevBuild()

	// Configure logger
	logLevel := logger.INFO
	if debugBuild {
		logLevel = logger.DEBUG
	}

	assetServer, err := assetServerOptions(isDev, config.DevServerURL)
	if err != nil {
		println("Error:", err.Error())
		os.Exit(1)
	}

	// Create application with options
	err = wails.Run(&options.App{
		Title:            "SaveDeck",
		Width:            config.Width,
		Height:           config.Height,
		AssetServer:      assetServer,
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		// Only the methods of App are reachable from the frontend
		Bind: []interface{}{
			app,
		},
		LogLevel:           logLevel,
		LogLevelProduction: logger.ERROR,
		// Enable DevTools in development mode
		Debug: options.Debug{
			OpenInspectorOnStartup: debugBuild,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
