package main

import (
	"context"
	"embed"
	"fmt"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"gorm.io/gorm/logger"

	"ridgeai/internal/database"
	"ridgeai/internal/events"
	"ridgeai/internal/services"
	"ridgeai/internal/utils"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {

	app := NewApp()

	// .env is optional; it only supplies fallback API keys.
	if err := utils.LoadEnv(); err != nil {
		fmt.Println("No .env loaded:", err)
	}

	db, err := database.Init(database.Config{
		LogLevel: logger.Info,
	})
	if err != nil {
		// Comparisons can still run off an environment key; settings fall
		// back to defaults and history/usage persistence is skipped.
		fmt.Println("Error opening database, continuing without local storage:", err)
		db = nil
	}

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			app.dbClose = sqlDB.Close
		}
	}

	//Create each service
	keyringService := services.NewKeyringService()
	dbService := services.NewDbServices(db)
	comparisonService := services.NewComparisonService(dbService.SettingsRepo(), keyringService, dbService.Usage, dbService.History)

	app.AppSettings = dbService.AppSettings
	app.History = dbService.History
	app.Usage = dbService.Usage

	// Create application with options
	err = wails.Run(&options.App{
		Title:  "RidgeAI",
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "RidgeAI",
		},
		BackgroundColour: &options.RGBA{R: 15, G: 23, B: 42, A: 1},
		OnStartup: func(ctx context.Context) {
			app.startup(ctx)
			events.EnableRuntimeEmitter()
			dbService.StartDbServices(ctx)

			if err := comparisonService.Startup(ctx); err != nil {
				fmt.Println("Error starting comparison service:", err)
			}
		},
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
			dbService.AppSettings,
			dbService.Usage,
			dbService.History,
			keyringService,
			comparisonService,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
