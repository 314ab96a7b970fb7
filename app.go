package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"ridgeai/internal/models"
	"ridgeai/internal/services"
)

// App struct
type App struct {
	ctx         context.Context
	AppSettings services.AppSettingsService
	History     services.HistoryService
	Usage       services.UsageService
	dbClose     func() error
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	// Close database connection pool
	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			runtime.LogError(ctx, fmt.Sprintf("failed to close database: %v", err))
		} else {
			runtime.LogInfo(ctx, "database closed")
		}
		a.dbClose = nil
	}
}

// SelectedImage is what the file picker hands back to the upload slots.
type SelectedImage struct {
	Name string `json:"name"`
	MIME string `json:"mime"`
	Data string `json:"data"` // base64
}

// SelectFingerprintImage opens a native file picker restricted to image
// files and returns the chosen file's bytes for one of the two upload slots.
func (a *App) SelectFingerprintImage(title string) (*SelectedImage, error) {
	path, err := runtime.OpenFileDialog(a.ctx, runtime.OpenDialogOptions{
		Title: title,
		Filters: []runtime.FileFilter{
			{DisplayName: "Fingerprint Images", Pattern: "*.png;*.jpg;*.jpeg;*.webp;*.bmp;*.tif;*.tiff"},
		},
	})
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil // user cancelled
	}

	data, err := os.ReadFile(path)
	if err != nil {
		runtime.LogError(a.ctx, fmt.Sprintf("failed to read image %s: %v", path, err))
		return nil, err
	}

	return &SelectedImage{
		Name: filepath.Base(path),
		MIME: imageMIME(path),
		Data: base64.StdEncoding.EncodeToString(data),
	}, nil
}

// GetAppSettings returns the current application settings
func (a *App) GetAppSettings() (*models.AppSettings, error) {
	if a.AppSettings == nil {
		return nil, fmt.Errorf("app settings service not available")
	}
	return a.AppSettings.Get()
}

// UpdateAppSettings updates provider, deep analysis and locale and returns
// the updated settings
func (a *App) UpdateAppSettings(provider string, deepAnalysis bool, locale string) (*models.AppSettings, error) {
	if a.AppSettings == nil {
		return nil, fmt.Errorf("app settings service not available")
	}
	return a.AppSettings.Update(provider, deepAnalysis, locale)
}

// GetTodayUsage returns the scan counters for the current day
func (a *App) GetTodayUsage() (*models.UsageStat, error) {
	if a.Usage == nil {
		return nil, fmt.Errorf("usage service not available")
	}
	return a.Usage.Today()
}

func imageMIME(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".bmp":
		return "image/bmp"
	case ".tif", ".tiff":
		return "image/tiff"
	default:
		return "application/octet-stream"
	}
}
