package models

import "time"

// Provider identifiers accepted in AppSettings.Provider.
const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
)

type AppSettings struct {
	ID           uint   `gorm:"primaryKey"` // single-row table (ID=1)
	Version      int    `gorm:"not null;default:1"`
	Provider     string `gorm:"not null;default:gemini"` // "gemini" | "openrouter"
	DeepAnalysis bool   `gorm:"not null;default:false"`  // extended-reasoning mode (gemini only)
	Locale       string `gorm:"not null;default:ar"`
	UpdatedAt    time.Time
}

// DefaultAppSettings is what a fresh install (or an unreadable store) uses.
func DefaultAppSettings() *AppSettings {
	return &AppSettings{
		ID:           1,
		Version:      1,
		Provider:     ProviderGemini,
		DeepAnalysis: false,
		Locale:       "ar",
	}
}
