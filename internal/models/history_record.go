package models

import "time"

// HistoryRecord is a persisted past comparison. Records are immutable once
// written; the only mutation the app performs is deletion by ID.
type HistoryRecord struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	File1Name string `gorm:"size:255;not null"`
	File2Name string `gorm:"size:255;not null"`
	File1MIME string `gorm:"size:64"`
	File2MIME string `gorm:"size:64"`
	File1Data []byte `gorm:"type:blob"`
	File2Data []byte `gorm:"type:blob"`

	// Full comparison result as returned to the UI, serialized JSON.
	ResultJSON string `gorm:"type:text;not null"`
}
