package models

import "time"

// UsageStat tracks how many comparisons ran on the current calendar day.
// Single-row table (ID=1); Day holds the day stamp ("2006-01-02") the
// counters belong to. A row whose Day is not today counts as zero.
type UsageStat struct {
	ID              uint   `gorm:"primaryKey"`
	ScanCount       int    `gorm:"not null;default:0"`
	TokensEstimated int64  `gorm:"not null;default:0"`
	Day             string `gorm:"size:10;not null"`
	UpdatedAt       time.Time
}
