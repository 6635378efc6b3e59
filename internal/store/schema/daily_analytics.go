package schema

import (
	"time"
)

// DailyAnalytics represents the daily_analytics table - one row per calendar
// day with global totals and that day's deltas, upserted by the sweeper.
type DailyAnalytics struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Date is the calendar day in YYYY-MM-DD format (UTC)
	Date string `gorm:"column:date;not null;uniqueIndex;type:text"`
	// TotalCapsules is the global capsule count at sweep time
	TotalCapsules int64 `gorm:"column:total_capsules;not null;default:0"`
	// TotalUsers is the global user count at sweep time
	TotalUsers int64 `gorm:"column:total_users;not null;default:0"`
	// TotalVerifications is the global verification count at sweep time
	TotalVerifications int64 `gorm:"column:total_verifications;not null;default:0"`
	// NewCapsules is the number of capsules created on this day
	NewCapsules int64 `gorm:"column:new_capsules;not null;default:0"`
	// NewUsers is the number of users first seen on this day
	NewUsers int64 `gorm:"column:new_users;not null;default:0"`
	// CreatedAt is the timestamp when this row was first written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the DailyAnalytics model
func (DailyAnalytics) TableName() string {
	return "daily_analytics"
}
