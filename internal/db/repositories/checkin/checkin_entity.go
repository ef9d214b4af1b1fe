package checkin

import (
	"time"
)

/*
MODEL
*/

type CheckinRecord struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	UserID  string `gorm:"column:user_id;type:text;not null;index:idx_checkin_scope,priority:1" json:"user_id"`
	GroupID string `gorm:"column:group_id;type:text;not null;index:idx_checkin_scope,priority:2" json:"group_id"`

	// Calendar date only, stored as "YYYY-MM-DD".
	CheckinDate string `gorm:"column:checkin_date;type:text;not null;index" json:"checkin_date"`
}

// set table name
func (CheckinRecord) TableName() string {
	return "checkins"
}

// CheckinCount is a per-user tally within a group, derived by the
// leaderboard query and never persisted.
type CheckinCount struct {
	UserID string `gorm:"column:user_id" json:"user_id"`
	Count  int    `gorm:"column:checkin_count" json:"checkin_count"`
}
