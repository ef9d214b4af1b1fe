package checkin

import (
	"context"
	"fmt"
	"time"

	"github.com/MyelinBots/checkinbot-go/internal/db"
)

/*
REPOSITORY INTERFACE
*/

type CheckinRepository interface {
	// RecordCheckin appends one record for the given date. Repeated
	// same-day check-ins insert separate rows.
	RecordCheckin(ctx context.Context, userID, groupID, date string) error

	// MonthlyCounts returns date -> count for the given calendar month.
	// Dates with no check-ins are absent from the map.
	MonthlyCounts(ctx context.Context, userID, groupID string, year int, month time.Month) (map[string]int, error)

	// Leaderboard returns per-user totals for the group, highest first.
	// Tie order is whatever the database produces.
	Leaderboard(ctx context.Context, groupID string) ([]*CheckinCount, error)

	// PruneBefore deletes every record dated strictly before cutoffDate.
	PruneBefore(ctx context.Context, cutoffDate string) error
}

/*
REPOSITORY IMPL
*/

type CheckinRepositoryImpl struct {
	db *db.DB
}

func NewCheckinRepository(database *db.DB) CheckinRepository {
	return &CheckinRepositoryImpl{db: database}
}

func (r *CheckinRepositoryImpl) RecordCheckin(ctx context.Context, userID, groupID, date string) error {
	record := &CheckinRecord{
		UserID:      userID,
		GroupID:     groupID,
		CheckinDate: date,
	}
	return r.db.DB.WithContext(ctx).Create(record).Error
}

func (r *CheckinRepositoryImpl) MonthlyCounts(ctx context.Context, userID, groupID string, year int, month time.Month) (map[string]int, error) {
	monthPrefix := fmt.Sprintf("%04d-%02d", year, month)

	var rows []struct {
		CheckinDate string `gorm:"column:checkin_date"`
		Count       int    `gorm:"column:count"`
	}
	err := r.db.DB.WithContext(ctx).
		Model(&CheckinRecord{}).
		Select("checkin_date, COUNT(*) as count").
		Where("user_id = ? AND group_id = ? AND checkin_date LIKE ?", userID, groupID, monthPrefix+"-%").
		Group("checkin_date").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.CheckinDate] = row.Count
	}
	return counts, nil
}

func (r *CheckinRepositoryImpl) Leaderboard(ctx context.Context, groupID string) ([]*CheckinCount, error) {
	var entries []*CheckinCount
	err := r.db.DB.WithContext(ctx).
		Model(&CheckinRecord{}).
		Select("user_id, COUNT(*) as checkin_count").
		Where("group_id = ?", groupID).
		Group("user_id").
		Order("checkin_count DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *CheckinRepositoryImpl) PruneBefore(ctx context.Context, cutoffDate string) error {
	return r.db.DB.WithContext(ctx).
		Where("checkin_date < ?", cutoffDate).
		Delete(&CheckinRecord{}).Error
}
