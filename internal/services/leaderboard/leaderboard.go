package leaderboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/MyelinBots/checkinbot-go/internal/db/repositories/checkin"
	"github.com/MyelinBots/checkinbot-go/internal/services/nickname"
)

const (
	emptyMessage = "这个月还没有人打卡哦"
	headerLine   = "本群的打卡排行榜：\n"
	crownSuffix  = "是本群的打卡大王"
)

// Aggregator builds the group leaderboard text.
type Aggregator interface {
	BuildLeaderboard(ctx context.Context, groupID string) (string, error)
}

type AggregatorImpl struct {
	repo  checkin.CheckinRepository
	names nickname.Fetcher
}

func NewAggregator(repo checkin.CheckinRepository, names nickname.Fetcher) Aggregator {
	return &AggregatorImpl{repo: repo, names: names}
}

func (a *AggregatorImpl) BuildLeaderboard(ctx context.Context, groupID string) (string, error) {
	entries, err := a.repo.Leaderboard(ctx, groupID)
	if err != nil {
		return "", err
	}

	if len(entries) == 0 {
		return emptyMessage, nil
	}

	var b strings.Builder
	b.WriteString(headerLine)

	var topName string
	for i, entry := range entries {
		name, err := a.names.Nickname(ctx, entry.UserID)
		if err != nil {
			// lookup failure falls back to the raw id instead of
			// aborting the whole report
			name = entry.UserID
		}
		if i == 0 {
			topName = name
		}
		fmt.Fprintf(&b, "第%d名 %s %d次\n", i+1, name, entry.Count)
	}
	b.WriteString(topName + crownSuffix)

	return b.String(), nil
}
