package checkinbot

import (
	"context"
	"os"

	"github.com/MyelinBots/checkinbot-go/internal/db/repositories/checkin"
	"github.com/MyelinBots/checkinbot-go/internal/services/calendar"
	"github.com/MyelinBots/checkinbot-go/internal/services/clock"
	"github.com/MyelinBots/checkinbot-go/internal/services/context_manager"
	"github.com/MyelinBots/checkinbot-go/internal/services/leaderboard"
)

// Interfaces
type CheckinBot interface {
	HandleCheckin(ctx context.Context) error
	HandleLeaderboard(ctx context.Context) error
}

// Platform is the narrow surface the bot needs from the chat collaborator.
type Platform interface {
	SendText(group, text string)
	SendImage(group, path string) error
	SendMention(group, user, text string)
}

// Implementation
type CheckinBotImpl struct {
	Repo       checkin.CheckinRepository
	Renderer   calendar.Renderer
	Aggregator leaderboard.Aggregator
	Clock      clock.Clock
	Platform   Platform
}

// Constructor
func NewCheckinBot(repo checkin.CheckinRepository, renderer calendar.Renderer, aggregator leaderboard.Aggregator, clk clock.Clock, platform Platform) CheckinBot {
	return &CheckinBotImpl{
		Repo:       repo,
		Renderer:   renderer,
		Aggregator: aggregator,
		Clock:      clk,
		Platform:   platform,
	}
}

// HandleCheckin records one check-in for the sender and replies with the
// month calendar plus a confirmation mention.
func (cb *CheckinBotImpl) HandleCheckin(ctx context.Context) error {
	sender := context_manager.GetSenderFromContext(ctx)
	group := context_manager.GetGroupFromContext(ctx)

	now := cb.Clock.Now()
	if err := cb.Repo.PruneBefore(ctx, clock.PruneCutoff(now)); err != nil {
		return err
	}
	if err := cb.Repo.RecordCheckin(ctx, sender, group, clock.DateString(now)); err != nil {
		return err
	}

	// A render failure past this point leaves the record in place and
	// skips the confirmation.
	imagePath, err := cb.Renderer.RenderMonth(ctx, sender, group)
	if err != nil {
		return err
	}
	defer os.Remove(imagePath)

	if err := cb.Platform.SendImage(group, imagePath); err != nil {
		return err
	}
	cb.Platform.SendMention(group, sender, "成功打卡")
	return nil
}

// HandleLeaderboard sends the formatted group ranking.
func (cb *CheckinBotImpl) HandleLeaderboard(ctx context.Context) error {
	group := context_manager.GetGroupFromContext(ctx)

	text, err := cb.Aggregator.BuildLeaderboard(ctx, group)
	if err != nil {
		return err
	}
	cb.Platform.SendText(group, text)
	return nil
}
