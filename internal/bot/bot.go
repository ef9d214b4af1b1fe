package bot

import (
	"context"
	"crypto/tls"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/MyelinBots/checkinbot-go/config"
	"github.com/MyelinBots/checkinbot-go/internal/db"
	"github.com/MyelinBots/checkinbot-go/internal/db/repositories/checkin"
	"github.com/MyelinBots/checkinbot-go/internal/healthcheck"
	"github.com/MyelinBots/checkinbot-go/internal/logger"
	"github.com/MyelinBots/checkinbot-go/internal/services/calendar"
	"github.com/MyelinBots/checkinbot-go/internal/services/checkinbot"
	"github.com/MyelinBots/checkinbot-go/internal/services/clock"
	"github.com/MyelinBots/checkinbot-go/internal/services/commands"
	"github.com/MyelinBots/checkinbot-go/internal/services/leaderboard"
	"github.com/MyelinBots/checkinbot-go/internal/services/nickname"
	"github.com/MyelinBots/checkinbot-go/internal/services/timer"
	irc "github.com/fluffle/goirc/client"
	"go.uber.org/zap"
)

type Identified struct {
	sync.Mutex
	identified bool
}

func StartBot() error {
	cfg := config.LoadConfigOrPanic()
	if err := logger.InitLogger(cfg.LogConfig); err != nil {
		return err
	}
	log := logger.Logger

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	identified := &Identified{}

	log.Info("starting bot", zap.String("app", cfg.AppConfig.APPName), zap.String("version", cfg.AppConfig.Version))
	healthcheck.StartHealthcheck(ctx, cfg.AppConfig)

	database, err := db.NewDB(cfg.DBConfig)
	if err != nil {
		return err
	}
	if err := database.Migrate(&checkin.CheckinRecord{}); err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.BotConfig.ImagesDir, 0o755); err != nil {
		return err
	}

	repo := checkin.NewCheckinRepository(database)
	clk := clock.NewClock()
	renderer := calendar.NewRenderer(
		repo,
		clk,
		cfg.BotConfig.ImagesDir,
		cfg.BotConfig.MarkerPath,
		calendar.FileFontLoader(cfg.BotConfig.FontPath),
	)
	fetcher := nickname.NewFetcher(cfg.NicknameConfig)
	aggregator := leaderboard.NewAggregator(repo, fetcher)

	ircConfig := irc.NewConfig(cfg.IRCConfig.Nick)
	ircConfig.SSL = cfg.IRCConfig.SSL
	ircConfig.SSLConfig = &tls.Config{InsecureSkipVerify: true}
	ircConfig.Server = fmt.Sprintf("%s:%d", cfg.IRCConfig.Host, cfg.IRCConfig.Port)

	conn := irc.Client(ircConfig)

	bot := checkinbot.NewCheckinBot(repo, renderer, aggregator, clk, NewIRCPlatform(conn))

	controller := commands.NewCommandController()
	controller.AddCommand(cfg.BotConfig.CheckinCommand, bot.HandleCheckin)
	controller.AddCommand(cfg.BotConfig.LeaderboardCommand, bot.HandleLeaderboard)

	// daily sweep so stale records go away even on quiet days; each
	// check-in also prunes inline
	sweeper := timer.NewRepeatedTimer(24*time.Hour, func() {
		if err := repo.PruneBefore(context.Background(), clock.PruneCutoff(clk.Now())); err != nil {
			log.Error("prune sweep failed", zap.Error(err))
		}
	})
	defer sweeper.Stop()

	conn.HandleFunc(irc.CONNECTED, func(conn *irc.Conn, line *irc.Line) {
		log.Info("connected", zap.String("host", cfg.IRCConfig.Host))
		for _, channel := range cfg.IRCConfig.Channels {
			log.Info("joining channel", zap.String("channel", channel))
			conn.Join(channel)
		}
	})

	conn.HandleFunc("422", func(conn *irc.Conn, line *irc.Line) {
		for _, channel := range cfg.IRCConfig.Channels {
			conn.Join(channel)
		}
	})

	conn.HandleFunc("376", func(conn *irc.Conn, line *irc.Line) {
		for _, channel := range cfg.IRCConfig.Channels {
			conn.Join(channel)
		}
	})

	conn.HandleFunc(irc.JOIN, func(conn *irc.Conn, line *irc.Line) {
		log.Info("joined", zap.String("channel", line.Args[0]))
		handleNickserv(cfg.IRCConfig, identified, conn)
	})

	conn.HandleFunc(irc.INVITE, func(conn *irc.Conn, line *irc.Line) {
		log.Info("invited", zap.String("channel", line.Args[1]))
		conn.Join(line.Args[1])
	})

	conn.HandleFunc(irc.PRIVMSG, func(conn *irc.Conn, line *irc.Line) {
		if line == nil || len(line.Args) < 2 {
			return
		}

		if err := controller.HandleCommand(ctx, line); err != nil {
			log.Error("command failed", zap.String("nick", line.Nick), zap.Error(err))
		}
	})

	quit := make(chan bool)
	conn.HandleFunc(irc.DISCONNECTED, func(conn *irc.Conn, line *irc.Line) {
		quit <- true
	})

	if err := conn.Connect(); err != nil {
		log.Error("connection error", zap.Error(err))
		return err
	}

	<-quit
	return nil
}

func handleNickserv(cfg config.IRCConfig, identified *Identified, c *irc.Conn) {
	identified.Lock()
	defer identified.Unlock()
	if !identified.identified && cfg.NickservPassword != "" {
		command := fmt.Sprintf(cfg.NickservCommand, cfg.NickservPassword)
		c.Raw(command)
		identified.identified = true
	}
}
