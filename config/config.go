package config

import (
	"strings"

	"github.com/jinzhu/configor"
)

type Config struct {
	AppConfig      AppConfig      `env:"APPCONFIG"`
	IRCConfig      IRCConfig      `env:"IRCCONFIG"`
	DBConfig       DBConfig       `env:"DBCONFIG"`
	BotConfig      BotConfig      `env:"BOTCONFIG"`
	NicknameConfig NicknameConfig `env:"NICKNAMECONFIG"`
	LogConfig      LogConfig      `env:"LOGCONFIG"`
}

type AppConfig struct {
	APPName string `default:"checkinbot"`
	Version string `default:"x.x.x" env:"VERSION"`
	Port    int    `default:"8080" env:"APP_PORT"`
}

type IRCConfig struct {
	Host             string `env:"HOST"`
	Port             int    `env:"PORT"`
	SSL              bool   `env:"SSL"`
	Nick             string `env:"NICK"`
	ChannelsString   string `env:"CHANNELS"`
	Channels         []string
	Network          string `env:"NETWORK"`
	NickservCommand  string `env:"NICKSERV_COMMAND" default:"PRIVMSG NickServ IDENTIFY %s"`
	NickservPassword string `env:"NICKSERV_PASSWORD" default:""`
}

type DBConfig struct {
	Path string `default:"checkin.db" env:"DBPATH"`
}

type BotConfig struct {
	CheckinCommand     string `default:"打卡" env:"CHECKIN_COMMAND"`
	LeaderboardCommand string `default:"打卡榜" env:"LEADERBOARD_COMMAND"`
	ImagesDir          string `default:"images" env:"IMAGES_DIR"`
	MarkerPath         string `default:"assets/deer.jpg" env:"MARKER_PATH"`
	FontPath           string `default:"assets/NotoSansSC-Regular.ttf" env:"FONT_PATH"`
}

type NicknameConfig struct {
	BaseURL        string `default:"https://users.qzone.qq.com/fcg-bin/cgi_get_portrait.fcg" env:"NICKNAME_URL"`
	TimeoutSeconds int    `default:"5" env:"NICKNAME_TIMEOUT"`
}

type LogConfig struct {
	Level      string `default:"info" env:"LOG_LEVEL"`
	Path       string `default:"" env:"LOG_PATH"`
	MaxSizeMB  int    `default:"100" env:"LOG_MAX_SIZE"`
	MaxBackups int    `default:"3" env:"LOG_MAX_BACKUPS"`
	MaxAgeDays int    `default:"7" env:"LOG_MAX_AGE"`
	Compress   bool   `default:"false" env:"LOG_COMPRESS"`
}

func LoadConfigOrPanic() Config {
	var config = Config{}
	configor.Load(&config, "config/config.dev.json")

	config.IRCConfig.Channels = strings.Split(config.IRCConfig.ChannelsString, ",")

	return config
}
