package bot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MyelinBots/checkinbot-go/internal/services/checkinbot"
	irc "github.com/fluffle/goirc/client"
)

// ircPlatform adapts the goirc connection to the bot's platform surface.
// IRC has no attachments, so images are announced by absolute path for a
// local relay to pick up.
type ircPlatform struct {
	conn *irc.Conn
}

func NewIRCPlatform(conn *irc.Conn) checkinbot.Platform {
	return &ircPlatform{conn: conn}
}

func (p *ircPlatform) SendText(group, text string) {
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		p.conn.Privmsg(group, line)
	}
}

func (p *ircPlatform) SendImage(group, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(abs); err != nil {
		return err
	}
	p.conn.Privmsg(group, fmt.Sprintf("[打卡日历] %s", abs))
	return nil
}

func (p *ircPlatform) SendMention(group, user, text string) {
	p.conn.Privmsg(group, fmt.Sprintf("%s: %s", user, text))
}
