package commands

import (
	"context"
	"strings"

	"github.com/MyelinBots/checkinbot-go/internal/services/context_manager"
	irc "github.com/fluffle/goirc/client"
)

type CommandController interface {
	HandleCommand(ctx context.Context, line *irc.Line) error
	AddCommand(command string, handler func(ctx context.Context) error)
}

type CommandControllerImpl struct {
	commands map[string]func(ctx context.Context) error
}

func NewCommandController() CommandController {
	return &CommandControllerImpl{
		commands: make(map[string]func(ctx context.Context) error),
	}
}

// HandleCommand dispatches when the whole message exactly matches a
// registered trigger. Anything else is ignored.
func (c *CommandControllerImpl) HandleCommand(ctx context.Context, line *irc.Line) error {
	if len(line.Args) < 2 {
		return nil
	}

	message := strings.TrimSpace(line.Args[1])
	handler, exists := c.commands[message]
	if !exists {
		return nil
	}

	ctx = context_manager.SetSenderContext(ctx, line.Nick)
	ctx = context_manager.SetGroupContext(ctx, line.Args[0])
	return handler(ctx)
}

func (c *CommandControllerImpl) AddCommand(command string, handler func(ctx context.Context) error) {
	c.commands[command] = handler
}
