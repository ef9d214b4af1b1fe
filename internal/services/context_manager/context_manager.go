package context_manager

import (
	"context"
	"strings"
)

type senderKey struct{}
type groupKey struct{}

// SetSenderContext stores the sending user's id into context
func SetSenderContext(ctx context.Context, sender string) context.Context {
	return context.WithValue(ctx, senderKey{}, strings.TrimSpace(sender))
}

// GetSenderFromContext retrieves the sending user's id from context
func GetSenderFromContext(ctx context.Context) string {
	sender, ok := ctx.Value(senderKey{}).(string)
	if !ok {
		return "unknown"
	}
	return sender
}

// SetGroupContext stores the group/channel id into context
func SetGroupContext(ctx context.Context, group string) context.Context {
	return context.WithValue(ctx, groupKey{}, strings.TrimSpace(group))
}

// GetGroupFromContext retrieves the group/channel id from context
func GetGroupFromContext(ctx context.Context) string {
	group, ok := ctx.Value(groupKey{}).(string)
	if !ok {
		return "unknown"
	}
	return group
}
