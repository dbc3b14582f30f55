package moderation

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"smyklot/internal/command"
)

// slowmode sets the channel's rate limit when given a non-negative integer,
// and reports the current value otherwise.
func slowmode(ctx *command.Context) error {
	if len(ctx.Args) > 0 {
		if secs, err := strconv.Atoi(ctx.Args[0]); err == nil && secs >= 0 {
			return setSlowmode(ctx, secs)
		}
	}

	ch, err := ctx.Session.Channel(ctx.Message.ChannelID)
	if err != nil {
		_ = ctx.Reply("Couldn't read channel settings.")
		return fmt.Errorf("fetch channel: %w", err)
	}
	if ch.RateLimitPerUser == 0 {
		return ctx.Reply("Slow mode is off.")
	}
	return ctx.Reply(fmt.Sprintf("Current slow mode is %d seconds.", ch.RateLimitPerUser))
}

func setSlowmode(ctx *command.Context, secs int) error {
	_, err := ctx.Session.ChannelEdit(ctx.Message.ChannelID, &discordgo.ChannelEdit{
		RateLimitPerUser: &secs,
	})
	if err != nil {
		_ = ctx.Reply("Couldn't change slow mode.")
		return fmt.Errorf("edit channel: %w", err)
	}
	if secs == 0 {
		return ctx.Reply("Slow mode disabled.")
	}
	return ctx.Reply(fmt.Sprintf("Slow mode set to %d seconds.", secs))
}
