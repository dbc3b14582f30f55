// Package presence holds the owner-only activity and status commands.
package presence

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"smyklot/internal/command"
)

func init() {
	g := command.Default.MustGroup(&command.Group{
		Name:        "Presence",
		Description: "Bot activity and status.",
	})
	command.Default.MustAdd(g.Name,
		&command.Command{
			Name:        "play",
			Aliases:     []string{"set"},
			Description: "Sets the bot's playing activity.",
			Bucket:      "activity",
			OwnerOnly:   true,
			Handler:     play,
		},
		&command.Command{
			Name:        "status",
			Description: "Sets the bot's online status.",
			OwnerOnly:   true,
			Handler:     status,
		},
	)
}

// play sets the activity to the argument remainder. User mentions in the
// remainder are substituted with the mentioned user's name first.
func play(ctx *command.Context) error {
	name := substituteMentions(ctx.RawArgs, ctx.Message.Mentions)
	if err := ctx.Session.UpdateGameStatus(0, name); err != nil {
		_ = ctx.Reply("Couldn't update activity.")
		return fmt.Errorf("update activity: %w", err)
	}
	return nil
}

func substituteMentions(s string, mentions []*discordgo.User) string {
	for _, u := range mentions {
		s = strings.ReplaceAll(s, "<@"+u.ID+">", u.Username)
		s = strings.ReplaceAll(s, "<@!"+u.ID+">", u.Username)
	}
	return s
}

func status(ctx *command.Context) error {
	if len(ctx.Args) == 0 {
		return ctx.Reply("Usage: status <online|idle|dnd|invisible>")
	}

	var st discordgo.Status
	switch ctx.Args[0] {
	case "online":
		st = discordgo.StatusOnline
	case "idle":
		st = discordgo.StatusIdle
	case "dnd":
		st = discordgo.StatusDoNotDisturb
	case "invisible":
		st = discordgo.StatusInvisible
	default:
		return ctx.Reply(fmt.Sprintf("Unknown status: `%s`.", ctx.Args[0]))
	}

	if err := ctx.Session.UpdateStatusComplex(discordgo.UpdateStatusData{Status: string(st)}); err != nil {
		_ = ctx.Reply("Couldn't update status.")
		return fmt.Errorf("update status: %w", err)
	}
	return ctx.Reply("Status updated.")
}
