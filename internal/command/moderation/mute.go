// Package moderation holds the owner-only mute and channel commands.
package moderation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bwmarrin/discordgo"

	"smyklot/internal/command"
)

func init() {
	g := command.Default.MustGroup(&command.Group{
		Name:        "Moderation",
		Description: "Mute management and channel controls.",
	})
	command.Default.MustAdd(g.Name,
		&command.Command{
			Name:        "mute",
			Description: "Grants the mute role to a member.",
			GuildOnly:   true,
			OwnerOnly:   true,
			Handler:     mute,
		},
		&command.Command{
			Name:        "unmute",
			Description: "Removes the mute role from a member.",
			GuildOnly:   true,
			OwnerOnly:   true,
			Handler:     unmute,
		},
		&command.Command{
			Name:        "muted",
			Description: "Lists currently muted members.",
			GuildOnly:   true,
			OwnerOnly:   true,
			Handler:     muted,
		},
		&command.Command{
			Name:        "slowmode",
			Aliases:     []string{"slow-mode", "slow"},
			Description: "Sets or reports the channel's slow mode.",
			GuildOnly:   true,
			OwnerOnly:   true,
			Handler:     slowmode,
		},
	)
}

func mute(ctx *command.Context) error {
	return setMuted(ctx, true)
}

func unmute(ctx *command.Context) error {
	return setMuted(ctx, false)
}

func setMuted(ctx *command.Context, mute bool) error {
	verb := "mute"
	if !mute {
		verb = "unmute"
	}

	roleID := ctx.State.Snapshot().MuteRoleID
	if roleID == "" {
		return ctx.Reply("Mute role is not configured.")
	}
	if len(ctx.Args) != 1 {
		return ctx.Reply(fmt.Sprintf("Usage: %s <member>", verb))
	}

	member, err := resolveMember(ctx.Session, ctx.Message.GuildID, ctx.Args[0])
	if err != nil {
		return ctx.Reply(err.Error())
	}

	if mute {
		err = ctx.Session.GuildMemberRoleAdd(ctx.Message.GuildID, member.User.ID, roleID)
	} else {
		err = ctx.Session.GuildMemberRoleRemove(ctx.Message.GuildID, member.User.ID, roleID)
	}
	if err != nil {
		_ = ctx.Reply(fmt.Sprintf("Couldn't %s %s.", verb, member.Mention()))
		return fmt.Errorf("%s %s: %w", verb, member.User.ID, err)
	}
	return ctx.Reply(fmt.Sprintf("%s was %sd", member.Mention(), verb))
}

func muted(ctx *command.Context) error {
	roleID := ctx.State.Snapshot().MuteRoleID
	if roleID == "" {
		return ctx.Reply("Mute role is not configured.")
	}

	members, err := ctx.Session.GuildMembers(ctx.Message.GuildID, "", 1000)
	if err != nil {
		_ = ctx.Reply("Couldn't list members.")
		return fmt.Errorf("list members: %w", err)
	}

	var mentions []string
	for _, m := range members {
		if slices.Contains(m.Roles, roleID) {
			mentions = append(mentions, m.Mention())
		}
	}
	if len(mentions) == 0 {
		return ctx.Reply("No members are currently muted")
	}
	return ctx.Reply("Currently muted members: " + strings.Join(mentions, ", "))
}

// resolveMember finds a guild member by explicit ID or mention first, then
// by exact username or nickname. The error text is user-facing.
func resolveMember(s command.Session, guildID, arg string) (*discordgo.Member, error) {
	if id, ok := parseUserID(arg); ok {
		m, err := s.GuildMember(guildID, id)
		if err != nil {
			return nil, fmt.Errorf("couldn't find member: %s", arg)
		}
		return m, nil
	}

	members, err := s.GuildMembers(guildID, "", 1000)
	if err != nil {
		return nil, fmt.Errorf("couldn't list members")
	}
	for _, m := range members {
		if m.User != nil && (m.User.Username == arg || m.Nick == arg) {
			return m, nil
		}
	}
	return nil, fmt.Errorf("couldn't find member: %s", arg)
}

// parseUserID accepts a raw snowflake or either mention form.
func parseUserID(arg string) (string, bool) {
	id := arg
	if strings.HasPrefix(id, "<@") && strings.HasSuffix(id, ">") {
		id = strings.TrimSuffix(strings.TrimPrefix(id, "<@"), ">")
		id = strings.TrimPrefix(id, "!")
	}
	if id == "" {
		return "", false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return id, true
}
