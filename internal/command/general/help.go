package general

import (
	"fmt"
	"strings"

	"smyklot/internal/command"
)

// helpCmd renders the group/command tree, or details for one command when a
// name is given. Owner-only commands are hidden from non-owners; guild-only
// commands are struck through when asked from a DM.
func helpCmd(ctx *command.Context) error {
	if len(ctx.Args) > 0 {
		return helpFor(ctx, ctx.Args[0])
	}

	var b strings.Builder
	for _, g := range ctx.Registry.Groups() {
		visible := visibleCommands(ctx, g)
		if len(visible) == 0 {
			continue
		}
		b.WriteString("**" + g.Name + "**")
		if len(g.Prefixes) > 0 {
			fmt.Fprintf(&b, " — prefix `%s`", strings.Join(g.Prefixes, "`, `"))
			if g.Default != "" {
				fmt.Fprintf(&b, ", default `%s`", g.Default)
			}
		}
		b.WriteString("\n")
		for _, c := range visible {
			fmt.Fprintf(&b, "%s — %s\n", renderName(ctx, c), c.Description)
		}
	}
	return ctx.Say(b.String())
}

func helpFor(ctx *command.Context, name string) error {
	cmd, g, ok := ctx.Registry.Find(name)
	if !ok {
		if s := ctx.Registry.Suggest(name); s != "" {
			return ctx.Reply(fmt.Sprintf("No command named `%s`. Did you mean `%s`?", name, s))
		}
		return ctx.Reply(fmt.Sprintf("No command named `%s`.", name))
	}
	if cmd.Hidden || (cmd.OwnerOnly && !ctx.IsOwner) {
		return ctx.Reply(fmt.Sprintf("No command named `%s`.", name))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s** — %s\n", cmd.Name, cmd.Description)
	if len(cmd.Aliases) > 0 {
		fmt.Fprintf(&b, "Aliases: `%s`\n", strings.Join(cmd.Aliases, "`, `"))
	}
	fmt.Fprintf(&b, "Group: %s\n", g.Name)
	if cmd.Bucket != "" {
		fmt.Fprintf(&b, "Rate limit bucket: %s\n", cmd.Bucket)
	}
	if cmd.GuildOnly {
		b.WriteString("Only usable in a guild.\n")
	}
	if cmd.OwnerOnly {
		b.WriteString("Restricted to bot owners.\n")
	}
	return ctx.Say(b.String())
}

func visibleCommands(ctx *command.Context, g *command.Group) []*command.Command {
	var out []*command.Command
	for _, c := range g.Commands() {
		if c.Hidden {
			continue
		}
		if c.OwnerOnly && !ctx.IsOwner {
			continue
		}
		out = append(out, c)
	}
	return out
}

func renderName(ctx *command.Context, c *command.Command) string {
	name := "`" + c.Name + "`"
	if c.GuildOnly && ctx.Message.GuildID == "" {
		name = "~~" + name + "~~"
	}
	if c.OwnerOnly {
		name += " 🔒"
	}
	return name
}
