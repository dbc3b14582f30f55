// Package general holds the small-talk and bot-info commands.
package general

import "smyklot/internal/command"

func init() {
	g := command.Default.MustGroup(&command.Group{
		Name:        "General",
		Description: "Small talk and bot info.",
	})
	command.Default.MustAdd(g.Name,
		&command.Command{Name: "ping", Description: "Pong!", Handler: canned("Pong")},
		&command.Command{Name: "pong", Description: "Ping!", Handler: canned("Ping")},
		&command.Command{Name: "pif", Description: "Paf!", Handler: canned("Paf")},
		&command.Command{Name: "paf", Description: "Pif!", Handler: canned("Pif")},
		&command.Command{
			Name:        "znasz",
			Aliases:     []string{"do_you_know", "know"},
			Description: "Asks whether the bot knows someone.",
			Handler:     doYouKnow,
		},
		&command.Command{Name: "version", Description: "Reports the bot version.", Handler: versionCmd},
		&command.Command{Name: "help", Description: "Lists available commands.", Handler: helpCmd},
	)
}

func canned(reply string) command.HandlerFunc {
	return func(ctx *command.Context) error {
		return ctx.Reply(reply)
	}
}

func doYouKnow(ctx *command.Context) error {
	if ctx.Message.Author.Username == "zawiszaty" {
		return ctx.Reply("tobie nie powiem")
	}
	return ctx.Reply("pierwsze słyszę")
}
