// Package systems holds the operating-system opinion commands. They share
// one rate-limit bucket so the opinions stay rare.
package systems

import "smyklot/internal/command"

func init() {
	g := command.Default.MustGroup(&command.Group{
		Name:        "Systems",
		Description: "Operating system opinions.",
	})
	command.Default.MustAdd(g.Name,
		&command.Command{
			Name:        "mac",
			Aliases:     []string{"apple", "macos"},
			Description: "Sends opinion about macOS.",
			Bucket:      "systems",
			Handler:     canned("Jak cię stać na ten szmelc"),
		},
		&command.Command{
			Name:        "linux",
			Aliases:     []string{"pingwinie", "ubuntu", "i3"},
			Description: "Sends opinion about Linux.",
			Bucket:      "systems",
			Handler:     canned("Jedyne słuszne rozwiązanie! :sunglasses:"),
		},
		&command.Command{
			Name:        "windows",
			Aliases:     []string{"winda"},
			Description: "Sends opinion about Windows.",
			Bucket:      "systems",
			Handler:     canned("Jak zrestartujesz kompa to pogadamy"),
		},
	)
}

func canned(reply string) command.HandlerFunc {
	return func(ctx *command.Context) error {
		return ctx.Reply(reply)
	}
}
