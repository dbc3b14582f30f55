// Package emoji holds the animal emoji commands, reachable through the
// "emoji"/"e" group prefix. cat and eggplant refund their rate-limit slot
// on success, so only failed attempts count against the shared bucket.
package emoji

import (
	"fmt"

	"smyklot/internal/command"
)

// baklazanEmoji is the guild's custom eggplant emoji.
const baklazanEmoji = "<:baklazan:815856883771506768>"

func init() {
	g := command.Default.MustGroup(&command.Group{
		Name:        "Emoji",
		Description: "Animal emoji replies.",
		Prefixes:    []string{"emoji", "e"},
		Default:     "bird",
	})
	command.Default.MustAdd(g.Name,
		&command.Command{
			Name:        "cat",
			Description: "Sends an emoji with a cat.",
			Bucket:      "emoji",
			Handler:     cat,
		},
		&command.Command{
			Name:        "dog",
			Description: "Sends an emoji with a dog.",
			Bucket:      "emoji",
			Handler:     dog,
		},
		&command.Command{
			Name:        "bird",
			Description: "Finds animals for you.",
			Bucket:      "emoji",
			Handler:     bird,
		},
		&command.Command{
			Name:        "eggplant",
			Aliases:     []string{"af", "afek", "afrael", "bartsmykla", "bakłażan", "baklazan"},
			Description: "Sends an emoji with an eggplant.",
			Bucket:      "emoji",
			Handler:     eggplant,
		},
	)
}

func cat(ctx *command.Context) error {
	if err := ctx.Say(":cat:"); err != nil {
		return err
	}
	return command.ErrRevertBucket
}

func dog(ctx *command.Context) error {
	return ctx.Say(":dog:")
}

func bird(ctx *command.Context) error {
	if len(ctx.Args) == 0 {
		return ctx.Say(":bird: can find animals for you.")
	}
	return ctx.Say(fmt.Sprintf(":bird: could not find animal named: `%s`.", ctx.RawArgs))
}

func eggplant(ctx *command.Context) error {
	if err := ctx.Say(baklazanEmoji); err != nil {
		return err
	}
	return command.ErrRevertBucket
}
