// Package discord wires the command layer onto a discordgo session:
// lifecycle events, initial presence, and message dispatch.
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"smyklot/internal/command"
	"smyklot/internal/config"
)

// Bot owns the gateway session and forwards messages to the dispatcher.
type Bot struct {
	dg         *discordgo.Session
	cfg        *config.Config
	dispatcher *command.Dispatcher
	log        zerolog.Logger
}

// New returns an unstarted bot.
func New(cfg *config.Config, dispatcher *command.Dispatcher, log zerolog.Logger) *Bot {
	return &Bot{cfg: cfg, dispatcher: dispatcher, log: log}
}

// Run opens the gateway session and blocks until ctx is canceled.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	b.dg = dg

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	b.log.Info().Msg("shutdown signal received, closing session")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.dispatcher.SetSelfID(r.User.ID)

	if err := s.UpdateGameStatus(0, "@"+r.User.Username+" help"); err != nil {
		b.log.Warn().Err(err).Msg("failed to set initial presence")
	}

	// The application owner is always a bot owner, in addition to anyone
	// configured through BOT_OWNERS.
	app, err := s.Application("@me")
	if err != nil {
		b.log.Warn().Err(err).Msg("failed to fetch application info")
	} else if app.Owner != nil {
		b.dispatcher.AddOwner(app.Owner.ID)
	}

	b.log.Info().
		Str("user", r.User.Username).
		Str("environment", b.cfg.Environment).
		Int("guilds", len(r.Guilds)).
		Msg("bot is ready")
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID {
		return
	}

	if reply, ok := schabReply(s.State.User.ID, m.Content, m.Author.Username); ok {
		if _, err := s.ChannelMessageSendReply(m.ChannelID, reply, m.Reference()); err != nil {
			b.log.Warn().Err(err).Msg("failed to send reply")
		}
		return
	}

	b.dispatcher.Dispatch(s, m)
}

// schabReply answers the one hard-coded trigger phrase. The price depends
// on who is asking.
func schabReply(selfID, content, username string) (string, bool) {
	const question = " po ile schab?"
	if content != "<@"+selfID+">"+question && content != "<@!"+selfID+">"+question {
		return "", false
	}
	if username == "bartsmykla" {
		return "dla Ciebie dycha", true
	}
	return "nie stać cię", true
}
