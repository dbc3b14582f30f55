package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "smyklot/internal/command/emoji"
	_ "smyklot/internal/command/general"
	_ "smyklot/internal/command/moderation"
	_ "smyklot/internal/command/presence"
	_ "smyklot/internal/command/systems"

	"smyklot/internal/command"
	"smyklot/internal/config"
	"smyklot/internal/discord"
	"smyklot/internal/logging"
	"smyklot/internal/state"
	v "smyklot/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logging.New("info", "")
		fallback.Fatal().Err(err).Msg("configuration error")
	}

	log := logging.New(cfg.LogLevel, cfg.LogFile)
	log.Info().Str("app", v.AppName).Msg("starting bot")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ver := cfg.Version
	if ver == "" {
		ver = v.Version
	}
	st := state.New(state.Data{
		Version:          ver,
		MuteRoleID:       cfg.MuteRoleID,
		GeneralChannelID: cfg.GeneralChannelID,
	})

	buckets := command.NewBucketSet()
	buckets.Define("emoji", 5*time.Second)
	buckets.Define("systems", 10*time.Second)
	buckets.Define("activity", 30*time.Second)

	dispatcher := command.NewDispatcher(command.Default, buckets, st, command.DispatcherConfig{
		Prefixes: cfg.Prefixes,
		Owners:   cfg.Owners,
		Logger:   log,
	})

	bot := discord.New(cfg, dispatcher, log)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Info().Str("signal", s.String()).Msg("shutting down")
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("bot error")
		}
		cancel()
	case <-ctx.Done():
	}

	log.Info().Msg("bot exited cleanly")
}
