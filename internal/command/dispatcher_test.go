package command

import (
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smyklot/internal/command/commandtest"
	"smyklot/internal/state"
)

func guildMsg(content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		ID:        "m1",
		ChannelID: "c1",
		GuildID:   "g1",
		Content:   content,
		Author:    &discordgo.User{ID: "u1", Username: "bob"},
	}}
}

func dmMsg(content string) *discordgo.MessageCreate {
	m := guildMsg(content)
	m.GuildID = ""
	return m
}

type dispatcherFixture struct {
	d       *Dispatcher
	sess    *commandtest.Session
	buckets *BucketSet
}

func newDispatcherFixture(t *testing.T, reg *Registry, cfg DispatcherConfig) *dispatcherFixture {
	t.Helper()
	cfg.Logger = zerolog.Nop()
	buckets := NewBucketSet()
	buckets.Define("emoji", 5*time.Second)
	d := NewDispatcher(reg, buckets, state.New(state.Data{}), cfg)
	return &dispatcherFixture{d: d, sess: &commandtest.Session{}, buckets: buckets}
}

func countingRegistry(calls *int, cmd *Command) *Registry {
	r := NewRegistry()
	r.MustGroup(&Group{Name: "General"})
	if cmd.Handler == nil {
		cmd.Handler = func(*Context) error {
			*calls++
			return nil
		}
	}
	r.MustAdd("General", cmd)
	return r
}

func TestDispatchIgnoresUnprefixedMessages(t *testing.T) {
	var calls int
	f := newDispatcherFixture(t, countingRegistry(&calls, &Command{Name: "ping"}),
		DispatcherConfig{Prefixes: []string{"!"}})

	f.d.Dispatch(f.sess, guildMsg("ping"))
	f.d.Dispatch(f.sess, guildMsg("just chatting"))

	assert.Zero(t, calls)
	assert.Empty(t, f.sess.Sent, "unprefixed messages must produce no reply")
}

func TestDispatchRunsHandlerOnce(t *testing.T) {
	var calls int
	f := newDispatcherFixture(t, countingRegistry(&calls, &Command{Name: "ping"}),
		DispatcherConfig{Prefixes: []string{"!"}})

	f.d.Dispatch(f.sess, guildMsg("!ping"))

	assert.Equal(t, 1, calls)
}

func TestDispatchMentionPrefix(t *testing.T) {
	var calls int
	f := newDispatcherFixture(t, countingRegistry(&calls, &Command{Name: "ping"}),
		DispatcherConfig{})
	f.d.SetSelfID("42")

	f.d.Dispatch(f.sess, guildMsg("<@42> ping"))
	f.d.Dispatch(f.sess, guildMsg("<@!42> ping"))
	f.d.Dispatch(f.sess, guildMsg("<@99> ping"))

	assert.Equal(t, 2, calls, "both mention forms count, foreign mentions do not")
}

func TestDispatchUnknownCommandSuggestion(t *testing.T) {
	var calls int
	f := newDispatcherFixture(t, countingRegistry(&calls, &Command{Name: "ping"}),
		DispatcherConfig{Prefixes: []string{"!"}})

	f.d.Dispatch(f.sess, guildMsg("!pingg"))

	require.Len(t, f.sess.Sent, 1)
	assert.Contains(t, f.sess.Sent[0].Content, "Did you mean `ping`?")
	assert.Zero(t, calls)
}

func TestDispatchUnknownCommandNoSuggestion(t *testing.T) {
	var calls int
	f := newDispatcherFixture(t, countingRegistry(&calls, &Command{Name: "ping"}),
		DispatcherConfig{Prefixes: []string{"!"}})

	f.d.Dispatch(f.sess, guildMsg("!xyzzyqwerty"))

	require.Len(t, f.sess.Sent, 1)
	assert.Equal(t, "Unknown command: `xyzzyqwerty`.", f.sess.Sent[0].Content)
}

func TestDispatchGuildOnly(t *testing.T) {
	var calls int
	f := newDispatcherFixture(t, countingRegistry(&calls, &Command{Name: "mute", GuildOnly: true}),
		DispatcherConfig{Prefixes: []string{"!"}})

	f.d.Dispatch(f.sess, dmMsg("!mute someone"))

	assert.Zero(t, calls)
	require.Len(t, f.sess.Sent, 1)
	assert.Contains(t, f.sess.Sent[0].Content, "guild")
}

func TestDispatchOwnerOnly(t *testing.T) {
	var calls int
	f := newDispatcherFixture(t, countingRegistry(&calls, &Command{Name: "play", OwnerOnly: true}),
		DispatcherConfig{Prefixes: []string{"!"}})

	f.d.Dispatch(f.sess, guildMsg("!play something"))
	assert.Zero(t, calls)
	require.Len(t, f.sess.Sent, 1)

	f.d.AddOwner("u1")
	f.d.Dispatch(f.sess, guildMsg("!play something"))
	assert.Equal(t, 1, calls)
}

func TestDispatchCheckReasonRouting(t *testing.T) {
	var calls int
	silent := CheckFunc(func(*Context) *Reason { return &Reason{Log: "nope"} })
	f := newDispatcherFixture(t,
		countingRegistry(&calls, &Command{Name: "ping", Checks: []Check{silent}}),
		DispatcherConfig{Prefixes: []string{"!"}})

	f.d.Dispatch(f.sess, guildMsg("!ping"))

	assert.Zero(t, calls)
	assert.Empty(t, f.sess.Sent, "log-only check failures must stay silent")
}

func TestDispatchRateLimitNotifiesOnce(t *testing.T) {
	var calls int
	f := newDispatcherFixture(t, countingRegistry(&calls, &Command{Name: "cat", Bucket: "emoji"}),
		DispatcherConfig{Prefixes: []string{"!"}})

	f.d.Dispatch(f.sess, guildMsg("!cat"))
	require.Equal(t, 1, calls)
	sentBefore := len(f.sess.Sent)

	f.d.Dispatch(f.sess, guildMsg("!cat"))
	assert.Equal(t, 1, calls, "rate-limited invocation must not run the handler")
	require.Len(t, f.sess.Sent, sentBefore+1)
	assert.Contains(t, f.sess.Sent[len(f.sess.Sent)-1].Content, "Try again in")

	f.d.Dispatch(f.sess, guildMsg("!cat"))
	assert.Len(t, f.sess.Sent, sentBefore+1, "repeat rejections stay silent")
}

func TestDispatchRevertBucket(t *testing.T) {
	reg := NewRegistry()
	reg.MustGroup(&Group{Name: "General"})
	var calls int
	reg.MustAdd("General", &Command{Name: "cat", Bucket: "emoji", Handler: func(*Context) error {
		calls++
		return ErrRevertBucket
	}})
	f := newDispatcherFixture(t, reg, DispatcherConfig{Prefixes: []string{"!"}})

	f.d.Dispatch(f.sess, guildMsg("!cat"))
	f.d.Dispatch(f.sess, guildMsg("!cat"))

	assert.Equal(t, 2, calls, "refunded bucket must allow the next invocation")
	assert.Empty(t, f.sess.Sent)
}

func TestDispatchHandlerErrorIsContained(t *testing.T) {
	reg := NewRegistry()
	reg.MustGroup(&Group{Name: "General"})
	reg.MustAdd("General", &Command{Name: "boom", Handler: func(*Context) error {
		return errors.New("upstream exploded")
	}})
	f := newDispatcherFixture(t, reg, DispatcherConfig{Prefixes: []string{"!"}})

	// The dispatcher logs the failure; nothing panics and no raw error
	// text reaches the channel.
	f.d.Dispatch(f.sess, guildMsg("!boom"))
	for _, m := range f.sess.Sent {
		assert.NotContains(t, m.Content, "upstream exploded")
	}
}

func TestSplitTokens(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		delims []string
		want   []string
	}{
		{"single space", "a b c", []string{" "}, []string{"a", "b", "c"}},
		{"repeated delimiters dropped", "a   b", []string{" "}, []string{"a", "b"}},
		{"multiple delimiters", "a, b c", []string{", ", " "}, []string{"a", "b", "c"}},
		{"empty input", "", []string{" "}, nil},
		{"only delimiters", "   ", []string{" "}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitTokens(tt.in, tt.delims))
		})
	}
}
