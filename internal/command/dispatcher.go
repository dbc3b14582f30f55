package command

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"smyklot/internal/state"
)

// DispatcherConfig wires a Dispatcher. Zero values are usable: no literal
// prefixes (mention-of-self still works once the self ID is known), a
// single-space delimiter, no owners.
type DispatcherConfig struct {
	Prefixes   []string
	Delimiters []string
	Owners     []string
	Logger     zerolog.Logger
}

// Dispatcher routes incoming messages: prefix strip, tokenize, registry
// resolution, gating (guild-only, checks, bucket), invocation, and one
// post-dispatch hook that logs every outcome.
type Dispatcher struct {
	registry *Registry
	buckets  *BucketSet
	st       *state.State
	prefixes []string
	delims   []string
	log      zerolog.Logger

	mu     sync.RWMutex
	owners map[string]struct{}
	selfID string
}

// NewDispatcher builds a dispatcher over the given registry and buckets.
func NewDispatcher(reg *Registry, buckets *BucketSet, st *state.State, cfg DispatcherConfig) *Dispatcher {
	delims := cfg.Delimiters
	if len(delims) == 0 {
		delims = []string{" "}
	}
	owners := make(map[string]struct{}, len(cfg.Owners))
	for _, id := range cfg.Owners {
		if id != "" {
			owners[id] = struct{}{}
		}
	}
	return &Dispatcher{
		registry: reg,
		buckets:  buckets,
		st:       st,
		prefixes: cfg.Prefixes,
		delims:   delims,
		log:      cfg.Logger,
		owners:   owners,
	}
}

// SetSelfID enables the mention form of the prefix. Called once the gateway
// reports the bot's own user.
func (d *Dispatcher) SetSelfID(id string) {
	d.mu.Lock()
	d.selfID = id
	d.mu.Unlock()
}

// AddOwner marks a user as a bot owner.
func (d *Dispatcher) AddOwner(id string) {
	if id == "" {
		return
	}
	d.mu.Lock()
	d.owners[id] = struct{}{}
	d.mu.Unlock()
}

// IsOwner reports whether the user is a bot owner.
func (d *Dispatcher) IsOwner(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.owners[id]
	return ok
}

// Dispatch handles one incoming message. Messages without a recognized
// prefix are ignored without any reply.
func (d *Dispatcher) Dispatch(s Session, m *discordgo.MessageCreate) {
	rest, ok := d.stripPrefix(m.Content)
	if !ok {
		return
	}
	tokens := splitTokens(rest, d.delims)
	if len(tokens) == 0 {
		return
	}

	ctx := &Context{
		Session:  s,
		Message:  m,
		State:    d.st,
		Registry: d.registry,
		IsOwner:  d.IsOwner(m.Author.ID),
		Log:      d.log,
	}

	cmd, args, err := d.registry.Resolve(tokens)
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			msg := fmt.Sprintf("Unknown command: `%s`.", nf.Name)
			if nf.Suggestion != "" {
				msg = fmt.Sprintf("Unknown command: `%s`. Did you mean `%s`?", nf.Name, nf.Suggestion)
			}
			if rerr := ctx.Reply(msg); rerr != nil {
				d.log.Warn().Err(rerr).Msg("failed to send not-found reply")
			}
			d.log.Debug().Str("input", nf.Name).Str("suggestion", nf.Suggestion).Msg("command not found")
		}
		return
	}
	ctx.Command = cmd
	ctx.Args = args
	ctx.RawArgs = strings.Join(args, " ")

	if cmd.GuildOnly && m.GuildID == "" {
		_ = ctx.Reply("You must be in a guild to use this command.")
		return
	}
	if cmd.OwnerOnly && !ctx.IsOwner {
		_ = ctx.Reply("Only bot owners can use this command.")
		d.log.Debug().Str("command", cmd.Name).Str("user", m.Author.ID).Msg("owner check failed")
		return
	}
	for _, chk := range cmd.Checks {
		reason := chk.Evaluate(ctx)
		if reason == nil {
			continue
		}
		if reason.User != "" {
			_ = ctx.Reply(reason.User)
		}
		if reason.Log != "" {
			d.log.Warn().Str("command", cmd.Name).Str("user", m.Author.ID).Msg(reason.Log)
		}
		return
	}
	if ok, retryAfter, first := d.buckets.Consume(cmd.Bucket, m.Author.ID); !ok {
		if first {
			secs := int(math.Ceil(retryAfter.Seconds()))
			_ = ctx.Reply(fmt.Sprintf("Too fast. Try again in %ds.", secs))
		}
		d.log.Debug().Str("command", cmd.Name).Str("user", m.Author.ID).Dur("retry_after", retryAfter).Msg("rate limited")
		return
	}

	err = cmd.Handler(ctx)

	// Post-dispatch hook: the single place handler outcomes are logged.
	switch {
	case errors.Is(err, ErrRevertBucket):
		d.buckets.Refund(cmd.Bucket, m.Author.ID)
		d.log.Info().Str("command", cmd.Name).Str("user", m.Author.Username).Msg("command ok")
	case err != nil:
		d.log.Error().Err(err).Str("command", cmd.Name).Str("user", m.Author.Username).Msg("command failed")
	default:
		d.log.Info().Str("command", cmd.Name).Str("user", m.Author.Username).Msg("command ok")
	}
}

// stripPrefix removes a literal prefix or a mention of the bot. Both the
// plain and the nickname mention forms are accepted.
func (d *Dispatcher) stripPrefix(content string) (string, bool) {
	for _, p := range d.prefixes {
		if p != "" && strings.HasPrefix(content, p) {
			return strings.TrimLeft(content[len(p):], " "), true
		}
	}

	d.mu.RLock()
	selfID := d.selfID
	d.mu.RUnlock()
	if selfID == "" {
		return "", false
	}
	for _, mention := range []string{"<@" + selfID + ">", "<@!" + selfID + ">"} {
		if strings.HasPrefix(content, mention) {
			return strings.TrimLeft(content[len(mention):], " "), true
		}
	}
	return "", false
}

// splitTokens splits on the configured delimiter strings, first match wins
// at each position. Empty tokens are dropped, which makes repeated
// delimiters harmless.
func splitTokens(s string, delims []string) []string {
	var tokens []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for i := 0; i < len(s); {
		matched := ""
		for _, d := range delims {
			if d != "" && strings.HasPrefix(s[i:], d) {
				matched = d
				break
			}
		}
		if matched != "" {
			flush()
			i += len(matched)
			continue
		}
		cur.WriteByte(s[i])
		i++
	}
	flush()
	return tokens
}
