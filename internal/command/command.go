// Package command implements the bot's engineered core: a registry of
// command descriptors organized into groups, a dispatcher that routes
// incoming messages to handlers, per-command rate-limit buckets, and
// check predicates gating execution.
package command

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"smyklot/internal/state"
)

// HandlerFunc runs one command invocation. Returning ErrRevertBucket counts
// as success and refunds the caller's bucket slot.
type HandlerFunc func(ctx *Context) error

// Command is the static descriptor for one command: identity, metadata, and
// the gates the dispatcher applies before invoking the handler.
type Command struct {
	Name        string
	Aliases     []string
	Description string

	// Bucket names the shared rate-limit bucket, empty for unlimited.
	Bucket string

	// Checks are evaluated in order; the first failure aborts dispatch.
	Checks []Check

	GuildOnly bool
	OwnerOnly bool
	Hidden    bool

	Handler HandlerFunc
}

// Context carries everything a handler may need for one invocation. The
// dispatcher fills it in; handlers must not retain it past their return.
type Context struct {
	Session  Session
	Message  *discordgo.MessageCreate
	State    *state.State
	Registry *Registry
	Command  *Command

	// Args is the tokenized remainder after the command name; RawArgs is
	// the same remainder joined back with single spaces.
	Args    []string
	RawArgs string

	IsOwner bool
	Log     zerolog.Logger
}

// Reply sends content as a reply to the invoking message.
func (c *Context) Reply(content string) error {
	_, err := c.Session.ChannelMessageSendReply(c.Message.ChannelID, content, c.Message.Reference())
	return err
}

// Say sends content to the invoking channel without a reply reference.
func (c *Context) Say(content string) error {
	_, err := c.Session.ChannelMessageSend(c.Message.ChannelID, content)
	return err
}
