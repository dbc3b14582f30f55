package emoji

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smyklot/internal/command"
	"smyklot/internal/command/commandtest"
	"smyklot/internal/state"
)

func testContext(args []string, raw string) (*command.Context, *commandtest.Session) {
	sess := &commandtest.Session{}
	ctx := &command.Context{
		Session: sess,
		State:   state.New(state.Data{}),
		Args:    args,
		RawArgs: raw,
		Message: &discordgo.MessageCreate{Message: &discordgo.Message{
			ID:        "m1",
			ChannelID: "c1",
			GuildID:   "g1",
			Author:    &discordgo.User{ID: "u1", Username: "bob"},
		}},
	}
	return ctx, sess
}

func TestCatRefundsBucket(t *testing.T) {
	ctx, sess := testContext(nil, "")

	err := cat(ctx)
	assert.ErrorIs(t, err, command.ErrRevertBucket)
	require.Len(t, sess.Sent, 1)
	assert.Equal(t, ":cat:", sess.Sent[0].Content)
}

func TestDogDoesNotRefund(t *testing.T) {
	ctx, sess := testContext(nil, "")

	require.NoError(t, dog(ctx))
	require.Len(t, sess.Sent, 1)
	assert.Equal(t, ":dog:", sess.Sent[0].Content)
}

func TestEggplantRefundsBucket(t *testing.T) {
	ctx, sess := testContext(nil, "")

	err := eggplant(ctx)
	assert.ErrorIs(t, err, command.ErrRevertBucket)
	require.Len(t, sess.Sent, 1)
	assert.Equal(t, baklazanEmoji, sess.Sent[0].Content)
}

func TestBird(t *testing.T) {
	ctx, sess := testContext(nil, "")
	require.NoError(t, bird(ctx))
	require.Len(t, sess.Sent, 1)
	assert.Equal(t, ":bird: can find animals for you.", sess.Sent[0].Content)

	ctx, sess = testContext([]string{"giant", "wombat"}, "giant wombat")
	require.NoError(t, bird(ctx))
	require.Len(t, sess.Sent, 1)
	assert.Equal(t, ":bird: could not find animal named: `giant wombat`.", sess.Sent[0].Content)
}

func TestCatSendFailurePropagates(t *testing.T) {
	ctx, sess := testContext(nil, "")
	sess.SendErr = assert.AnError

	err := cat(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, command.ErrRevertBucket, "a failed attempt must keep its bucket charge")
}
