// Package commandtest provides a recording Session implementation for
// handler and dispatcher tests.
package commandtest

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

// Sent is one outbound message captured by the recording session.
type Sent struct {
	ChannelID string
	Content   string
	IsReply   bool
}

// RoleChange is one role grant or revocation captured by the session.
type RoleChange struct {
	GuildID string
	UserID  string
	RoleID  string
	Added   bool
}

// ChannelEditCall is one channel settings change captured by the session.
type ChannelEditCall struct {
	ChannelID string
	Edit      *discordgo.ChannelEdit
}

// Session records every call the command layer makes. Configure lookup data
// and failure injection through the exported fields.
type Session struct {
	Sent      []Sent
	RoleCalls []RoleChange
	Edits     []ChannelEditCall

	Activity    string
	ActivitySet bool
	Status      *discordgo.UpdateStatusData

	// Lookup data served to handlers.
	MembersByGuild map[string][]*discordgo.Member
	MemberByID     map[string]*discordgo.Member
	Channels       map[string]*discordgo.Channel

	// Failure injection. A nil field means the call succeeds.
	SendErr     error
	RoleErr     error
	EditErr     error
	PresenceErr error
}

// Replies returns only the messages sent as replies.
func (s *Session) Replies() []Sent {
	var out []Sent
	for _, m := range s.Sent {
		if m.IsReply {
			out = append(out, m)
		}
	}
	return out
}

func (s *Session) ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	if s.SendErr != nil {
		return nil, s.SendErr
	}
	s.Sent = append(s.Sent, Sent{ChannelID: channelID, Content: content})
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

func (s *Session) ChannelMessageSendReply(channelID string, content string, reference *discordgo.MessageReference, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	if s.SendErr != nil {
		return nil, s.SendErr
	}
	s.Sent = append(s.Sent, Sent{ChannelID: channelID, Content: content, IsReply: true})
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

func (s *Session) Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	ch, ok := s.Channels[channelID]
	if !ok {
		return nil, errors.New("unknown channel")
	}
	return ch, nil
}

func (s *Session) ChannelEdit(channelID string, data *discordgo.ChannelEdit, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	if s.EditErr != nil {
		return nil, s.EditErr
	}
	s.Edits = append(s.Edits, ChannelEditCall{ChannelID: channelID, Edit: data})
	return &discordgo.Channel{ID: channelID}, nil
}

func (s *Session) GuildMember(guildID string, userID string, options ...discordgo.RequestOption) (*discordgo.Member, error) {
	m, ok := s.MemberByID[userID]
	if !ok {
		return nil, errors.New("unknown member")
	}
	return m, nil
}

func (s *Session) GuildMembers(guildID string, after string, limit int, options ...discordgo.RequestOption) ([]*discordgo.Member, error) {
	return s.MembersByGuild[guildID], nil
}

func (s *Session) GuildMemberRoleAdd(guildID string, userID string, roleID string, options ...discordgo.RequestOption) error {
	if s.RoleErr != nil {
		return s.RoleErr
	}
	s.RoleCalls = append(s.RoleCalls, RoleChange{GuildID: guildID, UserID: userID, RoleID: roleID, Added: true})
	return nil
}

func (s *Session) GuildMemberRoleRemove(guildID string, userID string, roleID string, options ...discordgo.RequestOption) error {
	if s.RoleErr != nil {
		return s.RoleErr
	}
	s.RoleCalls = append(s.RoleCalls, RoleChange{GuildID: guildID, UserID: userID, RoleID: roleID, Added: false})
	return nil
}

func (s *Session) UpdateGameStatus(idle int, name string) error {
	if s.PresenceErr != nil {
		return s.PresenceErr
	}
	s.Activity = name
	s.ActivitySet = true
	return nil
}

func (s *Session) UpdateStatusComplex(usd discordgo.UpdateStatusData) error {
	if s.PresenceErr != nil {
		return s.PresenceErr
	}
	s.Status = &usd
	return nil
}
