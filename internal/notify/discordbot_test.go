package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMessage struct {
	channelID string
	msg       *discordgo.MessageSend
}

type fakeSession struct {
	mu sync.Mutex

	dmErr       error
	sendErr     map[string]error
	guilds      []*discordgo.UserGuild
	channels    map[string][]*discordgo.Channel
	channelErr  error
	sent        []sentMessage
	guildCalls  int
	channelHits int
}

func (f *fakeSession) UserChannelCreate(recipientID string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	if f.dmErr != nil {
		return nil, f.dmErr
	}
	return &discordgo.Channel{ID: "dm-" + recipientID, Type: discordgo.ChannelTypeDM}, nil
}

func (f *fakeSession) ChannelMessageSendComplex(
	channelID string,
	data *discordgo.MessageSend,
	_ ...discordgo.RequestOption,
) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.sendErr[channelID]; err != nil {
		return nil, err
	}
	f.sent = append(f.sent, sentMessage{channelID: channelID, msg: data})
	return &discordgo.Message{ChannelID: channelID}, nil
}

func (f *fakeSession) GuildChannels(guildID string, _ ...discordgo.RequestOption) ([]*discordgo.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.channelHits++
	if f.channelErr != nil {
		return nil, f.channelErr
	}
	return f.channels[guildID], nil
}

func (f *fakeSession) UserGuilds(int, string, string, bool, ...discordgo.RequestOption) ([]*discordgo.UserGuild, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.guildCalls++
	return f.guilds, nil
}

func guildWithChannels() *fakeSession {
	return &fakeSession{
		guilds: []*discordgo.UserGuild{{ID: "g1"}},
		channels: map[string][]*discordgo.Channel{
			"g1": {
				{ID: "voice", Type: discordgo.ChannelTypeGuildVoice, Position: 0},
				{ID: "deals", Type: discordgo.ChannelTypeGuildText, Position: 3},
				{ID: "general", Type: discordgo.ChannelTypeGuildText, Position: 1},
			},
			"g2": {
				{ID: "g2-text", Type: discordgo.ChannelTypeGuildText, Position: 0},
			},
		},
	}
}

func TestDiscordBotNotifier_SendDirect(t *testing.T) {
	t.Parallel()

	s := guildWithChannels()
	n := NewDiscordBotNotifier(s, WithBotLogger(quietLogger()))

	require.NoError(t, n.SendDirect(context.Background(), "42", testDeal()))

	require.Len(t, s.sent, 1)
	assert.Equal(t, "dm-42", s.sent[0].channelID)
	assert.Empty(t, s.sent[0].msg.Content)
	require.Len(t, s.sent[0].msg.Embeds, 1)
	assert.Equal(t, "Deal Alert: Nike Air Max 90", s.sent[0].msg.Embeds[0].Title)
}

func TestDiscordBotNotifier_SendDirect_Errors(t *testing.T) {
	t.Parallel()

	t.Run("dm channel refused", func(t *testing.T) {
		t.Parallel()

		s := guildWithChannels()
		s.dmErr = errors.New("cannot send messages to this user")
		n := NewDiscordBotNotifier(s)

		err := n.SendDirect(context.Background(), "42", testDeal())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "opening DM channel")
	})

	t.Run("message rejected", func(t *testing.T) {
		t.Parallel()

		s := guildWithChannels()
		s.sendErr = map[string]error{"dm-42": errors.New("50007")}
		n := NewDiscordBotNotifier(s)

		err := n.SendDirect(context.Background(), "42", testDeal())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sending DM to 42")
	})
}

func TestDiscordBotNotifier_SendFallback_Discovery(t *testing.T) {
	t.Parallel()

	s := guildWithChannels()
	n := NewDiscordBotNotifier(s, WithBotLogger(quietLogger()))

	require.NoError(t, n.SendFallback(context.Background(), "42", testDeal()))
	require.NoError(t, n.SendFallback(context.Background(), "43", testDeal()))

	require.Len(t, s.sent, 2)
	assert.Equal(t, "general", s.sent[0].channelID)
	assert.Equal(t, "<@42>", s.sent[0].msg.Content)
	assert.Equal(t, []string{"42"}, s.sent[0].msg.AllowedMentions.Users)
	assert.Equal(t, "<@43>", s.sent[1].msg.Content)

	// Discovery is cached after the first lookup.
	assert.Equal(t, 1, s.guildCalls)
	assert.Equal(t, 1, s.channelHits)
}

func TestDiscordBotNotifier_SendFallback_ConfiguredTargets(t *testing.T) {
	t.Parallel()

	t.Run("pinned channel skips discovery", func(t *testing.T) {
		t.Parallel()

		s := guildWithChannels()
		n := NewDiscordBotNotifier(s, WithFallbackChannel("alerts"))

		require.NoError(t, n.SendFallback(context.Background(), "42", testDeal()))
		require.Len(t, s.sent, 1)
		assert.Equal(t, "alerts", s.sent[0].channelID)
		assert.Zero(t, s.guildCalls)
		assert.Zero(t, s.channelHits)
	})

	t.Run("configured guild", func(t *testing.T) {
		t.Parallel()

		s := guildWithChannels()
		n := NewDiscordBotNotifier(s, WithGuild("g2"), WithBotLogger(quietLogger()))

		require.NoError(t, n.SendFallback(context.Background(), "42", testDeal()))
		require.Len(t, s.sent, 1)
		assert.Equal(t, "g2-text", s.sent[0].channelID)
		assert.Zero(t, s.guildCalls)
	})
}

func TestDiscordBotNotifier_SendFallback_NoChannel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		session *fakeSession
		wantIs  error
		errMsg  string
	}{
		{
			name:    "bot is in no guild",
			session: &fakeSession{},
			wantIs:  ErrNoFallbackChannel,
		},
		{
			name: "guild has no text channel",
			session: &fakeSession{
				guilds: []*discordgo.UserGuild{{ID: "g1"}},
				channels: map[string][]*discordgo.Channel{
					"g1": {{ID: "v", Type: discordgo.ChannelTypeGuildVoice}},
				},
			},
			wantIs: ErrNoFallbackChannel,
		},
		{
			name: "channel listing fails",
			session: &fakeSession{
				guilds:     []*discordgo.UserGuild{{ID: "g1"}},
				channelErr: errors.New("missing access"),
			},
			errMsg: "listing channels of guild g1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := NewDiscordBotNotifier(tt.session)
			err := n.SendFallback(context.Background(), "42", testDeal())
			require.Error(t, err)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
			assert.Empty(t, tt.session.sent)
		})
	}
}

func TestDiscordBotNotifier_Announce(t *testing.T) {
	t.Parallel()

	s := guildWithChannels()
	n := NewDiscordBotNotifier(s, WithFallbackChannel("alerts"))

	require.NoError(t, n.Announce(context.Background(), &discordgo.MessageEmbed{Title: "hello"}))
	require.Len(t, s.sent, 1)
	assert.Equal(t, "hello", s.sent[0].msg.Embeds[0].Title)
}

func TestFirstTextChannel(t *testing.T) {
	t.Parallel()

	assert.Empty(t, firstTextChannel(nil))
	assert.Equal(t, "b", firstTextChannel([]*discordgo.Channel{
		{ID: "a", Type: discordgo.ChannelTypeGuildText, Position: 5},
		{ID: "b", Type: discordgo.ChannelTypeGuildText, Position: 2},
		{ID: "c", Type: discordgo.ChannelTypeGuildCategory, Position: 0},
	}))
}
