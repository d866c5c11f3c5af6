package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/donaldgifford/deal-scanner/internal/metrics"
	domain "github.com/donaldgifford/deal-scanner/pkg/types"
)

// ErrNoFallbackChannel is returned when no text channel could be found for
// fallback delivery.
var ErrNoFallbackChannel = errors.New("no fallback text channel available")

// Session is the subset of *discordgo.Session the bot notifier needs.
type Session interface {
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendComplex(
		channelID string,
		data *discordgo.MessageSend,
		options ...discordgo.RequestOption,
	) (*discordgo.Message, error)
	GuildChannels(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Channel, error)
	UserGuilds(
		limit int,
		beforeID, afterID string,
		withCounts bool,
		options ...discordgo.RequestOption,
	) ([]*discordgo.UserGuild, error)
}

// DiscordBotNotifier implements Notifier through a bot session: direct
// messages go to the owner's DM channel, fallbacks to a guild text channel.
type DiscordBotNotifier struct {
	session Session
	guildID string
	log     *slog.Logger

	mu        sync.Mutex
	channelID string
}

// BotNotifierOption configures a DiscordBotNotifier.
type BotNotifierOption func(*DiscordBotNotifier)

// WithFallbackChannel pins the fallback channel instead of discovering one.
func WithFallbackChannel(channelID string) BotNotifierOption {
	return func(d *DiscordBotNotifier) {
		d.channelID = channelID
	}
}

// WithGuild restricts fallback channel discovery to one guild.
func WithGuild(guildID string) BotNotifierOption {
	return func(d *DiscordBotNotifier) {
		d.guildID = guildID
	}
}

// WithBotLogger sets a custom logger.
func WithBotLogger(l *slog.Logger) BotNotifierOption {
	return func(d *DiscordBotNotifier) {
		d.log = l
	}
}

// NewDiscordBotNotifier creates a notifier on top of an open session.
func NewDiscordBotNotifier(s Session, opts ...BotNotifierOption) *DiscordBotNotifier {
	d := &DiscordBotNotifier{
		session: s,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SendDirect opens (or reuses) the DM channel with userID and posts the deal.
func (d *DiscordBotNotifier) SendDirect(ctx context.Context, userID string, deal *domain.Deal) error {
	ch, err := d.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("opening DM channel with %s: %w", userID, err)
	}

	if err := d.send(ctx, ch.ID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{BuildEmbed(deal)},
	}); err != nil {
		return fmt.Errorf("sending DM to %s: %w", userID, err)
	}
	return nil
}

// SendFallback posts the deal to the fallback channel with a mention of
// userID.
func (d *DiscordBotNotifier) SendFallback(ctx context.Context, userID string, deal *domain.Deal) error {
	channelID, err := d.fallbackChannel(ctx)
	if err != nil {
		return err
	}

	if err := d.send(ctx, channelID, &discordgo.MessageSend{
		Content: Mention(userID),
		Embeds:  []*discordgo.MessageEmbed{BuildEmbed(deal)},
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Users: []string{userID},
		},
	}); err != nil {
		return fmt.Errorf("posting to channel %s: %w", channelID, err)
	}
	return nil
}

// Announce posts a plain embed to the fallback channel.
func (d *DiscordBotNotifier) Announce(ctx context.Context, embed *discordgo.MessageEmbed) error {
	channelID, err := d.fallbackChannel(ctx)
	if err != nil {
		return err
	}
	return d.send(ctx, channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
}

func (d *DiscordBotNotifier) send(ctx context.Context, channelID string, msg *discordgo.MessageSend) error {
	start := time.Now()
	_, err := d.session.ChannelMessageSendComplex(channelID, msg, discordgo.WithContext(ctx))
	metrics.NotificationDuration.Observe(time.Since(start).Seconds())
	return err
}

// fallbackChannel returns the configured channel, or the first text channel
// of the configured guild (or the bot's first guild). The result is cached.
func (d *DiscordBotNotifier) fallbackChannel(ctx context.Context) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.channelID != "" {
		return d.channelID, nil
	}

	guildID := d.guildID
	if guildID == "" {
		guilds, err := d.session.UserGuilds(1, "", "", false, discordgo.WithContext(ctx))
		if err != nil {
			return "", fmt.Errorf("listing guilds: %w", err)
		}
		if len(guilds) == 0 {
			return "", ErrNoFallbackChannel
		}
		guildID = guilds[0].ID
	}

	channels, err := d.session.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("listing channels of guild %s: %w", guildID, err)
	}

	id := firstTextChannel(channels)
	if id == "" {
		return "", ErrNoFallbackChannel
	}

	d.log.Info("discovered fallback channel", "guild", guildID, "channel", id)
	d.channelID = id
	return id, nil
}

func firstTextChannel(channels []*discordgo.Channel) string {
	text := make([]*discordgo.Channel, 0, len(channels))
	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildText {
			text = append(text, ch)
		}
	}
	if len(text) == 0 {
		return ""
	}
	slices.SortStableFunc(text, func(a, b *discordgo.Channel) int {
		return a.Position - b.Position
	})
	return text[0].ID
}
