package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"

	"github.com/donaldgifford/deal-scanner/internal/metrics"
)

// ErrNoApplicationID is returned by Run when the bot user is unknown after
// the session opened.
var ErrNoApplicationID = errors.New("discord application id unknown")

const handleTimeout = 10 * time.Second

// Session is the subset of *discordgo.Session used by the bot.
type Session interface {
	AddHandler(handler any) func()
	Open() error
	Close() error
	ApplicationCommandBulkOverwrite(
		appID, guildID string,
		commands []*discordgo.ApplicationCommand,
		options ...discordgo.RequestOption,
	) ([]*discordgo.ApplicationCommand, error)
	ApplicationCommandDelete(appID, guildID, cmdID string, options ...discordgo.RequestOption) error
	InteractionRespond(
		interaction *discordgo.Interaction,
		resp *discordgo.InteractionResponse,
		options ...discordgo.RequestOption,
	) error
}

// Announcer posts the startup message.
type Announcer interface {
	Announce(ctx context.Context, embed *discordgo.MessageEmbed) error
}

// Bot registers the slash commands and routes interactions to a Handler.
type Bot struct {
	session      Session
	handler      *Handler
	log          *slog.Logger
	appID        string
	guildID      string
	keepCommands bool
	announcer    Announcer
	baseCtx      context.Context
}

// Option configures a Bot.
type Option func(*Bot)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bot) {
		b.log = l
	}
}

// WithGuild registers the commands on one guild instead of globally.
func WithGuild(guildID string) Option {
	return func(b *Bot) {
		b.guildID = guildID
	}
}

// WithApplicationID sets the application id. By default it is read from
// the session state once connected.
func WithApplicationID(id string) Option {
	return func(b *Bot) {
		b.appID = id
	}
}

// WithKeepCommands leaves the commands registered when Run returns.
func WithKeepCommands(keep bool) Option {
	return func(b *Bot) {
		b.keepCommands = keep
	}
}

// WithStartupAnnouncement posts a usage embed through a once connected.
func WithStartupAnnouncement(a Announcer) Option {
	return func(b *Bot) {
		b.announcer = a
	}
}

// New creates a Bot.
func New(s Session, h *Handler, opts ...Option) *Bot {
	b := &Bot{
		session: s,
		handler: h,
		log:     slog.Default(),
		baseCtx: context.Background(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run opens the session, registers the commands and serves interactions
// until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	b.baseCtx = ctx
	remove := b.session.AddHandler(b.onInteraction)
	defer remove()

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("opening discord session: %w", err)
	}
	defer func() {
		if err := b.session.Close(); err != nil {
			b.log.Warn("closing discord session", "error", err)
		}
	}()

	appID := b.applicationID()
	if appID == "" {
		return ErrNoApplicationID
	}

	registered, err := b.session.ApplicationCommandBulkOverwrite(
		appID, b.guildID, Commands(), discordgo.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("registering commands: %w", err)
	}
	b.log.Info("discord commands registered", "count", len(registered), "guild", b.guildID)

	if b.announcer != nil {
		if err := b.announcer.Announce(ctx, StartupEmbed()); err != nil {
			b.log.Warn("startup announcement failed", "error", err)
		}
	}

	<-ctx.Done()

	if !b.keepCommands {
		b.removeCommands(appID, registered)
	}
	b.log.Info("discord bot stopped")
	return nil
}

func (b *Bot) removeCommands(appID string, cmds []*discordgo.ApplicationCommand) {
	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	for _, cmd := range cmds {
		if err := b.session.ApplicationCommandDelete(appID, b.guildID, cmd.ID, discordgo.WithContext(ctx)); err != nil {
			b.log.Warn("deleting command", "command", cmd.Name, "error", err)
		}
	}
}

func (b *Bot) applicationID() string {
	if b.appID != "" {
		return b.appID
	}
	if ds, ok := b.session.(*discordgo.Session); ok && ds.State != nil && ds.State.User != nil {
		return ds.State.User.ID
	}
	return ""
}

func (b *Bot) onInteraction(_ *discordgo.Session, ic *discordgo.InteractionCreate) {
	if ic.Type != discordgo.InteractionApplicationCommand {
		return
	}

	ctx, cancel := context.WithTimeout(b.baseCtx, handleTimeout)
	defer cancel()

	resp := b.Respond(ctx, ic.Interaction)
	if err := b.session.InteractionRespond(ic.Interaction, resp, discordgo.WithContext(ctx)); err != nil {
		b.log.Error("responding to interaction", "command", ic.ApplicationCommandData().Name, "error", err)
	}
}

// Respond runs the command carried by an application command interaction
// and renders the Discord response.
func (b *Bot) Respond(ctx context.Context, i *discordgo.Interaction) *discordgo.InteractionResponse {
	data := i.ApplicationCommandData()
	ownerID := interactionUserID(i)
	opts := optionMap(data.Options)

	var (
		reply *Reply
		err   error
	)
	switch data.Name {
	case CommandAdd:
		reply, err = b.handler.Add(ctx, ownerID, addInput(opts))
	case CommandList:
		reply, err = b.handler.List(ctx, ownerID)
	case CommandRemove:
		var index int
		if o, ok := opts[optIndex]; ok {
			index = int(o.IntValue())
		}
		reply, err = b.handler.Remove(ctx, ownerID, index)
	case CommandStats:
		reply, err = b.handler.Stats(ctx)
	default:
		err = &CommandError{Command: data.Name, Reason: "unknown command"}
	}

	reply = b.render(data.Name, ownerID, reply, err)
	return toResponse(reply)
}

func (b *Bot) render(command, ownerID string, reply *Reply, err error) *Reply {
	var cmdErr *CommandError
	switch {
	case err == nil:
		metrics.CommandsTotal.WithLabelValues(command, "ok").Inc()
		return reply
	case errors.As(err, &cmdErr):
		metrics.CommandsTotal.WithLabelValues(command, "rejected").Inc()
		b.log.Debug("command rejected", "command", command, "owner", ownerID, "reason", cmdErr.Reason)
		return &Reply{Content: "Rejected: " + cmdErr.Reason, Ephemeral: true}
	default:
		metrics.CommandsTotal.WithLabelValues(command, "error").Inc()
		b.log.Error("command failed", "command", command, "owner", ownerID, "error", err)
		return &Reply{Content: "Something went wrong running /" + command + ", try again later.", Ephemeral: true}
	}
}

func toResponse(r *Reply) *discordgo.InteractionResponse {
	data := &discordgo.InteractionResponseData{
		Content: r.Content,
		Embeds:  r.Embeds,
	}
	if r.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}

// StartupEmbed lists the available commands.
func StartupEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Type:        discordgo.EmbedTypeRich,
		Title:       "Deal scanner online",
		Description: "Scanning the catalog around the clock. Use `/add` to get started.",
		Color:       colorAdded,
		Fields: []*discordgo.MessageEmbedField{{
			Name: "Commands",
			Value: "`/add` add a search\n" +
				"`/list` list your searches\n" +
				"`/remove` remove a search\n" +
				"`/stats` scanner statistics",
		}},
	}
}

func interactionUserID(i *discordgo.Interaction) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func optionMap(
	options []*discordgo.ApplicationCommandInteractionDataOption,
) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, o := range options {
		m[o.Name] = o
	}
	return m
}

func addInput(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) AddInput {
	var in AddInput
	if o, ok := opts[optName]; ok {
		in.Name = o.StringValue()
	}
	if o, ok := opts[optKeywords]; ok {
		in.Keywords = o.StringValue()
	}
	if o, ok := opts[optMaxPrice]; ok {
		in.MaxPrice = decimal.NewFromFloat(o.FloatValue())
	}
	if o, ok := opts[optMargin]; ok {
		m := decimal.NewFromFloat(o.FloatValue())
		in.Margin = &m
	}
	return in
}
