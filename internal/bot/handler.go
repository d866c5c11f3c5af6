package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/donaldgifford/deal-scanner/internal/store"
	"github.com/donaldgifford/deal-scanner/pkg/profit"
	domain "github.com/donaldgifford/deal-scanner/pkg/types"
)

const (
	colorAdded = 0x00FF00
	colorList  = 0x3498DB
	colorStats = 0x9B59B6
)

// CommandError is a user-facing rejection. The registry is left untouched.
type CommandError struct {
	Command string
	Reason  string
	Err     error
}

func (e *CommandError) Error() string {
	return "/" + e.Command + ": " + e.Reason
}

func (e *CommandError) Unwrap() error { return e.Err }

// Reply is the rendered response to a command.
type Reply struct {
	Content   string
	Embeds    []*discordgo.MessageEmbed
	Ephemeral bool
}

// AddInput holds the arguments of the add command. A nil Margin selects
// the policy default.
type AddInput struct {
	Name     string
	Keywords string
	MaxPrice decimal.Decimal
	Margin   *decimal.Decimal
}

// StatsProvider reports scanner statistics.
type StatsProvider interface {
	Stats(ctx context.Context) (*domain.Stats, error)
}

// Handler implements the command semantics independently of the Discord
// transport.
type Handler struct {
	registry store.SearchRegistry
	stats    StatsProvider
	policy   profit.Policy
	log      *slog.Logger
	newID    func() string
	now      func() time.Time
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithPolicy sets the resale defaults applied to new searches.
func WithPolicy(p profit.Policy) HandlerOption {
	return func(h *Handler) {
		h.policy = p
	}
}

// WithHandlerLogger sets the logger.
func WithHandlerLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) {
		h.log = l
	}
}

// WithIDFunc overrides search id generation.
func WithIDFunc(f func() string) HandlerOption {
	return func(h *Handler) {
		h.newID = f
	}
}

// WithClock overrides the creation timestamp source.
func WithClock(f func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.now = f
	}
}

// NewHandler creates a Handler backed by registry and stats.
func NewHandler(registry store.SearchRegistry, stats StatsProvider, opts ...HandlerOption) *Handler {
	h := &Handler{
		registry: registry,
		stats:    stats,
		policy:   profit.DefaultPolicy(),
		log:      slog.Default(),
		newID:    uuid.NewString,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Add registers a new search for ownerID.
func (h *Handler) Add(ctx context.Context, ownerID string, in AddInput) (*Reply, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &CommandError{Command: CommandAdd, Reason: "name is required"}
	}
	if !in.MaxPrice.IsPositive() {
		return nil, &CommandError{Command: CommandAdd, Reason: "max price must be greater than 0"}
	}

	margin := h.policy.DefaultMargin
	if in.Margin != nil {
		margin = *in.Margin
	}
	if margin.LessThanOrEqual(decimal.NewFromInt(1)) {
		return nil, &CommandError{Command: CommandAdd, Reason: "margin must be greater than 1"}
	}

	spec := &domain.SearchSpec{
		ID:           h.newID(),
		OwnerID:      ownerID,
		Name:         domain.TruncateTitle(name),
		Keywords:     strings.TrimSpace(in.Keywords),
		MaxPrice:     in.MaxPrice,
		ProfitMargin: margin,
		MinProfit:    h.policy.DefaultMinProfit,
		CreatedAt:    h.now().UTC(),
	}
	if err := spec.Validate(); err != nil {
		return nil, &CommandError{Command: CommandAdd, Reason: validationReason(err), Err: err}
	}

	if err := h.registry.AddSearch(ctx, spec); err != nil {
		return nil, fmt.Errorf("adding search: %w", err)
	}

	h.log.Info("search added", "owner", ownerID, "search", spec.Name, "id", spec.ID)

	return &Reply{
		Ephemeral: true,
		Embeds: []*discordgo.MessageEmbed{{
			Type:  discordgo.EmbedTypeRich,
			Title: "Search added",
			Description: fmt.Sprintf("**%s**\n`%s`\nMax: %s | Margin: %sx",
				spec.Name, spec.Keywords, spec.MaxPrice.StringFixed(2)+" €", spec.ProfitMargin.String()),
			Color: colorAdded,
		}},
	}, nil
}

// List renders the owner's searches with their 1-based positions.
func (h *Handler) List(ctx context.Context, ownerID string) (*Reply, error) {
	specs, err := h.registry.ListSearches(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing searches: %w", err)
	}
	if len(specs) == 0 {
		return &Reply{Content: "You have no saved searches. Use /add to create one.", Ephemeral: true}, nil
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(specs))
	for i := range specs {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  strconv.Itoa(i+1) + ". " + specs[i].Name,
			Value: fmt.Sprintf("`%s` | Max: %s €", specs[i].Keywords, specs[i].MaxPrice.StringFixed(2)),
		})
	}

	return &Reply{
		Ephemeral: true,
		Embeds: []*discordgo.MessageEmbed{{
			Type:   discordgo.EmbedTypeRich,
			Title:  "Your searches",
			Color:  colorList,
			Fields: fields,
		}},
	}, nil
}

// Remove deletes the owner's search at the 1-based index.
func (h *Handler) Remove(ctx context.Context, ownerID string, index int) (*Reply, error) {
	if index < 1 {
		return nil, &CommandError{Command: CommandRemove, Reason: "index must be 1 or greater"}
	}

	removed, err := h.registry.RemoveSearchByIndex(ctx, ownerID, index)
	if errors.Is(err, store.ErrSearchNotFound) {
		return nil, &CommandError{
			Command: CommandRemove,
			Reason:  fmt.Sprintf("no search at position %d, see /list", index),
			Err:     err,
		}
	}
	if err != nil {
		return nil, fmt.Errorf("removing search: %w", err)
	}

	h.log.Info("search removed", "owner", ownerID, "search", removed.Name, "id", removed.ID)

	return &Reply{Content: "Removed **" + removed.Name + "**.", Ephemeral: true}, nil
}

// Stats renders the scanner statistics. The reply is visible to the channel.
func (h *Handler) Stats(ctx context.Context) (*Reply, error) {
	st, err := h.stats.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading stats: %w", err)
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Users", Value: strconv.Itoa(st.Owners), Inline: true},
		{Name: "Searches", Value: strconv.Itoa(st.Searches), Inline: true},
		{Name: "Scans", Value: strconv.FormatInt(st.Scans, 10), Inline: true},
		{Name: "Seen items", Value: strconv.FormatInt(st.SeenItems, 10), Inline: true},
	}
	if st.LastCycleAt != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Last cycle",
			Value: fmt.Sprintf("%d deals, %d delivered", st.DealsLastCycle, st.DeliveredLastCycle),
		})
	}

	embed := &discordgo.MessageEmbed{
		Type:   discordgo.EmbedTypeRich,
		Title:  "Scanner stats",
		Color:  colorStats,
		Fields: fields,
	}
	if st.LastCycleAt != nil {
		embed.Timestamp = st.LastCycleAt.Format(time.RFC3339)
	}

	return &Reply{Embeds: []*discordgo.MessageEmbed{embed}}, nil
}

// validationReason flattens a joined validation error into one line.
func validationReason(err error) string {
	msg := strings.TrimPrefix(err.Error(), domain.ErrInvalidSearch.Error()+": ")
	return strings.ReplaceAll(msg, "\n", "; ")
}
