package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/donaldgifford/deal-scanner/internal/bot"
	"github.com/donaldgifford/deal-scanner/internal/config"
	"github.com/donaldgifford/deal-scanner/internal/engine"
	"github.com/donaldgifford/deal-scanner/internal/notify"
	"github.com/donaldgifford/deal-scanner/internal/store"
	"github.com/donaldgifford/deal-scanner/internal/vinted"
	"github.com/donaldgifford/deal-scanner/pkg/profit"
	domain "github.com/donaldgifford/deal-scanner/pkg/types"
)

// backend is a connection that can be pinged and released.
type backend interface {
	Ping(ctx context.Context) error
	Close()
}

// stores bundles the registry and seen-set selected by the storage config.
type stores struct {
	registry store.SearchRegistry
	seen     store.SeenStore
	backends []backend
}

// Ping checks every open backend.
func (s *stores) Ping(ctx context.Context) error {
	var errs []error
	for _, b := range s.backends {
		if err := b.Ping(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close releases every open backend.
func (s *stores) Close() {
	for _, b := range s.backends {
		b.Close()
	}
}

func openStores(ctx context.Context, cfg *config.StorageConfig, dedup *config.DedupConfig) (*stores, error) {
	s := &stores{}

	switch cfg.Backend {
	case config.BackendPostgres:
		pg, err := store.NewPostgresStore(ctx, cfg.Postgres.DSN(), store.WithPoolSize(int32(cfg.Postgres.PoolSize))) //nolint:gosec // bounded by config
		if err != nil {
			return nil, fmt.Errorf("opening postgres store: %w", err)
		}
		if err := pg.Migrate(ctx); err != nil {
			pg.Close()
			return nil, fmt.Errorf("migrating postgres store: %w", err)
		}
		s.registry, s.seen = pg, pg
		s.backends = append(s.backends, pg)
	case config.BackendMongo:
		m, err := store.NewMongoStore(ctx, cfg.Mongo.URI, cfg.Mongo.Database, store.WithSeenTTL(dedup.TTL))
		if err != nil {
			return nil, fmt.Errorf("opening mongo store: %w", err)
		}
		s.registry, s.seen = m, m
		s.backends = append(s.backends, m)
	default:
		m := store.NewMemoryStore()
		s.registry, s.seen = m, m
		s.backends = append(s.backends, m)
	}

	if cfg.SeenBackend() == config.BackendRedis {
		client, err := store.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("opening redis seen store: %w", err)
		}
		opts := []store.RedisOption{store.WithRedisTTL(dedup.TTL)}
		if cfg.Redis.Prefix != "" {
			opts = append(opts, store.WithRedisPrefix(cfg.Redis.Prefix))
		}
		r := store.NewRedisSeenStore(client, opts...)
		s.seen = r
		s.backends = append(s.backends, r)
	}

	return s, nil
}

func buildSource(cfg *config.SourceConfig, log *slog.Logger) *vinted.Source {
	limiter := vinted.NewRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst, cfg.RateLimit.DailyLimit)

	var (
		client  vinted.CatalogClient
		baseURL string
	)
	switch cfg.Kind {
	case config.SourceScrape:
		sc := vinted.NewScrapeClient(
			vinted.WithScrapeBaseURL(cfg.BaseURL),
			vinted.WithSelectors(vinted.Selectors(cfg.Selectors)),
			vinted.WithScrapeTimeout(cfg.Timeout),
			vinted.WithScrapeUserAgents(cfg.UserAgents),
			vinted.WithScrapeRateLimiter(limiter),
		)
		client, baseURL = sc, sc.BaseURL()
	default:
		ac := vinted.NewAPIClient(
			vinted.WithBaseURL(cfg.BaseURL),
			vinted.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
			vinted.WithUserAgents(cfg.UserAgents),
			vinted.WithRateLimiter(limiter),
		)
		client, baseURL = ac, ac.BaseURL()
	}

	return vinted.NewSource(client, baseURL,
		vinted.WithPerPage(cfg.PageSize),
		vinted.WithRequestDelay(cfg.RequestDelayMin, cfg.RequestDelayMax),
		vinted.WithSourceLogger(log),
	)
}

func buildPolicy(cfg *config.ProfitConfig) profit.Policy {
	return profit.Policy{
		RetentionRate:    *cfg.RetentionRate,
		FixedFee:         *cfg.FixedFee,
		DefaultMargin:    *cfg.DefaultMargin,
		DefaultMinProfit: *cfg.DefaultMinProfit,
	}
}

// app holds the assembled runtime. session and discordBot are nil when no
// bot token is configured.
type app struct {
	stores     *stores
	engine     *engine.Engine
	session    *discordgo.Session
	discordBot *bot.Bot
	policy     profit.Policy
}

func (a *app) close() {
	a.stores.Close()
}

// buildApp opens the stores and assembles source, sink and engine. The
// Discord session is created but not opened; bot.Run opens it.
func buildApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	st, err := openStores(ctx, &cfg.Storage, &cfg.Dedup)
	if err != nil {
		return nil, err
	}

	a := &app{stores: st, policy: buildPolicy(&cfg.Profit)}

	var botNotifier *notify.DiscordBotNotifier
	if cfg.Discord.Token != "" {
		a.session, err = discordgo.New("Bot " + cfg.Discord.Token)
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("creating discord session: %w", err)
		}
		a.session.Identify.Intents = discordgo.IntentsGuilds
		botNotifier = notify.NewDiscordBotNotifier(a.session,
			notify.WithGuild(cfg.Discord.GuildID),
			notify.WithFallbackChannel(cfg.Discord.FallbackChannelID),
			notify.WithBotLogger(log),
		)
	}

	sink, err := buildSink(&cfg.Notifications, botNotifier, log)
	if err != nil {
		st.Close()
		return nil, err
	}

	evaluator := profit.NewEvaluator(a.policy, profit.WithKeyScheme(domain.KeyScheme(cfg.Dedup.Key)))
	a.engine = engine.NewEngine(st.registry, st.seen, buildSource(&cfg.Source, log), sink,
		engine.WithLogger(log),
		engine.WithEvaluator(evaluator),
		engine.WithMaxCandidates(cfg.Schedule.MaxCandidates),
		engine.WithPacing(cfg.Schedule.ItemPacing, cfg.Schedule.SearchPacing),
	)

	if a.session != nil {
		handler := bot.NewHandler(st.registry, a.engine,
			bot.WithPolicy(a.policy),
			bot.WithHandlerLogger(log),
		)
		opts := []bot.Option{
			bot.WithLogger(log),
			bot.WithGuild(cfg.Discord.GuildID),
			bot.WithKeepCommands(cfg.Discord.KeepCommands),
		}
		if cfg.Discord.StartupAnnounce {
			opts = append(opts, bot.WithStartupAnnouncement(botNotifier))
		}
		a.discordBot = bot.New(a.session, handler, opts...)
	}

	return a, nil
}

func buildSink(cfg *config.NotificationsConfig, botNotifier *notify.DiscordBotNotifier, log *slog.Logger) (notify.Notifier, error) {
	switch cfg.Sink {
	case config.SinkBot:
		if botNotifier == nil {
			return nil, config.ErrMissingToken
		}
		return botNotifier, nil
	case config.SinkWebhook:
		return notify.NewWebhookNotifier(cfg.WebhookURL), nil
	case config.SinkNoop:
		return notify.NewNoOpNotifier(log), nil
	default:
		return nil, fmt.Errorf("unknown notification sink %q", cfg.Sink)
	}
}
