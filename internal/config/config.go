// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrMissingToken is returned when the bot sink is selected without a token.
var ErrMissingToken = errors.New("discord.token is required (set DISCORD_TOKEN)")

// Notification sinks.
const (
	SinkBot     = "bot"
	SinkWebhook = "webhook"
	SinkNoop    = "noop"
)

// Source kinds.
const (
	SourceCatalogAPI = "catalog_api"
	SourceScrape     = "scrape"
)

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
	BackendRedis    = "redis"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Discord       DiscordConfig       `yaml:"discord"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Source        SourceConfig        `yaml:"source"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Profit        ProfitConfig        `yaml:"profit"`
	Dedup         DedupConfig         `yaml:"dedup"`
	Storage       StorageConfig       `yaml:"storage"`
	Logging       LoggingConfig       `yaml:"logging"`
	Tracing       TracingConfig       `yaml:"tracing"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Enabled      *bool         `yaml:"enabled"` // default: true
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// IsEnabled reports whether the HTTP API should be started.
func (s *ServerConfig) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// DiscordConfig defines the bot session settings.
type DiscordConfig struct {
	Token string `yaml:"token"`
	// GuildID scopes slash commands and fallback discovery to one guild.
	GuildID           string `yaml:"guild_id"`
	FallbackChannelID string `yaml:"fallback_channel_id"`
	// KeepCommands leaves the slash commands registered on shutdown.
	KeepCommands    bool `yaml:"keep_commands"`
	StartupAnnounce bool `yaml:"startup_announce"`
}

// NotificationsConfig selects the deal sink.
type NotificationsConfig struct {
	Sink       string `yaml:"sink"` // bot, webhook, noop
	WebhookURL string `yaml:"webhook_url"`
}

// SourceConfig defines how the catalog is queried.
type SourceConfig struct {
	Kind            string          `yaml:"kind"` // catalog_api, scrape
	BaseURL         string          `yaml:"base_url"`
	PageSize        int             `yaml:"page_size"`
	Timeout         time.Duration   `yaml:"timeout"`
	RequestDelayMin time.Duration   `yaml:"request_delay_min"`
	RequestDelayMax time.Duration   `yaml:"request_delay_max"`
	UserAgents      []string        `yaml:"user_agents"`
	RateLimit       RateLimitConfig `yaml:"rate_limit"`
	Selectors       SelectorsConfig `yaml:"selectors"`
}

// RateLimitConfig defines catalog request rate limiting.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"` // 0 = unbounded
}

// SelectorsConfig overrides the scrape markup selectors.
type SelectorsConfig struct {
	Item  string `yaml:"item"`
	Link  string `yaml:"link"`
	Title string `yaml:"title"`
	Price string `yaml:"price"`
}

// ScheduleConfig defines cycle cadence and pacing.
type ScheduleConfig struct {
	ScanInterval  time.Duration `yaml:"scan_interval"`
	RunOnStart    bool          `yaml:"run_on_start"`
	MaxCandidates int           `yaml:"max_candidates"`
	ItemPacing    time.Duration `yaml:"item_pacing"`
	SearchPacing  time.Duration `yaml:"search_pacing"`
}

// ProfitConfig defines the resale model. Fields are pointers so an explicit
// zero (a free fee, no profit floor) is kept instead of defaulted.
type ProfitConfig struct {
	RetentionRate    *decimal.Decimal `yaml:"retention_rate"`
	FixedFee         *decimal.Decimal `yaml:"fixed_fee"`
	DefaultMargin    *decimal.Decimal `yaml:"default_margin"`
	DefaultMinProfit *decimal.Decimal `yaml:"default_min_profit"`
}

// DedupConfig defines seen-key derivation and retention.
type DedupConfig struct {
	Key string `yaml:"key"` // listing_id, title_price
	// TTL of zero keeps seen keys forever.
	TTL           time.Duration `yaml:"ttl"`
	PruneInterval time.Duration `yaml:"prune_interval"`
}

// StorageConfig selects the registry and seen-set backends.
type StorageConfig struct {
	Backend string `yaml:"backend"` // memory, postgres, mongo
	// Seen overrides the seen-set backend; empty uses Backend.
	Seen     string         `yaml:"seen"` // "", redis
	Postgres PostgresConfig `yaml:"postgres"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Redis    RedisConfig    `yaml:"redis"`
}

// SeenBackend returns the effective seen-set backend.
func (s *StorageConfig) SeenBackend() string {
	if s.Seen != "" {
		return s.Seen
	}
	return s.Backend
}

// PostgresConfig defines PostgreSQL connection settings.
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// MongoConfig defines MongoDB connection settings.
type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// RedisConfig defines the redis seen-set connection.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json, pretty
}

// TracingConfig defines OTLP trace export. Disabled by default.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint"` // host:port of the OTLP gRPC collector
	Insecure    bool    `yaml:"insecure"`
	ServiceName string  `yaml:"service_name"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment. Missing files are ignored; existing variables win.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyNotificationDefaults(&cfg.Notifications)
	applySourceDefaults(&cfg.Source)
	applyScheduleDefaults(&cfg.Schedule)
	applyProfitDefaults(&cfg.Profit)
	applyDedupDefaults(&cfg.Dedup)
	applyStorageDefaults(&cfg.Storage)
	applyLoggingDefaults(&cfg.Logging)
	applyTracingDefaults(&cfg.Tracing)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyNotificationDefaults(n *NotificationsConfig) {
	if n.Sink == "" {
		n.Sink = SinkBot
	}
}

func applySourceDefaults(s *SourceConfig) {
	if s.Kind == "" {
		s.Kind = SourceCatalogAPI
	}
	if s.BaseURL == "" {
		s.BaseURL = "https://www.vinted.fr"
	}
	if s.PageSize == 0 {
		s.PageSize = 10
	}
	if s.Timeout == 0 {
		s.Timeout = 10 * time.Second
	}
	if s.RequestDelayMin == 0 && s.RequestDelayMax == 0 {
		s.RequestDelayMin = 3 * time.Second
		s.RequestDelayMax = 7 * time.Second
	}
	if s.RateLimit.PerSecond == 0 {
		s.RateLimit.PerSecond = 0.5
	}
	if s.RateLimit.Burst == 0 {
		s.RateLimit.Burst = 2
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.ScanInterval == 0 {
		s.ScanInterval = 5 * time.Minute
	}
	if s.MaxCandidates == 0 {
		s.MaxCandidates = 3
	}
	if s.ItemPacing == 0 {
		s.ItemPacing = time.Second
	}
	if s.SearchPacing == 0 {
		s.SearchPacing = 2 * time.Second
	}
}

func applyProfitDefaults(p *ProfitConfig) {
	if p.RetentionRate == nil {
		p.RetentionRate = decimalPtr(decimal.RequireFromString("0.87"))
	}
	if p.FixedFee == nil {
		p.FixedFee = decimalPtr(decimal.NewFromInt(2))
	}
	if p.DefaultMargin == nil {
		p.DefaultMargin = decimalPtr(decimal.RequireFromString("1.8"))
	}
	if p.DefaultMinProfit == nil {
		p.DefaultMinProfit = decimalPtr(decimal.NewFromInt(8))
	}
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func applyDedupDefaults(d *DedupConfig) {
	if d.Key == "" {
		d.Key = "listing_id"
	}
	if d.PruneInterval == 0 {
		d.PruneInterval = time.Hour
	}
}

func applyStorageDefaults(s *StorageConfig) {
	if s.Backend == "" {
		s.Backend = BackendMemory
	}
	if s.Postgres.Port == 0 {
		s.Postgres.Port = 5432
	}
	if s.Postgres.SSLMode == "" {
		s.Postgres.SSLMode = "disable"
	}
	if s.Postgres.PoolSize == 0 {
		s.Postgres.PoolSize = 10
	}
	if s.Mongo.Database == "" {
		s.Mongo.Database = "deal_scanner"
	}
	if s.Redis.Prefix == "" {
		s.Redis.Prefix = "ds:"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func applyTracingDefaults(t *TracingConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
	if t.ServiceName == "" {
		t.ServiceName = "deal-scanner"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1
	}
}

func validate(cfg *Config) error {
	var errs []error

	errs = append(errs, validateNotifications(cfg)...)
	errs = append(errs, validateSource(&cfg.Source)...)
	errs = append(errs, validateSchedule(&cfg.Schedule)...)
	errs = append(errs, validateProfit(&cfg.Profit)...)
	errs = append(errs, validateDedup(&cfg.Dedup)...)
	errs = append(errs, validateStorage(&cfg.Storage)...)

	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("tracing.sample_ratio must be within (0, 1] (got %v)", cfg.Tracing.SampleRatio))
	}

	if !slices.Contains([]string{"debug", "info", "warn", "error"}, cfg.Logging.Level) {
		errs = append(errs, fmt.Errorf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level))
	}
	if !slices.Contains([]string{"text", "json", "pretty"}, cfg.Logging.Format) {
		errs = append(errs, fmt.Errorf("logging.format must be one of: text, json, pretty (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}

func validateNotifications(cfg *Config) []error {
	var errs []error
	switch cfg.Notifications.Sink {
	case SinkBot:
		if cfg.Discord.Token == "" {
			errs = append(errs, ErrMissingToken)
		}
	case SinkWebhook:
		if cfg.Notifications.WebhookURL == "" {
			errs = append(errs, errors.New("notifications.webhook_url is required when sink is webhook"))
		}
	case SinkNoop:
	default:
		errs = append(errs, fmt.Errorf(
			"notifications.sink must be one of: bot, webhook, noop (got %q)",
			cfg.Notifications.Sink,
		))
	}
	return errs
}

func validateSource(s *SourceConfig) []error {
	var errs []error
	if s.Kind != SourceCatalogAPI && s.Kind != SourceScrape {
		errs = append(errs, fmt.Errorf("source.kind must be one of: catalog_api, scrape (got %q)", s.Kind))
	}
	if s.PageSize < 0 {
		errs = append(errs, errors.New("source.page_size must be positive"))
	}
	if s.RequestDelayMin < 0 || s.RequestDelayMax < s.RequestDelayMin {
		errs = append(errs, errors.New("source.request_delay_min must be >= 0 and <= request_delay_max"))
	}
	if s.RateLimit.PerSecond < 0 || s.RateLimit.Burst < 0 || s.RateLimit.DailyLimit < 0 {
		errs = append(errs, errors.New("source.rate_limit values must not be negative"))
	}
	return errs
}

func validateSchedule(s *ScheduleConfig) []error {
	var errs []error
	if s.ScanInterval < time.Second {
		errs = append(errs, errors.New("schedule.scan_interval must be at least 1s"))
	}
	if s.MaxCandidates < 0 {
		errs = append(errs, errors.New("schedule.max_candidates must be positive"))
	}
	if s.ItemPacing < 0 || s.SearchPacing < 0 {
		errs = append(errs, errors.New("schedule pacing must not be negative"))
	}
	return errs
}

func validateProfit(p *ProfitConfig) []error {
	var errs []error
	if !p.RetentionRate.IsPositive() || p.RetentionRate.GreaterThan(decimal.NewFromInt(1)) {
		errs = append(errs, errors.New("profit.retention_rate must be in (0, 1]"))
	}
	if p.FixedFee.IsNegative() {
		errs = append(errs, errors.New("profit.fixed_fee must not be negative"))
	}
	if !p.DefaultMargin.GreaterThan(decimal.NewFromInt(1)) {
		errs = append(errs, errors.New("profit.default_margin must be greater than 1"))
	}
	if p.DefaultMinProfit.IsNegative() {
		errs = append(errs, errors.New("profit.default_min_profit must not be negative"))
	}
	return errs
}

func validateDedup(d *DedupConfig) []error {
	var errs []error
	if d.Key != "listing_id" && d.Key != "title_price" {
		errs = append(errs, fmt.Errorf("dedup.key must be one of: listing_id, title_price (got %q)", d.Key))
	}
	if d.TTL < 0 {
		errs = append(errs, errors.New("dedup.ttl must not be negative"))
	}
	return errs
}

func validateStorage(s *StorageConfig) []error {
	var errs []error
	switch s.Backend {
	case BackendMemory:
	case BackendPostgres:
		if s.Postgres.Host == "" {
			errs = append(errs, errors.New("storage.postgres.host is required when backend is postgres"))
		}
		if s.Postgres.Name == "" {
			errs = append(errs, errors.New("storage.postgres.name is required when backend is postgres"))
		}
		if s.Postgres.User == "" {
			errs = append(errs, errors.New("storage.postgres.user is required when backend is postgres"))
		}
	case BackendMongo:
		if s.Mongo.URI == "" {
			errs = append(errs, errors.New("storage.mongo.uri is required when backend is mongo"))
		}
	default:
		errs = append(errs, fmt.Errorf("storage.backend must be one of: memory, postgres, mongo (got %q)", s.Backend))
	}

	switch s.Seen {
	case "":
	case BackendRedis:
		if s.Redis.Addr == "" {
			errs = append(errs, errors.New("storage.redis.addr is required when seen is redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("storage.seen must be empty or redis (got %q)", s.Seen))
	}
	return errs
}
