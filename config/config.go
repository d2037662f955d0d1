package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	// EarliestEventDateLayout is the layout of matcher.earliestEventDate.
	EarliestEventDateLayout = "2006-01-02"
)

// Matcher defaults, applied when the yaml leaves a value unset.
const (
	DefaultMatcherWorkers            = 4
	DefaultMatcherQueueSize          = 1024
	DefaultMatcherMaxRetries         = 3
	DefaultMatcherRefreshConcurrency = 8
	DefaultMatcherRunRetention       = time.Hour
	DefaultAlertCacheTTL             = 30 * time.Second
	DefaultListingSource             = "baxus"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Matcher configures alert match recomputation
	Matcher *MatcherConfig `json:"matcher" yaml:"matcher"`

	// ListingWorker configures the Pub/Sub push worker for new listings
	ListingWorker *ListingWorkerConfig `json:"listingWorker" yaml:"listingWorker"`

	// PubSub configuration for match event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MatcherConfig defines how alert matches are recomputed
type MatcherConfig struct {
	// Schema holding assets, activity_feed and dim_activity_types ("baxus" in production)
	CatalogSchema string `json:"catalogSchema" yaml:"catalogSchema"`

	// Date of the oldest listing in the activity feed (YYYY-MM-DD). Drives the month count in
	// the summary string. Empty means derive it from the data.
	EarliestEventDate string `json:"earliestEventDate" yaml:"earliestEventDate"`

	// Number of background recompute workers
	Workers int `json:"workers" yaml:"workers"`

	// Capacity of the pending recompute queue
	QueueSize int `json:"queueSize" yaml:"queueSize"`

	// Retries per recomputation before giving up. Negative disables retries
	MaxRetries int `json:"maxRetries" yaml:"maxRetries"`

	// Maximum alerts recomputed at once during a refresh-all run
	RefreshConcurrency int `json:"refreshConcurrency" yaml:"refreshConcurrency"`

	// How long finished refresh-all runs stay queryable
	RunRetention time.Duration `json:"runRetention" yaml:"runRetention"`
}

// EarliestEventTime parses EarliestEventDate. ok is false when the value is empty.
func (c *MatcherConfig) EarliestEventTime() (t time.Time, ok bool, err error) {
	if c == nil || strings.TrimSpace(c.EarliestEventDate) == "" {
		return time.Time{}, false, nil
	}

	t, err = time.Parse(EarliestEventDateLayout, strings.TrimSpace(c.EarliestEventDate))
	if err != nil {
		return time.Time{}, false, errors.Wrapf(err, "invalid matcher.earliestEventDate %q", c.EarliestEventDate)
	}

	return t, true, nil
}

// ListingWorkerConfig defines the listing push worker
type ListingWorkerConfig struct {
	Port int `json:"port" yaml:"port"`

	// How long the alert list is cached between push messages
	AlertCacheTTL time.Duration `json:"alertCacheTTL" yaml:"alertCacheTTL"`

	// Value written to alert_matches.listing_source
	ListingSource string `json:"listingSource" yaml:"listingSource"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// MATCHER_EARLIESTEVENTDATE -> matcher.earliestEventDate
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills unset matcher and worker values and validates the earliest event date.
func (c *Config) applyDefaults() error {
	if c.Matcher == nil {
		c.Matcher = &MatcherConfig{}
	}
	if c.Matcher.Workers <= 0 {
		c.Matcher.Workers = DefaultMatcherWorkers
	}
	if c.Matcher.QueueSize <= 0 {
		c.Matcher.QueueSize = DefaultMatcherQueueSize
	}
	switch {
	case c.Matcher.MaxRetries == 0:
		c.Matcher.MaxRetries = DefaultMatcherMaxRetries
	case c.Matcher.MaxRetries < 0:
		c.Matcher.MaxRetries = 0
	}
	if c.Matcher.RefreshConcurrency <= 0 {
		c.Matcher.RefreshConcurrency = DefaultMatcherRefreshConcurrency
	}
	if c.Matcher.RunRetention <= 0 {
		c.Matcher.RunRetention = DefaultMatcherRunRetention
	}
	if _, _, err := c.Matcher.EarliestEventTime(); err != nil {
		return err
	}

	if c.ListingWorker == nil {
		c.ListingWorker = &ListingWorkerConfig{}
	}
	if c.ListingWorker.AlertCacheTTL <= 0 {
		c.ListingWorker.AlertCacheTTL = DefaultAlertCacheTTL
	}
	if strings.TrimSpace(c.ListingWorker.ListingSource) == "" {
		c.ListingWorker.ListingSource = DefaultListingSource
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
