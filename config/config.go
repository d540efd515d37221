package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"trainbook/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath       = "."
	defaultDotEnvFile = ".env"

	defaultDatabaseDriver = "sqlite"
	defaultSQLitePath     = "train_reminders.db"
	defaultHTTPPort       = 8080

	defaultMaxRequestBodySize = "100KB"
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

	App AppConfig `json:"app" yaml:"app"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	// Redis caches the reminder list; optional
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Alarm AlarmConfig `json:"alarm" yaml:"alarm"`

	Notification NotificationConfig `json:"notification" yaml:"notification"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AppConfig holds reminder-domain settings
type AppConfig struct {
	// Timezone is the IANA zone used to turn reminder dates into fire instants.
	// Empty means the machine local zone.
	Timezone string `json:"timezone" yaml:"timezone"`
	// RestoreOnBoot re-issues every pending alarm when the process starts
	RestoreOnBoot bool `json:"restoreOnBoot" yaml:"restoreOnBoot"`
}

// DatabaseConfig selects the reminder store backend
type DatabaseConfig struct {
	// Driver is "sqlite" (embedded file) or "postgres"
	Driver   string           `json:"driver" yaml:"driver"`
	SQLite   SQLiteConfig     `json:"sqlite" yaml:"sqlite"`
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`
}

type SQLiteConfig struct {
	Path        string        `json:"path" yaml:"path"`
	BusyTimeout time.Duration `json:"busyTimeout" yaml:"busyTimeout"`
}

type RedisConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
}

// AlarmConfig selects the platform scheduler adapter
type AlarmConfig struct {
	// Provider: "log", "cron", "pubsub" or "webhook"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project and topic (pubsub provider)
	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`

	// Pull fired-alarm events from this subscription instead of, or next to, the push endpoint
	SubscriptionID string `json:"subscriptionId" yaml:"subscriptionId"`

	// Endpoint receiving alarm commands (webhook provider)
	WebhookEndpoint string `json:"webhookEndpoint" yaml:"webhookEndpoint"`
	// Maximum commands per second sent to the webhook endpoint
	WebhookRateLimit float64 `json:"webhookRateLimit" yaml:"webhookRateLimit"`

	// Shared secret devices send in X-Callback-Token on trigger and restore
	// callbacks. Required outside develop.
	CallbackToken string `json:"callbackToken" yaml:"callbackToken"`
}

// NotificationConfig selects the platform notifier adapter
type NotificationConfig struct {
	// Provider: "log" or "firebase"
	Provider string `json:"provider" yaml:"provider"`

	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string   `json:"projectId" yaml:"projectId"`
	CredentialsPath string   `json:"credentialsPath" yaml:"credentialsPath"`
	DeviceTokens    []string `json:"deviceTokens" yaml:"deviceTokens"`
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
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// ALARM_WEBHOOKENDPOINT -> alarm.webhookEndpoint
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
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
				mapstructure.StringToSliceHookFunc(","),
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
	if err := loadDotEnv(defaultDotEnvFile); err != nil {
		return nil, err
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadDotEnv exports the variables of path. A missing file is the normal case
// outside local development.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(err, "load %s", path)
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultHTTPPort
	}
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if strings.TrimSpace(cfg.Database.Driver) == "" {
		cfg.Database.Driver = defaultDatabaseDriver
	}
	if strings.TrimSpace(cfg.Database.SQLite.Path) == "" {
		cfg.Database.SQLite.Path = defaultSQLitePath
	}
	if cfg.Database.SQLite.BusyTimeout == 0 {
		cfg.Database.SQLite.BusyTimeout = 5 * time.Second
	}
}

// validate rejects provider names no adapter exists for, so a typo fails at start
// instead of when the first reminder is created.
func (c *Config) validate() error {
	switch c.Database.Driver {
	case constants.DatabaseDriverSQLite:
	case constants.DatabaseDriverPostgres:
		if c.Database.Postgres == nil {
			return errors.New("database.postgres is required for the postgres driver")
		}
	default:
		return errors.Errorf("unknown database driver: %s", c.Database.Driver)
	}

	switch c.Alarm.Provider {
	case "", constants.AlarmProviderLog, constants.AlarmProviderCron:
	case constants.AlarmProviderPubSub:
		if c.Alarm.ProjectID == "" || c.Alarm.TopicID == "" {
			return errors.New("alarm.projectId and alarm.topicId are required for the pubsub provider")
		}
	case constants.AlarmProviderWebhook:
		if c.Alarm.WebhookEndpoint == "" {
			return errors.New("alarm.webhookEndpoint is required for the webhook provider")
		}
	default:
		return errors.Errorf("unknown alarm provider: %s", c.Alarm.Provider)
	}

	if c.Env.Env != "" && c.Env.Env != constants.EnvDevelop && c.Alarm.CallbackToken == "" {
		return errors.New("alarm.callbackToken is required outside develop")
	}

	if c.Alarm.SubscriptionID != "" && c.Alarm.ProjectID == "" {
		return errors.New("alarm.projectId is required to pull from alarm.subscriptionId")
	}

	switch c.Notification.Provider {
	case "", constants.NotificationProviderLog:
	case constants.NotificationProviderFirebase:
		if c.Notification.Firebase == nil || len(c.Notification.Firebase.DeviceTokens) == 0 {
			return errors.New("notification.firebase.deviceTokens is required for the firebase provider")
		}
	default:
		return errors.Errorf("unknown notification provider: %s", c.Notification.Provider)
	}

	_, err := c.Location()

	return err
}

// Location resolves App.Timezone, falling back to the machine local zone
func (c *Config) Location() (*time.Location, error) {
	if strings.TrimSpace(c.App.Timezone) == "" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "load timezone %q", c.App.Timezone)
	}

	return loc, nil
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
