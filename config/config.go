package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultAccessTokenTTL     = 30 * time.Minute
	defaultTempPasswordLength = 12
	defaultMaxSensors         = 10
	defaultMongoTimeout       = 10 * time.Second
	defaultPruneInterval      = 5 * time.Minute
	defaultWorkerPort         = 8081
	defaultWorkerPrefetch     = 10
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

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// Revocation selects where logged-out tokens are kept
	Revocation *RevocationConfig `json:"revocation" yaml:"revocation"`

	// Redis backs the revocation set and the rate limiter when configured
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// Mail configures welcome and recovery email delivery
	Mail *MailConfig `json:"mail" yaml:"mail"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	// Worker configures the mail queue consumer process
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

// MongoConfig defines the document store connection and collection names
type MongoConfig struct {
	URI         string            `json:"uri" yaml:"uri"`
	Database    string            `json:"database" yaml:"database"`
	Timeout     time.Duration     `json:"timeout" yaml:"timeout"`
	Collections MongoCollections  `json:"collections" yaml:"collections"`
	Sensors     map[string]string `json:"sensors" yaml:"sensors"`
}

// MongoCollections names the account collections
type MongoCollections struct {
	Users  string `json:"users" yaml:"users"`
	Houses string `json:"houses" yaml:"houses"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost              int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL          time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	TemporaryPasswordLength int           `json:"temporaryPasswordLength" yaml:"temporaryPasswordLength"`
	MaxSensorsPerClient     int           `json:"maxSensorsPerClient" yaml:"maxSensorsPerClient"`
	DualWriteRetries        uint64        `json:"dualWriteRetries" yaml:"dualWriteRetries"`
	DualWriteBaseDelay      time.Duration `json:"dualWriteBaseDelay" yaml:"dualWriteBaseDelay"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
}

// RevocationConfig defines the revocation set backend
type RevocationConfig struct {
	// Provider is "memory" (default) or "redis"
	Provider      string        `json:"provider" yaml:"provider"`
	PruneInterval time.Duration `json:"pruneInterval" yaml:"pruneInterval"`
	KeyPrefix     string        `json:"keyPrefix" yaml:"keyPrefix"`
}

// RedisConfig defines the Redis connection
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// RateLimitConfig defines the token bucket applied to unauthenticated endpoints
type RateLimitConfig struct {
	Enabled        bool          `json:"enabled" yaml:"enabled"`
	Capacity       int           `json:"capacity" yaml:"capacity"`
	RefillTokens   int           `json:"refillTokens" yaml:"refillTokens"`
	RefillInterval time.Duration `json:"refillInterval" yaml:"refillInterval"`
	TTL            time.Duration `json:"ttl" yaml:"ttl"`
	Prefix         string        `json:"prefix" yaml:"prefix"`
}

// MailConfig defines email delivery
type MailConfig struct {
	// Provider is "noop", "http" or "amqp"
	Provider  string        `json:"provider" yaml:"provider"`
	FromEmail string        `json:"fromEmail" yaml:"fromEmail"`
	FromName  string        `json:"fromName" yaml:"fromName"`
	HTTP      MailHTTP      `json:"http" yaml:"http"`
	AMQP      MailAMQP      `json:"amqp" yaml:"amqp"`
	Retries   uint64        `json:"retries" yaml:"retries"`
	BaseDelay time.Duration `json:"baseDelay" yaml:"baseDelay"`
}

// MailHTTP configures a JSON mail-sending API
type MailHTTP struct {
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	Token    string        `json:"token" yaml:"token"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// MailAMQP configures the mail queue
type MailAMQP struct {
	URL   string `json:"url" yaml:"url"`
	Queue string `json:"queue" yaml:"queue"`
}

// MetricsConfig toggles the prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// WorkerConfig defines the mail worker health server
type WorkerConfig struct {
	Port     int `json:"port" yaml:"port"`
	Prefetch int `json:"prefetch" yaml:"prefetch"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
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

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Align each ENV segment with existing YAML keys.
			// Example: MAIL_HTTP_ENDPOINT -> mail.http.endpoint, SECRETKEY_ACCESS -> secretKey.access
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
				// Case-insensitive matching for env var overrides
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

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills optional sections so consumers can dereference them safely.
func (cfg *Config) applyDefaults() error {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Mongo == nil || cfg.Mongo.URI == "" {
		return errors.New("mongo.uri must be configured")
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = "Hogar"
	}
	if cfg.Mongo.Timeout <= 0 {
		cfg.Mongo.Timeout = defaultMongoTimeout
	}
	if cfg.Mongo.Collections.Users == "" {
		cfg.Mongo.Collections.Users = "Usuarios"
	}
	if cfg.Mongo.Collections.Houses == "" {
		cfg.Mongo.Collections.Houses = "Casas"
	}
	if cfg.Mongo.Sensors == nil {
		cfg.Mongo.Sensors = map[string]string{}
	}
	for _, sensorType := range []string{"gas", "humo", "movimiento", "sonido", "magnetico"} {
		if cfg.Mongo.Sensors[sensorType] == "" {
			cfg.Mongo.Sensors[sensorType] = "Sensores_" + sensorType
		}
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.Auth.TemporaryPasswordLength <= 0 {
		cfg.Auth.TemporaryPasswordLength = defaultTempPasswordLength
	}
	// Zero disables the quota, negative values fall back to the default.
	if cfg.Auth.MaxSensorsPerClient < 0 {
		cfg.Auth.MaxSensorsPerClient = defaultMaxSensors
	}

	if cfg.Revocation == nil {
		cfg.Revocation = &RevocationConfig{}
	}
	if cfg.Revocation.Provider == "" {
		cfg.Revocation.Provider = "memory"
	}
	if cfg.Revocation.PruneInterval <= 0 {
		cfg.Revocation.PruneInterval = defaultPruneInterval
	}
	if cfg.Revocation.KeyPrefix == "" {
		cfg.Revocation.KeyPrefix = "revoked"
	}

	if cfg.Mail == nil {
		cfg.Mail = &MailConfig{Provider: "noop"}
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{}
	}
	if cfg.RateLimit.Prefix == "" {
		cfg.RateLimit.Prefix = "rl"
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{Enabled: true}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = defaultWorkerPort
	}
	if cfg.Worker.Prefetch <= 0 {
		cfg.Worker.Prefetch = defaultWorkerPrefetch
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
