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
	defaultStorePath          = "data/users.csv"
	defaultCookieName         = "cinematch_session"
	defaultSessionMaxAge      = 7 * 24 * time.Hour
	defaultMinPasswordLength  = 6
	defaultRecommendCount     = 3
	defaultLocalMax           = 3
	defaultListingsKey        = "barcelona_films.csv"
	defaultListingsCity       = "barcelona"
	defaultLLMTimeout         = 30 * time.Second
)

// Session cookie encodings.
const (
	SessionModePlain = "plain"
	SessionModeJWT   = "jwt"
)

// Password storage schemes.
const (
	PasswordSchemePlain  = "plain"
	PasswordSchemeBcrypt = "bcrypt"
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

	Store StoreConfig `json:"store" yaml:"store"`

	Session SessionConfig `json:"session" yaml:"session"`

	Auth AuthConfig `json:"auth" yaml:"auth"`

	// LLM configuration for the hosted generative model
	LLM LLMConfig `json:"llm" yaml:"llm"`

	Recommendation RecommendationConfig `json:"recommendation" yaml:"recommendation"`

	// Listings configuration for local cinema programmes
	Listings ListingsConfig `json:"listings" yaml:"listings"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig defines where the user table lives.
type StoreConfig struct {
	Path string `json:"path" yaml:"path"`

	// SerializeWrites guards insert/replace with a per-process mutex.
	// Off by default: concurrent writers race and the last rename wins.
	SerializeWrites bool `json:"serializeWrites" yaml:"serializeWrites"`
}

// SessionConfig defines the session cookie.
type SessionConfig struct {
	CookieName string        `json:"cookieName" yaml:"cookieName"`
	MaxAge     time.Duration `json:"maxAge" yaml:"maxAge"`
	Secure     bool          `json:"secure" yaml:"secure"`
	Mode       string        `json:"mode" yaml:"mode"`
	Secret     string        `json:"secret" yaml:"secret"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	PasswordScheme    string `json:"passwordScheme" yaml:"passwordScheme"`
	BcryptCost        int    `json:"bcryptCost" yaml:"bcryptCost"`
	MinPasswordLength int    `json:"minPasswordLength" yaml:"minPasswordLength"`
}

// LLMConfig defines the generative model endpoint and its client-side guards.
type LLMConfig struct {
	Endpoint          string        `json:"endpoint" yaml:"endpoint"`
	Model             string        `json:"model" yaml:"model"`
	APIKey            string        `json:"apiKey" yaml:"apiKey"`
	Timeout           time.Duration `json:"timeout" yaml:"timeout"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int           `json:"burst" yaml:"burst"`
	Breaker           BreakerConfig `json:"breaker" yaml:"breaker"`
}

// BreakerConfig mirrors gobreaker.Settings.
type BreakerConfig struct {
	MaxRequests      uint32        `json:"maxRequests" yaml:"maxRequests"`
	Interval         time.Duration `json:"interval" yaml:"interval"`
	Timeout          time.Duration `json:"timeout" yaml:"timeout"`
	FailureThreshold uint32        `json:"failureThreshold" yaml:"failureThreshold"`
}

// RecommendationConfig bounds the size of both recommendation lists.
type RecommendationConfig struct {
	Count    int `json:"count" yaml:"count"`
	LocalMax int `json:"localMax" yaml:"localMax"`
}

// ListingsConfig points at the cinema programme CSV.
// An empty BucketURL means the embedded copy is used.
type ListingsConfig struct {
	BucketURL   string `json:"bucketURL" yaml:"bucketURL"`
	Key         string `json:"key" yaml:"key"`
	DefaultCity string `json:"defaultCity" yaml:"defaultCity"`
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

	// STORE_PATH -> store.path, SESSION_COOKIENAME -> session.cookieName
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

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills empty values and rejects unknown modes.
func (cfg *Config) applyDefaults() error {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Store.Path == "" {
		cfg.Store.Path = defaultStorePath
	}

	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = defaultCookieName
	}
	if cfg.Session.MaxAge <= 0 {
		cfg.Session.MaxAge = defaultSessionMaxAge
	}
	switch cfg.Session.Mode {
	case "":
		cfg.Session.Mode = SessionModePlain
	case SessionModePlain:
	case SessionModeJWT:
		if cfg.Session.Secret == "" {
			return errors.New("session.secret is required when session.mode is jwt")
		}
	default:
		return errors.Errorf("unknown session mode: %s", cfg.Session.Mode)
	}

	switch cfg.Auth.PasswordScheme {
	case "":
		cfg.Auth.PasswordScheme = PasswordSchemePlain
	case PasswordSchemePlain, PasswordSchemeBcrypt:
	default:
		return errors.Errorf("unknown password scheme: %s", cfg.Auth.PasswordScheme)
	}
	if cfg.Auth.MinPasswordLength <= 0 {
		cfg.Auth.MinPasswordLength = defaultMinPasswordLength
	}

	if cfg.LLM.Timeout <= 0 {
		cfg.LLM.Timeout = defaultLLMTimeout
	}

	if cfg.Recommendation.Count <= 0 {
		cfg.Recommendation.Count = defaultRecommendCount
	}
	if cfg.Recommendation.LocalMax <= 0 {
		cfg.Recommendation.LocalMax = defaultLocalMax
	}

	if cfg.Listings.Key == "" {
		cfg.Listings.Key = defaultListingsKey
	}
	if cfg.Listings.DefaultCity == "" {
		cfg.Listings.DefaultCity = defaultListingsCity
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
