package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/camelgraph/internal/presentation/diagram"
	"github.com/aretw0/camelgraph/pkg/domain"
)

// DefaultPath is read when no --config flag is given. Its absence is not an error.
const DefaultPath = "camelgraph.yaml"

// InputEnv supplies the route document path when none is configured.
const InputEnv = "XML_CTX_INPUT"

// Cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

// ErrInvalidConfig is returned when a value is outside its allowed set.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the merged configuration of the CLI and services.
type Config struct {
	Input  string `mapstructure:"input"`
	Beans  bool   `mapstructure:"beans"`
	Format string `mapstructure:"format"`
	Layout string `mapstructure:"layout"`
	Debug  bool   `mapstructure:"debug"`

	// Shapes overrides the draw.io style of a shape, keyed by short shape name ("rect", "wire_tap").
	Shapes map[string]string `mapstructure:"shapes"`

	Serve ServeConfig `mapstructure:"serve"`
	Cache CacheConfig `mapstructure:"cache"`
}

type ServeConfig struct {
	Addr         string `mapstructure:"addr"`
	MaxBodyBytes int64  `mapstructure:"max_body_bytes"`
}

type CacheConfig struct {
	Backend   string        `mapstructure:"backend"`
	RedisAddr string        `mapstructure:"redis_addr"`
	TTL       time.Duration `mapstructure:"ttl"`
	Prefix    string        `mapstructure:"prefix"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format: string(diagram.FormatDrawIO),
		Layout: string(diagram.LayoutTree),
		Serve: ServeConfig{
			Addr:         ":8080",
			MaxBodyBytes: 4 << 20,
		},
		Cache: CacheConfig{
			Backend:   CacheMemory,
			RedisAddr: "localhost:6379",
			TTL:       time.Hour,
			Prefix:    "camelgraph:render:",
		},
	}
}

// Load reads a configuration file (YAML or JSON) on top of the defaults.
// An empty path reads DefaultPath if it exists.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		raw, err := parse(path, data)
		if err != nil {
			return Config{}, err
		}
		if err := decode(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
		}
	case os.IsNotExist(err) && !explicit:
		// No file at the default location: defaults only.
	default:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if cfg.Input == "" {
		cfg.Input = os.Getenv(InputEnv)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parse(path string, data []byte) (map[string]any, error) {
	raw := make(map[string]any)
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}
	return raw, nil
}

func decode(raw map[string]any, cfg *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	if _, err := diagram.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := diagram.ParseLayout(c.Layout); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.Cache.Backend {
	case CacheMemory, CacheRedis, CacheNone:
	default:
		return fmt.Errorf("%w: unknown cache backend %q", ErrInvalidConfig, c.Cache.Backend)
	}
	if _, err := c.Styles(); err != nil {
		return err
	}
	return nil
}

// Styles resolves the shape overrides.
func (c Config) Styles() (map[domain.Shape]string, error) {
	styles := make(map[domain.Shape]string, len(c.Shapes))
	for name, style := range c.Shapes {
		shape, ok := domain.ParseShape(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown shape %q", ErrInvalidConfig, name)
		}
		styles[shape] = style
	}
	return styles, nil
}
