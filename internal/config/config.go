package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/redjax/csvdash/internal/constants"
	"github.com/spf13/pflag"
)

// Config is the fully merged csvdash configuration.
type Config struct {
	Debug  bool         `koanf:"debug"`
	Tables []string     `koanf:"tables"`
	Source SourceConfig `koanf:"source"`
	UI     UIConfig     `koanf:"ui"`
	Export ExportConfig `koanf:"export"`
	Log    LogConfig    `koanf:"log"`
}

// SourceConfig selects where table CSVs are read from.
type SourceConfig struct {
	// dir, http or sqlite
	Kind string `koanf:"kind"`
	Dir  string `koanf:"dir"`
	URL  string `koanf:"url"`
	DB   string `koanf:"db"`
}

type UIConfig struct {
	PageSize int           `koanf:"pagesize"`
	RunDelay time.Duration `koanf:"rundelay"`
}

type ExportConfig struct {
	Dir string `koanf:"dir"`
}

type LogConfig struct {
	Level string `koanf:"level"`
	File  string `koanf:"file"`
}

// flagKeys maps CLI flag names onto config keys. Flags not listed here are
// command-local and never reach the config.
var flagKeys = map[string]string{
	"debug":      "debug",
	"tables":     "tables",
	"source":     "source.kind",
	"source-dir": "source.dir",
	"source-url": "source.url",
	"source-db":  "source.db",
	"page-size":  "ui.pagesize",
	"run-delay":  "ui.rundelay",
	"out":        "export.dir",
	"log-level":  "log.level",
	"log-file":   "log.file",
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"debug":       false,
		"tables":      constants.DefaultTables,
		"source.kind": constants.DefaultSourceKind,
		"source.dir":  constants.DefaultSourceDir,
		"source.url":  "",
		"source.db":   "",
		"ui.pagesize": constants.DefaultPageSize,
		"ui.rundelay": constants.DefaultRunDelay.String(),
		"export.dir":  constants.DefaultExportDir,
		"log.level":   constants.DefaultLogLevel,
		"log.file":    "",
	}
}

// Load merges, in increasing precedence: built-in defaults, the optional
// config file, CSVDASH_* environment variables and changed command-line flags.
func Load(flagSet *pflag.FlagSet, configFile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Load from config file if provided
	if configFile != "" {
		parser, err := parserForFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("unsupported config file format: %w", err)
		}
		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Load from environment variables (prefix "CSVDASH_")
	// This will convert CSVDASH_SOURCE_DIR to source.dir
	if err := k.Load(env.Provider(constants.EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("error loading environment: %w", err)
	}

	// Load from command-line flags (highest precedence)
	if flagSet != nil {
		if err := k.Load(posflag.ProviderWithFlag(flagSet, ".", k, flagKey(flagSet)), nil); err != nil {
			return nil, fmt.Errorf("error loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that cannot be fixed up silently.
func (c *Config) Validate() error {
	switch c.Source.Kind {
	case "dir":
		if c.Source.Dir == "" {
			return fmt.Errorf("source.dir is required for source kind %q", c.Source.Kind)
		}
	case "http":
		if c.Source.URL == "" {
			return fmt.Errorf("source.url is required for source kind %q", c.Source.Kind)
		}
	case "sqlite":
		if c.Source.DB == "" {
			return fmt.Errorf("source.db is required for source kind %q", c.Source.Kind)
		}
	default:
		return fmt.Errorf("unknown source kind: %q", c.Source.Kind)
	}

	if len(c.Tables) == 0 {
		return fmt.Errorf("at least one table must be configured")
	}
	if !constants.IsValidPageSize(c.UI.PageSize) {
		return fmt.Errorf("invalid page size %d, expected one of %v", c.UI.PageSize, constants.PageSizes)
	}
	if c.UI.RunDelay < 0 {
		return fmt.Errorf("run delay cannot be negative")
	}
	return nil
}

func envKey(s string) string {
	return strings.Replace(strings.ToLower(
		strings.TrimPrefix(s, constants.EnvPrefix)), "_", ".", -1)
}

func flagKey(fs *pflag.FlagSet) func(f *pflag.Flag) (string, interface{}) {
	return func(f *pflag.Flag) (string, interface{}) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return "", nil
		}
		return key, posflag.FlagVal(fs, f)
	}
}

func parserForFile(path string) (koanf.Parser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".env":
		return dotenv.Parser(), nil
	default:
		return nil, fmt.Errorf("unknown file extension: %s", ext)
	}
}
