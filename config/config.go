package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/marble-sandbox/parameter"
)

// FileName is the optional config file searched for in each config dir
const FileName = "marbles.json"

type AudioConfig struct {
	Muted  bool    `mapstructure:"muted"`
	Volume float64 `mapstructure:"volume"` // Linear gain in [0,1]
}

type SimConfig struct {
	TickRate       int `mapstructure:"tickRate"`
	RewindCapacity int `mapstructure:"rewindCapacity"`
}

type LevelConfig struct {
	File  string `mapstructure:"file"`  // Empty uses the built-in catalog
	Start int    `mapstructure:"start"` // 1-based, zero opens the menu
}

type RecordConfig struct {
	DSN string `mapstructure:"dsn"` // File path for sqlite, postgres:// URL for postgres, empty disables
}

type SpectatorConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

// Config is the resolved runtime configuration
type Config struct {
	LogLevel  string          `mapstructure:"logLevel"`
	Debug     bool            `mapstructure:"debug"`
	Audio     AudioConfig     `mapstructure:"audio"`
	Sim       SimConfig       `mapstructure:"sim"`
	Level     LevelConfig     `mapstructure:"level"`
	Record    RecordConfig    `mapstructure:"record"`
	Spectator SpectatorConfig `mapstructure:"spectator"`

	// Source is the config file used, empty when running on defaults
	Source string `mapstructure:"-"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("debug", false)

	v.SetDefault("audio.muted", false)
	v.SetDefault("audio.volume", 1.0)

	v.SetDefault("sim.tickRate", 60)
	v.SetDefault("sim.rewindCapacity", parameter.RewindCapacity)

	v.SetDefault("level.file", "")
	v.SetDefault("level.start", 0)

	v.SetDefault("record.dsn", "marbles.db")

	v.SetDefault("spectator.enabled", false)
	v.SetDefault("spectator.addr", "127.0.0.1:8765")
}

// Load reads marbles.json from dir, then $HOME/.config/marbles, over the defaults
// A missing file is not an error; MARBLES_* environment variables override both
func Load(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
	v.SetConfigType("json")
	if dir != "" {
		v.AddConfigPath(dir)
	}
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "marbles"))
	}

	v.SetEnvPrefix("MARBLES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()

	if cfg.Sim.TickRate <= 0 {
		return nil, fmt.Errorf("sim.tickRate must be positive, got %d", cfg.Sim.TickRate)
	}
	cfg.Audio.Volume = min(max(cfg.Audio.Volume, 0), 1)
	return &cfg, nil
}
