package cmd

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/xbcsmith/antares/logging"
	"github.com/xbcsmith/antares/logging/sinks"
	"github.com/xbcsmith/antares/validate"
)

// Config is the tool configuration, read from ANTARES_* environment
// variables.
type Config struct {
	LogSinks     []string `env:"ANTARES_LOG_SINKS" envDefault:"console"`
	LogLevel     string   `env:"ANTARES_LOG_LEVEL" envDefault:"info"`
	LogJSONPath  string   `env:"ANTARES_LOG_JSON_PATH"`
	WeaponAvgMin int      `env:"ANTARES_BAND_WEAPON_MIN" envDefault:"1"`
	WeaponAvgMax int      `env:"ANTARES_BAND_WEAPON_MAX" envDefault:"30"`
	MonsterHPMin float64  `env:"ANTARES_BAND_MONSTER_HP_MIN" envDefault:"2"`
	MonsterHPMax float64  `env:"ANTARES_BAND_MONSTER_HP_MAX" envDefault:"25"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Bands converts the configured band limits.
func (c Config) Bands() validate.Bands {
	return validate.Bands{
		WeaponAvgMin:       c.WeaponAvgMin,
		WeaponAvgMax:       c.WeaponAvgMax,
		MonsterHPPerLvlMin: c.MonsterHPMin,
		MonsterHPPerLvlMax: c.MonsterHPMax,
	}
}

func (c Config) severity() logging.Severity {
	switch c.LogLevel {
	case "debug":
		return logging.SeverityDebug
	case "warn":
		return logging.SeverityWarn
	case "error":
		return logging.SeverityError
	default:
		return logging.SeverityInfo
	}
}

// BuildRouter assembles the logging router from the configured sinks. The
// caller owns the returned router and must Close it.
func (c Config) BuildRouter() (*logging.Router, error) {
	logCfg := logging.DefaultConfig()
	logCfg.EnabledSinks = c.LogSinks
	logCfg.MinimumSeverity = c.severity()

	var named []logging.NamedSink
	if logCfg.HasSink("console") {
		named = append(named, logging.NamedSink{
			Name: "console",
			Sink: sinks.NewConsoleSink(os.Stderr, logCfg.Console),
		})
	}
	if logCfg.HasSink("json") && c.LogJSONPath != "" {
		f, err := os.OpenFile(c.LogJSONPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open json log: %w", err)
		}
		named = append(named, logging.NamedSink{
			Name: "json",
			Sink: sinks.NewJSON(f, logCfg.JSON.FlushInterval),
		})
	}
	return logging.NewRouter(nil, logCfg, named)
}
