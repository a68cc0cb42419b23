package config

import (
	"errors"
	"fmt"
	"strings"

	"mtv_cron/internal/logger"
	"mtv_cron/internal/models"
	"mtv_cron/internal/service"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix       = "MTV_CRON"
	configName      = "config"
	defaultLogLevel = logger.WarnLevel
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the resolved runtime configuration.
type Config struct {
	LogLevel string
	Commands models.Commands
	Next     int // upcoming runs to log; 0 disables the preview
}

// NewFlagSet declares the command-line flags understood by Load.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to config file (default: ./config.yml or ./configs/config.yml)")
	fs.String("log-level", defaultLogLevel, "log level: debug|info|warn|error")
	fs.Int("next", 0, "log the next N runs of each enabled entry to stderr")
	return fs
}

// Load resolves defaults < config file < MTV_CRON_* env < flags.
// fs must already be parsed. A missing default config file is not an error.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlag("log.level", fs.Lookup("log-level")); err != nil {
		return Config{}, fmt.Errorf("bind flag log-level: %w", err)
	}
	if err := v.BindPFlag("next", fs.Lookup("next")); err != nil {
		return Config{}, fmt.Errorf("bind flag next: %w", err)
	}

	path, _ := fs.GetString("config")
	if err := readConfigFile(v, path); err != nil {
		return Config{}, err
	}

	next, err := cast.ToIntE(v.Get("next"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: next: %v", ErrInvalidConfig, err)
	}

	cfg := Config{
		LogLevel: strings.ToLower(strings.TrimSpace(v.GetString("log.level"))),
		Commands: models.Commands{
			Update:   strings.TrimSpace(v.GetString("commands.update")),
			SendInfo: strings.TrimSpace(v.GetString("commands.sendinfo")),
			Download: strings.TrimSpace(v.GetString("commands.download")),
		},
		Next: next,
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	cmds := models.DefaultCommands()
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("commands.update", cmds.Update)
	v.SetDefault("commands.sendinfo", cmds.SendInfo)
	v.SetDefault("commands.download", cmds.Download)
	v.SetDefault("next", 0)
}

func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %q: %w", path, err)
		}
		return nil
	}

	v.SetConfigName(configName)
	v.AddConfigPath(".")
	v.AddConfigPath("configs")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Validate checks a resolved Config.
func Validate(cfg Config) error {
	if !logger.IsValidLevel(cfg.LogLevel) {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, cfg.LogLevel)
	}
	if cfg.Commands.Update == "" || cfg.Commands.SendInfo == "" || cfg.Commands.Download == "" {
		return fmt.Errorf("%w: commands must not be empty", ErrInvalidConfig)
	}
	if strings.ContainsAny(cfg.Commands.Update+cfg.Commands.SendInfo+cfg.Commands.Download, "\r\n") {
		return fmt.Errorf("%w: commands must be single-line", ErrInvalidConfig)
	}
	// cron turns an unescaped '%' into a newline and feeds the rest to stdin
	if strings.Contains(cfg.Commands.Update+cfg.Commands.SendInfo+cfg.Commands.Download, "%") {
		return fmt.Errorf("%w: commands must not contain '%%'", ErrInvalidConfig)
	}
	if cfg.Next < 0 || cfg.Next > service.MaxNextRuns {
		return fmt.Errorf("%w: next must be in [0, %d], got %d", ErrInvalidConfig, service.MaxNextRuns, cfg.Next)
	}
	return nil
}
