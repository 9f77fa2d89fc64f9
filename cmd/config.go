package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tomlrepo "github.com/bnema/giftbox-cli/internal/adapters/repo/toml"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".giftbox"
	envPrefix  = "GB"

	keyBaseURL        = "api.base_url"
	keyTimeout        = "api.timeout"
	keyRateLimit      = "api.rate_limit"
	keyProfile        = "profile"
	keyLogLevel       = "log.level"
	keySecretsBackend = "secrets.backend"
	keySecretsDir     = "secrets.dir"
)

type config struct {
	BaseURL        string
	Timeout        time.Duration
	RateLimit      float64
	Profile        string
	LogLevel       string
	SecretsBackend string
	SecretsDir     string
	viper          *viper.Viper
}

// loadConfig reads ~/.giftbox/config.toml, then GB_* environment variables
// (GB_API_BASE_URL for api.base_url), then explicit flag overrides.
func loadConfig(overrides map[string]string) (config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	root := filepath.Join(homeDir, configDir)

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(root)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyBaseURL, "http://localhost:8000")
	v.SetDefault(keyTimeout, "30s")
	v.SetDefault(keyRateLimit, 0)
	v.SetDefault(keyProfile, "default")
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keySecretsBackend, "auto")
	v.SetDefault(keySecretsDir, filepath.Join(root, "secrets"))
	v.SetDefault(tomlrepo.ProfilesPathKey, filepath.Join(root, "profiles.toml"))

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	for key, value := range overrides {
		if value != "" {
			v.Set(key, value)
		}
	}

	cfg := config{
		BaseURL:        strings.TrimSpace(v.GetString(keyBaseURL)),
		Timeout:        v.GetDuration(keyTimeout),
		RateLimit:      v.GetFloat64(keyRateLimit),
		Profile:        strings.TrimSpace(v.GetString(keyProfile)),
		LogLevel:       v.GetString(keyLogLevel),
		SecretsBackend: strings.ToLower(strings.TrimSpace(v.GetString(keySecretsBackend))),
		SecretsDir:     v.GetString(keySecretsDir),
		viper:          v,
	}
	if cfg.Profile == "" {
		return config{}, errors.New("profile name is empty")
	}
	if strings.ContainsAny(cfg.Profile, `/\`) || strings.Contains(cfg.Profile, "..") {
		return config{}, fmt.Errorf("invalid profile name %q", cfg.Profile)
	}
	if cfg.Timeout <= 0 {
		return config{}, fmt.Errorf("invalid %s %q", keyTimeout, v.GetString(keyTimeout))
	}
	if cfg.RateLimit < 0 {
		return config{}, fmt.Errorf("invalid %s %v", keyRateLimit, cfg.RateLimit)
	}

	return cfg, nil
}
