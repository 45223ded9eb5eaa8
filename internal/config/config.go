package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	str2duration "github.com/xhit/go-str2duration/v2"
)

const DefaultCredentialID = "default"

var ErrNoCredentials = errors.New("no Infomaniak credential configured")

type CredentialConfig struct {
	Name     string `mapstructure:"name"`
	APIToken string `mapstructure:"api_token"`
}

// Config holds all executor configuration
type Config struct {
	HTTPAddress string
	APIBaseURL  string
	APIToken    string

	// ServerAPIKey, when set, is required as a bearer token on the executor API.
	ServerAPIKey string

	// RequestTimeout accepts durations such as "90s" or "1m30s". Zero keeps
	// the transport default.
	RequestTimeout string

	Credentials map[string]CredentialConfig
}

type LoadOptions struct {
	// ConfigFile is an explicit path. When empty the usual locations are searched.
	ConfigFile string
	EnvFile    string
}

// LoadConfig loads configuration from .env, the config file and environment variables
func LoadConfig(opts LoadOptions) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}

	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
		log.Debug().Str("file", envFile).Msg("No env file found")
	}

	v := viper.New()

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envMappings := map[string]string{
		"HTTPAddress":    "HTTP_ADDRESS",
		"APIBaseURL":     "INFOMANIAK_API_URL",
		"APIToken":       "INFOMANIAK_API_TOKEN",
		"RequestTimeout": "INFOMANIAK_TIMEOUT",
		"ServerAPIKey":   "EXECUTOR_API_KEY",
	}

	for configKey, envVar := range envMappings {
		if err := v.BindEnv(configKey, envVar); err != nil {
			log.Warn().Err(err).Msgf("Failed to bind environment variable %s for %s", envVar, configKey)
		}
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("infomaniak")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.infomaniak")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug().Msg("Config file not found, using environment variables and defaults")
	} else {
		log.Info().Msgf("Using config file: %s", v.ConfigFileUsed())
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.APIToken != "" {
		if config.Credentials == nil {
			config.Credentials = make(map[string]CredentialConfig)
		}

		// an explicit file entry named default wins over the environment
		if _, ok := config.Credentials[DefaultCredentialID]; !ok {
			config.Credentials[DefaultCredentialID] = CredentialConfig{
				Name:     "Default",
				APIToken: config.APIToken,
			}
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	log.Debug().Msgf("Config loaded: APIBaseURL=%s, Credentials=%d", config.APIBaseURL, len(config.Credentials))

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTPAddress", ":8081")
	v.SetDefault("APIBaseURL", "https://api.infomaniak.com")
	v.SetDefault("RequestTimeout", "0")
}

func validateConfig(config *Config) error {
	if len(config.Credentials) == 0 {
		return fmt.Errorf("%w: set INFOMANIAK_API_TOKEN or add credentials to infomaniak.yaml", ErrNoCredentials)
	}

	for id, credential := range config.Credentials {
		if strings.TrimSpace(credential.APIToken) == "" {
			return fmt.Errorf("credential %q has no api_token", id)
		}
	}

	if _, err := config.Timeout(); err != nil {
		return err
	}

	return nil
}

// Timeout parses RequestTimeout. Zero means no client-side timeout.
func (c *Config) Timeout() (time.Duration, error) {
	raw := strings.TrimSpace(c.RequestTimeout)
	if raw == "" || raw == "0" {
		return 0, nil
	}

	timeout, err := str2duration.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid INFOMANIAK_TIMEOUT %q: %w", raw, err)
	}

	if timeout < 0 {
		return 0, fmt.Errorf("invalid INFOMANIAK_TIMEOUT %q: must not be negative", raw)
	}

	return timeout, nil
}
