package config

import (
	"github.com/spf13/viper"
)

// AssistConfig holds the settings for the external text-generation service.
type AssistConfig struct {
	APIKey         string `mapstructure:"apiKey"`
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeoutSeconds"`
}

// Config is the full application configuration.
type Config struct {
	Assist AssistConfig `mapstructure:"assist"`
}

// Load reads configuration from an optional config.yaml in the given path,
// overridden by environment variables. A missing config file is not an
// error; the assist client is simply disabled without an API key.
func Load(path string) (Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()
	viper.BindEnv("assist.apiKey", "OPENAI_API_KEY")
	viper.BindEnv("assist.model", "OPENAI_MODEL")
	viper.BindEnv("assist.timeoutSeconds", "ASSIST_TIMEOUT_SECONDS")
	viper.SetDefault("assist.timeoutSeconds", 30)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
