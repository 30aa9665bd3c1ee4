package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application, loaded from an app.env
// file and overridable through environment variables.
type Config struct {
	DBSource        string        `mapstructure:"DB_SOURCE"`
	ServerAddress   string        `mapstructure:"SERVER_ADDRESS"`
	GeoapifyURL     string        `mapstructure:"GEOAPIFY_URL"`
	GeoapifyAPIKey  string        `mapstructure:"GEOAPIFY_API_KEY"`
	GeocoderTimeout time.Duration `mapstructure:"GEOCODER_TIMEOUT"`
}

// LoadConfig reads configuration from the given directory.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("GEOAPIFY_URL", "https://api.geoapify.com")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
