package config

import "github.com/spf13/viper"

// Config holds all application settings, read from configs/app.env and
// overridable through the environment.
type Config struct {
	ServerAddress    string `mapstructure:"SERVER_ADDRESS"`
	StoreBackend     string `mapstructure:"STORE_BACKEND"`
	StoreFile        string `mapstructure:"STORE_FILE"`
	DBSource         string `mapstructure:"DB_SOURCE"`
	APIBaseURL       string `mapstructure:"API_BASE_URL"`
	GeocoderEnabled  bool   `mapstructure:"GEOCODER_ENABLED"`
	GeocoderBaseURL  string `mapstructure:"GEOCODER_BASE_URL"`
	CORSAllowOrigins string `mapstructure:"CORS_ALLOW_ORIGINS"`
}

// LoadConfig reads configuration from the given directory.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("STORE_BACKEND", "file")
	viper.SetDefault("STORE_FILE", "data.json")
	viper.SetDefault("API_BASE_URL", "http://localhost:8080")
	viper.SetDefault("GEOCODER_ENABLED", true)
	viper.SetDefault("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")

	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
