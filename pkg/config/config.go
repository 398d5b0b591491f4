package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// App holds application configuration.
type App struct {
	Name    string `mapstructure:"name"`
	Env     string `mapstructure:"env"`
	Version string `mapstructure:"version"`
}

// Logger holds logger configuration.
type Logger struct {
	Level    string   `mapstructure:"level"`
	Encoding string   `mapstructure:"encoding"`
	Suppress []string `mapstructure:"suppress"`
}

// API holds API server configuration.
type API struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	StaticDir string `mapstructure:"static_dir"`
}

// Load loads configuration from a file into the given config struct.
// Values from a local .env file are exported to the environment first so
// they take part in viper's automatic env lookup.
func Load(path string, config interface{}) error {
	return LoadWith(viper.New(), path, config)
}

// LoadWith is Load on a caller-provided viper instance, used when defaults
// must be registered before reading.
func LoadWith(v *viper.Viper, path string, config interface{}) error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Println("Failed to read config file .env config try read from environment variables")
	}

	return v.Unmarshal(config)
}
