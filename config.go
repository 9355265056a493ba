package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// Config is the resolved runtime configuration.
type Config struct {
	LogLevel     string
	StrictSchema bool

	View      MapView
	FitBounds bool
	BaseMap   string

	ServerAddr string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisTTL      time.Duration

	FetchTimeout  time.Duration
	RenderTimeout time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("data.strict_schema", false)
	v.SetDefault("map.width", 1024)
	v.SetDefault("map.height", 600)
	v.SetDefault("map.zoom", 2)
	v.SetDefault("map.center_lat", 0.0)
	v.SetDefault("map.center_lon", 0.0)
	v.SetDefault("map.fit_bounds", false)
	v.SetDefault("map.base", defaultBaseLayer().Name)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "1h")
	v.SetDefault("fetch.timeout", "10s")
	v.SetDefault("render.timeout", "30s")
}

// loadConfig reads .env files, an optional YAML config file and PROPMAP_*
// environment variables, in increasing order of precedence.
func loadConfig(file string) (Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join("data", "env", ".env"))

	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("propmap")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		fmt.Fprintln(os.Stderr, "No config file. Read config from env.")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("propmap")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return configFromViper(v)
}

func configFromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		LogLevel:     v.GetString("log.level"),
		StrictSchema: v.GetBool("data.strict_schema"),
		View: MapView{
			Width:  v.GetFloat64("map.width"),
			Height: v.GetFloat64("map.height"),
			Zoom:   v.GetInt("map.zoom"),
		},
		FitBounds:     v.GetBool("map.fit_bounds"),
		BaseMap:       v.GetString("map.base"),
		ServerAddr:    v.GetString("server.addr"),
		RedisAddr:     v.GetString("redis.addr"),
		RedisPassword: v.GetString("redis.password"),
		RedisDB:       v.GetInt("redis.db"),
		RedisTTL:      v.GetDuration("redis.ttl"),
		FetchTimeout:  v.GetDuration("fetch.timeout"),
		RenderTimeout: v.GetDuration("render.timeout"),
	}
	cfg.View.Center[0] = v.GetFloat64("map.center_lon")
	cfg.View.Center[1] = v.GetFloat64("map.center_lat")

	if cfg.View.Width <= 0 || cfg.View.Height <= 0 {
		return cfg, fmt.Errorf("map.width and map.height must be positive, got %.0fx%.0f", cfg.View.Width, cfg.View.Height)
	}
	if cfg.View.Zoom < 0 || cfg.View.Zoom > 20 {
		return cfg, fmt.Errorf("map.zoom must be in [0, 20], got %d", cfg.View.Zoom)
	}
	if _, err := findBaseLayer(cfg.BaseMap); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func initLog(level string) {
	logLevel, err := log.ParseLevel(level)
	if err != nil {
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(logLevel)
	}

	// stdout may carry the rendered output
	log.SetOutput(os.Stderr)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}
