package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Redis      RedisConfig
	Session    SessionConfig
	PathFinder PathFinderConfig
	Lines      LinesConfig
	Map        MapConfig
	Log        LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// SessionConfig - где хранится состояние контроллеров
type SessionConfig struct {
	Store string // memory | redis
	TTL   time.Duration
}

// PathFinderConfig - внешний сервер поиска пути
type PathFinderConfig struct {
	BaseURL string
	// RequestTimeout in seconds, 0 means the request may hang indefinitely.
	RequestTimeout int
}

type LinesConfig struct {
	ParseMode    string // strict | lenient
	CanvasWidth  int
	CanvasHeight int
}

type MapConfig struct {
	CenterLat float64
	CenterLon float64
	Zoom      int
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			Store: strings.ToLower(strings.TrimSpace(viper.GetString("SESSION_STORE"))),
			TTL:   time.Duration(viper.GetInt("SESSION_TTL")) * time.Second,
		},
		PathFinder: PathFinderConfig{
			BaseURL:        strings.TrimRight(viper.GetString("PATHFINDER_BASE_URL"), "/"),
			RequestTimeout: viper.GetInt("PATHFINDER_REQUEST_TIMEOUT"),
		},
		Lines: LinesConfig{
			ParseMode:    strings.ToLower(strings.TrimSpace(viper.GetString("LINES_PARSE_MODE"))),
			CanvasWidth:  viper.GetInt("LINES_CANVAS_WIDTH"),
			CanvasHeight: viper.GetInt("LINES_CANVAS_HEIGHT"),
		},
		Map: MapConfig{
			CenterLat: viper.GetFloat64("MAP_CENTER_LAT"),
			CenterLon: viper.GetFloat64("MAP_CENTER_LON"),
			Zoom:      viper.GetInt("MAP_ZOOM"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	cfg.setDefaults()

	return cfg, nil
}

// setDefaults - значения по умолчанию для незаданных параметров
func (c *Config) setDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.PathFinder.BaseURL == "" {
		c.PathFinder.BaseURL = "http://localhost:4567"
	}
	if c.Session.Store == "" {
		c.Session.Store = "memory"
	}
	if c.Session.TTL == 0 {
		c.Session.TTL = 24 * time.Hour
	}
	if c.Redis.Host == "" {
		c.Redis.Host = "localhost"
	}
	if c.Redis.Port == 0 {
		c.Redis.Port = 6379
	}
	if c.Lines.ParseMode == "" {
		c.Lines.ParseMode = "strict"
	}
	if c.Lines.CanvasWidth == 0 {
		c.Lines.CanvasWidth = 4000
	}
	if c.Lines.CanvasHeight == 0 {
		c.Lines.CanvasHeight = 4000
	}
	if c.Map.CenterLat == 0 && c.Map.CenterLon == 0 {
		c.Map.CenterLat = 47.65440627742146
		c.Map.CenterLon = -122.30530735794711
	}
	if c.Map.Zoom == 0 {
		c.Map.Zoom = 15
	}
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
