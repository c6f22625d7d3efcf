package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"terminus-veil/internal/domain"
	"terminus-veil/pkg/dungeon"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят все уровни партии.
	Seed int64 `yaml:"seed" env:"VEIL_SEED"`

	Width       int `yaml:"width" env:"VEIL_WIDTH"`
	Height      int `yaml:"height" env:"VEIL_HEIGHT"`
	MinRoomSize int `yaml:"min_room_size" env:"VEIL_MIN_ROOM_SIZE"`

	LogRetention    int `yaml:"log_retention" env:"VEIL_LOG_RETENTION"`
	BaseSightRadius int `yaml:"base_sight_radius" env:"VEIL_SIGHT_RADIUS"`

	// Адаптеры
	ReplayDir string `yaml:"replay_dir" env:"VEIL_REPLAY_DIR"`
	Port      string `yaml:"port" env:"VEIL_PORT"`
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT"`
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:            time.Now().UnixNano(),
		Width:           dungeon.MapWidth,
		Height:          dungeon.MapHeight,
		MinRoomSize:     dungeon.MinRoomSize,
		LogRetention:    domain.MessageLogSize,
		BaseSightRadius: domain.BaseSightRadius,
		ReplayDir:       "replays",
		Port:            "8080",
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// LoadConfig: значения по умолчанию, поверх них YAML-файл (если есть),
// поверх него переменные окружения.
func LoadConfig(path string) (Config, error) {
	cfg := NewConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// файла нет - остаемся на умолчаниях
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	return cfg.normalized(), nil
}

// normalized подставляет умолчания вместо явно невалидных значений.
func (c Config) normalized() Config {
	def := NewConfig()
	if c.MinRoomSize < 3 {
		c.MinRoomSize = def.MinRoomSize
	}
	if c.Width < 2*c.MinRoomSize {
		c.Width = def.Width
	}
	if c.Height < 2*c.MinRoomSize {
		c.Height = def.Height
	}
	if c.LogRetention <= 0 {
		c.LogRetention = def.LogRetention
	}
	if c.BaseSightRadius <= 0 {
		c.BaseSightRadius = def.BaseSightRadius
	}
	return c
}
