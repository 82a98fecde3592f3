package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 训练器配置
type Config struct {
	Game  GameConfig  `yaml:"game"`
	Redis RedisConfig `yaml:"redis"`
	Sound SoundConfig `yaml:"sound"`
}

// GameConfig 牌局配置
type GameConfig struct {
	Decks              int     `yaml:"decks"`               // 牌靴副数
	ReshuffleThreshold float64 `yaml:"reshuffle_threshold"` // 洗牌阈值（剩余比例）
	QuestionTimeout    int     `yaml:"question_timeout"`    // 每题作答时间（秒）
	TickInterval       int     `yaml:"tick_interval"`       // 倒计时步进（毫秒）
}

// RedisConfig 排行榜 Redis 配置
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// SoundConfig 音效配置
type SoundConfig struct {
	Enabled bool `yaml:"enabled"`
}

// 默认值
const (
	defaultDecks              = 6
	defaultReshuffleThreshold = 0.20
	defaultQuestionTimeout    = 10
	defaultTickInterval       = 100
	defaultRedisAddr          = "localhost:6379"
)

// QuestionTimeoutDuration 返回每题作答时长
func (c *GameConfig) QuestionTimeoutDuration() time.Duration {
	return time.Duration(c.QuestionTimeout) * time.Second
}

// TickIntervalDuration 返回倒计时步进时长
func (c *GameConfig) TickIntervalDuration() time.Duration {
	return time.Duration(c.TickInterval) * time.Millisecond
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	cfg := &Config{Sound: SoundConfig{Enabled: true}}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults 补齐零值字段
func applyDefaults(cfg *Config) {
	if cfg.Game.Decks == 0 {
		cfg.Game.Decks = defaultDecks
	}
	if cfg.Game.ReshuffleThreshold == 0 {
		cfg.Game.ReshuffleThreshold = defaultReshuffleThreshold
	}
	if cfg.Game.QuestionTimeout == 0 {
		cfg.Game.QuestionTimeout = defaultQuestionTimeout
	}
	if cfg.Game.TickInterval == 0 {
		cfg.Game.TickInterval = defaultTickInterval
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = defaultRedisAddr
	}
}
