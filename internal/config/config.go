// Package config loads the advisor's yaml configuration.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config 应用配置
type Config struct {
	Game    GameConfig    `yaml:"game"`
	History HistoryConfig `yaml:"history"`
	Sound   SoundConfig   `yaml:"sound"`
}

// GameConfig 牌桌规则配置
type GameConfig struct {
	NumDecks int `yaml:"num_decks"` // 牌靴中的副数（1-8）
	// MaxResplits caps how often one starting hand may be re-split.
	MaxResplits int `yaml:"max_resplits"`
	// BustWarnThreshold is the bust probability above which a hit or
	// double recommendation carries a warning.
	BustWarnThreshold float64 `yaml:"bust_warn_threshold"`
}

// HistoryConfig Redis 历史记录配置
type HistoryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// SoundConfig 声音配置
type SoundConfig struct {
	Enabled bool `yaml:"enabled"`
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

	// 设置默认值
	if cfg.Game.NumDecks == 0 {
		cfg.Game.NumDecks = 6
	}
	if cfg.Game.MaxResplits == 0 {
		cfg.Game.MaxResplits = 3
	}
	if cfg.Game.BustWarnThreshold == 0 {
		cfg.Game.BustWarnThreshold = 0.5
	}
	if cfg.History.Addr == "" {
		cfg.History.Addr = "localhost:6379"
	}

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Game: GameConfig{
			NumDecks:          6,
			MaxResplits:       3,
			BustWarnThreshold: 0.5,
		},
		History: HistoryConfig{
			Enabled: false,
			Addr:    "localhost:6379",
		},
		Sound: SoundConfig{
			Enabled: true,
		},
	}
}
